// Package outwriter has output and writer logic.
package outwriter

import (
	"io"

	"github.com/huangsam/rategame/internal/contract"
	"github.com/huangsam/rategame/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct {
	cfg *contract.Config
}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter(cfg *contract.Config) *OutWriter {
	return &OutWriter{cfg: cfg}
}

// WriteOrganized prints the organized criteria before editing and scoring.
func (ow *OutWriter) WriteOrganized(w io.Writer, index *schema.CriteriaIndex) error {
	return WriteOrganizedCriteria(w, index)
}

// WriteCriteria prints the criteria index using the configured output format.
func (ow *OutWriter) WriteCriteria(w io.Writer, index *schema.CriteriaIndex) error {
	return WriteCriteriaList(w, index, ow.cfg)
}

// WriteRating prints the rating result using the configured output format.
func (ow *OutWriter) WriteRating(w io.Writer, result schema.RatingResult) error {
	return WriteRatingResult(w, result, ow.cfg)
}
