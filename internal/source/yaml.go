package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/huangsam/rategame/internal/contract"
	"github.com/huangsam/rategame/schema"
	"gopkg.in/yaml.v3"
)

// YAMLStore reads and writes the criteria table as a YAML list of
// {category, criterion} mappings.
type YAMLStore struct {
	path string
}

var _ contract.CriteriaStore = &YAMLStore{} // Compile-time check

// NewYAMLStore creates a store for the YAML file at path.
func NewYAMLStore(path string) *YAMLStore {
	return &YAMLStore{path: path}
}

// Load implements the CriteriaSource interface.
func (s *YAMLStore) Load(_ context.Context) (schema.CriteriaTable, error) {
	file, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open yaml file: %w", err)
	}
	defer func() { _ = file.Close() }()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)

	var table schema.CriteriaTable
	if err := decoder.Decode(&table); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", ErrMalformedTable, err)
	}
	return validateTable(table)
}

// Save implements the CriteriaStore interface.
func (s *YAMLStore) Save(_ context.Context, table schema.CriteriaTable) error {
	if err := ensureParentDir(s.path); err != nil {
		return err
	}
	file, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	encoder := yaml.NewEncoder(file)
	encoder.SetIndent(2)
	if err := encoder.Encode(table); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	return file.Close()
}

// Location implements the CriteriaSource interface.
func (s *YAMLStore) Location() string {
	return s.path
}
