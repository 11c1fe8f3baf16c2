// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"
	"io"

	"github.com/huangsam/rategame/schema"
)

// Prompter is the line-oriented console used by every interactive stage.
// This allows the rating flow to be tested without a real terminal.
type Prompter interface {
	// Ask writes prompt without a trailing newline and returns the next
	// input line with surrounding whitespace removed.
	Ask(prompt string) (string, error)

	// Say writes its operands followed by a newline.
	Say(a ...any)

	// Sayf writes formatted output.
	Sayf(format string, a ...any)

	// Out returns the underlying output writer.
	Out() io.Writer
}

// CriteriaSource reads the static criteria table.
type CriteriaSource interface {
	// Load reads the whole table. The underlying resource is released before returning.
	Load(ctx context.Context) (schema.CriteriaTable, error)

	// Location describes where the table is read from.
	Location() string
}

// CriteriaStore is a CriteriaSource that can also write a table.
// It is used to create the criteria resource from the built-in seed table.
type CriteriaStore interface {
	CriteriaSource

	// Save replaces the resource contents with table.
	Save(ctx context.Context, table schema.CriteriaTable) error
}
