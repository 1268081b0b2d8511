package seedfile

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/custodia-labs/sanctions-law/internal/core/domain"
	"github.com/custodia-labs/sanctions-law/internal/core/ports/driven"
)

//go:embed seed.schema.json
var schemaJSON []byte

const schemaURL = "https://sanctions-law.local/schemas/seed.schema.json"

// Ensure Loader implements the interface.
var _ driven.SeedReader = (*Loader)(nil)

// Loader reads seed documents and validates them against the seed schema.
type Loader struct {
	schema *jsonschema.Schema
}

// NewLoader compiles the embedded seed schema.
func NewLoader() (*Loader, error) {
	c := jsonschema.NewCompiler()
	c.Draft = jsonschema.Draft2020
	if err := c.AddResource(schemaURL, bytes.NewReader(schemaJSON)); err != nil {
		return nil, fmt.Errorf("seed schema load failed: %w", err)
	}
	compiled, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("seed schema compile failed: %w", err)
	}
	return &Loader{schema: compiled}, nil
}

// Read loads the document at path. Structural problems are reported as
// domain.ErrInvalidSeed; I/O problems are returned as is.
func (l *Loader) Read(ctx context.Context, path string) (*domain.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading seed file: %w", err)
	}
	return l.Parse(data)
}

// Parse validates and decodes a seed document.
func (l *Loader) Parse(data []byte) (*domain.Dataset, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidSeed, err)
	}
	if err := l.schema.Validate(doc); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidSeed, err)
	}

	var ds domain.Dataset
	if err := json.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidSeed, err)
	}
	return &ds, nil
}
