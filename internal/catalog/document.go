package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

var (
	// ErrInvalidDocument rejects a document with none of the recognized
	// top-level fields.
	ErrInvalidDocument = errors.New("formato de JSON inválido")
	// ErrMalformedDocument rejects a payload that cannot be read as a JSON
	// price list.
	ErrMalformedDocument = errors.New("erro ao ler o arquivo JSON")
)

var documentFields = []string{"papeis", "materiais", "impressoes", "maoObra"}

// Decode reads a price list document. The document is accepted when it
// carries at least one non-null recognized field; absent categories come back
// empty.
func Decode(r io.Reader) (Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Catalog{}, fmt.Errorf("read catalog document: %w", err)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return Catalog{}, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}

	recognized := false
	for _, name := range documentFields {
		raw, ok := fields[name]
		if ok && !bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
			recognized = true
			break
		}
	}
	if !recognized {
		return Catalog{}, ErrInvalidDocument
	}

	var cat Catalog
	if err := json.Unmarshal(data, &cat); err != nil {
		return Catalog{}, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}

	return cat.normalized(), nil
}

// Encode writes the price list as an indented document.
func Encode(w io.Writer, cat Catalog) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(cat.normalized()); err != nil {
		return fmt.Errorf("encode catalog document: %w", err)
	}
	return nil
}

// normalized replaces nil lists so the document never carries null arrays.
func (c Catalog) normalized() Catalog {
	if c.Papers == nil {
		c.Papers = []PaperEntry{}
	}
	if c.Materials == nil {
		c.Materials = []MaterialEntry{}
	}
	if c.Prints == nil {
		c.Prints = []PrintEntry{}
	}
	if c.Labor == nil {
		c.Labor = []LaborEntry{}
	}
	materials := make([]MaterialEntry, len(c.Materials))
	for i, m := range c.Materials {
		if m.Variants == nil {
			m.Variants = []MaterialVariant{}
		}
		materials[i] = m
	}
	c.Materials = materials
	return c
}
