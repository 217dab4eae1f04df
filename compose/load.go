package compose

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// ErrNoName is returned by LoadComposition for a composition without a
// name.
var ErrNoName = errors.New("compose: composition has no name")

// LoadComposition reads a YAML composition. The document is overlaid on
// NewComposition, so the ribbon hole stays enabled unless the document
// turns it off. Variant and anchor names are parsed leniently, as by
// shape.ParseVariant.
func LoadComposition(r io.Reader) (Composition, error) {
	c := NewComposition("")
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		if errors.Is(err, io.EOF) {
			return Composition{}, ErrNoName
		}
		return Composition{}, fmt.Errorf("compose: decode composition: %w", err)
	}
	if c.Name == "" {
		return Composition{}, ErrNoName
	}
	return c, nil
}
