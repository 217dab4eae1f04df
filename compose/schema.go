package compose

import (
	"reflect"

	"github.com/invopop/jsonschema"

	"github.com/gogpu/medal/motif"
	"github.com/gogpu/medal/shape"
)

// JSONSchema describes the JSON form of a Composition. Shape, motif and
// anchor fields are string enums of their variant names.
func JSONSchema() *jsonschema.Schema {
	r := &jsonschema.Reflector{
		RequiredFromJSONSchemaTags: true,
		DoNotReference:             true,
		ExpandedStruct:             true,
		Mapper:                     enumSchema,
	}
	s := r.Reflect(&Composition{})
	s.Title = "Medal composition"
	s.Description = "Outline, ribbon hole, motifs and texts of a laser-cut medal."
	return s
}

var (
	shapeVariantType = reflect.TypeOf(shape.Variant(0))
	motifVariantType = reflect.TypeOf(motif.Variant(0))
	anchorType       = reflect.TypeOf(Anchor(0))
)

func enumSchema(t reflect.Type) *jsonschema.Schema {
	var names []string
	switch t {
	case shapeVariantType:
		names = shape.Names()
	case motifVariantType:
		names = motif.Names()
	case anchorType:
		names = AnchorNames()
	default:
		return nil
	}
	enum := make([]any, len(names))
	for i, n := range names {
		enum[i] = n
	}
	return &jsonschema.Schema{Type: "string", Enum: enum}
}
