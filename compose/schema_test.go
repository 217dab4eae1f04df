package compose

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/medal/motif"
	"github.com/gogpu/medal/shape"
)

func TestJSONSchema(t *testing.T) {
	s := JSONSchema()
	require.NotNil(t, s.Properties)
	assert.ElementsMatch(t, []string{"name", "shape"}, s.Required)

	shapeProp, ok := s.Properties.Get("shape")
	require.True(t, ok)
	assert.Equal(t, "string", shapeProp.Type)
	assert.Len(t, shapeProp.Enum, len(shape.Names()))
	assert.Contains(t, shapeProp.Enum, "rounded_rectangle")

	motifs, ok := s.Properties.Get("motifs")
	require.True(t, ok)
	require.NotNil(t, motifs.Items)
	motifProp, ok := motifs.Items.Properties.Get("motif")
	require.True(t, ok)
	assert.Len(t, motifProp.Enum, len(motif.Names()))
	assert.Contains(t, motifProp.Enum, "qr_code")

	texts, ok := s.Properties.Get("texts")
	require.True(t, ok)
	anchor, ok := texts.Items.Properties.Get("anchor")
	require.True(t, ok)
	assert.Contains(t, anchor.Enum, "arc_bottom")

	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"title":"Medal composition"`)
}
