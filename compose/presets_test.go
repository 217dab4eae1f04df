package compose

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/medal/motif"
	"github.com/gogpu/medal/shape"
)

func TestUpper(t *testing.T) {
	tests := []struct{ in, want string }{
		{"Trail des Montagnes", "TRAIL DES MONTAGNES"},
		{"Traversée du Lac", "TRAVERSÉE DU LAC"},
		{"Fête à l'école", "FÊTE À L'ÉCOLE"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := upper(tt.in); got != tt.want {
			t.Errorf("upper(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTrail(t *testing.T) {
	c := Trail(PresetOptions{EventName: "Ultra du Léman", Year: "2027", Distance: "80K", Diameter: 80})

	assert.Equal(t, "Ultra du Léman 2027", c.Name)
	assert.Equal(t, shape.Circle, c.Shape)
	assert.Equal(t, 80.0, c.ShapeParams.Width)
	assert.True(t, c.RibbonHole.Enabled)

	require.Len(t, c.Motifs, 2)
	assert.Equal(t, motif.Mountains, c.Motifs[0].Motif)
	assert.Equal(t, motif.Trees, c.Motifs[1].Motif)
	assert.InDelta(t, 56, c.Motifs[0].Params.Width, 1e-9)
	assert.InDelta(t, -20, c.Motifs[1].Position.Y, 1e-9)

	require.Len(t, c.Texts, 3)
	assert.Equal(t, "ULTRA DU LÉMAN", c.Texts[0].Content)
	assert.Equal(t, AnchorArcTop, c.Texts[0].Anchor)
	assert.Equal(t, "80K", c.Texts[1].Content)
	assert.Equal(t, "2027", c.Texts[2].Content)
	assert.Equal(t, AnchorArcBottom, c.Texts[2].Anchor)
}

func TestPresetDefaults(t *testing.T) {
	tests := []struct {
		kind  EventType
		name  string
		shape shape.Variant
		width float64
	}{
		{EventTrail, "Trail des Montagnes 2026", shape.Circle, 70},
		{EventRunning, "Marathon de Paris 2026", shape.Hexagon, 70},
		{EventSwimming, "Traversée du Lac 2026", shape.Drop, 52},
		{EventCorporate, "OOOVATION - Team Building 2026", shape.Shield, 59.5},
		{EventCustom, "Custom Medal", shape.Circle, 70},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			c, err := Preset(tt.kind, PresetOptions{})
			require.NoError(t, err)
			assert.Equal(t, tt.name, c.Name)
			assert.Equal(t, tt.shape, c.Shape)
			assert.InDelta(t, tt.width, c.ShapeParams.Width, 1e-9)
		})
	}
}

func TestPresetUnknownEvent(t *testing.T) {
	_, err := Preset("regatta", PresetOptions{})
	assert.True(t, errors.Is(err, ErrUnknownEvent), "got %v", err)
}

func TestCustom(t *testing.T) {
	secondary := motif.Waves
	c := Custom(PresetOptions{
		Shape:     shape.Leaf,
		Primary:   motif.Laurel,
		Secondary: &secondary,
		TextMain:  "COURSE",
		Diameter:  100,
	})

	assert.Equal(t, DefaultWood, c.Wood)
	assert.InDelta(t, 85, c.ShapeParams.Width, 1e-9)
	assert.Equal(t, 100.0, c.ShapeParams.Height)

	require.Len(t, c.Motifs, 2)
	assert.Equal(t, motif.Laurel, c.Motifs[0].Motif)
	assert.Equal(t, motif.Waves, c.Motifs[1].Motif)
	assert.InDelta(t, -22, c.Motifs[1].Position.Y, 1e-9)

	require.Len(t, c.Texts, 3)
	for _, tx := range c.Texts {
		assert.False(t, tx.Anchor.Curved(), "non-circular custom medals use straight text")
	}
	assert.Equal(t, "COURSE", c.Texts[0].Content)
	assert.Equal(t, "FINISHER", c.Texts[1].Content)
}

func TestCustomCircleUsesArcs(t *testing.T) {
	c := Custom(PresetOptions{})

	require.Len(t, c.Motifs, 1)
	require.Len(t, c.Texts, 3)
	assert.Equal(t, "ÉVÉNEMENT", c.Texts[0].Content)
	assert.Equal(t, AnchorArcTop, c.Texts[0].Anchor)
	assert.Equal(t, AnchorCenter, c.Texts[1].Anchor)
	assert.Equal(t, AnchorArcBottom, c.Texts[2].Anchor)
}
