package core_test

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/quicknotes/pkg/core"
)

func TestNewCategoryDefaults(t *testing.T) {
	c := core.NewCategory("Misc", "", "")
	assert.Equal(t, core.DefaultIcon, c.Icon)
	assert.Equal(t, core.DefaultColorHex, c.ColorHex)
	assert.Equal(t, c.CreatedAt, c.ModifiedAt)
}

func TestParseColorHex(t *testing.T) {
	tests := []struct {
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{in: "3B82F6", want: color.RGBA{R: 0x3B, G: 0x82, B: 0xF6, A: 0xFF}},
		{in: "#10b981", want: color.RGBA{R: 0x10, G: 0xB9, B: 0x81, A: 0xFF}},
		{in: "F59E0B80", want: color.RGBA{R: 0xF5, G: 0x9E, B: 0x0B, A: 0x80}},
		{in: "", wantErr: true},
		{in: "FFF", wantErr: true},
		{in: "GGGGGG", wantErr: true},
		{in: "#12345", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := core.ParseColorHex(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, core.ErrInvalidColor)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeColorHex(t *testing.T) {
	assert.Equal(t, "3B82F6", core.NormalizeColorHex(" #3b82f6 "))
}

func TestPaletteAndIconsAreValid(t *testing.T) {
	for _, p := range core.Palette {
		_, err := core.ParseColorHex(p.Key)
		assert.NoError(t, err, p.Label)
	}
	for _, c := range core.DefaultCategories() {
		assert.True(t, core.IsKnownIcon(c.Icon), c.Name)
	}
	assert.False(t, core.IsKnownIcon("rocket"))
}

func TestNoteBuildersCopy(t *testing.T) {
	c := core.NewCategory("Work", "", "")
	n := core.NewNote("t", "c")
	m := n.WithCategory(c).WithPinned(true)

	assert.Nil(t, n.Category)
	assert.False(t, n.Pinned)
	assert.Equal(t, c.ID, m.CategoryID())
	assert.Equal(t, n.ID, m.ID)
	assert.Equal(t, n.CreatedAt, m.CreatedAt)
}
