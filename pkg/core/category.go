package core

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	DefaultIcon     = "folder.fill"
	DefaultColorHex = "3B82F6"
)

// Category is a named, coloured tag a note may optionally belong to.
type Category struct {
	ID         uuid.UUID
	Name       string
	Icon       string
	ColorHex   string
	CreatedAt  time.Time
	ModifiedAt time.Time
}

// NewCategory creates a category with a fresh ID and "now" timestamps.
// Empty icon or colour fall back to DefaultIcon and DefaultColorHex.
func NewCategory(name, icon, colorHex string) Category {
	if icon == "" {
		icon = DefaultIcon
	}
	if colorHex == "" {
		colorHex = DefaultColorHex
	}
	now := Now()
	return Category{
		ID:         uuid.New(),
		Name:       name,
		Icon:       icon,
		ColorHex:   colorHex,
		CreatedAt:  now,
		ModifiedAt: now,
	}
}

func (c Category) WithName(name string) Category {
	c.Name = name
	return c
}

func (c Category) WithIcon(icon string) Category {
	c.Icon = icon
	return c
}

func (c Category) WithColorHex(hex string) Category {
	c.ColorHex = hex
	return c
}

// Touch returns a copy whose ModifiedAt is set to at.
func (c Category) Touch(at time.Time) Category {
	c.ModifiedAt = at
	return c
}

// Option pairs a stored key with its display label.
type Option struct {
	Key   string
	Label string
}

// Icons is the fixed icon set a category may reference.
var Icons = []Option{
	{"folder.fill", "Folder"},
	{"briefcase.fill", "Briefcase"},
	{"person.fill", "Person"},
	{"lightbulb.fill", "Lightbulb"},
	{"heart.fill", "Heart"},
	{"star.fill", "Star"},
	{"tag.fill", "Tag"},
	{"book.fill", "Book"},
	{"house.fill", "House"},
	{"envelope.fill", "Envelope"},
	{"camera.fill", "Camera"},
	{"music.note", "Music"},
	{"sportscourt.fill", "Sport"},
	{"cart.fill", "Cart"},
	{"gift.fill", "Gift"},
}

// Palette lists the suggested category colours.
var Palette = []Option{
	{"3B82F6", "Blue"},
	{"10B981", "Green"},
	{"F59E0B", "Amber"},
	{"EF4444", "Red"},
	{"8B5CF6", "Purple"},
	{"EC4899", "Pink"},
	{"6366F1", "Indigo"},
	{"14B8A6", "Teal"},
	{"F97316", "Orange"},
	{"6B7280", "Gray"},
}

// IsKnownIcon reports whether key belongs to the icon set.
func IsKnownIcon(key string) bool {
	for _, icon := range Icons {
		if icon.Key == key {
			return true
		}
	}
	return false
}

// ParseColorHex parses "RRGGBB" or "RRGGBBAA", with an optional leading '#'.
// Six-digit colours are fully opaque.
func ParseColorHex(hex string) (color.RGBA, error) {
	clean := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(hex), "#"))
	if len(clean) != 6 && len(clean) != 8 {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, hex)
	}
	v, err := strconv.ParseUint(clean, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, hex)
	}
	if len(clean) == 6 {
		v = v<<8 | 0xFF
	}
	return color.RGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}

// NormalizeColorHex strips the optional '#' and upper-cases the digits.
func NormalizeColorHex(hex string) string {
	return strings.ToUpper(strings.TrimPrefix(strings.TrimSpace(hex), "#"))
}
