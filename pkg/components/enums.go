package components

import (
	"fmt"
	"strings"

	"github.com/conneroisu/italia/internal/errors"
)

// Color is a theme color of the design system.
type Color int

const (
	ColorPrimary Color = iota
	ColorSecondary
	ColorSuccess
	ColorDanger
	ColorWarning
)

var colorNames = []string{"primary", "secondary", "success", "danger", "warning"}

// Variant selects between filled and outlined rendering.
type Variant int

const (
	VariantSolid Variant = iota
	VariantOutline
)

var variantNames = []string{"solid", "outline"}

// Inverse returns the other variant.
func (v Variant) Inverse() Variant {
	if v == VariantOutline {
		return VariantSolid
	}

	return VariantOutline
}

// Size is the size scale shared by buttons, avatars and inputs.
type Size int

const (
	SizeDefault Size = iota
	SizeXXL
	SizeXL
	SizeLarge
	SizeSmall
	SizeMini
)

var sizeNames = []string{"default", "xxl", "xl", "large", "small", "mini"}

// Typography is a heading level. The zero value selects the component's
// own default level.
type Typography int

const (
	TypographyDefault Typography = iota
	H1
	H2
	H3
	H4
	H5
	H6
)

var typographyNames = []string{"default", "h1", "h2", "h3", "h4", "h5", "h6"}

// Tag returns the heading tag, falling back to def for TypographyDefault.
func (t Typography) Tag(def Typography) string {
	if t == TypographyDefault || t > H6 {
		t = def
	}

	return typographyNames[t]
}

// Ratio is an aspect ratio of card images.
type Ratio int

const (
	Ratio1x1 Ratio = iota
	Ratio4x3
	Ratio16x9
	Ratio21x9
)

var ratioNames = []string{"1x1", "4x3", "16x9", "21x9"}

// IconColor is the fill color of an icon.
type IconColor int

const (
	IconColorDefault IconColor = iota
	IconColorPrimary
	IconColorSecondary
	IconColorSuccess
	IconColorDanger
	IconColorWarning
	IconColorLight
	IconColorWhite
)

var iconColorNames = []string{"default", "primary", "secondary", "success", "danger", "warning", "light", "white"}

// IconColorOf maps a theme color to the matching icon color.
func IconColorOf(c Color) IconColor {
	switch c {
	case ColorPrimary:
		return IconColorPrimary
	case ColorSecondary:
		return IconColorSecondary
	case ColorSuccess:
		return IconColorSuccess
	case ColorDanger:
		return IconColorDanger
	case ColorWarning:
		return IconColorWarning
	default:
		return IconColorWhite
	}
}

// IconSize is the size of an icon.
type IconSize int

const (
	IconSizeDefault IconSize = iota
	IconSizeXS
	IconSizeSmall
	IconSizeLarge
	IconSizeXL
)

var iconSizeNames = []string{"default", "xs", "small", "large", "xl"}

// IconAlignment is the vertical alignment of an icon.
type IconAlignment int

const (
	IconAlignDefault IconAlignment = iota
	IconAlignBottom
	IconAlignMiddle
	IconAlignTop
)

var iconAlignNames = []string{"default", "bottom", "middle", "top"}

func (c Color) String() string         { return enumName(c, colorNames) }
func (v Variant) String() string       { return enumName(v, variantNames) }
func (s Size) String() string          { return enumName(s, sizeNames) }
func (t Typography) String() string    { return enumName(t, typographyNames) }
func (r Ratio) String() string         { return enumName(r, ratioNames) }
func (c IconColor) String() string     { return enumName(c, iconColorNames) }
func (s IconSize) String() string      { return enumName(s, iconSizeNames) }
func (a IconAlignment) String() string { return enumName(a, iconAlignNames) }

func (c Color) MarshalText() ([]byte, error)         { return []byte(c.String()), nil }
func (v Variant) MarshalText() ([]byte, error)       { return []byte(v.String()), nil }
func (s Size) MarshalText() ([]byte, error)          { return []byte(s.String()), nil }
func (t Typography) MarshalText() ([]byte, error)    { return []byte(t.String()), nil }
func (r Ratio) MarshalText() ([]byte, error)         { return []byte(r.String()), nil }
func (c IconColor) MarshalText() ([]byte, error)     { return []byte(c.String()), nil }
func (s IconSize) MarshalText() ([]byte, error)      { return []byte(s.String()), nil }
func (a IconAlignment) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

func (c *Color) UnmarshalText(text []byte) error { return parseEnum(c, text, colorNames, "color") }
func (v *Variant) UnmarshalText(text []byte) error {
	return parseEnum(v, text, variantNames, "variant")
}
func (s *Size) UnmarshalText(text []byte) error { return parseEnum(s, text, sizeNames, "size") }
func (t *Typography) UnmarshalText(text []byte) error {
	return parseEnum(t, text, typographyNames, "typography")
}
func (r *Ratio) UnmarshalText(text []byte) error { return parseEnum(r, text, ratioNames, "ratio") }
func (c *IconColor) UnmarshalText(text []byte) error {
	return parseEnum(c, text, iconColorNames, "icon color")
}
func (s *IconSize) UnmarshalText(text []byte) error {
	return parseEnum(s, text, iconSizeNames, "icon size")
}
func (a *IconAlignment) UnmarshalText(text []byte) error {
	return parseEnum(a, text, iconAlignNames, "icon alignment")
}

type enum interface {
	~int
}

func enumName[E enum](e E, names []string) string {
	if int(e) < 0 || int(e) >= len(names) {
		return fmt.Sprintf("%d", int(e))
	}

	return names[e]
}

// parseEnum decodes an option name, ignoring case, hyphens and underscores.
func parseEnum[E enum](dst *E, text []byte, names []string, what string) error {
	key := normalizeOption(string(text))
	for i, name := range names {
		if normalizeOption(name) == key {
			*dst = E(i)
			return nil
		}
	}

	return errors.NewValidationError(errors.ErrCodeInvalidOption,
		fmt.Sprintf("unknown %s %q, expected one of %s", what, string(text), strings.Join(names, ", "))).
		WithComponent("components")
}

func normalizeOption(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "-", "")

	return strings.ReplaceAll(s, "_", "")
}
