package model

import "fmt"

// ColorTag identifies the display color of a piece. The tag is opaque to
// the search engine and only threaded through to rendering and export.
type ColorTag int

const (
	ColorRed ColorTag = iota
	ColorYellow
	ColorBlue
	ColorWhite
)

func (c ColorTag) String() string {
	switch c {
	case ColorRed:
		return "red"
	case ColorYellow:
		return "yellow"
	case ColorBlue:
		return "blue"
	case ColorWhite:
		return "white"
	default:
		return "unknown"
	}
}

// ParseColorTag maps a color name from a puzzle file to its tag.
func ParseColorTag(name string) (ColorTag, error) {
	switch name {
	case "red":
		return ColorRed, nil
	case "yellow":
		return ColorYellow, nil
	case "blue":
		return ColorBlue, nil
	case "white":
		return ColorWhite, nil
	default:
		return 0, fmt.Errorf("unknown color %q", name)
	}
}

// MarshalJSON encodes the tag as its name.
func (c ColorTag) MarshalJSON() ([]byte, error) {
	return []byte(`"` + c.String() + `"`), nil
}

// UnmarshalJSON decodes a color name.
func (c *ColorTag) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid color tag %s", s)
	}
	tag, err := ParseColorTag(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	*c = tag
	return nil
}
