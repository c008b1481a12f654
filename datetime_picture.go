package fnformat

import (
	"strconv"
	"strings"
	"unicode"
)

// Unbounded marks a width modifier without an upper limit ("*").
const Unbounded = -1

// Width is the optional ",min-max" modifier of a date/time component.
type Width struct {
	Min int
	Max int
}

// DateTimeComponent is one bracketed variable marker, e.g. [Y0001] or [MNn,3-3].
type DateTimeComponent struct {
	Specifier rune
	Picture   string
	Width     *Width
}

// PictureSegment is either a literal run or a component of a date/time picture.
type PictureSegment struct {
	Literal   string
	Component *DateTimeComponent
}

func (s PictureSegment) IsComponent() bool { return s.Component != nil }

var componentDefaults = map[rune]string{
	'Y': "1",
	'M': "1",
	'D': "1",
	'd': "1",
	'F': "Nn",
	'W': "1",
	'w': "1",
	'H': "1",
	'h': "1",
	'P': "n",
	'm': "01",
	's': "01",
	'f': "1",
	'Z': "00:00",
	'z': "00:00",
	'C': "N",
	'E': "N",
}

// ScanDateTimePicture splits a date/time picture into literal runs and components.
func ScanDateTimePicture(picture string) ([]PictureSegment, error) {
	runes := []rune(picture)
	var (
		segments []PictureSegment
		literal  strings.Builder
	)

	flush := func() {
		if literal.Len() > 0 {
			segments = append(segments, PictureSegment{Literal: literal.String()})
			literal.Reset()
		}
	}

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch r {
		case ']':
			if i+1 < len(runes) && runes[i+1] == ']' {
				literal.WriteRune(']')
				i++
				continue
			}
			return nil, newPictureError(ErrUnbalancedBracket, picture, i, "a literal ']' must be written as ']]'")
		case '[':
			if i+1 < len(runes) && runes[i+1] == '[' {
				literal.WriteRune('[')
				i++
				continue
			}
			end := -1
			for j := i + 1; j < len(runes); j++ {
				if runes[j] == ']' {
					end = j
					break
				}
			}
			if end < 0 {
				return nil, newPictureError(ErrUnmatchedOpenBracket, picture, i, "no closing ']'")
			}
			component, err := parseComponent(picture, i, runes[i+1:end])
			if err != nil {
				return nil, err
			}
			flush()
			segments = append(segments, PictureSegment{Component: component})
			i = end
		default:
			literal.WriteRune(r)
		}
	}
	flush()
	return segments, nil
}

// parseComponent tokenizes the interior of a variable marker:
// specifier, optional presentation picture, optional ",width".
func parseComponent(picture string, offset int, body []rune) (*DateTimeComponent, error) {
	var marker []rune
	for _, r := range body {
		if !unicode.IsSpace(r) {
			marker = append(marker, r)
		}
	}
	if len(marker) == 0 {
		return nil, newPictureError(ErrUnknownComponent, picture, offset, "empty variable marker")
	}

	specifier := marker[0]
	def, ok := componentDefaults[specifier]
	if !ok {
		return nil, newPictureError(ErrUnknownComponent, picture, offset, "unknown component specifier %q", specifier)
	}

	// The last comma introduces the width; earlier ones group digits in the presentation.
	presentation, widthSpec, hasWidth := string(marker[1:]), "", false
	if idx := strings.LastIndex(presentation, ","); idx >= 0 {
		presentation, widthSpec, hasWidth = presentation[:idx], presentation[idx+1:], true
	}
	if presentation == "" {
		presentation = def
	}

	component := &DateTimeComponent{Specifier: specifier, Picture: presentation}
	if hasWidth {
		width, err := parseWidth(picture, offset, widthSpec)
		if err != nil {
			return nil, err
		}
		component.Width = &width
	}
	return component, nil
}

// parseWidth reads min["-"max] where either bound may be "*".
func parseWidth(picture string, offset int, spec string) (Width, error) {
	minSpec, maxSpec, hasMax := strings.Cut(spec, "-")

	width := Width{Min: 1, Max: Unbounded}
	if minSpec != "*" {
		n, err := strconv.Atoi(minSpec)
		if err != nil || n < 1 {
			return Width{}, newPictureError(ErrInvalidWidth, picture, offset, "invalid minimum width %q", minSpec)
		}
		width.Min = n
	}
	if hasMax && maxSpec != "*" {
		n, err := strconv.Atoi(maxSpec)
		if err != nil || n < 1 {
			return Width{}, newPictureError(ErrInvalidWidth, picture, offset, "invalid maximum width %q", maxSpec)
		}
		if n < width.Min {
			return Width{}, newPictureError(ErrInvalidWidth, picture, offset, "minimum width %d exceeds maximum %d", width.Min, n)
		}
		width.Max = n
	}
	return width, nil
}
