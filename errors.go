package fnformat

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPicture marks a malformed format-number picture string.
	ErrInvalidPicture = errors.New("fnformat: invalid picture")
	// ErrUnknownDecimalFormat indicates that a decimal-format name did not resolve.
	ErrUnknownDecimalFormat = errors.New("fnformat: unknown decimal format")
	// ErrInvalidDecimalFormat indicates conflicting symbols in a decimal-format definition.
	ErrInvalidDecimalFormat = errors.New("fnformat: invalid decimal format")
	ErrUnbalancedBracket    = errors.New("fnformat: unbalanced ']' in picture")
	ErrUnmatchedOpenBracket = errors.New("fnformat: unmatched '[' in picture")
	ErrUnknownComponent     = errors.New("fnformat: unknown date/time component")
	ErrInvalidWidth         = errors.New("fnformat: invalid width modifier")
	// ErrUnsupportedComponent is returned when a component does not apply to the value kind,
	// e.g. an hour requested from an xs:date.
	ErrUnsupportedComponent = errors.New("fnformat: component not available for value")
	ErrTypeMismatch         = errors.New("fnformat: value type mismatch")
)

// ErrorCode is the W3C error code surfaced to the hosting query engine.
type ErrorCode string

const (
	CodeInvalidPicture        ErrorCode = "FODF1310"
	CodeUnknownDecimalFormat  ErrorCode = "FODF1280"
	CodeInvalidDecimalFormat  ErrorCode = "FODF1290"
	CodeInvalidDateTimeSyntax ErrorCode = "FOFD1340"
	CodeInvalidComponent      ErrorCode = "FOFD1350"
	CodeTypeMismatch          ErrorCode = "XPTY0004"
)

var errorCodes = map[error]ErrorCode{
	ErrInvalidPicture:       CodeInvalidPicture,
	ErrUnknownDecimalFormat: CodeUnknownDecimalFormat,
	ErrInvalidDecimalFormat: CodeInvalidDecimalFormat,
	ErrUnbalancedBracket:    CodeInvalidDateTimeSyntax,
	ErrUnmatchedOpenBracket: CodeInvalidDateTimeSyntax,
	ErrUnknownComponent:     CodeInvalidDateTimeSyntax,
	ErrInvalidWidth:         CodeInvalidComponent,
	ErrUnsupportedComponent: CodeInvalidComponent,
	ErrTypeMismatch:         CodeTypeMismatch,
}

// PictureError reports a failure tied to a specific picture string.
// Offset is the rune offset of the offending character, or -1 when unknown.
type PictureError struct {
	Kind    error
	Code    ErrorCode
	Picture string
	Offset  int
	Reason  string
}

func newPictureError(kind error, picture string, offset int, format string, args ...any) *PictureError {
	return &PictureError{
		Kind:    kind,
		Code:    errorCodes[kind],
		Picture: picture,
		Offset:  offset,
		Reason:  fmt.Sprintf(format, args...),
	}
}

func (e *PictureError) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := fmt.Sprintf("%s [%s]", e.Kind, e.Code)
	if e.Picture != "" {
		msg += fmt.Sprintf(" in %q", e.Picture)
	}
	if e.Offset >= 0 {
		msg += fmt.Sprintf(" at %d", e.Offset)
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

func (e *PictureError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Kind
}

// Code returns the W3C error code carried by err, or "" if err is not a formatting error.
func Code(err error) ErrorCode {
	var perr *PictureError
	if errors.As(err, &perr) {
		return perr.Code
	}
	for kind, code := range errorCodes {
		if errors.Is(err, kind) {
			return code
		}
	}
	return ""
}
