package presetdiff

import (
	"errors"
	"fmt"
)

// Application error codes.
const (
	EINTERNAL = "internal"
	EINVALID  = "invalid"

	// Parse failure codes. Each code names exactly one failure point so a
	// caller can tell a structurally unrecognized document apart from a
	// recognized one carrying an invalid field value.
	EPRESETTYPESELECTOR = "preset_type_selector"
	EPRESETTYPEVALUE    = "preset_type_value"
	EITEMNAMESELECTOR   = "item_name_selector"
	EITEMLINKSELECTOR   = "item_link_selector"
	EITEMORIGINSELECTOR = "item_origin_selector"
	EITEMORIGINVALUE    = "item_origin_value"
	EWORKSHOPLINK       = "workshop_link"
	EAPPLINK            = "app_link"
)

// Error represents an application error. Errors carry a machine-readable
// code and a human-readable message holding the diagnostic payload (the
// offending raw value, or the serialized HTML a selector failed to match).
type Error struct {
	// Machine-readable error code.
	Code string

	// Human-readable message.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("presetdiff error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error".
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// Errorf is a helper function to return an Error with a given code and
// formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
