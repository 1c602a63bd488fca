package registry

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
)

// DuplicateToolError indicates a second registration under an existing
// name. It signals a wiring bug and is never converted into an envelope.
type DuplicateToolError struct {
	Name string
}

func (e *DuplicateToolError) Error() string {
	return fmt.Sprintf("Tool '%s' already registered", e.Name)
}

// UnknownToolError indicates a lookup for a name nothing registered.
type UnknownToolError struct {
	Name string
}

func (e *UnknownToolError) Error() string {
	return fmt.Sprintf("Unknown tool: %s", e.Name)
}

// MissingParameterError indicates a required parameter was absent.
type MissingParameterError struct {
	Name string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("Missing required parameter: %s", e.Name)
}

// TypeMismatchError indicates a supplied value did not match the declared
// parameter type.
type TypeMismatchError struct {
	Parameter string
	Want      ParamType
	Got       string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("Parameter '%s' must be %s, got %s", e.Parameter, e.Want, e.Got)
}

// IsUnknownTool returns true if the error is an UnknownToolError.
func IsUnknownTool(err error) bool {
	var e *UnknownToolError
	return errors.As(err, &e)
}

// IsValidation returns true if the error is a validation failure
// (missing parameter or type mismatch).
func IsValidation(err error) bool {
	var missing *MissingParameterError
	var mismatch *TypeMismatchError
	return errors.As(err, &missing) || errors.As(err, &mismatch)
}

// jsonKind classifies a decoded JSON value. encoding/json produces
// float64 for all numbers; a float with no fractional part counts as an
// integer. Booleans are never integers.
func jsonKind(value any) string {
	switch v := value.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case string:
		return "string"
	case float64:
		if v == math.Trunc(v) && !math.IsInf(v, 0) {
			return "integer"
		}
		return "number"
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return "integer"
	case json.Number:
		if _, err := v.Int64(); err == nil {
			return "integer"
		}
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", value)
	}
}

func kindMatches(want ParamType, got string) bool {
	return string(want) == got
}
