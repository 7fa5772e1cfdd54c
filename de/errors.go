package de

import (
	"fmt"
	"strconv"
	"strings"
)

// TypeError reports that the input held a different shape
// than the one the visitor was prepared to accept.
type TypeError struct {
	// Got describes the value that was actually present in the input.
	Got string
	// Expecting is the visitor's description of what it accepts.
	Expecting string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("invalid type: %s, expected %s", e.Got, e.Expecting)
}

// ValueError reports a value of the right shape but outside the acceptable domain,
// such as an out of range integer.
type ValueError struct {
	Value     string
	Expecting string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("invalid value: %s, expected %s", e.Value, e.Expecting)
}

// LengthError reports a composite value with the wrong number of elements.
type LengthError struct {
	Len       int
	Expecting string
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("invalid length %d, expected %s", e.Len, e.Expecting)
}

// UnknownFieldError reports a struct field name that none of the expected fields match.
type UnknownFieldError struct {
	Field    string
	Expected []string
}

func (e *UnknownFieldError) Error() string {
	if len(e.Expected) == 0 {
		return fmt.Sprintf("unknown field %q, there are no fields", e.Field)
	}
	return fmt.Sprintf("unknown field %q, expected one of %s", e.Field, strings.Join(e.Expected, ", "))
}

// UnknownVariantError reports an enum variant name that none of the expected variants match.
type UnknownVariantError struct {
	Variant  string
	Expected []string
}

func (e *UnknownVariantError) Error() string {
	if len(e.Expected) == 0 {
		return fmt.Sprintf("unknown variant %q, there are no variants", e.Variant)
	}
	return fmt.Sprintf("unknown variant %q, expected one of %s", e.Variant, strings.Join(e.Expected, ", "))
}

// MissingFieldError reports that a required struct field was absent from the input.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing field %q", e.Field)
}

// value descriptions used in TypeError.Got

func describeBool(v bool) string { return fmt.Sprintf("boolean `%v`", v) }

func describeInt(v int64) string { return fmt.Sprintf("integer `%d`", v) }

func describeUint(v uint64) string { return fmt.Sprintf("unsigned integer `%d`", v) }

func describeFloat(v float64) string {
	return fmt.Sprintf("floating point `%s`", strconv.FormatFloat(v, 'g', -1, 64))
}

func describeString(v string) string { return fmt.Sprintf("string %q", v) }
