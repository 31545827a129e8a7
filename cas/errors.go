package cas

import (
	"fmt"
	"strconv"
)

// InvalidFormatError is an error indicating a string that does not follow the
// notation ddd-dd-d.
type InvalidFormatError struct {
	// Text is the string that could not be read.
	Text string
}

func (err *InvalidFormatError) Error() string {
	return "invalid CAS number format " + strconv.Quote(err.Text) + " (must follow the notation ddddddd-dd-d)"
}

// InvalidTypeError is an error indicating a value of a type that cannot
// represent a CAS number.
type InvalidTypeError struct {
	// Value is the rejected value.
	Value any
}

func (err *InvalidTypeError) Error() string {
	return fmt.Sprintf("invalid CAS number %v of type %T (expected an integer or a string)", err.Value, err.Value)
}

// InvalidRangeError is an error indicating an integer outside the range of
// CAS numbers.
type InvalidRangeError struct {
	// Value is the rejected integer.
	Value int64
}

func (err *InvalidRangeError) Error() string {
	return "invalid CAS number " + strconv.FormatInt(err.Value, 10) + " (must be an integer from 10004 to 9999999999)"
}

// InvalidChecksumError is an error indicating a number whose check digit does
// not match the rest of its digits.
type InvalidChecksumError struct {
	// Text is the number in hyphenated notation.
	Text string
	// Found is the check digit of the number.
	Found int
	// Want is the check digit computed from the other digits.
	Want int
}

func (err *InvalidChecksumError) Error() string {
	return "invalid CAS number " + err.Text + " (found check digit " + strconv.Itoa(err.Found) + ", but expected " + strconv.Itoa(err.Want) + ")"
}
