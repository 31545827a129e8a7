package chemformula

import (
	"strconv"
	"strings"
)

// MalformedBracketsError is an error indicating unbalanced brackets in the
// input. It implements InputError.
type MalformedBracketsError struct {
	// Col is the position of the offending bracket.
	Col int
	// Left is the opening bracket that was never closed, if any.
	Left string
	// Right is the closing bracket with no opening bracket, if any.
	Right string
}

func (err *MalformedBracketsError) Error() string {
	if err.Left == "" {
		return errpos(err.Col, "close bracket "+err.Right+" with no open bracket")
	}
	return errpos(err.Col, "open bracket "+err.Left+" with no close bracket")
}

func (err *MalformedBracketsError) Pos() int {
	return err.Col
}

// InvalidElementSymbolError is an error indicating text that cannot be an
// element symbol, such as two lowercase letters in sequence or a lowercase
// letter with no uppercase letter before it. It implements InputError.
type InvalidElementSymbolError struct {
	// Col is the position of the start of the symbol.
	Col int
	// Symbol is the malformed text.
	Symbol string
}

func (err *InvalidElementSymbolError) Error() string {
	if len(err.Symbol) > 0 && isLower(rune(err.Symbol[0])) {
		return errpos(err.Col, "invalid element symbol "+strconv.Quote(err.Symbol)+" (symbols start with an uppercase letter)")
	}
	return errpos(err.Col, "invalid element symbol "+strconv.Quote(err.Symbol)+" (two lowercase letters in sequence)")
}

func (err *InvalidElementSymbolError) Pos() int {
	return err.Col
}

// UnknownElementSymbolError is an error indicating a well-formed symbol that
// names no element. It implements InputError.
type UnknownElementSymbolError struct {
	// Col is the position of the symbol.
	Col int
	// Symbol is the unknown symbol.
	Symbol string
}

func (err *UnknownElementSymbolError) Error() string {
	return errpos(err.Col, "unknown element symbol "+strconv.Quote(err.Symbol))
}

func (err *UnknownElementSymbolError) Pos() int {
	return err.Col
}

// InvalidCountError is an error indicating a count that is zero, that follows
// neither an element nor a group, or that is too large. It implements
// InputError.
type InvalidCountError struct {
	// Col is the position of the count, or of the group or element whose
	// total count overflowed.
	Col int
	// Count is the text of the count.
	Count string
	// Overflow indicates that the count, or the product of the counts of the
	// groups enclosing it, does not fit in an int.
	Overflow bool
}

func (err *InvalidCountError) Error() string {
	switch {
	case err.Overflow:
		return errpos(err.Col, "count "+err.Count+" overflows")
	case strings.Trim(err.Count, "0") == "":
		return errpos(err.Col, "count must be positive, not "+err.Count)
	default:
		return errpos(err.Col, "count "+err.Count+" follows no element or group")
	}
}

func (err *InvalidCountError) Pos() int {
	return err.Col
}

// InvalidCharacterError is an error indicating a rune that may not appear in
// a formula. It implements InputError.
type InvalidCharacterError struct {
	// Col is the position of the rune.
	Col int
	// Char is the rune.
	Char rune
}

func (err *InvalidCharacterError) Error() string {
	return errpos(err.Col, "invalid character "+strconv.QuoteRune(err.Char))
}

func (err *InvalidCharacterError) Pos() int {
	return err.Col
}

// EmptyFormulaError is an error indicating a formula that contains no
// elements. It implements InputError.
type EmptyFormulaError struct {
	// Col is the position of the end of the input.
	Col int
}

func (err *EmptyFormulaError) Error() string {
	return errpos(err.Col, "no elements in formula")
}

func (err *EmptyFormulaError) Pos() int {
	return err.Col
}

// InvalidChargeTypeError is an error indicating text that does not describe
// an integer charge.
type InvalidChargeTypeError struct {
	// Text is the text that could not be read.
	Text string
}

func (err *InvalidChargeTypeError) Error() string {
	return "invalid charge " + strconv.Quote(err.Text) + " (expected an integer like -2 or 2-)"
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// an invalid formula implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*MalformedBracketsError)(nil)
	_ InputError = (*InvalidElementSymbolError)(nil)
	_ InputError = (*UnknownElementSymbolError)(nil)
	_ InputError = (*InvalidCountError)(nil)
	_ InputError = (*InvalidCharacterError)(nil)
	_ InputError = (*EmptyFormulaError)(nil)
)
