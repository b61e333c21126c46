package calcy

import "strconv"

// TokenError is an error indicating a character that cannot start a token, or
// an operator with no left operand. It implements InputError.
type TokenError struct {
	// Col is the position of the character.
	Col int
	// Char is the unexpected character.
	Char rune
}

func (err *TokenError) Error() string {
	return errpos(err.Col, "found unexpected token "+strconv.QuoteRune(err.Char))
}

func (err *TokenError) Pos() int {
	return err.Col
}

// ValueError is an error indicating a numeric literal that the active domain
// cannot parse. It implements InputError.
type ValueError struct {
	// Col is the position of the literal.
	Col int
	// Text is the literal.
	Text string
	// Type is the name of the domain that rejected it.
	Type string
	// Err is the error from the domain's parser.
	Err error
}

func (err *ValueError) Error() string {
	return errpos(err.Col, "could not parse "+err.Text+" to "+err.Type)
}

func (err *ValueError) Pos() int {
	return err.Col
}

func (err *ValueError) Unwrap() error {
	return err.Err
}

// BracketError is an error indicating an unmatched bracket in the input. It
// implements InputError.
type BracketError struct {
	// Col is the position of the unmatched bracket.
	Col int
	// Left is the opening bracket, if it is the unmatched one.
	Left string
	// Right is the closing bracket, if it is the unmatched one.
	Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return errpos(err.Col, "close bracket "+err.Right+" with no open bracket")
	}
	return errpos(err.Col, "open bracket "+err.Left+" with no close bracket")
}

func (err *BracketError) Pos() int {
	return err.Col
}

// EmptyExpressionError is an error indicating an empty expression or an
// operator missing an operand. It implements InputError.
type EmptyExpressionError struct {
	// Col is the position of the operator missing an operand, or 0 if the
	// whole input is empty.
	Col int
	// Op is the operator missing an operand.
	Op string
}

func (err *EmptyExpressionError) Error() string {
	if err.Op == "" {
		return "empty input found while parsing"
	}
	return errpos(err.Col, "missing operand for "+strconv.Quote(err.Op))
}

func (err *EmptyExpressionError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input text implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*TokenError)(nil)
	_ InputError = (*ValueError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
)
