package ahcalc

import (
	"strconv"
)

// CalcError is implemented by every error this package returns. Errors carry
// no positions: normalization rewrites the input before any token exists, so
// failures are reported structurally instead of by offset.
type CalcError interface {
	error
	calcError()
}

// CharError indicates a character outside the calculator's alphabet. It
// implements CalcError.
type CharError struct {
	// Char is the offending character.
	Char rune
}

func (err *CharError) Error() string {
	return "invalid character " + strconv.QuoteRune(err.Char) +
		": allowed are 0-9, + - * / ! ^, '.', comma, parentheses, square brackets, and spaces"
}

// BalanceError indicates that the counts of open and close brackets in the
// raw input disagree. It implements CalcError.
type BalanceError struct {
	// Open and Close are the bracket pair whose counts disagree.
	Open, Close byte
	// Opens and Closes are the respective counts.
	Opens, Closes int
}

func (err *BalanceError) Error() string {
	return "unbalanced brackets: " + strconv.Itoa(err.Opens) + " " + string(err.Open) +
		" but " + strconv.Itoa(err.Closes) + " " + string(err.Close)
}

// ParenError indicates a group whose nesting never closes before the token
// sequence ends. It implements CalcError.
type ParenError struct{}

func (err *ParenError) Error() string {
	return "unmatched parentheses"
}

// OperandError indicates an operator missing a valid operand on one or both
// sides, including operators at a sequence boundary. It implements CalcError.
type OperandError struct {
	// Op is the operator that lacked an operand.
	Op byte
}

func (err *OperandError) Error() string {
	switch err.Op {
	case '!':
		return "factorial without a group or number preceding it"
	case '^':
		return "exponent without groups or numbers before and after it"
	default:
		return string(err.Op) + " without groups or numbers before and after it"
	}
}

// NumberError indicates a fragment that should have been numeric but did not
// parse. Character validation makes this unreachable for well-formed digits;
// it exists so malformed literals like ".." fail instead of misbehaving.
// It implements CalcError.
type NumberError struct {
	// Text is the fragment that failed to parse.
	Text string
}

func (err *NumberError) Error() string {
	return "malformed number " + strconv.Quote(err.Text)
}

// EmptyExpressionError indicates an input or a bracketed group containing no
// expression. It implements CalcError.
type EmptyExpressionError struct {
	// Group is whether the empty expression was a bracketed group rather than
	// the whole input.
	Group bool
}

func (err *EmptyExpressionError) Error() string {
	if err.Group {
		return "empty group"
	}
	return "no expression"
}

// SyntaxError indicates a token sequence that survives every operator pass
// without reducing to a single term, e.g. "5!5". It implements CalcError.
type SyntaxError struct {
	// Terms is the number of terms left over.
	Terms int
}

func (err *SyntaxError) Error() string {
	return "expression does not reduce to a single value (" + strconv.Itoa(err.Terms) + " terms left)"
}

// DomainError indicates an operation applied to a value outside its domain,
// such as the factorial of a negative or fractional number or a division by
// zero. It implements CalcError.
type DomainError struct {
	// X is the out-of-domain operand.
	X float64
	// Op is the operation that rejected it.
	Op string
}

func (err *DomainError) Error() string {
	return strconv.FormatFloat(err.X, 'g', -1, 64) + " outside domain of " + err.Op
}

// OverflowError indicates a result whose magnitude exceeds the representable
// range. It implements CalcError.
type OverflowError struct {
	// Op is the operation that overflowed.
	Op string
}

func (err *OverflowError) Error() string {
	return "result of " + err.Op + " too large to represent"
}

func (*CharError) calcError()            {}
func (*BalanceError) calcError()         {}
func (*ParenError) calcError()           {}
func (*OperandError) calcError()         {}
func (*NumberError) calcError()          {}
func (*EmptyExpressionError) calcError() {}
func (*SyntaxError) calcError()          {}
func (*DomainError) calcError()          {}
func (*OverflowError) calcError()        {}

var (
	_ CalcError = (*CharError)(nil)
	_ CalcError = (*BalanceError)(nil)
	_ CalcError = (*ParenError)(nil)
	_ CalcError = (*OperandError)(nil)
	_ CalcError = (*NumberError)(nil)
	_ CalcError = (*EmptyExpressionError)(nil)
	_ CalcError = (*SyntaxError)(nil)
	_ CalcError = (*DomainError)(nil)
	_ CalcError = (*OverflowError)(nil)
)
