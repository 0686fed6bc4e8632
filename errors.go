package arith

import "strconv"

// LexError indicates a numeric literal that did not scan. It implements
// InputError.
type LexError struct {
	// Offset is the byte offset of the literal in the source string.
	Offset int
	// Text is the literal as scanned.
	Text string
	// Reason describes why the literal was rejected.
	Reason string
}

func (err *LexError) Error() string {
	return errpos(err.Offset, "invalid numeric literal "+strconv.Quote(err.Text)+": "+err.Reason)
}

func (err *LexError) Pos() int {
	return err.Offset
}

// ParseError indicates a structurally invalid token sequence. It
// implements InputError.
type ParseError struct {
	// Offset is the index of the offending token, or the sequence length
	// for errors at the end of the input.
	Offset int
	// Msg describes the violation.
	Msg string
}

func (err *ParseError) Error() string {
	return errpos(err.Offset, err.Msg)
}

func (err *ParseError) Pos() int {
	return err.Offset
}

// EvalError indicates a subtree that produced no value during evaluation.
// With the current node kinds every subtree has a value, so this is only
// reachable through the variable and function bindings that Context
// reserves, or by evaluating an empty expression through EvalString.
type EvalError struct {
	// Expr is the rendering of the subtree that had no value.
	Expr string
}

func (err *EvalError) Error() string {
	if err.Expr == "" {
		return "expression has no value"
	}
	return "no value for " + strconv.Quote(err.Expr)
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting
// from invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the offset of the input element that caused the error:
	// a byte offset for scanning errors, a token index for parse errors.
	Pos() int
}

var (
	_ InputError = (*LexError)(nil)
	_ InputError = (*ParseError)(nil)
)
