package arith

// Context carries named definitions for evaluating expressions. The
// parser never populates it and neither node kind reads it; it exists so
// that downstream consumers can bind variables and functions without the
// tree shape changing underneath them.
type Context struct {
	Variables map[string]Node
	Functions map[string]Node
}

// NewContext creates an empty evaluation context.
func NewContext() *Context {
	return &Context{
		Variables: make(map[string]Node),
		Functions: make(map[string]Node),
	}
}

func (n *Number) Eval(ctx *Context) (float64, error) {
	return n.Value, nil
}

func (n *BinaryOp) Eval(ctx *Context) (float64, error) {
	lhs, err := n.Left.Eval(ctx)
	if err != nil {
		return 0, err
	}
	rhs, err := n.Right.Eval(ctx)
	if err != nil {
		return 0, err
	}
	switch n.Op {
	case OpAdd:
		return lhs + rhs, nil
	case OpSub:
		return lhs - rhs, nil
	case OpDiv:
		// Zero divisors follow IEEE-754: the result is ±Inf or NaN.
		return lhs / rhs, nil
	case OpMul:
		return lhs * rhs, nil
	case OpGreater:
		return btof(lhs > rhs), nil
	case OpLess:
		return btof(lhs < rhs), nil
	}
	panic("arith: invalid operator in tree: " + n.Op.String())
}

func btof(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// EvalString is a shortcut to tokenize, parse, and evaluate an expression
// string with an empty context.
func EvalString(src string) (float64, error) {
	tokens, err := Tokenize(src)
	if err != nil {
		return 0, err
	}
	n, err := Parse(tokens)
	if err != nil {
		return 0, err
	}
	if n == nil {
		return 0, &EvalError{Expr: ""}
	}
	return n.Eval(NewContext())
}
