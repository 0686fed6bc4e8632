package arith

import (
	"math"
	"strconv"
	"strings"
)

// Op is a binary operator.
type Op int

const (
	OpAdd Op = iota
	OpSub
	OpDiv
	OpMul
	OpGreater
	OpLess
)

// opFromChar maps an operator token character to its Op.
func opFromChar(c byte) (Op, bool) {
	switch c {
	case '+':
		return OpAdd, true
	case '-':
		return OpSub, true
	case '/':
		return OpDiv, true
	case '*':
		return OpMul, true
	case '>':
		return OpGreater, true
	case '<':
		return OpLess, true
	}
	return 0, false
}

// Char returns the source character of the operator.
func (op Op) Char() byte {
	switch op {
	case OpAdd:
		return '+'
	case OpSub:
		return '-'
	case OpDiv:
		return '/'
	case OpMul:
		return '*'
	case OpGreater:
		return '>'
	case OpLess:
		return '<'
	}
	panic("arith: invalid operator " + strconv.Itoa(int(op)))
}

func (op Op) String() string { return string(op.Char()) }

// Node is one node of a parsed expression tree. The implementation set is
// closed: a Node is either a *Number leaf or a *BinaryOp with exactly two
// non-nil children. Nodes are immutable after parsing and safe to render
// and evaluate concurrently.
type Node interface {
	// String renders the subtree as a compact expression with no brackets
	// and no spaces, reproducing the original text of an expression that
	// was written that way.
	String() string
	// Eval computes the value of the subtree. The context is reserved for
	// variable and function bindings and may be nil.
	Eval(ctx *Context) (float64, error)

	astNode()
}

// Number is a floating-point literal leaf.
type Number struct {
	Value float64
}

// BinaryOp applies Op to the values of its two children. Each node owns
// its children outright; subtrees are never shared between parents.
type BinaryOp struct {
	Op          Op
	Left, Right Node
}

func (*Number) astNode()   {}
func (*BinaryOp) astNode() {}

func (n *Number) String() string {
	// Values within 1e-7 of an integer render in integer form.
	if r := math.Round(n.Value); math.Abs(n.Value-r) < 1e-7 {
		return strconv.FormatFloat(r, 'f', -1, 64)
	}
	return strconv.FormatFloat(n.Value, 'f', -1, 64)
}

func (n *BinaryOp) String() string {
	var b strings.Builder
	b.WriteString(n.Left.String())
	b.WriteByte(n.Op.Char())
	b.WriteString(n.Right.String())
	return b.String()
}
