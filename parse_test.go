package arith

import (
	"errors"
	"testing"
)

// diff finds the first in-order pair of nodes where n and m differ, or
// nil, nil if the two trees are equal.
func diff(n, m Node) (Node, Node) {
	if n == nil || m == nil {
		if n != m {
			return n, m
		}
		return nil, nil
	}
	switch n := n.(type) {
	case *Number:
		m, ok := m.(*Number)
		if !ok || n.Value != m.Value {
			return n, m
		}
	case *BinaryOp:
		m, ok := m.(*BinaryOp)
		if !ok || n.Op != m.Op {
			return n, m
		}
		if d, e := diff(n.Left, m.Left); d != nil || e != nil {
			return d, e
		}
		if d, e := diff(n.Right, m.Right); d != nil || e != nil {
			return d, e
		}
	}
	return nil, nil
}

func num(v float64) Node { return &Number{Value: v} }

func bin(op Op, left, right Node) Node {
	return &BinaryOp{Op: op, Left: left, Right: right}
}

func mustTokenize(t *testing.T, src string) []Token {
	t.Helper()
	tokens, err := Tokenize(src)
	if err != nil {
		t.Fatalf("tokenizing %q: %v", src, err)
	}
	return tokens
}

func TestParse(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want Node
	}{
		{"single", "5", num(5)},
		{"add", "2+2", bin(OpAdd, num(2), num(2))},
		{"chain", "2+2+2", bin(OpAdd, bin(OpAdd, num(2), num(2)), num(2))},
		{"sub-chain", "10-2-3", bin(OpSub, bin(OpSub, num(10), num(2)), num(3))},
		{"mul", "2*3", bin(OpMul, num(2), num(3))},
		{"div", "8/2", bin(OpDiv, num(8), num(2))},
		{"less", "2<3", bin(OpLess, num(2), num(3))},
		{"greater", "3>2", bin(OpGreater, num(3), num(2))},
		{"precedence", "1+2*3", bin(OpAdd, num(1), bin(OpMul, num(2), num(3)))},
		{"precedence-left", "2*3+1", bin(OpAdd, bin(OpMul, num(2), num(3)), num(1))},
		{"mul-chain", "2*3*4", bin(OpMul, bin(OpMul, num(2), num(3)), num(4))},
		{"div-mul-chain", "8/2/2*3", bin(OpMul, bin(OpDiv, bin(OpDiv, num(8), num(2)), num(2)), num(3))},
		{"group-in-chain", "1+2+3*4", bin(OpAdd, bin(OpAdd, num(1), num(2)), bin(OpMul, num(3), num(4)))},
		{"two-groups", "2*3+4*5", bin(OpAdd, bin(OpMul, num(2), num(3)), bin(OpMul, num(4), num(5)))},
		{"compare-groups", "1+2>2*2", bin(OpGreater, bin(OpAdd, num(1), num(2)), bin(OpMul, num(2), num(2)))},
		{
			"mixed", "1+2*3-4+5*6",
			bin(OpAdd,
				bin(OpSub,
					bin(OpAdd, num(1), bin(OpMul, num(2), num(3))),
					num(4)),
				bin(OpMul, num(5), num(6))),
		},
		{
			"mixed-tail", "1+2*3-4+5*6-7",
			bin(OpSub,
				bin(OpAdd,
					bin(OpSub,
						bin(OpAdd, num(1), bin(OpMul, num(2), num(3))),
						num(4)),
					bin(OpMul, num(5), num(6))),
				num(7)),
		},
		{"decimal", "2.5*4", bin(OpMul, num(2.5), num(4))},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := Parse(mustTokenize(t, c.src))
			if err != nil {
				t.Fatalf("parsing %q: %v", c.src, err)
			}
			if d, e := diff(got, c.want); d != nil || e != nil {
				t.Errorf("parsing %q: tree %v differs from %v at %v vs %v", c.src, got, c.want, d, e)
			}
		})
	}
}

func TestParseEmpty(t *testing.T) {
	for _, tokens := range [][]Token{nil, {}} {
		n, err := Parse(tokens)
		if err != nil {
			t.Errorf("parsing empty sequence: unexpected error %v", err)
		}
		if n != nil {
			t.Errorf("parsing empty sequence: non-nil node %v", n)
		}
	}
}

func TestParseErrors(t *testing.T) {
	srcs := []string{
		// operators at sequence boundaries
		"*2", "2*", "/2", "2/", "+2", "2+", "-2", "2-", "<2", "2<",
		"*", "+",
		// adjacent numbers
		"2 2", "2+2 2", "2*3 4", "1 2*3",
		// doubled operators
		"1++2", "1+-2", "2**3", "1+*2", "2*3+*4", "2*3+ +4",
		// non-numbers beside * and /
		"x*2", "2*x", "2*(3)", "(2)*3",
		// tokens outside the grammar
		"(1)", "1,2", "foo+2", "2+if", "2?2",
	}
	for _, src := range srcs {
		n, err := Parse(mustTokenize(t, src))
		if err == nil {
			t.Errorf("parsing %q: no error, tree %v", src, n)
			continue
		}
		var perr *ParseError
		if !errors.As(err, &perr) {
			t.Errorf("parsing %q: error %v is not a ParseError", src, err)
		}
	}
}

func TestParseHandBuiltTokens(t *testing.T) {
	num := func(v float64) Token { return Token{Kind: TokenNumber, Num: v} }
	op := func(c byte) Token { return Token{Kind: TokenOperator, Ch: c} }

	// A number immediately following a number must be rejected.
	tokens := []Token{num(2), op('+'), num(2), num(2)}
	if n, err := Parse(tokens); err == nil {
		t.Errorf("parsing %v: no error, tree %v", tokens, n)
	}

	// An operator token with an unrecognized character must be rejected,
	// not folded.
	tokens = []Token{num(2), op('%'), num(2)}
	if n, err := Parse(tokens); err == nil {
		t.Errorf("parsing %v: no error, tree %v", tokens, n)
	}

	tokens = []Token{num(2), op('+'), num(3)}
	n, err := Parse(tokens)
	if err != nil {
		t.Fatalf("parsing %v: %v", tokens, err)
	}
	if d, e := diff(n, bin(OpAdd, num2node(2), num2node(3))); d != nil || e != nil {
		t.Errorf("parsing %v: got %v", tokens, n)
	}
}

func num2node(v float64) Node { return &Number{Value: v} }

func TestParseErrorOffsets(t *testing.T) {
	cases := []struct {
		src string
		pos int
	}{
		{"*2", 0},
		{"2*", 1},
		{"2+2 2", 3},
		{"1++2", 2},
		{"2*3 4", 3},
	}
	for _, c := range cases {
		_, err := Parse(mustTokenize(t, c.src))
		var perr *ParseError
		if !errors.As(err, &perr) {
			t.Errorf("parsing %q: error %v is not a ParseError", c.src, err)
			continue
		}
		if perr.Pos() != c.pos {
			t.Errorf("parsing %q: error at token %d, want %d: %v", c.src, perr.Pos(), c.pos, err)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	// Compact valid expressions must stringify back to their source.
	srcs := []string{
		"5",
		"2+2",
		"2+2+2",
		"1+2*3",
		"2*3",
		"2*3*4",
		"8/2/2*3",
		"1+2*3-4+5*6",
		"1+2*3-4+5*6-7",
		"2<3",
		"3>2",
		"1+2>2*2",
		"2.5*4-1",
		"0.1+0.2",
		"10-2-3",
		"100/10*2",
	}
	for _, src := range srcs {
		n, err := Parse(mustTokenize(t, src))
		if err != nil {
			t.Errorf("parsing %q: %v", src, err)
			continue
		}
		if got := n.String(); got != src {
			t.Errorf("round trip of %q: got %q", src, got)
		}
	}
}

func TestTreeShape(t *testing.T) {
	// N numbers and N-1 operators produce N leaves and N-1 internal nodes.
	srcs := []string{"1", "1+2", "1+2*3-4+5*6", "2*3*4*5", "1<2>3"}
	for _, src := range srcs {
		tokens := mustTokenize(t, src)
		n, err := Parse(tokens)
		if err != nil {
			t.Errorf("parsing %q: %v", src, err)
			continue
		}
		leaves, inner := countNodes(n)
		nums := (len(tokens) + 1) / 2
		if leaves != nums || inner != nums-1 {
			t.Errorf("parsing %q: %d leaves and %d internal nodes, want %d and %d", src, leaves, inner, nums, nums-1)
		}
	}
}

func countNodes(n Node) (leaves, inner int) {
	switch n := n.(type) {
	case *Number:
		return 1, 0
	case *BinaryOp:
		if n.Left == nil || n.Right == nil {
			panic("binary node with missing child")
		}
		ll, li := countNodes(n.Left)
		rl, ri := countNodes(n.Right)
		return ll + rl, li + ri + 1
	}
	return 0, 0
}
