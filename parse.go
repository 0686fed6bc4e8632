package arith

// Expr   = Chain
// Chain  = Atom { ('+' | '-' | '>' | '<') Atom }
// Atom   = num | Group
// Group  = num ('*' | '/') num { ('*' | '/') num }
//
// The parser is not a recursive descent over that grammar. It makes a
// forward scan for each * or /, folds the surrounding numbers into a
// group, and splices the group into a plain left-to-right fold of the
// low-precedence chain around it. Parser state between splices is the
// explicit triple (tree, pending operator, segment start).

// Parse consumes a token sequence and returns the root of its expression
// tree. An empty sequence yields a nil Node and nil error. Structurally
// invalid input, such as an operator at a sequence boundary, a non-number
// beside * or /, or two numbers with no operator between them, yields a
// *ParseError.
func Parse(tokens []Token) (Node, error) {
	var (
		tree   Node // everything folded so far
		pend   Op   // operator waiting to attach the next operand
		pendOK bool
		seg    = 0 // first token not yet folded into tree
	)
	for {
		p := findHighPrec(tokens, seg)
		if p < 0 {
			// No high-precedence operator remains; the rest of the input
			// is a plain chain.
			return foldSpan(tree, pend, pendOK, tokens, seg, len(tokens))
		}
		if p == seg {
			return nil, &ParseError{Offset: p, Msg: "operator " + string(tokens[p].Ch) + " where a number was expected"}
		}
		if p == len(tokens)-1 {
			return nil, &ParseError{Offset: p, Msg: "operator " + string(tokens[p].Ch) + " missing right operand"}
		}
		if p-1 > seg {
			// The tokens before the group end with the chain operator that
			// will attach it; fold what precedes that operator first.
			op, err := operatorAt(tokens, p-2)
			if err != nil {
				return nil, err
			}
			folded, err := foldSpan(tree, pend, pendOK, tokens, seg, p-2)
			if err != nil {
				return nil, err
			}
			if folded == nil {
				return nil, &ParseError{Offset: p - 2, Msg: "operator " + string(tokens[p-2].Ch) + " missing left operand"}
			}
			tree, pend, pendOK = folded, op, true
		}
		group, next, err := foldGroup(tokens, p)
		if err != nil {
			return nil, err
		}
		switch {
		case pendOK:
			tree = &BinaryOp{Op: pend, Left: tree, Right: group}
			pendOK = false
		case tree != nil:
			return nil, &ParseError{Offset: p - 1, Msg: "expected operator, found " + tokens[p-1].String()}
		default:
			tree = group
		}
		if next >= len(tokens) {
			seg = next
			continue
		}
		op, err := operatorAt(tokens, next)
		if err != nil {
			return nil, err
		}
		pend, pendOK = op, true
		seg = next + 1
	}
}

// isHighPrec reports whether tok is a multiplication or division operator.
func isHighPrec(tok Token) bool {
	return tok.Kind == TokenOperator && (tok.Ch == '*' || tok.Ch == '/')
}

// findHighPrec returns the index of the first high-precedence operator at
// or after from, or -1 if the remainder of the sequence has none.
func findHighPrec(tokens []Token, from int) int {
	for i := from; i < len(tokens); i++ {
		if isHighPrec(tokens[i]) {
			return i
		}
	}
	return -1
}

// foldGroup folds the run of high-precedence operations whose first
// operator is at p into a single left-leaning subtree, and returns the
// index one past the group's final number. The group only peeks one token
// to each side of an operator, so both neighbours must be number
// literals.
func foldGroup(tokens []Token, p int) (Node, int, error) {
	left, err := numberAt(tokens, p-1)
	if err != nil {
		return nil, 0, err
	}
	right, err := numberAt(tokens, p+1)
	if err != nil {
		return nil, 0, err
	}
	op, ok := opFromChar(tokens[p].Ch)
	if !ok {
		return nil, 0, &ParseError{Offset: p, Msg: "unknown operator " + string(tokens[p].Ch)}
	}
	var group Node = &BinaryOp{Op: op, Left: left, Right: right}
	next := p + 2
	for next < len(tokens) && isHighPrec(tokens[next]) {
		if next == len(tokens)-1 {
			return nil, 0, &ParseError{Offset: next, Msg: "operator " + string(tokens[next].Ch) + " missing right operand"}
		}
		rhs, err := numberAt(tokens, next+1)
		if err != nil {
			return nil, 0, err
		}
		op, _ := opFromChar(tokens[next].Ch)
		group = &BinaryOp{Op: op, Left: group, Right: rhs}
		next += 2
	}
	return group, next, nil
}

// foldSpan left-folds tokens[start:end], which contains no
// high-precedence operators, continuing from an inherited tree and
// pending operator. The result is nil only when the span is empty and no
// tree was inherited.
func foldSpan(tree Node, pend Op, pendOK bool, tokens []Token, start, end int) (Node, error) {
	for i := start; i < end; i++ {
		tok := tokens[i]
		switch tok.Kind {
		case TokenOperator:
			if tree == nil {
				return nil, &ParseError{Offset: i, Msg: "operator " + string(tok.Ch) + " missing left operand"}
			}
			if pendOK {
				return nil, &ParseError{Offset: i, Msg: "expected number, found " + tok.String()}
			}
			op, ok := opFromChar(tok.Ch)
			if !ok {
				return nil, &ParseError{Offset: i, Msg: "unknown operator " + string(tok.Ch)}
			}
			pend, pendOK = op, true
		case TokenNumber:
			num := &Number{Value: tok.Num}
			switch {
			case pendOK:
				tree = &BinaryOp{Op: pend, Left: tree, Right: num}
				pendOK = false
			case tree != nil:
				return nil, &ParseError{Offset: i, Msg: "expected operator, found " + tok.String()}
			default:
				tree = num
			}
		default:
			return nil, &ParseError{Offset: i, Msg: "unexpected token " + tok.String()}
		}
	}
	if pendOK {
		return nil, &ParseError{Offset: end, Msg: "operator " + string(pend.Char()) + " missing right operand"}
	}
	return tree, nil
}

// numberAt returns the number literal at index i.
func numberAt(tokens []Token, i int) (*Number, error) {
	if tok := tokens[i]; tok.Kind == TokenNumber {
		return &Number{Value: tok.Num}, nil
	}
	return nil, &ParseError{Offset: i, Msg: "expected number, found " + tokens[i].String()}
}

// operatorAt returns the chain operator at index i.
func operatorAt(tokens []Token, i int) (Op, error) {
	tok := tokens[i]
	if tok.Kind != TokenOperator {
		return 0, &ParseError{Offset: i, Msg: "expected operator, found " + tok.String()}
	}
	op, ok := opFromChar(tok.Ch)
	if !ok {
		return 0, &ParseError{Offset: i, Msg: "unknown operator " + string(tok.Ch)}
	}
	return op, nil
}
