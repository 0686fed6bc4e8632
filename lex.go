package arith

import "strconv"

// TokenKind identifies the class of a scanned token.
type TokenKind int

const (
	TokenUnknown TokenKind = iota
	// TokenLeftBracket is an opening parenthesis.
	TokenLeftBracket
	// TokenRightBracket is a closing parenthesis.
	TokenRightBracket
	// TokenComma is an argument separator.
	TokenComma
	// TokenNumber is a floating-point literal.
	TokenNumber
	// TokenKeyword is a word lexeme outside the keyword table.
	TokenKeyword
	// TokenIdentifier is a word lexeme found in the keyword table.
	TokenIdentifier
	// TokenOperator is one of + - * / < >.
	TokenOperator
)

func (k TokenKind) String() string {
	switch k {
	case TokenUnknown:
		return "unknown"
	case TokenLeftBracket:
		return "leftbracket"
	case TokenRightBracket:
		return "rightbracket"
	case TokenComma:
		return "comma"
	case TokenNumber:
		return "number"
	case TokenKeyword:
		return "keyword"
	case TokenIdentifier:
		return "identifier"
	case TokenOperator:
		return "operator"
	}
	return "tokenkind(" + strconv.Itoa(int(k)) + ")"
}

// Token is a single lexical element of an expression. Tokens are
// comparable: two tokens are equal when their kind and payload match.
type Token struct {
	Kind TokenKind
	// Num is the value of a TokenNumber.
	Num float64
	// Ch is the source character of an operator, bracket, comma, or
	// unknown token.
	Ch byte
	// Text is the lexeme of a keyword or identifier.
	Text string
}

func (t Token) String() string {
	switch t.Kind {
	case TokenNumber:
		return t.Kind.String() + ":" + strconv.FormatFloat(t.Num, 'g', -1, 64)
	case TokenKeyword, TokenIdentifier:
		return t.Kind.String() + ":" + t.Text
	default:
		return t.Kind.String() + ":" + string(t.Ch)
	}
}

// keywords is the fixed table consulted for word lexemes.
var keywords = [...]string{"func", "if", "else"}

func isKeyword(lexeme string) bool {
	for _, k := range keywords {
		if lexeme == k {
			return true
		}
	}
	return false
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

func isAlpha(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

func isAlnum(c byte) bool { return isAlpha(c) || isDigit(c) }

// Tokenize scans src into its complete token sequence. The cursor only
// advances; every character outside a recognized class becomes a
// TokenUnknown rather than an error. The only failure is a numeric
// literal that does not parse, which yields a *LexError.
func Tokenize(src string) ([]Token, error) {
	var tokens []Token
	i := 0
	for i < len(src) {
		c := src[i]
		switch {
		case isSpace(c):
			i++
		case isAlpha(c):
			start := i
			for i < len(src) && (isAlnum(src[i]) || src[i] == '_') {
				i++
			}
			lexeme := src[start:i]
			// Word tagging is inverted relative to the kind names: table
			// members become identifiers and every other word a keyword.
			// No grammar rule consumes either kind; the tagging is kept
			// as-is for parity with existing consumers of the stream.
			if isKeyword(lexeme) {
				tokens = append(tokens, Token{Kind: TokenIdentifier, Text: lexeme})
			} else {
				tokens = append(tokens, Token{Kind: TokenKeyword, Text: lexeme})
			}
		case isDigit(c):
			lit := scanNumber(src[i:])
			value, err := strconv.ParseFloat(lit, 64)
			if err != nil {
				reason := "malformed literal"
				if ne, _ := err.(*strconv.NumError); ne != nil && ne.Err == strconv.ErrRange {
					reason = "value out of range"
				}
				return nil, &LexError{Offset: i, Text: lit, Reason: reason}
			}
			tokens = append(tokens, Token{Kind: TokenNumber, Num: value})
			i += len(lit)
		default:
			i++
			tok := Token{Ch: c}
			switch c {
			case '(':
				tok.Kind = TokenLeftBracket
			case ')':
				tok.Kind = TokenRightBracket
			case '+', '-', '/', '*', '<', '>':
				tok.Kind = TokenOperator
			case ',':
				tok.Kind = TokenComma
			default:
				tok.Kind = TokenUnknown
			}
			tokens = append(tokens, tok)
		}
	}
	return tokens, nil
}

// scanNumber returns the maximal numeric literal at the start of s, which
// begins with a digit: an integer part, at most one fraction, and an
// exponent only when it is well-formed, so "1e" leaves the e for the next
// token just as "1+" leaves the +.
func scanNumber(s string) string {
	i := 0
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
		}
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if j < len(s) && isDigit(s[j]) {
			for j < len(s) && isDigit(s[j]) {
				j++
			}
			i = j
		}
	}
	return s[:i]
}
