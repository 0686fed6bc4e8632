// Package arith converts arithmetic expressions written as text into
// evaluable syntax trees.
//
// Expressions are built from floating-point numbers and the binary
// operators + - * / > <. Multiplication and division bind tighter than
// the additive and comparison operators, which share one precedence
// level; every operator is left-associative. Scanning and parsing are
// separate stages, so consumers can also hand the parser a token
// sequence they built themselves.
package arith
