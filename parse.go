package calcy

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// Expr is a parsed expression that can be evaluated in any environment of
// its domain's values.
type Expr[T any] struct {
	// n is the root node of the expression.
	n *node[T]
	// names is the sorted list of variable names used in the expression.
	names []string
}

// BuildTree builds an expression tree from a token sequence.
//
// There is no grammar. The tree is built by splitting the tokens at their
// major operator, the one that is evaluated last, and recursing on both sides.
// The major operator is the one at the shallowest bracket level, and among
// those the loosest-binding: + before -, - before *, * before /, / before ^.
// Ties go to the rightmost operator, so chains of equal operators associate
// to the left; "10-3-2" is (10-3)-2.
func BuildTree[T any](toks []Token[T]) (*Expr[T], error) {
	if err := checkbrackets(toks); err != nil {
		return nil, err
	}
	n, err := build(toks, nil)
	if err != nil {
		return nil, err
	}
	m := make(map[string]bool)
	n.names(m)
	ex := Expr[T]{n: n, names: make([]string, 0, len(m))}
	for k := range m {
		ex.names = append(ex.names, k)
	}
	sort.Strings(ex.names)
	return &ex, nil
}

// build builds the tree for a span of tokens. op is the operator whose
// operand the span is, or nil for the whole input.
func build[T any](toks []Token[T], op *Token[T]) (*node[T], error) {
	toks = unwrap(toks)
	switch len(toks) {
	case 0:
		if op == nil {
			return nil, &EmptyExpressionError{}
		}
		return nil, &EmptyExpressionError{Col: op.Pos, Op: op.Text}
	case 1:
		switch tok := toks[0]; tok.Kind {
		case TokenNum:
			return &node[T]{kind: nodeNum, name: tok.Text, val: tok.Value}, nil
		case TokenName:
			return &node[T]{kind: nodeName, name: tok.Text}, nil
		default:
			return nil, unexpected(tok)
		}
	}
	k, level := major(toks)
	if k < 0 || level > 0 {
		// Only a hand-built sequence can lack an operator between terms.
		return nil, unexpected(toks[1])
	}
	split := toks[k]
	kind := opkind(split.Text)
	if kind == nodeNone {
		return nil, unexpected(split)
	}
	left, err := build(toks[:k], &split)
	if err != nil {
		return nil, err
	}
	right, err := build(toks[k+1:], &split)
	if err != nil {
		return nil, err
	}
	return &node[T]{kind: kind, name: split.Text, left: left, right: right}, nil
}

// major finds the index and bracket level of the operator at which to split
// toks. The index is -1 if there are no operators.
func major[T any](toks []Token[T]) (int, int) {
	best, bestlevel, bestprec := -1, 0, 0
	level := 0
	for i, tok := range toks {
		switch tok.Kind {
		case TokenOpen:
			level++
		case TokenClose:
			level--
		case TokenOp:
			p := splitprec(tok.Text)
			// Shallower always wins. At the same level, >= makes the last of
			// equally loose operators win.
			if best < 0 || level < bestlevel || level == bestlevel && p >= bestprec {
				best, bestlevel, bestprec = i, level, p
			}
		}
	}
	return best, bestlevel
}

// splitprec gets the split priority of an operator. Higher is looser, i.e.
// preferred as the root of a span.
func splitprec(text string) int {
	switch text {
	case "+":
		return 10
	case "-":
		return 9
	case "*":
		return 8
	case "/":
		return 7
	case "^":
		return 6
	default:
		return 0
	}
}

// unwrap strips bracket pairs that enclose the entire span. toks must be
// balanced.
//
// With a leading opens and b trailing closes, k pairs enclose the span exactly
// when k <= a, k <= b, and the bracket level stays at least k everywhere
// between the leading opens and the trailing closes.
func unwrap[T any](toks []Token[T]) []Token[T] {
	n := len(toks)
	a := 0
	for a < n && toks[a].Kind == TokenOpen {
		a++
	}
	b := 0
	for b < n-a && toks[n-1-b].Kind == TokenClose {
		b++
	}
	k := min(a, b)
	level := a
	for _, tok := range toks[a : n-b] {
		if k == 0 {
			break
		}
		switch tok.Kind {
		case TokenOpen:
			level++
		case TokenClose:
			level--
			k = min(k, level)
		}
	}
	return toks[k : n-k]
}

// checkbrackets checks that every bracket in toks is matched.
func checkbrackets[T any](toks []Token[T]) error {
	var open []int
	for _, tok := range toks {
		switch tok.Kind {
		case TokenOpen:
			open = append(open, tok.Pos)
		case TokenClose:
			if len(open) == 0 {
				return &BracketError{Col: tok.Pos, Right: tok.Text}
			}
			open = open[:len(open)-1]
		}
	}
	if len(open) > 0 {
		return &BracketError{Col: open[len(open)-1], Left: "("}
	}
	return nil
}

func unexpected[T any](tok Token[T]) error {
	r, _ := utf8.DecodeRuneInString(tok.Text)
	return &TokenError{Col: tok.Pos, Char: r}
}

// Vars returns the names of variables used in the expression, in sorted order.
// The returned slice must not be modified.
func (e *Expr[T]) Vars() []string {
	return e.names
}

// String creates a string representation of the parsed expression, with
// alternating round and square brackets grouping each term.
func (e *Expr[T]) String() string {
	var b strings.Builder
	e.n.fmt(&b, false)
	return b.String()
}
