package calcy

import (
	"strconv"
)

// Eval evaluates the expression over d with the given variables. vars is
// only read. Failures of the domain's own operations are returned as they
// are, and a missing variable is a NameError.
func (e *Expr[T]) Eval(d Domain[T], vars map[string]T) (T, error) {
	return e.n.eval(d, vars)
}

// eval evaluates both children before applying the node's operator.
func (n *node[T]) eval(d Domain[T], vars map[string]T) (T, error) {
	var zero T
	switch n.kind {
	case nodeNum:
		return n.val, nil
	case nodeName:
		v, ok := vars[n.name]
		if !ok {
			return zero, &NameError{Name: n.name}
		}
		return v, nil
	case nodeAdd, nodeSub, nodeMul, nodeDiv, nodePow:
		// handled below
	default:
		panic("calcy: invalid AST node " + n.kind.String())
	}
	l, err := n.left.eval(d, vars)
	if err != nil {
		return zero, err
	}
	r, err := n.right.eval(d, vars)
	if err != nil {
		return zero, err
	}
	switch n.kind {
	case nodeAdd:
		return d.Add(l, r)
	case nodeSub:
		return d.Sub(l, r)
	case nodeMul:
		return d.Mul(l, r)
	case nodeDiv:
		return d.Div(l, r)
	default:
		return d.Pow(l, r)
	}
}

// Solve tokenizes, builds, and evaluates an expression over d, returning the
// first error from any stage.
func Solve[T any](d Domain[T], src string, vars map[string]T) (T, error) {
	var zero T
	toks, err := Tokenize(d, src)
	if err != nil {
		return zero, err
	}
	e, err := BuildTree(toks)
	if err != nil {
		return zero, err
	}
	return e.Eval(d, vars)
}

// NameError is an error from a lookup for a variable that is missing from the
// evaluation environment.
type NameError struct {
	// Name is the name that was missing.
	Name string
}

func (err *NameError) Error() string {
	return "undefined variable: " + strconv.Quote(err.Name)
}
