package calcy

import (
	"strings"
)

// node is a node in the expression tree. Operation nodes own exactly two
// children; leaves have none.
type node[T any] struct {
	kind nodeKind

	// name is the literal text, the variable name, or the operator.
	name string
	val  T

	left  *node[T]
	right *node[T]
}

type nodeKind int8

const (
	nodeNone nodeKind = iota

	nodeNum  // val
	nodeName // lookup(name)

	nodeAdd // evaluate left, add right
	nodeSub // evaluate left, sub right
	nodeMul // evaluate left, mul right
	nodeDiv // evaluate left, div by right
	nodePow // evaluate left, exp by right
)

//go:generate go mod edit -require=golang.org/x/tools@v0.1.0
//go:generate go mod download
//go:generate go run golang.org/x/tools/cmd/stringer -type=nodeKind -trimprefix=node
//go:generate go mod tidy

func (n *node[T]) String() string {
	var b strings.Builder
	n.fmt(&b, false)
	return b.String()
}

func (n *node[T]) fmt(b *strings.Builder, square bool) {
	var l, r byte = '(', ')'
	if square {
		l, r = '[', ']'
	}
	b.WriteByte(l)
	defer b.WriteByte(r)
	switch n.kind {
	case nodeNone:
		// Invalid nodes use invalid characters.
		b.WriteByte('$')
		if n.left != nil {
			n.left.fmt(b, square)
		}
		b.WriteByte('#')
		if n.right != nil {
			n.right.fmt(b, square)
		}
		b.WriteByte('$')
	case nodeNum:
		b.WriteString(n.name)
	case nodeName:
		if len([]rune(n.name)) > 1 {
			b.WriteByte('"')
			b.WriteString(n.name)
			b.WriteByte('"')
			return
		}
		b.WriteString(n.name)
	case nodeAdd, nodeSub, nodeMul, nodeDiv, nodePow:
		n.left.fmt(b, !square)
		b.WriteByte(' ')
		b.WriteString(n.name)
		b.WriteByte(' ')
		n.right.fmt(b, !square)
	default:
		panic("calcy: invalid node kind " + n.kind.String() + " after writing " + b.String())
	}
}

// names adds the names of all variables under n to m.
func (n *node[T]) names(m map[string]bool) {
	if n == nil {
		return
	}
	if n.kind == nodeName {
		m[n.name] = true
	}
	n.left.names(m)
	n.right.names(m)
}

// opkind gets the node kind for an operator token.
func opkind(text string) nodeKind {
	switch text {
	case "+":
		return nodeAdd
	case "-":
		return nodeSub
	case "*":
		return nodeMul
	case "/":
		return nodeDiv
	case "^":
		return nodePow
	default:
		return nodeNone
	}
}
