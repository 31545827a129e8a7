package chemformula

import (
	"strconv"
	"strings"
)

// node is a node in the parse tree of a formula.
type node struct {
	kind nodeKind

	// name is the element symbol for nodeElement or the opening bracket for
	// nodeGroup. The root group has no name.
	name string
	// count is the element count for nodeElement or the multiplier for
	// nodeGroup. It is at least 1.
	count int
	// pos is the position of the symbol or opening bracket.
	pos int

	kids []*node
}

type nodeKind int8

const (
	nodeNone nodeKind = iota

	nodeElement // name repeated count times
	nodeGroup   // kids repeated count times
)

func (k nodeKind) String() string {
	switch k {
	case nodeNone:
		return "None"
	case nodeElement:
		return "Element"
	case nodeGroup:
		return "Group"
	default:
		return "nodeKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// String formats the tree with every group in round brackets and every count
// explicit, e.g. "((C1H3)3N1)1" for (CH3)3N.
func (n *node) String() string {
	var b strings.Builder
	n.fmt(&b)
	return b.String()
}

func (n *node) fmt(b *strings.Builder) {
	// Walk with an explicit stack so that deeply nested input cannot exhaust
	// the goroutine stack. A close frame ends the group it names.
	type frame struct {
		n     *node
		close bool
	}
	stack := []frame{{n: n}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.close {
			b.WriteByte(')')
			b.WriteString(strconv.Itoa(f.n.count))
			continue
		}
		switch f.n.kind {
		case nodeElement:
			b.WriteString(f.n.name)
			b.WriteString(strconv.Itoa(f.n.count))
		case nodeGroup:
			b.WriteByte('(')
			stack = append(stack, frame{n: f.n, close: true})
			for i := len(f.n.kids) - 1; i >= 0; i-- {
				stack = append(stack, frame{n: f.n.kids[i]})
			}
		default:
			panic("chemformula: invalid node kind " + f.n.kind.String() + " after writing " + b.String())
		}
	}
}
