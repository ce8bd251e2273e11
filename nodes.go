package ahcalc

import (
	"strconv"
	"strings"
)

// node is a node in the expression tree. Trees are strictly shaped: a parent
// exclusively owns its children, nothing is shared, and every operator node
// has its full complement of operands.
type node struct {
	kind nodeKind

	val float64 // valid when kind is nodeNum

	left  *node
	right *node
}

type nodeKind int8

const (
	nodeNone nodeKind = iota

	nodeNum // literal, value in val

	nodeFact // factorial of left

	nodeAdd // left + right
	nodeSub // left - right
	nodeMul // left * right
	nodeDiv // left / right
	nodePow // left ^ right
)

func (k nodeKind) String() string {
	switch k {
	case nodeNone:
		return "None"
	case nodeNum:
		return "Num"
	case nodeFact:
		return "Fact"
	case nodeAdd:
		return "Add"
	case nodeSub:
		return "Sub"
	case nodeMul:
		return "Mul"
	case nodeDiv:
		return "Div"
	case nodePow:
		return "Pow"
	default:
		return "nodeKind(" + strconv.Itoa(int(k)) + ")"
	}
}

func (n *node) String() string {
	var b strings.Builder
	n.fmt(&b, false)
	return b.String()
}

// fmt writes a fully bracketed rendering of the tree, alternating round and
// square brackets by depth so the grouping is readable.
func (n *node) fmt(b *strings.Builder, square bool) {
	var l, r byte = '(', ')'
	if square {
		l, r = '[', ']'
	}
	b.WriteByte(l)
	defer b.WriteByte(r)
	switch n.kind {
	case nodeNum:
		b.WriteString(strconv.FormatFloat(n.val, 'g', -1, 64))
	case nodeFact:
		n.left.fmt(b, !square)
		b.WriteByte('!')
	case nodeAdd:
		n.binfmt(b, " + ", square)
	case nodeSub:
		n.binfmt(b, " - ", square)
	case nodeMul:
		n.binfmt(b, " * ", square)
	case nodeDiv:
		n.binfmt(b, " / ", square)
	case nodePow:
		n.binfmt(b, " ^ ", square)
	default:
		panic("ahcalc: invalid node kind " + n.kind.String() + " after writing " + b.String())
	}
}

func (n *node) binfmt(b *strings.Builder, op string, square bool) {
	n.left.fmt(b, !square)
	b.WriteString(op)
	n.right.fmt(b, !square)
}
