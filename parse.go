package ahcalc

import "strings"

// Expr is a parsed expression ready to be evaluated.
type Expr struct {
	// n is the root node of the expression.
	n *node
}

// Parse tokenizes an expression and builds its tree. The result honors the
// usual precedence ordering: grouping, then factorial, then ^, then * and /,
// then + and -, each class left-associative.
func Parse(src string) (*Expr, error) {
	toks, err := tokenize(src)
	if err != nil {
		return nil, err
	}
	n, err := build(toks)
	if err != nil {
		return nil, err
	}
	return &Expr{n: n}, nil
}

// String creates a fully bracketed representation of the parsed expression,
// with round and square brackets alternating by depth.
func (e *Expr) String() string {
	return e.n.String()
}

// term is one element of the builder's working sequence: either a symbol not
// yet consumed, or a resolved subtree.
type term struct {
	sym byte // 0 once resolved into n
	n   *node
}

// build constructs the expression tree from a token sequence. The tokens are
// copied into a working sequence which shrinks as each precedence pass
// consumes its operators into subtrees.
func build(toks []token) (*node, error) {
	seq := make([]term, len(toks))
	for i, t := range toks {
		switch t.kind {
		case tokenNum:
			seq[i] = term{n: &node{kind: nodeNum, val: t.num}}
		case tokenSym:
			seq[i] = term{sym: t.sym}
		default:
			panic("ahcalc: invalid token " + t.String())
		}
	}
	return reduce(seq, false)
}

// reduce runs the precedence passes over a working sequence. Each pass fully
// exhausts its operator class, leftmost occurrence first, before the next
// lower class runs. group indicates the sequence is the inside of a bracket,
// which only changes the error for an empty sequence.
func reduce(seq []term, group bool) (*node, error) {
	if len(seq) == 0 {
		return nil, &EmptyExpressionError{Group: group}
	}
	var err error
	if seq, err = groups(seq); err != nil {
		return nil, err
	}
	if seq, err = factorials(seq); err != nil {
		return nil, err
	}
	for _, ops := range []string{"^", "*/", "+-"} {
		if seq, err = binaries(seq, ops); err != nil {
			return nil, err
		}
	}
	if len(seq) != 1 {
		return nil, &SyntaxError{Terms: len(seq)}
	}
	if seq[0].n == nil {
		panic("ahcalc: reduction left a bare symbol " + string(seq[0].sym))
	}
	return seq[0].n, nil
}

// groups resolves every bracketed span. The first open bracket is located,
// its match found by depth counting, and the span between them is reduced
// recursively, so nesting works to any depth.
func groups(seq []term) ([]term, error) {
	for {
		start := -1
		for i, t := range seq {
			if t.sym == '(' {
				start = i
				break
			}
		}
		if start < 0 {
			return seq, nil
		}
		end, depth := -1, 0
		for i := start; i < len(seq); i++ {
			switch seq[i].sym {
			case '(':
				depth++
			case ')':
				depth--
			}
			if depth == 0 {
				end = i
				break
			}
		}
		if end < 0 {
			return nil, &ParenError{}
		}
		// Copy the interior so the recursive reduction cannot clobber the
		// outer sequence through the shared backing array.
		inner := append([]term(nil), seq[start+1:end]...)
		sub, err := reduce(inner, true)
		if err != nil {
			return nil, err
		}
		seq[start] = term{n: sub}
		seq = append(seq[:start+1], seq[end+1:]...)
	}
}

// factorials resolves every postfix ! operator, leftmost first. The element
// before the ! must be a resolved subtree.
func factorials(seq []term) ([]term, error) {
	for {
		idx := -1
		for i, t := range seq {
			if t.sym == '!' {
				idx = i
				break
			}
		}
		if idx < 0 {
			return seq, nil
		}
		if idx == 0 || seq[idx-1].n == nil {
			return nil, &OperandError{Op: '!'}
		}
		seq[idx-1] = term{n: &node{kind: nodeFact, left: seq[idx-1].n}}
		seq = append(seq[:idx], seq[idx+1:]...)
	}
}

// binaries resolves every operator in one precedence class, leftmost first.
// ops is the class, e.g. "*/". Leftmost-first consumption makes each class
// left-associative, including ^: "2^3^2" groups as "(2^3)^2".
func binaries(seq []term, ops string) ([]term, error) {
	for {
		idx := -1
		for i, t := range seq {
			if t.sym != 0 && strings.IndexByte(ops, t.sym) >= 0 {
				idx = i
				break
			}
		}
		if idx < 0 {
			return seq, nil
		}
		op := seq[idx].sym
		if idx == 0 || idx == len(seq)-1 || seq[idx-1].n == nil || seq[idx+1].n == nil {
			return nil, &OperandError{Op: op}
		}
		seq[idx-1] = term{n: &node{kind: binKind(op), left: seq[idx-1].n, right: seq[idx+1].n}}
		seq = append(seq[:idx], seq[idx+2:]...)
	}
}

// binKind maps a binary operator symbol to its node kind.
func binKind(op byte) nodeKind {
	switch op {
	case '+':
		return nodeAdd
	case '-':
		return nodeSub
	case '*':
		return nodeMul
	case '/':
		return nodeDiv
	case '^':
		return nodePow
	default:
		panic("ahcalc: no binary operator " + string(op))
	}
}
