package ahcalc

import "math"

// Eval walks the tree bottom-up and returns the numeric result. Evaluation is
// pure: it reads only the tree and allocates nothing shared, so an Expr may be
// evaluated from any number of goroutines at once.
func (e *Expr) Eval() (float64, error) {
	return e.n.eval()
}

// EvalString is a shortcut to tokenize, build, and evaluate an expression in
// one call. The first error from any stage aborts the pipeline.
func EvalString(src string) (float64, error) {
	e, err := Parse(src)
	if err != nil {
		return 0, err
	}
	return e.Eval()
}

func (n *node) eval() (float64, error) {
	switch n.kind {
	case nodeNum:
		return n.val, nil
	case nodeFact:
		v, err := n.left.eval()
		if err != nil {
			return 0, err
		}
		return factorial(v)
	case nodeAdd, nodeSub, nodeMul, nodeDiv, nodePow:
		l, err := n.left.eval()
		if err != nil {
			return 0, err
		}
		r, err := n.right.eval()
		if err != nil {
			return 0, err
		}
		return apply(n.kind, l, r)
	default:
		panic("ahcalc: invalid node kind " + n.kind.String())
	}
}

// apply computes one binary operation, mapping NaN results to DomainError and
// infinite results to OverflowError. Operands are always finite: literals
// parse finite and every operation rejects non-finite results.
func apply(kind nodeKind, l, r float64) (float64, error) {
	var v float64
	var op string
	switch kind {
	case nodeAdd:
		v, op = l+r, "+"
	case nodeSub:
		v, op = l-r, "-"
	case nodeMul:
		v, op = l*r, "*"
	case nodeDiv:
		if r == 0 {
			return 0, &DomainError{X: r, Op: "/"}
		}
		v, op = l/r, "/"
	case nodePow:
		v, op = math.Pow(l, r), "^"
	default:
		panic("ahcalc: apply on non-binary node kind " + kind.String())
	}
	if math.IsNaN(v) {
		return 0, &DomainError{X: l, Op: op}
	}
	if math.IsInf(v, 0) {
		return 0, &OverflowError{Op: op}
	}
	return v, nil
}

// factorial computes x! by iterated multiplication. x must represent a
// non-negative integer exactly.
func factorial(x float64) (float64, error) {
	if x < 0 || x != math.Trunc(x) {
		return 0, &DomainError{X: x, Op: "!"}
	}
	r := 1.0
	for i := 2.0; i <= x; i++ {
		r *= i
		if math.IsInf(r, 0) {
			return 0, &OverflowError{Op: "!"}
		}
	}
	return r, nil
}
