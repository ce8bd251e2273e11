package ahcalc

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

type token struct {
	kind tokenKind
	num  float64 // valid when kind is tokenNum
	sym  byte    // valid when kind is tokenSym; one of ( ) + - * / ^ !
}

func (t token) String() string {
	switch t.kind {
	case tokenNum:
		return "num:" + strconv.FormatFloat(t.num, 'g', -1, 64)
	case tokenSym:
		return "sym:" + string(t.sym)
	default:
		return "none"
	}
}

type tokenKind int8

const (
	tokenNone tokenKind = iota
	// tokenNum is a numeric literal.
	tokenNum
	// tokenSym is a single-character operator or bracket.
	tokenSym
)

func (k tokenKind) String() string {
	switch k {
	case tokenNone:
		return "None"
	case tokenNum:
		return "Num"
	case tokenSym:
		return "Sym"
	default:
		return "tokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

var (
	// badChar matches any character outside the calculator's alphabet.
	badChar = regexp.MustCompile(`[^0-9.,+\-*/()\[\]!^\s\v]`)
	// negNum matches a unary minus before a numeric literal: at the start of
	// the string or after an operator or open bracket. RE2 has no lookbehind,
	// so the preceding character is captured and put back by the rewrite.
	negNum = regexp.MustCompile(`(^|[-+*/(])-([0-9.]+)`)
	// negGroup matches a unary minus before an open bracket.
	negGroup = regexp.MustCompile(`(^|[-+*/(])-\(`)
	// Implied multiplications: 2(3+4), (2+3)4, (2+3)(4+5).
	digitOpen  = regexp.MustCompile(`([0-9])\(`)
	closeDigit = regexp.MustCompile(`\)([0-9])`)
	closeOpen  = regexp.MustCompile(`\)\(`)
)

// validateChars fails if the raw input contains any character outside
// digits, '.', ',', the operators, the brackets, and whitespace.
func validateChars(src string) error {
	if loc := badChar.FindStringIndex(src); loc != nil {
		r := []rune(src[loc[0]:loc[1]])
		return &CharError{Char: r[0]}
	}
	return nil
}

// validateBalance fails if the counts of open and close brackets disagree.
// Matching of individual brackets is the tree builder's job; only the counts
// are checked here, on the raw input.
func validateBalance(src string) error {
	pairs := [...][2]byte{{'(', ')'}, {'[', ']'}}
	for _, p := range pairs {
		o := strings.Count(src, string(p[0]))
		c := strings.Count(src, string(p[1]))
		if o != c {
			return &BalanceError{Open: p[0], Close: p[1], Opens: o, Closes: c}
		}
	}
	return nil
}

// stripInsignificant removes whitespace and commas. Commas are cosmetic
// thousands separators, so "1, 000" and "1000" are the same literal.
func stripInsignificant(src string) string {
	var b strings.Builder
	b.Grow(len(src))
	for _, r := range src {
		switch r {
		case ' ', '\t', '\n', '\v', '\f', '\r', ',':
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// unifyBrackets maps square brackets to parentheses so later stages handle a
// single bracket style.
func unifyBrackets(src string) string {
	src = strings.ReplaceAll(src, "[", "(")
	return strings.ReplaceAll(src, "]", ")")
}

// unifyPower rewrites the ** spelling of exponentiation to ^.
func unifyPower(src string) string {
	return strings.ReplaceAll(src, "**", "^")
}

// rewriteNegNumbers converts unary negation of a literal into arithmetic the
// precedence passes handle uniformly: "-5+6" becomes "(0-1)*5+6" and "5*-6"
// becomes "5*(0-1)*6".
func rewriteNegNumbers(src string) string {
	return negNum.ReplaceAllString(src, "${1}(0-1)*${2}")
}

// rewriteNegGroups does the same for a negated group: "-(1+2)" becomes
// "(0-1)*(1+2)".
func rewriteNegGroups(src string) string {
	return negGroup.ReplaceAllString(src, "${1}(0-1)*(")
}

// insertImplicitMul makes implied multiplications explicit between a digit
// and an open bracket, a close bracket and a digit, and adjacent brackets.
func insertImplicitMul(src string) string {
	src = digitOpen.ReplaceAllString(src, "${1}*(")
	src = closeDigit.ReplaceAllString(src, ")*${1}")
	return closeOpen.ReplaceAllString(src, ")*(")
}

// normalize validates the raw input and rewrites every ambiguous notation
// into an unambiguous character stream. The rewrites are ordered: each one
// assumes the previous ones completed.
func normalize(src string) (string, error) {
	if err := validateChars(src); err != nil {
		return "", err
	}
	if err := validateBalance(src); err != nil {
		return "", err
	}
	src = stripInsignificant(src)
	src = unifyBrackets(src)
	src = unifyPower(src)
	src = rewriteNegNumbers(src)
	src = rewriteNegGroups(src)
	src = insertImplicitMul(src)
	return src, nil
}

// tokenize normalizes the input and splits it into tokens. The split is on
// every non-digit, non-'.' character; runs of digits and dots become numeric
// literals and everything else becomes a one-character symbol.
func tokenize(src string) ([]token, error) {
	src, err := normalize(src)
	if err != nil {
		return nil, err
	}
	var toks []token
	start := -1
	flush := func(end int) error {
		if start < 0 {
			return nil
		}
		text := src[start:end]
		start = -1
		num, err := strconv.ParseFloat(text, 64)
		if err != nil {
			if errors.Is(err, strconv.ErrRange) {
				return &OverflowError{Op: "literal " + text}
			}
			return &NumberError{Text: text}
		}
		toks = append(toks, token{kind: tokenNum, num: num})
		return nil
	}
	for i := 0; i < len(src); i++ {
		c := src[i]
		if '0' <= c && c <= '9' || c == '.' {
			if start < 0 {
				start = i
			}
			continue
		}
		if err := flush(i); err != nil {
			return nil, err
		}
		toks = append(toks, token{kind: tokenSym, sym: c})
	}
	if err := flush(len(src)); err != nil {
		return nil, err
	}
	return toks, nil
}
