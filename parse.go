package chemformula

import (
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/zephyrtronium/chemformula/elements"
)

// Formula = Unit { Unit }
// Unit    = Symbol [ Count ] | Open { Unit } Close [ Count ]
// Symbol  = Upper [ Lower ]
// Count   = Digit { Digit }
// Open    = '(' | '[' | '{'
// Close   = ')' | ']' | '}'
//
// Whitespace, '.', and '*' may appear anywhere and are ignored, even inside
// symbols and counts.

// Count is the total number of atoms of one element in a formula.
type Count struct {
	// Symbol is the element symbol.
	Symbol string
	// N is the number of atoms, at least 1.
	N int
}

// Parse parses a formula and returns the total count of each element in it,
// in the order in which each element first appears. Brackets are expanded,
// so "(CH3)3N" gives C3 H9 N1.
//
// Errors resulting from invalid input implement InputError. If the brackets
// are unbalanced, the error is always a *MalformedBracketsError. Otherwise, a
// malformed symbol, count, or character is reported before an unknown
// element symbol, regardless of where each appears.
func Parse(src io.RuneScanner) ([]Count, error) {
	root, end, err := parse(lex(src))
	if err != nil {
		return nil, err
	}
	if err := root.checkSymbols(); err != nil {
		return nil, err
	}
	counts, err := root.resolve()
	if err != nil {
		return nil, err
	}
	if len(counts) == 0 {
		return nil, &EmptyFormulaError{Col: end}
	}
	return counts, nil
}

// ParseString is a shortcut to parse a formula from a string.
func ParseString(src string) ([]Count, error) {
	return Parse(strings.NewReader(src))
}

// parse builds the parse tree of a formula. The root is an implicit group with
// a count of 1. Element symbols are checked for form but not looked up. The
// second result is the position of the end of the input.
func parse(scan *lexer) (*node, int, error) {
	root := &node{kind: nodeGroup, count: 1}
	stack := []*node{root}
	// last is the node that a count at the current position applies to.
	var last *node
	// synerr is the first error from a malformed token. Brackets are checked
	// through the whole input before it is reported.
	var synerr error
	for {
		tok, err := scan.next()
		if err != nil {
			if _, ok := err.(InputError); !ok {
				return nil, 0, err
			}
			if synerr == nil {
				synerr = err
			}
			last = nil
			continue
		}
		top := stack[len(stack)-1]
		switch tok.kind {
		case tokenSymbol:
			n := &node{kind: nodeElement, name: tok.text, count: 1, pos: tok.pos}
			top.kids = append(top.kids, n)
			last = n
		case tokenNum:
			c, err := strconv.Atoi(tok.text)
			switch {
			case err != nil:
				// The token is all digits, so the only possible error is
				// that it is out of range.
				err = &InvalidCountError{Col: tok.pos, Count: tok.text, Overflow: true}
			case last == nil, c == 0:
				err = &InvalidCountError{Col: tok.pos, Count: tok.text}
			default:
				last.count = c
			}
			if err != nil && synerr == nil {
				synerr = err
			}
			last = nil
		case tokenOpen:
			g := &node{kind: nodeGroup, name: tok.text, count: 1, pos: tok.pos}
			top.kids = append(top.kids, g)
			stack = append(stack, g)
			last = nil
		case tokenClose:
			if len(stack) == 1 {
				return nil, 0, &MalformedBracketsError{Col: tok.pos, Right: tok.text}
			}
			stack = stack[:len(stack)-1]
			last = top
		case tokenEOF:
			if len(stack) > 1 {
				return nil, 0, &MalformedBracketsError{Col: top.pos, Left: top.name}
			}
			if synerr != nil {
				return nil, 0, synerr
			}
			return root, tok.pos, nil
		default:
			panic("chemformula: unknown token: " + tok.String())
		}
	}
}

// checkSymbols returns an error for the first element in the tree that is not
// in the element table.
func (n *node) checkSymbols() error {
	stack := []*node{n}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n.kind == nodeElement {
			if !elements.Known(n.name) {
				return &UnknownElementSymbolError{Col: n.pos, Symbol: n.name}
			}
			continue
		}
		for i := len(n.kids) - 1; i >= 0; i-- {
			stack = append(stack, n.kids[i])
		}
	}
	return nil
}

// resolve folds the multiplier of each group into its children and sums the
// counts of each element. Elements are listed in the order in which they are
// first encountered from left to right.
func (n *node) resolve() ([]Count, error) {
	type frame struct {
		n   *node
		mul int
	}
	var r []Count
	idx := make(map[string]int)
	stack := []frame{{n: n, mul: 1}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		m, ok := mul(f.mul, f.n.count)
		if !ok {
			return nil, &InvalidCountError{Col: f.n.pos, Count: strconv.Itoa(f.n.count), Overflow: true}
		}
		switch f.n.kind {
		case nodeElement:
			k, ok := idx[f.n.name]
			if !ok {
				idx[f.n.name] = len(r)
				r = append(r, Count{Symbol: f.n.name, N: m})
				continue
			}
			if r[k].N > math.MaxInt-m {
				return nil, &InvalidCountError{Col: f.n.pos, Count: strconv.Itoa(f.n.count), Overflow: true}
			}
			r[k].N += m
		case nodeGroup:
			for i := len(f.n.kids) - 1; i >= 0; i-- {
				stack = append(stack, frame{n: f.n.kids[i], mul: m})
			}
		default:
			panic("chemformula: invalid parse tree node " + f.n.kind.String())
		}
	}
	return r, nil
}

// mul multiplies two positive ints, reporting whether the result fits.
func mul(a, b int) (int, bool) {
	if a > math.MaxInt/b {
		return 0, false
	}
	return a * b, true
}

// contract writes counts as a formula, omitting counts of 1.
func contract(counts []Count) string {
	var b strings.Builder
	for _, c := range counts {
		b.WriteString(c.Symbol)
		if c.N > 1 {
			b.WriteString(strconv.Itoa(c.N))
		}
	}
	return b.String()
}

// sortCounts sorts counts by symbol without using package sort because that
// has reflection and allocation problems. Formulas rarely have more than a
// handful of elements.
func sortCounts(counts []Count) {
	for i := 1; i < len(counts); i++ {
		for j := i; j > 0 && counts[j].Symbol < counts[j-1].Symbol; j-- {
			counts[j], counts[j-1] = counts[j-1], counts[j]
		}
	}
}
