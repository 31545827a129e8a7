package chemformula

import (
	"sort"
	"strconv"
	"strings"

	"github.com/zephyrtronium/chemformula/cas"
	"github.com/zephyrtronium/chemformula/elements"
)

// Formula is a parsed chemical formula with an optional charge, name, and CAS
// Registry Number. A Formula is immutable and safe for concurrent use.
type Formula struct {
	text   string
	charge int
	name   string
	cas    *cas.Number

	// counts is the composition in order of first appearance.
	counts []Count
	// hill is the composition in Hill order.
	hill []Count
}

// New parses a formula. The given options are applied in order.
func New(text string, opts ...Option) (*Formula, error) {
	f := Formula{text: text}
	for _, opt := range opts {
		if err := opt.formulaOption(&f); err != nil {
			return nil, err
		}
	}
	counts, err := ParseString(text)
	if err != nil {
		return nil, err
	}
	f.counts = counts
	f.hill = hillOrder(counts)
	return &f, nil
}

// MustNew is like New but panics if the formula is invalid. It is intended
// for formulas that are known to be valid, e.g. in package-level variables.
func MustNew(text string, opts ...Option) *Formula {
	f, err := New(text, opts...)
	if err != nil {
		panic("chemformula: MustNew(" + strconv.Quote(text) + "): " + err.Error())
	}
	return f
}

// hillOrder returns a copy of counts in Hill order: carbon first, then
// hydrogen if there is carbon, then every other element by symbol.
func hillOrder(counts []Count) []Count {
	r := make([]Count, 0, len(counts))
	var c, h *Count
	for i := range counts {
		switch counts[i].Symbol {
		case "C":
			c = &counts[i]
		case "H":
			h = &counts[i]
		}
	}
	if c != nil {
		r = append(r, *c)
		if h != nil {
			r = append(r, *h)
		}
	}
	k := len(r)
	for _, v := range counts {
		if c != nil && (v.Symbol == "C" || v.Symbol == "H") {
			continue
		}
		r = append(r, v)
	}
	sortCounts(r[k:])
	return r
}

// derive creates a formula with the same charge, name, and CAS number as f
// and the given composition.
func (f *Formula) derive(counts []Count) *Formula {
	return &Formula{
		text:   contract(counts),
		charge: f.charge,
		name:   f.name,
		cas:    f.cas,
		counts: counts,
		hill:   f.hill,
	}
}

// String returns the formula as it was given.
func (f *Formula) String() string {
	return f.text
}

// Text returns the formula as it was given.
func (f *Formula) Text() string {
	return f.text
}

// Charge returns the charge of the formula.
func (f *Formula) Charge() int {
	return f.charge
}

// Charged reports whether the formula has a nonzero charge.
func (f *Formula) Charged() bool {
	return f.charge != 0
}

// ChargeText returns the charge as text, e.g. "2-" for -2 or "+" for 1. The
// result is empty if the formula is not charged.
func (f *Formula) ChargeText() string {
	return chargeText(f.charge)
}

func chargeText(charge int) string {
	switch {
	case charge == 0:
		return ""
	case charge == 1:
		return "+"
	case charge == -1:
		return "-"
	case charge > 0:
		return strconv.Itoa(charge) + "+"
	default:
		return strconv.FormatUint(uint64(-int64(charge)), 10) + "-"
	}
}

// TextFormula returns the formula followed by its charge, separated by a
// space if it is charged, e.g. "SO4 2-".
func (f *Formula) TextFormula() string {
	if f.charge == 0 {
		return f.text
	}
	return f.text + " " + f.ChargeText()
}

// Name returns the name given to the formula, or the empty string if none was.
func (f *Formula) Name() string {
	return f.name
}

// CAS returns the CAS Registry Number of the formula, or nil if it has none.
func (f *Formula) CAS() *cas.Number {
	if f.cas == nil {
		return nil
	}
	r := *f.cas
	return &r
}

// Counts returns the composition of the formula in the order in which each
// element first appears.
func (f *Formula) Counts() []Count {
	return append([]Count(nil), f.counts...)
}

// HillCounts returns the composition of the formula in Hill order.
func (f *Formula) HillCounts() []Count {
	return append([]Count(nil), f.hill...)
}

// Elements returns the composition of the formula as a map from element
// symbols to counts.
func (f *Formula) Elements() map[string]int {
	m := make(map[string]int, len(f.counts))
	for _, c := range f.counts {
		m[c.Symbol] = c.N
	}
	return m
}

// Count returns the number of atoms of an element in the formula.
func (f *Formula) Count(symbol string) int {
	for _, c := range f.counts {
		if c.Symbol == symbol {
			return c.N
		}
	}
	return 0
}

// SumFormula returns the formula with each element written once, in the order
// in which it first appears. E.g., the sum formula of "(CH3)3N" is "C3H9N".
func (f *Formula) SumFormula() *Formula {
	return f.derive(f.Counts())
}

// HillFormula returns the formula in Hill notation: carbon first, hydrogen
// next if there is carbon, and then all other elements by symbol. E.g., the
// Hill formula of "CaCO3" is "CCaO3", and that of "HCl" is "ClH".
func (f *Formula) HillFormula() *Formula {
	return f.derive(f.HillCounts())
}

// FormulaWeight returns the molar mass of the formula in g/mol.
func (f *Formula) FormulaWeight() float64 {
	var w float64
	for _, c := range f.counts {
		w += float64(c.N) * weight(c.Symbol)
	}
	return w
}

// weight gets the atomic weight of an element that the parser has accepted.
func weight(symbol string) float64 {
	w, ok := elements.Weight(symbol)
	if !ok {
		panic("chemformula: no atomic weight for " + strconv.Quote(symbol))
	}
	return w
}

// MassFraction returns the fraction of the formula weight contributed by each
// element. The fractions sum to 1.
func (f *Formula) MassFraction() map[string]float64 {
	total := f.FormulaWeight()
	m := make(map[string]float64, len(f.counts))
	for _, c := range f.counts {
		m[c.Symbol] = float64(c.N) * weight(c.Symbol) / total
	}
	return m
}

// Radioactive reports whether any element in the formula has no stable
// isotope.
func (f *Formula) Radioactive() bool {
	for _, c := range f.counts {
		if elements.Radioactive(c.Symbol) {
			return true
		}
	}
	return false
}

// Moles returns the amount of substance in mol in the given mass in g.
func (f *Formula) Moles(grams float64) float64 {
	return grams / f.FormulaWeight()
}

// Grams returns the mass in g of the given amount of substance in mol.
func (f *Formula) Grams(moles float64) float64 {
	return moles * f.FormulaWeight()
}

// Equal reports whether f and g have the same composition, the same charge,
// and the same CAS number or both none. Names and spelling are not compared,
// so "C8H10N4O2" and "(C5N4H)O2(CH3)3" are equal if their charges and CAS
// numbers are.
func (f *Formula) Equal(g *Formula) bool {
	if f.charge != g.charge {
		return false
	}
	switch {
	case f.cas == nil && g.cas == nil: // do nothing
	case f.cas == nil, g.cas == nil:
		return false
	case *f.cas != *g.cas:
		return false
	}
	if len(f.hill) != len(g.hill) {
		return false
	}
	for i, c := range f.hill {
		if c != g.hill[i] {
			return false
		}
	}
	return true
}

// Less reports whether f sorts before g in Hill notation. The elements of
// each formula are compared pairwise in Hill order, first by symbol ignoring
// case, then by count. If one formula runs out of elements first, it sorts
// first.
//
// Less considers only composition. Two formulas may therefore be neither Less
// than each other nor Equal, e.g. if they differ only in charge.
func (f *Formula) Less(g *Formula) bool {
	a, b := f.hill, g.hill
	for i := 0; i < len(a) && i < len(b); i++ {
		x, y := strings.ToLower(a[i].Symbol), strings.ToLower(b[i].Symbol)
		switch {
		case x < y:
			return true
		case x > y:
			return false
		case a[i].N < b[i].N:
			return true
		case a[i].N > b[i].N:
			return false
		}
	}
	return len(a) < len(b)
}

// Sort sorts formulas in Hill notation order using Less. Formulas with the
// same composition keep their relative order.
func Sort(fs []*Formula) {
	sort.SliceStable(fs, func(i, j int) bool { return fs[i].Less(fs[j]) })
}

// ParseCharge reads a charge written as a signed integer such as "-2" or
// "+3", or in chemical notation such as "2-", "3+", "+", or "-". The error, if
// any, is an *InvalidChargeTypeError.
func ParseCharge(s string) (int, error) {
	t := strings.TrimSpace(s)
	if n, err := strconv.Atoi(t); err == nil {
		return n, nil
	}
	if t == "" {
		return 0, &InvalidChargeTypeError{Text: s}
	}
	sign := t[len(t)-1]
	if sign != '+' && sign != '-' {
		return 0, &InvalidChargeTypeError{Text: s}
	}
	n := 1
	if body := t[:len(t)-1]; body != "" {
		for i := 0; i < len(body); i++ {
			if !isDigit(rune(body[i])) {
				return 0, &InvalidChargeTypeError{Text: s}
			}
		}
		var err error
		n, err = strconv.Atoi(body)
		if err != nil {
			return 0, &InvalidChargeTypeError{Text: s}
		}
	}
	if sign == '-' {
		n = -n
	}
	return n, nil
}
