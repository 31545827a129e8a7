package chemformula

import (
	"strings"
	"unicode/utf8"
)

// Template describes how to render a formula as text. Each part of the
// formula as it was written is wrapped in the corresponding prefix and
// suffix: brackets, element symbols, and frequencies (the counts following
// symbols and groups). Separators '.' and '*' are replaced by MultiplySymbol.
// Anything else, e.g. spaces, is copied as is.
//
// The zero Template renders the formula as written, without separators.
type Template struct {
	FormulaPrefix, FormulaSuffix string
	ElementPrefix, ElementSuffix string
	FreqPrefix, FreqSuffix       string
	BracketPrefix, BracketSuffix string
	MultiplySymbol               string

	// ChargePrefix and ChargeSuffix wrap the charge of a charged formula.
	ChargePrefix, ChargeSuffix string
	// ChargePositive and ChargeNegative replace the + and - of the charge.
	// If empty, + and - are used.
	ChargePositive, ChargeNegative string
}

var (
	latexTemplate = Template{
		ElementPrefix:  `\textnormal{`,
		ElementSuffix:  `}`,
		FreqPrefix:     `_{`,
		FreqSuffix:     `}`,
		BracketPrefix:  `\`,
		MultiplySymbol: `\cdot`,
		ChargePrefix:   `^{`,
		ChargeSuffix:   `}`,
	}
	htmlTemplate = Template{
		FormulaPrefix:  `<span class="ChemFormula">`,
		FormulaSuffix:  `</span>`,
		FreqPrefix:     `<sub>`,
		FreqSuffix:     `</sub>`,
		MultiplySymbol: `&sdot;`,
		ChargePrefix:   `<sup>`,
		ChargeSuffix:   `</sup>`,
		ChargeNegative: `&ndash;`,
	}
	unicodeTemplate = Template{
		MultiplySymbol: "·",
		ChargePositive: "⁺",
		ChargeNegative: "⁻",
	}
)

// LaTeXTemplate returns the template used by LaTeX.
func LaTeXTemplate() Template {
	return latexTemplate
}

// HTMLTemplate returns the template used by HTML.
func HTMLTemplate() Template {
	return htmlTemplate
}

// UnicodeTemplate returns the template used by Unicode. Unicode additionally
// writes digits as subscripts and superscripts, which no Template can express.
func UnicodeTemplate() Template {
	return unicodeTemplate
}

const (
	subscripts   = "₀₁₂₃₄₅₆₇₈₉"
	superscripts = "⁰¹²³⁴⁵⁶⁷⁸⁹"
)

// digitMap maps ASCII digits to the runes of a ten-rune string.
type digitMap [10]rune

func newDigitMap(s string) *digitMap {
	var m digitMap
	i := 0
	for _, r := range s {
		m[i] = r
		i++
	}
	return &m
}

var (
	subdigits   = newDigitMap(subscripts)
	superdigits = newDigitMap(superscripts)
)

func (m *digitMap) replace(s string) string {
	if m == nil {
		return s
	}
	var b strings.Builder
	for _, r := range s {
		if isDigit(r) {
			r = m[r-'0']
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Format renders the formula using a template.
func (f *Formula) Format(t Template) string {
	return f.render(t, nil, nil)
}

// LaTeX renders the formula for LaTeX, e.g. \textnormal{H}_{2}\textnormal{O}.
func (f *Formula) LaTeX() string {
	return f.render(latexTemplate, nil, nil)
}

// HTML renders the formula as an HTML span of class ChemFormula with
// subscript frequencies and superscript charge.
func (f *Formula) HTML() string {
	return f.render(htmlTemplate, nil, nil)
}

// Unicode renders the formula using Unicode subscript and superscript
// characters, e.g. SO₄²⁻. Separators '.' and '*' become '·', so
// "CuSO4.5H2O" renders as "CuSO₄·₅H₂O"; Format with a zero MultiplySymbol
// drops them instead.
func (f *Formula) Unicode() string {
	return f.render(unicodeTemplate, subdigits, superdigits)
}

// render formats the formula. sub and sup, if not nil, map the digits of
// frequencies and of the charge, respectively.
func (f *Formula) render(t Template, sub, sup *digitMap) string {
	var b strings.Builder
	b.WriteString(t.FormulaPrefix)
	s := f.text
	for len(s) > 0 {
		r, sz := utf8.DecodeRuneInString(s)
		switch {
		case strings.ContainsRune(OpenBrackets+CloseBrackets, r):
			b.WriteString(t.BracketPrefix)
			b.WriteRune(r)
			b.WriteString(t.BracketSuffix)
		case isUpper(r):
			if len(s) > 1 && isLower(rune(s[1])) {
				sz = 2
			}
			b.WriteString(t.ElementPrefix)
			b.WriteString(s[:sz])
			b.WriteString(t.ElementSuffix)
		case isDigit(r):
			for sz < len(s) && isDigit(rune(s[sz])) {
				sz++
			}
			b.WriteString(t.FreqPrefix)
			b.WriteString(sub.replace(s[:sz]))
			b.WriteString(t.FreqSuffix)
		case strings.ContainsRune(Separators, r):
			b.WriteString(t.MultiplySymbol)
		default:
			b.WriteString(s[:sz])
		}
		s = s[sz:]
	}
	if f.charge != 0 {
		pos, neg := t.ChargePositive, t.ChargeNegative
		if pos == "" {
			pos = "+"
		}
		if neg == "" {
			neg = "-"
		}
		c := strings.NewReplacer("+", pos, "-", neg).Replace(f.ChargeText())
		b.WriteString(t.ChargePrefix)
		b.WriteString(sup.replace(c))
		b.WriteString(t.ChargeSuffix)
	}
	b.WriteString(t.FormulaSuffix)
	return b.String()
}
