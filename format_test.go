package chemformula_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zephyrtronium/chemformula"
)

func TestFormats(t *testing.T) {
	cases := []struct {
		name    string
		src     string
		charge  int
		latex   string
		html    string
		unicode string
	}{
		{
			name:    "water",
			src:     "H2O",
			latex:   `\textnormal{H}_{2}\textnormal{O}`,
			html:    `<span class="ChemFormula">H<sub>2</sub>O</span>`,
			unicode: "H₂O",
		},
		{
			name:    "muscarine",
			src:     "((CH3)3N)(C6H11O2)",
			charge:  1,
			latex:   `\(\(\textnormal{C}\textnormal{H}_{3}\)_{3}\textnormal{N}\)\(\textnormal{C}_{6}\textnormal{H}_{11}\textnormal{O}_{2}\)^{+}`,
			html:    `<span class="ChemFormula">((CH<sub>3</sub>)<sub>3</sub>N)(C<sub>6</sub>H<sub>11</sub>O<sub>2</sub>)<sup>+</sup></span>`,
			unicode: "((CH₃)₃N)(C₆H₁₁O₂)⁺",
		},
		{
			name:    "sulfate",
			src:     "SO4",
			charge:  -2,
			latex:   `\textnormal{S}\textnormal{O}_{4}^{2-}`,
			html:    `<span class="ChemFormula">SO<sub>4</sub><sup>2&ndash;</sup></span>`,
			unicode: "SO₄²⁻",
		},
		{
			name:    "hydrate",
			src:     "CuSO4.5H2O",
			latex:   `\textnormal{Cu}\textnormal{S}\textnormal{O}_{4}\cdot_{5}\textnormal{H}_{2}\textnormal{O}`,
			html:    `<span class="ChemFormula">CuSO<sub>4</sub>&sdot;<sub>5</sub>H<sub>2</sub>O</span>`,
			unicode: "CuSO₄·₅H₂O",
		},
		{
			name:    "brackets",
			src:     "[Cu(NH3)4]SO4*H2O",
			charge:  12,
			latex:   `\[\textnormal{Cu}\(\textnormal{N}\textnormal{H}_{3}\)_{4}\]\textnormal{S}\textnormal{O}_{4}\cdot\textnormal{H}_{2}\textnormal{O}^{12+}`,
			html:    `<span class="ChemFormula">[Cu(NH<sub>3</sub>)<sub>4</sub>]SO<sub>4</sub>&sdot;H<sub>2</sub>O<sup>12+</sup></span>`,
			unicode: "[Cu(NH₃)₄]SO₄·H₂O¹²⁺",
		},
		{
			name:    "spaces",
			src:     "H2 O",
			charge:  -1,
			latex:   `\textnormal{H}_{2} \textnormal{O}^{-}`,
			html:    `<span class="ChemFormula">H<sub>2</sub> O<sup>&ndash;</sup></span>`,
			unicode: "H₂ O⁻",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f := chemformula.MustNew(c.src, chemformula.Charge(c.charge))
			assert.Equal(t, c.latex, f.LaTeX())
			assert.Equal(t, c.html, f.HTML())
			assert.Equal(t, c.unicode, f.Unicode())
		})
	}
}

func TestFormatTemplates(t *testing.T) {
	f := chemformula.MustNew("[Cu(NH3)4]SO4.H2O")
	assert.Equal(t, f.LaTeX(), f.Format(chemformula.LaTeXTemplate()))
	assert.Equal(t, f.HTML(), f.Format(chemformula.HTMLTemplate()))
	// Only the digits differ between Unicode and its template.
	assert.Equal(t, "[Cu(NH3)4]SO4·H2O", f.Format(chemformula.UnicodeTemplate()))
}

func TestFormatCustom(t *testing.T) {
	f := chemformula.MustNew("[Cu(NH3)4]SO4.H2O")
	tmpl := chemformula.Template{
		FormulaPrefix:  "--> ",
		FreqPrefix:     "_<",
		FreqSuffix:     ">",
		FormulaSuffix:  " <--",
		MultiplySymbol: " * ",
	}
	assert.Equal(t, "--> [Cu(NH_<3>)_<4>]SO_<4> * H_<2>O <--", f.Format(tmpl))

	tmpl = chemformula.Template{
		ElementPrefix:  "<",
		ElementSuffix:  ">",
		BracketPrefix:  "{",
		BracketSuffix:  "}",
		ChargePrefix:   "^",
		ChargePositive: "plus",
		ChargeNegative: "minus",
	}
	g := chemformula.MustNew("(OH)2", chemformula.Charge(-2))
	assert.Equal(t, "{(}<O><H>{)}2^2minus", g.Format(tmpl))
	g = chemformula.MustNew("NH4", chemformula.Charge(1))
	assert.Equal(t, "<N><H>4^plus", g.Format(tmpl))
}

func TestFormatZero(t *testing.T) {
	f := chemformula.MustNew("CuSO4 . 5H2O", chemformula.Charge(2))
	assert.Equal(t, "CuSO4  5H2O2+", f.Format(chemformula.Template{}))
}

func TestFormatDerived(t *testing.T) {
	f := chemformula.MustNew("((CH3)3N)(C6H11O2)", chemformula.Charge(1))
	assert.Equal(t, "C₉H₂₀NO₂⁺", f.SumFormula().Unicode())
	assert.Equal(t, `<span class="ChemFormula">C<sub>9</sub>H<sub>20</sub>NO<sub>2</sub><sup>+</sup></span>`, f.HillFormula().HTML())
}
