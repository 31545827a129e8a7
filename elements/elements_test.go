package elements_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zephyrtronium/chemformula/elements"
)

func TestWeight(t *testing.T) {
	cases := []struct {
		sym string
		w   float64
		ok  bool
	}{
		{"H", 1.008, true},
		{"C", 12.011, true},
		{"Cl", 35.45, true},
		{"Og", 294, true},
		{"Tc", 97, true},
		{"Xy", 0, false},
		{"h", 0, false},
		{"CL", 0, false},
		{"", 0, false},
	}
	for _, c := range cases {
		t.Run(c.sym, func(t *testing.T) {
			w, ok := elements.Weight(c.sym)
			require.Equal(t, c.ok, ok)
			assert.Equal(t, c.w, w)
			assert.Equal(t, c.ok, elements.Known(c.sym))
		})
	}
}

func TestRadioactive(t *testing.T) {
	for _, sym := range []string{"U", "Tc", "Pm", "Po", "Rn", "Th", "Og"} {
		assert.True(t, elements.Radioactive(sym), sym)
	}
	for _, sym := range []string{"H", "C", "Pb", "Bi", "Xy", ""} {
		assert.False(t, elements.Radioactive(sym), sym)
	}
}

func TestLen(t *testing.T) {
	assert.Equal(t, 118, elements.Len())
}
