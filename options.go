package chemformula

import (
	"fmt"

	"github.com/zephyrtronium/chemformula/cas"
)

// Option is an option for creating a formula.
type Option interface {
	formulaOption(*Formula) error
}

type (
	chargeopt int
	nameopt   string
	casopt    struct {
		v any
	}
	presetopt []Option
)

// Charge sets the charge of a formula. The default is 0.
func Charge(charge int) Option {
	return chargeopt(charge)
}

func (o chargeopt) formulaOption(f *Formula) error {
	f.charge = int(o)
	return nil
}

// Name sets a display name for a formula, e.g. "caffeine".
func Name(name string) Option {
	return nameopt(name)
}

func (o nameopt) formulaOption(f *Formula) error {
	f.name = string(o)
	return nil
}

// CAS sets the CAS Registry Number of a formula. v may be an integer like
// 58082, a string like "58-08-2", or a cas.Number. A nil v clears any CAS
// number set by earlier options. Errors from the cas package are wrapped.
func CAS(v any) Option {
	return casopt{v}
}

func (o casopt) formulaOption(f *Formula) error {
	if o.v == nil {
		f.cas = nil
		return nil
	}
	n, err := cas.New(o.v)
	if err != nil {
		return fmt.Errorf("chemformula: CAS number: %w", err)
	}
	f.cas = &n
	return nil
}

// Preset groups options so they can be applied together, e.g. the name and
// CAS number of a substance shared by several formulas.
func Preset(opts ...Option) Option {
	return presetopt(append([]Option(nil), opts...))
}

func (o presetopt) formulaOption(f *Formula) error {
	for _, opt := range o {
		if err := opt.formulaOption(f); err != nil {
			return err
		}
	}
	return nil
}
