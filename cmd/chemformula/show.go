package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/zephyrtronium/chemformula"
	"github.com/zephyrtronium/chemformula/internal/style"
)

func (a *app) showCmd() *cobra.Command {
	var charge, name, casText, inname string
	cmd := &cobra.Command{
		Use:   "show [formula...]",
		Short: "Show the representations and properties of formulas",
		Long: `Show parses each formula and prints its sum and Hill formulas, formula
weight, radioactivity, and the mass fraction of each element.

With no arguments, formulas are read from --in or standard input, one per
line. Invalid formulas are logged and skipped.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := formulaOptions(charge, name, casText)
			if err != nil {
				return err
			}
			texts, err := inputs(args, inname, cmd.InOrStdin())
			if err != nil {
				return err
			}
			fs, perr := parseAll(texts, opts...)
			for i, f := range fs {
				if i > 0 {
					fmt.Fprintln(cmd.OutOrStdout())
				}
				a.show(cmd.OutOrStdout(), f)
			}
			return perr
		},
	}
	cmd.Flags().StringVar(&charge, "charge", "", `charge, e.g. "2-", "+", or "-3"`)
	cmd.Flags().StringVar(&name, "name", "", "name of the substance")
	cmd.Flags().StringVar(&casText, "cas", "", `CAS Registry Number, e.g. "58-08-2"`)
	cmd.Flags().StringVar(&inname, "in", "", "input file (default stdin if no args given)")
	return cmd
}

// render writes a formula in the configured format.
func (a *app) render(f *chemformula.Formula) string {
	switch a.format() {
	case "latex":
		return f.LaTeX()
	case "html":
		return f.HTML()
	case "plain":
		return f.TextFormula()
	default:
		return f.Unicode()
	}
}

func (a *app) show(w io.Writer, f *chemformula.Formula) {
	prec := a.precision()
	title := a.render(f)
	if f.Name() != "" {
		title = f.Name() + "  " + title
	}
	fmt.Fprintln(w, style.Bold.Render(title))

	props := style.NewTable(
		style.Column{Name: "Property", Width: 14},
		style.Column{Name: "Value", Width: 48},
	)
	props.AddRow("Formula", f.TextFormula())
	if n := f.CAS(); n != nil {
		props.AddRow("CAS", n.String())
	}
	props.AddRow("Sum formula", a.render(f.SumFormula()))
	props.AddRow("Hill formula", a.render(f.HillFormula()))
	props.AddRow("Weight", strconv.FormatFloat(f.FormulaWeight(), 'f', prec, 64)+" g/mol")
	props.AddRow("Radioactive", style.Verdict(f.Radioactive()))
	fmt.Fprint(w, props.Render())

	elems := style.NewTable(
		style.Column{Name: "Element", Width: 7, Style: &style.Info},
		style.Column{Name: "Count", Width: 6, Align: style.AlignRight},
		style.Column{Name: "Mass fraction", Width: 30},
	)
	mf := f.MassFraction()
	for _, c := range f.HillCounts() {
		elems.AddRow(c.Symbol, strconv.Itoa(c.N), style.FractionBar(mf[c.Symbol], 20, prec))
	}
	fmt.Fprint(w, elems.Render())
}
