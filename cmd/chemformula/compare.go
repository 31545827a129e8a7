package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zephyrtronium/chemformula"
	"github.com/zephyrtronium/chemformula/internal/style"
)

func (a *app) compareCmd() *cobra.Command {
	var charges, cases []string
	cmd := &cobra.Command{
		Use:   "compare <formula> <formula>",
		Short: "Compare two formulas",
		Long: `Compare reports whether two formulas are equal, meaning they have the same
composition, charge, and CAS number, and how they sort in Hill order. Use
--charge and --cas once per formula to set those.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(charges) > 2 || len(cases) > 2 {
				return fmt.Errorf("at most two charges and two CAS numbers")
			}
			var fs [2]*chemformula.Formula
			for i, s := range args {
				var q, n string
				if i < len(charges) {
					q = charges[i]
				}
				if i < len(cases) {
					n = cases[i]
				}
				opts, err := formulaOptions(q, "", n)
				if err != nil {
					return err
				}
				fs[i], err = chemformula.New(s, opts...)
				if err != nil {
					return fmt.Errorf("formula %d: %w", i+1, err)
				}
			}
			x, y := fs[0], fs[1]
			w := cmd.OutOrStdout()
			tbl := style.NewTable(
				style.Column{Name: "Relation", Width: 10},
				style.Column{Name: "Result", Width: 6},
			).SetHeaderSeparator(false)
			tbl.AddRow("a = b", style.Verdict(x.Equal(y)))
			tbl.AddRow("a < b", style.Verdict(x.Less(y)))
			tbl.AddRow("b < a", style.Verdict(y.Less(x)))
			fmt.Fprintf(w, "a: %s\nb: %s\n", a.render(x), a.render(y))
			fmt.Fprint(w, tbl.Render())
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&charges, "charge", nil, "charges of the formulas, in order")
	cmd.Flags().StringSliceVar(&cases, "cas", nil, "CAS numbers of the formulas, in order")
	return cmd
}
