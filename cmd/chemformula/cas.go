package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/zephyrtronium/chemformula/cas"
	"github.com/zephyrtronium/chemformula/internal/logger"
	"github.com/zephyrtronium/chemformula/internal/style"
)

func (a *app) casCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cas <number...>",
		Short: "Validate CAS Registry Numbers",
		Long: `Cas validates CAS Registry Numbers written in hyphenated notation like
58-08-2 or as plain integers like 58082, and prints each in canonical form
with its check digit. Invalid numbers are logged and marked.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tbl := style.NewTable(
				style.Column{Name: "", Width: 1},
				style.Column{Name: "Input", Width: 14},
				style.Column{Name: "CAS", Width: 12},
				style.Column{Name: "Integer", Width: 10, Align: style.AlignRight},
				style.Column{Name: "Check", Width: 5, Align: style.AlignRight},
			)
			var rerr error
			for _, s := range args {
				n, err := parseCAS(s)
				if err != nil {
					logger.InputRejected("cas", s, err)
					tbl.AddRow(style.ErrorPrefix, s, err.Error())
					rerr = errRejected
					continue
				}
				tbl.AddRow(style.SuccessPrefix, s, n.String(), strconv.FormatInt(n.Int(), 10), strconv.Itoa(n.CheckDigit()))
			}
			fmt.Fprint(cmd.OutOrStdout(), tbl.Render())
			return rerr
		},
	}
}

// parseCAS accepts either notation.
func parseCAS(s string) (cas.Number, error) {
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return cas.FromInt(v)
	}
	return cas.Parse(s)
}
