package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zephyrtronium/chemformula"
	"github.com/zephyrtronium/chemformula/internal/catalog"
	"github.com/zephyrtronium/chemformula/internal/logger"
	"github.com/zephyrtronium/chemformula/internal/style"
)

func (a *app) sortCmd() *cobra.Command {
	var file, inname, output string
	cmd := &cobra.Command{
		Use:   "sort [formula...]",
		Short: "Sort formulas in Hill order",
		Long: `Sort reads formulas from the arguments, a catalog file, or standard input
and prints them in Hill notation order. Catalog files are YAML (.yaml, .yml)
or TOML (.toml) documents listing formulas with optional names, charges, and
CAS numbers. With --output, the sorted formulas are also written as a
catalog.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var fs []*chemformula.Formula
			var rerr error
			if file != "" {
				c, err := loadCatalog(file)
				if err != nil && !errors.Is(err, errRejected) {
					return err
				}
				fs, rerr = c, err
			}
			if len(args) > 0 || inname != "" || file == "" {
				texts, err := inputs(args, inname, cmd.InOrStdin())
				if err != nil {
					return err
				}
				g, err := parseAll(texts)
				if err != nil {
					rerr = err
				}
				fs = append(fs, g...)
			}
			chemformula.Sort(fs)

			tbl := style.NewTable(
				style.Column{Name: "Hill", Width: 24},
				style.Column{Name: "Formula", Width: 32},
				style.Column{Name: "Name", Width: 20},
			)
			for _, f := range fs {
				tbl.AddRow(a.render(f.HillFormula()), a.render(f), f.Name())
			}
			fmt.Fprint(cmd.OutOrStdout(), tbl.Render())

			if output != "" {
				if err := writeCatalog(output, fs); err != nil {
					return err
				}
				logger.Info("Wrote catalog", "path", output, "formulas", len(fs))
			}
			return rerr
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "catalog file to read (.yaml, .yml, or .toml)")
	cmd.Flags().StringVar(&inname, "in", "", "input file with one formula per line")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the sorted formulas to a catalog file")
	return cmd
}

func writeCatalog(path string, fs []*chemformula.Formula) error {
	format, err := catalog.FormatOf(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := catalog.Write(f, fs, format); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}
