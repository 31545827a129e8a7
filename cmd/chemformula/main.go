// Command chemformula parses chemical formulas and prints their
// representations, weights, and compositions.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zephyrtronium/chemformula/internal/logger"
)

var version = "0.1.0"

// formats are the values of the format option.
var formats = []string{"unicode", "latex", "html", "plain"}

// app holds the configuration shared by all commands.
type app struct {
	v   *viper.Viper
	err io.Writer
}

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{v: viper.New(), err: stderr}
	root := &cobra.Command{
		Use:   "chemformula",
		Short: "Parse chemical formulas",
		Long: `chemformula parses chemical formulas such as "((CH3)3N)(C6H11O2)" and
prints their sum and Hill formulas, formula weights, and mass fractions as
Unicode, LaTeX, HTML, or plain text. It also validates CAS Registry Numbers.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.initConfig,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.String("log-level", "", "log level (debug|info|warn|error) [default: info]")
	pf.String("format", "unicode", "output format ("+strings.Join(formats, "|")+")")
	pf.Int("precision", 2, "decimal places for weights and fractions")
	pf.String("config", "", "config file (YAML)")
	for _, name := range []string{"log-level", "format", "precision", "config"} {
		if err := a.v.BindPFlag(name, pf.Lookup(name)); err != nil {
			panic(err)
		}
	}
	a.v.SetEnvPrefix("CHEMFORMULA")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	root.AddCommand(
		a.showCmd(),
		a.sortCmd(),
		a.compareCmd(),
		a.casCmd(),
		versionCmd(),
	)
	return root
}

// initConfig reads the config file, if any, and configures the logger. Flags
// take precedence over environment variables, which take precedence over the
// config file.
func (a *app) initConfig(cmd *cobra.Command, _ []string) error {
	if cfg := a.v.GetString("config"); cfg != "" {
		a.v.SetConfigFile(cfg)
		a.v.SetConfigType("yaml")
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config %s: %w", cfg, err)
		}
	}
	if err := logger.Configure(a.v.GetString("log-level"), a.err); err != nil {
		return fmt.Errorf("configuring logger: %w", err)
	}
	if !validFormat(a.format()) {
		return fmt.Errorf("unknown format %q (want %s)", a.format(), strings.Join(formats, ", "))
	}
	if a.precision() < 0 {
		return fmt.Errorf("precision (%d) must not be negative", a.precision())
	}
	logger.Debug("Configured", "command", cmd.Name(), "format", a.format(), "precision", a.precision(), "config", a.v.ConfigFileUsed())
	return nil
}

func (a *app) format() string {
	return strings.ToLower(a.v.GetString("format"))
}

func (a *app) precision() int {
	return a.v.GetInt("precision")
}

func validFormat(f string) bool {
	for _, v := range formats {
		if f == v {
			return true
		}
	}
	return false
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "chemformula v%s\n", version)
		},
	}
}
