package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/zephyrtronium/chemformula"
	"github.com/zephyrtronium/chemformula/internal/catalog"
	"github.com/zephyrtronium/chemformula/internal/logger"
)

// errRejected is returned by commands that skipped some invalid input after
// logging it.
var errRejected = errors.New("some input was rejected")

// inputs collects formula texts from args, or from the named file or stdin,
// one per line, if there are no args.
func inputs(args []string, inname string, stdin io.Reader) ([]string, error) {
	if len(args) > 0 && inname == "" {
		return args, nil
	}
	r, closer, err := infile(inname, stdin)
	if err != nil {
		return nil, err
	}
	defer closer()
	texts := append([]string(nil), args...)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		texts = append(texts, line)
	}
	return texts, sc.Err()
}

func infile(inname string, stdin io.Reader) (io.Reader, func(), error) {
	if inname != "" && inname != "-" {
		f, err := os.Open(inname)
		if err != nil {
			return nil, nil, err
		}
		return f, func() { f.Close() }, nil
	}
	return stdin, func() {}, nil
}

// parseAll creates formulas from texts with the same options. Invalid
// formulas are logged and skipped.
func parseAll(texts []string, opts ...chemformula.Option) ([]*chemformula.Formula, error) {
	var r []*chemformula.Formula
	var rejected bool
	for _, s := range texts {
		f, err := chemformula.New(s, opts...)
		if err != nil {
			logger.InputRejected("formula", s, err)
			rejected = true
			continue
		}
		r = append(r, f)
	}
	if rejected {
		return r, errRejected
	}
	return r, nil
}

// loadCatalog reads a catalog file and logs its rejected entries.
func loadCatalog(path string) ([]*chemformula.Formula, error) {
	c, err := catalog.Load(path)
	if err != nil {
		return nil, err
	}
	for _, e := range c.Rejected {
		logger.InputRejected("formula", e.Formula, fmt.Errorf("entry %d: %w", e.Index, e.Err))
	}
	if len(c.Rejected) > 0 {
		return c.Formulas, errRejected
	}
	return c.Formulas, nil
}

// formulaOptions builds options from the show command's flags.
func formulaOptions(charge, name, casText string) ([]chemformula.Option, error) {
	var opts []chemformula.Option
	if charge != "" {
		q, err := chemformula.ParseCharge(charge)
		if err != nil {
			return nil, err
		}
		opts = append(opts, chemformula.Charge(q))
	}
	if name != "" {
		opts = append(opts, chemformula.Name(name))
	}
	if casText != "" {
		n, err := parseCAS(casText)
		if err != nil {
			return nil, err
		}
		opts = append(opts, chemformula.CAS(n))
	}
	return opts, nil
}
