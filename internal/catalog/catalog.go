// Package catalog reads and writes batch files of formulas for the
// chemformula command. A catalog is a YAML or TOML document listing formulas
// with optional charges, names, and CAS numbers:
//
//	formulas:
//	  - formula: C8H10N4O2
//	    name: caffeine
//	    cas: 58-08-2
//	  - formula: SO4
//	    charge: 2-
//
// CAS numbers may be written as integers or in hyphenated notation. Charges
// may be integers or chemical notation like "2-".
package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/zephyrtronium/chemformula"
	"github.com/zephyrtronium/chemformula/internal/logger"
)

// Format is the encoding of a catalog file.
type Format int

const (
	YAML Format = iota
	TOML
)

func (f Format) String() string {
	switch f {
	case YAML:
		return "yaml"
	case TOML:
		return "toml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatOf chooses the format of a catalog file by its extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	default:
		return 0, fmt.Errorf("catalog %s: unknown extension %q (want .yaml, .yml, or .toml)", path, filepath.Ext(path))
	}
}

// Entry is one formula as written in a catalog file.
type Entry struct {
	Formula string `yaml:"formula" toml:"formula"`
	Name    string `yaml:"name,omitempty" toml:"name,omitempty"`
	Charge  any    `yaml:"charge,omitempty" toml:"charge,omitempty"`
	CAS     any    `yaml:"cas,omitempty" toml:"cas,omitempty"`
}

type file struct {
	Formulas []Entry `yaml:"formulas" toml:"formulas"`
}

// Catalog is the result of reading a catalog file. Invalid entries do not
// stop reading; they are collected in Rejected.
type Catalog struct {
	Formulas []*chemformula.Formula
	Rejected []*EntryError
}

// EntryError is an error in one entry of a catalog.
type EntryError struct {
	// Index is the 0-based position of the entry in the file.
	Index int
	// Formula is the formula text of the entry.
	Formula string
	// Err is the cause.
	Err error
}

func (err *EntryError) Error() string {
	return fmt.Sprintf("entry %d (%q): %v", err.Index, err.Formula, err.Err)
}

func (err *EntryError) Unwrap() error {
	return err.Err
}

// Load reads the catalog file at path, choosing the format by extension.
func Load(path string) (*Catalog, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	c, err := Read(data, format)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	logger.Debug("Loaded catalog", "path", path, "formulas", len(c.Formulas), "rejected", len(c.Rejected))
	return c, nil
}

// Read decodes a catalog and creates a formula for each entry.
func Read(data []byte, format Format) (*Catalog, error) {
	var f file
	switch format {
	case YAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
	case TOML:
		md, err := toml.Decode(string(data), &f)
		if err != nil {
			return nil, err
		}
		if u := md.Undecoded(); len(u) > 0 {
			return nil, fmt.Errorf("unknown key %s", u[0])
		}
	default:
		return nil, fmt.Errorf("unknown catalog format %v", format)
	}
	c := Catalog{Formulas: make([]*chemformula.Formula, 0, len(f.Formulas))}
	for i, e := range f.Formulas {
		fm, err := e.New()
		if err != nil {
			c.Rejected = append(c.Rejected, &EntryError{Index: i, Formula: e.Formula, Err: err})
			continue
		}
		c.Formulas = append(c.Formulas, fm)
	}
	return &c, nil
}

// New creates the formula that the entry describes.
func (e Entry) New() (*chemformula.Formula, error) {
	charge, err := chargeOf(e.Charge)
	if err != nil {
		return nil, err
	}
	opts := []chemformula.Option{chemformula.Charge(charge), chemformula.Name(e.Name)}
	if e.CAS != nil {
		opts = append(opts, chemformula.CAS(e.CAS))
	}
	return chemformula.New(e.Formula, opts...)
}

// chargeOf converts a decoded charge to an int. YAML gives int and TOML gives
// int64 for integers; strings use chemical notation.
func chargeOf(v any) (int, error) {
	switch v := v.(type) {
	case nil:
		return 0, nil
	case int:
		return v, nil
	case int64:
		if int64(int(v)) != v {
			return 0, &chemformula.InvalidChargeTypeError{Text: fmt.Sprint(v)}
		}
		return int(v), nil
	case string:
		return chemformula.ParseCharge(v)
	default:
		return 0, &chemformula.InvalidChargeTypeError{Text: fmt.Sprint(v)}
	}
}

// EntryOf describes a formula as a catalog entry. Charges are written in
// chemical notation and CAS numbers in hyphenated notation.
func EntryOf(f *chemformula.Formula) Entry {
	e := Entry{Formula: f.Text(), Name: f.Name()}
	if f.Charged() {
		e.Charge = f.ChargeText()
	}
	if n := f.CAS(); n != nil {
		e.CAS = n.String()
	}
	return e
}

// Write encodes formulas as a catalog.
func Write(w io.Writer, fs []*chemformula.Formula, format Format) error {
	f := file{Formulas: make([]Entry, len(fs))}
	for i, fm := range fs {
		f.Formulas[i] = EntryOf(fm)
	}
	switch format {
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(&f); err != nil {
			return err
		}
		return enc.Close()
	case TOML:
		return toml.NewEncoder(w).Encode(&f)
	default:
		return fmt.Errorf("unknown catalog format %v", format)
	}
}
