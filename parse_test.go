package chemformula

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestParseTrees(t *testing.T) {
	cases := []struct {
		name string
		src  string
		tree string
	}{
		{"element", "H", "(H1)1"},
		{"water", "H2O", "(H2O1)1"},
		{"paren", "(OH)", "((O1H1)1)1"},
		{"paren1", "(OH)1", "((O1H1)1)1"},
		{"square", "[OH]2", "((O1H1)2)1"},
		{"curly", "{OH}3", "((O1H1)3)1"},
		{"folded", "{H2]", "((H2)1)1"},
		{"nested", "(A(B2)3)2", "((A1(B2)3)2)1"},
		{"empty", "()", "(()1)1"},
		{"empty-count", "H()2", "(H1()2)1"},
		{"hydrate", "[Cu(NH3)4]SO4.H2O", "((Cu1(N1H3)4)1S1O4H2O1)1"},
		{"spaces", " C a ( O H ) 2 ", "(Ca1(O1H1)2)1"},
		{"muscarine", "((CH3)3N)(C6H11O2)", "(((C1H3)3N1)1(C6H11O2)1)1"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			n, _, err := parse(lex(strings.NewReader(c.src)))
			if err != nil {
				t.Fatalf("failed to parse %q: %v", c.src, err)
			}
			if got := n.String(); got != c.tree {
				t.Errorf("wrong tree for %q: want %s, got %s", c.src, c.tree, got)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	cases := []struct {
		name   string
		src    string
		counts []Count
	}{
		{"nested", "(A(B2)3)2", []Count{{"A", 2}, {"B", 12}}},
		{"implicit", "(OH)", []Count{{"O", 1}, {"H", 1}}},
		{"explicit", "(OH)1", []Count{{"O", 1}, {"H", 1}}},
		{"trimethylamine", "(CH3)3N", []Count{{"C", 3}, {"H", 9}, {"N", 1}}},
		{"muscarine", "((CH3)3N)(C6H11O2)", []Count{{"C", 9}, {"H", 20}, {"N", 1}, {"O", 2}}},
		{"lactic", "CH3(CHOH)COOH", []Count{{"C", 3}, {"H", 6}, {"O", 3}}},
		{"chalk", "CaCO3", []Count{{"Ca", 1}, {"C", 1}, {"O", 3}}},
		{"theine", "(C5N4H)O2(CH3)3", []Count{{"C", 8}, {"N", 4}, {"H", 10}, {"O", 2}}},
		{"hydrate", "CuSO4.5H2O", []Count{{"Cu", 1}, {"S", 1}, {"O", 46}, {"H", 2}}},
		{"tetraammine", "[Cu(NH3)4]SO4.H2O", []Count{{"Cu", 1}, {"N", 4}, {"H", 14}, {"S", 1}, {"O", 5}}},
		{"empty-group", "H2()O", []Count{{"H", 2}, {"O", 1}}},
		{"empty", "", nil},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			n, _, err := parse(lex(strings.NewReader(c.src)))
			if err != nil {
				t.Fatalf("failed to parse %q: %v", c.src, err)
			}
			counts, err := n.resolve()
			if err != nil {
				t.Fatalf("failed to resolve %q: %v", c.src, err)
			}
			if !reflect.DeepEqual(counts, c.counts) {
				t.Errorf("wrong counts for %q: want %v, got %v", c.src, c.counts, counts)
			}
		})
	}
}

func TestParseDeterministic(t *testing.T) {
	const src = "((CH3)3N)(C6H11O2)"
	want, err := ParseString(src)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 100; i++ {
		got, err := ParseString(src)
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("parse %d differs: want %v, got %v", i, want, got)
		}
	}
}

func TestParseDeep(t *testing.T) {
	const depth = 100000
	src := strings.Repeat("(", depth) + "H" + strings.Repeat(")", depth) + "2"
	counts, err := ParseString(src)
	if err != nil {
		t.Fatal(err)
	}
	if want := []Count{{"H", 2}}; !reflect.DeepEqual(counts, want) {
		t.Errorf("want %v, got %v", want, counts)
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		err  InputError
		col  int
	}{
		{"close", "H2)O", new(MalformedBracketsError), 3},
		{"open", "(H2)(O", new(MalformedBracketsError), 5},
		{"open-space", "H2 (O", new(MalformedBracketsError), 4},
		{"close-first", ")(", new(MalformedBracketsError), 1},
		{"brackets-before-symbols", "Xy)", new(MalformedBracketsError), 3},
		{"brackets-before-lower", "caO(", new(MalformedBracketsError), 4},
		{"lowercase", "caO", new(InvalidElementSymbolError), 1},
		{"lowercase-start", "cO", new(InvalidElementSymbolError), 1},
		{"lowercase-run", "Hee", new(InvalidElementSymbolError), 1},
		{"lower-before-unknown", "XyCaa", new(InvalidElementSymbolError), 3},
		{"unknown", "XyO", new(UnknownElementSymbolError), 1},
		{"unknown-case", "CO2Cl2Zz", new(UnknownElementSymbolError), 7},
		{"unknown-nested", "H2(O(Qq))", new(UnknownElementSymbolError), 6},
		{"leading-count", "2H2O", new(InvalidCountError), 1},
		{"group-count", "(2H)", new(InvalidCountError), 2},
		{"zero", "H0", new(InvalidCountError), 2},
		{"zero-group", "(H)00", new(InvalidCountError), 4},
		{"huge", "H99999999999999999999", new(InvalidCountError), 2},
		{"overflow", "((H1000000000000)1000000000)1000000", new(InvalidCountError), 3},
		{"sum-overflow", "H9000000000000000000H9000000000000000000", new(InvalidCountError), 21},
		{"character", "H$", new(InvalidCharacterError), 2},
		{"charge", "SO4-2", new(InvalidCharacterError), 4},
		{"empty", "", new(EmptyFormulaError), 0},
		{"blank", "  ", new(EmptyFormulaError), 2},
		{"empty-group", "()", new(EmptyFormulaError), 2},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			counts, err := ParseString(c.src)
			if err == nil {
				t.Fatalf("%q parsed to %v", c.src, counts)
			}
			if reflect.TypeOf(err) != reflect.TypeOf(c.err) {
				t.Fatalf("%q gave wrong error: want %T, got %#v", c.src, c.err, err)
			}
			if got := err.(InputError).Pos(); got != c.col {
				t.Errorf("%q gave error at wrong position: want %d, got %d (%v)", c.src, c.col, got, err)
			}
			if counts != nil {
				t.Errorf("%q gave counts %v with error", c.src, counts)
			}
		})
	}
}

type brokenReader struct {
	*strings.Reader
	after int
}

var errBroken = errors.New("broken")

func (r *brokenReader) ReadRune() (rune, int, error) {
	if r.after == 0 {
		return 0, 0, errBroken
	}
	r.after--
	return r.Reader.ReadRune()
}

func TestParseReadError(t *testing.T) {
	_, err := Parse(&brokenReader{Reader: strings.NewReader("H2O"), after: 2})
	if !errors.Is(err, errBroken) {
		t.Errorf("want read error, got %v", err)
	}
}

func TestHillOrder(t *testing.T) {
	cases := []struct {
		name   string
		counts []Count
		hill   []Count
	}{
		{"carbon", []Count{{"O", 2}, {"H", 4}, {"C", 1}}, []Count{{"C", 1}, {"H", 4}, {"O", 2}}},
		{"no-carbon", []Count{{"H", 1}, {"Cl", 1}}, []Count{{"Cl", 1}, {"H", 1}}},
		{"no-hydrogen", []Count{{"Ca", 1}, {"C", 1}, {"O", 3}}, []Count{{"C", 1}, {"Ca", 1}, {"O", 3}}},
		{"arsine", []Count{{"As", 1}, {"H", 3}}, []Count{{"As", 1}, {"H", 3}}},
		{"case", []Count{{"S", 1}, {"Na", 2}, {"O", 4}, {"B", 1}}, []Count{{"B", 1}, {"Na", 2}, {"O", 4}, {"S", 1}}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			orig := append([]Count(nil), c.counts...)
			if got := hillOrder(c.counts); !reflect.DeepEqual(got, c.hill) {
				t.Errorf("want %v, got %v", c.hill, got)
			}
			if !reflect.DeepEqual(orig, c.counts) {
				t.Errorf("hillOrder modified its argument: %v became %v", orig, c.counts)
			}
		})
	}
}

func BenchmarkParse(b *testing.B) {
	cases := []struct {
		name string
		src  string
	}{
		{"water", "H2O"},
		{"caffeine", "C8H10N4O2"},
		{"muscarine", "((CH3)3N)(C6H11O2)"},
		{"tetraammine", "[Cu(NH3)4]SO4.H2O"},
	}
	for _, c := range cases {
		b.Run(c.name, func(b *testing.B) {
			b.ReportAllocs()
			var src strings.Reader
			for i := 0; i < b.N; i++ {
				src.Reset(c.src)
				Parse(&src)
			}
		})
	}
}
