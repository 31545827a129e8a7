package chemformula_test

import (
	"fmt"

	"github.com/zephyrtronium/chemformula"
)

func Example() {
	muscarine, err := chemformula.New("((CH3)3N)(C6H11O2)",
		chemformula.Charge(1),
		chemformula.Name("L-(+)-Muscarine"),
		chemformula.CAS(300549),
	)
	if err != nil {
		panic(err)
	}
	fmt.Println(muscarine.Name(), muscarine.CAS())
	fmt.Println(muscarine.Unicode())
	fmt.Println(muscarine.HillFormula().TextFormula())
	fmt.Printf("%.2f g/mol\n", muscarine.FormulaWeight())
	fmt.Printf("%.2f%% C\n", 100*muscarine.MassFraction()["C"])
	// Output:
	// L-(+)-Muscarine 300-54-9
	// ((CH₃)₃N)(C₆H₁₁O₂)⁺
	// C9H20NO2 +
	// 174.26 g/mol
	// 62.03% C
}

func ExampleParseString() {
	counts, err := chemformula.ParseString("(CH3)3N")
	fmt.Println(counts, err)
	_, err = chemformula.ParseString("H2)O")
	fmt.Println(err)
	_, err = chemformula.ParseString("XyO")
	fmt.Println(err)
	// Output:
	// [{C 3} {H 9} {N 1}] <nil>
	// 3: close bracket ) with no open bracket
	// 1: unknown element symbol "Xy"
}

func ExampleFormula_Format() {
	f := chemformula.MustNew("[Cu(NH3)4]SO4.H2O")
	fmt.Println(f.Format(chemformula.Template{
		FormulaPrefix:  "--> ",
		FreqPrefix:     "_<",
		FreqSuffix:     ">",
		FormulaSuffix:  " <--",
		MultiplySymbol: " * ",
	}))
	// Output:
	// --> [Cu(NH_<3>)_<4>]SO_<4> * H_<2>O <--
}

func ExampleFormula_Equal() {
	caffeine := chemformula.MustNew("C8H10N4O2", chemformula.CAS("58-08-2"))
	theine := chemformula.MustNew("(C5N4H)O2(CH3)3", chemformula.CAS(58082))
	fmt.Println(caffeine.Equal(theine))
	// Output:
	// true
}

func ExampleSort() {
	fs := []*chemformula.Formula{
		chemformula.MustNew("C6H12O6"),
		chemformula.MustNew("HCl"),
		chemformula.MustNew("CH3COOH"),
		chemformula.MustNew("CaCO3"),
	}
	chemformula.Sort(fs)
	for _, f := range fs {
		fmt.Println(f.HillFormula())
	}
	// Output:
	// CCaO3
	// C2H4O2
	// C6H12O6
	// ClH
}
