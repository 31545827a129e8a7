// Package chemformula parses chemical formulas and computes facts about them.
//
// Formulas are written the way they appear in text: element symbols followed
// by optional counts, with brackets grouping repeated units. "(CH3)3N" is the
// same composition as "C3H9N", and "[Cu(NH3)4]SO4.H2O" contains four N and
// fourteen H. The three kinds of brackets are interchangeable. Spaces, '.',
// and '*' are ignored when computing the composition, but are kept when
// rendering the formula as LaTeX, HTML, or Unicode.
//
// A Formula knows its composition, charge, name, and CAS Registry Number. It
// computes its formula weight, mass fractions, and whether it is radioactive,
// and it converts to canonical sum and Hill formulas. Formulas compare as
// equal when their compositions, charges, and CAS numbers match; they sort in
// Hill notation order.
//
package chemformula
