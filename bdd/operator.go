// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

// Operator names the binary Boolean operations available through Apply and
// AppEx. Only the first five (And .. Nor) may be used with AppEx: the
// quantification step folds partial results with Or, which is only sound
// when op itself composes with Or that way.
type Operator int

const (
	OPand Operator = iota
	OPor
	OPxor
	OPnand
	OPnor
	OPimp
	OPbiimp
	OPdiff
	OPless
	OPinvimp
)

var opNames = [...]string{
	OPand: "and", OPor: "or", OPxor: "xor", OPnand: "nand", OPnor: "nor",
	OPimp: "imp", OPbiimp: "biimp", OPdiff: "diff", OPless: "less", OPinvimp: "invimp",
}

func (op Operator) String() string {
	return opNames[op]
}

// truthtable[op][a][b] gives the result of op on two constants a, b in {0,1}.
var truthtable = [...][2][2]NodeID{
	OPand:    {{0, 0}, {0, 1}},
	OPor:     {{0, 1}, {1, 1}},
	OPxor:    {{0, 1}, {1, 0}},
	OPnand:   {{1, 1}, {1, 0}},
	OPnor:    {{1, 0}, {0, 0}},
	OPimp:    {{1, 1}, {0, 1}},
	OPbiimp:  {{1, 0}, {0, 1}},
	OPdiff:   {{0, 0}, {1, 0}},
	OPless:   {{0, 1}, {0, 0}},
	OPinvimp: {{1, 0}, {1, 1}},
}
