// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package mtmdd

// Operator names the binary arithmetic operations available through Apply.
type Operator int

const (
	OPadd Operator = iota
	OPsub
	OPmul
	OPdiv
	OPrem
	OPmin
	OPmax
)

var opNames = [...]string{
	OPadd: "add", OPsub: "sub", OPmul: "mul", OPdiv: "div",
	OPrem: "rem", OPmin: "min", OPmax: "max",
}

func (op Operator) String() string {
	return opNames[op]
}
