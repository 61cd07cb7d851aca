package mcs51

// ReservedName is the name used for the reserved opcode 0xa5 that has no
// documented instruction assigned.
const ReservedName = "reserved"

// Instruction represents a single decoded instruction.
type Instruction struct {
	Name   string // instruction mnemonic in lower case
	Params string // formatted parameters, empty if the instruction has none
	Size   int    // instruction size in bytes, 1 to 3

	Target    uint16 // destination address for branches and calls
	HasTarget bool   // true if Target is valid
}

// String returns the instruction in assembler notation.
func (ins Instruction) String() string {
	if ins.Params == "" {
		return ins.Name
	}
	return ins.Name + " " + ins.Params
}

// BranchingInstructions contains all instructions that branch to a
// different address.
var BranchingInstructions = map[string]struct{}{
	"acall": {},
	"ajmp":  {},
	"cjne":  {},
	"djnz":  {},
	"jb":    {},
	"jbc":   {},
	"jc":    {},
	"jmp":   {},
	"jnb":   {},
	"jnc":   {},
	"jnz":   {},
	"jz":    {},
	"lcall": {},
	"ljmp":  {},
	"sjmp":  {},
}

// NotExecutingFollowingOpcodeInstructions contains all instructions that do
// not execute the following opcode.
var NotExecutingFollowingOpcodeInstructions = map[string]struct{}{
	"ajmp": {},
	"jmp":  {},
	"ljmp": {},
	"ret":  {},
	"reti": {},
	"sjmp": {},
}

// CallInstructions contains all instructions that call a function.
var CallInstructions = map[string]struct{}{
	"acall": {},
	"lcall": {},
}
