package disasm

import (
	"github.com/retroenv/mcs51godisasm/internal/arch/mcs51"
	"github.com/retroenv/mcs51godisasm/internal/program"
)

// offset defines the content of an offset in a program that can represent data or code.
type offset struct {
	program.Offset

	instruction mcs51.Instruction // decoded instruction that starts at this offset

	branchFrom  []uint16 // addresses of all instructions that branch to this offset
	branchingTo string   // label to jump to if the instruction branches
}
