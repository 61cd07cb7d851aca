package disasm

import (
	"fmt"
	"slices"
	"strings"

	"github.com/retroenv/mcs51godisasm/internal/arch/mcs51"
	"github.com/retroenv/mcs51godisasm/internal/program"
)

const (
	funcNaming  = "_func_%04x"
	labelNaming = "_label_%04x"
)

// processJumpDestinations processes all jump destinations and updates the callers with
// the generated jump destination label name.
func (dis *Disasm) processJumpDestinations() {
	destinations := make([]uint16, 0, len(dis.branchDestinations))
	for dest := range dis.branchDestinations {
		destinations = append(destinations, dest)
	}
	slices.Sort(destinations)

	for _, address := range destinations {
		offsetInfo := &dis.offsets[address]

		name := offsetInfo.Label
		if name == "" {
			if offsetInfo.IsType(program.CallDestination) {
				name = fmt.Sprintf(funcNaming, address)
			} else {
				name = fmt.Sprintf(labelNaming, address)
			}
			offsetInfo.Label = name
		}

		// if the offset is marked as code but does not have opcode bytes, the jump
		// destination is inside the second or third byte of an instruction.
		if offsetInfo.IsType(program.CodeOffset) && len(offsetInfo.Data) == 0 {
			dis.handleJumpIntoInstruction(address)
		}

		for _, caller := range offsetInfo.branchFrom {
			dis.offsets[caller].branchingTo = name
		}
	}
}

// handleJumpIntoInstruction converts an instruction that has a jump destination label inside
// its second or third opcode bytes into data.
func (dis *Disasm) handleJumpIntoInstruction(address uint16) {
	// look backwards for the instruction start
	instructionStart := address - 1
	for ; len(dis.offsets[instructionStart].Data) == 0; instructionStart-- {
	}

	offsetInfo := &dis.offsets[instructionStart]
	offsetInfo.Comment = fmt.Sprintf("branch into instruction detected: %s", offsetInfo.Code)
	offsetInfo.Code = ""
	offsetInfo.SetType(program.CodeAsData)
	dis.changeAddressRangeToData(instructionStart, offsetInfo.Data)
}

// changeAddressRangeToCode sets a range of addresses to code types.
func (dis *Disasm) changeAddressRangeToCode(address uint16, data []byte) {
	for i := 0; i < len(data) && int(address)+i < len(dis.offsets); i++ {
		offsetInfo := &dis.offsets[address+uint16(i)]
		offsetInfo.SetType(program.CodeOffset)
	}
}

// codeWithLabel returns the assembly code of a branching instruction with its
// branch target operand replaced by the label name. The target is always the
// last operand of the instruction.
func codeWithLabel(ins mcs51.Instruction, label string) string {
	target := fmt.Sprintf("0x%x", ins.Target)
	return ins.Name + " " + strings.TrimSuffix(ins.Params, target) + label
}
