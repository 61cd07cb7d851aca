package disasm

import (
	"context"
	"fmt"

	"github.com/retroenv/mcs51godisasm/internal/arch/mcs51"
	"github.com/retroenv/mcs51godisasm/internal/program"
)

// followExecutionFlow parses opcodes and follows the execution flow to parse all code.
func (dis *Disasm) followExecutionFlow(ctx context.Context) error {
	for len(dis.offsetsToParse) > 0 {
		select {
		case <-ctx.Done():
			return fmt.Errorf("stopping disassembly: %w", ctx.Err())
		default:
		}

		dis.pc = dis.offsetsToParse[0]
		dis.offsetsToParse = dis.offsetsToParse[1:]

		offsetInfo, inspectCode := dis.initializeOffsetInfo(dis.pc)
		if !inspectCode {
			continue
		}

		ins := offsetInfo.instruction
		offsetInfo.Code = ins.String()

		if _, ok := mcs51.BranchingInstructions[ins.Name]; ok && ins.HasTarget {
			dis.addAddressToParse(ins.Target, dis.pc, ins.Name, true)
		}

		if _, ok := mcs51.NotExecutingFollowingOpcodeInstructions[ins.Name]; !ok {
			followingAddress := dis.pc + uint16(ins.Size)
			dis.addAddressToParse(followingAddress, dis.pc, "", false)
		}

		dis.checkInstructionOverlap(offsetInfo, dis.pc)

		if dis.handleReservedOpcode(offsetInfo) {
			continue
		}

		dis.changeAddressRangeToCode(dis.pc, offsetInfo.Data)
	}
	return nil
}

// in case the current instruction overlaps with an already existing instruction,
// cut the current one short.
func (dis *Disasm) checkInstructionOverlap(offsetInfo *offset, address uint16) {
	for i := 1; i < len(offsetInfo.Data) && int(address)+i < len(dis.offsets); i++ {
		offsetInfoFollowing := &dis.offsets[address+uint16(i)]
		if !offsetInfoFollowing.IsType(program.CodeOffset) {
			continue
		}

		offsetInfoFollowing.Comment = "branch into instruction detected"
		offsetInfo.Comment = offsetInfo.Code
		offsetInfo.Data = offsetInfo.Data[:i]
		offsetInfo.Code = ""
		offsetInfo.ClearType(program.CodeOffset)
		offsetInfo.SetType(program.CodeAsData | program.DataOffset)
		return
	}
}

// initializeOffsetInfo initializes the offset info for the given address and returns
// whether the offset should be inspected as code.
func (dis *Disasm) initializeOffsetInfo(address uint16) (*offset, bool) {
	offsetInfo := &dis.offsets[address]

	if offsetInfo.IsType(program.CodeOffset) {
		return offsetInfo, false // was already disassembled
	}

	ins, err := mcs51.Decode(address, dis.code[address:])
	if err != nil {
		// an instruction that extends beyond the image end can not be disassembled,
		// consider it the start of data
		offsetInfo.Data = []byte{dis.code[address]}
		offsetInfo.SetType(program.DataOffset)
		return offsetInfo, false
	}

	offsetInfo.instruction = ins
	offsetInfo.Data = dis.code[address : int(address)+ins.Size]
	return offsetInfo, true
}

// handleReservedOpcode converts the reserved opcode 0xa5 into a data byte, as there
// is no mnemonic for it that an assembler would accept.
func (dis *Disasm) handleReservedOpcode(offsetInfo *offset) bool {
	if offsetInfo.instruction.Name != mcs51.ReservedName || dis.options.OutputReservedAsMnemonic {
		return false
	}

	offsetInfo.Comment = "reserved opcode"
	offsetInfo.Code = ""
	offsetInfo.SetType(program.CodeAsData)
	dis.changeAddressRangeToData(dis.pc, offsetInfo.Data)
	return true
}

// addAddressToParse adds an address to the list to be processed if the address has not
// been processed yet. Addresses outside of the loaded image are ignored.
func (dis *Disasm) addAddressToParse(address, from uint16, currentInstruction string,
	isABranchDestination bool) {

	if int(address) >= len(dis.code) {
		return
	}

	offsetInfo := &dis.offsets[address]

	if isABranchDestination {
		if _, ok := mcs51.CallInstructions[currentInstruction]; ok {
			offsetInfo.SetType(program.CallDestination)
		}

		offsetInfo.branchFrom = append(offsetInfo.branchFrom, from)
		dis.branchDestinations.Add(address)
	}

	if dis.offsetsToParseAdded.Contains(address) {
		return
	}
	dis.offsetsToParseAdded.Add(address)

	dis.offsetsToParse = append(dis.offsetsToParse, address)
}
