package mcs51

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownOpcode is returned when an opcode can not be matched to an
	// instruction family. All 256 opcodes have an instruction or the
	// reserved placeholder assigned, the error is kept for API completeness.
	ErrUnknownOpcode = errors.New("unknown opcode")

	// ErrTruncatedInstruction is returned when the buffer ends before the
	// last byte of the instruction.
	ErrTruncatedInstruction = errors.New("truncated instruction")
)

// Decode decodes the instruction starting at the given program counter
// address. buf contains the instruction bytes, starting with the opcode
// byte. The program counter is used to resolve branch destinations,
// address calculations wrap around at the end of the 64KB address space.
func Decode(pc uint16, buf []byte) (Instruction, error) {
	if len(buf) == 0 {
		return Instruction{}, fmt.Errorf("%w: buffer is empty", ErrTruncatedInstruction)
	}

	// Operand bytes beyond the end of the buffer decode as zero, the result
	// is discarded by the size check below.
	var window [3]byte
	copy(window[:], buf)

	ins, err := decodeOpcode(pc, window[:])
	if err != nil {
		return Instruction{}, err
	}

	if len(buf) < ins.Size {
		return Instruction{}, fmt.Errorf("%w: %s needs %d bytes, buffer has %d",
			ErrTruncatedInstruction, ins.Name, ins.Size, len(buf))
	}
	return ins, nil
}

// decodeOpcode decodes an instruction from a buffer that is guaranteed to be
// at least 3 bytes long.
func decodeOpcode(pc uint16, buf []byte) (Instruction, error) {
	opcode := buf[0]

	// ajmp and acall do not follow the family scheme, the high 3 bits of
	// the opcode byte encode part of the destination address.
	switch opcode & 0x1f {
	case 0x01:
		return decodeAbsoluteBranch("ajmp", pc, buf), nil
	case 0x11:
		return decodeAbsoluteBranch("acall", pc, buf), nil
	}

	low := opcode & 0x0f

	switch opcode & 0xf0 {
	case 0x00:
		return decodeInc(low, buf), nil
	case 0x10:
		return decodeDec(pc, low, buf), nil
	case 0x20:
		return decodeAdd(pc, low, buf), nil
	case 0x30:
		return decodeAddc(pc, low, buf), nil
	case 0x40:
		return decodeLogic("orl", "jc", pc, low, buf), nil
	case 0x50:
		return decodeLogic("anl", "jnc", pc, low, buf), nil
	case 0x60:
		return decodeLogic("xrl", "jz", pc, low, buf), nil
	case 0x70:
		return decodeMovImmediate(pc, low, buf), nil
	case 0x80:
		return decodeMovDirect(pc, low, buf), nil
	case 0x90:
		return decodeSubb(low, buf), nil
	case 0xa0:
		return decodeMovFromDirect(low, buf), nil
	case 0xb0:
		return decodeCjne(pc, low, buf), nil
	case 0xc0:
		return decodeXch(low, buf), nil
	case 0xd0:
		return decodeDjnz(pc, low, buf), nil
	case 0xe0:
		return decodeMovToAccumulator(low, buf), nil
	case 0xf0:
		return decodeMovFromAccumulator(low, buf), nil
	default:
		return Instruction{}, fmt.Errorf("%w: 0x%02x", ErrUnknownOpcode, opcode)
	}
}

// relativeTarget returns the destination of a relative branch. The signed
// offset is relative to the address of the following instruction.
func relativeTarget(pc uint16, size int, offset byte) uint16 {
	return pc + uint16(size) + uint16(int8(offset))
}

// decodeAbsoluteBranch decodes ajmp and acall. The 11 bit destination is
// formed from the high 3 bits of the opcode, the operand byte and the page
// of the following instruction.
func decodeAbsoluteBranch(name string, pc uint16, buf []byte) Instruction {
	dest := (pc+2)&0xf800 | uint16(buf[0]&0xe0)<<3 | uint16(buf[1])
	return Instruction{
		Name:      name,
		Params:    fmt.Sprintf("0x%x", dest),
		Size:      2,
		Target:    dest,
		HasTarget: true,
	}
}

// decodeInc decodes the 0x00 family: nop, ljmp, rr and inc.
func decodeInc(low byte, buf []byte) Instruction {
	switch low {
	case 0x0:
		return Instruction{Name: "nop", Size: 1}

	case 0x2:
		dest := uint16(buf[1])<<8 | uint16(buf[2])
		return Instruction{
			Name:      "ljmp",
			Params:    fmt.Sprintf("0x%x", dest),
			Size:      3,
			Target:    dest,
			HasTarget: true,
		}

	case 0x3:
		return Instruction{Name: "rr", Params: "a", Size: 1}

	case 0x4:
		return Instruction{Name: "inc", Params: "a", Size: 1}
	}

	param, size := resolveOperand(low, buf)
	return Instruction{Name: "inc", Params: param, Size: size}
}

// decodeDec decodes the 0x10 family: jbc, lcall, rrc and dec.
func decodeDec(pc uint16, low byte, buf []byte) Instruction {
	switch low {
	case 0x0:
		dest := relativeTarget(pc, 3, buf[2])
		return Instruction{
			Name:      "jbc",
			Params:    fmt.Sprintf("%s, 0x%x", BitName(buf[1]), dest),
			Size:      3,
			Target:    dest,
			HasTarget: true,
		}

	case 0x2:
		dest := uint16(buf[1])<<8 | uint16(buf[2])
		return Instruction{
			Name:      "lcall",
			Params:    fmt.Sprintf("0x%x", dest),
			Size:      3,
			Target:    dest,
			HasTarget: true,
		}

	case 0x3:
		return Instruction{Name: "rrc", Params: "a", Size: 1}

	case 0x4:
		return Instruction{Name: "dec", Params: "a", Size: 1}
	}

	param, size := resolveOperand(low, buf)
	return Instruction{Name: "dec", Params: param, Size: size}
}

// decodeAdd decodes the 0x20 family: jb, ret, rl and add.
func decodeAdd(pc uint16, low byte, buf []byte) Instruction {
	switch low {
	case 0x0:
		dest := relativeTarget(pc, 3, buf[2])
		return Instruction{
			Name:      "jb",
			Params:    fmt.Sprintf("%s, 0x%x", BitName(buf[1]), dest),
			Size:      3,
			Target:    dest,
			HasTarget: true,
		}

	case 0x2:
		return Instruction{Name: "ret", Size: 1}

	case 0x3:
		return Instruction{Name: "rl", Params: "a", Size: 1}
	}

	param, size := resolveOperand(low, buf)
	return Instruction{Name: "add", Params: "a, " + param, Size: size}
}

// decodeAddc decodes the 0x30 family: jnb, reti, rlc and addc.
func decodeAddc(pc uint16, low byte, buf []byte) Instruction {
	switch low {
	case 0x0:
		dest := relativeTarget(pc, 3, buf[2])
		return Instruction{
			Name:      "jnb",
			Params:    fmt.Sprintf("%s, 0x%x", BitName(buf[1]), dest),
			Size:      3,
			Target:    dest,
			HasTarget: true,
		}

	case 0x2:
		return Instruction{Name: "reti", Size: 1}

	case 0x3:
		return Instruction{Name: "rlc", Params: "a", Size: 1}
	}

	param, size := resolveOperand(low, buf)
	return Instruction{Name: "addc", Params: "a, " + param, Size: size}
}

// decodeLogic decodes the 0x40, 0x50 and 0x60 families that share one
// layout: a relative branch on a carry or zero condition and the orl, anl
// and xrl logic operations.
func decodeLogic(name, branch string, pc uint16, low byte, buf []byte) Instruction {
	switch low {
	case 0x0:
		dest := relativeTarget(pc, 2, buf[1])
		return Instruction{
			Name:      branch,
			Params:    fmt.Sprintf("0x%x", dest),
			Size:      2,
			Target:    dest,
			HasTarget: true,
		}

	case 0x2:
		return Instruction{
			Name:   name,
			Params: SFRName(buf[1]) + ", a",
			Size:   2,
		}

	case 0x3:
		return Instruction{
			Name:   name,
			Params: fmt.Sprintf("%s, #0x%x", SFRName(buf[1]), buf[2]),
			Size:   3,
		}
	}

	param, size := resolveOperand(low, buf)
	return Instruction{Name: name, Params: "a, " + param, Size: size}
}

// decodeMovImmediate decodes the 0x70 family: jnz, orl onto the carry flag,
// jmp and the immediate mov variants.
func decodeMovImmediate(pc uint16, low byte, buf []byte) Instruction {
	switch low {
	case 0x0:
		dest := relativeTarget(pc, 2, buf[1])
		return Instruction{
			Name:      "jnz",
			Params:    fmt.Sprintf("0x%x", dest),
			Size:      2,
			Target:    dest,
			HasTarget: true,
		}

	case 0x2:
		return Instruction{
			Name:   "orl",
			Params: "c, " + BitName(buf[1]),
			Size:   2,
		}

	case 0x3:
		return Instruction{Name: "jmp", Params: "@a+dptr", Size: 1}

	case 0x4:
		return Instruction{
			Name:   "mov",
			Params: fmt.Sprintf("a, #0x%x", buf[1]),
			Size:   2,
		}

	case 0x5:
		return Instruction{
			Name:   "mov",
			Params: fmt.Sprintf("%s, #0x%x", SFRName(buf[1]), buf[2]),
			Size:   3,
		}
	}

	return Instruction{
		Name:   "mov",
		Params: fmt.Sprintf("%s, #0x%x", registerNames[low-0x6], buf[1]),
		Size:   2,
	}
}

// decodeMovDirect decodes the 0x80 family: sjmp, anl onto the carry flag,
// movc, div and the mov variants that write to a direct address.
func decodeMovDirect(pc uint16, low byte, buf []byte) Instruction {
	switch low {
	case 0x0:
		dest := relativeTarget(pc, 2, buf[1])
		return Instruction{
			Name:      "sjmp",
			Params:    fmt.Sprintf("0x%x", dest),
			Size:      2,
			Target:    dest,
			HasTarget: true,
		}

	case 0x2:
		return Instruction{
			Name:   "anl",
			Params: "c, " + BitName(buf[1]),
			Size:   2,
		}

	case 0x3:
		return Instruction{Name: "movc", Params: "a, @a+pc", Size: 1}

	case 0x4:
		return Instruction{Name: "div", Params: "ab", Size: 1}

	case 0x5:
		// the source address is the first operand byte, the destination
		// address the second one
		return Instruction{
			Name:   "mov",
			Params: fmt.Sprintf("%s, %s", SFRName(buf[2]), SFRName(buf[1])),
			Size:   3,
		}
	}

	return Instruction{
		Name:   "mov",
		Params: fmt.Sprintf("%s, %s", SFRName(buf[1]), registerNames[low-0x6]),
		Size:   2,
	}
}

// decodeSubb decodes the 0x90 family: the 16 bit mov into dptr, mov of the
// carry flag into a bit address, movc and subb.
func decodeSubb(low byte, buf []byte) Instruction {
	switch low {
	case 0x0:
		value := uint16(buf[1])<<8 | uint16(buf[2])
		return Instruction{
			Name:   "mov",
			Params: fmt.Sprintf("dptr, #0x%x", value),
			Size:   3,
		}

	case 0x2:
		return Instruction{
			Name:   "mov",
			Params: BitName(buf[1]) + ", c",
			Size:   2,
		}

	case 0x3:
		return Instruction{Name: "movc", Params: "a, @a+dptr", Size: 1}
	}

	param, size := resolveOperand(low, buf)
	return Instruction{Name: "subb", Params: "a, " + param, Size: size}
}

// decodeMovFromDirect decodes the 0xa0 family: orl and mov on the carry
// flag, inc dptr, mul, the reserved opcode 0xa5 and the mov variants that
// read from a direct address.
func decodeMovFromDirect(low byte, buf []byte) Instruction {
	switch low {
	case 0x0:
		return Instruction{
			Name:   "orl",
			Params: "c, /" + BitName(buf[1]),
			Size:   2,
		}

	case 0x2:
		return Instruction{
			Name:   "mov",
			Params: "c, " + BitName(buf[1]),
			Size:   2,
		}

	case 0x3:
		return Instruction{Name: "inc", Params: "dptr", Size: 1}

	case 0x4:
		return Instruction{Name: "mul", Params: "ab", Size: 1}

	case 0x5:
		// 0xa5 has no documented instruction assigned, the size is not
		// defined
		return Instruction{Name: ReservedName, Size: 1}
	}

	return Instruction{
		Name:   "mov",
		Params: fmt.Sprintf("%s, %s", registerNames[low-0x6], SFRName(buf[1])),
		Size:   2,
	}
}

// decodeCjne decodes the 0xb0 family: anl onto the carry flag, cpl and the
// compare and jump if not equal variants.
func decodeCjne(pc uint16, low byte, buf []byte) Instruction {
	switch low {
	case 0x0:
		return Instruction{
			Name:   "anl",
			Params: "c, /" + BitName(buf[1]),
			Size:   2,
		}

	case 0x2:
		return Instruction{
			Name:   "cpl",
			Params: BitName(buf[1]),
			Size:   2,
		}

	case 0x3:
		return Instruction{Name: "cpl", Params: "c", Size: 1}

	case 0x4:
		dest := relativeTarget(pc, 3, buf[2])
		return Instruction{
			Name:      "cjne",
			Params:    fmt.Sprintf("a, #0x%x, 0x%x", buf[1], dest),
			Size:      3,
			Target:    dest,
			HasTarget: true,
		}

	case 0x5:
		dest := relativeTarget(pc, 3, buf[2])
		return Instruction{
			Name:      "cjne",
			Params:    fmt.Sprintf("a, %s, 0x%x", SFRName(buf[1]), dest),
			Size:      3,
			Target:    dest,
			HasTarget: true,
		}
	}

	dest := relativeTarget(pc, 3, buf[2])
	return Instruction{
		Name:      "cjne",
		Params:    fmt.Sprintf("%s, #0x%x, 0x%x", registerNames[low-0x6], buf[1], dest),
		Size:      3,
		Target:    dest,
		HasTarget: true,
	}
}

// decodeXch decodes the 0xc0 family: push, clr and xch.
func decodeXch(low byte, buf []byte) Instruction {
	switch low {
	case 0x0:
		return Instruction{
			Name:   "push",
			Params: SFRName(buf[1]),
			Size:   2,
		}

	case 0x2:
		return Instruction{
			Name:   "clr",
			Params: BitName(buf[1]),
			Size:   2,
		}

	case 0x3:
		return Instruction{Name: "clr", Params: "c", Size: 1}

	case 0x4:
		return Instruction{Name: "swap", Params: "a", Size: 1}
	}

	param, size := resolveOperand(low, buf)
	return Instruction{Name: "xch", Params: "a, " + param, Size: size}
}

// decodeDjnz decodes the 0xd0 family: pop, setb, da, xchd and the decrement
// and jump if not zero variants.
func decodeDjnz(pc uint16, low byte, buf []byte) Instruction {
	switch low {
	case 0x0:
		return Instruction{
			Name:   "pop",
			Params: SFRName(buf[1]),
			Size:   2,
		}

	case 0x2:
		return Instruction{
			Name:   "setb",
			Params: BitName(buf[1]),
			Size:   2,
		}

	case 0x3:
		return Instruction{Name: "setb", Params: "c", Size: 1}

	case 0x4:
		return Instruction{Name: "da", Params: "a", Size: 1}

	case 0x5:
		dest := relativeTarget(pc, 3, buf[2])
		return Instruction{
			Name:      "djnz",
			Params:    fmt.Sprintf("%s, 0x%x", SFRName(buf[1]), dest),
			Size:      3,
			Target:    dest,
			HasTarget: true,
		}

	case 0x6, 0x7:
		return Instruction{
			Name:   "xchd",
			Params: "a, " + registerNames[low-0x6],
			Size:   1,
		}
	}

	dest := relativeTarget(pc, 2, buf[1])
	return Instruction{
		Name:      "djnz",
		Params:    fmt.Sprintf("%s, 0x%x", registerNames[low-0x6], dest),
		Size:      2,
		Target:    dest,
		HasTarget: true,
	}
}

// decodeMovToAccumulator decodes the 0xe0 family: the external memory moves
// into the accumulator, clr a and the mov variants that read into the
// accumulator.
func decodeMovToAccumulator(low byte, buf []byte) Instruction {
	switch low {
	case 0x0:
		return Instruction{Name: "movx", Params: "a, @dptr", Size: 1}

	case 0x2:
		return Instruction{Name: "movx", Params: "a, @r0", Size: 1}

	case 0x3:
		return Instruction{Name: "movx", Params: "a, @r1", Size: 1}

	case 0x4:
		return Instruction{Name: "clr", Params: "a", Size: 1}
	}

	param, size := resolveOperand(low, buf)
	return Instruction{Name: "mov", Params: "a, " + param, Size: size}
}

// decodeMovFromAccumulator decodes the 0xf0 family: the external memory
// moves from the accumulator, cpl a and the mov variants that write the
// accumulator.
func decodeMovFromAccumulator(low byte, buf []byte) Instruction {
	switch low {
	case 0x0:
		return Instruction{Name: "movx", Params: "@dptr, a", Size: 1}

	case 0x2:
		return Instruction{Name: "movx", Params: "@r0, a", Size: 1}

	case 0x3:
		return Instruction{Name: "movx", Params: "@r1, a", Size: 1}

	case 0x4:
		return Instruction{Name: "cpl", Params: "a", Size: 1}
	}

	param, size := resolveOperand(low, buf)
	return Instruction{Name: "mov", Params: param + ", a", Size: size}
}
