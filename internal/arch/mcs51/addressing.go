package mcs51

import "fmt"

// registerNames contains the register operand names for the regular low
// nibble encodings 0x6-0xf, indexed by nibble-0x6.
var registerNames = [10]string{
	"@r0", "@r1", "r0", "r1", "r2", "r3", "r4", "r5", "r6", "r7",
}

// resolveOperand decodes the addressing mode that the low nibble of an
// opcode selects for the regular instruction families inc, dec, add, addc,
// orl, anl, xrl, subb, xch and mov. It returns the formatted operand and the
// total instruction size. A size of 0 indicates that the low nibble does not
// select an addressing mode and belongs to an irregular instruction.
func resolveOperand(low byte, buf []byte) (string, int) {
	switch low {
	case 0x4: // immediate
		return fmt.Sprintf("#0x%x", buf[1]), 2

	case 0x5: // memory direct
		return SFRName(buf[1]), 2

	case 0x6, 0x7: // register indirect
		return registerNames[low-0x6], 1

	case 0x8, 0x9, 0xa, 0xb, 0xc, 0xd, 0xe, 0xf: // register direct
		return registerNames[low-0x6], 1
	}

	return "", 0
}
