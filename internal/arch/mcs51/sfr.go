package mcs51

import "fmt"

// sfrNames maps special function register addresses 0x80-0xff to their 8052
// names, indexed by address-0x80. Unnamed slots are left empty and fall back
// to a hex address.
var sfrNames = [128]string{
	// 0x80 - 0x87
	"P0", "SP", "DPL", "DPH", "", "", "", "PCON",
	// 0x88 - 0x8f
	"TCON", "TMOD", "TL0", "TL1", "TH0", "TH1", "", "",
	// 0x90 - 0x97
	"P1", "", "", "", "", "", "", "",
	// 0x98 - 0x9f
	"SCON", "SBUF", "", "", "", "", "", "",
	// 0xa0 - 0xa7
	"P2", "", "", "", "", "", "", "",
	// 0xa8 - 0xaf
	"IE", "", "", "", "", "", "", "",
	// 0xb0 - 0xb7
	"P3", "", "", "", "", "", "", "",
	// 0xb8 - 0xbf
	"IP", "", "", "", "", "", "", "",
	// 0xc0 - 0xc7
	"", "", "", "", "", "", "", "",
	// 0xc8 - 0xcf
	"T2CON", "", "RCAP2L", "RCAP2H", "TL2", "TH2", "", "",
	// 0xd0 - 0xd7
	"PSW", "", "", "", "", "", "", "",
	// 0xd8 - 0xdf
	"", "", "", "", "", "", "", "",
	// 0xe0 - 0xe7
	"ACC", "", "", "", "", "", "", "",
	// 0xe8 - 0xef
	"", "", "", "", "", "", "", "",
	// 0xf0 - 0xf7
	"B", "", "", "", "", "", "", "",
	// 0xf8 - 0xff
	"", "", "", "", "", "", "", "",
}

// sfrBitNames maps bit addresses 0x80-0xff to the named bits of the bit
// addressable SFRs, indexed by address-0x80.
var sfrBitNames = [128]string{
	// P0: 0x80 - 0x87
	"P0.0", "P0.1", "P0.2", "P0.3", "P0.4", "P0.5", "P0.6", "P0.7",
	// TCON: 0x88 - 0x8f
	"IT0", "IE0", "IT1", "IE1", "TR0", "TF0", "TR1", "TF1",
	// P1: 0x90 - 0x97
	"P1.0", "P1.1", "P1.2", "P1.3", "P1.4", "P1.5", "P1.6", "P1.7",
	// SCON: 0x98 - 0x9f
	"RI", "TI", "RB8", "TB8", "REN", "SM2", "SM1", "SM0",
	// P2: 0xa0 - 0xa7
	"P2.0", "P2.1", "P2.2", "P2.3", "P2.4", "P2.5", "P2.6", "P2.7",
	// IE: 0xa8 - 0xaf
	"EX0", "ET0", "EX1", "ET1", "ES", "ET2", "IE.6", "EA",
	// P3: 0xb0 - 0xb7
	"P3.0", "P3.1", "P3.2", "P3.3", "P3.4", "P3.5", "P3.6", "P3.7",
	// IP: 0xb8 - 0xbf
	"PX0", "PT0", "PX1", "PT1", "PS", "PT2", "IP.6", "IP.7",
	// 0xc0 - 0xc7
	"", "", "", "", "", "", "", "",
	// T2CON: 0xc8 - 0xcf
	"CP/RL2", "C/T2", "TR2", "EXEN2", "TCLK", "RCLK", "EXF2", "TF2",
	// PSW: 0xd0 - 0xd7
	"P", "PSW.1", "OV", "RS0", "RS1", "F0", "AC", "CY",
	// 0xd8 - 0xdf
	"", "", "", "", "", "", "", "",
	// ACC: 0xe0 - 0xe7
	"ACC.0", "ACC.1", "ACC.2", "ACC.3", "ACC.4", "ACC.5", "ACC.6", "ACC.7",
	// 0xe8 - 0xef
	"", "", "", "", "", "", "", "",
	// B: 0xf0 - 0xf7
	"B.0", "B.1", "B.2", "B.3", "B.4", "B.5", "B.6", "B.7",
	// 0xf8 - 0xff
	"", "", "", "", "", "", "", "",
}

// SFRName returns the name of a direct address operand. Addresses 0x80-0xff
// map to the special function register area and return the register name if
// one is defined. All other addresses return the address in hex notation.
func SFRName(address byte) string {
	if address >= 0x80 {
		if name := sfrNames[address-0x80]; name != "" {
			return name
		}
	}
	return fmt.Sprintf("0x%x", address)
}

// BitName returns the name of a bit address operand. Addresses 0x80-0xff map
// to bits of the bit addressable SFRs and return the bit name if one is
// defined. Addresses 0x00-0x7f map to the bit addressable RAM bytes
// 0x20-0x2f and are returned in byte.bit notation.
func BitName(address byte) string {
	if address >= 0x80 {
		if name := sfrBitNames[address-0x80]; name != "" {
			return name
		}
		return fmt.Sprintf("0x%x", address)
	}
	return fmt.Sprintf("0x%x.%d", address/8+0x20, address%8)
}
