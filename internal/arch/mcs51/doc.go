// Package mcs51 provides Intel 8051/8052 architecture support for the disassembler.
//
// # Architecture Overview
//
// The MCS-51 family uses an 8 bit CPU with a 16 bit program counter and a
// maximum of 64KB of program memory. Opcodes are 1 to 3 bytes long, the first
// byte selects the instruction and addressing mode:
//   - the high nibble selects the instruction family
//   - the low nibble selects the addressing mode or an irregular instruction
//   - ajmp and acall are exceptions, they encode 3 bits of the destination
//     address in the opcode byte itself
//
// # Address Spaces
//
// Operand bytes refer to different address spaces depending on the instruction:
//   - direct addresses 0x00-0x7f refer to internal RAM, 0x80-0xff to special
//     function registers (SFRs)
//   - bit addresses 0x00-0x7f refer to the bit addressable RAM area starting
//     at byte 0x20, 0x80-0xff to bits of bit addressable SFRs
//
// The SFR and SFR bit names cover the 8052 superset, registers that only
// exist on the 8052 like T2CON are included.
//
// # Interrupt Vectors
//
// Execution starts at address 0x0000 after reset. Interrupt handlers live at
// fixed addresses spaced 8 bytes apart, starting at 0x0003.
package mcs51
