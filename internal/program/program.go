// Package program represents a disassembled 8051 program.
package program

import (
	"fmt"
	"strings"
)

// Offset defines the content of an offset in a program that can represent data or code.
type Offset struct {
	Data []byte // data byte or all opcode bytes that are part of the instruction

	Type OffsetType

	Label        string // name of label or subroutine if identified as a jump destination
	Code         string // asm output of this instruction
	Comment      string
	LabelComment string

	HasAddressComment bool
}

// HexCodeComment returns the opcode bytes of the offset formatted as hex values.
func (o *Offset) HexCodeComment() (string, error) {
	buf := &strings.Builder{}

	for _, b := range o.Data {
		if _, err := fmt.Fprintf(buf, "%02X ", b); err != nil {
			return "", fmt.Errorf("writing hex comment: %w", err)
		}
	}

	return strings.TrimRight(buf.String(), " "), nil
}

// Handlers defines the entry points of the program.
type Handlers struct {
	Reset      string
	Interrupts []string // labels of the used interrupt service addresses
}

// Program defines an 8051 program that contains code or data.
type Program struct {
	Code    []byte   // program memory image
	Offsets []Offset // one offset per image byte

	CodeBaseAddress uint16
	Checksum        uint32 // CRC32 checksum of the image
	Handlers        Handlers
}

// New creates a new program for the given program memory image.
func New(code []byte) *Program {
	return &Program{
		Code:    code,
		Offsets: make([]Offset, len(code)),
	}
}

// GetLastNonZeroByte searches for the last byte of the image that is not
// zero. Offsets that carry a label are kept even when zero to not lose
// branch destinations in trailing data.
func (app *Program) GetLastNonZeroByte() int {
	for i := len(app.Offsets) - 1; i >= 0; i-- {
		offset := app.Offsets[i]
		if (len(offset.Data) == 0 || offset.Data[0] == 0) && offset.Label == "" {
			continue
		}
		return i + 1
	}
	return 0
}
