// Package options contains the program options.
package options

// Positional contains positional arguments.
type Positional struct {
	File string `arg:"positional" usage:"file to disassemble"`
}

// Parameters contains file path options.
type Parameters struct {
	Input  string `flag:"i" usage:"input file"`
	Output string `flag:"o" usage:"output .asm file (default: stdout)"`
	Batch  string `flag:"batch" usage:"batch process files matching pattern (e.g. *.bin)"`
}

// Flags contains behavior options.
type Flags struct {
	Binary    bool `flag:"binary" usage:"treat input as a raw binary image"`
	IntelHex  bool `flag:"hex" usage:"treat input as an Intel HEX file"`
	NoVectors bool `flag:"novectors" usage:"do not trace interrupt vectors as entry points"`
	Debug     bool `flag:"debug" usage:"enable debug logging"`
	Quiet     bool `flag:"q" usage:"quiet mode"`
}

// OutputFlags contains output formatting options.
type OutputFlags struct {
	NoHexComments  bool `flag:"nohexcomments" usage:"omit hex opcode bytes in comments"`
	NoOffsets      bool `flag:"nooffsets" usage:"omit program addresses in comments"`
	OutputReserved bool `flag:"reserved" usage:"output the reserved opcode 0xa5 as mnemonic instead of .db"`
	ZeroBytes      bool `flag:"z" usage:"include trailing zero bytes in the output"`
}

// Program options of the disassembler.
type Program struct {
	Parameters
	Flags
	OutputFlags
}

// Disassembler defines options to control the disassembler.
type Disassembler struct {
	Binary   bool // read the input as raw binary image
	IntelHex bool // read the input as Intel HEX file

	NoVectors                bool
	HexComments              bool
	OffsetComments           bool
	OutputReservedAsMnemonic bool // output the reserved opcode as mnemonic instead of .db
	ZeroBytes                bool
}

// NewDisassembler returns a new options instance with default options.
func NewDisassembler() Disassembler {
	return Disassembler{
		HexComments:    true,
		OffsetComments: true,
	}
}
