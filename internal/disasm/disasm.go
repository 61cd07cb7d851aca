// Package disasm implements an execution flow tracing disassembler for MCS-51 programs.
package disasm

import (
	"context"
	"errors"
	"fmt"
	"hash/crc32"
	"io"
	"strings"

	"github.com/retroenv/mcs51godisasm/internal/arch/mcs51"
	"github.com/retroenv/mcs51godisasm/internal/options"
	"github.com/retroenv/mcs51godisasm/internal/program"
	"github.com/retroenv/mcs51godisasm/internal/writer"
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/retrogolib/set"
)

// FileWriterConstructor creates an assembly writer for the converted program.
type FileWriterConstructor func(app *program.Program, options options.Disassembler,
	mainWriter io.Writer) writer.AssemblerWriter

// Disasm implements a disassembler.
type Disasm struct {
	logger  *log.Logger
	options options.Disassembler

	pc uint16 // program counter

	code                  []byte // program memory image
	fileWriterConstructor FileWriterConstructor
	handlers              program.Handlers

	offsets []offset // one offset per image byte

	branchDestinations set.Set[uint16] // set of all addresses that are branched to

	offsetsToParse      []uint16
	offsetsToParseAdded set.Set[uint16]
}

// New creates a new disassembler for the given program memory image.
func New(logger *log.Logger, code []byte, options options.Disassembler,
	fileWriterConstructor FileWriterConstructor) (*Disasm, error) {

	if len(code) == 0 {
		return nil, errors.New("no code to disassemble")
	}
	if len(code) > mcs51.MaxProgramSize {
		return nil, fmt.Errorf("image size %d exceeds program memory address space", len(code))
	}

	dis := &Disasm{
		logger:                logger,
		options:               options,
		code:                  code,
		fileWriterConstructor: fileWriterConstructor,
		offsets:               make([]offset, len(code)),
		branchDestinations:    set.New[uint16](),
		offsetsToParseAdded:   set.New[uint16](),
	}

	dis.initializeEntryPoints()

	return dis, nil
}

// Process disassembles the image and writes the generated assembly to the main writer.
func (dis *Disasm) Process(ctx context.Context, mainWriter io.Writer) (*program.Program, error) {
	if err := dis.followExecutionFlow(ctx); err != nil {
		return nil, err
	}

	dis.processData()
	dis.processJumpDestinations()

	app, err := dis.convertToProgram()
	if err != nil {
		return nil, err
	}
	fileWriter := dis.fileWriterConstructor(app, dis.options, mainWriter)
	if err = fileWriter.Write(); err != nil {
		return nil, fmt.Errorf("writing app to file: %w", err)
	}
	return app, nil
}

// ProgramCounter returns the address of the instruction that is currently processed.
func (dis *Disasm) ProgramCounter() uint16 {
	return dis.pc
}

// Options returns the disassembler options.
func (dis *Disasm) Options() options.Disassembler {
	return dis.options
}

// converts the internal disassembly representation to a program type that will be used
// to generate the asm file.
func (dis *Disasm) convertToProgram() (*program.Program, error) {
	app := program.New(dis.code)
	app.Handlers = dis.handlers

	for i := range len(dis.offsets) {
		offsetInfo := &dis.offsets[i]
		programOffset, err := dis.getProgramOffset(uint16(i), offsetInfo)
		if err != nil {
			return nil, err
		}
		app.Offsets[i] = programOffset
	}

	crc32q := crc32.MakeTable(crc32.IEEE)
	app.Checksum = crc32.Checksum(dis.code, crc32q)

	return app, nil
}

// getProgramOffset converts a disassembly offset to a program offset.
// It handles branch target label references and comment generation.
func (dis *Disasm) getProgramOffset(address uint16, offsetInfo *offset) (program.Offset, error) {
	programOffset := offsetInfo.Offset

	if offsetInfo.branchingTo != "" && offsetInfo.IsType(program.CodeOffset) {
		programOffset.Code = codeWithLabel(offsetInfo.instruction, offsetInfo.branchingTo)
	}

	if offsetInfo.IsType(program.CodeOffset | program.CodeAsData) {
		if len(programOffset.Data) == 0 && programOffset.Label == "" {
			return programOffset, nil
		}

		if err := dis.setComment(address, &programOffset); err != nil {
			return program.Offset{}, err
		}
	} else {
		programOffset.SetType(program.DataOffset)
	}

	return programOffset, nil
}

// setComment generates and sets comments for program offsets based on the disassembler options.
// It can add offset addresses, hex code and preserve existing comments.
func (dis *Disasm) setComment(address uint16, programOffset *program.Offset) error {
	var comments []string

	if dis.options.OffsetComments {
		programOffset.HasAddressComment = true
		comments = []string{fmt.Sprintf("0x%04x", address)}
	}

	if dis.options.HexComments {
		hexComment, err := programOffset.HexCodeComment()
		if err != nil {
			return fmt.Errorf("generating hex comment: %w", err)
		}
		comments = append(comments, hexComment)
	}

	if programOffset.Comment != "" {
		comments = append(comments, programOffset.Comment)
	}
	programOffset.Comment = strings.Join(comments, "  ")
	return nil
}
