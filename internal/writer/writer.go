// Package writer implements assembly listing file writing functionality.
package writer

import (
	"fmt"
	"io"
	"strings"

	"github.com/retroenv/mcs51godisasm/internal/options"
	"github.com/retroenv/mcs51godisasm/internal/program"
)

const dataBytesPerLine = 16

type lineWriterFunc func(line string, byteCount int) error

// AssemblerWriter defines the interface of the assembly output generation.
// The disassembler only depends on this interface to allow tests to exchange
// the output implementation.
type AssemblerWriter interface {
	Write() error
}

// Writer writes a disassembled program as an assembly listing.
type Writer struct {
	app     *program.Program
	options options.Disassembler
	writer  io.Writer
}

// New creates a new writer.
func New(app *program.Program, opts options.Disassembler, writer io.Writer) *Writer {
	return &Writer{
		app:     app,
		options: opts,
		writer:  writer,
	}
}

// Write writes the assembly listing including the comment header, code and data.
func (w *Writer) Write() error {
	if err := w.writeCommentHeader(); err != nil {
		return err
	}

	endIndex := len(w.app.Offsets)
	if !w.options.ZeroBytes {
		endIndex = w.app.GetLastNonZeroByte()
	}

	return w.processOffsets(endIndex)
}

// writeCommentHeader writes the CRC32 checksum, code base address and the used
// interrupt handlers as comments to the output.
func (w *Writer) writeCommentHeader() error {
	if _, err := fmt.Fprintf(w.writer, "; CRC32 checksum: %08x\n", w.app.Checksum); err != nil {
		return fmt.Errorf("writing checksum: %w", err)
	}
	if _, err := fmt.Fprintf(w.writer, "; Code base address: 0x%04x\n", w.app.CodeBaseAddress); err != nil {
		return fmt.Errorf("writing code base address: %w", err)
	}

	if len(w.app.Handlers.Interrupts) > 0 {
		handlers := strings.Join(w.app.Handlers.Interrupts, ", ")
		if _, err := fmt.Fprintf(w.writer, "; Interrupt handlers: %s\n", handlers); err != nil {
			return fmt.Errorf("writing interrupt handlers: %w", err)
		}
	}

	if _, err := fmt.Fprintln(w.writer); err != nil {
		return fmt.Errorf("writing line: %w", err)
	}
	return nil
}

// processOffsets writes all code offsets, labels and their comments.
func (w *Writer) processOffsets(endIndex int) error {
	var previousLineWasCode bool

	for i := 0; i < endIndex; i++ {
		offset := w.app.Offsets[i]

		if err := w.writeLabel(i, offset); err != nil {
			return err
		}

		// print an empty line in case of data after code and vice versa
		if i > 0 && offset.Label == "" && offset.IsType(program.CodeOffset|program.CodeAsData) != previousLineWasCode {
			if _, err := fmt.Fprintln(w.writer); err != nil {
				return fmt.Errorf("writing line: %w", err)
			}
		}
		previousLineWasCode = offset.IsType(program.CodeOffset | program.CodeAsData)

		adjustment, err := w.writeOffset(i, endIndex, offset)
		if err != nil {
			return err
		}
		i += adjustment
	}
	return nil
}

func (w *Writer) writeOffset(index, endIndex int, offset program.Offset) (int, error) {
	if offset.IsType(program.CodeOffset) && len(offset.Data) == 0 {
		return 0, nil
	}

	if offset.IsType(program.DataOffset) {
		count, err := w.bundleDataWrites(index, endIndex)
		if err != nil {
			return 0, err
		}
		if count > 0 {
			return count - 1, nil
		}
		return 0, nil
	}

	if err := w.writeCodeLine(offset); err != nil {
		return 0, fmt.Errorf("writing code line: %w", err)
	}
	return len(offset.Data) - 1, nil
}

func (w *Writer) writeLabel(index int, offset program.Offset) error {
	if offset.Label == "" {
		return nil
	}

	if index > 0 {
		if _, err := fmt.Fprintln(w.writer); err != nil {
			return fmt.Errorf("writing line: %w", err)
		}
	}

	if offset.LabelComment == "" {
		if _, err := fmt.Fprintf(w.writer, "%s:\n", offset.Label); err != nil {
			return fmt.Errorf("writing label: %w", err)
		}
	} else {
		if _, err := fmt.Fprintf(w.writer, "%-32s ; %s\n", offset.Label+":", offset.LabelComment); err != nil {
			return fmt.Errorf("writing label: %w", err)
		}
	}
	return nil
}

func (w *Writer) writeCodeLine(offset program.Offset) error {
	if offset.Comment == "" {
		if _, err := fmt.Fprintf(w.writer, "  %s\n", offset.Code); err != nil {
			return fmt.Errorf("writing line: %w", err)
		}
	} else {
		if _, err := fmt.Fprintf(w.writer, "  %-30s ; %s\n", offset.Code, offset.Comment); err != nil {
			return fmt.Errorf("writing line: %w", err)
		}
	}
	return nil
}

// bundleDataWrites creates bundled writes of data bytes, one line of output per
// dataBytesPerLine bytes. Returns the number of data bytes written.
func (w *Writer) bundleDataWrites(startIndex, endIndex int) (int, error) {
	data := w.getData(startIndex, endIndex)
	if len(data) == 0 {
		return 0, nil
	}

	currentIndex := startIndex
	lineWriter := func(line string, byteCount int) error {
		var err error

		offset := w.app.Offsets[currentIndex]
		if w.options.OffsetComments && !offset.HasAddressComment {
			comment := fmt.Sprintf("0x%04x", w.app.CodeBaseAddress+uint16(currentIndex))
			if offset.Comment == "" {
				offset.Comment = comment
			} else {
				offset.Comment = comment + "  " + offset.Comment
			}
		}

		if offset.Comment == "" {
			_, err = fmt.Fprintf(w.writer, "%s\n", line)
		} else {
			_, err = fmt.Fprintf(w.writer, "%-32s ; %s\n", line, offset.Comment)
		}
		if err != nil {
			return fmt.Errorf("writing data line: %w", err)
		}

		currentIndex += byteCount
		return nil
	}

	if err := w.writeDataLines(data, lineWriter); err != nil {
		return 0, fmt.Errorf("writing data: %w", err)
	}

	return len(data), nil
}

// writeDataLines bundles writes of data bytes to print dataBytesPerLine bytes per line.
func (w *Writer) writeDataLines(data []byte, lineWriter lineWriterFunc) error {
	remaining := len(data)
	for i := 0; remaining > 0; {
		toWrite := min(remaining, dataBytesPerLine)

		buf := &strings.Builder{}
		if _, err := buf.WriteString(".db "); err != nil {
			return fmt.Errorf("writing data prefix: %w", err)
		}

		for j := range toWrite {
			if _, err := fmt.Fprintf(buf, "0x%02x, ", data[i+j]); err != nil {
				return fmt.Errorf("writing data byte: %w", err)
			}
		}

		line := strings.TrimRight(buf.String(), ", ")

		if err := lineWriter(line, toWrite); err != nil {
			return fmt.Errorf("writing data line using custom writer: %w", err)
		}

		i += toWrite
		remaining -= toWrite
	}

	return nil
}

// getData returns the data bytes of the contiguous data offsets starting at the
// given index. It stops at the first code offset or label after the start index.
func (w *Writer) getData(startIndex, endIndex int) []byte {
	var data []byte

	for i := startIndex; i < endIndex; i++ {
		offset := w.app.Offsets[i]

		// data bytes can be nil if they have been combined into an earlier offset
		if !offset.IsType(program.DataOffset) || len(offset.Data) == 0 {
			break
		}
		// stop at first label or code after the start index
		if i > startIndex && (offset.IsType(program.CodeOffset|program.CodeAsData) || offset.Label != "") {
			break
		}

		data = append(data, offset.Data...)
	}

	return data
}
