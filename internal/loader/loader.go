// Package loader handles program image loading operations.
package loader

import (
	"bufio"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/retroenv/mcs51godisasm/internal/arch/mcs51"
	"github.com/retroenv/mcs51godisasm/internal/detector"
	"github.com/retroenv/mcs51godisasm/internal/options"
)

// Intel HEX record types.
const (
	recordTypeData = 0x00
	recordTypeEOF  = 0x01
)

// ErrInvalidRecord is returned when an Intel HEX record can not be parsed.
var ErrInvalidRecord = errors.New("invalid record")

// Loader handles loading program images from disk.
type Loader struct{}

// New creates a new image loader.
func New() *Loader {
	return &Loader{}
}

// Load loads a program image file based on the detected file format.
// The returned image starts at address 0 and covers the program memory up to
// the highest byte of the file.
func (l *Loader) Load(opts options.Program, format detector.FileFormat) ([]byte, error) {
	file, err := os.Open(opts.Input)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", opts.Input, err)
	}
	defer func() { _ = file.Close() }()

	var code []byte
	if format == detector.IntelHex {
		code, err = loadIntelHex(file)
	} else {
		code, err = loadBinary(file)
	}
	if err != nil {
		return nil, fmt.Errorf("loading image: %w", err)
	}

	return code, nil
}

// LoadFromBytes loads a program image from a byte buffer.
func (l *Loader) LoadFromBytes(data []byte, format detector.FileFormat) ([]byte, error) {
	reader := strings.NewReader(string(data))
	if format == detector.IntelHex {
		return loadIntelHex(reader)
	}
	return loadBinary(reader)
}

// loadBinary reads a raw binary image that maps to program memory
// starting at address 0.
func loadBinary(reader io.Reader) ([]byte, error) {
	code, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("reading image: %w", err)
	}

	if len(code) == 0 {
		return nil, errors.New("image is empty")
	}
	if len(code) > mcs51.MaxProgramSize {
		return nil, fmt.Errorf("image size %d exceeds the %d bytes of program memory",
			len(code), mcs51.MaxProgramSize)
	}

	return code, nil
}

// loadIntelHex reads an Intel HEX file and maps its data records to program
// memory. Gaps between records are filled with zero bytes, the image is cut
// after the highest written byte. Only data and end of file records are
// supported, extended addressing records are rejected.
func loadIntelHex(reader io.Reader) ([]byte, error) {
	image := make([]byte, mcs51.MaxProgramSize)
	end := 0
	line := 0

	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		record, err := parseRecord(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		if record.typ == recordTypeEOF {
			break
		}

		offset := int(record.address)
		if offset+len(record.data) > mcs51.MaxProgramSize {
			return nil, fmt.Errorf("line %d: %w: record exceeds the program memory address space",
				line, ErrInvalidRecord)
		}

		copy(image[offset:], record.data)
		if offset+len(record.data) > end {
			end = offset + len(record.data)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading image: %w", err)
	}

	if end == 0 {
		return nil, errors.New("image contains no data records")
	}
	return image[:end], nil
}

type record struct {
	address uint16
	typ     byte
	data    []byte
}

// parseRecord parses a single Intel HEX record of the form
// :llaaaattdd...cc with length, address, type, data and checksum fields.
func parseRecord(text string) (record, error) {
	if text[0] != ':' {
		return record{}, fmt.Errorf("%w: missing start code", ErrInvalidRecord)
	}

	raw, err := hex.DecodeString(text[1:])
	if err != nil {
		return record{}, fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}
	if len(raw) < 5 {
		return record{}, fmt.Errorf("%w: record too short", ErrInvalidRecord)
	}

	length := int(raw[0])
	if len(raw) != 5+length {
		return record{}, fmt.Errorf("%w: expected %d data bytes, record has %d",
			ErrInvalidRecord, length, len(raw)-5)
	}

	// the sum of all record bytes including the checksum byte must be zero
	var sum byte
	for _, b := range raw {
		sum += b
	}
	if sum != 0 {
		return record{}, fmt.Errorf("%w: checksum mismatch", ErrInvalidRecord)
	}

	rec := record{
		address: uint16(raw[1])<<8 | uint16(raw[2]),
		typ:     raw[3],
		data:    raw[4 : 4+length],
	}

	switch rec.typ {
	case recordTypeData, recordTypeEOF:
		return rec, nil
	default:
		return record{}, fmt.Errorf("%w: unsupported record type 0x%02x", ErrInvalidRecord, rec.typ)
	}
}
