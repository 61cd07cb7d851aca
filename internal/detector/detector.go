// Package detector handles input file format detection.
package detector

import (
	"path/filepath"
	"strings"

	"github.com/retroenv/mcs51godisasm/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// FileFormat defines the format of an input file.
type FileFormat string

// supported input file formats.
const (
	Binary   FileFormat = "binary"
	IntelHex FileFormat = "hex"
)

// Detector handles input file format detection from file extensions and options.
type Detector struct {
	logger *log.Logger
}

// New creates a new file format detector.
func New(logger *log.Logger) *Detector {
	return &Detector{
		logger: logger,
	}
}

// Detect determines the input file format from options or file auto-detection.
// It first checks if a format is explicitly specified in options, otherwise
// detects the format from the input filename extension.
func (d *Detector) Detect(opts options.Program) FileFormat {
	switch {
	case opts.Flags.Binary:
		return Binary
	case opts.Flags.IntelHex:
		return IntelHex
	}

	format := detectFromFile(opts.Input)
	d.logger.Debug("Auto-detected file format",
		log.String("format", string(format)),
		log.String("file", opts.Input))
	return format
}

// detectFromFile determines the file format based on the file extension.
func detectFromFile(filename string) FileFormat {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".hex", ".ihx", ".ihex":
		return IntelHex
	default:
		// raw binary images have no defined extension
		return Binary
	}
}
