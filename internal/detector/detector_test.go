package detector

import (
	"testing"

	"github.com/retroenv/mcs51godisasm/internal/options"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestDetect(t *testing.T) {
	logger := log.NewTestLogger(t)
	d := New(logger)

	tests := []struct {
		name       string
		binaryOpt  bool
		hexOpt     bool
		inputFile  string
		wantFormat FileFormat
	}{
		{
			name:       "explicit binary option",
			binaryOpt:  true,
			inputFile:  "firmware.hex",
			wantFormat: Binary,
		},
		{
			name:       "explicit hex option",
			hexOpt:     true,
			inputFile:  "firmware.bin",
			wantFormat: IntelHex,
		},
		{
			name:       "detect from .hex extension",
			inputFile:  "firmware.hex",
			wantFormat: IntelHex,
		},
		{
			name:       "detect from .ihx extension",
			inputFile:  "firmware.ihx",
			wantFormat: IntelHex,
		},
		{
			name:       "unknown extension defaults to binary",
			inputFile:  "firmware.bin",
			wantFormat: Binary,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := options.Program{
				Parameters: options.Parameters{Input: tt.inputFile},
				Flags:      options.Flags{Binary: tt.binaryOpt, IntelHex: tt.hexOpt},
			}

			got := d.Detect(opts)
			assert.Equal(t, tt.wantFormat, got)
		})
	}
}

func TestDetectFromFile(t *testing.T) {
	tests := []struct {
		name       string
		filename   string
		wantFormat FileFormat
	}{
		{
			name:       ".hex extension",
			filename:   "firmware.hex",
			wantFormat: IntelHex,
		},
		{
			name:       ".HEX extension (uppercase)",
			filename:   "FIRMWARE.HEX",
			wantFormat: IntelHex,
		},
		{
			name:       ".ihx extension",
			filename:   "firmware.ihx",
			wantFormat: IntelHex,
		},
		{
			name:       ".ihex extension",
			filename:   "firmware.ihex",
			wantFormat: IntelHex,
		},
		{
			name:       "no extension",
			filename:   "firmware",
			wantFormat: Binary,
		},
		{
			name:       ".bin extension",
			filename:   "firmware.bin",
			wantFormat: Binary,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := detectFromFile(tt.filename)
			assert.Equal(t, tt.wantFormat, got)
		})
	}
}
