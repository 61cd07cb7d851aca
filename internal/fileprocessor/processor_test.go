package fileprocessor

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/retroenv/mcs51godisasm/internal/options"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestProcessFile(t *testing.T) {
	testCode := []byte{
		0xe4, // clr a
		0x22, // ret
	}

	tests := []struct {
		Name    string
		File    string
		Content []byte
	}{
		{
			Name:    "binary",
			File:    "test.bin",
			Content: testCode,
		},
		{
			Name:    "intel hex",
			File:    "test.hex",
			Content: []byte(":02000000E422F8\n:00000001FF\n"),
		},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			dir := t.TempDir()
			input := filepath.Join(dir, test.File)
			assert.NoError(t, os.WriteFile(input, test.Content, 0o644))

			var opts options.Program
			opts.Input = input
			opts.Output = filepath.Join(dir, "out.asm")

			logger := log.NewTestLogger(t)
			err := ProcessFile(context.Background(), logger, opts, options.NewDisassembler())
			assert.NoError(t, err)

			data, err := os.ReadFile(opts.Output)
			assert.NoError(t, err)

			output := string(data)
			assert.True(t, strings.Contains(output, "; CRC32 checksum:"))
			assert.True(t, strings.Contains(output, "Reset:"))
			assert.True(t, strings.Contains(output, "clr a"))
			assert.True(t, strings.Contains(output, "ret"))
		})
	}
}

func TestGetFilesToProcess(t *testing.T) {
	var opts options.Program
	opts.Input = "test.bin"

	files, err := GetFilesToProcess(&opts)
	assert.NoError(t, err)
	assert.Equal(t, 1, len(files))
	assert.Equal(t, "test.bin", files[0])

	dir := t.TempDir()
	for _, name := range []string{"a.bin", "b.bin", "c.hex"} {
		assert.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte{0x22}, 0o644))
	}

	opts.Batch = filepath.Join(dir, "*.bin")
	files, err = GetFilesToProcess(&opts)
	assert.NoError(t, err)
	assert.Equal(t, 2, len(files))

	opts.Batch = filepath.Join(dir, "*.rom")
	_, err = GetFilesToProcess(&opts)
	assert.Error(t, err)
}

func TestGenerateOutputFilename(t *testing.T) {
	tests := []struct {
		Input    string
		Expected string
	}{
		{Input: "test.bin", Expected: "test.asm"},
		{Input: "firmware.hex", Expected: "firmware.asm"},
		{Input: "image", Expected: "image.asm"},
		{Input: "test.v2.ihx", Expected: "test.v2.asm"},
	}

	for _, test := range tests {
		assert.Equal(t, test.Expected, GenerateOutputFilename(test.Input))
	}
}
