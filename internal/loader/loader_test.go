package loader

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/mcs51godisasm/internal/detector"
	"github.com/retroenv/mcs51godisasm/internal/options"
	"github.com/retroenv/retrogolib/assert"
)

func TestLoad(t *testing.T) {
	t.Run("load binary file", func(t *testing.T) {
		tmpFile := createTempFile(t, []byte{0x02, 0x01, 0x00, 0x22})

		loader := New()
		opts := options.Program{
			Parameters: options.Parameters{Input: tmpFile},
		}

		code, err := loader.Load(opts, detector.Binary)
		assert.NoError(t, err)
		assert.Equal(t, []byte{0x02, 0x01, 0x00, 0x22}, code)
	})

	t.Run("load hex file", func(t *testing.T) {
		data := ":03000000020100FA\n:00000001FF\n"
		tmpFile := createTempFile(t, []byte(data))

		loader := New()
		opts := options.Program{
			Parameters: options.Parameters{Input: tmpFile},
		}

		code, err := loader.Load(opts, detector.IntelHex)
		assert.NoError(t, err)
		assert.Equal(t, []byte{0x02, 0x01, 0x00}, code)
	})

	t.Run("missing file", func(t *testing.T) {
		loader := New()
		opts := options.Program{
			Parameters: options.Parameters{Input: "does-not-exist.bin"},
		}

		_, err := loader.Load(opts, detector.Binary)
		assert.Error(t, err)
	})
}

func TestLoadFromBytesBinary(t *testing.T) {
	loader := New()

	t.Run("valid image", func(t *testing.T) {
		code, err := loader.LoadFromBytes([]byte{0x22}, detector.Binary)
		assert.NoError(t, err)
		assert.Equal(t, []byte{0x22}, code)
	})

	t.Run("empty image", func(t *testing.T) {
		_, err := loader.LoadFromBytes(nil, detector.Binary)
		assert.Error(t, err)
	})

	t.Run("image too large", func(t *testing.T) {
		_, err := loader.LoadFromBytes(make([]byte, 0x10001), detector.Binary)
		assert.Error(t, err)
	})
}

func TestLoadFromBytesIntelHex(t *testing.T) {
	loader := New()

	tests := []struct {
		name     string
		data     string
		expected []byte
		errMsg   string
	}{
		{
			name:     "single data record",
			data:     ":03000000020100FA\n:00000001FF\n",
			expected: []byte{0x02, 0x01, 0x00},
		},
		{
			name:     "gap between records is zero filled",
			data:     ":03000000020100FA\n:0100100022CD\n:00000001FF\n",
			expected: append([]byte{0x02, 0x01, 0x00}, append(make([]byte, 13), 0x22)...),
		},
		{
			name:     "missing end of file record",
			data:     ":03000000020100FA\n",
			expected: []byte{0x02, 0x01, 0x00},
		},
		{
			name:     "records after end of file record are ignored",
			data:     ":03000000020100FA\n:00000001FF\n:0100100022CD\n",
			expected: []byte{0x02, 0x01, 0x00},
		},
		{
			name:   "checksum mismatch",
			data:   ":03000000020100FB\n",
			errMsg: "checksum mismatch",
		},
		{
			name:   "missing start code",
			data:   "03000000020100FA\n",
			errMsg: "missing start code",
		},
		{
			name:   "record length mismatch",
			data:   ":03000000FFFF00\n",
			errMsg: "expected 3 data bytes",
		},
		{
			name:   "record too short",
			data:   ":0000\n",
			errMsg: "record too short",
		},
		{
			name:   "unsupported record type",
			data:   ":020000040000FA\n",
			errMsg: "unsupported record type",
		},
		{
			name:   "no data records",
			data:   ":00000001FF\n",
			errMsg: "no data records",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, err := loader.LoadFromBytes([]byte(tt.data), detector.IntelHex)
			if tt.errMsg != "" {
				assert.ErrorContains(t, err, tt.errMsg)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, code)
		})
	}
}

func TestParseRecordErrorType(t *testing.T) {
	_, err := parseRecord(":03000000020100FB")
	assert.True(t, errors.Is(err, ErrInvalidRecord))
}

func createTempFile(t *testing.T, data []byte) string {
	t.Helper()
	tmpDir := t.TempDir()
	tmpFile := filepath.Join(tmpDir, "test.bin")
	if err := os.WriteFile(tmpFile, data, 0600); err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	return tmpFile
}
