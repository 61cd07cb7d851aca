package program

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestOffset_IsType(t *testing.T) {
	offset := &Offset{}

	offset.SetType(CodeOffset)
	assert.True(t, offset.IsType(CodeOffset))
	assert.False(t, offset.IsType(DataOffset))

	offset.SetType(DataOffset)
	assert.True(t, offset.IsType(CodeOffset))
	assert.True(t, offset.IsType(DataOffset))
}

func TestOffset_SetType(t *testing.T) {
	offset := &Offset{}

	assert.False(t, offset.IsType(CodeOffset))
	offset.SetType(CodeOffset)
	assert.True(t, offset.IsType(CodeOffset))

	offset.SetType(CodeAsData)
	assert.True(t, offset.IsType(CodeOffset))
	assert.True(t, offset.IsType(CodeAsData))
}

func TestOffset_ClearType(t *testing.T) {
	offset := &Offset{}
	offset.SetType(CodeOffset)
	offset.SetType(CallDestination)

	assert.True(t, offset.IsType(CodeOffset))
	assert.True(t, offset.IsType(CallDestination))

	offset.ClearType(CallDestination)
	assert.False(t, offset.IsType(CallDestination))
	assert.True(t, offset.IsType(CodeOffset))
}

func TestOffset_HexCodeComment(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		expected string
	}{
		{
			name:     "single byte",
			data:     []byte{0x22},
			expected: "22",
		},
		{
			name:     "two bytes",
			data:     []byte{0x80, 0xFE},
			expected: "80 FE",
		},
		{
			name:     "three bytes",
			data:     []byte{0x02, 0x01, 0x00},
			expected: "02 01 00",
		},
		{
			name:     "empty data",
			data:     []byte{},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offset := &Offset{
				Data: tt.data,
			}
			comment, err := offset.HexCodeComment()
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, comment)
		})
	}
}
