package mcs51

import (
	"fmt"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestResolveOperand(t *testing.T) {
	tests := []struct {
		name     string
		low      byte
		buf      []byte
		expected string
		size     int
	}{
		{"immediate", 0x4, []byte{0x24, 0x42}, "#0x42", 2},
		{"memory direct ram", 0x5, []byte{0x25, 0x42}, "0x42", 2},
		{"memory direct sfr", 0x5, []byte{0x25, 0x81}, "SP", 2},
		{"register indirect r0", 0x6, []byte{0x26}, "@r0", 1},
		{"register indirect r1", 0x7, []byte{0x27}, "@r1", 1},
		{"register direct r0", 0x8, []byte{0x28}, "r0", 1},
		{"register direct r7", 0xf, []byte{0x2f}, "r7", 1},
		{"no addressing mode", 0x0, []byte{0x20}, "", 0},
		{"no addressing mode irregular", 0x3, []byte{0x23}, "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			param, size := resolveOperand(tt.low, tt.buf)
			assert.Equal(t, tt.expected, param)
			assert.Equal(t, tt.size, size)
		})
	}
}

func TestResolveOperandRegisters(t *testing.T) {
	for low := byte(0x8); low <= 0xf; low++ {
		param, size := resolveOperand(low, []byte{low})
		assert.Equal(t, fmt.Sprintf("r%d", low-0x8), param)
		assert.Equal(t, 1, size)
	}
}
