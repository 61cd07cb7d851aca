package writer

import (
	"bytes"
	"testing"

	"github.com/retroenv/mcs51godisasm/internal/options"
	"github.com/retroenv/mcs51godisasm/internal/program"
	"github.com/retroenv/retrogolib/assert"
)

func sequentialBytes(length int) []byte {
	data := make([]byte, length)
	for i := range data {
		data[i] = byte(i + 1)
	}
	return data
}

func TestWriter(t *testing.T) {
	tests := []struct {
		Name     string
		Setup    func(app *program.Program)
		Input    []byte
		Expected string
	}{
		{
			Name: "code line with label",
			Setup: func(app *program.Program) {
				app.Checksum = 0x12345678
				offsetInfo := &app.Offsets[0]
				offsetInfo.SetType(program.CodeOffset)
				offsetInfo.Data = []byte{0x22}
				offsetInfo.Label = "Reset"
				offsetInfo.Code = "ret"
				offsetInfo.Comment = "0x0000  22"
			},
			Input: []byte{0x22},
			Expected: `; CRC32 checksum: 12345678
; Code base address: 0x0000

Reset:
  ret                            ; 0x0000  22
`,
		},
		{
			Name: "label with comment and handlers",
			Setup: func(app *program.Program) {
				app.Checksum = 0xcafe
				app.Handlers = program.Handlers{
					Reset:      "Reset",
					Interrupts: []string{"IntExt0", "IntSerial"},
				}
				offsetInfo := &app.Offsets[0]
				offsetInfo.SetType(program.CodeOffset)
				offsetInfo.Data = []byte{0x32}
				offsetInfo.Label = "IntExt0"
				offsetInfo.LabelComment = "external interrupt 0"
				offsetInfo.Code = "reti"
				offsetInfo.Comment = "0x0000  32"
			},
			Input: []byte{0x32},
			Expected: `; CRC32 checksum: 0000cafe
; Code base address: 0x0000
; Interrupt handlers: IntExt0, IntSerial

IntExt0:                         ; external interrupt 0
  reti                           ; 0x0000  32
`,
		},
		{
			Name: "data bundling",
			Setup: func(app *program.Program) {
				app.Checksum = 1
				for i := range app.Offsets {
					offsetInfo := &app.Offsets[i]
					offsetInfo.SetType(program.DataOffset)
					offsetInfo.Data = []byte{byte(i + 1)}
				}
			},
			Input: sequentialBytes(20),
			Expected: `; CRC32 checksum: 00000001
; Code base address: 0x0000

.db 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f, 0x10 ; 0x0000
.db 0x11, 0x12, 0x13, 0x14       ; 0x0010
`,
		},
		{
			Name: "blank line between code and data",
			Setup: func(app *program.Program) {
				app.Checksum = 0xff
				offsetInfo := &app.Offsets[0]
				offsetInfo.SetType(program.CodeOffset)
				offsetInfo.Data = []byte{0x22}
				offsetInfo.Label = "Reset"
				offsetInfo.Code = "ret"
				offsetInfo.Comment = "0x0000  22"

				for i := 1; i < len(app.Offsets); i++ {
					offsetInfo := &app.Offsets[i]
					offsetInfo.SetType(program.DataOffset)
					offsetInfo.Data = []byte{app.Code[i]}
				}
			},
			Input: []byte{0x22, 0xaa, 0xbb},
			Expected: `; CRC32 checksum: 000000ff
; Code base address: 0x0000

Reset:
  ret                            ; 0x0000  22

.db 0xaa, 0xbb                   ; 0x0001
`,
		},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			app := program.New(test.Input)
			test.Setup(app)

			opts := options.NewDisassembler()
			var buffer bytes.Buffer

			w := New(app, opts, &buffer)
			assert.NoError(t, w.Write())

			assert.Equal(t, test.Expected, buffer.String())
		})
	}
}

func TestWriterZeroBytes(t *testing.T) {
	app := program.New([]byte{0x22, 0x00, 0x00})
	offsetInfo := &app.Offsets[0]
	offsetInfo.SetType(program.CodeOffset)
	offsetInfo.Data = []byte{0x22}
	offsetInfo.Code = "ret"

	for i := 1; i < len(app.Offsets); i++ {
		offsetInfo := &app.Offsets[i]
		offsetInfo.SetType(program.DataOffset)
		offsetInfo.Data = []byte{0x00}
	}

	opts := options.NewDisassembler()
	opts.OffsetComments = false

	var buffer bytes.Buffer
	w := New(app, opts, &buffer)
	assert.NoError(t, w.Write())

	expected := `; CRC32 checksum: 00000000
; Code base address: 0x0000

  ret
`
	assert.Equal(t, expected, buffer.String())

	opts.ZeroBytes = true
	buffer.Reset()
	w = New(app, opts, &buffer)
	assert.NoError(t, w.Write())

	expected = `; CRC32 checksum: 00000000
; Code base address: 0x0000

  ret

.db 0x00, 0x00
`
	assert.Equal(t, expected, buffer.String())
}
