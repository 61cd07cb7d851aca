package disasm

import (
	"github.com/retroenv/mcs51godisasm/internal/program"
)

// changeAddressRangeToData sets a range of code addresses to data types.
// It combines all data bytes that are not split by a label.
func (dis *Disasm) changeAddressRangeToData(address uint16, data []byte) {
	for i := 0; i < len(data); i++ {
		offsetInfo := &dis.offsets[address+uint16(i)]

		noLabelOffsets := 1
		for j := i + 1; j < len(data); j++ {
			offsetInfoNext := &dis.offsets[address+uint16(j)]
			if offsetInfoNext.Label == "" {
				offsetInfoNext.Data = nil
				offsetInfoNext.SetType(program.CodeAsData | program.DataOffset)
				noLabelOffsets++
				continue
			}
			break
		}

		offsetInfo.Data = data[i : i+noLabelOffsets]
		offsetInfo.ClearType(program.CodeOffset)
		offsetInfo.SetType(program.CodeAsData | program.DataOffset)
		i += noLabelOffsets - 1
	}
}

// processData sets all data bytes for offsets that have not been identified as code.
func (dis *Disasm) processData() {
	for i, offsetInfo := range dis.offsets {
		if offsetInfo.IsType(program.CodeOffset) || offsetInfo.IsType(program.DataOffset) {
			continue
		}

		dis.offsets[i].Data = []byte{dis.code[i]}
	}
}
