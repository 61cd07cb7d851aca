package disasm

import (
	"fmt"

	"github.com/retroenv/mcs51godisasm/internal/arch/mcs51"
	"github.com/retroenv/mcs51godisasm/internal/program"
	"github.com/retroenv/retrogolib/log"
)

// initializeEntryPoints marks the reset address and the interrupt service addresses
// as entry points to follow. MCS-51 interrupts do not use a vector table, execution
// starts directly at the fixed service addresses.
func (dis *Disasm) initializeEntryPoints() {
	handlers := program.Handlers{
		Reset: "Reset",
	}

	offsetInfo := &dis.offsets[mcs51.ResetAddress]
	offsetInfo.Label = "Reset"
	offsetInfo.SetType(program.CallDestination)
	dis.addAddressToParse(mcs51.ResetAddress, 0, "", false)

	if !dis.options.NoVectors {
		handlers.Interrupts = dis.initializeInterruptHandlers()
	}

	dis.handlers = handlers
}

// initializeInterruptHandlers adds the fixed interrupt service addresses to the addresses
// to be followed for execution flow. Service addresses outside of the image are skipped.
func (dis *Disasm) initializeInterruptHandlers() []string {
	var handlers []string

	for _, vector := range mcs51.InterruptVectors {
		if int(vector.Address) >= len(dis.code) {
			continue
		}

		dis.logger.Debug("Interrupt handler",
			log.String("name", vector.Name),
			log.String("address", fmt.Sprintf("0x%04x", vector.Address)))

		offsetInfo := &dis.offsets[vector.Address]
		offsetInfo.Label = vector.Name
		offsetInfo.LabelComment = vector.Description
		offsetInfo.SetType(program.CallDestination)

		handlers = append(handlers, vector.Name)
		dis.addAddressToParse(vector.Address, 0, "", false)
	}

	return handlers
}
