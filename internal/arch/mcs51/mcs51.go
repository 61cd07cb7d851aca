package mcs51

// ResetAddress is the address where execution starts after a reset.
const ResetAddress = 0x0000

// MaxProgramSize is the size of the program memory address space.
const MaxProgramSize = 0x10000

// InterruptVector describes a fixed interrupt entry point.
type InterruptVector struct {
	Address     uint16
	Name        string
	Description string
}

// InterruptVectors lists the interrupt entry points in address order,
// including the timer 2 interrupt that only exists on the 8052.
var InterruptVectors = []InterruptVector{
	{Address: 0x0003, Name: "IntExt0", Description: "external interrupt 0"},
	{Address: 0x000b, Name: "IntTimer0", Description: "timer 0 overflow"},
	{Address: 0x0013, Name: "IntExt1", Description: "external interrupt 1"},
	{Address: 0x001b, Name: "IntTimer1", Description: "timer 1 overflow"},
	{Address: 0x0023, Name: "IntSerial", Description: "serial port"},
	{Address: 0x002b, Name: "IntTimer2", Description: "timer 2 overflow"},
}
