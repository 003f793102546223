// cpu_z80_ed.go - ED-prefix opcode table (LDIR, IM 1, OUTI)

/*
 ██▓ ███▄    █ ▄▄▄█████▓ █    ██  ██▓▄▄▄█████▓ ██▓ ▒█████   ███▄    █    ▓█████  ███▄    █   ▄████  ██▓ ███▄    █ ▓█████
▓██▒ ██ ▀█   █ ▓  ██▒ ▓▒ ██  ▓██▒▓██▒▓  ██▒ ▓▒▓██▒▒██▒  ██▒ ██ ▀█   █    ▓█   ▀  ██ ▀█   █  ██▒ ▀█▒▓██▒ ██ ▀█   █ ▓█   ▀
▒██▒▓██  ▀█ ██▒▒ ▓██░ ▒░▓██  ▒██░▒██▒▒ ▓██░ ▒░▒██▒▒██░  ██▒▓██  ▀█ ██▒   ▒███   ▓██  ▀█ ██▒▒██░▄▄▄░▒██▒▓██  ▀█ ██▒▒███
░██░▓██▒  ▐▌██▒░ ▓██▓ ░ ▓▓█  ░██░░██░░ ▓██▓ ░ ░██░▒██   ██░▓██▒  ▐▌██▒   ▒▓█  ▄ ▓██▒  ▐▌██▒░▓█  ██▓░██░▓██▒  ▐▌██▒▒▓█  ▄
░██░▒██░   ▓██░  ▒██▒ ░ ▒▒█████▓ ░██░  ▒██▒ ░ ░██░░ ████▓▒░▒██░   ▓██░   ░▒████▒▒██░   ▓██░░▒▓███▀▒░██░▒██░   ▓██░░▒████▒
░▓  ░ ▒░   ▒ ▒   ▒ ░░   ░▒▓▒ ▒ ▒ ░▓    ▒ ░░   ░▓  ░ ▒░▒░▒░ ░ ▒░   ▒ ▒    ░░ ▒░ ░░ ▒░   ▒ ▒  ░▒   ▒ ░▓  ░ ▒░   ▒ ▒ ░░ ▒░ ░
 ▒ ░░ ░░   ░ ▒░    ░    ░░▒░ ░ ░  ▒ ░    ░     ▒ ░  ░ ▒ ▒░ ░ ░░   ░ ▒░    ░ ░  ░░ ░░   ░ ▒░  ░   ░  ▒ ░░ ░░   ░ ▒░ ░ ░  ░
 ▒ ░   ░   ░ ░   ░       ░░░ ░ ░  ▒ ░  ░       ▒ ░░ ░ ░ ▒     ░   ░ ░       ░      ░   ░ ░ ░ ░   ░  ▒ ░   ░   ░ ░    ░
 ░           ░             ░      ░            ░      ░ ░           ░       ░  ░         ░       ░  ░           ░    ░  ░

(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine
License: GPLv3 or later
*/

package main

// initEDOps builds the ED-prefix table for the three opcodes this core
// supports: LDIR (block move), IM 1 (fix the interrupt mode), and OUTI
// (block output, single iteration per invocation since this core has no
// hardware repeat-prefix semantics).
func (c *CPU_Z80) initEDOps() {
	c.edOps[0xB0] = (*CPU_Z80).opLDIR
	c.edOps[0x56] = func(cpu *CPU_Z80) { cpu.IM = 1 }
	c.edOps[0xA3] = (*CPU_Z80).opOUTI
}

// opLDIR copies (HL)->(DE), advances HL/DE, decrements BC, and repeats the
// instruction (by not advancing PC past it) until BC reaches zero.
func (c *CPU_Z80) opLDIR() {
	v := c.bus.ReadByte(c.HL())
	c.bus.WriteByte(c.DE(), v)
	c.SetHL(c.HL() + 1)
	c.SetDE(c.DE() + 1)
	bc := c.BC() - 1
	c.SetBC(bc)
	c.SetFlag(z80FlagH, false)
	c.SetFlag(z80FlagN, false)
	c.SetFlag(z80FlagPV, bc != 0)
	if bc != 0 {
		c.PC -= 2
	}
}

// opOUTI implements faithful Z80 OUTI semantics by default: output (HL) to
// port C, advance HL, decrement B, and set N/Z/S from the result, H/C from
// whether B underflowed past 0, and P/V from parity(B). When OutiQuirk is
// set, it instead reproduces the historical trace behaviour of merely
// clearing bit 4 of E and leaving B/HL/the output port untouched.
func (c *CPU_Z80) opOUTI() {
	if c.OutiQuirk {
		c.E &^= 0x10
		return
	}
	value := c.bus.ReadByte(c.HL())
	c.bus.OutPort(c.C, value)
	c.SetHL(c.HL() + 1)
	underflow := c.B == 0
	c.B--
	c.SetFlag(z80FlagN, true)
	c.SetFlag(z80FlagZ, c.B == 0)
	c.SetFlag(z80FlagS, c.B&0x80 != 0)
	c.SetFlag(z80FlagH, underflow)
	c.SetFlag(z80FlagC, underflow)
	c.SetFlag(z80FlagPV, parity8(c.B))
}
