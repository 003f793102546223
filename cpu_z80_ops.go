// cpu_z80_ops.go - opcode tables and operation bodies for CPU_Z80

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

import "math/bits"

func parity8(v byte) bool { return bits.OnesCount8(v)%2 == 0 }

func (c *CPU_Z80) setSZP(result byte) {
	c.SetFlag(z80FlagS, result&0x80 != 0)
	c.SetFlag(z80FlagZ, result == 0)
	c.SetFlag(z80FlagPV, parity8(result))
}

// ---------------------------------------------------------------------
// Base opcode table construction
// ---------------------------------------------------------------------

func (c *CPU_Z80) initBaseOps() {
	c.baseOps[0x00] = (*CPU_Z80).opNOP
	c.baseOps[0x76] = (*CPU_Z80).opHALT

	// LD r,r' (0x40-0x7F, excluding HALT at 0x76)
	for op := 0x40; op <= 0x7F; op++ {
		if op == 0x76 {
			continue
		}
		dest := byte((op >> 3) & 0x07)
		src := byte(op & 0x07)
		c.baseOps[op] = func(cpu *CPU_Z80) { cpu.opLDRegReg(dest, src) }
	}

	// LD r,n
	ldImm := map[byte]byte{0x06: 0, 0x0E: 1, 0x16: 2, 0x1E: 3, 0x26: 4, 0x2E: 5, 0x36: 6, 0x3E: 7}
	for op, reg := range ldImm {
		r := reg
		c.baseOps[op] = func(cpu *CPU_Z80) { cpu.opLDRegImm(r) }
	}

	// 8-bit INC/DEC r and (HL)
	incRegs := map[byte]byte{0x04: 0, 0x0C: 1, 0x14: 2, 0x1C: 3, 0x24: 4, 0x2C: 5, 0x34: 6, 0x3C: 7}
	for op, reg := range incRegs {
		r := reg
		c.baseOps[op] = func(cpu *CPU_Z80) { cpu.opINCReg(r) }
	}
	decRegs := map[byte]byte{0x05: 0, 0x0D: 1, 0x15: 2, 0x1D: 3, 0x25: 4, 0x2D: 5, 0x35: 6, 0x3D: 7}
	for op, reg := range decRegs {
		r := reg
		c.baseOps[op] = func(cpu *CPU_Z80) { cpu.opDECReg(r) }
	}

	// ALU A,r (0x80-0xBF)
	for op := 0x80; op <= 0xBF; op++ {
		group := byte((op >> 3) & 0x07)
		reg := byte(op & 0x07)
		c.baseOps[op] = func(cpu *CPU_Z80) { cpu.opALUReg(group, reg) }
	}

	// ALU A,n immediate
	aluImm := map[byte]byte{0xC6: 0, 0xCE: 1, 0xD6: 2, 0xDE: 3, 0xE6: 4, 0xEE: 5, 0xF6: 6, 0xFE: 7}
	for op, grp := range aluImm {
		g := grp
		c.baseOps[op] = func(cpu *CPU_Z80) { cpu.opALUImm(g) }
	}

	c.baseOps[0x0A] = (*CPU_Z80).opLDABC
	c.baseOps[0x1A] = (*CPU_Z80).opLDADE
	c.baseOps[0x02] = (*CPU_Z80).opLDBCA
	c.baseOps[0x12] = (*CPU_Z80).opLDDEA
	c.baseOps[0x3A] = (*CPU_Z80).opLDANN
	c.baseOps[0x32] = (*CPU_Z80).opLDNNA
	c.baseOps[0x22] = (*CPU_Z80).opLDNNHL
	c.baseOps[0x2A] = (*CPU_Z80).opLDHLNN

	c.baseOps[0x01] = func(cpu *CPU_Z80) { cpu.SetBC(cpu.fetchWord()) }
	c.baseOps[0x11] = func(cpu *CPU_Z80) { cpu.SetDE(cpu.fetchWord()) }
	c.baseOps[0x21] = func(cpu *CPU_Z80) { cpu.setHLOrIndex(cpu.fetchWord()) }
	c.baseOps[0x31] = func(cpu *CPU_Z80) { cpu.SP = cpu.fetchWord() }
	c.baseOps[0xF9] = func(cpu *CPU_Z80) { cpu.SP = cpu.hlOrIndex() }

	c.baseOps[0x03] = func(cpu *CPU_Z80) { cpu.SetBC(cpu.BC() + 1) }
	c.baseOps[0x13] = func(cpu *CPU_Z80) { cpu.SetDE(cpu.DE() + 1) }
	c.baseOps[0x23] = func(cpu *CPU_Z80) { cpu.setHLOrIndex(cpu.hlOrIndex() + 1) }
	c.baseOps[0x0B] = func(cpu *CPU_Z80) { cpu.SetBC(cpu.BC() - 1) }
	c.baseOps[0x1B] = func(cpu *CPU_Z80) { cpu.SetDE(cpu.DE() - 1) }
	c.baseOps[0x2B] = func(cpu *CPU_Z80) { cpu.setHLOrIndex(cpu.hlOrIndex() - 1) }

	c.baseOps[0x09] = func(cpu *CPU_Z80) { cpu.addHL(cpu.BC()) }
	c.baseOps[0x19] = func(cpu *CPU_Z80) { cpu.addHL(cpu.DE()) }
	c.baseOps[0x29] = func(cpu *CPU_Z80) { cpu.addHL(cpu.hlOrIndex()) }
	c.baseOps[0x39] = func(cpu *CPU_Z80) { cpu.addHL(cpu.SP) }

	c.baseOps[0x2F] = (*CPU_Z80).opCPL
	c.baseOps[0x37] = (*CPU_Z80).opSCF
	c.baseOps[0x3F] = (*CPU_Z80).opCCF
	c.baseOps[0x07] = (*CPU_Z80).opRLCA
	c.baseOps[0x0F] = (*CPU_Z80).opRRCA

	c.baseOps[0xC3] = func(cpu *CPU_Z80) { cpu.PC = cpu.fetchWord() }
	condJP := map[byte]func(*CPU_Z80) bool{
		0xC2: func(cpu *CPU_Z80) bool { return !cpu.Flag(z80FlagZ) },
		0xCA: func(cpu *CPU_Z80) bool { return cpu.Flag(z80FlagZ) },
		0xD2: func(cpu *CPU_Z80) bool { return !cpu.Flag(z80FlagC) },
		0xDA: func(cpu *CPU_Z80) bool { return cpu.Flag(z80FlagC) },
		0xF2: func(cpu *CPU_Z80) bool { return !cpu.Flag(z80FlagS) },
		0xFA: func(cpu *CPU_Z80) bool { return cpu.Flag(z80FlagS) },
	}
	for op, cond := range condJP {
		test := cond
		c.baseOps[op] = func(cpu *CPU_Z80) {
			target := cpu.fetchWord()
			if test(cpu) {
				cpu.PC = target
			}
		}
	}

	c.baseOps[0x18] = func(cpu *CPU_Z80) { cpu.opJR(true) }
	condJR := map[byte]func(*CPU_Z80) bool{
		0x20: func(cpu *CPU_Z80) bool { return !cpu.Flag(z80FlagZ) },
		0x28: func(cpu *CPU_Z80) bool { return cpu.Flag(z80FlagZ) },
		0x30: func(cpu *CPU_Z80) bool { return !cpu.Flag(z80FlagC) },
		0x38: func(cpu *CPU_Z80) bool { return cpu.Flag(z80FlagC) },
	}
	for op, cond := range condJR {
		test := cond
		c.baseOps[op] = func(cpu *CPU_Z80) { cpu.opJR(test(cpu)) }
	}
	c.baseOps[0x10] = (*CPU_Z80).opDJNZ

	c.baseOps[0xCD] = (*CPU_Z80).opCALL
	c.baseOps[0xCC] = func(cpu *CPU_Z80) { cpu.opCALLCond(cpu.Flag(z80FlagZ)) }
	c.baseOps[0xDC] = func(cpu *CPU_Z80) { cpu.opCALLCond(cpu.Flag(z80FlagC)) }

	c.baseOps[0xC9] = (*CPU_Z80).opRET
	condRET := map[byte]func(*CPU_Z80) bool{
		0xC0: func(cpu *CPU_Z80) bool { return !cpu.Flag(z80FlagZ) },
		0xC8: func(cpu *CPU_Z80) bool { return cpu.Flag(z80FlagZ) },
		0xD0: func(cpu *CPU_Z80) bool { return !cpu.Flag(z80FlagC) },
		0xD8: func(cpu *CPU_Z80) bool { return cpu.Flag(z80FlagC) },
		0xF0: func(cpu *CPU_Z80) bool { return !cpu.Flag(z80FlagS) },
		0xF8: func(cpu *CPU_Z80) bool { return cpu.Flag(z80FlagS) },
	}
	for op, cond := range condRET {
		test := cond
		c.baseOps[op] = func(cpu *CPU_Z80) {
			if test(cpu) {
				cpu.PC = cpu.popWord()
			}
		}
	}

	c.baseOps[0xC5] = func(cpu *CPU_Z80) { cpu.pushWord(cpu.BC()) }
	c.baseOps[0xD5] = func(cpu *CPU_Z80) { cpu.pushWord(cpu.DE()) }
	c.baseOps[0xE5] = func(cpu *CPU_Z80) { cpu.pushWord(cpu.hlOrIndex()) }
	c.baseOps[0xF5] = func(cpu *CPU_Z80) { cpu.pushWord(cpu.AF()) }
	c.baseOps[0xC1] = func(cpu *CPU_Z80) { cpu.SetBC(cpu.popWord()) }
	c.baseOps[0xD1] = func(cpu *CPU_Z80) { cpu.SetDE(cpu.popWord()) }
	c.baseOps[0xE1] = func(cpu *CPU_Z80) { cpu.setHLOrIndex(cpu.popWord()) }
	c.baseOps[0xF1] = func(cpu *CPU_Z80) { cpu.SetAF(cpu.popWord()) }

	c.baseOps[0xEB] = func(cpu *CPU_Z80) {
		h, l := cpu.H, cpu.L
		cpu.H, cpu.L = cpu.D, cpu.E
		cpu.D, cpu.E = h, l
	}
	c.baseOps[0xE3] = func(cpu *CPU_Z80) {
		v := cpu.popWord()
		cpu.pushWord(cpu.hlOrIndex())
		cpu.setHLOrIndex(v)
	}
	c.baseOps[0xD9] = (*CPU_Z80).Exx

	c.baseOps[0xDB] = func(cpu *CPU_Z80) { cpu.A = cpu.bus.InPort(cpu.fetchByte()) }
	c.baseOps[0xD3] = func(cpu *CPU_Z80) { cpu.bus.OutPort(cpu.fetchByte(), cpu.A) }

	c.baseOps[0xFB] = func(cpu *CPU_Z80) { cpu.IFF1, cpu.IFF2 = true, true }
	c.baseOps[0xF3] = func(cpu *CPU_Z80) { cpu.IFF1, cpu.IFF2 = false, false }

	c.baseOps[0xD7] = func(cpu *CPU_Z80) { cpu.opRST(0x10) }
	c.baseOps[0xE7] = func(cpu *CPU_Z80) { cpu.opRST(0x20) }
	c.baseOps[0xFF] = func(cpu *CPU_Z80) { cpu.opRST(0x38) }
}

func (c *CPU_Z80) setHLOrIndex(v uint16) {
	switch c.prefixMode {
	case z80PrefixDD:
		c.IX = v
	case z80PrefixFD:
		c.IY = v
	default:
		c.SetHL(v)
	}
}

// ---------------------------------------------------------------------
// Operation bodies
// ---------------------------------------------------------------------

func (c *CPU_Z80) opNOP()  {}
func (c *CPU_Z80) opHALT() { c.Halted = true }

func (c *CPU_Z80) opLDRegReg(dest, src byte) { c.writeReg8(dest, c.readReg8(src)) }
func (c *CPU_Z80) opLDRegImm(dest byte)      { c.writeReg8(dest, c.fetchByte()) }

func (c *CPU_Z80) opLDABC() { c.A = c.bus.ReadByte(c.BC()) }
func (c *CPU_Z80) opLDADE() { c.A = c.bus.ReadByte(c.DE()) }
func (c *CPU_Z80) opLDBCA() { c.bus.WriteByte(c.BC(), c.A) }
func (c *CPU_Z80) opLDDEA() { c.bus.WriteByte(c.DE(), c.A) }
func (c *CPU_Z80) opLDANN() { c.A = c.bus.ReadByte(c.fetchWord()) }
func (c *CPU_Z80) opLDNNA() { c.bus.WriteByte(c.fetchWord(), c.A) }

func (c *CPU_Z80) opLDNNHL() {
	addr := c.fetchWord()
	v := c.hlOrIndex()
	c.bus.WriteByte(addr, byte(v))
	c.bus.WriteByte(addr+1, byte(v>>8))
}

func (c *CPU_Z80) opLDHLNN() {
	addr := c.fetchWord()
	lo := c.bus.ReadByte(addr)
	hi := c.bus.ReadByte(addr + 1)
	c.setHLOrIndex(uint16(hi)<<8 | uint16(lo))
}

func (c *CPU_Z80) opINCReg(reg byte) {
	old := c.readReg8(reg)
	result := old + 1
	c.writeReg8(reg, result)
	c.SetFlag(z80FlagS, result&0x80 != 0)
	c.SetFlag(z80FlagZ, result == 0)
	c.SetFlag(z80FlagH, result&0x0F == 0x00)
	c.SetFlag(z80FlagPV, result == 0x80)
	c.SetFlag(z80FlagN, false)
}

func (c *CPU_Z80) opDECReg(reg byte) {
	old := c.readReg8(reg)
	result := old - 1
	c.writeReg8(reg, result)
	c.SetFlag(z80FlagS, result&0x80 != 0)
	c.SetFlag(z80FlagZ, result == 0)
	c.SetFlag(z80FlagH, result&0x0F == 0x0F)
	c.SetFlag(z80FlagPV, result == 0x80)
	c.SetFlag(z80FlagN, true)
}

// opALUReg dispatches the 8 ALU groups (ADD,ADC,SUB,SBC,AND,XOR,OR,CP) over
// an operand selected by the standard register field.
func (c *CPU_Z80) opALUReg(group, reg byte) { c.aluOp(group, c.readReg8(reg)) }
func (c *CPU_Z80) opALUImm(group byte)      { c.aluOp(group, c.fetchByte()) }

func (c *CPU_Z80) aluOp(group byte, x byte) {
	switch group {
	case 0:
		c.addA(x, false)
	case 1:
		c.addA(x, true)
	case 2:
		c.subA(x, false, true)
	case 3:
		c.subA(x, true, true)
	case 4:
		c.andA(x)
	case 5:
		c.xorA(x)
	case 6:
		c.orA(x)
	case 7:
		c.subA(x, false, false)
	}
}

func (c *CPU_Z80) addA(x byte, withCarry bool) {
	var carryIn uint16
	if withCarry && c.Flag(z80FlagC) {
		carryIn = 1
	}
	sum := uint16(c.A) + uint16(x) + carryIn
	result := byte(sum)
	half := (c.A&0x0F)+(x&0x0F)+byte(carryIn) > 0x0F
	overflow := ^(c.A^x)&(c.A^result)&0x80 != 0
	c.A = result
	c.SetFlag(z80FlagS, result&0x80 != 0)
	c.SetFlag(z80FlagZ, result == 0)
	c.SetFlag(z80FlagH, half)
	c.SetFlag(z80FlagPV, overflow)
	c.SetFlag(z80FlagN, false)
	c.SetFlag(z80FlagC, sum > 0xFF)
}

// subA computes A-x (optionally with the incoming carry subtracted too) and
// sets flags; storeResult controls whether A is updated (false for CP).
func (c *CPU_Z80) subA(x byte, withCarry bool, storeResult bool) {
	var carryIn int
	if withCarry && c.Flag(z80FlagC) {
		carryIn = 1
	}
	diff := int(c.A) - int(x) - carryIn
	result := byte(diff)
	half := int(c.A&0x0F)-int(x&0x0F)-carryIn < 0
	overflow := (c.A^x)&(c.A^result)&0x80 != 0
	carry := diff < 0
	c.SetFlag(z80FlagS, result&0x80 != 0)
	c.SetFlag(z80FlagZ, result == 0)
	c.SetFlag(z80FlagH, half)
	c.SetFlag(z80FlagPV, overflow)
	c.SetFlag(z80FlagN, true)
	c.SetFlag(z80FlagC, carry)
	if storeResult {
		c.A = result
	}
}

func (c *CPU_Z80) cpA(x byte) { c.subA(x, false, false) }

func (c *CPU_Z80) andA(x byte) {
	c.A &= x
	c.setSZP(c.A)
	c.SetFlag(z80FlagH, true)
	c.SetFlag(z80FlagN, false)
	c.SetFlag(z80FlagC, false)
}

func (c *CPU_Z80) orA(x byte) {
	c.A |= x
	c.setSZP(c.A)
	c.SetFlag(z80FlagH, false)
	c.SetFlag(z80FlagN, false)
	c.SetFlag(z80FlagC, false)
}

func (c *CPU_Z80) xorA(x byte) {
	c.A ^= x
	c.setSZP(c.A)
	c.SetFlag(z80FlagH, false)
	c.SetFlag(z80FlagN, false)
	c.SetFlag(z80FlagC, false)
}

func (c *CPU_Z80) addHL(rr uint16) {
	hl := c.hlOrIndex()
	sum := uint32(hl) + uint32(rr)
	half := (hl&0x0FFF)+(rr&0x0FFF) > 0x0FFF
	c.setHLOrIndex(uint16(sum))
	c.SetFlag(z80FlagH, half)
	c.SetFlag(z80FlagN, false)
	c.SetFlag(z80FlagC, sum > 0xFFFF)
}

func (c *CPU_Z80) opCPL() {
	c.A = ^c.A
	c.SetFlag(z80FlagN, true)
	c.SetFlag(z80FlagH, true)
}

func (c *CPU_Z80) opSCF() {
	c.SetFlag(z80FlagC, true)
	c.SetFlag(z80FlagN, false)
	c.SetFlag(z80FlagH, false)
}

func (c *CPU_Z80) opCCF() {
	c.SetFlag(z80FlagC, !c.Flag(z80FlagC))
	c.SetFlag(z80FlagN, false)
	c.SetFlag(z80FlagH, false)
}

func (c *CPU_Z80) opRLCA() {
	carry := c.A&0x80 != 0
	c.A = c.A<<1 | c.A>>7
	c.SetFlag(z80FlagC, carry)
	c.SetFlag(z80FlagN, false)
	c.SetFlag(z80FlagH, false)
}

func (c *CPU_Z80) opRRCA() {
	carry := c.A&0x01 != 0
	c.A = c.A>>1 | c.A<<7
	c.SetFlag(z80FlagC, carry)
	c.SetFlag(z80FlagN, false)
	c.SetFlag(z80FlagH, false)
}

// opJR handles both unconditional (take=true) and conditional JR; PC is
// advanced past the 2-byte instruction before the branch is applied.
func (c *CPU_Z80) opJR(take bool) {
	disp := int8(c.fetchByte())
	if take {
		c.PC = uint16(int32(c.PC) + int32(disp))
	}
}

func (c *CPU_Z80) opDJNZ() {
	disp := int8(c.fetchByte())
	c.B--
	if c.B != 0 {
		c.PC = uint16(int32(c.PC) + int32(disp))
	}
}

func (c *CPU_Z80) opCALL() {
	target := c.fetchWord()
	c.pushWord(c.PC)
	c.PC = target
}

func (c *CPU_Z80) opCALLCond(take bool) {
	target := c.fetchWord()
	if take {
		c.pushWord(c.PC)
		c.PC = target
	}
}

func (c *CPU_Z80) opRET() { c.PC = c.popWord() }

func (c *CPU_Z80) opRST(vector uint16) {
	c.pushWord(c.PC)
	c.PC = vector
}
