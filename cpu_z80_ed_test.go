// cpu_z80_ed_test.go - ED-prefix LDIR, IM 1, and OUTI coverage

package main

import "testing"

func TestCPUZ80EDLDIRCopiesBlockAndRepeats(t *testing.T) {
	bus := newZ80TestBus()
	copy(bus.mem[0x4000:], []byte{0x11, 0x22, 0x33})
	// LD HL,0x4000 ; LD DE,0x5000 ; LD BC,0x0003 ; ED LDIR
	cpu := newTestCPU(bus, 0x0100,
		0x21, 0x00, 0x40,
		0x11, 0x00, 0x50,
		0x01, 0x03, 0x00,
		0xED, 0xB0,
	)
	step(t, cpu, 3)
	startPC := cpu.PC
	for cpu.BC() != 0 {
		if err := cpu.Step(); err != nil {
			t.Fatalf("Step during LDIR: %v", err)
		}
	}
	if bus.mem[0x5000] != 0x11 || bus.mem[0x5001] != 0x22 || bus.mem[0x5002] != 0x33 {
		t.Fatalf("copied block = %#02x %#02x %#02x, want 0x11 0x22 0x33",
			bus.mem[0x5000], bus.mem[0x5001], bus.mem[0x5002])
	}
	if cpu.HL() != 0x4003 || cpu.DE() != 0x5003 {
		t.Errorf("HL/DE after LDIR = %#04x/%#04x, want 0x4003/0x5003", cpu.HL(), cpu.DE())
	}
	if cpu.PC != startPC+2 {
		t.Errorf("PC after LDIR completes = %#04x, want %#04x (past the ED B0 pair)", cpu.PC, startPC+2)
	}
}

func TestCPUZ80EDIM1(t *testing.T) {
	bus := newZ80TestBus()
	cpu := newTestCPU(bus, 0x0100, 0xED, 0x56)
	step(t, cpu, 1)
	if cpu.IM != 1 {
		t.Errorf("IM = %d, want 1", cpu.IM)
	}
}

func TestCPUZ80EDOUTIFaithful(t *testing.T) {
	bus := newZ80TestBus()
	bus.mem[0x4000] = 0x5A
	// LD HL,0x4000 ; LD B,0x02 ; LD C,0x30 ; ED OUTI
	cpu := newTestCPU(bus, 0x0100, 0x21, 0x00, 0x40, 0x06, 0x02, 0x0E, 0x30, 0xED, 0xA3)
	step(t, cpu, 3)
	step(t, cpu, 1)
	if bus.ports[0x30] != 0x5A {
		t.Fatalf("port 0x30 = %#02x, want 0x5A", bus.ports[0x30])
	}
	if cpu.HL() != 0x4001 {
		t.Errorf("HL = %#04x, want 0x4001", cpu.HL())
	}
	if cpu.B != 0x01 {
		t.Errorf("B = %#02x, want 0x01", cpu.B)
	}
	if cpu.Flag(z80FlagH) || cpu.Flag(z80FlagC) {
		t.Error("H/C should be clear: B did not underflow past 0 (0x02 -> 0x01)")
	}
	if cpu.Flag(z80FlagPV) {
		t.Error("P/V should be clear: parity(0x01) is odd")
	}
	if !cpu.Flag(z80FlagN) {
		t.Error("N should be set after OUTI")
	}
	if cpu.Flag(z80FlagZ) {
		t.Error("Z should be clear: B is 0x01, not 0")
	}
}

func TestCPUZ80EDOUTIFaithfulSetsHCOnBUnderflow(t *testing.T) {
	bus := newZ80TestBus()
	bus.mem[0x4000] = 0x5A
	// LD HL,0x4000 ; LD B,0x00 ; LD C,0x30 ; ED OUTI -> B underflows 0x00 -> 0xFF
	cpu := newTestCPU(bus, 0x0100, 0x21, 0x00, 0x40, 0x06, 0x00, 0x0E, 0x30, 0xED, 0xA3)
	step(t, cpu, 3)
	step(t, cpu, 1)
	if cpu.B != 0xFF {
		t.Fatalf("B = %#02x, want 0xFF", cpu.B)
	}
	if !cpu.Flag(z80FlagH) || !cpu.Flag(z80FlagC) {
		t.Error("H/C should be set: B underflowed past 0")
	}
	if !cpu.Flag(z80FlagPV) {
		t.Error("P/V should be set: parity(0xFF) is even")
	}
}

func TestCPUZ80EDOUTIQuirk(t *testing.T) {
	bus := newZ80TestBus()
	bus.mem[0x4000] = 0x5A
	cpu := newTestCPU(bus, 0x0100, 0x21, 0x00, 0x40, 0x06, 0x02, 0x0E, 0x30, 0x1E, 0x1F, 0xED, 0xA3)
	cpu.OutiQuirk = true
	step(t, cpu, 4) // through LD E,0x1F
	step(t, cpu, 1) // ED OUTI
	if bus.ports[0x30] != 0 {
		t.Errorf("quirk mode should not touch the output port, got %#02x", bus.ports[0x30])
	}
	if cpu.B != 0x02 {
		t.Errorf("quirk mode should not touch B, got %#02x", cpu.B)
	}
	if cpu.E != 0x0F {
		t.Errorf("E = %#02x, want bit 4 cleared from 0x1F -> 0x0F", cpu.E)
	}
}
