// machine_msx_test.go - top-level wiring, Step/RunUntil, and configuration

package main

import (
	"errors"
	"testing"
)

func TestMachineNewMachineDefaultConfig(t *testing.T) {
	m, err := NewMachine(MachineConfig{})
	if err != nil {
		t.Fatalf("NewMachine: %v", err)
	}
	if m.CPU().PC != 0 {
		t.Errorf("PC = %#04x, want 0", m.CPU().PC)
	}
}

func TestMachineStepAdvancesAndWrapsScanline(t *testing.T) {
	m, err := NewMachine(MachineConfig{})
	if err != nil {
		t.Fatalf("NewMachine: %v", err)
	}
	for i := 0; i < msxScanlineCount; i++ {
		if err := m.Step(); err != nil {
			t.Fatalf("Step %d: %v", i, err)
		}
	}
	if m.Scanline() != 0 {
		t.Errorf("Scanline = %d, want wrapped back to 0", m.Scanline())
	}
}

func TestMachineStrictWriteToROMSurfacesFromStep(t *testing.T) {
	m, err := NewMachine(MachineConfig{WriteMode: WriteModeStrict})
	if err != nil {
		t.Fatalf("NewMachine: %v", err)
	}
	// LD A,0x42 ; LD (0x0000),A -- writes into ROM
	prog := []byte{0x3E, 0x42, 0x32, 0x00, 0x00}
	for i, b := range prog {
		m.mem.data[0x4000+i] = b
	}
	m.cpu.PC = 0x4000

	var stepErr error
	for i := 0; i < 2; i++ {
		if err := m.Step(); err != nil {
			stepErr = err
			break
		}
	}
	if stepErr == nil {
		t.Fatal("expected a WriteToRom error")
	}
	var merr *MachineError
	if !errors.As(stepErr, &merr) || merr.Kind != ErrWriteToRom {
		t.Errorf("error kind = %v, want ErrWriteToRom", stepErr)
	}
}

func TestMachinePermissiveWriteToROMDoesNotFault(t *testing.T) {
	m, err := NewMachine(MachineConfig{WriteMode: WriteModePermissive})
	if err != nil {
		t.Fatalf("NewMachine: %v", err)
	}
	prog := []byte{0x3E, 0x42, 0x32, 0x00, 0x00, 0x00}
	for i, b := range prog {
		m.mem.data[0x4000+i] = b
	}
	m.cpu.PC = 0x4000

	for i := 0; i < 3; i++ {
		if err := m.Step(); err != nil {
			t.Fatalf("Step %d: %v (permissive mode should not fault)", i, err)
		}
	}
}

func TestMachineRunUntilHonoursMaxSteps(t *testing.T) {
	m, err := NewMachine(MachineConfig{MaxSteps: 5})
	if err != nil {
		t.Fatalf("NewMachine: %v", err)
	}
	taken, err := m.RunUntil(1000)
	if taken != 5 {
		t.Errorf("taken = %d, want 5", taken)
	}
	var merr *MachineError
	if !errors.As(err, &merr) || merr.Kind != ErrStepLimitReached {
		t.Errorf("error = %v, want ErrStepLimitReached", err)
	}
}

func TestMachineResetReappliesBIOS(t *testing.T) {
	bios := make([]byte, 3)
	bios[0] = 0xC3
	bios[1] = 0x00
	bios[2] = 0x40
	m, err := NewMachine(MachineConfig{BIOS: bios})
	if err != nil {
		t.Fatalf("NewMachine: %v", err)
	}
	m.mem.data[0] = 0x00 // corrupt it
	if err := m.Reset(MachineConfig{BIOS: bios}); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if m.mem.ReadByte(0) != 0xC3 {
		t.Errorf("mem[0] after Reset = %#02x, want BIOS reapplied (0xC3)", m.mem.ReadByte(0))
	}
	if m.stepCount != 0 {
		t.Error("Reset should zero stepCount")
	}
}

func TestMachineLoadCartridge(t *testing.T) {
	m, err := NewMachine(MachineConfig{})
	if err != nil {
		t.Fatalf("NewMachine: %v", err)
	}
	cart := []byte{0xAA, 0xBB, 0xCC}
	m.LoadCartridge(cart)
	if m.mem.ReadByte(0x4000) != 0xAA || m.mem.ReadByte(0x4002) != 0xCC {
		t.Error("cartridge should be loaded at 0x4000")
	}
}

func TestMachineRequestInterruptReachesCPU(t *testing.T) {
	m, err := NewMachine(MachineConfig{})
	if err != nil {
		t.Fatalf("NewMachine: %v", err)
	}
	m.cpu.IFF1, m.cpu.IFF2 = true, true
	m.RequestInterrupt()
	if err := m.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if m.CPU().PC != 0x0038 {
		t.Errorf("PC = %#04x, want interrupt vector 0x0038", m.CPU().PC)
	}
}

func TestMachineOutiQuirkPropagatesToCPU(t *testing.T) {
	m, err := NewMachine(MachineConfig{OutiQuirk: true})
	if err != nil {
		t.Fatalf("NewMachine: %v", err)
	}
	if !m.cpu.OutiQuirk {
		t.Error("MachineConfig.OutiQuirk should propagate to the CPU")
	}
}

func TestMachineBusUnclaimedPortVisibleThroughMachine(t *testing.T) {
	m, err := NewMachine(MachineConfig{})
	if err != nil {
		t.Fatalf("NewMachine: %v", err)
	}
	m.Bus().In(0x01) // not claimed by PSG/PPI/VDP
	if m.Bus().UnclaimedPortHits() == 0 {
		t.Error("expected at least one unclaimed port hit")
	}
}

func TestMachineLastPortErrorIsRecoverableAndDoesNotInterruptStep(t *testing.T) {
	m, err := NewMachine(MachineConfig{})
	if err != nil {
		t.Fatalf("NewMachine: %v", err)
	}
	m.Bus().In(0x01) // unclaimed port
	if err := m.Step(); err != nil {
		t.Fatalf("Step should not be interrupted by a recoverable InvalidPort condition: %v", err)
	}
	var merr *MachineError
	if !errors.As(m.LastPortError(), &merr) || merr.Kind != ErrInvalidPort {
		t.Error("LastPortError should retrieve the InvalidPort condition")
	}
	if m.LastPortError() != nil {
		t.Error("LastPortError should clear after being read once")
	}
}
