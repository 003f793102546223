// memory_msx_test.go - region policy, write modes, and power-on fill pattern

package main

import (
	"errors"
	"testing"
)

func TestMemoryFillPattern(t *testing.T) {
	m := NewMemory(NewVDP())
	if m.ReadByte(0x0000) != 0xFF {
		t.Errorf("mem[0x0000] = %#02x, want 0xFF", m.ReadByte(0x0000))
	}
	if m.ReadByte(memFillBase) != memFillValue {
		t.Errorf("mem[%#04x] = %#02x, want %#02x", memFillBase, m.ReadByte(memFillBase), memFillValue)
	}
	if m.ReadByte(memFillTop) != memFillValue {
		t.Errorf("mem[%#04x] = %#02x, want %#02x", memFillTop, m.ReadByte(memFillTop), memFillValue)
	}
	if m.ReadByte(memFillTop+1) != 0xFF {
		t.Errorf("mem[%#04x] (past the fill band) = %#02x, want 0xFF", memFillTop+1, m.ReadByte(memFillTop+1))
	}
}

func TestMemoryStrictWriteToROMIsRecorded(t *testing.T) {
	m := NewMemory(NewVDP())
	m.WriteByte(0x1000, 0x42)
	if m.ReadByte(0x1000) == 0x42 {
		t.Error("strict mode should not apply a write into ROM")
	}
	err := m.LastError()
	if err == nil {
		t.Fatal("expected a WriteToRom error")
	}
	var merr *MachineError
	if !errors.As(err, &merr) || merr.Kind != ErrWriteToRom {
		t.Errorf("error kind = %v, want ErrWriteToRom", err)
	}
	if m.LastError() != nil {
		t.Error("LastError should clear after being read once")
	}
}

func TestMemoryPermissiveWriteToROMIsSilentlyDiscarded(t *testing.T) {
	m := NewMemory(NewVDP())
	m.SetPermissive(true)
	m.WriteByte(0x1000, 0x42)
	if m.LastError() != nil {
		t.Error("permissive mode should not record a WriteToRom error")
	}
	if m.ReadByte(0x1000) == 0x42 {
		t.Error("permissive mode still should not apply the write, only suppress the error")
	}
}

func TestMemoryRAMWritesApplyAboveBIOS(t *testing.T) {
	m := NewMemory(NewVDP())
	m.WriteByte(0xC000, 0x42)
	if m.ReadByte(0xC000) != 0x42 {
		t.Errorf("mem[0xC000] = %#02x, want 0x42", m.ReadByte(0xC000))
	}
}

func TestMemoryVDPForwardingAddresses(t *testing.T) {
	vdp := NewVDP()
	m := NewMemory(vdp)
	m.WriteByte(0x9801, 0x00) // stage address low byte
	m.WriteByte(0x9801, 0x00) // commit address (bit7 clear -> address path)
	m.WriteByte(0x9800, 0x5A)
	if vdp.vram[0] != 0x5A {
		t.Errorf("vram[0] = %#02x, want 0x5A (write forwarded through memory)", vdp.vram[0])
	}
}

func TestMemoryLoadBIOSTooLarge(t *testing.T) {
	m := NewMemory(NewVDP())
	oversized := make([]byte, memBiosEnd+1)
	if err := m.LoadBIOS(oversized); err == nil {
		t.Fatal("expected a BiosLoadFailure error for an oversized image")
	}
}

func TestMemoryLoadBIOSCopiesImage(t *testing.T) {
	m := NewMemory(NewVDP())
	image := []byte{0xC3, 0x00, 0x40}
	if err := m.LoadBIOS(image); err != nil {
		t.Fatalf("LoadBIOS: %v", err)
	}
	if m.ReadByte(0) != 0xC3 || m.ReadByte(1) != 0x00 || m.ReadByte(2) != 0x40 {
		t.Error("BIOS image should be copied starting at address 0")
	}
}

