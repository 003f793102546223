// bus_msx_test.go - ordered device dispatch and unclaimed-port accounting

package main

import (
	"errors"
	"testing"
)

type stubDevice struct {
	port byte
	val  byte
}

func (s *stubDevice) IsValidPort(port byte) bool { return port == s.port }
func (s *stubDevice) Read(port byte) byte        { return s.val }
func (s *stubDevice) Write(port byte, value byte) { s.val = value }

func TestBusDispatchesToFirstClaimingDevice(t *testing.T) {
	bus := NewBus()
	first := &stubDevice{port: 0x50, val: 0x11}
	second := &stubDevice{port: 0x50, val: 0x22}
	bus.AddDevice(first)
	bus.AddDevice(second)

	if got := bus.In(0x50); got != 0x11 {
		t.Errorf("In(0x50) = %#02x, want the first device's value 0x11", got)
	}
}

func TestBusOutRoutesToMatchingDevice(t *testing.T) {
	bus := NewBus()
	d := &stubDevice{port: 0x60}
	bus.AddDevice(d)
	bus.Out(0x60, 0x99)
	if d.val != 0x99 {
		t.Errorf("device.val = %#02x, want 0x99", d.val)
	}
}

func TestBusUnclaimedPortReturnsFFAndCounts(t *testing.T) {
	bus := NewBus()
	bus.AddDevice(&stubDevice{port: 0x50})

	if got := bus.In(0x70); got != 0xFF {
		t.Errorf("In(0x70) = %#02x, want 0xFF", got)
	}
	if bus.UnclaimedPortHits() != 1 {
		t.Errorf("UnclaimedPortHits = %d, want 1", bus.UnclaimedPortHits())
	}
	bus.Out(0x71, 0x00)
	if bus.UnclaimedPortHits() != 2 {
		t.Errorf("UnclaimedPortHits = %d, want 2 after an unclaimed Out", bus.UnclaimedPortHits())
	}
}

func TestBusUnclaimedPortRecordsRetrievableInvalidPortError(t *testing.T) {
	bus := NewBus()
	bus.In(0x72)

	err := bus.LastError()
	var merr *MachineError
	if !errors.As(err, &merr) || merr.Kind != ErrInvalidPort {
		t.Fatalf("error = %v, want ErrInvalidPort", err)
	}
	if merr.Port != 0x72 {
		t.Errorf("Port = %#02x, want 0x72", merr.Port)
	}
	if bus.LastError() != nil {
		t.Error("LastError should clear after being read once")
	}
}

func TestBusRealDevicesOrderedPPIBeforePSGBeforeVDP(t *testing.T) {
	bus := NewBus()
	ppi := NewPPI()
	psg := NewPSG()
	vdp := NewVDP()
	bus.AddDevice(ppi)
	bus.AddDevice(psg)
	bus.AddDevice(vdp)

	bus.Out(0xA1, 0x42) // PSG data port
	if psg.Register(0) != 0x42 {
		t.Error("PSG should have claimed port 0xA1")
	}
	bus.Out(0xAA, 0x01) // PPI port C
	if ppi.Read(0xAA) != 0x01 {
		t.Error("PPI should have claimed port 0xAA")
	}
	bus.Out(0x98, 0x7E) // VDP data port
	if vdp.vram[0] != 0x7E {
		t.Error("VDP should have claimed port 0x98")
	}
}
