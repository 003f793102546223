// ppi_msx_test.go - 8255 port register and bit set/reset protocol coverage

package main

import "testing"

func TestPPIResetState(t *testing.T) {
	p := NewPPI()
	if p.Read(0xAA) != 0x50 {
		t.Errorf("port C on reset = %#02x, want 0x50", p.Read(0xAA))
	}
	if p.Read(0xA8) != 0 || p.Read(0xA9) != 0 {
		t.Error("ports A/B should read back 0 on reset")
	}
}

func TestPPIPlainPortWrites(t *testing.T) {
	p := NewPPI()
	p.Write(0xA8, 0x11)
	if p.Read(0xA8) != 0x11 {
		t.Errorf("A = %#02x, want 0x11", p.Read(0xA8))
	}
}

func TestPPIPortBWriteIsIgnored(t *testing.T) {
	p := NewPPI()
	p.Write(0xA9, 0x22) // port B is input-only; write must not take effect
	if p.Read(0xA9) != 0 {
		t.Errorf("B = %#02x, want 0 (write to input-only port ignored)", p.Read(0xA9))
	}
}

func TestPPIBitSetAndReset(t *testing.T) {
	p := NewPPI()
	p.Write(0xAA, 0x00) // start from a known port C value

	// Set bit 3: bitNumber=3 -> value = (3<<1)|1 = 0x07
	p.Write(0xAB, 0x07)
	if p.Read(0xAA)&0x08 == 0 {
		t.Fatal("bit 3 of port C should be set")
	}

	// Clear bit 3: bitNumber=3, status=0 -> value = (3<<1)|0 = 0x06
	p.Write(0xAB, 0x06)
	if p.Read(0xAA)&0x08 != 0 {
		t.Error("bit 3 of port C should be cleared")
	}
}

func TestPPIBitProtocolLeavesOtherBitsUntouched(t *testing.T) {
	p := NewPPI()
	p.Write(0xAA, 0xFF)
	p.Write(0xAB, 0x00) // clear bit 0 only
	if p.Read(0xAA) != 0xFE {
		t.Errorf("port C = %#02x, want 0xFE (only bit 0 cleared)", p.Read(0xAA))
	}
}

func TestPPIControlRegisterUpdatedOnEveryWrite(t *testing.T) {
	p := NewPPI()
	// bit 7 is always 0 in this protocol; the control register is still
	// updated (masked to 7 bits) alongside the port C bit set/reset op.
	p.Write(0xAB, 0x07) // set bit 3
	if p.Read(0xAB) != 0x07 {
		t.Errorf("control = %#02x, want 0x07 (stored on every 0xAB write)", p.Read(0xAB))
	}
}

func TestPPIIsValidPortRange(t *testing.T) {
	p := NewPPI()
	for port := 0xA8; port <= 0xAB; port++ {
		if !p.IsValidPort(byte(port)) {
			t.Errorf("port %#02x should be claimed by the PPI", port)
		}
	}
	if p.IsValidPort(0xA7) || p.IsValidPort(0xAC) {
		t.Error("ports outside 0xA8-0xAB should not be claimed")
	}
}
