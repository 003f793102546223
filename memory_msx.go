// memory_msx.go - 64KiB address space with region-based read/write policy

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

const (
	memBiosEnd = 0x8000

	memVDPDataAddr    = 0x9800
	memVDPControlAddr = 0x9801

	memFillBase  = 0xFD9A
	memFillTop   = 0xFFC9
	memFillValue = 0xC9
)

// Memory implements the MSX 64KiB address space: BIOS/slot-1 ROM
// (read-only), slot 2 (two VDP-forwarding addresses; other writes are
// discarded), and plain RAM from 0xC000.
// Writes landing in ROM are reported rather than silently dropped so a
// Machine can surface a typed error instead of corrupting state quietly.
type Memory struct {
	data       [0x10000]byte
	vdp        *VDP
	lastErr    error
	permissive bool
}

// NewMemory returns a Memory filled per documented MSX power-on state:
// 0xFF everywhere except a 0xC9 (RET) band reserved for BIOS hook stubs.
func NewMemory(vdp *VDP) *Memory {
	m := &Memory{vdp: vdp}
	m.fill()
	return m
}

// SetPermissive controls how WriteByte treats writes into ROM: false
// (strict, the default) records a WriteToRom MachineError; true silently
// discards the write instead.
func (m *Memory) SetPermissive(permissive bool) { m.permissive = permissive }

func (m *Memory) fill() {
	for i := range m.data {
		m.data[i] = 0xFF
	}
	for i := memFillBase; i <= memFillTop; i++ {
		m.data[i] = memFillValue
	}
}

// LoadBIOS copies a BIOS image into the bottom of the address space. It
// returns an error if the image is larger than 16KiB.
func (m *Memory) LoadBIOS(image []byte) error {
	if len(image) > 16*1024 {
		return newBiosLoadFailureError(len(image))
	}
	copy(m.data[:memBiosEnd], image)
	return nil
}

// ReadByte implements the documented-subset region policy: every region
// simply reads back whatever byte is stored, BIOS included.
func (m *Memory) ReadByte(addr uint16) byte {
	return m.data[addr]
}

// WriteByte enforces read-only BIOS/slot-1 ROM, forwards the two VDP
// port-mapped addresses in slot 2 to the VDP, discards any other write
// into slot 2, and writes RAM (0xC000 and up) directly. A write into ROM
// is recorded as a MachineError the caller can retrieve via LastError; it
// does not panic or halt the CPU loop.
func (m *Memory) WriteByte(addr uint16, value byte) {
	switch {
	case addr < memBiosEnd:
		if !m.permissive {
			m.lastErr = newWriteToRomError(addr)
		}
	case addr == memVDPDataAddr:
		m.vdp.Write(0x98, value)
	case addr == memVDPControlAddr:
		m.vdp.Write(0x99, value)
	case addr < 0xC000:
		// the rest of slot 2 is not writable
	default:
		m.data[addr] = value
	}
}

// LastError returns and clears the most recent write-to-ROM violation, if
// any; Machine.Step surfaces it after the instruction that triggered it.
func (m *Memory) LastError() error {
	err := m.lastErr
	m.lastErr = nil
	return err
}
