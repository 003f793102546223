// machine_msx.go - top-level MSX wiring: CPU, Memory, Bus, and peripherals

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

import "sync"

const msxScanlineCount = 192

// WriteMode selects how a write into ROM is treated: strict surfaces a
// WriteToRom MachineError, permissive silently discards the write.
type WriteMode string

const (
	WriteModeStrict     WriteMode = "strict"
	WriteModePermissive WriteMode = "permissive"
)

// MachineConfig controls construction-time options that do not belong on
// the hot Step path: the ROM write-violation policy, a retired-step cap
// for RunUntil, whether to apply the historical OUTI quirk, and an
// optional BIOS image to load before Reset.
type MachineConfig struct {
	WriteMode WriteMode
	MaxSteps  uint64
	OutiQuirk bool
	BIOS      []byte
}

// machineIOAdapter satisfies Z80Bus by delegating memory access to Memory
// and port access to Bus.
type machineIOAdapter struct {
	mem *Memory
	bus *Bus
}

func (a *machineIOAdapter) ReadByte(addr uint16) byte         { return a.mem.ReadByte(addr) }
func (a *machineIOAdapter) WriteByte(addr uint16, value byte) { a.mem.WriteByte(addr, value) }
func (a *machineIOAdapter) InPort(port byte) byte             { return a.bus.In(port) }
func (a *machineIOAdapter) OutPort(port byte, value byte)     { a.bus.Out(port, value) }

// Machine wires a CPU_Z80 to Memory and Bus, with PPI, PSG and VDP attached
// to the bus in that fixed order. Scanline
// is advanced once per Step so RunUntil callers can derive vertical
// blanking without a separate timer.
type Machine struct {
	mutex sync.Mutex

	cpu *CPU_Z80
	mem *Memory
	bus *Bus

	psg *PSG
	ppi *PPI
	vdp *VDP

	scanline  int
	maxSteps  uint64
	stepCount uint64
}

// NewMachine builds a fully wired Machine and applies cfg. An empty
// MachineConfig produces a Machine with strict ROM-write checking,
// faithful OUTI semantics, no step limit, and no BIOS image loaded.
func NewMachine(cfg MachineConfig) (*Machine, error) {
	vdp := NewVDP()
	psg := NewPSG()
	ppi := NewPPI()
	mem := NewMemory(vdp)
	mem.SetPermissive(cfg.WriteMode == WriteModePermissive)
	bus := NewBus()
	bus.AddDevice(ppi)
	bus.AddDevice(psg)
	bus.AddDevice(vdp)

	m := &Machine{mem: mem, bus: bus, psg: psg, ppi: ppi, vdp: vdp, maxSteps: cfg.MaxSteps}
	m.cpu = NewCPU_Z80(&machineIOAdapter{mem: mem, bus: bus})
	m.cpu.OutiQuirk = cfg.OutiQuirk

	if cfg.BIOS != nil {
		if err := mem.LoadBIOS(cfg.BIOS); err != nil {
			traceLog.Error("bios load failed: %v", err)
			return nil, err
		}
	}
	traceLog.Info("machine constructed: writeMode=%s maxSteps=%d outiQuirk=%v", cfg.WriteMode, cfg.MaxSteps, cfg.OutiQuirk)
	return m, nil
}

// Reset reinitialises the CPU and every peripheral. Memory is refilled to
// its power-on pattern and, if cfg carries a BIOS image, that image is
// loaded on top; the image given to NewMachine is not reused.
func (m *Machine) Reset(cfg MachineConfig) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.cpu.Reset()
	m.psg.Reset()
	m.ppi.Reset()
	m.vdp.Reset()
	m.mem.fill()
	m.mem.SetPermissive(cfg.WriteMode == WriteModePermissive)
	m.scanline = 0
	m.stepCount = 0
	m.maxSteps = cfg.MaxSteps

	if cfg.BIOS != nil {
		return m.mem.LoadBIOS(cfg.BIOS)
	}
	return nil
}

// Step advances the CPU by exactly one retired instruction and the VDP's
// scanline counter by one row, wrapping at the visible frame height. It
// surfaces a CPU dispatch error, a pending write-to-ROM error recorded by
// Memory during that instruction, or StepLimitReached once the configured
// step cap (if any) is exceeded.
func (m *Machine) Step() error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.maxSteps > 0 && m.stepCount >= m.maxSteps {
		traceLog.Warn("step limit %d reached", m.maxSteps)
		return newStepLimitError()
	}
	if err := m.cpu.Step(); err != nil {
		traceLog.Error("cpu fault: %v", err)
		return err
	}
	if err := m.mem.LastError(); err != nil {
		traceLog.Error("memory fault: %v", err)
		return err
	}
	// InvalidPort is recoverable and never interrupts the step; the Bus
	// itself logs it at Warn. LastPortError lets a caller retrieve it.
	m.stepCount++
	m.scanline = (m.scanline + 1) % msxScanlineCount
	return nil
}

// RunUntil steps the machine until either maxSteps is reached or a Step
// call returns an error, returning the number of steps actually taken.
func (m *Machine) RunUntil(maxSteps uint64) (uint64, error) {
	var taken uint64
	for taken < maxSteps {
		if err := m.Step(); err != nil {
			return taken, err
		}
		taken++
	}
	return taken, nil
}

// RequestInterrupt asserts the CPU's maskable IRQ line, matching the VDP's
// vertical-blank interrupt in real hardware.
func (m *Machine) RequestInterrupt() {
	m.cpu.RequestInterrupt()
}

// Scanline reports the current raster row, 0-191.
func (m *Machine) Scanline() int {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return m.scanline
}

// LoadCartridge copies image into memory starting at 0x4000, the slot-1
// cartridge window on a stock MSX1 memory map. It bypasses the ROM-write
// policy since this is construction-time loading, not a CPU-driven write.
func (m *Machine) LoadCartridge(image []byte) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	copy(m.mem.data[0x4000:], image)
}

// CPU exposes the underlying interpreter for inspection and testing.
func (m *Machine) CPU() *CPU_Z80 { return m.cpu }

// VDP exposes the video display processor for frame export.
func (m *Machine) VDP() *VDP { return m.vdp }

// Bus exposes the I/O bus, primarily so tests can read UnclaimedPortHits.
func (m *Machine) Bus() *Bus { return m.bus }

// LastPortError retrieves the most recent InvalidPort MachineError recorded
// by the bus, if any, clearing it. Unlike WriteToRom/UnknownOpcode, this
// condition is recoverable and is never returned from Step itself.
func (m *Machine) LastPortError() error {
	return m.bus.LastError()
}
