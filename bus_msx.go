// bus_msx.go - ordered I/O device dispatch

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

import "sync/atomic"

// Device is satisfied by every I/O peripheral attached to the Bus: PSG,
// PPI, and VDP all claim a fixed set of ports and handle reads/writes
// against their own internal state.
type Device interface {
	IsValidPort(port byte) bool
	Read(port byte) byte
	Write(port byte, value byte)
}

// Bus dispatches port I/O to devices in insertion order: the first device
// whose IsValidPort claims a port handles it. A port nothing claims reads
// back 0xFF, is counted so unmapped regions are observable rather than
// silently wrong, and records an InvalidPort MachineError retrievable via
// LastError.
type Bus struct {
	devices       []Device
	unclaimedHits atomic.Uint64
	lastErr       atomic.Pointer[MachineError]
}

// NewBus returns a Bus with no devices attached; call AddDevice to wire
// peripherals in the order they should be probed.
func NewBus() *Bus {
	return &Bus{}
}

// AddDevice appends a device to the dispatch order.
func (b *Bus) AddDevice(d Device) {
	b.devices = append(b.devices, d)
}

func (b *Bus) In(port byte) byte {
	for _, d := range b.devices {
		if d.IsValidPort(port) {
			return d.Read(port)
		}
	}
	b.reportUnclaimed(port)
	return 0xFF
}

func (b *Bus) Out(port byte, value byte) {
	for _, d := range b.devices {
		if d.IsValidPort(port) {
			d.Write(port, value)
			return
		}
	}
	b.reportUnclaimed(port)
}

// reportUnclaimed records an InvalidPort MachineError for LastError,
// counts the hit, and logs it at Warn. This condition is recoverable and
// never interrupts the step that triggered it.
func (b *Bus) reportUnclaimed(port byte) {
	b.unclaimedHits.Add(1)
	err := newInvalidPortError(port)
	b.lastErr.Store(err)
	traceLog.Warn("%v", err)
}

// UnclaimedPortHits reports how many In/Out calls landed on a port no
// device claimed, a coarse signal of port-map completeness.
func (b *Bus) UnclaimedPortHits() uint64 {
	return b.unclaimedHits.Load()
}

// LastError returns the most recent InvalidPort violation, if any, and
// clears it, mirroring Memory.LastError.
func (b *Bus) LastError() error {
	err := b.lastErr.Swap(nil)
	if err == nil {
		return nil
	}
	return err
}
