// ppi_msx.go - 8255 programmable peripheral interface

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

// PPI models the subset of the 8255 the MSX BIOS touches: ports A/B/C and
// the control register at 0xAB, including the control register's bit-level
// set/reset protocol used to drive port C pins individually.
type PPI struct {
	mutex   sync.Mutex
	a, b, c byte
	control byte
}

// NewPPI returns a PPI already in its power-on state.
func NewPPI() *PPI {
	p := &PPI{}
	p.Reset()
	return p
}

// Reset matches the documented power-on state: port C reads back 0x50.
func (p *PPI) Reset() {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	p.a, p.b = 0, 0
	p.c = 0x50
	p.control = 0
}

func (p *PPI) IsValidPort(port byte) bool { return port >= 0xA8 && port <= 0xAB }

func (p *PPI) Read(port byte) byte {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	switch port {
	case 0xA8:
		return p.a
	case 0xA9:
		return p.b
	case 0xAA:
		return p.c
	case 0xAB:
		return p.control
	}
	return 0xFF
}

// Write handles the regular register writes on 0xA8-0xAA and the bit
// set/reset protocol on 0xAB: every write there stores value & 0x7F as the
// control register, and bits 1-3 select a port C pin that bit 0 sets or
// clears. Bit 7 is not examined.
func (p *PPI) Write(port byte, value byte) {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	switch port {
	case 0xA8:
		p.a = value
	case 0xA9:
		// port B is input-only on MSX; writes are accepted and ignored.
	case 0xAA:
		p.c = value
	case 0xAB:
		p.control = value & 0x7F
		bitNumber := (value >> 1) & 0x07
		bitStatus := value & 0x01
		mask := byte(1) << bitNumber
		if bitStatus != 0 {
			p.c |= mask
		} else {
			p.c &^= mask
		}
	}
}
