// msxerr.go - typed error taxonomy for the MSX core

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

import "fmt"

// ErrorKind discriminates the fatal/recoverable error taxonomy the MSX core
// can raise out of Step, RunUntil, and construction.
type ErrorKind int

const (
	ErrUnknownOpcode ErrorKind = iota
	ErrWriteToRom
	ErrInvalidPort
	ErrStepLimitReached
	ErrBiosLoadFailure
)

func (k ErrorKind) String() string {
	switch k {
	case ErrUnknownOpcode:
		return "UnknownOpcode"
	case ErrWriteToRom:
		return "WriteToRom"
	case ErrInvalidPort:
		return "InvalidPort"
	case ErrStepLimitReached:
		return "StepLimitReached"
	case ErrBiosLoadFailure:
		return "BiosLoadFailure"
	default:
		return "Unknown"
	}
}

// MachineError is the single error type the core raises. Callers can
// errors.As(&MachineError{}) to recover Kind and the relevant address/port.
type MachineError struct {
	Kind   ErrorKind
	Addr   uint16
	Opcode byte
	Port   byte
	msg    string
}

func (e *MachineError) Error() string {
	if e.msg != "" {
		return e.msg
	}
	switch e.Kind {
	case ErrUnknownOpcode:
		return fmt.Sprintf("unknown opcode 0x%02X at 0x%04X", e.Opcode, e.Addr)
	case ErrWriteToRom:
		return fmt.Sprintf("write to rom at 0x%04X", e.Addr)
	case ErrInvalidPort:
		return fmt.Sprintf("invalid port 0x%02X", e.Port)
	case ErrStepLimitReached:
		return "step limit reached"
	case ErrBiosLoadFailure:
		return "bios image exceeds address space"
	default:
		return "machine error"
	}
}

func newUnknownOpcodeError(addr uint16, opcode byte) *MachineError {
	return &MachineError{Kind: ErrUnknownOpcode, Addr: addr, Opcode: opcode}
}

func newWriteToRomError(addr uint16) *MachineError {
	return &MachineError{Kind: ErrWriteToRom, Addr: addr}
}

func newInvalidPortError(port byte) *MachineError {
	return &MachineError{Kind: ErrInvalidPort, Port: port}
}

func newStepLimitError() *MachineError {
	return &MachineError{Kind: ErrStepLimitReached}
}

func newBiosLoadFailureError(size int) *MachineError {
	return &MachineError{Kind: ErrBiosLoadFailure, msg: fmt.Sprintf("bios image of %d bytes exceeds 16KiB", size)}
}
