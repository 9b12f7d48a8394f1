// Package simi2c provides an in-memory I2C peripheral with a 256-byte
// register file and BMP280-style transaction semantics: a write carries
// register/value pairs (a lone register byte just moves the pointer), a read
// streams from the current pointer with auto-increment. It backs driver tests
// and the host demo; it is not safe for concurrent use, matching the
// single-threaded bus model of the drivers that talk to it.
package simi2c

import "errors"

// ErrNoDevice is returned when a transaction addresses anything other than
// the simulated device, the equivalent of an unacknowledged bus address.
var ErrNoDevice = errors.New("simi2c: address not acknowledged")

// Txn records one bus transaction for exact-sequence assertions in tests.
type Txn struct {
	Addr uint16
	W    []byte // copy of the written bytes
	N    int    // number of bytes read back
	Reg  byte   // register pointer the read started from
}

// Device is a simulated register-file peripheral implementing the
// tinygo.org/x/drivers I2C Tx shape.
type Device struct {
	Addr uint16
	Log  []Txn

	// Fail, when set, makes every transaction return it (after logging),
	// modelling a dead bus.
	Fail error

	// OnWrite, when set, observes each register write before it lands.
	// Return false to swallow the write (write-only registers, reset
	// modelling and the like).
	OnWrite func(reg, val byte) bool

	regs [256]byte
	ptr  byte
}

// New returns a Device answering on the given 7-bit address.
func New(addr uint16) *Device {
	return &Device{Addr: addr}
}

// Poke seeds consecutive registers starting at reg.
func (d *Device) Poke(reg byte, vals ...byte) {
	for i, v := range vals {
		d.regs[reg+byte(i)] = v
	}
}

// Peek returns the current value of one register.
func (d *Device) Peek(reg byte) byte { return d.regs[reg] }

// PokeWordLE stores a 16-bit word low byte first, the layout of the BMP280
// calibration area.
func (d *Device) PokeWordLE(reg byte, v uint16) {
	d.regs[reg] = byte(v)
	d.regs[reg+1] = byte(v >> 8)
}

// ClearLog drops the recorded transactions; register contents are kept.
func (d *Device) ClearLog() { d.Log = nil }

// Tx implements the drivers.I2C contract: w then r under one transaction.
func (d *Device) Tx(addr uint16, w, r []byte) error {
	t := Txn{Addr: addr, W: append([]byte(nil), w...), N: len(r)}
	if len(w) > 0 {
		t.Reg = w[0]
	} else {
		t.Reg = d.ptr
	}
	d.Log = append(d.Log, t)

	if d.Fail != nil {
		return d.Fail
	}
	if addr != d.Addr {
		return ErrNoDevice
	}

	if len(w) > 0 {
		d.ptr = w[0]
		// Payload bytes beyond the pointer arrive as reg/value pairs.
		for i := 0; i+1 < len(w); i += 2 {
			reg, val := w[i], w[i+1]
			if d.OnWrite != nil && !d.OnWrite(reg, val) {
				continue
			}
			d.regs[reg] = val
		}
	}
	for i := range r {
		r[i] = d.regs[d.ptr]
		d.ptr++
	}
	return nil
}
