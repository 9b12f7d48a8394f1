package bmp280

// Register transport. Every call is exactly one bus transaction against the
// device's register space; failures surface verbatim and retry policy stays
// with the caller. Multi-byte receives rely on the device's register pointer
// auto-increment, so the I2C implementation must issue the write and the read
// under a single repeated-start transaction.

func (d *Device) writeRegister(reg, val byte) error {
	d.w[0] = reg
	d.w[1] = val
	return d.bus.Tx(d.addr, d.w[:2], nil)
}

func (d *Device) readRegister(reg byte) (byte, error) {
	d.w[0] = reg
	if err := d.bus.Tx(d.addr, d.w[:1], d.r[:1]); err != nil {
		return 0, err
	}
	return d.r[0], nil
}

// readBurst fills buf from consecutive registers starting at reg.
func (d *Device) readBurst(reg byte, buf []byte) error {
	d.w[0] = reg
	return d.bus.Tx(d.addr, d.w[:1], buf)
}

// I2C 16-bit word operations (little-endian: LOW then HIGH), used only for
// the calibration area.

func (d *Device) readWordLE(reg byte) (uint16, error) {
	d.w[0] = reg
	if err := d.bus.Tx(d.addr, d.w[:1], d.r[:2]); err != nil {
		return 0, err
	}
	return uint16(d.r[0]) | uint16(d.r[1])<<8, nil
}

func (d *Device) readS16LE(reg byte) (int16, error) {
	u, err := d.readWordLE(reg)
	return int16(u), err
}
