package bmp280

// calibration is the factory trimming set, read once from NVM during New and
// immutable afterwards. Word order and signedness follow the device layout.
type calibration struct {
	t1         uint16
	t2, t3     int16
	p1         uint16
	p2, p3, p4 int16
	p5, p6, p7 int16
	p8, p9     int16
}

// readCalibration populates the calibration set: twelve little-endian word
// reads across 0x88..0x9E, each one pointer write plus a two-byte receive.
func (d *Device) readCalibration() error {
	var err error
	if d.cal.t1, err = d.readWordLE(calibT1); err != nil {
		return err
	}
	if d.cal.t2, err = d.readS16LE(calibT2); err != nil {
		return err
	}
	if d.cal.t3, err = d.readS16LE(calibT3); err != nil {
		return err
	}
	if d.cal.p1, err = d.readWordLE(calibP1); err != nil {
		return err
	}
	if d.cal.p2, err = d.readS16LE(calibP2); err != nil {
		return err
	}
	if d.cal.p3, err = d.readS16LE(calibP3); err != nil {
		return err
	}
	if d.cal.p4, err = d.readS16LE(calibP4); err != nil {
		return err
	}
	if d.cal.p5, err = d.readS16LE(calibP5); err != nil {
		return err
	}
	if d.cal.p6, err = d.readS16LE(calibP6); err != nil {
		return err
	}
	if d.cal.p7, err = d.readS16LE(calibP7); err != nil {
		return err
	}
	if d.cal.p8, err = d.readS16LE(calibP8); err != nil {
		return err
	}
	if d.cal.p9, err = d.readS16LE(calibP9); err != nil {
		return err
	}
	return nil
}

// compensateTemperature is the vendor integer formula: int32 throughout, with
// arithmetic right shifts. The shift amounts and operand order are
// load-bearing — they keep every intermediate inside int32 — so do not
// reorder or widen early. Returns centi-degrees Celsius plus the fine
// temperature intermediate (1/256 °C scale before final scaling) consumed by
// compensatePressure.
func (c *calibration) compensateTemperature(raw int32) (centiC, tFine int32) {
	var1 := (((raw >> 3) - (int32(c.t1) << 1)) * int32(c.t2)) >> 11
	var2 := (((((raw >> 4) - int32(c.t1)) * ((raw >> 4) - int32(c.t1))) >> 12) * int32(c.t3)) >> 14
	tFine = var1 + var2
	centiC = (tFine*5 + 128) >> 8
	return centiC, tFine
}

// compensatePressure is the vendor 64-bit integer formula. tFine must come
// from compensateTemperature. Returns pressure in Pa as Q24.8 (Pa × 256).
// A degenerate calibration set whose p1-derived denominator lands on zero
// yields 0 rather than an error; callers see it as an obviously wrong
// reading instead of a fault.
func (c *calibration) compensatePressure(raw int32, tFine int32) int64 {
	var1 := int64(tFine) - 128000
	var2 := var1 * var1 * int64(c.p6)
	var2 += (var1 * int64(c.p5)) << 17
	var2 += int64(c.p4) << 35
	var1 = ((var1 * var1 * int64(c.p3)) >> 8) + ((var1 * int64(c.p2)) << 12)
	var1 = ((int64(1) << 47) + var1) * int64(c.p1) >> 33
	if var1 == 0 {
		return 0
	}
	p := int64(1048576 - raw)
	p = ((p << 31) - var2) * 3125 / var1
	var1 = (int64(c.p9) * (p >> 13) * (p >> 13)) >> 25
	var2 = (int64(c.p8) * p) >> 19
	p = ((p + var1 + var2) >> 8) + (int64(c.p7) << 4)
	return p
}

// CompensateTemperature converts a raw 20-bit temperature sample to degrees
// Celsius with the stored calibration, also returning the fine temperature
// intermediate needed by CompensatePressure. Pure: same raw in, same values
// out, for a given device.
func (d *Device) CompensateTemperature(raw uint32) (celsius float64, tFine int32) {
	centi, tf := d.cal.compensateTemperature(int32(raw))
	return float64(centi) / 100, tf
}

// CompensatePressure converts a raw 20-bit pressure sample to Pascals. tFine
// must come from a CompensateTemperature run over a temperature sample taken
// in the same burst as raw; ReadBoth does this for you. A 0.0 result with a
// valid transport means degenerate calibration, not vacuum.
func (d *Device) CompensatePressure(raw uint32, tFine int32) float64 {
	return float64(d.cal.compensatePressure(int32(raw), tFine)) / 256
}
