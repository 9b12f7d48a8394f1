package bmp280

import (
	"barosense-go/x/mathx"
)

// rawSample assembles a 20-bit sample from an MSB/LSB/XLSB register triplet;
// the low nibble of XLSB is padding.
func rawSample(msb, lsb, xlsb byte) uint32 {
	return uint32(msb)<<12 | uint32(lsb)<<4 | uint32(xlsb)>>4
}

// ReadRawTemperature reads the temperature ADC value, one 3-byte burst.
func (d *Device) ReadRawTemperature() (uint32, error) {
	if err := d.readBurst(regTempMSB, d.buf[:3]); err != nil {
		return 0, err
	}
	return rawSample(d.buf[0], d.buf[1], d.buf[2]), nil
}

// ReadRawPressure reads the pressure ADC value, one 3-byte burst.
func (d *Device) ReadRawPressure() (uint32, error) {
	if err := d.readBurst(regPressMSB, d.buf[:3]); err != nil {
		return 0, err
	}
	return rawSample(d.buf[0], d.buf[1], d.buf[2]), nil
}

// Measurement is one compensated reading pair. Fields are fixed-point so the
// hot path stays off the FPU; use the accessors for floats.
type Measurement struct {
	CentiCelsius int32 // °C × 100
	PaQ8         int64 // Pa × 256
}

func (m Measurement) Celsius() float64 { return float64(m.CentiCelsius) / 100 }
func (m Measurement) Pascals() float64 { return float64(m.PaQ8) / 256 }

// DeciHPa returns pressure in tenths of hectopascals, rounded.
func (m Measurement) DeciHPa() int32 {
	return int32(mathx.RoundDivS(m.PaQ8, int64(2560)))
}

// ReadBoth takes both channels from a single 6-byte burst starting at the
// pressure block (pressure triplet then temperature triplet, per register
// layout), runs temperature compensation first and feeds its fine temperature
// into the pressure compensation. Both results therefore come from the same
// conversion; this is the recommended accessor when both channels matter.
func (d *Device) ReadBoth() (Measurement, error) {
	var m Measurement
	if err := d.readBurst(regPressMSB, d.buf[:6]); err != nil {
		return m, err
	}
	rawP := rawSample(d.buf[0], d.buf[1], d.buf[2])
	rawT := rawSample(d.buf[3], d.buf[4], d.buf[5])
	centi, tFine := d.cal.compensateTemperature(int32(rawT))
	m.CentiCelsius = centi
	m.PaQ8 = d.cal.compensatePressure(int32(rawP), tFine)
	return m, nil
}

// Temperature returns degrees Celsius from a temperature-only read.
func (d *Device) Temperature() (float64, error) {
	raw, err := d.ReadRawTemperature()
	if err != nil {
		return 0, err
	}
	c, _ := d.CompensateTemperature(raw)
	return c, nil
}

// Pressure returns Pascals. This takes two bus transactions (temperature
// first, for the fine-temperature term), so the samples are not coupled the
// way ReadBoth couples them; prefer ReadBoth unless only pressure matters.
func (d *Device) Pressure() (float64, error) {
	rawT, err := d.ReadRawTemperature()
	if err != nil {
		return 0, err
	}
	rawP, err := d.ReadRawPressure()
	if err != nil {
		return 0, err
	}
	_, tFine := d.cal.compensateTemperature(int32(rawT))
	return d.CompensatePressure(rawP, tFine), nil
}

// TempAndPressure is the float convenience over ReadBoth.
func (d *Device) TempAndPressure() (celsius, pascals float64, err error) {
	m, err := d.ReadBoth()
	if err != nil {
		return 0, 0, err
	}
	return m.Celsius(), m.Pascals(), nil
}
