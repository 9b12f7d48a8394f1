package bmp280

import (
	"tinygo.org/x/drivers"
)

// Driver configuration. Zero Address selects AddressDefault; the measurement
// fields are taken as-is, so a zero Oversampling genuinely means "channel
// skipped" — start from DefaultConfig for the usual settings.
type Config struct {
	Address                 uint16 // 7-bit
	TemperatureOversampling Oversampling
	PressureOversampling    Oversampling
	Mode                    Mode
	Standby                 StandbyTime
	Filter                  FilterCoeff
}

// DefaultConfig returns the default measurement settings (named constants in
// registers.go): x1 temperature, x4 pressure, normal mode, minimum standby,
// filter off.
func DefaultConfig() Config {
	return Config{
		Address:                 AddressDefault,
		TemperatureOversampling: DefaultTemperatureOversampling,
		PressureOversampling:    DefaultPressureOversampling,
		Mode:                    DefaultMode,
		Standby:                 DefaultStandby,
		Filter:                  DefaultFilter,
	}
}

// Device represents a BMP280 instance on an I²C bus. The driver borrows the
// bus from the caller and never locks it: with several devices on one bus the
// caller must serialize transactions itself, and the bus must outlive the
// Device.
type Device struct {
	bus  drivers.I2C
	addr uint16

	cal calibration

	// Fixed buffers to avoid per-call heap allocations.
	w   [2]byte
	r   [2]byte
	buf [6]byte
}

// New constructs a Device and brings the sensor into the configured state:
// ctrl_meas write, config write, then one calibration load. Any transport
// failure aborts construction; a Device is only valid when err is nil.
// Calibration is immutable afterwards.
func New(bus drivers.I2C, cfg Config) (*Device, error) {
	addr := cfg.Address
	if addr == 0 {
		addr = AddressDefault
	}
	d := &Device{bus: bus, addr: addr}
	if err := d.Configure(cfg.PressureOversampling, cfg.TemperatureOversampling, cfg.Mode); err != nil {
		return nil, err
	}
	if err := d.SetStandby(cfg.Standby, cfg.Filter); err != nil {
		return nil, err
	}
	if err := d.readCalibration(); err != nil {
		return nil, err
	}
	return d, nil
}

// Configure writes the ctrl_meas register:
// bits [7:5] osrs_t, [4:2] osrs_p, [1:0] mode.
func (d *Device) Configure(press, temp Oversampling, mode Mode) error {
	ctrl := byte(temp&0x7)<<5 | byte(press&0x7)<<2 | byte(mode&0x3)
	return d.writeRegister(regCtrlMeas, ctrl)
}

// SetStandby writes the config register: bits [7:5] standby interval,
// [4:2] IIR filter coefficient. Independent of Configure.
func (d *Device) SetStandby(standby StandbyTime, filter FilterCoeff) error {
	cfg := byte(standby&0x7)<<5 | byte(filter&0x7)<<2
	return d.writeRegister(regConfig, cfg)
}

// Reset triggers a power-on-reset. The device takes a couple of milliseconds
// to come back and reload its NVM; the caller must wait (poll IsCopyingData
// or sleep) before issuing measurement reads. No delay is performed here.
func (d *Device) Reset() error {
	return d.writeRegister(regReset, resetCode)
}

// ChipID reads the identification register. Expected values are the ChipID*
// constants; the driver does not enforce a match.
func (d *Device) ChipID() (byte, error) {
	return d.readRegister(regChipID)
}

// Connected reports whether a device answering with a known BMP280 chip ID
// is present on the bus.
func (d *Device) Connected() bool {
	id, err := d.ChipID()
	if err != nil {
		return false
	}
	return id == ChipID || id == ChipIDSample1 || id == ChipIDSample2
}

// Status is the raw status register with typed bit accessors.
type Status byte

// Measuring reports a conversion in progress (bit 3).
func (s Status) Measuring() bool { return s&statusMeasuring != 0 }

// UpdatingImage reports NVM data being copied to the image registers (bit 0),
// set briefly after power-on and reset.
func (s Status) UpdatingImage() bool { return s&statusImUpdate != 0 }

// ReadStatus reads the status register.
func (d *Device) ReadStatus() (Status, error) {
	v, err := d.readRegister(regStatus)
	return Status(v), err
}

// IsConverting reports whether a measurement conversion is running.
func (d *Device) IsConverting() (bool, error) {
	s, err := d.ReadStatus()
	return s.Measuring(), err
}

// IsCopyingData reports whether the device is still copying NVM calibration
// data into its image registers.
func (d *Device) IsCopyingData() (bool, error) {
	s, err := d.ReadStatus()
	return s.UpdatingImage(), err
}
