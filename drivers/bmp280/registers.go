// Package bmp280 provides constants for register addresses and bitfields used
// in the operation of the BMP280 barometric pressure/temperature sensor.
package bmp280

const (
	// 7-bit I2C addresses; SDO strap selects between them. The bus transport
	// applies the wire-level shift.
	AddressDefault = 0x76
	AddressAlt     = 0x77

	// Chip ID values. 0x58 is the production BMP280; 0x56/0x57 appear on
	// engineering samples.
	ChipID        = 0x58
	ChipIDSample1 = 0x56
	ChipIDSample2 = 0x57

	// --- Register sub-addresses ---

	regCalib    = 0x88 // R, 12 little-endian 16-bit words through 0x9F
	regChipID   = 0xD0 // R
	regReset    = 0xE0 // W, accepts resetCode only
	regStatus   = 0xF3 // R
	regCtrlMeas = 0xF4 // R/W (osrs_t, osrs_p, mode)
	regConfig   = 0xF5 // R/W (t_sb, filter)
	regPressMSB = 0xF7 // R, MSB/LSB/XLSB through 0xF9
	regTempMSB  = 0xFA // R, MSB/LSB/XLSB through 0xFC

	// Calibration word offsets, in device layout order.
	calibT1 = 0x88
	calibT2 = 0x8A
	calibT3 = 0x8C
	calibP1 = 0x8E
	calibP2 = 0x90
	calibP3 = 0x92
	calibP4 = 0x94
	calibP5 = 0x96
	calibP6 = 0x98
	calibP7 = 0x9A
	calibP8 = 0x9C
	calibP9 = 0x9E

	resetCode = 0xB6

	// Status register bits.
	statusMeasuring = 1 << 3 // conversion running
	statusImUpdate  = 1 << 0 // NVM data being copied to image registers
)

// Oversampling selects how many samples the sensor averages per conversion
// (3-bit codes for osrs_t and osrs_p).
type Oversampling uint8

const (
	SamplingOff Oversampling = iota // channel skipped
	Sampling1X
	Sampling2X
	Sampling4X
	Sampling8X
	Sampling16X
)

// Mode is the power mode in ctrl_meas bits [1:0].
type Mode uint8

const (
	ModeSleep  Mode = 0b00
	ModeForced Mode = 0b01
	ModeNormal Mode = 0b11
)

// StandbyTime codes the inactive period between normal-mode conversions
// (config bits [7:5]).
type StandbyTime uint8

const (
	Standby500us StandbyTime = iota
	Standby62ms // 62.5 ms
	Standby125ms
	Standby250ms
	Standby500ms
	Standby1000ms
	Standby2000ms
	Standby4000ms
)

// FilterCoeff codes the IIR filter setting (config bits [4:2]).
type FilterCoeff uint8

const (
	FilterOff FilterCoeff = iota
	Filter2X
	Filter4X
	Filter8X
	Filter16X
)

// Measurement defaults applied by DefaultConfig. The pressure oversampling
// default has moved between x1 and x4 in the field; override via Config if a
// deployment depends on a particular historical value.
const (
	DefaultTemperatureOversampling = Sampling1X
	DefaultPressureOversampling    = Sampling4X
	DefaultMode                    = ModeNormal
	DefaultStandby                 = Standby500us
	DefaultFilter                  = FilterOff
)
