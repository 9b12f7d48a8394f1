//go:build rp2040

// Hardware smoke test for a Pico wired to a BMP280 (SDA=GP4, SCL=GP5,
// console on UART0 GP0/GP1). Runs the bring-up sequence and a handful of
// measurement checks, reports over the UART and signals the result on the
// onboard LED: solid ON = all passed, slow blink = failure.
package main

import (
	"time"

	"machine"

	uartx "github.com/jangala-dev/tinygo-uartx/uartx"

	"barosense-go/drivers/bmp280"
	"barosense-go/x/fmtx"
	"barosense-go/x/mathx"
	"barosense-go/x/timex"
)

const (
	sdaPin = machine.GP4
	sclPin = machine.GP5
	txPin  = machine.GP0
	rxPin  = machine.GP1

	i2cHz    = 400_000
	consoleB = 115_200

	measureReads = 8
	measureHz    = 4
)

// conversionCycles maps an oversampling code to its sample count.
func conversionCycles(os bmp280.Oversampling) uint32 {
	if os == bmp280.SamplingOff {
		return 0
	}
	return 1 << (uint32(os) - 1)
}

// conversionWaitMs returns a worst-case conversion time for the configured
// oversampling, rounded up to whole milliseconds with one extra for margin.
func conversionWaitMs(cfg bmp280.Config) uint32 {
	us := 1250 +
		2300*conversionCycles(cfg.TemperatureOversampling) +
		2300*conversionCycles(cfg.PressureOversampling) + 575
	return mathx.CeilDiv(us, uint32(1000)) + 1
}

func logf(format string, a ...any) { fmtx.Printf(format, a...) }

var dev *bmp280.Device

func testChipID() bool {
	probe, err := bmp280.New(machine.I2C0, bmp280.DefaultConfig())
	if err != nil {
		logf("  construction: %v\n", err)
		return false
	}
	id, err := probe.ChipID()
	if err != nil {
		logf("  chip id read: %v\n", err)
		return false
	}
	logf("  chip id 0x%x\n", id)
	if !probe.Connected() {
		logf("  unknown chip id\n")
		return false
	}
	dev = probe
	return true
}

func testResetAndRecover() bool {
	if err := dev.Reset(); err != nil {
		logf("  reset write: %v\n", err)
		return false
	}
	// The part reloads its NVM after reset; wait for the image-update bit
	// to clear, bounded.
	deadline := timex.NowMs() + 100
	for {
		copying, err := dev.IsCopyingData()
		if err == nil && !copying {
			break
		}
		if timex.NowMs() > deadline {
			logf("  image update did not finish\n")
			return false
		}
		time.Sleep(2 * time.Millisecond)
	}
	// Reset dropped our settings; construct again.
	d, err := bmp280.New(machine.I2C0, bmp280.DefaultConfig())
	if err != nil {
		logf("  re-init after reset: %v\n", err)
		return false
	}
	dev = d
	return true
}

func testStatusSettles() bool {
	wait := conversionWaitMs(bmp280.DefaultConfig())
	deadline := timex.NowMs() + int64(4*wait)
	for {
		converting, err := dev.IsConverting()
		if err != nil {
			logf("  status read: %v\n", err)
			return false
		}
		if !converting {
			return true
		}
		if timex.NowMs() > deadline {
			logf("  conversion never settled\n")
			return false
		}
		time.Sleep(time.Duration(wait) * time.Millisecond)
	}
}

func testMeasurements() bool {
	period := time.Duration(timex.PeriodFromHz(measureHz))
	ok := true
	for i := 0; i < measureReads; i++ {
		m, err := dev.ReadBoth()
		if err != nil {
			logf("  read %d: %v\n", i, err)
			ok = false
			break
		}
		logf("  read %d: temp_cC=%d press_dhPa=%d\n", i, m.CentiCelsius, m.DeciHPa())
		// Sanity window: -40..85 C operating range, 300..1100 hPa.
		if m.CentiCelsius < -4000 || m.CentiCelsius > 8500 {
			logf("  temperature out of range\n")
			ok = false
		}
		if d := m.DeciHPa(); d < 3000 || d > 11000 {
			logf("  pressure out of range\n")
			ok = false
		}
		time.Sleep(period)
	}
	return ok
}

type testFn struct {
	name string
	fn   func() bool
}

func main() {
	// Console first so everything after is visible.
	_ = uartx.UART0.Configure(uartx.UARTConfig{
		BaudRate: consoleB,
		TX:       txPin,
		RX:       rxPin,
	})
	fmtx.DefaultOutput = uartx.UART0

	time.Sleep(250 * time.Millisecond)

	led := machine.LED
	led.Configure(machine.PinConfig{Mode: machine.PinOutput})
	led.High() // signal "running"

	sdaPin.Configure(machine.PinConfig{Mode: machine.PinI2C})
	sclPin.Configure(machine.PinConfig{Mode: machine.PinI2C})
	_ = machine.I2C0.Configure(machine.I2CConfig{
		SDA:       sdaPin,
		SCL:       sclPin,
		Frequency: i2cHz,
	})

	tests := []testFn{
		{"TestChipID", testChipID},
		{"TestResetAndRecover", testResetAndRecover},
		{"TestStatusSettles", testStatusSettles},
		{"TestMeasurements", testMeasurements},
	}

	passed, failed := 0, 0
	logf("== bmp280 self-test starting ==\n")
	for _, tc := range tests {
		ok := tc.fn()
		if ok {
			logf("[PASS] %s\n", tc.name)
			passed++
		} else {
			logf("[FAIL] %s\n", tc.name)
			failed++
			if dev == nil {
				break // nothing to run the rest against
			}
		}
		time.Sleep(10 * time.Millisecond)
	}
	logf("== done: %d passed, %d failed ==\n", passed, failed)

	// LED: solid ON if all passed, otherwise slow blink forever.
	if failed == 0 {
		for {
			led.High()
			time.Sleep(2 * time.Second)
		}
	} else {
		for {
			led.High()
			time.Sleep(250 * time.Millisecond)
			led.Low()
			time.Sleep(250 * time.Millisecond)
		}
	}
}
