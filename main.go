// Host demo: drives the bmp280 driver against a simulated part seeded with
// the datasheet calibration and one converted sample pair, and prints a few
// compensated readings. No hardware needed; see cmd/pico-baro-selftest for
// the on-target equivalent.
package main

import (
	"time"

	"barosense-go/drivers/bmp280"
	"barosense-go/simi2c"
	"barosense-go/x/fmtx"
	"barosense-go/x/timex"
)

// seedDatasheetPart loads the simulated device with the worked example from
// the datasheet: factory trim words at 0x88.. and raw samples 519888 / 415148
// in the data registers, which compensate to 25.08 °C and ~1006.5 hPa.
func seedDatasheetPart(bus *simi2c.Device) {
	trim := []uint16{
		27504, 26435, 64536, // dig_T1..T3 (-1000 as u16)
		36477, 54851, 3024, 2855, 140, 65529, // dig_P1..P6
		15500, 50936, 6000, // dig_P7..P9
	}
	for i, w := range trim {
		bus.PokeWordLE(0x88+byte(2*i), w)
	}
	bus.Poke(0xD0, bmp280.ChipID)
	bus.Poke(0xF7, 0x65, 0x5A, 0xC0) // pressure MSB/LSB/XLSB
	bus.Poke(0xFA, 0x7E, 0xED, 0x00) // temperature MSB/LSB/XLSB
}

// fixed prints a fixed-point value with the given decimal scale, keeping the
// demo off float formatting so it behaves identically on MCU builds.
func fixed(v int64, scale int64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	whole, frac := v/scale, v%scale
	s := fmtx.Sprintf("%d", whole)
	if neg {
		s = "-" + s
	}
	digits := 0
	for p := scale; p > 1; p /= 10 {
		digits++
	}
	f := fmtx.Sprintf("%d", frac)
	for len(f) < digits {
		f = "0" + f
	}
	return s + "." + f
}

func main() {
	bus := simi2c.New(bmp280.AddressDefault)
	seedDatasheetPart(bus)

	dev, err := bmp280.New(bus, bmp280.DefaultConfig())
	if err != nil {
		fmtx.Printf("bmp280 init failed: %v\n", err)
		return
	}

	snap := dev.Snapshot()
	fmtx.Printf("chip id 0x%x ctrl_meas 0x%x config 0x%x\n",
		snap.ChipID, snap.CtrlMeas, snap.Config)

	tick := time.NewTicker(1 * time.Second)
	defer tick.Stop()

	for i := 0; i < 5; i++ {
		<-tick.C
		m, err := dev.ReadBoth()
		if err != nil {
			fmtx.Printf("read failed: %v\n", err)
			continue
		}
		fmtx.Printf("[%d] temp %s C  press %s hPa\n",
			timex.NowMs(),
			fixed(int64(m.CentiCelsius), 100),
			fixed(int64(m.DeciHPa()), 10))
	}
}
