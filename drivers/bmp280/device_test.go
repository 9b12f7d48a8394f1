package bmp280

import (
	"errors"
	"testing"

	"barosense-go/simi2c"
)

func TestConfigureControlByte(t *testing.T) {
	d, bus := newDatasheetDevice(t)

	// Boundary oversampling codes (0, 5 and the out-of-range 7 the field
	// can physically hold) against every mode.
	for _, p := range []Oversampling{0, 5, 7} {
		for _, tos := range []Oversampling{0, 5, 7} {
			for _, m := range []Mode{ModeSleep, ModeForced, ModeNormal} {
				bus.ClearLog()
				if err := d.Configure(p, tos, m); err != nil {
					t.Fatalf("Configure(%d,%d,%d): %v", p, tos, m, err)
				}
				want := byte(tos)<<5 | byte(p)<<2 | byte(m)
				if len(bus.Log) != 1 {
					t.Fatalf("Configure issued %d transactions, want 1", len(bus.Log))
				}
				w := bus.Log[0].W
				if len(w) != 2 || w[0] != regCtrlMeas || w[1] != want {
					t.Fatalf("Configure(%d,%d,%d) wrote %#v, want [%#x %#x]",
						p, tos, m, w, regCtrlMeas, want)
				}
			}
		}
	}
}

func TestSetStandbyByte(t *testing.T) {
	d, bus := newDatasheetDevice(t)

	if err := d.SetStandby(Standby4000ms, Filter16X); err != nil {
		t.Fatalf("SetStandby: %v", err)
	}
	want := byte(Standby4000ms)<<5 | byte(Filter16X)<<2
	w := bus.Log[len(bus.Log)-1].W
	if len(w) != 2 || w[0] != regConfig || w[1] != want {
		t.Fatalf("SetStandby wrote %#v, want [%#x %#x]", w, regConfig, want)
	}
}

func TestResetWritesMagicByteOnly(t *testing.T) {
	d, bus := newDatasheetDevice(t)

	if err := d.Reset(); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if len(bus.Log) != 1 {
		t.Fatalf("Reset issued %d transactions, want 1", len(bus.Log))
	}
	w := bus.Log[0].W
	if len(w) != 2 || w[0] != regReset || w[1] != resetCode {
		t.Fatalf("Reset wrote %#v, want [%#x %#x]", w, regReset, resetCode)
	}
}

func TestStatusBitsAreDistinct(t *testing.T) {
	d, bus := newDatasheetDevice(t)

	for _, c := range []struct {
		status     byte
		converting bool
		copying    bool
	}{
		{0x00, false, false},
		{0x08, true, false},
		{0x01, false, true},
		{0x09, true, true},
	} {
		bus.Poke(regStatus, c.status)
		conv, err := d.IsConverting()
		if err != nil {
			t.Fatalf("IsConverting: %v", err)
		}
		copying, err := d.IsCopyingData()
		if err != nil {
			t.Fatalf("IsCopyingData: %v", err)
		}
		if conv != c.converting || copying != c.copying {
			t.Fatalf("status %#x: converting=%t copying=%t, want %t %t",
				c.status, conv, copying, c.converting, c.copying)
		}
	}
}

func TestChipIDAndConnected(t *testing.T) {
	d, bus := newDatasheetDevice(t)

	id, err := d.ChipID()
	if err != nil {
		t.Fatalf("ChipID: %v", err)
	}
	if id != ChipID {
		t.Fatalf("ChipID = %#x, want %#x", id, ChipID)
	}
	if !d.Connected() {
		t.Fatal("Connected = false with production chip id")
	}

	bus.Poke(regChipID, ChipIDSample1)
	if !d.Connected() {
		t.Fatal("Connected = false with sample chip id")
	}

	bus.Poke(regChipID, 0x60) // a BME280, not ours
	if d.Connected() {
		t.Fatal("Connected = true with foreign chip id")
	}
}

func TestNewPropagatesTransportError(t *testing.T) {
	bus := simi2c.New(AddressDefault)
	boom := errors.New("bus timeout")
	bus.Fail = boom

	if _, err := New(bus, DefaultConfig()); !errors.Is(err, boom) {
		t.Fatalf("New error = %v, want %v", err, boom)
	}
}

func TestNewDefaultAddress(t *testing.T) {
	bus := simi2c.New(AddressDefault)
	seedDatasheetCalibration(bus)

	// Zero Address in the config must land on AddressDefault.
	if _, err := New(bus, Config{Mode: ModeNormal}); err != nil {
		t.Fatalf("New with zero address: %v", err)
	}

	// A device strapped to the alternate address must be reached there.
	alt := simi2c.New(AddressAlt)
	seedDatasheetCalibration(alt)
	if _, err := New(alt, Config{Address: AddressAlt}); err != nil {
		t.Fatalf("New at alternate address: %v", err)
	}
	if _, err := New(alt, Config{}); !errors.Is(err, simi2c.ErrNoDevice) {
		t.Fatal("default address reached a device strapped to the alternate one")
	}
}

func TestSnapshot(t *testing.T) {
	d, bus := newDatasheetDevice(t)
	bus.Poke(regStatus, 0x08)

	s := d.Snapshot()
	if s.ChipID != ChipID {
		t.Fatalf("Snapshot.ChipID = %#x, want %#x", s.ChipID, ChipID)
	}
	if !s.Status.Measuring() || s.Status.UpdatingImage() {
		t.Fatalf("Snapshot.Status = %#x", byte(s.Status))
	}
	wantCtrl := byte(DefaultTemperatureOversampling)<<5 |
		byte(DefaultPressureOversampling)<<2 | byte(DefaultMode)
	if s.CtrlMeas != wantCtrl {
		t.Fatalf("Snapshot.CtrlMeas = %#x, want %#x", s.CtrlMeas, wantCtrl)
	}
}
