package bmp280

// Snapshot collects the identification and configuration registers for
// diagnostics. Zero values remain where individual reads fail.
type Snapshot struct {
	ChipID   byte
	Status   Status
	CtrlMeas byte
	Config   byte
}

func (d *Device) Snapshot() Snapshot {
	var s Snapshot
	d.SnapshotInto(&s)
	return s
}

func (d *Device) SnapshotInto(out *Snapshot) {
	var s Snapshot
	if v, e := d.ChipID(); e == nil {
		s.ChipID = v
	}
	if v, e := d.ReadStatus(); e == nil {
		s.Status = v
	}
	if v, e := d.readRegister(regCtrlMeas); e == nil {
		s.CtrlMeas = v
	}
	if v, e := d.readRegister(regConfig); e == nil {
		s.Config = v
	}
	*out = s
}
