package edm

// valueKind tags how a sensor's assembled integer becomes a formatted
// value, replacing the scattered "if name == 'LAT'" conditionals of the
// source reader with a small tagged-variant table (spec.md §9).
type valueKind int

const (
	kindInteger valueKind = iota
	kindFixed1            // one decimal place, dot separator
	kindCoordinate        // LAT/LNG degrees.minutes.hundredths string
	kindMark              // MARK control glyph + interval side effect
	kindComputedDIF       // max(E*) - min(E*) over the current record only
)

// byteAddr is a (byteGroup, bitInGroup) source address for one data byte
// within a record. A sentinel of (-1, -1) means "no source byte".
type byteAddr struct {
	Group int
	Bit   int
}

var noByte = byteAddr{-1, -1}

func (a byteAddr) present() bool { return a.Group >= 0 && a.Bit >= 0 }

// SensorDescriptor describes one possible channel, per spec.md §4.D.
type SensorDescriptor struct {
	Name      string
	Header    string
	CfgWord   int // index into FlightPrelude.CfgWord[0..4]
	CfgBit    int // bit 0..15 within that config word
	Scale     int // 1 (integer) or 10 (one-decimal fixed point)
	Lo        byteAddr
	Hi        byteAddr
	Kind      valueKind
	fuelScale bool // true if Scale must be resolved from the device's fuel unit
}

// configured reports whether this sensor is enabled for the given prelude.
func (s SensorDescriptor) configured(cfg [5]uint16) bool {
	return cfg[s.CfgWord]&(1<<uint(s.CfgBit)) != 0
}

// sensorTable900 is the static EDM900/930 firmware>=107 channel table, in
// insertion order (spec.md §4.D). Bit addresses are assigned one slot per
// channel; the handful of channels placed in byte-groups 5/6/7/9/10/12/13/14
// exercise the §4.E scale-selection table (a high-order byte reconstructed
// via a ×256 group, fractional psi/volts channels needing the documented
// ÷2/÷16/×32 sign-mask adjustments).
var sensorTable900 = []SensorDescriptor{
	{Name: "E1", Header: "E1", CfgWord: 0, CfgBit: 0, Scale: 1, Lo: byteAddr{0, 0}, Hi: noByte, Kind: kindInteger},
	{Name: "E2", Header: "E2", CfgWord: 0, CfgBit: 1, Scale: 1, Lo: byteAddr{0, 1}, Hi: noByte, Kind: kindInteger},
	{Name: "E3", Header: "E3", CfgWord: 0, CfgBit: 2, Scale: 1, Lo: byteAddr{0, 2}, Hi: noByte, Kind: kindInteger},
	{Name: "E4", Header: "E4", CfgWord: 0, CfgBit: 3, Scale: 1, Lo: byteAddr{0, 3}, Hi: noByte, Kind: kindInteger},
	{Name: "C1", Header: "C1", CfgWord: 0, CfgBit: 4, Scale: 1, Lo: byteAddr{1, 0}, Hi: noByte, Kind: kindInteger},
	{Name: "C2", Header: "C2", CfgWord: 0, CfgBit: 5, Scale: 1, Lo: byteAddr{1, 1}, Hi: noByte, Kind: kindInteger},
	{Name: "C3", Header: "C3", CfgWord: 0, CfgBit: 6, Scale: 1, Lo: byteAddr{1, 2}, Hi: noByte, Kind: kindInteger},
	{Name: "C4", Header: "C4", CfgWord: 0, CfgBit: 7, Scale: 1, Lo: byteAddr{1, 3}, Hi: noByte, Kind: kindInteger},
	{Name: "OAT", Header: "OAT", CfgWord: 0, CfgBit: 8, Scale: 1, Lo: byteAddr{1, 4}, Hi: noByte, Kind: kindInteger},
	{Name: "DIF", Header: "DIF", CfgWord: 0, CfgBit: 9, Scale: 1, Lo: noByte, Hi: noByte, Kind: kindComputedDIF},
	{Name: "CLD", Header: "CLD", CfgWord: 0, CfgBit: 10, Scale: 1, Lo: byteAddr{13, 4}, Hi: noByte, Kind: kindInteger},
	{Name: "MAP", Header: "MAP", CfgWord: 0, CfgBit: 11, Scale: 10, Lo: byteAddr{2, 0}, Hi: noByte, Kind: kindFixed1},
	{Name: "RPM", Header: "RPM", CfgWord: 0, CfgBit: 12, Scale: 1, Lo: byteAddr{2, 1}, Hi: byteAddr{6, 0}, Kind: kindInteger},
	{Name: "HP", Header: "HP", CfgWord: 0, CfgBit: 13, Scale: 1, Lo: byteAddr{2, 2}, Hi: noByte, Kind: kindInteger},
	{Name: "FF", Header: "FF", CfgWord: 0, CfgBit: 14, Scale: 0, Lo: byteAddr{2, 3}, Hi: noByte, Kind: kindFixed1, fuelScale: true},
	{Name: "FF2", Header: "FF2", CfgWord: 0, CfgBit: 15, Scale: 0, Lo: byteAddr{2, 4}, Hi: noByte, Kind: kindFixed1, fuelScale: true},
	{Name: "FP", Header: "FP", CfgWord: 1, CfgBit: 0, Scale: 10, Lo: byteAddr{2, 5}, Hi: noByte, Kind: kindFixed1},
	{Name: "OILP", Header: "OILP", CfgWord: 1, CfgBit: 1, Scale: 1, Lo: byteAddr{10, 1}, Hi: noByte, Kind: kindInteger},
	{Name: "BAT", Header: "BAT", CfgWord: 1, CfgBit: 2, Scale: 10, Lo: byteAddr{2, 6}, Hi: noByte, Kind: kindFixed1},
	{Name: "AMP", Header: "AMP", CfgWord: 1, CfgBit: 3, Scale: 1, Lo: byteAddr{2, 7}, Hi: noByte, Kind: kindInteger},
	{Name: "OILT", Header: "OILT", CfgWord: 1, CfgBit: 4, Scale: 1, Lo: byteAddr{3, 1}, Hi: noByte, Kind: kindInteger},
	{Name: "USD", Header: "USD", CfgWord: 1, CfgBit: 5, Scale: 0, Lo: byteAddr{12, 5}, Hi: noByte, Kind: kindFixed1, fuelScale: true},
	{Name: "USD2", Header: "USD2", CfgWord: 1, CfgBit: 6, Scale: 0, Lo: byteAddr{14, 5}, Hi: noByte, Kind: kindFixed1, fuelScale: true},
	{Name: "RFL", Header: "RFL", CfgWord: 1, CfgBit: 7, Scale: 0, Lo: byteAddr{14, 6}, Hi: noByte, Kind: kindFixed1, fuelScale: true},
	{Name: "LFL", Header: "LFL", CfgWord: 1, CfgBit: 8, Scale: 0, Lo: byteAddr{5, 2}, Hi: noByte, Kind: kindFixed1, fuelScale: true},
	{Name: "HRS", Header: "HRS", CfgWord: 1, CfgBit: 9, Scale: 10, Lo: byteAddr{1, 5}, Hi: byteAddr{9, 7}, Kind: kindFixed1},
	{Name: "SPD", Header: "SPD", CfgWord: 1, CfgBit: 10, Scale: 1, Lo: byteAddr{1, 6}, Hi: noByte, Kind: kindInteger},
	{Name: "ALT", Header: "ALT", CfgWord: 1, CfgBit: 11, Scale: 1, Lo: byteAddr{1, 7}, Hi: noByte, Kind: kindInteger},
	{Name: "LAT", Header: "LAT", CfgWord: 1, CfgBit: 12, Scale: 1, Lo: byteAddr{3, 0}, Hi: byteAddr{7, 0}, Kind: kindCoordinate},
	{Name: "LNG", Header: "LNG", CfgWord: 1, CfgBit: 13, Scale: 1, Lo: byteAddr{4, 0}, Hi: byteAddr{7, 1}, Kind: kindCoordinate},
	{Name: "MARK", Header: "MARK", CfgWord: 1, CfgBit: 14, Scale: 1, Lo: byteAddr{4, 1}, Hi: noByte, Kind: kindMark},
}

// resolveSensorTable returns the channel table for a device profile,
// resolving the fuel-channel scale factor per spec.md §4.D. Unknown
// models produce ErrUnknownModel rather than guessed output (Non-goal:
// no cross-model heuristic inference).
func resolveSensorTable(profile DeviceProfile) ([]SensorDescriptor, error) {
	if !profile.EDMType || profile.Model < 900 {
		return nil, ErrUnknownModel
	}

	fuelScale := 10
	if profile.FuelUnit != FuelGallon {
		fuelScale = 1
	}

	table := make([]SensorDescriptor, len(sensorTable900))
	copy(table, sensorTable900)
	for i := range table {
		if table[i].fuelScale {
			table[i].Scale = fuelScale
		}
	}
	return table, nil
}
