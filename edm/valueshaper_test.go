package edm

import "testing"

func TestShapeChannelAccumulatesRunningTotal(t *testing.T) {
	s := SensorDescriptor{Name: "OAT", Lo: byteAddr{1, 4}, Hi: noByte, Kind: kindInteger}
	st := &channelState{runningTotal: 70}
	var grid cellGrid
	grid.cells[1][4] = cell{value: 5, valid: true}

	interval, orig := 6, 6
	got := shapeChannel(s, st, &grid, false, &interval, &orig)
	if got != " 75" {
		t.Errorf("shapeChannel = %q, want \" 75\"", got)
	}
}

func TestShapeChannelNegativeDelta(t *testing.T) {
	s := SensorDescriptor{Name: "OAT", Lo: byteAddr{1, 4}, Hi: noByte, Kind: kindInteger}
	st := &channelState{runningTotal: 70}
	var grid cellGrid
	grid.cells[1][4] = cell{value: 5, sign: true, valid: true}

	interval, orig := 6, 6
	got := shapeChannel(s, st, &grid, false, &interval, &orig)
	if got != " 65" {
		t.Errorf("shapeChannel = %q, want \" 65\"", got)
	}
}

func TestShapeChannelNAWhenNothingValid(t *testing.T) {
	s := SensorDescriptor{Name: "OAT", Lo: byteAddr{1, 4}, Hi: noByte, Kind: kindInteger}
	st := &channelState{runningTotal: 70}
	var grid cellGrid // all-zero: cell invalid

	interval, orig := 6, 6
	got := shapeChannel(s, st, &grid, false, &interval, &orig)
	if got != "NA" {
		t.Errorf("shapeChannel = %q, want NA", got)
	}
}

func TestShapeChannelFixed1(t *testing.T) {
	s := SensorDescriptor{Name: "BAT", Lo: byteAddr{2, 6}, Hi: noByte, Scale: 10, Kind: kindFixed1}
	st := &channelState{runningTotal: 0}
	var grid cellGrid
	grid.cells[2][6] = cell{value: 124, valid: true}

	interval, orig := 6, 6
	got := shapeChannel(s, st, &grid, false, &interval, &orig)
	if got != "12.4" {
		t.Errorf("shapeChannel = %q, want 12.4", got)
	}
}

func TestMarkGlyphIntervalSideEffects(t *testing.T) {
	interval, orig := 6, 6

	if got := markGlyph(2, &interval, &orig); got != "[" || interval != 1 {
		t.Errorf("markGlyph(2) = (%q, interval=%d), want ([, 1)", got, interval)
	}
	if got := markGlyph(3, &interval, &orig); got != "]" || interval != orig {
		t.Errorf("markGlyph(3) = (%q, interval=%d), want (], %d)", got, interval, orig)
	}
	if got := markGlyph(0, &interval, &orig); got != "" {
		t.Errorf("markGlyph(0) = %q, want empty", got)
	}
}

func TestFormatCoordinate(t *testing.T) {
	// 42 deg 30.00 min north: total = 42*6000 + 3000 = 255000
	got := formatCoordinate("LAT", 255000)
	if got != "N42.30.00" {
		t.Errorf("formatCoordinate = %q, want N42.30.00", got)
	}
	got = formatCoordinate("LNG", -71*6000)
	if got != "W071.00.00" {
		t.Errorf("formatCoordinate = %q, want W071.00.00", got)
	}
}

func TestShapeDIF(t *testing.T) {
	e1 := &channelState{runningTotal: 1400, validLo: true}
	e2 := &channelState{runningTotal: 1450, validLo: true}
	e3 := &channelState{validLo: false}

	got := shapeDIF([]*channelState{e1, e2, e3})
	if got != " 50" {
		t.Errorf("shapeDIF = %q, want \" 50\"", got)
	}
}

func TestShapeDIFAllInvalidIsNA(t *testing.T) {
	e1 := &channelState{validLo: false}
	got := shapeDIF([]*channelState{e1})
	if got != "NA" {
		t.Errorf("shapeDIF = %q, want NA", got)
	}
}
