package edm

import "testing"

func TestFormatPackedDate(t *testing.T) {
	cases := []struct {
		packed int
		want   string
	}{
		// day=18, month=1, yearOffset=25 -> 2025
		{packed: 18 | (1 << 5) | (25 << 9), want: "01/18/2025"},
		// yearOffset=80 -> pre-2000 rollover
		{packed: 1 | (1 << 5) | (80 << 9), want: "01/01/1980"},
	}
	for _, tc := range cases {
		if got := formatPackedDate(tc.packed); got != tc.want {
			t.Errorf("formatPackedDate(%#x) = %q, want %q", tc.packed, got, tc.want)
		}
	}
}

func TestFormatPackedTime(t *testing.T) {
	// seconds field stores 2-second ticks: 15*2 = 30s
	packed := 15 | (42 << 5) | (9 << 11)
	if got := formatPackedTime(packed); got != "09:42:30" {
		t.Errorf("formatPackedTime(%#x) = %q, want 09:42:30", packed, got)
	}
}

func TestParsePreludeBasic(t *testing.T) {
	data := []byte{
		0x02, 0x2F, // id = 559
		0x00, 0x01, // cfgWord[0]
		0x00, 0x00, // cfgWord[1]
		0x00,       // fuel unit
		0xC8,       // horsepower
		0x00, 0x06, // interval = 6s
		0x12, 0x34, // date (arbitrary bits)
		0x56, 0x78, // time (arbitrary bits)
		0x00, // checksum
	}
	c := newFlightCursor(data, 0, len(data))
	profile := DeviceProfile{} // non-EDM-type: no cfgWord[2..4], no lat/lng
	entry := FlightDirectoryEntry{ID: 559}

	p, err := parsePrelude(c, profile, entry)
	if err != nil {
		t.Fatalf("parsePrelude: %v", err)
	}
	if p.ID != 559 {
		t.Errorf("ID = %d, want 559", p.ID)
	}
	if p.RecordInterval != 6 {
		t.Errorf("RecordInterval = %d, want 6", p.RecordInterval)
	}
	if p.RecStart != len(data) {
		t.Errorf("RecStart = %d, want %d", p.RecStart, len(data))
	}
}

func TestParsePreludeIDMismatch(t *testing.T) {
	data := []byte{0x00, 0x01}
	c := newFlightCursor(data, 0, len(data))
	_, err := parsePrelude(c, DeviceProfile{}, FlightDirectoryEntry{ID: 2})
	if err == nil {
		t.Fatal("expected an error on flight id mismatch")
	}
}
