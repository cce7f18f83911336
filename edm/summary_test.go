package edm

import "testing"

func TestSummarizeOneBasic(t *testing.T) {
	flight := DecodedFlight{
		Headers: []string{"DATE", "TIME", "HRS", "LAT"},
		Rows: [][]string{
			{"01/01/2026", "08:00:00", "100.0", "N42.30.00"},
			{"01/01/2026", "08:06:00", "100.1", "N42.31.00"},
			{"01/01/2026", "09:00:00", "101.0", "N42.32.00"},
		},
	}

	s := summarizeOne(7, flight)
	if s.Samples != 3 {
		t.Errorf("Samples = %d, want 3", s.Samples)
	}
	if s.TachStart != 100.0 || s.TachEnd != 101.0 {
		t.Errorf("TachStart/TachEnd = %v/%v, want 100/101", s.TachStart, s.TachEnd)
	}
	if s.TachDuration != 1.0 {
		t.Errorf("TachDuration = %v, want 1.0", s.TachDuration)
	}
	if s.HobbDuration != 1.0 {
		t.Errorf("HobbDuration = %v, want 1.0", s.HobbDuration)
	}
	if s.StartLat != "N42.30.00" || s.EndLat != "N42.32.00" {
		t.Errorf("StartLat/EndLat = %q/%q", s.StartLat, s.EndLat)
	}
}

func TestSummarizeOneHobbDurationCrossesMidnight(t *testing.T) {
	flight := DecodedFlight{
		Headers: []string{"DATE", "TIME"},
		Rows: [][]string{
			{"01/01/2026", "23:30:00"},
			{"01/02/2026", "00:30:00"},
		},
	}
	s := summarizeOne(1, flight)
	if s.HobbDuration != 1.0 {
		t.Errorf("HobbDuration = %v, want 1.0", s.HobbDuration)
	}
}

func TestSummarizeOneEmptyFlight(t *testing.T) {
	s := summarizeOne(1, DecodedFlight{Headers: []string{"DATE", "TIME"}})
	if s.Samples != 0 {
		t.Errorf("Samples = %d, want 0", s.Samples)
	}
}

func TestDecodeStatsTouch(t *testing.T) {
	var s DecodeStats
	s.touch(false)
	s.touch(true)
	if s.TotalRecords != 2 {
		t.Errorf("TotalRecords = %d, want 2", s.TotalRecords)
	}
	if s.RepeatRecords != 1 {
		t.Errorf("RepeatRecords = %d, want 1", s.RepeatRecords)
	}
}
