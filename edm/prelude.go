package edm

import (
	"fmt"
	"time"
)

// parsePrelude reads the fixed per-flight header, per spec.md §4.C. c must
// be positioned at the flight's directory Start offset.
func parsePrelude(c *cursor, profile DeviceProfile, entry FlightDirectoryEntry) (FlightPrelude, error) {
	var p FlightPrelude

	id := c.word()
	if id < 0 || uint16(id) != entry.ID {
		return p, &DecodeError{FlightID: entry.ID, Offset: c.offset(), Reason: "flight id mismatch in prelude", Err: ErrMalformedMetadata}
	}
	p.ID = entry.ID

	p.CfgWord[0] = uint16(max0(c.word()))
	p.CfgWord[1] = uint16(max0(c.word()))

	if profile.EDMType {
		p.CfgWord[2] = uint16(max0(c.word()))
		p.CfgWord[3] = uint16(max0(c.word()))
		p.CfgWord[4] = uint16(max0(c.word()))

		if profile.Model == 900 && profile.Build >= 1000 && p.CfgWord[4]&0x78 != 0 {
			if lat, ok := c.long(); ok {
				p.StartLat = optInt32{Value: lat, Valid: true}
			}
			if lng, ok := c.long(); ok {
				p.StartLng = optInt32{Value: lng, Valid: true}
			}
		}
	}

	p.FuelUnit = uint8(max0(c.byte()))
	p.Horsepower = uint8(max0(c.byte()))

	interval := c.word()
	if interval < 0 {
		interval = 0
	}
	p.RecordInterval = interval
	p.OriginalInterval = interval

	datePacked := c.word()
	p.Date = formatPackedDate(datePacked)

	timePacked := c.word()
	p.Time = formatPackedTime(timePacked)

	c.byte() // checksum, consumed but not verified here (spec.md §7)

	p.RecStart = c.offset()
	p.StartClock = parseDateTime(p.Date, p.Time)

	return p, nil
}

func max0(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

// formatPackedDate unpacks day/month/year bitfields (spec.md §4.C step 6).
func formatPackedDate(packed int) string {
	if packed < 0 {
		packed = 0
	}
	day := packed & 0x1F
	month := (packed >> 5) & 0x0F
	yearOffset := (packed >> 9) & 0x7F

	year := 2000 + yearOffset
	if yearOffset >= 75 {
		year = 1900 + yearOffset
	}

	return fmt.Sprintf("%02d/%02d/%04d", month, day, year)
}

// formatPackedTime unpacks seconds/minutes/hours bitfields (step 7).
func formatPackedTime(packed int) string {
	if packed < 0 {
		packed = 0
	}
	seconds := (packed & 0x1F) * 2
	minutes := (packed >> 5) & 0x3F
	hours := (packed >> 11) & 0x1F

	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}

func parseDateTime(date, timeStr string) time.Time {
	t, err := time.Parse("01/02/2006 15:04:05", date+" "+timeStr)
	if err != nil {
		return time.Time{}
	}
	return t
}
