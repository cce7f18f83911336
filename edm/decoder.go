package edm

import (
	"time"

	"github.com/aijayadams/jpi/encoding"
)

// Decoder decodes a single fully materialized .JPI byte buffer. It is not
// goroutine-safe (mutable cursor and per-channel state); callers needing
// concurrency construct one Decoder per file (spec.md §5).
type Decoder struct {
	data    []byte
	profile DeviceProfile
	dir     []FlightDirectoryEntry
	sensors []SensorDescriptor

	strict bool
	stats  DecodeStats

	cur *flightState
}

// flightState is the mutable state of the currently open flight.
type flightState struct {
	entry    FlightDirectoryEntry
	prelude  FlightPrelude
	cursor   *cursor
	active   []SensorDescriptor
	channels map[string]*channelState
	egt      []string // names of active E1..E4 channels, for DIF

	clock            time.Time
	recordInterval   int
	originalInterval int
	recordIndex      int
	pendingRepeats   int
}

// NewDecoder creates an empty decoder; call ParseFile before anything else.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// WithStrictMode enables checksum verification (spec.md §9 Open Question 1).
func (d *Decoder) WithStrictMode(strict bool) *Decoder {
	d.strict = strict
	return d
}

// ParseFile populates the directory and device profile from a fully
// materialized file buffer (spec.md §6).
func (d *Decoder) ParseFile(data []byte) error {
	profile, dir, err := scanMetadata(data)
	if err != nil {
		return err
	}
	recoverFlightOffsets(data, dir)

	sensors, err := resolveSensorTable(profile)
	if err != nil {
		return err
	}

	d.data = data
	d.profile = profile
	d.dir = dir
	d.sensors = sensors
	d.cur = nil
	return nil
}

// Profile returns the parsed device profile.
func (d *Decoder) Profile() DeviceProfile { return d.profile }

// FlightListing is one entry of listFlights()'s result (spec.md §6).
type FlightListing struct {
	ID       uint16
	Size     int
	Start    int
	Date     string
	Time     string
	Interval int
}

// ListFlights returns the flight directory with each entry's prelude
// summary resolved (spec.md §6).
func (d *Decoder) ListFlights() ([]FlightListing, error) {
	out := make([]FlightListing, 0, len(d.dir))
	for _, entry := range d.dir {
		if !entry.Found {
			continue
		}
		c := newFlightCursor(d.data, entry.Start, entry.SizeBytes)
		prelude, err := parsePrelude(c, d.profile, entry)
		if err != nil {
			continue
		}
		out = append(out, FlightListing{
			ID:       entry.ID,
			Size:     entry.SizeBytes,
			Start:    entry.Start,
			Date:     prelude.Date,
			Time:     prelude.Time,
			Interval: prelude.RecordInterval,
		})
	}
	return out, nil
}

func (d *Decoder) findFlight(id uint16) (FlightDirectoryEntry, bool) {
	for _, e := range d.dir {
		if e.ID == id {
			return e, e.Found
		}
	}
	return FlightDirectoryEntry{}, false
}

// OpenFlight resets per-flight state and returns the output header row
// (DATE, TIME, then one token per configured sensor), per spec.md §6.
func (d *Decoder) OpenFlight(id uint16) ([]string, error) {
	entry, found := d.findFlight(id)
	if !found {
		return nil, &DecodeError{FlightID: id, Reason: "flight absent or unresolved", Err: ErrFlightNotFound}
	}

	c := newFlightCursor(d.data, entry.Start, entry.SizeBytes)
	prelude, err := parsePrelude(c, d.profile, entry)
	if err != nil {
		return nil, err
	}

	var active []SensorDescriptor
	var egt []string
	channels := make(map[string]*channelState)
	for _, s := range d.sensors {
		if !s.configured(prelude.CfgWord) {
			continue
		}
		active = append(active, s)
		if s.Kind == kindComputedDIF {
			continue
		}
		st := &channelState{runningTotal: 240}
		switch s.Name {
		case "HP":
			st.runningTotal = 0
		case "LAT":
			if prelude.StartLat.Valid {
				st.runningTotal = float64(prelude.StartLat.Value)
			} else {
				st.runningTotal = 0
			}
		case "LNG":
			if prelude.StartLng.Valid {
				st.runningTotal = float64(prelude.StartLng.Value)
			} else {
				st.runningTotal = 0
			}
		}
		channels[s.Name] = st
		if s.Name == "E1" || s.Name == "E2" || s.Name == "E3" || s.Name == "E4" {
			egt = append(egt, s.Name)
		}
	}

	state := &flightState{
		entry:            entry,
		prelude:          prelude,
		cursor:           c,
		active:           active,
		channels:         channels,
		egt:              egt,
		clock:            prelude.StartClock,
		recordInterval:   prelude.RecordInterval,
		originalInterval: prelude.OriginalInterval,
	}
	c.off = prelude.RecStart
	d.cur = state
	d.stats = DecodeStats{}

	headers := make([]string, 0, len(active)+2)
	headers = append(headers, "DATE", "TIME")
	for _, s := range active {
		headers = append(headers, s.Header)
	}
	return headers, nil
}

// CurrentInterval returns the flight's current record interval in seconds,
// reflecting any MARK-driven mutation (spec.md §4.F).
func (d *Decoder) CurrentInterval() int {
	if d.cur == nil {
		return 0
	}
	return d.cur.recordInterval
}

// ReadRecord decodes the next physical or repeat record and returns a
// formatted CSV row beginning with dateTimeString. ok is false at end of
// stream (spec.md §6).
func (d *Decoder) ReadRecord(dateTimeString string) (row string, ok bool, err error) {
	cells, _, ok, err := d.readRecordCells()
	if err != nil || !ok {
		return "", ok, err
	}
	return joinRow(dateTimeString, cells), true, nil
}

// joinRow assembles one CSV line from a pooled buffer, so the record-at-a-time
// ReadRecord path reuses its row buffer instead of allocating one per record.
// DecodeFlight does not go through joinRow; it keeps each row as cells.
func joinRow(dateTimeString string, cells []string) string {
	size := len(dateTimeString)
	for _, c := range cells {
		size += 1 + len(c)
	}

	buf := encoding.GetBuffer(size)
	defer func() { encoding.PutBuffer(buf) }()

	buf = append(buf, dateTimeString...)
	for _, c := range cells {
		buf = append(buf, ',')
		buf = append(buf, c...)
	}
	return string(buf)
}

// readRecordCells decodes the next physical or repeat record into one
// formatted cell per active sensor, without the leading date/time columns.
// isRepeat reports whether this record was a pure mult/repeat marker
// (spec.md §4.G step 2 needs this distinction, not an all-NA heuristic).
func (d *Decoder) readRecordCells() (cells []string, isRepeat bool, ok bool, err error) {
	if d.cur == nil {
		return nil, false, false, ErrNoFlightOpen
	}
	st := d.cur

	isRepeat, grid, rerr := d.decodeOnePhysicalRecord(st)
	if rerr != nil {
		if rerr == errEndOfStream {
			return nil, false, false, nil
		}
		return nil, false, false, rerr
	}

	cells = make([]string, len(st.active))
	for i, s := range st.active {
		switch s.Kind {
		case kindComputedDIF:
			states := make([]*channelState, 0, len(st.egt))
			for _, name := range st.egt {
				states = append(states, st.channels[name])
			}
			cells[i] = shapeDIF(states)
		default:
			chState := st.channels[s.Name]
			cells[i] = shapeChannel(s, chState, &grid, st.recordIndex == 0, &st.recordInterval, &st.originalInterval)
		}
	}

	st.recordIndex++
	d.stats.touch(isRepeat)

	return cells, isRepeat, true, nil
}

// decodeOnePhysicalRecord reads one record's worth of bytes and reports
// whether it is a pure repeat marker (spec.md §4.E steps 1-6).
func (d *Decoder) decodeOnePhysicalRecord(st *flightState) (isRepeat bool, grid cellGrid, err error) {
	if st.pendingRepeats > 0 {
		st.pendingRepeats--
		return true, cellGrid{}, nil
	}

	c := st.cursor
	recordStart := c.offset()

	var flg0, flg1 int
	if d.profile.EDMType {
		flg0 = c.word()
		flg1 = c.word()
	} else {
		flg0 = c.byte()
		flg1 = c.byte()
	}
	if flg0 < 0 || flg1 < 0 || flg0 != flg1 {
		return false, cellGrid{}, errEndOfStream
	}

	mult := c.byte()
	if mult < 0 {
		return false, cellGrid{}, errEndOfStream
	}

	if mult != 0 {
		st.pendingRepeats = mult - 1
		preChecksum := c.offset()
		cs := c.byte()
		if cs < 0 {
			return false, cellGrid{}, errEndOfStream
		}
		if d.strict {
			if err := verifyChecksum(d.profile.Checksum, c.data[recordStart:preChecksum], cs); err != nil {
				return false, cellGrid{}, &DecodeError{FlightID: st.entry.ID, Offset: preChecksum, Reason: "checksum mismatch", Err: err}
			}
		}
		return true, cellGrid{}, nil
	}

	var control [16]int
	var hasControl [16]bool
	for g := 0; g < 16; g++ {
		if flg0&(1<<uint(g)) != 0 {
			v := c.byte()
			if v < 0 {
				return false, cellGrid{}, errEndOfStream
			}
			control[g] = v
			hasControl[g] = true
		}
	}

	var sign [16]int
	for g := 0; g < 16; g++ {
		if g == 6 || g == 7 {
			continue
		}
		if flg0&(1<<uint(g)) != 0 {
			v := c.byte()
			if v < 0 {
				return false, cellGrid{}, errEndOfStream
			}
			sign[g] = v
		}
	}

	var grd cellGrid
	for g := 0; g < 16; g++ {
		if !hasControl[g] {
			continue
		}
		cb := control[g]
		for b := 0; b < 8; b++ {
			if cb&(1<<uint(b)) == 0 {
				continue
			}
			scale, mask := scaleAndMask(g, b)
			sg := signGroupFor(g)
			v := c.byte()
			if v < 0 {
				return false, cellGrid{}, errEndOfStream
			}
			grd.cells[g][b] = cell{
				value: v * scale,
				sign:  sign[sg]&int(mask) != 0,
				valid: v != 0,
			}
		}
	}

	preChecksum := c.offset()
	cs := c.byte()
	if cs < 0 {
		return false, cellGrid{}, errEndOfStream
	}
	if d.strict {
		if err := verifyChecksum(d.profile.Checksum, c.data[recordStart:preChecksum], cs); err != nil {
			return false, cellGrid{}, &DecodeError{FlightID: st.entry.ID, Offset: preChecksum, Reason: "checksum mismatch", Err: err}
		}
	}

	return false, grd, nil
}

// scaleAndMask implements the §4.E scale-selection table.
func scaleAndMask(g, b int) (scale int, mask byte) {
	base := byte(1) << uint(b)
	switch {
	case g == 5 && (b == 2 || b == 4):
		return 256, base / 2
	case g == 6 || g == 7:
		return 256, base
	case g == 10 && (b == 1 || b == 2):
		return 256, base * 32
	case (g == 9 || g == 12) && (b == 4 || b == 5):
		return 256, base / 16
	case (g == 9 || g == 12) && b == 7:
		return 256, base
	case (g == 13 || g == 14) && (b == 4 || b == 5 || b == 6):
		return 256, base / 16
	default:
		return 1, base
	}
}

// signGroupFor implements the §4.E sign-source rule: group 6 uses group 0's
// sign byte, group 7 uses group 3's, all others use their own.
func signGroupFor(g int) int {
	switch g {
	case 6:
		return 0
	case 7:
		return 3
	default:
		return g
	}
}

// DecodedFlight is decodeFlight()'s result (spec.md §6).
type DecodedFlight struct {
	Headers []string
	Rows    [][]string
}

// DecodeFlight decodes a full flight with all row-composer post-passes
// applied (spec.md §4.G, §6).
func (d *Decoder) DecodeFlight(id uint16) (DecodedFlight, error) {
	headers, err := d.OpenFlight(id)
	if err != nil {
		return DecodedFlight{}, err
	}

	st := d.cur
	var rawRows [][]string
	var repeats []bool
	for {
		date, timeStr := st.clock.Format("01/02/2006"), st.clock.Format("15:04:05")
		cells, isRepeat, ok, err := d.readRecordCells()
		if err != nil {
			return DecodedFlight{}, &DecodeError{FlightID: id, Offset: st.cursor.offset(), Reason: "record decode failed", Err: err}
		}
		if !ok {
			break
		}
		row := make([]string, 0, len(cells)+2)
		row = append(row, date, timeStr)
		row = append(row, cells...)
		rawRows = append(rawRows, row)
		repeats = append(repeats, isRepeat)
		st.clock = st.clock.Add(time.Duration(st.recordInterval) * time.Second)
	}

	rows := composeRows(headers, rawRows, repeats)
	return DecodedFlight{Headers: headers, Rows: rows}, nil
}
