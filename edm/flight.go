package edm

import "time"

// FlightDirectoryEntry describes one flight recovered from the $D metadata
// records, with its absolute byte offset resolved by the recovery probe.
type FlightDirectoryEntry struct {
	ID        uint16
	SizeBytes int
	Start     int
	Found     bool
}

// optInt32 is a signed 32-bit value that may be absent (read underflow or
// simply not present in the prelude), following spec's "distinguishable
// not-a-number" cursor contract without conflating it with a real sentinel
// integer value.
type optInt32 struct {
	Value int32
	Valid bool
}

// FlightPrelude holds the fixed per-flight header fields, populated fresh
// on every openFlight call.
type FlightPrelude struct {
	ID                uint16
	CfgWord           [5]uint16
	StartLat          optInt32
	StartLng          optInt32
	FuelUnit          uint8
	Horsepower        uint8
	RecordInterval    int
	OriginalInterval  int
	Date              string // MM/DD/YYYY
	Time              string // HH:MM:SS
	StartClock        time.Time
	RecStart          int // absolute offset of the first data record
}

// channelState is the per-sensor, per-flight accumulator described in
// spec.md's ChannelState: a running total plus the latest validity/sign/raw
// observed for that channel.
type channelState struct {
	runningTotal float64
	validLo      bool
	validHi      bool
	signLo       bool
	signHi       bool
	rawLo        int
	rawHi        int
}
