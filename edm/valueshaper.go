package edm

import (
	"fmt"
	"math"
)

// cell is one (byteGroup, bitInGroup) position decoded within a record.
type cell struct {
	value int
	sign  bool
	valid bool
}

// cellGrid holds every data byte decoded for one physical record, indexed
// by its source (group, bit) address. A repeat record (spec.md §4.E step 2)
// produces a zero-value grid: every cell reads as invalid, which correctly
// starves every channel's running total of a delta and every NA check into
// firing, so a repeat row's cells fall out of the generic path as "keep
// whatever the previous row showed" once the row composer carries forward.
type cellGrid struct {
	cells [16][8]cell
}

func (g *cellGrid) at(a byteAddr) cell {
	if !a.present() {
		return cell{}
	}
	return g.cells[a.Group][a.Bit]
}

// shapeChannel applies spec.md §4.F to one configured sensor for the
// current record, updating its running state and returning the formatted
// CSV cell text. firstRecord selects the HRS first-record special case.
// recordInterval is mutated by a MARK glyph, per spec; originalInterval is
// only read, as the value the restoring glyphs put back.
func shapeChannel(s SensorDescriptor, st *channelState, g *cellGrid, firstRecord bool, recordInterval, originalInterval *int) string {
	switch s.Kind {
	case kindMark:
		lo := g.at(s.Lo)
		v := lo.value
		if lo.sign {
			v = -v
		}
		return markGlyph(v, recordInterval, originalInterval)
	case kindComputedDIF:
		// Handled by the caller (needs sibling E-channel states); see shapeDIF.
		return ""
	}

	lo := g.at(s.Lo)
	hi := g.at(s.Hi)
	hasHi := s.Hi.present()

	st.validLo, st.rawLo, st.signLo = lo.valid, lo.value, lo.sign
	if hasHi {
		st.validHi, st.rawHi, st.signHi = hi.valid, hi.value, hi.sign
	}

	loSigned := lo.value
	if lo.sign {
		loSigned = -loSigned
	}

	var delta int
	switch {
	case s.Name == "HRS" && firstRecord && lo.sign:
		delta = -(lo.value + hi.value)
	case hasHi && hi.sign:
		delta = loSigned - hi.value
	case hasHi:
		delta = loSigned + hi.value
	default:
		delta = loSigned
	}

	st.runningTotal += float64(delta)

	na := !lo.valid && (!hasHi || !hi.valid)
	if na {
		return "NA"
	}

	switch s.Kind {
	case kindCoordinate:
		return formatCoordinate(s.Name, st.runningTotal)
	case kindFixed1:
		return formatFixed1(st.runningTotal, s.Scale)
	default:
		return formatInteger(st.runningTotal)
	}
}

// shapeDIF computes the EGT spread over the current record only (spec.md
// §4.F): never carried from prior records, NA if nothing was valid.
func shapeDIF(egtStates []*channelState) string {
	first := true
	var lo, hi float64
	for _, st := range egtStates {
		if !st.validLo {
			continue
		}
		v := st.runningTotal
		if first {
			lo, hi = v, v
			first = false
			continue
		}
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if first {
		return "NA"
	}
	return formatInteger(hi - lo)
}

// markGlyph maps a MARK channel's low 3 bits to a control glyph, with the
// interval side effects of spec.md §4.F.
func markGlyph(value int, recordInterval, originalInterval *int) string {
	switch value & 7 {
	case 1:
		return "X"
	case 2:
		*recordInterval = 1
		return "["
	case 3:
		*recordInterval = *originalInterval
		return "]"
	case 4:
		*recordInterval = 1
		return "<"
	case 5:
		*recordInterval = *originalInterval
		return ">"
	default:
		return ""
	}
}

func formatCoordinate(name string, total float64) string {
	t := int(math.Round(math.Abs(total)))
	var deg, digits int
	if name == "LAT" {
		digits = 2
	} else {
		digits = 3
	}
	deg = t / 6000
	r := t - deg*6000

	var hemiPos, hemiNeg string
	if name == "LAT" {
		hemiPos, hemiNeg = "N", "S"
	} else {
		hemiPos, hemiNeg = "E", "W"
	}
	hemi := hemiPos
	if total < 0 {
		hemi = hemiNeg
	}

	return fmt.Sprintf("%s%0*d.%02d.%02d", hemi, digits, deg, r/100, r%100)
}

func formatFixed1(total float64, scale int) string {
	v := total / float64(scale)
	return fmt.Sprintf("%.1f", v)
}

func formatInteger(total float64) string {
	v := int(math.Round(total))
	if v >= 0 {
		return fmt.Sprintf(" %d", v)
	}
	return fmt.Sprintf("%d", v)
}
