package edm

// composeRows applies the cross-record carry-forward and smoothing rules of
// spec.md §4.G to a flight's raw decoded rows. headers is DATE, TIME, then
// one header per active sensor, in the same column order as each row.
// repeats[r] reports whether row r was decoded from a pure mult/repeat
// record (decodeOnePhysicalRecord's own flag, not an all-NA heuristic).
func composeRows(headers []string, rows [][]string, repeats []bool) [][]string {
	if len(rows) == 0 {
		return rows
	}

	idx := make(map[string]int, len(headers))
	for i, h := range headers {
		idx[h] = i
	}

	carryCols := make([]int, 0, len(headers))
	for col, h := range headers {
		switch h {
		case "DATE", "TIME", "MARK", "LAT", "LNG", "SPD", "ALT":
			continue
		default:
			carryCols = append(carryCols, col)
		}
	}
	repeatCarryCols := []string{"LAT", "LNG", "SPD", "ALT"}

	// MARK edge-only: a glyph only marks the sample where it first appears.
	// Compare against each row's original value (not a neighbor already
	// blanked by this same pass), so a run of N identical glyphs collapses
	// to exactly one edge rather than leaving every other row lit.
	if col, ok := idx["MARK"]; ok {
		original := make([]string, len(rows))
		for r, row := range rows {
			original[r] = row[col]
		}
		for r := 1; r < len(rows); r++ {
			if original[r] == original[r-1] {
				rows[r][col] = ""
			}
		}
	}

	// Repeat-carry: LAT/LNG/SPD/ALT carry forward only on rows flagged as
	// pure mult/repeat records, never smoothing a genuine sensor dropout.
	// Runs before the generic carry-forward below; that pass never writes
	// these four columns, and the repeat decision comes from repeats[r], so
	// the two passes do not affect each other.
	for _, name := range repeatCarryCols {
		col, ok := idx[name]
		if !ok {
			continue
		}
		for r := 1; r < len(rows); r++ {
			if r < len(repeats) && repeats[r] && rows[r][col] == "NA" {
				rows[r][col] = rows[r-1][col]
			}
		}
	}

	// Generic carry-forward: every row's NA cells, repeat or not, inherit the
	// previous row's value for every column except DATE/TIME/MARK/LAT/LNG/SPD/ALT.
	for r := 1; r < len(rows); r++ {
		for _, col := range carryCols {
			if rows[r][col] == "NA" {
				rows[r][col] = rows[r-1][col]
			}
		}
	}

	// Single-gap GPS smoothing: an isolated NA between two valid fixes is
	// interpolated as the earlier fix's value, rather than left blank.
	for _, name := range []string{"LAT", "LNG"} {
		col, ok := idx[name]
		if !ok {
			continue
		}
		for r := 1; r < len(rows)-1; r++ {
			if rows[r][col] == "NA" && rows[r-1][col] != "NA" && rows[r+1][col] != "NA" {
				rows[r][col] = rows[r-1][col]
			}
		}
	}

	return rows
}
