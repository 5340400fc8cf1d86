// Nookipedia API - public REST API for the Nookipedia wiki's structured data
// SPDX-License-Identifier: MIT
// https://github.com/nookipedia/nookipedia-api

package format

import (
	"fmt"
	"strconv"

	"github.com/nookipedia/nookipedia-api/internal/cargo"
	"github.com/nookipedia/nookipedia-api/internal/version"
)

// FormatCritterList reshapes fish, bug, and sea creature rows in place:
// numeric coercions, catchphrase merging, and the hemisphere availability
// structures whose placement depends on the client version.
func FormatCritterList(rows []cargo.Row, opts Options) []cargo.Row {
	for _, row := range rows {
		formatCritter(row, opts)
	}
	return rows
}

func formatCritter(row cargo.Row, opts Options) {
	if opts.Version.AtLeast(version.MustParse("1.2")) {
		FormatAsType(row, AsFloat, "tank_width", "tank_length")
		FormatAsType(row, AsInt, "number", "sell_nook", "sell_cj", "sell_flick", "total_catch")
	}

	catchphrases := []any{row["catchphrase"]}
	if str(row, "catchphrase2") != "" {
		catchphrases = append(catchphrases, row["catchphrase2"])
		if _, ok := row["catchphrase3"]; ok && str(row, "catchphrase3") != "" {
			catchphrases = append(catchphrases, row["catchphrase3"])
		}
	}
	row["catchphrases"] = catchphrases

	if opts.Version.AtLeast(version.MustParse("1.2")) {
		delete(row, "catchphrase")
		delete(row, "catchphrase2")
		delete(row, "catchphrase3")
	}

	availNorth := []any{map[string]any{"months": row["time_n_months"], "time": row["time"]}}
	availSouth := []any{map[string]any{"months": row["time_s_months"], "time": row["time"]}}
	if str(row, "time2") != "" {
		availNorth = append(availNorth, map[string]any{"months": row["time2_n_months"], "time": row["time2"]})
		availSouth = append(availSouth, map[string]any{"months": row["time2_s_months"], "time": row["time2"]})
	}

	timesNorth := make(map[string]any, 12)
	timesSouth := make(map[string]any, 12)
	for month := 1; month <= 12; month++ {
		timesNorth[strconv.Itoa(month)] = row[fmt.Sprintf("n_m%d_time", month)]
		timesSouth[strconv.Itoa(month)] = row[fmt.Sprintf("s_m%d_time", month)]
	}

	if opts.Version.AtMost(version.MustParse("1.2")) {
		row["availability_north"] = availNorth
		row["availability_south"] = availSouth
		row["times_by_month_north"] = timesNorth
		row["times_by_month_south"] = timesSouth
	} else {
		row["north"] = map[string]any{
			"availability_array": availNorth,
			"times_by_month":     timesNorth,
		}
		row["south"] = map[string]any{
			"availability_array": availSouth,
			"times_by_month":     timesSouth,
		}
	}

	for month := 1; month <= 12; month++ {
		delete(row, fmt.Sprintf("n_m%d_time", month))
		delete(row, fmt.Sprintf("s_m%d_time", month))
	}

	if opts.Version.AtLeast(version.MustParse("1.2")) {
		delete(row, "time")
	}
	delete(row, "time2")
	delete(row, "time_n_months")
	delete(row, "time_s_months")
	delete(row, "time2_n_months")
	delete(row, "time2_s_months")
}

// MonthsToArray converts the per-month n_m1..n_m12 and s_m1..s_m12 flag
// columns into hemisphere month arrays. Clients at 1.2 and later get
// integer months; older clients get the raw strings. Placement moved twice
// across versions: flat arrays through 1.1, top-level months_* fields at
// exactly 1.2, and inside the north/south objects from 1.3 on.
func MonthsToArray(rows []cargo.Row, opts Options) []cargo.Row {
	numericMonths := opts.Version.AtLeast(version.MustParse("1.2"))

	for _, row := range rows {
		northMonths := []any{}
		southMonths := []any{}
		for month := 1; month <= 12; month++ {
			if str(row, fmt.Sprintf("n_m%d", month)) == "1" {
				if numericMonths {
					northMonths = append(northMonths, month)
				} else {
					northMonths = append(northMonths, strconv.Itoa(month))
				}
			}
			if str(row, fmt.Sprintf("s_m%d", month)) == "1" {
				if numericMonths {
					southMonths = append(southMonths, month)
				} else {
					southMonths = append(southMonths, strconv.Itoa(month))
				}
			}
		}
		for month := 1; month <= 12; month++ {
			delete(row, fmt.Sprintf("n_m%d", month))
			delete(row, fmt.Sprintf("s_m%d", month))
		}

		switch {
		case opts.Version.AtMost(version.MustParse("1.1")):
			row["n_availability_array"] = northMonths
			row["s_availability_array"] = southMonths
		case opts.Version.Exactly(version.MustParse("1.2")):
			if _, ok := row["n_availability"]; ok {
				row["months_north"] = row["n_availability"]
				delete(row, "n_availability")
				row["months_south"] = row["s_availability"]
				delete(row, "s_availability")
				row["months_north_array"] = northMonths
				row["months_south_array"] = southMonths
			}
		default:
			if _, ok := row["n_availability"]; ok {
				if north, ok := row["north"].(map[string]any); ok {
					north["months"] = row["n_availability"]
					north["months_array"] = northMonths
				}
				if south, ok := row["south"].(map[string]any); ok {
					south["months"] = row["s_availability"]
					south["months_array"] = southMonths
				}
				delete(row, "n_availability")
				delete(row, "s_availability")
			}
		}
	}
	return rows
}
