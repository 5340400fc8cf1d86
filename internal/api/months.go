// Nookipedia API - public REST API for the Nookipedia wiki's structured data
// SPDX-License-Identifier: MIT
// https://github.com/nookipedia/nookipedia-api

package api

import (
	"strconv"
	"strings"
	"time"
)

var monthAbbrevs = map[string]int{
	"jan": 1, "feb": 2, "mar": 3, "apr": 4, "may": 5, "jun": 6,
	"jul": 7, "aug": 8, "sep": 9, "oct": 10, "nov": 11, "dec": 12,
}

// MonthToInt resolves a month query parameter to its number. It accepts a
// digit ("7", "07"), the word "current", or any prefix-matching month name
// ("jul", "July"). The second return is false when nothing matched.
func MonthToInt(month string, now func() time.Time) (int, bool) {
	month = strings.ToLower(month)

	if n, err := strconv.Atoi(month); err == nil {
		if n >= 1 && n <= 12 {
			return n, true
		}
		return 0, false
	}
	if month == "current" {
		if now == nil {
			return 0, false
		}
		return int(now().Month()), true
	}
	if len(month) >= 3 {
		if n, ok := monthAbbrevs[month[:3]]; ok {
			return n, true
		}
	}
	return 0, false
}

// MonthToName resolves a month query parameter to its English name, or ""
// when nothing matched. Used by the villager birth month filter, which the
// wiki stores as a name.
func MonthToName(month string) string {
	n, ok := MonthToInt(month, nil)
	if !ok || n == 0 {
		return ""
	}
	return time.Month(n).String()
}
