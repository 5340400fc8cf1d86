// Nookipedia API - public REST API for the Nookipedia wiki's structured data
// SPDX-License-Identifier: MIT
// https://github.com/nookipedia/nookipedia-api

package api

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/nookipedia/nookipedia-api/internal/cargo"
)

// dateLayouts are the formats accepted by the events date filter.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"January 2 2006",
	"2 January 2006",
}

func parseEventDate(value string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// dayCondition matches a calendar day. The wiki's calendar table stores full
// dates, so day filters go through Cargo's date functions.
func dayCondition(t time.Time) string {
	return fmt.Sprintf("YEAR(date) = %d AND MONTH(date) = %02d AND DAYOFMONTH(date) = %02d",
		t.Year(), int(t.Month()), t.Day())
}

func (s *Server) handleEventList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var where cargo.WhereBuilder

	if date := q.Get("date"); date != "" {
		today := time.Now()
		if date == "today" {
			where.Raw(dayCondition(today))
		} else {
			parsed, ok := parseEventDate(date)
			if !ok {
				writeError(w, http.StatusBadRequest,
					"Could not recognize provided date.",
					"Ensure date is of a valid date format, or 'today'.")
				return
			}
			// The calendar only covers the current and next year.
			if parsed.Year() != today.Year() && parsed.Year() != today.Year()+1 {
				writeError(w, http.StatusNotFound,
					"No data was found for the given query.",
					"You must request events from either the current or next year.")
				return
			}
			where.Raw(dayCondition(parsed))
		}
	}

	if yearArg := q.Get("year"); yearArg != "" {
		year, err := strconv.Atoi(yearArg)
		if err != nil {
			writeError(w, http.StatusBadRequest,
				"Could not recognize provided year.",
				"Ensure year is a number.")
			return
		}
		where.Raw(`YEAR(date) = "` + strconv.Itoa(year) + `"`)
	}
	if monthArg := q.Get("month"); monthArg != "" {
		month, ok := MonthToInt(monthArg, time.Now)
		if !ok {
			writeInvalidMonth(w, monthArg)
			return
		}
		where.Raw(`MONTH(date) = "` + strconv.Itoa(month) + `"`)
	}
	if dayArg := q.Get("day"); dayArg != "" {
		day, err := strconv.Atoi(dayArg)
		if err != nil || day < 1 || day > 31 {
			writeError(w, http.StatusBadRequest,
				"Could not recognize provided day.",
				"Ensure day is a number between 1 and 31.")
			return
		}
		where.Raw(`DAYOFMONTH(date) = "` + strconv.Itoa(day) + `"`)
	}
	if event := q.Get("event"); event != "" {
		where.Match("event", event)
	}
	if eventType := q.Get("type"); eventType != "" {
		if !contains([]string{"Event", "Nook Shopping", "Birthday", "Recipes"}, eventType) {
			writeError(w, http.StatusBadRequest,
				"Could not recognize provided type.",
				"Ensure type is either Event, Nook Shopping, Birthday, or Recipes.")
			return
		}
		where.Match("type", eventType)
	}

	rows, ok := s.fetch(w, r, cargo.QueryRequest{
		Tables:  "nh_calendar",
		Fields:  "event,date,type,link=url",
		Where:   where.String(),
		OrderBy: "date",
		Limit:   s.cfg.Limits.Event,
	})
	if !ok {
		return
	}

	// Cargo returns a precision column alongside every date field.
	for _, row := range rows {
		delete(row, "date__precision")
	}
	writeJSON(w, http.StatusOK, rows)
}
