// Nookipedia API - public REST API for the Nookipedia wiki's structured data
// SPDX-License-Identifier: MIT
// https://github.com/nookipedia/nookipedia-api

package api

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func critterUpstreamRow(name string) map[string]any {
	row := map[string]any{
		"name":           name,
		"number":         "42",
		"sell_nook":      "400",
		"catchphrase":    "I caught one!",
		"catchphrase2":   "",
		"catchphrase3":   "",
		"time":           "All day",
		"time2":          "",
		"time_n_months":  "1-12",
		"time_s_months":  "1-12",
		"time2_n_months": "",
		"time2_s_months": "",
		"n_availability": "1-12",
		"s_availability": "1-12",
	}
	for month := 1; month <= 12; month++ {
		row[fmt.Sprintf("n_m%d", month)] = "1"
		row[fmt.Sprintf("s_m%d", month)] = "1"
		row[fmt.Sprintf("n_m%d_time", month)] = "All day"
		row[fmt.Sprintf("s_m%d_time", month)] = "All day"
	}
	return row
}

func TestFishListLatestShape(t *testing.T) {
	handler, _, _ := newTestAPI(t, func(q url.Values) []map[string]any {
		return []map[string]any{critterUpstreamRow("Sea Bass")}
	})

	rec := doRequest(t, handler, http.MethodGet, "/nh/fish", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 1)

	fish := body[0]
	assert.Equal(t, "Sea Bass", fish["name"])
	assert.Equal(t, float64(42), fish["number"])

	north, ok := fish["north"].(map[string]any)
	require.True(t, ok, "latest clients get nested hemispheres")
	assert.Equal(t, "1-12", north["months"])
	_, exists := fish["n_m1"]
	assert.False(t, exists)
}

func TestFishListByMonth(t *testing.T) {
	handler, recorder, _ := newTestAPI(t, func(q url.Values) []map[string]any {
		where := q.Get("where")
		switch {
		case strings.HasPrefix(where, "n_m"):
			return []map[string]any{critterUpstreamRow("Northern Pike")}
		case strings.HasPrefix(where, "s_m"):
			return []map[string]any{critterUpstreamRow("Southern Ray")}
		}
		return nil
	})

	rec := doRequest(t, handler, http.MethodGet, "/nh/fish?month=jul&excludedetails=true", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "7", body["month"])
	assert.Equal(t, []any{"Northern Pike"}, body["north"])
	assert.Equal(t, []any{"Southern Ray"}, body["south"])

	assert.Contains(t, recorder.wheres(), `n_m7="1"`)
	assert.Contains(t, recorder.wheres(), `s_m7="1"`)
}

func TestFishListBadMonth(t *testing.T) {
	handler, _, _ := newTestAPI(t, nil)

	rec := doRequest(t, handler, http.MethodGet, "/nh/fish?month=smarch", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Failed to identify the provided month filter.", decodeError(t, rec).Title)
}

func TestFishSingleNotFound(t *testing.T) {
	handler, _, _ := newTestAPI(t, nil)

	rec := doRequest(t, handler, http.MethodGet, "/nh/fish/Coelacanth", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "No data was found for the given query.", decodeError(t, rec).Title)
}

func TestFishSingleVersionShapes(t *testing.T) {
	handler, _, _ := newTestAPI(t, func(q url.Values) []map[string]any {
		return []map[string]any{critterUpstreamRow("Sea Bass")}
	})

	// 1.0 clients got a one-element array.
	rec := doRequest(t, handler, http.MethodGet, "/nh/fish/Sea_Bass", map[string]string{"Accept-Version": "1.0"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(strings.TrimSpace(rec.Body.String()), "["))

	rec = doRequest(t, handler, http.MethodGet, "/nh/fish/Sea_Bass", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(strings.TrimSpace(rec.Body.String()), "{"))
}

func TestVillagerFilterWhere(t *testing.T) {
	handler, recorder, _ := newTestAPI(t, func(q url.Values) []map[string]any {
		return []map[string]any{{"name": "Audie"}}
	})

	rec := doRequest(t, handler, http.MethodGet,
		"/villagers?personality=sisterly&species=rhino&game=nh", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	wheres := recorder.wheres()
	require.Len(t, wheres, 1)
	assert.Equal(t,
		`villager.personality = "big sister" AND villager.species = "rhinoceros" AND villager.nh = "1"`,
		wheres[0])
}

func TestVillagerBadPersonality(t *testing.T) {
	handler, _, _ := newTestAPI(t, nil)

	rec := doRequest(t, handler, http.MethodGet, "/villagers?personality=chaotic", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Could not recognize provided personality.", decodeError(t, rec).Title)
}

func TestVillagerUnknownGameRejected(t *testing.T) {
	handler, recorder, _ := newTestAPI(t, nil)

	rec := doRequest(t, handler, http.MethodGet,
		`/villagers?game=nh%22%20%3D%20%221%22%20OR%20%221%22%20%3D%20%221`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Could not recognize provided game.", decodeError(t, rec).Title)

	rec = doRequest(t, handler, http.MethodGet, "/villagers?game=gamecube", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	assert.Empty(t, recorder.wheres(), "rejected filters never reach the wiki")
}

func TestRecipeMaterialCap(t *testing.T) {
	handler, _, _ := newTestAPI(t, nil)

	target := "/nh/recipes?" + strings.Repeat("material=wood&", 6) + "material=stone"
	rec := doRequest(t, handler, http.MethodGet, target, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Cannot have more than six materials", decodeError(t, rec).Details)
}

func TestRecipeMaterialWhere(t *testing.T) {
	handler, recorder, _ := newTestAPI(t, func(q url.Values) []map[string]any { return nil })

	rec := doRequest(t, handler, http.MethodGet, "/nh/recipes?material=iron_nugget", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	wheres := recorder.wheres()
	require.Len(t, wheres, 1)
	assert.Contains(t, wheres[0], `material1 = "iron nugget"`)
	assert.Contains(t, wheres[0], `material6 = "iron nugget"`)
}

func TestArtHasFakeFilter(t *testing.T) {
	handler, recorder, _ := newTestAPI(t, func(q url.Values) []map[string]any { return nil })

	rec := doRequest(t, handler, http.MethodGet, "/nh/art?hasfake=true", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"has_fake = true"}, recorder.wheres())
}

func TestEventListFilters(t *testing.T) {
	handler, recorder, _ := newTestAPI(t, func(q url.Values) []map[string]any {
		return []map[string]any{{
			"event": "Fishing Tourney", "date": "2026-09-12", "type": "Event",
			"url": "Fishing Tourney", "date__precision": "1",
		}}
	})

	rec := doRequest(t, handler, http.MethodGet, "/nh/events?date=today", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	wheres := recorder.wheres()
	require.Len(t, wheres, 1)
	assert.True(t, strings.HasPrefix(wheres[0], "YEAR(date) = "), wheres[0])

	var body []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 1)
	_, exists := body[0]["date__precision"]
	assert.False(t, exists, "the Cargo precision column is stripped")
}

func TestEventListBadType(t *testing.T) {
	handler, _, _ := newTestAPI(t, nil)

	rec := doRequest(t, handler, http.MethodGet, "/nh/events?type=Bogus", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Could not recognize provided type.", decodeError(t, rec).Title)
}

func TestEventListYearDayWhere(t *testing.T) {
	handler, recorder, _ := newTestAPI(t, func(q url.Values) []map[string]any {
		return []map[string]any{{"event": "Bug-Off", "date": "2026-09-26", "type": "Event", "url": "Bug-Off"}}
	})

	rec := doRequest(t, handler, http.MethodGet, "/nh/events?year=2026&day=26", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	wheres := recorder.wheres()
	require.Len(t, wheres, 1)
	assert.Equal(t, `YEAR(date) = "2026" AND DAYOFMONTH(date) = "26"`, wheres[0])
}

func TestEventListRejectsNonNumericYearAndDay(t *testing.T) {
	handler, recorder, _ := newTestAPI(t, nil)

	rec := doRequest(t, handler, http.MethodGet,
		`/nh/events?year=2026%22%20OR%20event%20LIKE%20%22%25`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Could not recognize provided year.", decodeError(t, rec).Title)

	rec = doRequest(t, handler, http.MethodGet, "/nh/events?day=twelve", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Could not recognize provided day.", decodeError(t, rec).Title)

	rec = doRequest(t, handler, http.MethodGet, "/nh/events?day=32", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	assert.Empty(t, recorder.wheres(), "rejected filters never reach the wiki")
}

func TestStitchedListRejectsThumbsize(t *testing.T) {
	handler, _, _ := newTestAPI(t, nil)

	for _, target := range []string{
		"/nh/furniture?thumbsize=100",
		"/nh/clothing?thumbsize=100",
		"/nh/photos?thumbsize=100",
		"/nh/gyroids?thumbsize=100",
		"/nh/tools?thumbsize=100",
	} {
		rec := doRequest(t, handler, http.MethodGet, target, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
		assert.Equal(t, "Cannot have thumbsize in a group item request", decodeError(t, rec).Details, target)
	}
}

func TestFurnitureListStitchesByIdentifier(t *testing.T) {
	handler, _, _ := newTestAPI(t, func(q url.Values) []map[string]any {
		switch q.Get("tables") {
		case "nh_furniture":
			return []map[string]any{{
				"identifier": "ironwood dresser", "name": "ironwood dresser",
				"grid_size": "1.0×1.0",
			}}
		case "nh_furniture_variation":
			return []map[string]any{{
				"identifier": "ironwood dresser", "variation": "birch",
				"pattern": "", "image_url": "x", "color1": "Beige", "color2": "None",
			}}
		}
		return nil
	})

	rec := doRequest(t, handler, http.MethodGet, "/nh/furniture", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 1)

	variations, ok := body[0]["variations"].([]any)
	require.True(t, ok)
	require.Len(t, variations, 1)
	variation := variations[0].(map[string]any)
	assert.Equal(t, "birch", variation["variation"])
	assert.Equal(t, []any{"Beige"}, variation["colors"])
	_, exists := variation["identifier"]
	assert.False(t, exists, "the join column is stripped from attached variations")
}

func TestClothingBadStyle(t *testing.T) {
	handler, _, _ := newTestAPI(t, nil)

	rec := doRequest(t, handler, http.MethodGet, "/nh/clothing?style=dapper", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Could not recognize provided style.", decodeError(t, rec).Title)
}

func TestClothingTwoStyleWhere(t *testing.T) {
	handler, recorder, _ := newTestAPI(t, func(q url.Values) []map[string]any { return nil })

	rec := doRequest(t, handler, http.MethodGet, "/nh/clothing?style=cool&style=cute", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var itemWhere string
	for _, q := range recorder.queries {
		if q.Get("tables") == "nh_clothing" {
			itemWhere = q.Get("where")
		}
	}
	assert.Contains(t, itemWhere, `style1 = "cool" AND style2 = "cute"`)
	assert.Contains(t, itemWhere, `style2 = "cool"`)
}

func TestInteriorColorWhere(t *testing.T) {
	handler, recorder, _ := newTestAPI(t, func(q url.Values) []map[string]any { return nil })

	rec := doRequest(t, handler, http.MethodGet, "/nh/interior?color=red", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	wheres := recorder.wheres()
	require.Len(t, wheres, 1)
	assert.Equal(t, `(color1 = "red" OR color2 = "red")`, wheres[0])
}

func TestInteriorTooManyColors(t *testing.T) {
	handler, _, _ := newTestAPI(t, nil)

	rec := doRequest(t, handler, http.MethodGet, "/nh/interior?color=red&color=blue&color=aqua", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Cannot have more than two colors", decodeError(t, rec).Details)
}

func TestFossilAllMatchesIndividual(t *testing.T) {
	handler, _, _ := newTestAPI(t, func(q url.Values) []map[string]any {
		switch {
		case q.Get("tables") == "nh_fossil" && q.Get("fields") == "name,fossil_group":
			return []map[string]any{{"name": "T. Rex Skull", "fossil_group": "T. Rex"}}
		case q.Get("tables") == "nh_fossil_group":
			return []map[string]any{{"name": "T. Rex", "url": "T. Rex", "room": "2", "description": "big"}}
		case q.Get("tables") == "nh_fossil":
			return []map[string]any{{
				"name": "T. Rex Skull", "fossil_group": "T. Rex", "sell": "6000",
				"interactable": "0", "width": "2.0", "length": "2.0",
				"color1": "Brown", "color2": "None", "hha_base": "",
			}}
		}
		return nil
	})

	rec := doRequest(t, handler, http.MethodGet, "/nh/fossils/all/T._Rex_Skull", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "T. Rex", body["name"])
	assert.Equal(t, float64(2), body["room"])

	matched := body["matched"].(map[string]any)
	assert.Equal(t, "individual", matched["type"])
	assert.Equal(t, "T. Rex Skull", matched["name"])

	fossils := body["fossils"].([]any)
	require.Len(t, fossils, 1)
	_, exists := fossils[0].(map[string]any)["fossil_group"]
	assert.False(t, exists)
}

func TestFossilAllUnknownName(t *testing.T) {
	handler, _, _ := newTestAPI(t, nil)

	rec := doRequest(t, handler, http.MethodGet, "/nh/fossils/all/Nonexistent", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
