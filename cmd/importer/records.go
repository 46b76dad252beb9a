package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"sensory-map-api/internal/geomath"
	"sensory-map-api/internal/models"

	"github.com/google/uuid"
)

type rowParser func(record []string) ([]interface{}, error)

type tableSpec struct {
	name    string
	columns []string
	parse   rowParser
}

var tables = map[string]tableSpec{
	"places": {
		name:    "places",
		columns: []string{"name", "category", "relevance", "geom"},
		parse:   parsePlace,
	},
	"addresses": {
		name:    "addresses",
		columns: []string{"region", "locality", "street", "number", "geom"},
		parse:   parseAddress,
	},
	"reports": {
		name: "reports",
		columns: []string{
			"id", "geom", "noise", "crowds", "lighting", "quiet_score",
			"created_at", "submitter", "display_name", "display_tier", "confidence",
		},
		parse: parseReport,
	},
}

// name,category,relevance,lat,lon
func parsePlace(r []string) ([]interface{}, error) {
	if len(r) < 5 {
		return nil, fmt.Errorf("invalid record length: %d, expected 5 columns", len(r))
	}
	relevance, err := parseUnit("relevance", r[2])
	if err != nil {
		return nil, err
	}
	geom, err := point(r[3], r[4])
	if err != nil {
		return nil, err
	}
	return []interface{}{r[0], r[1], relevance, geom}, nil
}

// region,locality,street,number,lat,lon
func parseAddress(r []string) ([]interface{}, error) {
	if len(r) < 6 {
		return nil, fmt.Errorf("invalid record length: %d, expected 6 columns", len(r))
	}
	geom, err := point(r[4], r[5])
	if err != nil {
		return nil, err
	}
	return []interface{}{r[0], r[1], r[2], r[3], geom}, nil
}

// id,lat,lon,noise,crowds,lighting,quiet_score,timestamp,submitter,display_name,display_tier,confidence
// id and the last four columns may be empty.
func parseReport(r []string) ([]interface{}, error) {
	if len(r) < 8 {
		return nil, fmt.Errorf("invalid record length: %d, expected at least 8 columns", len(r))
	}
	for len(r) < 12 {
		r = append(r, "")
	}

	id := uuid.New()
	if r[0] != "" {
		parsed, err := uuid.Parse(r[0])
		if err != nil {
			return nil, fmt.Errorf("invalid id: %s", r[0])
		}
		id = parsed
	}

	geom, err := point(r[1], r[2])
	if err != nil {
		return nil, err
	}

	var readings [3]float64
	for i, name := range []string{"noise", "crowds", "lighting"} {
		if readings[i], err = parseUnit(name, r[3+i]); err != nil {
			return nil, err
		}
	}

	quiet, err := strconv.Atoi(r[6])
	if err != nil || quiet < 0 || quiet > 100 {
		return nil, fmt.Errorf("invalid quiet score: %s", r[6])
	}

	ts, err := time.Parse(time.RFC3339, r[7])
	if err != nil {
		return nil, fmt.Errorf("invalid timestamp: %s", r[7])
	}

	var tier interface{}
	if r[10] != "" {
		t, err := models.ParseTier(strings.ToLower(r[10]))
		if err != nil {
			return nil, err
		}
		tier = t.String()
	}

	var confidence interface{}
	if r[11] != "" {
		c, err := parseUnit("confidence", r[11])
		if err != nil {
			return nil, err
		}
		confidence = c
	}

	return []interface{}{
		id.String(), geom, readings[0], readings[1], readings[2], quiet,
		ts, nullable(r[8]), nullable(r[9]), tier, confidence,
	}, nil
}

// point returns the coordinate as EWKT, which PostGIS accepts for geography columns.
func point(latStr, lonStr string) (string, error) {
	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return "", fmt.Errorf("invalid latitude: %s", latStr)
	}
	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil {
		return "", fmt.Errorf("invalid longitude: %s", lonStr)
	}
	if !geomath.ValidCoordinate(lat, lon) {
		return "", fmt.Errorf("coordinate out of range: %s,%s", latStr, lonStr)
	}
	return fmt.Sprintf("SRID=4326;POINT(%f %f)", lon, lat), nil // PostGIS format: lon lat
}

func parseUnit(name, v string) (float64, error) {
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f < 0 || f > 1 {
		return 0, fmt.Errorf("invalid %s: %s", name, v)
	}
	return f, nil
}

func nullable(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
