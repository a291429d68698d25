package dataset_models

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"kankou/pkg/utils"
)

type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

func (c Coordinate) String() string {
	return strconv.FormatFloat(c.Lat, 'f', -1, 64) + "," + strconv.FormatFloat(c.Lon, 'f', -1, 64)
}

// ParseCoordinate parses "lat,lon". The value must split on a comma into exactly two finite
// numbers inside the WGS84 range.
func ParseCoordinate(raw string) (Coordinate, error) {
	parts := strings.Split(raw, ",")
	if len(parts) != 2 {
		return Coordinate{}, fmt.Errorf("%w: %q has %d fields", utils.ErrMalformedCoordinate, raw, len(parts))
	}

	lat, err := parseDegrees(parts[0], 90)
	if err != nil {
		return Coordinate{}, fmt.Errorf("%w: %q latitude: %v", utils.ErrMalformedCoordinate, raw, err)
	}
	lon, err := parseDegrees(parts[1], 180)
	if err != nil {
		return Coordinate{}, fmt.Errorf("%w: %q longitude: %v", utils.ErrMalformedCoordinate, raw, err)
	}

	return Coordinate{Lat: lat, Lon: lon}, nil
}

func parseDegrees(s string, limit float64) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%q is not finite", s)
	}
	if v < -limit || v > limit {
		return 0, fmt.Errorf("%v is outside ±%v", v, limit)
	}
	return v, nil
}
