// Package geo handles the geo URIs attractions use as map launch targets.
//
// A geo URI has the form "geo:<lat>,<lon>". The catalog keeps the string as
// written and hands it to the launcher untouched; this package only checks
// that it is well formed and exposes the coordinates it carries.
package geo

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Scheme is the URI scheme prefix, including the colon.
const Scheme = "geo:"

// ErrInvalidURI is returned for strings that are not a usable geo URI.
var ErrInvalidURI = errors.New("invalid geo uri")

// Coordinates is a latitude/longitude pair in decimal degrees.
type Coordinates struct {
	Lat float64
	Lon float64
}

// URI returns the canonical "geo:<lat>,<lon>" form of c.
func (c Coordinates) URI() string {
	return Scheme + strconv.FormatFloat(c.Lat, 'f', -1, 64) + "," + strconv.FormatFloat(c.Lon, 'f', -1, 64)
}

// String implements fmt.Stringer.
func (c Coordinates) String() string {
	return fmt.Sprintf("%.6f, %.6f", c.Lat, c.Lon)
}

// Valid reports whether both components are inside their ranges.
func (c Coordinates) Valid() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lon >= -180 && c.Lon <= 180
}

// Parse extracts the coordinates of a geo URI.
//
// Whitespace around either number is tolerated ("geo:48.858093, 2.294694").
// Anything after the longitude (";u=35", "?q=...") is ignored, an altitude
// component is accepted and dropped.
func Parse(uri string) (Coordinates, error) {
	if len(uri) < len(Scheme) || !strings.EqualFold(uri[:len(Scheme)], Scheme) {
		return Coordinates{}, fmt.Errorf("%w: %q: missing %q scheme", ErrInvalidURI, uri, Scheme)
	}

	body := uri[len(Scheme):]
	if i := strings.IndexAny(body, ";?"); i >= 0 {
		body = body[:i]
	}

	parts := strings.Split(body, ",")
	if len(parts) < 2 || len(parts) > 3 {
		return Coordinates{}, fmt.Errorf("%w: %q: want lat,lon", ErrInvalidURI, uri)
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return Coordinates{}, fmt.Errorf("%w: %q: latitude: %v", ErrInvalidURI, uri, err)
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return Coordinates{}, fmt.Errorf("%w: %q: longitude: %v", ErrInvalidURI, uri, err)
	}

	c := Coordinates{Lat: lat, Lon: lon}
	if !c.Valid() {
		return Coordinates{}, fmt.Errorf("%w: %q: coordinates out of range", ErrInvalidURI, uri)
	}
	return c, nil
}

// Validate returns nil when uri parses.
func Validate(uri string) error {
	_, err := Parse(uri)
	return err
}
