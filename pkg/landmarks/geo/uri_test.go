package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		uri  string
		want Coordinates
	}{
		{"compact", "geo:25.033963,121.564468", Coordinates{Lat: 25.033963, Lon: 121.564468}},
		{"space after comma", "geo:48.858093, 2.294694", Coordinates{Lat: 48.858093, Lon: 2.294694}},
		{"negative longitude", "geo:51.178882,-1.826215", Coordinates{Lat: 51.178882, Lon: -1.826215}},
		{"altitude", "geo:1,2,300", Coordinates{Lat: 1, Lon: 2}},
		{"parameters", "geo:1,2;u=35", Coordinates{Lat: 1, Lon: 2}},
		{"query", "geo:1,2?q=Paris", Coordinates{Lat: 1, Lon: 2}},
		{"upper case scheme", "GEO:1,2", Coordinates{Lat: 1, Lon: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.uri)
			require.NoError(t, err)
			assert.InDelta(t, tt.want.Lat, got.Lat, 1e-9)
			assert.InDelta(t, tt.want.Lon, got.Lon, 1e-9)
		})
	}
}

func TestParseRejects(t *testing.T) {
	for _, uri := range []string{
		"",
		"geo",
		"https://maps.example.com/?q=1,2",
		"geo:",
		"geo:1",
		"geo:a,b",
		"geo:1,2,3,4",
		"geo:91,0",
		"geo:0,181",
	} {
		t.Run(uri, func(t *testing.T) {
			_, err := Parse(uri)
			assert.ErrorIs(t, err, ErrInvalidURI)
			assert.ErrorIs(t, Validate(uri), ErrInvalidURI)
		})
	}
}

func TestCoordinatesURI(t *testing.T) {
	c := Coordinates{Lat: 25.033963, Lon: 121.564468}
	assert.Equal(t, "geo:25.033963,121.564468", c.URI())

	back, err := Parse(c.URI())
	require.NoError(t, err)
	assert.Equal(t, c, back)
}
