package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

var samplePoints = [][2]float64{
	{0, 0},
	{37.0, -122.0},
	{55.7558, 37.6173},
	{-33.8688, 151.2093},
	{89.9, 179.9},
	{-90, 0},
}

func TestDistanceMeters_IdenticalPointsIsZero(t *testing.T) {
	for _, p := range samplePoints {
		assert.Equal(t, 0.0, DistanceMeters(p[0], p[1], p[0], p[1]))
	}
}

func TestDistanceMeters_Symmetric(t *testing.T) {
	for _, a := range samplePoints {
		for _, b := range samplePoints {
			ab := DistanceMeters(a[0], a[1], b[0], b[1])
			ba := DistanceMeters(b[0], b[1], a[0], a[1])
			assert.InDelta(t, ab, ba, 1e-6)
		}
	}
}

func TestDistanceMeters_OneDegreeOfLatitude(t *testing.T) {
	d := DistanceMeters(0, 0, 1, 0)
	assert.InEpsilon(t, 111195.0, d, 0.01)
}

func TestDistanceMeters_Antipodal(t *testing.T) {
	d := DistanceMeters(0, 0, 0, 180)
	assert.False(t, math.IsNaN(d))
	assert.InEpsilon(t, math.Pi*EarthRadiusMeters, d, 1e-9)

	d = DistanceMeters(90, 0, -90, 0)
	assert.InEpsilon(t, math.Pi*EarthRadiusMeters, d, 1e-9)
}

func TestMapLink(t *testing.T) {
	assert.Equal(t, "https://www.google.com/maps?q=37,-122.5", MapLink("", 37, -122.5))
	assert.Equal(t, "https://maps.example.org/view?q=1.25,2", MapLink("https://maps.example.org/view", 1.25, 2))
}
