package kernel

import (
	"errors"
	"fmt"
	"math"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

const (
	// LatitudeMin and LatitudeMax bound valid latitudes in degrees.
	LatitudeMin = -90.0
	LatitudeMax = 90.0
	// LongitudeMin and LongitudeMax bound valid longitudes in degrees.
	LongitudeMin = -180.0
	LongitudeMax = 180.0

	// EarthRadiusKm is the mean Earth radius (IUGG) used for great-circle distances.
	EarthRadiusKm = 6371.0088
)

// ErrLocationIsNotConstructed is returned when a zero-value Location is used.
var ErrLocationIsNotConstructed = errs.NewValueIsRequiredError(
	"location must be created via NewLocation")

// Location is a WGS84 latitude/longitude pair in degrees. It is an immutable
// value object; the zero value is invalid.
//
//	origin, err := kernel.NewLocation(-34.6037, -58.3816)
//	drop, _ := kernel.NewLocation(-34.6158, -58.4333)
//	km, err := origin.DistanceKm(drop)
type Location struct { //nolint:recvcheck //using for validation
	latitude  float64
	longitude float64
	guard     guard.ConstructorGuard
}

// NewLocation validates both coordinates. NaN and infinite values fail the
// range check.
func NewLocation(latitude, longitude float64) (Location, error) {
	loc := Location{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(loc.setLatitude(latitude), loc.setLongitude(longitude)); err != nil {
		return Location{}, err
	}

	return loc, nil
}

// Validate reports whether the location came from NewLocation.
func (l Location) Validate() error {
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

// Latitude returns degrees north.
func (l Location) Latitude() float64 {
	return l.latitude
}

// Longitude returns degrees east.
func (l Location) Longitude() float64 {
	return l.longitude
}

func (l Location) String() string {
	return fmt.Sprintf("Location(%.6f,%.6f)", l.latitude, l.longitude)
}

// IsEqual compares coordinates of two constructed locations.
func (l Location) IsEqual(other Location) (bool, error) {
	if err := errors.Join(l.Validate(), other.Validate()); err != nil {
		return false, err
	}
	return l.latitude == other.latitude && l.longitude == other.longitude, nil
}

// DistanceKm returns the haversine great-circle distance in kilometres.
// Straight-line distance is the only metric the dispatcher uses; it is not a
// road distance.
func (l Location) DistanceKm(other Location) (float64, error) {
	if err := errors.Join(l.Validate(), other.Validate()); err != nil {
		return 0, err
	}

	lat1 := toRadians(l.latitude)
	lat2 := toRadians(other.latitude)
	dLat := lat2 - lat1
	dLon := toRadians(other.longitude - l.longitude)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	// Clamp guards asin against a > 1 from floating point drift on antipodes.
	c := 2 * math.Asin(math.Sqrt(math.Min(1, a)))

	return EarthRadiusKm * c, nil
}

func (l *Location) setLatitude(latitude float64) error {
	if math.IsNaN(latitude) || latitude < LatitudeMin || latitude > LatitudeMax {
		return errs.NewValueIsOutOfRangeError("latitude", latitude, LatitudeMin, LatitudeMax)
	}
	l.latitude = latitude
	return nil
}

func (l *Location) setLongitude(longitude float64) error {
	if math.IsNaN(longitude) || longitude < LongitudeMin || longitude > LongitudeMax {
		return errs.NewValueIsOutOfRangeError("longitude", longitude, LongitudeMin, LongitudeMax)
	}
	l.longitude = longitude
	return nil
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
