package autolocate

import (
	"context"

	"laundry-king/internal/common/logger"
)

// Position is a device coordinate pair.
type Position struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Geolocator is the device geolocation capability. Permission denied,
// unavailable and timeout all come back as plain errors; the resolver lumps
// them into one generic user message.
type Geolocator interface {
	CurrentPosition(ctx context.Context) (Position, error)
}

// Geocoder translates a coordinate pair into a human-readable address.
// Best-effort: any failure degrades to coordinate text, it is never
// surfaced as an error.
type Geocoder interface {
	ReverseLookup(ctx context.Context, pos Position) (string, error)
}

// Dependencies wires the resolver to its collaborators. Geolocator may be
// nil when the capability is absent; Geocoder may be nil to skip the lookup.
type Dependencies struct {
	Geolocator Geolocator
	Geocoder   Geocoder
	Logger     logger.Logger

	// Notify surfaces a user-visible failure message. Optional.
	Notify func(message string)
}
