// Package autolocate resolves a human-readable pickup address, either from
// manual entry or from device geolocation plus a best-effort reverse-geocode
// lookup.
package autolocate

import (
	"context"
	"fmt"
	"strings"

	stderrors "laundry-king/internal/common/errors"
	"laundry-king/internal/common/logger"
	"laundry-king/internal/common/metrics"
)

// Resolver owns the pickup location fields. Not safe for concurrent use;
// the locating flag guards against a second in-flight detection, not against
// parallel goroutines.
type Resolver struct {
	geolocator Geolocator
	geocoder   Geocoder
	logger     logger.Logger
	notify     func(string)

	address  string
	position *Position
	locating bool
}

func NewResolver(deps Dependencies) *Resolver {
	log := deps.Logger
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	notify := deps.Notify
	if notify == nil {
		notify = func(string) {}
	}

	return &Resolver{
		geolocator: deps.Geolocator,
		geocoder:   deps.Geocoder,
		logger:     log.WithFields(map[string]interface{}{"workflow": "auto-locate"}),
		notify:     notify,
	}
}

func (r *Resolver) Address() string {
	return r.address
}

// Position returns the last detected coordinates, or nil before any
// successful detection.
func (r *Resolver) Position() *Position {
	return r.position
}

// Locating reports the in-flight guard; the UI disables auto-detect while
// true.
func (r *Resolver) Locating() bool {
	return r.locating
}

// SetManualAddress overwrites the address at any time. Previously resolved
// coordinates are kept, so the display text and a map marker can drift
// apart; that is accepted behavior.
func (r *Resolver) SetManualAddress(text string) {
	r.address = text
}

// Reset clears both address and coordinates for a fresh order cycle.
func (r *Resolver) Reset() {
	r.address = ""
	r.position = nil
}

// Detect requests the device position and resolves it to an address. On
// geocode failure the address falls back to coordinate text (degraded
// success, nothing surfaced). On position failure the address is left
// unchanged and a generic failure message is surfaced once. The locating
// flag is released on every exit path.
func (r *Resolver) Detect(ctx context.Context) error {
	if r.geolocator == nil {
		err := stderrors.NewGeolocationUnsupportedError()
		r.notify(err.Message)
		return err
	}
	if r.locating {
		return nil
	}

	r.locating = true
	defer func() { r.locating = false }()

	pos, err := r.geolocator.CurrentPosition(ctx)
	if err != nil {
		r.logger.Warn("geolocation failed", map[string]interface{}{
			"error": err.Error(),
		})
		metrics.LocateAttempts.WithLabelValues(metrics.OutcomeFailed).Inc()
		stdErr := stderrors.NewGeolocationFailedError(err)
		r.notify(stdErr.Message)
		return stdErr
	}

	r.position = &pos
	r.address = r.resolveAddress(ctx, pos)
	return nil
}

func (r *Resolver) resolveAddress(ctx context.Context, pos Position) string {
	if r.geocoder != nil {
		name, err := r.geocoder.ReverseLookup(ctx, pos)
		if err == nil && strings.TrimSpace(name) != "" {
			metrics.LocateAttempts.WithLabelValues(metrics.OutcomeResolved).Inc()
			return name
		}
		if err != nil {
			// Degrade-not-fail: fall through to coordinate text.
			r.logger.Debug("reverse geocode failed, using coordinates", map[string]interface{}{
				"code":  string(stderrors.ErrCodeGeocodeLookupFailed),
				"error": err.Error(),
			})
		}
	}
	metrics.LocateAttempts.WithLabelValues(metrics.OutcomeDegraded).Inc()
	return FormatCoordinates(pos)
}

// FormatCoordinates renders the coordinate fallback text, rounded to 4
// decimal places.
func FormatCoordinates(pos Position) string {
	return fmt.Sprintf("Lat: %.4f, Long: %.4f", pos.Latitude, pos.Longitude)
}
