package autolocate

import (
	"context"
	"fmt"
	"testing"

	stderrors "laundry-king/internal/common/errors"
	"laundry-king/internal/common/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Stub Collaborators
// ==========================

type stubGeolocator struct {
	pos   Position
	err   error
	calls int
}

func (s *stubGeolocator) CurrentPosition(ctx context.Context) (Position, error) {
	s.calls++
	if s.err != nil {
		return Position{}, s.err
	}
	return s.pos, nil
}

type stubGeocoder struct {
	name string
	err  error
}

func (s *stubGeocoder) ReverseLookup(ctx context.Context, pos Position) (string, error) {
	return s.name, s.err
}

type notices struct {
	messages []string
}

func (n *notices) notify(message string) {
	n.messages = append(n.messages, message)
}

func newTestResolver(t *testing.T, geo Geolocator, geocoder Geocoder) (*Resolver, *notices) {
	t.Helper()
	n := &notices{}
	r := NewResolver(Dependencies{
		Geolocator: geo,
		Geocoder:   geocoder,
		Logger:     logger.NewTestLogger(t),
		Notify:     n.notify,
	})
	return r, n
}

// ==========================
// Detection Paths
// ==========================

func TestDetect_GeocodeSuccessUsesDisplayName(t *testing.T) {
	geo := &stubGeolocator{pos: Position{Latitude: 12.97161, Longitude: 77.59457}}
	r, n := newTestResolver(t, geo, &stubGeocoder{name: "MG Road, Bengaluru, Karnataka, India"})

	require.NoError(t, r.Detect(context.Background()))

	assert.Equal(t, "MG Road, Bengaluru, Karnataka, India", r.Address())
	require.NotNil(t, r.Position())
	assert.Equal(t, 12.97161, r.Position().Latitude)
	assert.False(t, r.Locating())
	assert.Empty(t, n.messages)
}

func TestDetect_GeocodeFailureDegradesToCoordinates(t *testing.T) {
	tests := []struct {
		name     string
		geocoder Geocoder
	}{
		{name: "lookup error", geocoder: &stubGeocoder{err: fmt.Errorf("network down")}},
		{name: "empty display name", geocoder: &stubGeocoder{name: "  "}},
		{name: "no geocoder wired", geocoder: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			geo := &stubGeolocator{pos: Position{Latitude: 12.971598, Longitude: 77.594566}}
			r, n := newTestResolver(t, geo, tt.geocoder)

			err := r.Detect(context.Background())

			require.NoError(t, err, "degraded success is not an error")
			assert.Equal(t, "Lat: 12.9716, Long: 77.5946", r.Address())
			assert.False(t, r.Locating())
			assert.Empty(t, n.messages, "no failure surfaced on the degraded path")
		})
	}
}

func TestDetect_PositionFailureLeavesAddressUnchanged(t *testing.T) {
	geo := &stubGeolocator{err: fmt.Errorf("permission denied")}
	r, n := newTestResolver(t, geo, &stubGeocoder{name: "unused"})
	r.SetManualAddress("12 Brigade Road")

	err := r.Detect(context.Background())

	require.Error(t, err)
	assert.True(t, stderrors.IsCapability(err))
	assert.Equal(t, "12 Brigade Road", r.Address())
	assert.Nil(t, r.Position())
	assert.False(t, r.Locating())
	assert.Len(t, n.messages, 1, "failure surfaced exactly once")
}

func TestDetect_NoGeolocatorIsCapabilityError(t *testing.T) {
	r, n := newTestResolver(t, nil, nil)

	err := r.Detect(context.Background())

	require.Error(t, err)
	assert.True(t, stderrors.IsCapability(err))
	assert.Len(t, n.messages, 1)
}

// ==========================
// Manual Edits and Reset
// ==========================

func TestSetManualAddress_KeepsDetectedCoordinates(t *testing.T) {
	geo := &stubGeolocator{pos: Position{Latitude: 1.5, Longitude: 2.5}}
	r, _ := newTestResolver(t, geo, nil)
	require.NoError(t, r.Detect(context.Background()))

	r.SetManualAddress("Somewhere else entirely")

	// Accepted drift: the marker and the text no longer agree.
	assert.Equal(t, "Somewhere else entirely", r.Address())
	require.NotNil(t, r.Position())
	assert.Equal(t, 1.5, r.Position().Latitude)
}

func TestReset_ClearsAddressAndCoordinates(t *testing.T) {
	geo := &stubGeolocator{pos: Position{Latitude: 1, Longitude: 2}}
	r, _ := newTestResolver(t, geo, nil)
	require.NoError(t, r.Detect(context.Background()))

	r.Reset()

	assert.Empty(t, r.Address())
	assert.Nil(t, r.Position())
}

// ==========================
// In-flight Guard
// ==========================

func TestDetect_InFlightGuardBlocksSecondRequest(t *testing.T) {
	geo := &stubGeolocator{pos: Position{Latitude: 1, Longitude: 2}}
	r, _ := newTestResolver(t, geo, nil)
	r.locating = true

	require.NoError(t, r.Detect(context.Background()))

	assert.Equal(t, 0, geo.calls)
	assert.Empty(t, r.Address())
}

func TestFormatCoordinates_RoundsToFourDecimals(t *testing.T) {
	assert.Equal(t, "Lat: 12.9716, Long: 77.5946",
		FormatCoordinates(Position{Latitude: 12.97159, Longitude: 77.59457}))
	assert.Equal(t, "Lat: -33.8688, Long: 151.2093",
		FormatCoordinates(Position{Latitude: -33.86882, Longitude: 151.20929}))
}
