// internal/workflows/auto-locate/geo.go
//
// Concrete geo collaborators: a Nominatim reverse-geocoding client and an
// IP-based position lookup. Both are unauthenticated best-effort services.
package autolocate

import (
	"context"
	"fmt"
	"net/url"

	commonhttp "laundry-king/internal/common/http"
)

// NominatimGeocoder resolves coordinates via the Nominatim reverse endpoint.
type NominatimGeocoder struct {
	baseURL string
	http    *commonhttp.Client
}

func NewNominatimGeocoder(cfg *Config) *NominatimGeocoder {
	return &NominatimGeocoder{
		baseURL: cfg.GeocodeURL,
		http:    commonhttp.NewClient(cfg.Timeout),
	}
}

type nominatimResponse struct {
	DisplayName string `json:"display_name"`
}

func (g *NominatimGeocoder) ReverseLookup(ctx context.Context, pos Position) (string, error) {
	u := fmt.Sprintf("%s/reverse?format=jsonv2&lat=%s&lon=%s",
		g.baseURL,
		url.QueryEscape(fmt.Sprintf("%f", pos.Latitude)),
		url.QueryEscape(fmt.Sprintf("%f", pos.Longitude)),
	)

	var resp nominatimResponse
	if err := g.http.GetJSON(ctx, u, &resp); err != nil {
		return "", err
	}
	if resp.DisplayName == "" {
		return "", fmt.Errorf("reverse lookup returned no display name")
	}
	return resp.DisplayName, nil
}

// IPLocator approximates the device position from the caller's public IP.
// It stands in for browser geolocation in the terminal front-end.
type IPLocator struct {
	baseURL string
	http    *commonhttp.Client
}

func NewIPLocator(cfg *Config) *IPLocator {
	return &IPLocator{
		baseURL: cfg.LookupURL,
		http:    commonhttp.NewClient(cfg.Timeout),
	}
}

type ipAPIResponse struct {
	Status  string  `json:"status"`
	Message string  `json:"message"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

func (l *IPLocator) CurrentPosition(ctx context.Context) (Position, error) {
	var resp ipAPIResponse
	if err := l.http.GetJSON(ctx, l.baseURL+"/json", &resp); err != nil {
		return Position{}, err
	}
	if resp.Status != "success" {
		return Position{}, fmt.Errorf("ip lookup failed: %s", resp.Message)
	}
	return Position{Latitude: resp.Lat, Longitude: resp.Lon}, nil
}

// StaticGeolocator returns a fixed position; used in tests and as a config
// escape hatch when no network lookup is wanted.
type StaticGeolocator struct {
	Pos Position
}

func (s StaticGeolocator) CurrentPosition(ctx context.Context) (Position, error) {
	return s.Pos, nil
}
