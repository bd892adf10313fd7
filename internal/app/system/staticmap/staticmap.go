// internal/app/system/staticmap/staticmap.go

// Package staticmap builds static map image URLs for the live-activity
// screen. The page refreshes the image on a timer; the tile provider does
// the rendering, this package only assembles the request URL.
package staticmap

import (
	"fmt"
	"net/url"
	"strings"
)

const providerBase = "https://maps.geoapify.com/v1/staticmap"

// Marker is a point drawn on the map.
type Marker struct {
	Lat   float64
	Lng   float64
	Color string // provider color name or hex without '#'
}

// Builder assembles static map URLs with a configured API key.
type Builder struct {
	key string
}

// New returns a Builder for the given tile API key. An empty key is allowed;
// URL then returns "" and the page falls back to a placeholder.
func New(key string) *Builder {
	return &Builder{key: key}
}

// Configured reports whether a tile key is present.
func (b *Builder) Configured() bool { return b.key != "" }

// URL builds a static map image URL centered on (lat,lng) with the given
// markers. Returns "" when no key is configured.
func (b *Builder) URL(lat, lng float64, zoom, width, height int, markers []Marker) string {
	if b.key == "" {
		return ""
	}

	q := url.Values{}
	q.Set("style", "osm-carto")
	q.Set("center", fmt.Sprintf("lonlat:%.6f,%.6f", lng, lat))
	q.Set("zoom", fmt.Sprintf("%d", zoom))
	q.Set("width", fmt.Sprintf("%d", width))
	q.Set("height", fmt.Sprintf("%d", height))
	if len(markers) > 0 {
		parts := make([]string, 0, len(markers))
		for _, m := range markers {
			parts = append(parts, fmt.Sprintf("lonlat:%.6f,%.6f;color:%s;size:medium",
				m.Lng, m.Lat, markerColor(m.Color)))
		}
		q.Set("marker", strings.Join(parts, "|"))
	}
	q.Set("apiKey", b.key)

	return providerBase + "?" + q.Encode()
}

// markerColor formats a marker color for the provider: named colors go bare,
// hex values get a '#' prefix. Empty defaults to red.
func markerColor(c string) string {
	c = strings.TrimPrefix(c, "#")
	if c == "" {
		return "red"
	}
	if isHex(c) {
		return "#" + c
	}
	return c
}

func isHex(s string) bool {
	if len(s) != 3 && len(s) != 6 {
		return false
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		case r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}
