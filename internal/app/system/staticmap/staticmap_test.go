package staticmap

import (
	"net/url"
	"strings"
	"testing"
)

func TestURL_NoKey(t *testing.T) {
	b := New("")
	if got := b.URL(40.7, -74.0, 12, 800, 600, nil); got != "" {
		t.Errorf("URL with no key = %q, want empty", got)
	}
	if b.Configured() {
		t.Error("Configured() = true for empty key")
	}
}

func TestURL_CenterZoomAndKey(t *testing.T) {
	b := New("test-key")
	raw := b.URL(40.712800, -74.006000, 12, 800, 600, nil)

	u, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	q := u.Query()
	if q.Get("apiKey") != "test-key" {
		t.Errorf("apiKey = %q", q.Get("apiKey"))
	}
	if q.Get("center") != "lonlat:-74.006000,40.712800" {
		t.Errorf("center = %q", q.Get("center"))
	}
	if q.Get("zoom") != "12" || q.Get("width") != "800" || q.Get("height") != "600" {
		t.Errorf("zoom/width/height = %q/%q/%q", q.Get("zoom"), q.Get("width"), q.Get("height"))
	}
}

func TestURL_Markers(t *testing.T) {
	b := New("k")
	raw := b.URL(0, 0, 10, 400, 300, []Marker{
		{Lat: 1.5, Lng: 2.5, Color: "blue"},
		{Lat: -3, Lng: -4},
		{Lat: 5, Lng: 6, Color: "ff0000"},
	})

	u, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	marker := u.Query().Get("marker")
	if !strings.Contains(marker, "lonlat:2.500000,1.500000") {
		t.Errorf("first marker missing: %q", marker)
	}
	// Named colors go bare; only hex values carry the '#' prefix.
	if !strings.Contains(marker, "color:blue") || strings.Contains(marker, "color:#blue") {
		t.Errorf("named color misformatted: %q", marker)
	}
	if !strings.Contains(marker, "color:#ff0000") {
		t.Errorf("hex color missing prefix: %q", marker)
	}
	// Default color applied when unset.
	if !strings.Contains(marker, "color:red") {
		t.Errorf("default color missing: %q", marker)
	}
}

func TestMarkerColor(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"", "red"},
		{"green", "green"},
		{"ff0000", "#ff0000"},
		{"#ff0000", "#ff0000"},
		{"ABC", "#ABC"},
		{"reddish", "reddish"},
	}
	for _, c := range cases {
		if got := markerColor(c.in); got != c.want {
			t.Errorf("markerColor(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
