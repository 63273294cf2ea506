package school

import (
	"fmt"
	"net/url"
	"strings"
	"testing"
)

func TestBuildDistrictRouteURLCapsAtLimit(t *testing.T) {
	addresses := make([]string, 30)
	for i := range addresses {
		addresses[i] = fmt.Sprintf("Okul Caddesi No %d", i+1)
	}

	routeURL := BuildDistrictRouteURL("", addresses)

	rest := strings.TrimPrefix(routeURL, "https://www.google.com/maps/dir/")
	if rest == routeURL {
		t.Fatalf("unexpected url prefix: %s", routeURL)
	}
	parts := strings.Split(rest, "/")
	if len(parts) != MaxRouteWaypoints {
		t.Fatalf("expected %d addresses got %d", MaxRouteWaypoints, len(parts))
	}

	// sıra korunur: ilk ve son adres
	if parts[0] != url.PathEscape("Okul Caddesi No 1") {
		t.Fatalf("unexpected first waypoint %q", parts[0])
	}
	if parts[MaxRouteWaypoints-1] != url.PathEscape("Okul Caddesi No 25") {
		t.Fatalf("unexpected last waypoint %q", parts[MaxRouteWaypoints-1])
	}
	if strings.Contains(routeURL, url.PathEscape("Okul Caddesi No 26")) {
		t.Fatalf("address beyond the cap leaked into url")
	}
}

func TestBuildDistrictRouteURLWithOrigin(t *testing.T) {
	routeURL := BuildDistrictRouteURL("41.0082,28.9784", []string{"Adres A", "Adres B"})

	if !strings.HasPrefix(routeURL, "https://www.google.com/maps/dir/41.0082,28.9784/") {
		t.Fatalf("expected origin first, got %s", routeURL)
	}
	rest := strings.TrimPrefix(routeURL, "https://www.google.com/maps/dir/")
	parts := strings.Split(rest, "/")
	if len(parts) != 3 {
		t.Fatalf("expected origin + 2 addresses got %d parts", len(parts))
	}
}

func TestBuildDistrictRouteURLWithoutOriginUsesFirstAddress(t *testing.T) {
	routeURL := BuildDistrictRouteURL("", []string{"Adres A", "Adres B"})

	expected := "https://www.google.com/maps/dir/" + url.PathEscape("Adres A") + "/" + url.PathEscape("Adres B")
	if routeURL != expected {
		t.Fatalf("expected %s got %s", expected, routeURL)
	}
}

func TestBuildDistrictRouteURLEscapesOrigin(t *testing.T) {
	routeURL := BuildDistrictRouteURL("Kadıköy Meydan / İskele", []string{"Adres A"})

	expected := "https://www.google.com/maps/dir/" + url.PathEscape("Kadıköy Meydan / İskele") + "/" + url.PathEscape("Adres A")
	if routeURL != expected {
		t.Fatalf("expected %s got %s", expected, routeURL)
	}
	// origin içindeki '/' ayrı bir durak gibi bölünmemeli
	rest := strings.TrimPrefix(routeURL, "https://www.google.com/maps/dir/")
	if parts := strings.Split(rest, "/"); len(parts) != 2 {
		t.Fatalf("expected origin + 1 address got %d parts: %v", len(parts), parts)
	}
}

func TestBuildDistrictRouteURLEmpty(t *testing.T) {
	if got := BuildDistrictRouteURL("41,28", nil); got != "" {
		t.Fatalf("expected empty url got %q", got)
	}
}
