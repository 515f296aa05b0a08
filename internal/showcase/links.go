package showcase

import (
	"fmt"
	"net/url"
	"strings"
)

const (
	whatsAppBaseURL = "https://wa.me/"
	mapsBaseURL     = "https://maps.google.com/maps"
)

// WhatsAppLink builds a wa.me deep link for the given digits-only number.
// An empty message yields a bare link without the text parameter.
func WhatsAppLink(digits, message string) string {
	if message == "" {
		return whatsAppBaseURL + digits
	}
	return whatsAppBaseURL + digits + "?text=" + encodeURIComponent(message)
}

// MapEmbedURL builds the iframe source for the detail-view map. Explicit
// coordinates take precedence; otherwise the query falls back to the
// "{neighborhood}, {city}" text form at a slightly closer zoom.
func MapEmbedURL(lat, lng float64, neighborhood, city string) string {
	if lat != 0 && lng != 0 {
		return fmt.Sprintf("%s?q=%g,%g&hl=pt-br&z=14&output=embed", mapsBaseURL, lat, lng)
	}
	query := encodeURIComponent(neighborhood + ", " + city)
	return fmt.Sprintf("%s?q=%s&hl=pt-br&z=15&output=embed", mapsBaseURL, query)
}

// encodeURIComponent escapes the way browsers do: spaces become %20, not "+".
func encodeURIComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
