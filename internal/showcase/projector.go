// Package showcase implements the public showcase page: projection of the
// persisted profile and catalog into display shapes, neighborhood grouping,
// gallery and detail-view state, the viewer-count simulator, the SAC loan
// calculator and the final HTML rendering.
package showcase

import (
	"strconv"
	"strings"

	"vitrine/internal/domain/entity"
)

// Presentation fallbacks applied when a persisted field is empty.
const (
	fallbackAgentName    = "Corretor"
	fallbackTitle        = "Sem Título"
	fallbackNeighborhood = "Outros"
	fallbackPrice        = "Sob Consulta"
	fallbackDescription  = "Entre em contato."
	fallbackType         = "Imóvel"

	defaultViewersMin = 113
	defaultViewersMax = 284
)

// DisplayProfile is the agent identity as rendered on the showcase page.
// WhatsAppDigits is guaranteed to contain only digits.
type DisplayProfile struct {
	Name           string
	CRECI          string
	PhotoURL       string
	WhatsAppDigits string
	HeaderMessage  string
}

// DisplayProperty is one listing after fallback resolution, ready for the
// catalog organizer and the renderer. Media is never nil.
type DisplayProperty struct {
	ID             string
	Title          string
	Description    string
	Type           string
	Status         string
	Neighborhood   string
	City           string
	PriceLabel     string
	PriceValue     float64
	AreaLabel      string
	Bedrooms       int
	Suites         int
	Bathrooms      int
	ParkingSpaces  int
	Features       []string
	Media          []entity.MediaItem
	Latitude       float64
	Longitude      float64
	ShowFinancing  bool
	ViewersMin     int
	ViewersMax     int
	ShareImageURL  string
	ContactMessage string // Detail-view message, custom override or synthesized.
	CardMessage    string // Card-button message, custom override or short interest text.
}

// Projector maps persisted records into display shapes. The zero value is
// usable; DefaultCity and FallbackWhatsApp override the deployment defaults.
type Projector struct {
	DefaultCity      string
	FallbackWhatsApp string
}

// NewProjector returns a projector with the stock deployment defaults.
func NewProjector(defaultCity, fallbackWhatsApp string) *Projector {
	return &Projector{DefaultCity: defaultCity, FallbackWhatsApp: fallbackWhatsApp}
}

// Profile applies the profile fallbacks and strips the WhatsApp number down
// to digits.
func (p *Projector) Profile(profile *entity.AgentProfile) DisplayProfile {
	out := DisplayProfile{Name: fallbackAgentName, WhatsAppDigits: p.FallbackWhatsApp}
	if profile == nil {
		return out
	}
	if profile.Name != "" {
		out.Name = profile.Name
	}
	if digits := DigitsOnly(profile.WhatsApp); digits != "" {
		out.WhatsAppDigits = digits
	}
	out.CRECI = profile.CRECI
	out.PhotoURL = profile.PhotoURL
	out.HeaderMessage = profile.HeaderMessage
	return out
}

// Properties projects every listing, resolving fallbacks against the given
// display profile. Input order is preserved.
func (p *Projector) Properties(agent DisplayProfile, properties []entity.Property) []DisplayProperty {
	out := make([]DisplayProperty, 0, len(properties))
	for i := range properties {
		out = append(out, p.property(agent, &properties[i]))
	}
	return out
}

func (p *Projector) property(agent DisplayProfile, prop *entity.Property) DisplayProperty {
	d := DisplayProperty{
		ID:            prop.ID.String(),
		Title:         fallback(prop.Title, fallbackTitle),
		Description:   fallback(prop.Description, fallbackDescription),
		Type:          fallback(string(prop.Type), fallbackType),
		Status:        string(prop.Status),
		Neighborhood:  fallback(prop.Neighborhood, fallbackNeighborhood),
		City:          fallback(prop.City, p.DefaultCity),
		PriceLabel:    fallback(prop.DisplayPrice, fallbackPrice),
		PriceValue:    prop.PriceValue,
		AreaLabel:     AreaLabel(prop.Area),
		Bedrooms:      prop.Bedrooms,
		Suites:        prop.Suites,
		Bathrooms:     prop.Bathrooms,
		ParkingSpaces: prop.ParkingSpaces,
		Features:      prop.Features,
		Media:         prop.Media,
		Latitude:      prop.Latitude,
		Longitude:     prop.Longitude,
		ShowFinancing: prop.ShowFinancing,
		ViewersMin:    prop.ViewersMin,
		ViewersMax:    prop.ViewersMax,
	}
	if d.Features == nil {
		d.Features = []string{}
	}
	if d.Media == nil {
		d.Media = []entity.MediaItem{}
	}
	if d.ViewersMin == 0 {
		d.ViewersMin = defaultViewersMin
	}
	if d.ViewersMax == 0 {
		d.ViewersMax = defaultViewersMax
	}
	if len(d.Media) > 0 {
		d.ShareImageURL = d.Media[0].URL
	}
	if prop.WhatsAppMessage != "" {
		d.ContactMessage = prop.WhatsAppMessage
		d.CardMessage = prop.WhatsAppMessage
	} else {
		d.ContactMessage = "Olá " + agent.Name + ", vi o imóvel *" + d.Title + "* e gostaria de detalhes."
		d.CardMessage = "Tenho interesse no imóvel " + d.Title
	}
	return d
}

// AreaLabel formats a floor area as "{n}m²", or "-" when the area is absent.
func AreaLabel(area float64) string {
	if area <= 0 {
		return "-"
	}
	return strconv.FormatFloat(area, 'f', -1, 64) + "m²"
}

// DigitsOnly strips every non-digit rune from s.
func DigitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func fallback(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return value
}
