package showcase

import (
	"encoding/json"
	"html/template"
	"io"

	"vitrine/internal/errors"
)

// placeholderPhoto is shown when the agent has no profile picture.
const placeholderPhoto = "https://via.placeholder.com/150?text=..."

// Renderer produces the self-contained showcase document: inline style,
// server-rendered catalog sections and an inline script carrying the
// client-side behaviors, driven by the serialized snapshot.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses the page template once.
func NewRenderer() (*Renderer, error) {
	funcs := template.FuncMap{
		"walink": WhatsAppLink,
	}
	tmpl, err := template.New("showcase").Funcs(funcs).Parse(pageTemplate)
	if err != nil {
		return nil, errors.Wrap(err, "parse showcase template")
	}
	return &Renderer{tmpl: tmpl}, nil
}

// pageData is the template root.
type pageData struct {
	Agent          DisplayProfile
	Catalog        Catalog
	PhotoURL       string
	HeaderLink     string
	ProfileJSON    template.JS
	PropertiesJSON template.JS
}

// jsonProfile and jsonProperty are the embedded data literals the inline
// script reads. Shapes are part of the page contract, so they are kept apart
// from the Go-side display structs.
type jsonProfile struct {
	Name     string `json:"name"`
	CRECI    string `json:"creci"`
	PhotoURL string `json:"photoUrl"`
	WhatsApp string `json:"whatsapp"`
}

type jsonMedia struct {
	Type string `json:"type"`
	URL  string `json:"url"`
}

type jsonProperty struct {
	ID         string      `json:"id"`
	Title      string      `json:"title"`
	Bairro     string      `json:"bairro"`
	City       string      `json:"city"`
	Price      string      `json:"price"`
	Numeric    float64     `json:"numericPrice"`
	Type       string      `json:"type"`
	Beds       int         `json:"beds"`
	Suites     int         `json:"suites"`
	Baths      int         `json:"baths"`
	Cars       int         `json:"cars"`
	Area       string      `json:"area"`
	Desc       string      `json:"desc"`
	Features   []string    `json:"features"`
	Media      []jsonMedia `json:"media"`
	Status     string      `json:"status"`
	Badge      string      `json:"badge"`
	Tone       string      `json:"tone"`
	Simulador  bool        `json:"simulador"`
	ViewerMin  int         `json:"viewerMin"`
	ViewerMax  int         `json:"viewerMax"`
	ShareImage string      `json:"shareImage"`
	MapSrc     string      `json:"mapSrc"`
	WaDetail   string      `json:"waDetail"`
}

// Render writes the complete document for one snapshot.
func (r *Renderer) Render(w io.Writer, agent DisplayProfile, catalog Catalog, properties []DisplayProperty) error {
	profileJSON, err := json.Marshal(jsonProfile{
		Name:     agent.Name,
		CRECI:    agent.CRECI,
		PhotoURL: agent.PhotoURL,
		WhatsApp: agent.WhatsAppDigits,
	})
	if err != nil {
		return errors.Wrap(err, "marshal profile snapshot")
	}

	embedded := make([]jsonProperty, 0, len(properties))
	for _, p := range properties {
		embedded = append(embedded, toJSONProperty(agent, p))
	}
	propertiesJSON, err := json.Marshal(embedded)
	if err != nil {
		return errors.Wrap(err, "marshal property snapshot")
	}

	photo := agent.PhotoURL
	if photo == "" {
		photo = placeholderPhoto
	}

	data := pageData{
		Agent:          agent,
		Catalog:        catalog,
		PhotoURL:       photo,
		HeaderLink:     WhatsAppLink(agent.WhatsAppDigits, agent.HeaderMessage),
		ProfileJSON:    template.JS(profileJSON),
		PropertiesJSON: template.JS(propertiesJSON),
	}
	if err := r.tmpl.Execute(w, data); err != nil {
		return errors.Wrap(err, "execute showcase template")
	}
	return nil
}

func toJSONProperty(agent DisplayProfile, p DisplayProperty) jsonProperty {
	badge := p.Status
	if badge == "" {
		badge = fallbackBadge
	}
	media := make([]jsonMedia, 0, len(p.Media))
	for _, m := range p.Media {
		kind := "image"
		if m.IsVideo {
			kind = "video"
		}
		media = append(media, jsonMedia{Type: kind, URL: m.URL})
	}
	return jsonProperty{
		ID:         p.ID,
		Title:      p.Title,
		Bairro:     p.Neighborhood,
		City:       p.City,
		Price:      p.PriceLabel,
		Numeric:    p.PriceValue,
		Type:       p.Type,
		Beds:       p.Bedrooms,
		Suites:     p.Suites,
		Baths:      p.Bathrooms,
		Cars:       p.ParkingSpaces,
		Area:       p.AreaLabel,
		Desc:       p.Description,
		Features:   p.Features,
		Media:      media,
		Status:     p.Status,
		Badge:      badge,
		Tone:       string(BadgeToneFor(p.Status)),
		Simulador:  p.ShowFinancing,
		ViewerMin:  p.ViewersMin,
		ViewerMax:  p.ViewersMax,
		ShareImage: p.ShareImageURL,
		MapSrc:     MapEmbedURL(p.Latitude, p.Longitude, p.Neighborhood, p.City),
		WaDetail:   WhatsAppLink(agent.WhatsAppDigits, p.ContactMessage),
	}
}
