package showcase

import "strings"

// ViewState is the showcase navigation state. There are exactly two states;
// only one property can be open at a time.
type ViewState int

const (
	// StateHome shows the neighborhood catalog.
	StateHome ViewState = iota
	// StatePropertyDetail shows one expanded property.
	StatePropertyDetail
)

// BadgeTone is the visual category of the status badge on the detail view.
type BadgeTone string

const (
	ToneSuccess BadgeTone = "success"
	ToneWarning BadgeTone = "warning"
	ToneDanger  BadgeTone = "danger"
)

// fallbackBadge is shown when a listing carries no status.
const fallbackBadge = "DISPONÍVEL"

// DetailView is the derived state of one open property.
type DetailView struct {
	Property    DisplayProperty
	Badge       string
	Tone        BadgeTone
	MapURL      string
	ContactLink string
	Gallery     *Gallery
}

// Session owns all mutable view state of one showcase instance: the current
// navigation state, the open detail view and the viewer-count simulator.
// It replaces what would otherwise be ambient globals, so teardown is a
// single method call.
type Session struct {
	agent      DisplayProfile
	properties []DisplayProperty
	simulator  *Simulator

	state  ViewState
	detail *DetailView
}

// NewSession captures a read-only snapshot of the projected catalog. The
// simulator may be nil when no notification surface exists.
func NewSession(agent DisplayProfile, properties []DisplayProperty, simulator *Simulator) *Session {
	return &Session{agent: agent, properties: properties, simulator: simulator}
}

// State returns the current navigation state.
func (s *Session) State() ViewState {
	return s.state
}

// Detail returns the open detail view, or nil in the home state.
func (s *Session) Detail() *DetailView {
	return s.detail
}

// Open expands the property with the given id. An unknown id is a no-op and
// the session stays home. Opening while another property is open restarts
// everything from scratch: gallery back to slide 0, simulator rebound to the
// new property's viewer bounds.
func (s *Session) Open(id string) bool {
	prop, found := s.find(id)
	if !found {
		return false
	}

	badge := prop.Status
	if badge == "" {
		badge = fallbackBadge
	}

	s.detail = &DetailView{
		Property:    prop,
		Badge:       badge,
		Tone:        BadgeToneFor(prop.Status),
		MapURL:      MapEmbedURL(prop.Latitude, prop.Longitude, prop.Neighborhood, prop.City),
		ContactLink: WhatsAppLink(s.agent.WhatsAppDigits, prop.ContactMessage),
		Gallery:     NewGallery(prop.Media),
	}
	s.state = StatePropertyDetail
	if s.simulator != nil {
		s.simulator.Start(prop.ViewersMin, prop.ViewersMax)
	}
	return true
}

// Close returns to the home state, stopping the simulator and dropping the
// gallery binding. Idempotent.
func (s *Session) Close() {
	if s.simulator != nil {
		s.simulator.Stop()
	}
	s.detail = nil
	s.state = StateHome
}

func (s *Session) find(id string) (DisplayProperty, bool) {
	for _, p := range s.properties {
		if p.ID == id {
			return p, true
		}
	}
	return DisplayProperty{}, false
}

// BadgeToneFor maps a status label to its badge tone: warning for last
// units, danger for sold, success for everything else.
func BadgeToneFor(status string) BadgeTone {
	switch {
	case strings.EqualFold(status, "Últimas unidades"):
		return ToneWarning
	case strings.EqualFold(status, soldStatus):
		return ToneDanger
	default:
		return ToneSuccess
	}
}
