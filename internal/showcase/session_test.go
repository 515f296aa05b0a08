package showcase

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAgent() DisplayProfile {
	return DisplayProfile{Name: "Ana Souza", WhatsAppDigits: "5579988887766"}
}

func testSessionProperties() []DisplayProperty {
	return []DisplayProperty{
		{
			ID:             "prop-1",
			Title:          "Cobertura Vista Mar",
			Status:         "Disponível",
			Neighborhood:   "Atalaia",
			City:           "Aracaju, SE",
			Latitude:       -10.97,
			Longitude:      -37.05,
			ContactMessage: "Olá Ana Souza, vi o imóvel *Cobertura Vista Mar* e gostaria de detalhes.",
			Media:          mediaItems(3),
			ViewersMin:     10,
			ViewersMax:     20,
			ShowFinancing:  true,
		},
		{
			ID:           "prop-2",
			Title:        "Casa no Centro",
			Status:       "Últimas unidades",
			Neighborhood: "Centro",
			City:         "Aracaju, SE",
			Media:        mediaItems(1),
			ViewersMin:   1,
			ViewersMax:   5,
		},
	}
}

func newTestSession() *Session {
	sim := NewSimulator(testSimConfig(), &fixedSampler{}, nil, nil)
	return NewSession(testAgent(), testSessionProperties(), sim)
}

func TestSessionOpen(t *testing.T) {
	t.Run("unknown id is a no-op", func(t *testing.T) {
		s := newTestSession()
		assert.False(t, s.Open("missing"))
		assert.Equal(t, StateHome, s.State())
		assert.Nil(t, s.Detail())
	})

	t.Run("derives the detail view", func(t *testing.T) {
		s := newTestSession()
		require.True(t, s.Open("prop-1"))
		require.Equal(t, StatePropertyDetail, s.State())

		d := s.Detail()
		require.NotNil(t, d)
		assert.Equal(t, "Disponível", d.Badge)
		assert.Equal(t, ToneSuccess, d.Tone)
		assert.Equal(t, "https://maps.google.com/maps?q=-10.97,-37.05&hl=pt-br&z=14&output=embed", d.MapURL)
		assert.Equal(t,
			"https://wa.me/5579988887766?text=Ol%C3%A1%20Ana%20Souza%2C%20vi%20o%20im%C3%B3vel%20%2ACobertura%20Vista%20Mar%2A%20e%20gostaria%20de%20detalhes.",
			d.ContactLink)
		assert.True(t, d.Property.ShowFinancing)
		assert.Equal(t, 0, d.Gallery.Index())
		assert.True(t, d.Gallery.ShowNav())
	})

	t.Run("missing coordinates fall back to text query", func(t *testing.T) {
		s := newTestSession()
		require.True(t, s.Open("prop-2"))
		assert.Equal(t,
			"https://maps.google.com/maps?q=Centro%2C%20Aracaju%2C%20SE&hl=pt-br&z=15&output=embed",
			s.Detail().MapURL)
		assert.False(t, s.Detail().Property.ShowFinancing)
	})

	t.Run("status maps to badge tone", func(t *testing.T) {
		s := newTestSession()
		require.True(t, s.Open("prop-2"))
		assert.Equal(t, ToneWarning, s.Detail().Tone)
	})

	t.Run("empty status falls back to available badge", func(t *testing.T) {
		sim := NewSimulator(testSimConfig(), &fixedSampler{}, nil, nil)
		s := NewSession(testAgent(), []DisplayProperty{{ID: "p", Media: mediaItems(1)}}, sim)
		require.True(t, s.Open("p"))
		assert.Equal(t, "DISPONÍVEL", s.Detail().Badge)
		assert.Equal(t, ToneSuccess, s.Detail().Tone)
		s.Close()
	})
}

func TestSessionReopenResetsGallery(t *testing.T) {
	s := newTestSession()
	require.True(t, s.Open("prop-1"))
	s.Detail().Gallery.Next()
	s.Detail().Gallery.Next()
	require.Equal(t, 2, s.Detail().Gallery.Index())

	// Re-opening another property restarts from slide zero.
	require.True(t, s.Open("prop-2"))
	assert.Equal(t, 0, s.Detail().Gallery.Index())
	assert.Equal(t, 1, s.Detail().Gallery.Len())
	s.Close()
}

func TestSessionClose(t *testing.T) {
	sim := NewSimulator(testSimConfig(), &fixedSampler{}, nil, nil)
	s := NewSession(testAgent(), testSessionProperties(), sim)

	require.True(t, s.Open("prop-1"))
	require.True(t, sim.Running())

	s.Close()
	assert.Equal(t, StateHome, s.State())
	assert.Nil(t, s.Detail())
	assert.False(t, sim.Running())

	// Idempotent.
	assert.NotPanics(t, func() {
		s.Close()
		s.Close()
	})
}

func TestSessionWithoutSimulator(t *testing.T) {
	s := NewSession(testAgent(), testSessionProperties(), nil)
	require.True(t, s.Open("prop-1"))
	assert.NotPanics(t, s.Close)
}

func TestBadgeToneFor(t *testing.T) {
	tests := []struct {
		status string
		want   BadgeTone
	}{
		{status: "Últimas unidades", want: ToneWarning},
		{status: "ÚLTIMAS UNIDADES", want: ToneWarning},
		{status: "Vendido", want: ToneDanger},
		{status: "vendido", want: ToneDanger},
		{status: "Disponível", want: ToneSuccess},
		{status: "Reservado", want: ToneSuccess},
		{status: "", want: ToneSuccess},
	}
	for _, tt := range tests {
		t.Run("status "+tt.status, func(t *testing.T) {
			assert.Equal(t, tt.want, BadgeToneFor(tt.status))
		})
	}
}

// The simulator handles are rebound on every open; a stale schedule from a
// previous property must never fire again.
func TestSessionReopenRestartsSimulator(t *testing.T) {
	var mu sync.Mutex
	seen := map[int]bool{}
	sampler := samplerFunc(func(min, _ int) int {
		mu.Lock()
		seen[min] = true
		mu.Unlock()
		return min
	})
	sim := NewSimulator(SimulatorConfig{
		FirstDelay: time.Millisecond,
		Interval:   10 * time.Millisecond,
		HideAfter:  2 * time.Millisecond,
	}, sampler, nil, nil)
	s := NewSession(testAgent(), testSessionProperties(), sim)

	require.True(t, s.Open("prop-1"))
	time.Sleep(20 * time.Millisecond)
	require.True(t, s.Open("prop-2"))
	time.Sleep(20 * time.Millisecond)
	s.Close()

	mu.Lock()
	defer mu.Unlock()
	assert.True(t, seen[10], "first property bounds fired")
	assert.True(t, seen[1], "second property bounds fired")
}

type samplerFunc func(min, max int) int

func (f samplerFunc) Sample(min, max int) int { return f(min, max) }
