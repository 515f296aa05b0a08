package showcase

import (
	"testing"

	"vitrine/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProjector() *Projector {
	return NewProjector("Aracaju, SE", "5579999999999")
}

func TestProjectorProfile(t *testing.T) {
	p := newTestProjector()

	t.Run("applies fallbacks for empty profile", func(t *testing.T) {
		got := p.Profile(&entity.AgentProfile{})
		assert.Equal(t, "Corretor", got.Name)
		assert.Equal(t, "5579999999999", got.WhatsAppDigits)
		assert.Empty(t, got.HeaderMessage)
	})

	t.Run("nil profile is safe", func(t *testing.T) {
		got := p.Profile(nil)
		assert.Equal(t, "Corretor", got.Name)
		assert.Equal(t, "5579999999999", got.WhatsAppDigits)
	})

	t.Run("strips non-digits from whatsapp", func(t *testing.T) {
		got := p.Profile(&entity.AgentProfile{
			Name:     "Ana Souza",
			WhatsApp: "+55 (79) 98888-7766",
		})
		assert.Equal(t, "Ana Souza", got.Name)
		assert.Equal(t, "5579988887766", got.WhatsAppDigits)
	})
}

func TestProjectorProperties(t *testing.T) {
	p := newTestProjector()
	agent := DisplayProfile{Name: "Ana Souza", WhatsAppDigits: "5579988887766"}

	t.Run("applies display fallbacks", func(t *testing.T) {
		got := p.Properties(agent, []entity.Property{{ID: uuid.New()}})
		require.Len(t, got, 1)
		d := got[0]
		assert.Equal(t, "Sem Título", d.Title)
		assert.Equal(t, "Outros", d.Neighborhood)
		assert.Equal(t, "Aracaju, SE", d.City)
		assert.Equal(t, "Sob Consulta", d.PriceLabel)
		assert.Equal(t, "Entre em contato.", d.Description)
		assert.Equal(t, "Imóvel", d.Type)
		assert.Equal(t, "-", d.AreaLabel)
		assert.Equal(t, 113, d.ViewersMin)
		assert.Equal(t, 284, d.ViewersMax)
		assert.Empty(t, d.ShareImageURL)
	})

	t.Run("media and features are never nil", func(t *testing.T) {
		got := p.Properties(agent, []entity.Property{{ID: uuid.New()}})
		require.Len(t, got, 1)
		assert.NotNil(t, got[0].Media)
		assert.NotNil(t, got[0].Features)
		assert.Empty(t, got[0].Media)
	})

	t.Run("first media item becomes share image", func(t *testing.T) {
		got := p.Properties(agent, []entity.Property{{
			ID: uuid.New(),
			Media: []entity.MediaItem{
				{URL: "https://cdn.example/a.jpg"},
				{URL: "https://cdn.example/b.jpg"},
			},
		}})
		require.Len(t, got, 1)
		assert.Equal(t, "https://cdn.example/a.jpg", got[0].ShareImageURL)
	})

	t.Run("synthesizes contact message from agent and title", func(t *testing.T) {
		got := p.Properties(agent, []entity.Property{{ID: uuid.New(), Title: "Cobertura Vista Mar"}})
		require.Len(t, got, 1)
		assert.Equal(t, "Olá Ana Souza, vi o imóvel *Cobertura Vista Mar* e gostaria de detalhes.", got[0].ContactMessage)
		assert.Equal(t, "Tenho interesse no imóvel Cobertura Vista Mar", got[0].CardMessage)
	})

	t.Run("custom message overrides both links", func(t *testing.T) {
		got := p.Properties(agent, []entity.Property{{
			ID:              uuid.New(),
			WhatsAppMessage: "Quero visitar amanhã",
		}})
		require.Len(t, got, 1)
		assert.Equal(t, "Quero visitar amanhã", got[0].ContactMessage)
		assert.Equal(t, "Quero visitar amanhã", got[0].CardMessage)
	})

	t.Run("preserves input order", func(t *testing.T) {
		got := p.Properties(agent, []entity.Property{
			{ID: uuid.New(), Title: "Primeiro"},
			{ID: uuid.New(), Title: "Segundo"},
		})
		require.Len(t, got, 2)
		assert.Equal(t, "Primeiro", got[0].Title)
		assert.Equal(t, "Segundo", got[1].Title)
	})
}

func TestAreaLabel(t *testing.T) {
	tests := []struct {
		name string
		area float64
		want string
	}{
		{name: "whole area", area: 120, want: "120m²"},
		{name: "fractional area", area: 85.5, want: "85.5m²"},
		{name: "zero area", area: 0, want: "-"},
		{name: "negative area", area: -3, want: "-"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AreaLabel(tt.area))
		})
	}
}

func TestDigitsOnly(t *testing.T) {
	assert.Equal(t, "5579988887766", DigitsOnly("+55 (79) 98888-7766"))
	assert.Equal(t, "", DigitsOnly("abc"))
	assert.Equal(t, "123", DigitsOnly("123"))
}
