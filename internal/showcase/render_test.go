package showcase

import (
	"bytes"
	"strings"
	"testing"

	"vitrine/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderPage(t *testing.T, properties []DisplayProperty) string {
	t.Helper()
	r, err := NewRenderer()
	require.NoError(t, err)

	agent := DisplayProfile{
		Name:           "Ana Souza",
		CRECI:          "CRECI 1234",
		WhatsAppDigits: "5579988887766",
		HeaderMessage:  "Quero conhecer os imóveis",
	}
	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, agent, BuildCatalog(properties), properties))
	return buf.String()
}

func TestRendererFullDocument(t *testing.T) {
	properties := []DisplayProperty{
		{
			ID:           "prop-1",
			Title:        "Cobertura Vista Mar",
			Type:         "Cobertura",
			Status:       "Disponível",
			Neighborhood: "Atalaia",
			City:         "Aracaju, SE",
			PriceLabel:   "R$ 1.200.000,00",
			AreaLabel:    "120m²",
			Bedrooms:     3,
			Media: []entity.MediaItem{
				{URL: "https://cdn.example/a.jpg"},
				{URL: "https://cdn.example/b.mp4", IsVideo: true},
			},
			CardMessage:    "Tenho interesse no imóvel Cobertura Vista Mar",
			ContactMessage: "Olá Ana Souza, vi o imóvel *Cobertura Vista Mar* e gostaria de detalhes.",
			Features:       []string{"Piscina"},
		},
	}
	page := renderPage(t, properties)

	assert.True(t, strings.HasPrefix(page, "<!doctype html>"))
	assert.Contains(t, page, "<title>Luxe Estate | Ana Souza</title>")
	assert.Contains(t, page, "CRECI 1234")
	assert.Contains(t, page, "Atalaia")
	assert.Contains(t, page, "Cobertura Vista Mar")
	assert.Contains(t, page, "R$ 1.200.000,00")
	assert.Contains(t, page, "cdn.tailwindcss.com")
	assert.Contains(t, page, "fonts.googleapis.com")

	// Video slides autoplay muted, image slides are plain imgs.
	assert.Contains(t, page, `<video src="https://cdn.example/b.mp4" autoplay muted loop playsinline`)
	assert.Contains(t, page, `<img src="https://cdn.example/a.jpg"`)

	// The embedded snapshot drives the inline script.
	assert.Contains(t, page, `"whatsapp":"5579988887766"`)
	assert.Contains(t, page, `"viewerMin"`)
	assert.Contains(t, page, `"mapSrc"`)
}

func TestRendererCardNavigation(t *testing.T) {
	t.Run("arrows rendered when multiple media", func(t *testing.T) {
		page := renderPage(t, []DisplayProperty{{
			ID:           "multi",
			Neighborhood: "Centro",
			Media:        mediaItems(2),
		}})
		assert.Contains(t, page, "slideCardMedia(event, 'multi', -1)")
		assert.Contains(t, page, "slideCardMedia(event, 'multi', 1)")
	})

	t.Run("single media renders statically", func(t *testing.T) {
		page := renderPage(t, []DisplayProperty{{
			ID:           "single",
			Neighborhood: "Centro",
			Media:        mediaItems(1),
		}})
		assert.NotContains(t, page, "slideCardMedia(event, 'single'")
	})
}

func TestRendererEmptyCatalog(t *testing.T) {
	page := renderPage(t, nil)
	assert.Contains(t, page, "Nenhum imóvel disponível.")
	assert.NotContains(t, page, "property-card min-w")
}

func TestRendererSoldListingsExcluded(t *testing.T) {
	page := renderPage(t, []DisplayProperty{
		{ID: "sold", Title: "Casa Vendida", Neighborhood: "Centro", Status: "Vendido", Media: mediaItems(1)},
	})
	assert.Contains(t, page, "Nenhum imóvel disponível.")
}
