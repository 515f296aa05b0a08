package showcase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCatalog(t *testing.T) {
	t.Run("groups by neighborhood in first-seen order", func(t *testing.T) {
		catalog := BuildCatalog([]DisplayProperty{
			{ID: "1", Neighborhood: "Jardins"},
			{ID: "2", Neighborhood: "Atalaia"},
			{ID: "3", Neighborhood: "Jardins"},
			{ID: "4", Neighborhood: "Farolândia"},
		})

		require.Len(t, catalog.Sections, 3)
		assert.False(t, catalog.Empty)
		assert.Equal(t, "Jardins", catalog.Sections[0].Neighborhood)
		assert.Equal(t, "Atalaia", catalog.Sections[1].Neighborhood)
		assert.Equal(t, "Farolândia", catalog.Sections[2].Neighborhood)

		require.Len(t, catalog.Sections[0].Properties, 2)
		assert.Equal(t, "1", catalog.Sections[0].Properties[0].ID)
		assert.Equal(t, "3", catalog.Sections[0].Properties[1].ID)
	})

	t.Run("excludes sold listings case-insensitively", func(t *testing.T) {
		catalog := BuildCatalog([]DisplayProperty{
			{ID: "1", Neighborhood: "Jardins", Status: "Vendido"},
			{ID: "2", Neighborhood: "Jardins", Status: "VENDIDO"},
			{ID: "3", Neighborhood: "Jardins", Status: "vendido"},
			{ID: "4", Neighborhood: "Jardins", Status: "Disponível"},
		})

		require.Len(t, catalog.Sections, 1)
		require.Len(t, catalog.Sections[0].Properties, 1)
		assert.Equal(t, "4", catalog.Sections[0].Properties[0].ID)
	})

	t.Run("all sold yields explicit empty state", func(t *testing.T) {
		catalog := BuildCatalog([]DisplayProperty{
			{ID: "1", Neighborhood: "Jardins", Status: "Vendido"},
		})
		assert.True(t, catalog.Empty)
		assert.Empty(t, catalog.Sections)
	})

	t.Run("no input yields empty state", func(t *testing.T) {
		catalog := BuildCatalog(nil)
		assert.True(t, catalog.Empty)
	})

	t.Run("order is stable across repeated runs", func(t *testing.T) {
		input := []DisplayProperty{
			{ID: "1", Neighborhood: "Centro"},
			{ID: "2", Neighborhood: "Atalaia"},
			{ID: "3", Neighborhood: "Centro"},
		}
		first := BuildCatalog(input)
		second := BuildCatalog(input)
		require.Equal(t, len(first.Sections), len(second.Sections))
		for i := range first.Sections {
			assert.Equal(t, first.Sections[i].Neighborhood, second.Sections[i].Neighborhood)
		}
	})
}
