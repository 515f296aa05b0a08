package showcase

import "strings"

// soldStatus is the status label that removes a listing from the showcase.
const soldStatus = "Vendido"

// Section is one neighborhood block of the showcase, holding its listings in
// their original relative order.
type Section struct {
	Neighborhood string
	Properties   []DisplayProperty
}

// Catalog is the organized showcase content. Empty distinguishes "no active
// listings" from an error so the page can render its own empty message.
type Catalog struct {
	Sections []Section
	Empty    bool
}

// BuildCatalog filters out sold listings and groups the remainder by
// neighborhood. Section order follows the first appearance of each
// neighborhood in the input, not alphabetical order.
func BuildCatalog(properties []DisplayProperty) Catalog {
	index := make(map[string]int)
	var sections []Section

	for _, prop := range properties {
		if strings.EqualFold(prop.Status, soldStatus) {
			continue
		}
		i, seen := index[prop.Neighborhood]
		if !seen {
			i = len(sections)
			index[prop.Neighborhood] = i
			sections = append(sections, Section{Neighborhood: prop.Neighborhood})
		}
		sections[i].Properties = append(sections[i].Properties, prop)
	}

	return Catalog{Sections: sections, Empty: len(sections) == 0}
}
