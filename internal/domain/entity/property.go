package entity

import (
	"time"

	"github.com/google/uuid"
)

// PropertyType classifies a listing. Values are stored verbatim and shown
// on the showcase card, so they are kept in the product locale.
type PropertyType string

const (
	TypeApartamento PropertyType = "Apartamento"
	TypeCasa        PropertyType = "Casa"
	TypeCobertura   PropertyType = "Cobertura"
	TypeTerreno     PropertyType = "Terreno"
	TypeComercial   PropertyType = "Comercial"
	TypeFlat        PropertyType = "Flat"
)

// PropertyStatus tracks the commercial state of a listing. A sold property
// is hidden from the showcase entirely; the other states only change the
// badge rendered on the detail view.
type PropertyStatus string

const (
	StatusDisponivel      PropertyStatus = "Disponível"
	StatusReservado       PropertyStatus = "Reservado"
	StatusUltimasUnidades PropertyStatus = "Últimas unidades"
	StatusVendido         PropertyStatus = "Vendido"
)

// MediaItem is one entry of a property's gallery, ordered by slice position.
type MediaItem struct {
	ID      string `json:"id"`
	URL     string `json:"url"`
	IsVideo bool   `json:"isVideo"`
}

// Property is a single real-estate listing owned by an agent. Most fields
// are optional at the storage level; presentation-time fallbacks are the
// projector's concern, not the entity's.
type Property struct {
	ID              uuid.UUID
	AccountID       uuid.UUID
	Title           string
	Description     string
	Type            PropertyType
	Status          PropertyStatus
	Neighborhood    string
	City            string
	DisplayPrice    string
	PriceValue      float64 // Numeric price used by the financing simulator; 0 disables it.
	Area            float64 // Square meters; 0 renders as absent.
	Bedrooms        int
	Suites          int
	Bathrooms       int
	ParkingSpaces   int
	Features        []string
	Media           []MediaItem
	Latitude        float64
	Longitude       float64
	ShowMap         bool
	ShowFinancing   bool
	ViewersMin      int // Lower bound of the simulated live-viewer counter.
	ViewersMax      int // Upper bound; swapped with ViewersMin when inverted.
	WhatsAppMessage string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// PropertySort names the admin list orderings accepted by the catalog API.
type PropertySort string

const (
	SortByCreatedAt PropertySort = "created_at"
	SortByTitle     PropertySort = "title"
	SortByPrice     PropertySort = "price"
	SortByStatus    PropertySort = "status"
)
