package model

import (
	"time"

	"github.com/google/uuid"
)

// PropertyModel mirrors the 'properties' table. Features and Media are
// stored as jsonb documents; (un)marshalling is the mapper's concern so
// the model stays a plain column mirror.
type PropertyModel struct {
	ID              uuid.UUID `gorm:"column:id;type:uuid;primary_key;default:uuid_generate_v7()"`
	AccountID       uuid.UUID `gorm:"column:account_id;type:uuid;not null;index"`
	Title           string    `gorm:"column:title;type:varchar(255)"`
	Description     string    `gorm:"column:description;type:text"`
	Type            string    `gorm:"column:type;type:varchar(50)"`
	Status          string    `gorm:"column:status;type:varchar(50)"`
	Neighborhood    string    `gorm:"column:neighborhood;type:varchar(100)"`
	City            string    `gorm:"column:city;type:varchar(100)"`
	DisplayPrice    string    `gorm:"column:display_price;type:varchar(50)"`
	PriceValue      float64   `gorm:"column:price_value"`
	Area            float64   `gorm:"column:area"`
	Bedrooms        int       `gorm:"column:bedrooms"`
	Suites          int       `gorm:"column:suites"`
	Bathrooms       int       `gorm:"column:bathrooms"`
	ParkingSpaces   int       `gorm:"column:parking_spaces"`
	Features        []byte    `gorm:"column:features;type:jsonb"`
	Media           []byte    `gorm:"column:media;type:jsonb"`
	Latitude        float64   `gorm:"column:latitude"`
	Longitude       float64   `gorm:"column:longitude"`
	ShowMap         bool      `gorm:"column:show_map"`
	ShowFinancing   bool      `gorm:"column:show_financing"`
	ViewersMin      int       `gorm:"column:viewers_min"`
	ViewersMax      int       `gorm:"column:viewers_max"`
	WhatsAppMessage string    `gorm:"column:whatsapp_message;type:text"`
	CreatedAt       time.Time `gorm:"column:created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at"`
}

// TableName explicitly sets the table name for GORM.
func (PropertyModel) TableName() string {
	return "properties"
}
