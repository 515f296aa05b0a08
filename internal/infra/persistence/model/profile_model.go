package model

import (
	"time"

	"github.com/google/uuid"
)

// ProfileModel mirrors the 'agent_profiles' table. AccountID references accounts.id (UUID).
// PhotoURL is text rather than varchar because the admin panel may store
// an embedded data URL instead of a plain link.
type ProfileModel struct {
	AccountID     uuid.UUID `gorm:"column:account_id;type:uuid;primaryKey"`
	Name          string    `gorm:"column:name;type:varchar(100)"`
	CRECI         string    `gorm:"column:creci;type:varchar(50)"`
	PhotoURL      string    `gorm:"column:photo_url;type:text"`
	WhatsApp      string    `gorm:"column:whatsapp;type:varchar(30)"`
	HeaderMessage string    `gorm:"column:header_message;type:text"`
	CreatedAt     time.Time `gorm:"column:created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "agent_profiles"
}
