// Package model contains the GORM persistence models that mirror the
// database tables. Mapping between these models and the pure domain
// entities happens in the postgres package.
package model

import (
	"time"

	"github.com/google/uuid"
)

// AccountModel mirrors the 'accounts' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type AccountModel struct {
	ID           uuid.UUID `gorm:"column:id;type:uuid;primary_key;default:uuid_generate_v7()"`
	Email        string    `gorm:"column:email;type:varchar(255);unique;not null"`
	Name         string    `gorm:"column:name;type:varchar(100)"`
	PasswordHash string    `gorm:"column:password_hash;type:varchar(255);not null"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`

	Profile    *ProfileModel   `gorm:"foreignKey:AccountID"`
	Properties []PropertyModel `gorm:"foreignKey:AccountID"`
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}
