// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// AgentProfile holds the public identity of a real-estate agent as shown on
// the showcase page. There is exactly one profile per account, created with
// placeholder defaults on registration and upserted afterwards.
type AgentProfile struct {
	AccountID     uuid.UUID // Foreign Key that links this profile to an Account.
	Name          string    // The agent's display name.
	CRECI         string    // The agent's public registration number (CRECI).
	PhotoURL      string    // Profile photo, a plain URL or an embedded data URL.
	WhatsApp      string    // Contact number; non-digits are stripped before link building.
	HeaderMessage string    // Default pre-filled contact message for the showcase header.
	CreatedAt     time.Time // Timestamp of when this profile was created.
	UpdatedAt     time.Time // Timestamp of the last modification.
}

// Account is the authentication identity behind an agent profile.
type Account struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
