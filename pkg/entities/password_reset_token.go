package entities

import (
	"time"

	"gorm.io/gorm"
)

// PasswordResetToken is a single-use reset capability. At most one valid
// token exists per user: issuing a new one deletes the old rows first.
type PasswordResetToken struct {
	gorm.Model
	UserID    uint      `json:"user_id" gorm:"index;not null"`
	Token     string    `json:"-" gorm:"uniqueIndex;not null"`
	ExpiresAt time.Time `json:"expires_at" gorm:"not null"`
}
