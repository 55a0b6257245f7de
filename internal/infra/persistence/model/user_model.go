package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. The application assigns the UUID
// primary key; only the bcrypt hash of the password is ever stored.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Username     string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
