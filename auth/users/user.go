package users

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

type User struct {
	ID           uuid.UUID
	Name         string
	Role         string
	RegisteredAt time.Time
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

type Secret struct {
	PasswordHash []byte
	Salt         []byte
}
