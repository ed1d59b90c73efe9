package model

import "time"

// Role is the authorization role of a user.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleStandard Role = "standard"
)

// User represents an authenticated user in the system.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Nombre       string    `json:"nombre" gorm:"column:nombre;size:100;not null"`
	Email        string    `json:"email" gorm:"column:email;uniqueIndex;size:100;not null"`
	PasswordHash string    `json:"-" gorm:"column:contrasena;size:255;not null"` // Never expose in JSON
	Rol          Role      `json:"rol" gorm:"column:rol;size:20;not null;default:'standard'"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName maps to the persisted schema.
func (User) TableName() string { return "usuarios" }

// IsAdmin reports whether the user carries the admin role.
func (u *User) IsAdmin() bool { return u.Rol == RoleAdmin }
