package entity

import "time"

// User representa un usuario del sistema.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	IsAdmin      bool
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Identity devuelve el principal resuelto para pasar al motor de inventario.
func (u *User) Identity() Identity {
	return Identity{ID: u.ID, IsActive: u.IsActive, IsAdmin: u.IsAdmin}
}
