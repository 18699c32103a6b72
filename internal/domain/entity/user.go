package entity

import "time"

// RoleAdmin es el único rol del sistema: el administrador de la tienda.
const RoleAdmin = "admin"

// User representa un usuario que puede iniciar sesión.
type User struct {
	ID           string
	Username     string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string
	CreatedAt    time.Time
}
