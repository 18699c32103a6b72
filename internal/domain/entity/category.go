package entity

import "time"

// Category agrupa productos (alimentos, juguetes, higiene...). Nombre único sin distinguir mayúsculas.
type Category struct {
	ID        string
	Name      string
	CreatedAt time.Time
}
