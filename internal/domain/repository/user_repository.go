package repository

import "github.com/tu-usuario/chaintrace-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// El almacén es un mapeo durable principal → User: Put hace upsert (registrar dos
// veces sobrescribe sin error), GetByID devuelve nil si no existe.
type UserRepository interface {
	Put(user *entity.User) error
	GetByID(principal string) (*entity.User, error)
	List() ([]*entity.User, error)
	Count() (int64, error)
}
