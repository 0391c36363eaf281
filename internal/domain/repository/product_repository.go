package repository

import "github.com/tu-usuario/chaintrace-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// Mapeo durable id → Product. El orden de iteración de List es el del backend
// (no necesariamente orden de inserción); los consumidores no deben depender de él.
type ProductRepository interface {
	Put(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	List() ([]*entity.Product, error)
	Count() (int64, error)
}
