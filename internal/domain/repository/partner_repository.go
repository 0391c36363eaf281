package repository

import "github.com/tu-usuario/chaintrace-api/internal/domain/entity"

// PartnerRepository define el puerto de persistencia para Partner (DIP).
// Mapeo durable principal → Partner (un socio por identidad); Put hace upsert.
type PartnerRepository interface {
	Put(partner *entity.Partner) error
	List() ([]*entity.Partner, error)
	Count() (int64, error)
}
