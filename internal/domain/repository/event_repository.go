package repository

import "github.com/tu-usuario/chaintrace-api/internal/domain/entity"

// EventRepository define el puerto de persistencia para el ledger de eventos (DIP).
// Un ledger por producto: secuencia ordenada sólo-append. No existe operación de
// borrado ni de reordenamiento; ListByProduct devuelve los eventos en orden de append.
type EventRepository interface {
	Append(event *entity.SupplyChainEvent) error
	ListByProduct(productID string) ([]*entity.SupplyChainEvent, error)
	CountAll() (int64, error)
}
