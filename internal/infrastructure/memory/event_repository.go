package memory

import (
	"github.com/tu-usuario/chaintrace-api/internal/domain/entity"
	"github.com/tu-usuario/chaintrace-api/internal/domain/repository"
)

var _ repository.EventRepository = (*EventRepo)(nil)

// EventRepo implementación en memoria del puerto EventRepository (ledger por producto).
type EventRepo struct {
	s *Store
}

// Append añade el evento al final del ledger de su producto. Sólo-append: el orden
// es el de llamada y la longitud del ledger únicamente crece.
func (r *EventRepo) Append(event *entity.SupplyChainEvent) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *event
	r.s.events[event.ProductID] = append(r.s.events[event.ProductID], &cp)
	return nil
}

// ListByProduct devuelve el ledger completo en orden de append (vacío si no hay eventos).
func (r *EventRepo) ListByProduct(productID string) ([]*entity.SupplyChainEvent, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	ledger := r.s.events[productID]
	out := make([]*entity.SupplyChainEvent, 0, len(ledger))
	for _, ev := range ledger {
		cp := *ev
		out = append(out, &cp)
	}
	return out, nil
}

// CountAll devuelve el total de eventos sumado sobre todos los ledgers.
func (r *EventRepo) CountAll() (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var total int64
	for _, ledger := range r.s.events {
		total += int64(len(ledger))
	}
	return total, nil
}
