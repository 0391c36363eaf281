package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tu-usuario/chaintrace-api/internal/domain/entity"
	"github.com/tu-usuario/chaintrace-api/internal/domain/repository"
)

var _ repository.EventRepository = (*EventRepo)(nil)

// EventRepo implementación del puerto EventRepository sobre PostgreSQL.
// El orden de append se materializa con la columna seq (BIGSERIAL); las lecturas
// siempre ordenan por seq, nunca por timestamp.
type EventRepo struct {
	q Querier
}

// NewEventRepository construye el adaptador de persistencia del ledger. Pasar pool o tx (Querier).
func NewEventRepository(q Querier) *EventRepo {
	return &EventRepo{q: q}
}

// Append inserta el evento al final del ledger de su producto. Sólo INSERT: no hay
// UPDATE ni DELETE sobre esta tabla.
func (r *EventRepo) Append(event *entity.SupplyChainEvent) error {
	meta, err := json.Marshal(event.Metadata)
	if err != nil {
		return fmt.Errorf("marshal metadata: %w", err)
	}
	query := `
		INSERT INTO supply_chain_events
			(id, product_id, stage, location, ts, actor, actor_id, status, details, certifications, estimated_arrival, metadata)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err = r.q.Exec(context.Background(), query,
		event.ID, event.ProductID, string(event.Stage), event.Location, event.Timestamp,
		event.Actor, event.ActorID, string(event.Status), event.Details,
		event.Certifications, event.EstimatedArrival, meta,
	)
	if err != nil {
		return fmt.Errorf("append event: %w", err)
	}
	return nil
}

// ListByProduct devuelve el ledger completo del producto en orden de append.
func (r *EventRepo) ListByProduct(productID string) ([]*entity.SupplyChainEvent, error) {
	query := `
		SELECT id, product_id, stage, location, ts, actor, actor_id, status, details, certifications, estimated_arrival, metadata
		FROM supply_chain_events WHERE product_id = $1 ORDER BY seq`
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.SupplyChainEvent, 0)
	for rows.Next() {
		var ev entity.SupplyChainEvent
		var stage, status string
		var meta []byte
		if err := rows.Scan(&ev.ID, &ev.ProductID, &stage, &ev.Location, &ev.Timestamp,
			&ev.Actor, &ev.ActorID, &status, &ev.Details, &ev.Certifications,
			&ev.EstimatedArrival, &meta); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		ev.Stage = entity.SupplyChainStage(stage)
		ev.Status = entity.EventStatus(status)
		if len(meta) > 0 {
			if err := json.Unmarshal(meta, &ev.Metadata); err != nil {
				return nil, fmt.Errorf("unmarshal metadata: %w", err)
			}
		}
		list = append(list, &ev)
	}
	return list, rows.Err()
}

// CountAll devuelve el total de eventos sumado sobre todos los ledgers.
func (r *EventRepo) CountAll() (int64, error) {
	var n int64
	if err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM supply_chain_events`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count events: %w", err)
	}
	return n, nil
}
