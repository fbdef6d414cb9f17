package gormrepo

import (
	"context"
	"encoding/json"

	"gorm.io/gorm"

	"gridwar/internal/domain/game"
)

type EventRepo struct {
	db *gorm.DB
}

func NewEventRepo(db *gorm.DB) EventRepo {
	return EventRepo{db: db}
}

func (r EventRepo) Append(ctx context.Context, agentID string, events []game.Event) error {
	if len(events) == 0 {
		return nil
	}
	rows := make([]matchEventModel, 0, len(events))
	for _, ev := range events {
		payload, err := json.Marshal(ev.Data)
		if err != nil {
			return err
		}
		rows = append(rows, matchEventModel{
			AgentID:    agentID,
			EventType:  ev.Type,
			Turn:       ev.Turn,
			OccurredAt: ev.OccurredAt,
			Payload:    string(payload),
		})
	}
	return getDBFromCtx(ctx, r.db).Create(&rows).Error
}

func (r EventRepo) ListByAgentID(ctx context.Context, agentID string, limit int) ([]game.Event, error) {
	db := getDBFromCtx(ctx, r.db).
		Where("agent_id = ?", agentID).
		Order("id DESC")
	if limit > 0 {
		db = db.Limit(limit)
	}
	var rows []matchEventModel
	if err := db.Find(&rows).Error; err != nil {
		return nil, err
	}
	// Rows arrive newest-first; flip to chronological order.
	events := make([]game.Event, len(rows))
	for i, row := range rows {
		var data map[string]any
		if row.Payload != "" {
			if err := json.Unmarshal([]byte(row.Payload), &data); err != nil {
				return nil, err
			}
		}
		events[len(rows)-1-i] = game.Event{
			Type:       row.EventType,
			Turn:       row.Turn,
			OccurredAt: row.OccurredAt,
			Data:       data,
		}
	}
	return events, nil
}
