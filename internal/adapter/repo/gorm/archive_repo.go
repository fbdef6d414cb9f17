package gormrepo

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"gridwar/internal/app/ports"
)

type ArchiveRepo struct {
	db *gorm.DB
}

func NewArchiveRepo(db *gorm.DB) ArchiveRepo {
	return ArchiveRepo{db: db}
}

func (r ArchiveRepo) SaveMatch(ctx context.Context, record ports.MatchRecord) error {
	row := matchRecordModel{
		GameID:     record.GameID,
		WinnerID:   record.WinnerID,
		TurnCount:  record.TurnCount,
		Phase:      record.Phase,
		StartedAt:  record.StartedAt,
		EndedAt:    record.EndedAt,
		FinalState: string(record.FinalState),
	}
	if err := getDBFromCtx(ctx, r.db).Create(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: match %s already archived", ports.ErrConflict, record.GameID)
		}
		return err
	}
	return nil
}

func (r ArchiveRepo) GetMatch(ctx context.Context, gameID string) (ports.MatchRecord, error) {
	var row matchRecordModel
	if err := getDBFromCtx(ctx, r.db).Where("game_id = ?", gameID).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.MatchRecord{}, fmt.Errorf("%w: match %s", ports.ErrNotFound, gameID)
		}
		return ports.MatchRecord{}, err
	}
	return ports.MatchRecord{
		GameID:     row.GameID,
		WinnerID:   row.WinnerID,
		TurnCount:  row.TurnCount,
		Phase:      row.Phase,
		StartedAt:  row.StartedAt,
		EndedAt:    row.EndedAt,
		FinalState: []byte(row.FinalState),
	}, nil
}
