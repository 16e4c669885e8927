package db

import (
	"context"

	"github.com/NasaVasa/radarbot/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SentSignalRepository is the persisted dedup registry. Every Add hits the
// database immediately so a crash mid-run never re-notifies on the next
// run.
type SentSignalRepository struct {
	db *gorm.DB
}

func NewSentSignalRepository(db *gorm.DB) *SentSignalRepository {
	return &SentSignalRepository{db: db}
}

func (r *SentSignalRepository) Snapshot(ctx context.Context) (domain.SentSet, error) {
	var identifiers []string
	if err := r.db.WithContext(ctx).
		Model(&sentSignalModel{}).
		Pluck("identifier", &identifiers).Error; err != nil {
		return nil, err
	}
	set := make(domain.SentSet, len(identifiers))
	for _, id := range identifiers {
		set.Add(id)
	}
	return set, nil
}

func (r *SentSignalRepository) Add(ctx context.Context, identifier string) error {
	model := sentSignalModel{Identifier: identifier}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "identifier"}},
			DoNothing: true,
		}).
		Create(&model).Error
}
