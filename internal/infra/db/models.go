package db

import "time"

type sentSignalModel struct {
	ID         uint   `gorm:"primaryKey"`
	Identifier string `gorm:"uniqueIndex;not null"`
	CreatedAt  time.Time
}

func (sentSignalModel) TableName() string {
	return "sent_signals"
}
