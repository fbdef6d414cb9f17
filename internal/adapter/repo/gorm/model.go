package gormrepo

import "time"

type matchEventModel struct {
	ID         uint64    `gorm:"primaryKey;autoIncrement"`
	AgentID    string    `gorm:"index;size:128;not null"`
	EventType  string    `gorm:"size:64;not null"`
	Turn       int       `gorm:"not null"`
	OccurredAt time.Time `gorm:"not null"`
	Payload    string    `gorm:"type:text"`
	CreatedAt  time.Time
}

func (matchEventModel) TableName() string { return "match_events" }

type matchRecordModel struct {
	GameID     string    `gorm:"primaryKey;size:64"`
	WinnerID   string    `gorm:"size:128"`
	TurnCount  int       `gorm:"not null"`
	Phase      string    `gorm:"size:32;not null"`
	StartedAt  time.Time `gorm:"not null"`
	EndedAt    time.Time `gorm:"not null"`
	FinalState string    `gorm:"type:text"`
	CreatedAt  time.Time
}

func (matchRecordModel) TableName() string { return "match_records" }
