package history

import (
	"context"
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Outcome string

const (
	OutcomeDelivered Outcome = "delivered"
	OutcomeTooBig    Outcome = "too_big"
	OutcomeFailed    Outcome = "failed"
)

// Entry records one terminal fetch job outcome.
type Entry struct {
	ID        uint  `gorm:"primarykey"`
	ChatID    int64 `gorm:"index"`
	URL       string
	Title     string
	SizeBytes int64
	Outcome   Outcome
	Error     string
	CreatedAt time.Time
}

// Store persists fetch job outcomes. Recording is best effort: callers log
// failures and never surface them to the user.
type Store interface {
	Add(ctx context.Context, entry *Entry) error
	Recent(ctx context.Context, chatID int64, limit int) ([]Entry, error)
}

type SQLiteStore struct {
	db *gorm.DB
}

func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&Entry{}); err != nil {
		return nil, fmt.Errorf("auto migration failed: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Add(ctx context.Context, entry *Entry) error {
	return s.db.WithContext(ctx).Create(entry).Error
}

func (s *SQLiteStore) Recent(ctx context.Context, chatID int64, limit int) ([]Entry, error) {
	var entries []Entry
	err := s.db.WithContext(ctx).
		Where("chat_id = ?", chatID).
		Order("created_at DESC").
		Limit(limit).
		Find(&entries).Error
	return entries, err
}
