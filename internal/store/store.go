package store

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"example.com/expense-insight/backend/internal/models"
)

var (
	ErrNoUpload = errors.New("no upload loaded")
	ErrInvalid  = errors.New("invalid input")
)

// Snapshot — состояние одной загрузки: записи и замороженная при ингесте статистика.
type Snapshot struct {
	UploadID   uuid.UUID
	UploadedAt time.Time
	Records    []models.Expense
	Analysis   models.Analysis
}

// Store хранит текущую загрузку в памяти. Новая загрузка целиком
// замещает предыдущую; между сессиями ничего не сохраняется.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
	loaded   bool
}

// New создает пустое хранилище.
func New() *Store {
	return &Store{}
}

// Replace целиком замещает текущую загрузку.
func (s *Store) Replace(snapshot Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot = snapshot
	s.loaded = true
}

// Current возвращает копию текущей загрузки.
func (s *Store) Current() (Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.loaded {
		return Snapshot{}, ErrNoUpload
	}

	return s.copySnapshot(), nil
}

// Reorder переставляет записи в порядке переданных идентификаторов.
// Перестановка меняет только отображаемый порядок: статистика
// остается замороженной на момент ингеста и не пересчитывается.
func (s *Store) Reorder(ids []string) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		return Snapshot{}, ErrNoUpload
	}
	if len(ids) != len(s.snapshot.Records) {
		return Snapshot{}, ErrInvalid
	}

	byID := make(map[string]models.Expense, len(s.snapshot.Records))
	for _, record := range s.snapshot.Records {
		byID[record.ID] = record
	}

	reordered := make([]models.Expense, 0, len(ids))
	for _, id := range ids {
		record, ok := byID[id]
		if !ok {
			return Snapshot{}, ErrInvalid
		}
		delete(byID, id)
		reordered = append(reordered, record)
	}

	s.snapshot.Records = reordered
	return s.copySnapshot(), nil
}

func (s *Store) copySnapshot() Snapshot {
	out := s.snapshot
	out.Records = make([]models.Expense, len(s.snapshot.Records))
	copy(out.Records, s.snapshot.Records)
	return out
}
