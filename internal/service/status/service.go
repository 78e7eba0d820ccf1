package status

import (
	"context"
	"lucky_dice/internal/model"
	"lucky_dice/internal/repository"
	"lucky_dice/internal/service"
	"sync"
)

// Service статус текущей сессии. До Attach все запросы сессии отдают ErrNoSession.
type Service struct {
	ledger    repository.LedgerRepository
	statsRepo repository.StatsRepository

	mtx       sync.RWMutex
	sessionID string
}

var _ service.StatusService = (*Service)(nil)

func NewStatusService(ledger repository.LedgerRepository, statsRepo repository.StatsRepository) *Service {
	return &Service{ledger: ledger, statsRepo: statsRepo}
}

// Attach привязывает сервис к открытой сессии
func (s *Service) Attach(sessionID string) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	s.sessionID = sessionID
}

func (s *Service) current() (string, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	if s.sessionID == "" {
		return "", service.ErrNoSession
	}
	return s.sessionID, nil
}

func (s *Service) Session(ctx context.Context) (*model.Session, error) {
	id, err := s.current()
	if err != nil {
		return nil, err
	}
	return s.ledger.GetSession(ctx, id)
}

func (s *Service) Rounds(ctx context.Context) ([]model.RoundResult, error) {
	id, err := s.current()
	if err != nil {
		return nil, err
	}
	return s.ledger.ListRounds(ctx, id)
}

func (s *Service) Stats() model.Stats {
	return s.statsRepo.Stats()
}
