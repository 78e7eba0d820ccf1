package memory_repo

import (
	"context"
	"lucky_dice/internal/model"
	"lucky_dice/internal/repository"
	"sync"

	"github.com/shopspring/decimal"
)

// repo хранит всё в памяти процесса
type repo struct {
	mtx      sync.RWMutex
	sessions map[string]model.Session
	rounds   map[string][]model.RoundResult
}

func NewLedgerRepository() repository.LedgerRepository {
	return &repo{
		sessions: make(map[string]model.Session),
		rounds:   make(map[string][]model.RoundResult),
	}
}

// CreateSession - сохраняет новую сессию
func (r *repo) CreateSession(_ context.Context, session *model.Session) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.sessions[session.ID] = *session
	return nil
}

// GetSession - возвращает копию сессии
func (r *repo) GetSession(_ context.Context, sessionID string) (*model.Session, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	s, ok := r.sessions[sessionID]
	if !ok {
		return nil, repository.ErrSessionNotFound
	}
	return &s, nil
}

// UpdateBalance - обновляет баланс сессии
func (r *repo) UpdateBalance(_ context.Context, sessionID string, balance decimal.Decimal) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	s, ok := r.sessions[sessionID]
	if !ok {
		return repository.ErrSessionNotFound
	}
	s.Balance = balance
	r.sessions[sessionID] = s
	return nil
}

// SaveRound - добавляет раунд в конец истории сессии
func (r *repo) SaveRound(_ context.Context, sessionID string, round *model.RoundResult) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if _, ok := r.sessions[sessionID]; !ok {
		return repository.ErrSessionNotFound
	}
	r.rounds[sessionID] = append(r.rounds[sessionID], *round)
	return nil
}

// ListRounds - раунды в порядке добавления
func (r *repo) ListRounds(_ context.Context, sessionID string) ([]model.RoundResult, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	if _, ok := r.sessions[sessionID]; !ok {
		return nil, repository.ErrSessionNotFound
	}
	rounds := r.rounds[sessionID]
	out := make([]model.RoundResult, len(rounds))
	copy(out, rounds)
	return out, nil
}

type txManager struct{}

// NewTxManager runs fn as is: each memory operation is already atomic.
func NewTxManager() repository.TxManager {
	return txManager{}
}

func (txManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
