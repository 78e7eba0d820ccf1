package lucky

import (
	"context"
	"errors"
	"fmt"
	"lucky_dice/internal/config"
	"lucky_dice/internal/die"
	"lucky_dice/internal/model"
	"lucky_dice/internal/repository"
	"lucky_dice/internal/service"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Roller один кубик. *die.Die implements it; tests inject fixed rolls.
type Roller interface {
	Roll() int
}

// Deps зависимости игры
type Deps struct {
	Config    config.GameConfig
	Player    *model.Player
	Ledger    repository.LedgerRepository
	Stats     repository.StatsRepository
	TxManager repository.TxManager
	Logger    *zap.Logger

	// Dice optional; both nil means two fresh dice from Config.Seed()
	Dice [2]Roller
}

type serv struct {
	cfg       config.GameConfig
	player    *model.Player
	die1      Roller
	die2      Roller
	ledger    repository.LedgerRepository
	statsRepo repository.StatsRepository
	txManager repository.TxManager
	log       *zap.Logger
	sessionID string
}

// NewGameService создает игру для игрока и открывает сессию в леджере
func NewGameService(ctx context.Context, deps Deps) (service.GameService, error) {
	if deps.Config == nil || deps.Player == nil {
		return nil, errors.New("lucky: config and player are required")
	}
	if deps.Ledger == nil || deps.Stats == nil || deps.TxManager == nil {
		return nil, errors.New("lucky: ledger, stats and tx manager are required")
	}

	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}

	d1, d2 := deps.Dice[0], deps.Dice[1]
	if d1 == nil || d2 == nil {
		rng := die.NewRand(deps.Config.Seed())
		d1 = die.New(rng, deps.Config.DieFaces())
		d2 = die.New(rng, deps.Config.DieFaces())
	}

	session := &model.Session{
		ID:             uuid.New().String(),
		PlayerName:     deps.Player.Name(),
		InitialBalance: deps.Player.Balance(),
		Balance:        deps.Player.Balance(),
		CreatedAt:      time.Now(),
	}
	if err := deps.Ledger.CreateSession(ctx, session); err != nil {
		return nil, fmt.Errorf("open session: %w", err)
	}

	log.Info("session opened",
		zap.String("session_id", session.ID),
		zap.String("player", session.PlayerName),
		zap.String("balance", session.Balance.String()),
	)

	return &serv{
		cfg:       deps.Config,
		player:    deps.Player,
		die1:      d1,
		die2:      d2,
		ledger:    deps.Ledger,
		statsRepo: deps.Stats,
		txManager: deps.TxManager,
		log:       log.With(zap.String("session_id", session.ID)),
		sessionID: session.ID,
	}, nil
}

func (s *serv) History() []model.WagerRecord {
	return s.player.History()
}

func (s *serv) Balance() decimal.Decimal {
	return s.player.Balance()
}

func (s *serv) Limits() (decimal.Decimal, decimal.Decimal) {
	return s.cfg.MinStake(), s.cfg.MaxStake()
}

func (s *serv) DieFaces() int {
	return s.cfg.DieFaces()
}

func (s *serv) SessionID() string {
	return s.sessionID
}

func (s *serv) Stats() model.Stats {
	return s.statsRepo.Stats()
}
