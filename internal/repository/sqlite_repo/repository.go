package sqlite_repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"lucky_dice/internal/model"
	"lucky_dice/internal/repository"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"
)

const (
	sessionsTable     = "sessions"
	colID             = "id"
	colPlayerName     = "player_name"
	colInitialBalance = "initial_balance"
	colBalance        = "balance"
	colCreatedAt      = "created_at"

	roundsTable     = "rounds"
	colSeq          = "seq"
	colSessionID    = "session_id"
	colBetKind      = "bet_kind"
	colBetTarget    = "bet_target"
	colBetRaw       = "bet_raw"
	colDie1         = "die1"
	colDie2         = "die2"
	colWon          = "won"
	colStake        = "stake"
	colPayout       = "payout"
	colJackpotBonus = "jackpot_bonus"
	colJackpot      = "jackpot"
)

type repo struct {
	db *sql.DB
}

func NewLedgerRepository(db *sql.DB) repository.LedgerRepository {
	return &repo{
		db: db,
	}
}

// CreateSession - создает сессию игрока
func (r *repo) CreateSession(ctx context.Context, session *model.Session) error {
	query := sq.Insert(sessionsTable).
		Columns(colID, colPlayerName, colInitialBalance, colBalance, colCreatedAt).
		Values(session.ID, session.PlayerName, session.InitialBalance.String(), session.Balance.String(), session.CreatedAt.UTC())

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	if _, err = conn(ctx, r.db).ExecContext(ctx, sqlStr, args...); err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	return nil
}

// GetSession - возвращает сессию по ID
func (r *repo) GetSession(ctx context.Context, sessionID string) (*model.Session, error) {
	query := sq.Select(colID, colPlayerName, colInitialBalance, colBalance, colCreatedAt).
		From(sessionsTable).
		Where(sq.Eq{colID: sessionID})

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var (
		s                model.Session
		initial, balance string
	)
	err = conn(ctx, r.db).QueryRowContext(ctx, sqlStr, args...).Scan(&s.ID, &s.PlayerName, &initial, &balance, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrSessionNotFound
		}
		return nil, fmt.Errorf("get session: %w", err)
	}

	if s.InitialBalance, err = decimal.NewFromString(initial); err != nil {
		return nil, err
	}
	if s.Balance, err = decimal.NewFromString(balance); err != nil {
		return nil, err
	}
	return &s, nil
}

// UpdateBalance - обновляет баланс сессии
func (r *repo) UpdateBalance(ctx context.Context, sessionID string, balance decimal.Decimal) error {
	query := sq.Update(sessionsTable).
		Set(colBalance, balance.String()).
		Where(sq.Eq{colID: sessionID})

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	res, err := conn(ctx, r.db).ExecContext(ctx, sqlStr, args...)
	if err != nil {
		return fmt.Errorf("update balance: %w", err)
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return repository.ErrSessionNotFound
	}
	return nil
}

// SaveRound - сохраняет сыгранный раунд
func (r *repo) SaveRound(ctx context.Context, sessionID string, round *model.RoundResult) error {
	rec := round.Record
	query := sq.Insert(roundsTable).
		Columns(
			colID, colSessionID, colBetKind, colBetTarget, colBetRaw, colDie1, colDie2, colWon,
			colStake, colPayout, colJackpotBonus, colJackpot, colBalance, colCreatedAt,
		).
		Values(
			rec.ID, sessionID, int(rec.Bet.Kind), rec.Bet.Target, rec.Bet.Raw, rec.Outcome[0], rec.Outcome[1], rec.Won,
			round.Stake.String(), round.Payout.String(), round.JackpotBonus.String(), round.Jackpot,
			round.Balance.String(), rec.CreatedAt.UTC(),
		)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	if _, err = conn(ctx, r.db).ExecContext(ctx, sqlStr, args...); err != nil {
		return fmt.Errorf("save round: %w", err)
	}
	return nil
}

// ListRounds - все раунды сессии в порядке игры
func (r *repo) ListRounds(ctx context.Context, sessionID string) ([]model.RoundResult, error) {
	if _, err := r.GetSession(ctx, sessionID); err != nil {
		return nil, err
	}

	query := sq.Select(
		colID, colBetKind, colBetTarget, colBetRaw, colDie1, colDie2, colWon,
		colStake, colPayout, colJackpotBonus, colJackpot, colBalance, colCreatedAt,
	).
		From(roundsTable).
		Where(sq.Eq{colSessionID: sessionID}).
		OrderBy(colSeq)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := conn(ctx, r.db).QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("list rounds: %w", err)
	}
	defer rows.Close()

	rounds := make([]model.RoundResult, 0)
	for rows.Next() {
		var (
			rr                            model.RoundResult
			kind                          int
			stake, payout, bonus, balance string
			createdAt                     time.Time
		)
		err = rows.Scan(
			&rr.Record.ID, &kind, &rr.Record.Bet.Target, &rr.Record.Bet.Raw, &rr.Record.Outcome[0], &rr.Record.Outcome[1], &rr.Record.Won,
			&stake, &payout, &bonus, &rr.Jackpot, &balance, &createdAt,
		)
		if err != nil {
			return nil, err
		}
		rr.Record.Bet.Kind = model.BetKind(kind)
		rr.Record.CreatedAt = createdAt

		if rr.Stake, err = decimal.NewFromString(stake); err != nil {
			return nil, err
		}
		if rr.Payout, err = decimal.NewFromString(payout); err != nil {
			return nil, err
		}
		if rr.JackpotBonus, err = decimal.NewFromString(bonus); err != nil {
			return nil, err
		}
		if rr.Balance, err = decimal.NewFromString(balance); err != nil {
			return nil, err
		}
		rounds = append(rounds, rr)
	}

	return rounds, rows.Err()
}
