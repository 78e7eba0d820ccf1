package pg_repo

import (
	"context"
	"errors"
	"fmt"
	"lucky_dice/internal/model"
	"lucky_dice/internal/repository"
	"time"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
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

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS sessions (
		id TEXT PRIMARY KEY,
		player_name TEXT NOT NULL,
		initial_balance NUMERIC NOT NULL,
		balance NUMERIC NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS rounds (
		seq BIGSERIAL PRIMARY KEY,
		id TEXT NOT NULL UNIQUE,
		session_id TEXT NOT NULL REFERENCES sessions(id),
		bet_kind INTEGER NOT NULL,
		bet_target INTEGER NOT NULL DEFAULT 0,
		bet_raw TEXT NOT NULL DEFAULT '',
		die1 INTEGER NOT NULL,
		die2 INTEGER NOT NULL,
		won BOOLEAN NOT NULL,
		stake NUMERIC NOT NULL,
		payout NUMERIC NOT NULL,
		jackpot_bonus NUMERIC NOT NULL,
		jackpot BOOLEAN NOT NULL,
		balance NUMERIC NOT NULL,
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_rounds_session ON rounds(session_id, seq)`,
}

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewLedgerRepository(dbc *pgxpool.Pool) repository.LedgerRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// Migrate - создает таблицы, если их нет
func Migrate(ctx context.Context, dbc *pgxpool.Pool) error {
	for _, m := range migrations {
		if _, err := dbc.Exec(ctx, m); err != nil {
			return fmt.Errorf("pg migration failed: %w", err)
		}
	}
	return nil
}

// conn - транзакция из контекста, если она есть, иначе пул
func (r *repo) conn(ctx context.Context) trmpgx.Tr {
	return r.getter.DefaultTrOrDB(ctx, r.dbc)
}

// CreateSession - создает сессию игрока
func (r *repo) CreateSession(ctx context.Context, session *model.Session) error {
	query := psql.Insert(sessionsTable).
		Columns(colID, colPlayerName, colInitialBalance, colBalance, colCreatedAt).
		Values(session.ID, session.PlayerName, session.InitialBalance.String(), session.Balance.String(), session.CreatedAt)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	if _, err = r.conn(ctx).Exec(ctx, sqlStr, args...); err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	return nil
}

// GetSession - возвращает сессию по ID
func (r *repo) GetSession(ctx context.Context, sessionID string) (*model.Session, error) {
	query := psql.Select(
		colID,
		colPlayerName,
		colInitialBalance+"::text",
		colBalance+"::text",
		colCreatedAt,
	).
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
	err = r.conn(ctx).QueryRow(ctx, sqlStr, args...).Scan(&s.ID, &s.PlayerName, &initial, &balance, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
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
	query := psql.Update(sessionsTable).
		Set(colBalance, balance.String()).
		Where(sq.Eq{colID: sessionID})

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	res, err := r.conn(ctx).Exec(ctx, sqlStr, args...)
	if err != nil {
		return fmt.Errorf("update balance: %w", err)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrSessionNotFound
	}
	return nil
}

// SaveRound - сохраняет сыгранный раунд
func (r *repo) SaveRound(ctx context.Context, sessionID string, round *model.RoundResult) error {
	rec := round.Record
	query := psql.Insert(roundsTable).
		Columns(
			colID, colSessionID, colBetKind, colBetTarget, colBetRaw, colDie1, colDie2, colWon,
			colStake, colPayout, colJackpotBonus, colJackpot, colBalance, colCreatedAt,
		).
		Values(
			rec.ID, sessionID, int(rec.Bet.Kind), rec.Bet.Target, rec.Bet.Raw, rec.Outcome[0], rec.Outcome[1], rec.Won,
			round.Stake.String(), round.Payout.String(), round.JackpotBonus.String(), round.Jackpot,
			round.Balance.String(), rec.CreatedAt,
		)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	if _, err = r.conn(ctx).Exec(ctx, sqlStr, args...); err != nil {
		return fmt.Errorf("save round: %w", err)
	}
	return nil
}

// ListRounds - все раунды сессии в порядке игры
func (r *repo) ListRounds(ctx context.Context, sessionID string) ([]model.RoundResult, error) {
	if _, err := r.GetSession(ctx, sessionID); err != nil {
		return nil, err
	}

	query := psql.Select(
		colID, colBetKind, colBetTarget, colBetRaw, colDie1, colDie2, colWon,
		colStake+"::text", colPayout+"::text", colJackpotBonus+"::text", colJackpot,
		colBalance+"::text", colCreatedAt,
	).
		From(roundsTable).
		Where(sq.Eq{colSessionID: sessionID}).
		OrderBy(colSeq)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn(ctx).Query(ctx, sqlStr, args...)
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
