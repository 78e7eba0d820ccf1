package lucky

import (
	"context"
	"fmt"
	"lucky_dice/internal/model"
	"lucky_dice/internal/service"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Play разыгрывает один раунд: проверка ставки, списание, бросок, расчёт, выплата, история.
func (s *serv) Play(ctx context.Context, stake decimal.Decimal, bet model.Bet) (*model.RoundResult, error) {
	// Валидация ставки по лимитам, до любого списания
	if stake.LessThan(s.cfg.MinStake()) || stake.GreaterThan(s.cfg.MaxStake()) {
		s.log.Debug("stake out of bounds", zap.String("stake", stake.String()))
		return nil, fmt.Errorf("%w: %s not in [%s, %s]",
			service.ErrStakeOutOfBounds, stake, s.cfg.MinStake(), s.cfg.MaxStake())
	}
	if bet.Kind == model.BetSpecificNumber && (bet.Target < 1 || bet.Target > s.cfg.DieFaces()) {
		s.log.Debug("invalid target", zap.Int("target", bet.Target))
		return nil, fmt.Errorf("%w: %d not in [1, %d]", service.ErrInvalidTarget, bet.Target, s.cfg.DieFaces())
	}

	// Списание ставки
	placed, err := s.player.PlaceStake(stake)
	if err != nil {
		s.log.Debug("stake rejected",
			zap.String("stake", stake.String()),
			zap.String("balance", s.player.Balance().String()),
			zap.Error(err),
		)
		return nil, err
	}

	// Бросаем оба кубика
	outcome := model.Outcome{s.die1.Roll(), s.die2.Roll()}

	res := &model.RoundResult{
		Stake:        placed,
		Payout:       decimal.Zero,
		JackpotBonus: decimal.Zero,
	}

	if Evaluate(bet, outcome) {
		res.Payout = placed.Mul(s.cfg.PayoutMultiplier())
		s.player.Credit(res.Payout)
		res.Record = s.player.RecordHistory(bet, outcome, true)

		// Джекпот проверяется только при выигрыше, от баланса уже после выплаты
		if IsJackpot(outcome, s.cfg.JackpotFace()) {
			res.JackpotBonus = s.cfg.JackpotFraction().Mul(s.player.Balance())
			s.player.Credit(res.JackpotBonus)
			res.Jackpot = true
		}
	} else {
		res.Record = s.player.RecordHistory(bet, outcome, false)
	}
	res.Balance = s.player.Balance()

	ledgerErr := s.saveRound(ctx, res)

	s.statsRepo.UpdateState(
		res.Stake.InexactFloat64(),
		res.TotalReturn().InexactFloat64(),
		res.Record.Won,
		res.Jackpot,
	)

	s.log.Debug("round played",
		zap.String("round_id", res.Record.ID),
		zap.Stringer("bet", bet),
		zap.Stringer("outcome", outcome),
		zap.Bool("won", res.Record.Won),
		zap.String("stake", res.Stake.String()),
		zap.String("balance", res.Balance.String()),
	)
	if res.Jackpot {
		s.log.Info("jackpot",
			zap.String("round_id", res.Record.ID),
			zap.String("bonus", res.JackpotBonus.String()),
		)
	}

	if ledgerErr != nil {
		s.log.Error("failed to write round to ledger", zap.String("round_id", res.Record.ID), zap.Error(ledgerErr))
		return res, fmt.Errorf("%w: %w", service.ErrLedger, ledgerErr)
	}
	return res, nil
}

// saveRound записывает баланс и раунд одной транзакцией
func (s *serv) saveRound(ctx context.Context, res *model.RoundResult) error {
	return s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.ledger.UpdateBalance(txCtx, s.sessionID, res.Balance); err != nil {
			return err
		}
		return s.ledger.SaveRound(txCtx, s.sessionID, res)
	})
}
