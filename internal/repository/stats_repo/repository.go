package stats_repo

import (
	"lucky_dice/internal/model"
	"sync"
)

// defaultWindowSize размер окна последних раундов по умолчанию
const defaultWindowSize = 100

// roundSample результат раунда для окна
type roundSample struct {
	stake float64
	paid  float64
}

// StateRepo статистика игры в памяти
type StateRepo struct {
	mtx    sync.RWMutex
	state  model.Stats
	window []roundSample
}

// NewStatsRepository Конструктор с пустой статистикой.
// windowSize < 1 uses the default window.
func NewStatsRepository(windowSize int) *StateRepo {
	if windowSize < 1 {
		windowSize = defaultWindowSize
	}
	return &StateRepo{
		state: model.Stats{
			WindowSize: windowSize,
		},
		window: make([]roundSample, 0, windowSize),
	}
}

// Stats Получение копии текущей статистики
func (r *StateRepo) Stats() model.Stats {
	r.mtx.RLock()
	defer r.mtx.RUnlock()
	return r.state
}

// UpdateState Обновление статистики после раунда.
// paid is everything returned to the player: payout plus jackpot bonus.
func (r *StateRepo) UpdateState(stake, paid float64, won, jackpot bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.state.TotalRounds++
	r.state.TotalStaked += stake
	r.state.TotalPaid += paid
	if won {
		r.state.Wins++
	} else {
		r.state.Losses++
	}
	if jackpot {
		r.state.Jackpots++
	}
	if r.state.TotalStaked > 0 {
		r.state.CurrentRTP = r.state.TotalPaid / r.state.TotalStaked * 100
	}

	// Добавляем раунд в окно
	r.window = append(r.window, roundSample{stake: stake, paid: paid})

	// Поддерживаем размер окна
	if len(r.window) > r.state.WindowSize {
		r.window = r.window[1:]
	}

	// Пересчитываем RTP в окне
	var windowStake, windowPaid float64
	for _, s := range r.window {
		windowStake += s.stake
		windowPaid += s.paid
	}

	if windowStake > 0 {
		r.state.WindowRTP = windowPaid / windowStake * 100
	} else {
		r.state.WindowRTP = 0
	}
}
