package model

// Stats снимок статистики раундов
type Stats struct {
	TotalRounds int
	Wins        int
	Losses      int
	Jackpots    int
	TotalStaked float64
	TotalPaid   float64

	CurrentRTP float64 // TotalPaid/TotalStaked*100
	WindowRTP  float64 // RTP over the last WindowSize rounds
	WindowSize int
}
