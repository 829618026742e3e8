package service

import (
	"math/rand"

	"blogCPT/internal/config"
)

// ViewPolicy решает, засчитывать ли просмотр поста. Инкремент выпадает
// с вероятностью incrementWeight/totalWeight (по умолчанию 2 из 6),
// чтобы перезагрузка страницы не накручивала счётчик каждый раз.
type ViewPolicy struct {
	incrementWeight int
	totalWeight     int
	intn            func(n int) int
}

func NewViewPolicy(cfg *config.Config) *ViewPolicy {
	incrementWeight := cfg.ViewIncWeight
	totalWeight := cfg.ViewTotalWeight

	if totalWeight < 1 {
		totalWeight = 6
	}
	if incrementWeight < 0 || incrementWeight > totalWeight {
		incrementWeight = 2
	}

	return &ViewPolicy{
		incrementWeight: incrementWeight,
		totalWeight:     totalWeight,
		intn:            rand.Intn,
	}
}

// Draw возвращает 0 или 1 - прибавку к счётчику за один просмотр.
func (p *ViewPolicy) Draw() int {
	if p.intn(p.totalWeight) < p.incrementWeight {
		return 1
	}
	return 0
}
