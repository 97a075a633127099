package entryflow

import (
	"math"

	"github.com/Afresh-Revolution/Knowrist/internal/pool"
)

// baseRewardAmount anchors the per-word reward before difficulty and length
// scaling.
const baseRewardAmount = 20.0

func difficultyMultiplier(difficulty pool.Difficulty) float64 {
	switch difficulty {
	case pool.DifficultyMedium:
		return 1.5
	case pool.DifficultyHard:
		return 2
	default:
		return 1
	}
}

// WordReward computes the reward for a single word: longer words and harder
// difficulties pay more, rounded to the nearest whole amount.
func WordReward(difficulty pool.Difficulty, wordLength int) float64 {
	return math.Round(baseRewardAmount * difficultyMultiplier(difficulty) * float64(wordLength) / 4)
}

// WordRewards computes the per-word rewards for a submission plus the total.
func WordRewards(difficulty pool.Difficulty, words []WordPair) ([]float64, float64) {
	rewards := make([]float64, len(words))
	total := 0.0
	for i, w := range words {
		rewards[i] = WordReward(difficulty, len(w.Correct))
		total += rewards[i]
	}
	return rewards, total
}
