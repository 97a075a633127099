package entryflow

import (
	"testing"

	"github.com/Afresh-Revolution/Knowrist/internal/pool"

	"github.com/stretchr/testify/assert"
)

func TestWordReward(t *testing.T) {
	tests := []struct {
		name       string
		difficulty pool.Difficulty
		length     int
		want       float64
	}{
		{"easy four letters", pool.DifficultyEasy, 4, 20},
		{"easy five letters", pool.DifficultyEasy, 5, 25},
		{"medium six letters", pool.DifficultyMedium, 6, 45},
		{"medium five letters rounds up", pool.DifficultyMedium, 5, 38},
		{"hard eight letters", pool.DifficultyHard, 8, 80},
		{"hard seven letters", pool.DifficultyHard, 7, 70},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WordReward(tt.difficulty, tt.length))
		})
	}
}

func TestWordRewards(t *testing.T) {
	words := []WordPair{
		{Correct: "MATRIX", Scrambled: "XIRTAM"},
		{Correct: "QUANTUM", Scrambled: "MUTNAUQ"},
	}

	rewards, total := WordRewards(pool.DifficultyHard, words)

	assert.Equal(t, []float64{60, 70}, rewards)
	assert.Equal(t, 130.0, total)
}
