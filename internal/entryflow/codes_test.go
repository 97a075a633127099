package entryflow

import (
	"regexp"
	"testing"

	"github.com/Afresh-Revolution/Knowrist/internal/pool"

	"github.com/stretchr/testify/assert"
)

func TestGenerateDailyCode(t *testing.T) {
	pattern := regexp.MustCompile(`^DAILY-[EMH]-\d{6}$`)

	tests := []struct {
		difficulty pool.Difficulty
		prefix     string
	}{
		{pool.DifficultyEasy, "DAILY-E-"},
		{pool.DifficultyMedium, "DAILY-M-"},
		{pool.DifficultyHard, "DAILY-H-"},
	}

	for _, tt := range tests {
		for i := 0; i < 20; i++ {
			code := GenerateDailyCode(tt.difficulty)
			assert.Regexp(t, pattern, code)
			assert.Contains(t, code, tt.prefix)
		}
	}
}

func TestGenerateGameCode(t *testing.T) {
	pattern := regexp.MustCompile(`^GAME-[A-Z0-9]{5}$`)

	for i := 0; i < 50; i++ {
		assert.Regexp(t, pattern, GenerateGameCode())
	}
}
