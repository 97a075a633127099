package entryflow

import (
	"testing"

	"github.com/Afresh-Revolution/Knowrist/internal/pool"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateWord(t *testing.T) {
	tests := []struct {
		name       string
		difficulty pool.Difficulty
		correct    string
		scrambled  string
		wantErr    string
	}{
		{
			name:       "valid medium pair",
			difficulty: pool.DifficultyMedium,
			correct:    "SYNTAX",
			scrambled:  "TXASNY",
		},
		{
			name:       "anagram check is case-insensitive",
			difficulty: pool.DifficultyMedium,
			correct:    "Syntax",
			scrambled:  "txasny",
		},
		{
			name:       "missing letter fails the anagram check",
			difficulty: pool.DifficultyMedium,
			correct:    "SYNTAX",
			scrambled:  "TXASN",
			wantErr:    "scrambled word must use exactly the letters of the correct word",
		},
		{
			name:       "substituted letter fails the anagram check",
			difficulty: pool.DifficultyMedium,
			correct:    "SYNTAX",
			scrambled:  "TXASNZ",
			wantErr:    "scrambled word must use exactly the letters of the correct word",
		},
		{
			name:       "too short for medium",
			difficulty: pool.DifficultyMedium,
			correct:    "cat",
			scrambled:  "tac",
			wantErr:    "correct word must be between 4 and 8 letters",
		},
		{
			name:       "too long for easy",
			difficulty: pool.DifficultyEasy,
			correct:    "quantum",
			scrambled:  "mutnauq",
			wantErr:    "correct word must be between 2 and 6 letters",
		},
		{
			name:       "too short for hard",
			difficulty: pool.DifficultyHard,
			correct:    "maze",
			scrambled:  "zame",
			wantErr:    "correct word must be between 6 and 10 letters",
		},
		{
			name:       "non-letter characters rejected",
			difficulty: pool.DifficultyEasy,
			correct:    "ca7",
			scrambled:  "7ac",
			wantErr:    "correct word may contain only letters",
		},
		{
			name:       "scrambled non-letters rejected",
			difficulty: pool.DifficultyEasy,
			correct:    "cat",
			scrambled:  "t-ac",
			wantErr:    "scrambled word may contain only letters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateWord(tt.difficulty, tt.correct, tt.scrambled)

			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr, err.Error())
			}
		})
	}
}

func TestValidateWords(t *testing.T) {
	words := []WordPair{
		{Correct: "BRAIN", Scrambled: "NAIRB"},
		{Correct: "SYNTAX", Scrambled: "TXASN"},
		{Correct: "MATRIX", Scrambled: "XIRTAM"},
	}

	idx, err := ValidateWords(pool.DifficultyMedium, words)

	require.Error(t, err)
	assert.Equal(t, 1, idx)
	assert.Contains(t, err.Error(), "word 2:")
}

func TestValidateWords_AllValid(t *testing.T) {
	words := []WordPair{
		{Correct: "BRAIN", Scrambled: "NAIRB"},
		{Correct: "MATRIX", Scrambled: "XIRTAM"},
	}

	idx, err := ValidateWords(pool.DifficultyMedium, words)

	assert.NoError(t, err)
	assert.Equal(t, -1, idx)
}
