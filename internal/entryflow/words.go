package entryflow

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/Afresh-Revolution/Knowrist/internal/pool"
)

// TotalWords is how many correct/scrambled pairs a submission needs.
const TotalWords = 5

// WordPair is one correct word and its scrambled variant.
type WordPair struct {
	Correct   string `json:"correct"`
	Scrambled string `json:"scrambled"`
}

type lengthRange struct {
	min, max int
}

func rangeFor(difficulty pool.Difficulty) lengthRange {
	switch difficulty {
	case pool.DifficultyMedium:
		return lengthRange{4, 8}
	case pool.DifficultyHard:
		return lengthRange{6, 10}
	default:
		return lengthRange{2, 6}
	}
}

var lettersOnly = regexp.MustCompile(`^[A-Za-z]+$`)

// ValidateWord checks one pair against the difficulty's length range,
// letters-only rule and the anagram requirement. Comparison is
// case-insensitive.
func ValidateWord(difficulty pool.Difficulty, correct, scrambled string) error {
	r := rangeFor(difficulty)

	if len(correct) < r.min || len(correct) > r.max {
		return fmt.Errorf("correct word must be between %d and %d letters", r.min, r.max)
	}
	if !lettersOnly.MatchString(correct) {
		return fmt.Errorf("correct word may contain only letters")
	}

	if len(scrambled) < r.min || len(scrambled) > r.max {
		return fmt.Errorf("scrambled word must be between %d and %d letters", r.min, r.max)
	}
	if !lettersOnly.MatchString(scrambled) {
		return fmt.Errorf("scrambled word may contain only letters")
	}

	if sortLetters(correct) != sortLetters(scrambled) {
		return fmt.Errorf("scrambled word must use exactly the letters of the correct word")
	}

	return nil
}

// ValidateWords re-checks a full submission and reports the index of the
// first invalid pair.
func ValidateWords(difficulty pool.Difficulty, words []WordPair) (int, error) {
	for i, w := range words {
		if err := ValidateWord(difficulty, w.Correct, w.Scrambled); err != nil {
			return i, fmt.Errorf("word %d: %w", i+1, err)
		}
	}
	return -1, nil
}

func sortLetters(word string) string {
	letters := strings.Split(strings.ToLower(word), "")
	sort.Strings(letters)
	return strings.Join(letters, "")
}
