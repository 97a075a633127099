package entryflow

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/Afresh-Revolution/Knowrist/internal/pool"
)

const base36 = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// GenerateDailyCode produces the cosmetic daily-challenge code,
// DAILY-{E|M|H}-{6 digits}. It is not backed by any server record.
func GenerateDailyCode(difficulty pool.Difficulty) string {
	prefix := "E"
	switch difficulty {
	case pool.DifficultyMedium:
		prefix = "M"
	case pool.DifficultyHard:
		prefix = "H"
	}
	return fmt.Sprintf("DAILY-%s-%d", prefix, 100000+rand.Intn(900000))
}

// GenerateGameCode produces the post-payment activation code,
// GAME-{5 base36 chars}.
func GenerateGameCode() string {
	var b strings.Builder
	b.WriteString("GAME-")
	for i := 0; i < 5; i++ {
		b.WriteByte(base36[rand.Intn(len(base36))])
	}
	return b.String()
}
