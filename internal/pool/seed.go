package pool

// SeedPools are the pools every fresh session starts with.
func SeedPools() []*Pool {
	return []*Pool{
		{
			ID:              "neon-matrix",
			Title:           "Neon Matrix",
			CurrentPlayers:  1240,
			MaxPlayers:      2000,
			TotalAmountPaid: 62000,
			EntryFee:        50,
			Status:          StatusAvailable,
			Category:        "Logic",
			Difficulty:      DifficultyHard,
			Type:            "Paid",
			Currency:        "₦",
		},
		{
			ID:              "speed-syntax",
			Title:           "Speed Syntax",
			CurrentPlayers:  856,
			MaxPlayers:      1000,
			TotalAmountPaid: 21400,
			EntryFee:        25,
			Status:          StatusPlaying,
			Category:        "Word",
			Difficulty:      DifficultyMedium,
			Type:            "Paid",
			Currency:        "₦",
		},
		{
			ID:              "memory-core",
			Title:           "Memory Core",
			CurrentPlayers:  523,
			MaxPlayers:      800,
			TotalAmountPaid: 7845,
			EntryFee:        15,
			Status:          StatusAvailable,
			Category:        "Logic",
			Difficulty:      DifficultyEasy,
			Type:            "Paid",
			Currency:        "₦",
		},
		{
			ID:              "quantum-leap",
			Title:           "Quantum Leap",
			CurrentPlayers:  1892,
			MaxPlayers:      2000,
			TotalAmountPaid: 141900,
			EntryFee:        75,
			Status:          StatusAvailable,
			Category:        "Word",
			Difficulty:      DifficultyHard,
			Type:            "Paid",
			Currency:        "₦",
		},
	}
}
