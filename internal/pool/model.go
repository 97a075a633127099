package pool

// Status is a pool's lifecycle state as the user dashboard sees it.
type Status string

const (
	StatusAvailable Status = "available"
	StatusFull      Status = "full"
	StatusStarting  Status = "starting"
	StatusPlaying   Status = "playing"
	StatusEnded     Status = "ended"
)

// Difficulty levels shared by pools and the entry flow.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Pool is a scheduled or live game session. Capacity and economics are
// mutated only by Join; status and countdown only by Join and the ticker.
type Pool struct {
	ID               string  `json:"id"`
	Title            string  `json:"title"`
	CurrentPlayers   int     `json:"currentPlayers"`
	MaxPlayers       int     `json:"maxPlayers"`
	TotalAmountPaid  float64 `json:"totalAmountPaid"`
	EntryFee         float64 `json:"entryFee"`
	IsFull           bool    `json:"isFull"`
	CountdownSeconds *int    `json:"countdownSeconds"`
	Status           Status  `json:"status"`

	// Display metadata, immutable after creation.
	Category       string     `json:"category,omitempty"`
	SchemaCategory string     `json:"schemaCategory,omitempty"` // SCIENCE | MATHS | ENGLISH | LITERATURE | HISTORY
	Difficulty     Difficulty `json:"difficulty,omitempty"`
	Type           string     `json:"type,omitempty"` // Daily | Paid
	Currency       string     `json:"currency,omitempty"`
	Image          string     `json:"image,omitempty"`

	WordLength        int     `json:"wordLength,omitempty"`
	RewardPerQuestion float64 `json:"rewardPerQuestion,omitempty"`
	QuestionsPerUser  int     `json:"questionsPerUser,omitempty"`
	ScheduledStart    string  `json:"scheduledStart,omitempty"`
	DurationMinutes   int     `json:"durationMinutes,omitempty"`
}

// CreatePoolData is the admin-facing shape for creating a local pool.
type CreatePoolData struct {
	Title      string     `json:"title" binding:"required"`
	Type       string     `json:"type" binding:"required,oneof=Daily Paid"`
	Category   string     `json:"category" binding:"required"`
	Difficulty Difficulty `json:"difficulty" binding:"required,oneof=easy medium hard"`
	EntryFee   string     `json:"entryFee"`
	Currency   string     `json:"currency"`
	MaxPlayers int        `json:"maxPlayers" binding:"required,gt=0"`
	Status     string     `json:"status" binding:"required,oneof=active pending ended"`
	Image      string     `json:"image"`

	TimeUntilStart int `json:"timeUntilStart"`
	TimeUntilEnd   int `json:"timeUntilEnd"`

	WordLength        int     `json:"wordLength"`
	RewardPerQuestion float64 `json:"rewardPerQuestion"`
	QuestionsPerUser  int     `json:"questionsPerUser"`
	ScheduledStart    string  `json:"scheduledStart"`
	DurationMinutes   int     `json:"durationMinutes"`
}

// JoinResult is the outcome of a join attempt. Filled is true only on the
// join that took the pool to capacity, so callers never have to re-inspect
// pool state to learn whether their join was the filling one.
type JoinResult struct {
	Joined bool `json:"joined"`
	Filled bool `json:"filled"`
}
