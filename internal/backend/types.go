package backend

// SignupResult is the backend's representation of a freshly created account.
type SignupResult struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Admin is the backend's admin identity as returned by /admin/login.
type Admin struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// AdminLoginResult bundles the admin bearer token with the admin identity.
type AdminLoginResult struct {
	Token string `json:"token"`
	Admin Admin  `json:"admin"`
}

// CreatePoolRequest matches the backend pool schema.
type CreatePoolRequest struct {
	Title             string  `json:"title" validate:"required"`
	Difficulty        string  `json:"difficulty" validate:"omitempty,oneof=EASY MEDIUM HARD"`
	Category          string  `json:"category" validate:"omitempty,oneof=SCIENCE MATHS ENGLISH LITERATURE HISTORY"`
	WordLength        int     `json:"word_length" validate:"omitempty,gt=0"`
	EntryFee          float64 `json:"entry_fee"`
	RewardPerQuestion float64 `json:"reward_per_question"`
	MaxPlayers        int     `json:"max_players" validate:"gt=0"`
	QuestionsPerUser  int     `json:"questions_per_user" validate:"omitempty,gt=0"`
	ScheduledStart    string  `json:"scheduled_start"` // ISO datetime
	DurationMinutes   int     `json:"duration_minutes" validate:"omitempty,gt=0"`
	Status            string  `json:"status" validate:"omitempty,oneof=DRAFT OPEN WAITING LIVE ENDED EXTENDED"`
}

// AdminPool is a pool as the admin endpoints return it.
type AdminPool struct {
	ID                string  `json:"id"`
	Title             string  `json:"title"`
	Difficulty        string  `json:"difficulty"`
	Category          string  `json:"category"`
	WordLength        int     `json:"word_length"`
	EntryFee          float64 `json:"entry_fee"`
	RewardPerQuestion float64 `json:"reward_per_question"`
	MaxPlayers        int     `json:"max_players"`
	QuestionsPerUser  int     `json:"questions_per_user"`
	ScheduledStart    string  `json:"scheduled_start"`
	DurationMinutes   int     `json:"duration_minutes"`
	Status            string  `json:"status"`
	CreatedBy         string  `json:"created_by,omitempty"`
	CreatedAt         string  `json:"created_at,omitempty"`
	Image             string  `json:"image,omitempty"`
}

// CreatePoolResult is the backend's answer to a pool creation.
type CreatePoolResult struct {
	ID      string     `json:"id,omitempty"`
	Message string     `json:"message,omitempty"`
	Pool    *AdminPool `json:"pool,omitempty"`
}

// VerifyResult is the backend's verdict on an activation code.
type VerifyResult struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message,omitempty"`
	PoolID  string `json:"poolId,omitempty"`
}
