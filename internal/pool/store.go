package pool

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"sync"
)

// FullCountdownSeconds is the countdown armed when a pool fills: 5 minutes.
const FullCountdownSeconds = 300

var (
	ErrDuplicateID = errors.New("a pool with this id already exists")
	ErrEmptyTitle  = errors.New("pool title cannot be empty")
)

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// Store holds the session's pools in memory. Pools are never deleted; ended
// pools are only filtered from the available listing.
type Store struct {
	mu    sync.Mutex
	order []string
	pools map[string]*Pool
}

func NewStore(seed ...*Pool) *Store {
	s := &Store{pools: make(map[string]*Pool)}
	for _, p := range seed {
		s.add(p)
	}
	return s
}

func (s *Store) add(p *Pool) {
	if _, ok := s.pools[p.ID]; ok {
		return
	}
	s.order = append(s.order, p.ID)
	s.pools[p.ID] = p
}

// Get returns a copy of the pool with the given id.
func (s *Store) Get(id string) (Pool, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.pools[id]
	if !ok {
		return Pool{}, false
	}
	return *p, true
}

// List returns copies of all pools in insertion order.
func (s *Store) List() []Pool {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Pool, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, *s.pools[id])
	}
	return out
}

// Available returns all pools except ended ones.
func (s *Store) Available() []Pool {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Pool, 0, len(s.order))
	for _, id := range s.order {
		if p := s.pools[id]; p.Status != StatusEnded {
			out = append(out, *p)
		}
	}
	return out
}

// Join records one player entering a pool. It is accepted only while the pool
// exists, is not full and is still available; otherwise it is a no-op with a
// zero result. The entry fee must already have been collected by the caller —
// Join never checks funds.
func (s *Store) Join(id string, entryFee float64) JoinResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.pools[id]
	if !ok || p.IsFull || p.Status != StatusAvailable {
		return JoinResult{}
	}

	p.CurrentPlayers++
	p.TotalAmountPaid += entryFee

	if p.CurrentPlayers >= p.MaxPlayers {
		p.IsFull = true
		p.Status = StatusFull
		countdown := FullCountdownSeconds
		p.CountdownSeconds = &countdown
		return JoinResult{Joined: true, Filled: true}
	}

	return JoinResult{Joined: true}
}

// Update applies a mutation to the pool with the given id under the store
// lock. Returns false when the pool does not exist.
func (s *Store) Update(id string, apply func(*Pool)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.pools[id]
	if !ok {
		return false
	}
	apply(p)
	return true
}

// Tick advances every active countdown by one second. A countdown reaching
// zero is cleared and the pool starts playing. Countdowns are independent;
// missed ticks are not compensated.
func (s *Store) Tick() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range s.order {
		p := s.pools[id]
		if p.CountdownSeconds == nil || *p.CountdownSeconds <= 0 {
			continue
		}
		remaining := *p.CountdownSeconds - 1
		if remaining == 0 {
			p.CountdownSeconds = nil
			p.Status = StatusPlaying
			continue
		}
		p.CountdownSeconds = &remaining
	}
}

// Create adds a locally created pool. The id is derived from the title; the
// admin-facing status maps onto the user-facing lifecycle (active and pending
// both surface as available, ended stays ended). Daily pools are free.
func (s *Store) Create(data CreatePoolData) (Pool, error) {
	if strings.TrimSpace(data.Title) == "" {
		return Pool{}, ErrEmptyTitle
	}

	entryFee := 0.0
	if data.Type != "Daily" {
		entryFee = parseEntryFee(data.EntryFee)
	}

	status := StatusAvailable
	if data.Status == "ended" {
		status = StatusEnded
	}

	var countdown *int
	if data.TimeUntilStart > 0 {
		c := data.TimeUntilStart
		countdown = &c
	}

	p := &Pool{
		ID:                Slugify(data.Title),
		Title:             data.Title,
		MaxPlayers:        data.MaxPlayers,
		EntryFee:          entryFee,
		CountdownSeconds:  countdown,
		Status:            status,
		Category:          data.Category,
		Difficulty:        data.Difficulty,
		Type:              data.Type,
		Currency:          data.Currency,
		Image:             data.Image,
		WordLength:        data.WordLength,
		RewardPerQuestion: data.RewardPerQuestion,
		QuestionsPerUser:  data.QuestionsPerUser,
		ScheduledStart:    data.ScheduledStart,
		DurationMinutes:   data.DurationMinutes,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.pools[p.ID]; ok {
		return Pool{}, ErrDuplicateID
	}
	s.add(p)
	return *p, nil
}

// Slugify derives a stable pool id from its title.
func Slugify(title string) string {
	slug := nonSlugChars.ReplaceAllString(strings.ToLower(title), "-")
	return strings.Trim(slug, "-")
}

// parseEntryFee strips currency symbols and thousand separators from the
// admin form value.
func parseEntryFee(raw string) float64 {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case '₦', '₩', '$', ',', ' ':
			return -1
		}
		return r
	}, raw)

	fee, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return fee
}
