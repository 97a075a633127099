package pool

import (
	"context"
	"strings"

	"github.com/Afresh-Revolution/Knowrist/internal/backend"
	"github.com/Afresh-Revolution/Knowrist/internal/logger"
)

// AdminService creates and lists pools through the backend admin API and
// mirrors created pools into the local store so they show up on the user
// dashboard without waiting for a re-fetch.
type AdminService struct {
	client *backend.Client
	store  *Store
}

func NewAdminService(client *backend.Client, store *Store) *AdminService {
	return &AdminService{client: client, store: store}
}

func (s *AdminService) CreatePool(ctx context.Context, token string, req backend.CreatePoolRequest) (backend.CreatePoolResult, error) {
	result, err := s.client.CreatePool(ctx, token, req)
	if err != nil {
		return backend.CreatePoolResult{}, err
	}

	mirrored := result.Pool
	if mirrored == nil {
		mirrored = &backend.AdminPool{
			ID:                result.ID,
			Title:             req.Title,
			Difficulty:        req.Difficulty,
			Category:          req.Category,
			WordLength:        req.WordLength,
			EntryFee:          req.EntryFee,
			RewardPerQuestion: req.RewardPerQuestion,
			MaxPlayers:        req.MaxPlayers,
			QuestionsPerUser:  req.QuestionsPerUser,
			ScheduledStart:    req.ScheduledStart,
			DurationMinutes:   req.DurationMinutes,
			Status:            req.Status,
		}
	}

	if local, ok := FromAdminPool(*mirrored); ok {
		s.mirror(local)
	}

	return result, nil
}

func (s *AdminService) ListPools(ctx context.Context, token string) ([]backend.AdminPool, error) {
	return s.client.GetAdminPools(ctx, token)
}

// mirror inserts an already-converted pool, skipping duplicates.
func (s *AdminService) mirror(p Pool) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	if _, ok := s.store.pools[p.ID]; ok {
		logger.Debugf("pool %s already mirrored locally", p.ID)
		return
	}
	stored := p
	s.store.add(&stored)
}

// FromAdminPool converts the backend schema into the dashboard shape. DRAFT
// pools are not shown to users, so ok is false for them.
func FromAdminPool(ap backend.AdminPool) (Pool, bool) {
	status, visible := mapAdminStatus(ap.Status)
	if !visible {
		return Pool{}, false
	}

	id := ap.ID
	if id == "" {
		id = Slugify(ap.Title)
	}

	return Pool{
		ID:                id,
		Title:             ap.Title,
		MaxPlayers:        ap.MaxPlayers,
		EntryFee:          ap.EntryFee,
		Status:            status,
		Category:          ap.Category,
		SchemaCategory:    ap.Category,
		Difficulty:        Difficulty(strings.ToLower(ap.Difficulty)),
		Type:              "Paid",
		Image:             ap.Image,
		WordLength:        ap.WordLength,
		RewardPerQuestion: ap.RewardPerQuestion,
		QuestionsPerUser:  ap.QuestionsPerUser,
		ScheduledStart:    ap.ScheduledStart,
		DurationMinutes:   ap.DurationMinutes,
	}, true
}

func mapAdminStatus(status string) (Status, bool) {
	switch status {
	case "OPEN", "WAITING":
		return StatusAvailable, true
	case "LIVE", "EXTENDED":
		return StatusPlaying, true
	case "ENDED":
		return StatusEnded, true
	default: // DRAFT and anything unknown
		return "", false
	}
}
