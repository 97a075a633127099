package auth

import (
	"context"
	"sync"

	"github.com/Afresh-Revolution/Knowrist/internal/backend"
	"github.com/Afresh-Revolution/Knowrist/internal/localstore"
	"github.com/Afresh-Revolution/Knowrist/internal/logger"
)

// AdminSession is the locally held admin credential.
type AdminSession struct {
	Token string `json:"token"`
	Email string `json:"email"`
	Role  string `json:"role"` // main | super
}

// AdminService owns the admin session: login against the backend, role
// mapping, persistence in the local store.
type AdminService struct {
	mu      sync.Mutex
	client  *backend.Client
	store   *localstore.Store
	current *AdminSession
}

func NewAdminService(client *backend.Client, store *localstore.Store) *AdminService {
	return &AdminService{client: client, store: store}
}

// Restore picks up a persisted admin session from a previous run.
func (s *AdminService) Restore() {
	token, ok := s.store.Get(localstore.KeyAdminToken)
	if !ok {
		return
	}
	role, _ := s.store.Get(localstore.KeyAdminRole)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = &AdminSession{Token: token, Role: role}
	logger.Debug("restored admin session", "role", role)
}

func (s *AdminService) Login(ctx context.Context, email, password string) (AdminSession, error) {
	result, err := s.client.AdminLogin(ctx, email, password)
	if err != nil {
		return AdminSession{}, err
	}

	role, err := MapAdminRole(result.Admin.Role)
	if err != nil {
		return AdminSession{}, err
	}

	session := AdminSession{
		Token: result.Token,
		Email: result.Admin.Email,
		Role:  role,
	}

	if err := s.store.Set(localstore.KeyAdminToken, session.Token); err != nil {
		logger.Errorf("failed to persist admin token: %v", err)
	}
	if err := s.store.Set(localstore.KeyAdminRole, session.Role); err != nil {
		logger.Errorf("failed to persist admin role: %v", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = &session
	return session, nil
}

func (s *AdminService) Logout() {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()

	if err := s.store.Remove(localstore.KeyAdminToken, localstore.KeyAdminRole); err != nil {
		logger.Errorf("failed to clear admin session: %v", err)
	}
}

// Session returns the active admin token and role.
func (s *AdminService) Session() (token, role string, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return "", "", false
	}
	return s.current.Token, s.current.Role, true
}
