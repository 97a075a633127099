// Package user owns the client-side user session: login and signup through
// the backend, persistence in the local store, and the profile data the
// dashboard shows.
package user

import (
	"context"
	"sync"

	"github.com/Afresh-Revolution/Knowrist/internal/auth"
	"github.com/Afresh-Revolution/Knowrist/internal/backend"
	"github.com/Afresh-Revolution/Knowrist/internal/localstore"
	"github.com/Afresh-Revolution/Knowrist/internal/logger"
	"github.com/Afresh-Revolution/Knowrist/internal/wallet"
)

type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type Service struct {
	mu      sync.Mutex
	current *User
	token   string

	client *backend.Client
	store  *localstore.Store
	wallet *wallet.Service
}

func NewService(client *backend.Client, store *localstore.Store, walletSvc *wallet.Service) *Service {
	return &Service{client: client, store: store, wallet: walletSvc}
}

// Restore picks up a persisted session from a previous run and establishes
// the wallet balance for it.
func (s *Service) Restore(ctx context.Context) {
	var u User
	ok, err := s.store.GetJSON(localstore.KeyUser, &u)
	if err != nil {
		logger.Errorf("stored user is unreadable, dropping it: %v", err)
		_ = s.store.Remove(localstore.KeyUser, localstore.KeyToken)
	}

	token, hasToken := s.store.Get(localstore.KeyToken)

	s.mu.Lock()
	if ok && err == nil {
		s.current = &u
	}
	if hasToken {
		s.token = token
	}
	s.mu.Unlock()

	s.wallet.Establish(ctx, token)
}

// Login authenticates against the backend, persists the session and fetches
// the wallet balance. User identity is read from the token's claims since
// the login response carries only the token.
func (s *Service) Login(ctx context.Context, email, password string) (User, error) {
	token, err := s.client.Login(ctx, email, password)
	if err != nil {
		return User{}, err
	}

	u := User{Email: email}
	if claims, err := auth.DecodeClaims(token); err == nil {
		u.ID = claims.Subject
		if claims.Email != "" {
			u.Email = claims.Email
		}
	} else {
		logger.Debugf("token claims not decodable: %v", err)
	}

	s.setSession(u, token)
	s.wallet.Establish(ctx, token)
	return u, nil
}

// Signup registers a new account. The backend does not log the user in on
// signup, so no token is stored; the profile is kept for the login screen.
func (s *Service) Signup(ctx context.Context, fullname, username, email, password string) (User, error) {
	result, err := s.client.Signup(ctx, fullname, username, email, password)
	if err != nil {
		return User{}, err
	}

	u := User{
		ID:       result.ID,
		Name:     result.Name,
		Username: result.Username,
		Email:    result.Email,
	}

	if err := s.store.SetJSON(localstore.KeyUser, u); err != nil {
		logger.Errorf("failed to persist user: %v", err)
	}

	s.mu.Lock()
	s.current = &u
	s.mu.Unlock()
	return u, nil
}

// CheckUsername and CheckEmail soft-fail to available inside the client.
func (s *Service) CheckUsername(ctx context.Context, username string) bool {
	return s.client.CheckUsername(ctx, username)
}

func (s *Service) CheckEmail(ctx context.Context, email string) bool {
	return s.client.CheckEmail(ctx, email)
}

// Logout drops the session locally. Admin keys are cleared too, mirroring
// the web client's logout.
func (s *Service) Logout() {
	s.mu.Lock()
	s.current = nil
	s.token = ""
	s.mu.Unlock()

	err := s.store.Remove(
		localstore.KeyUser,
		localstore.KeyToken,
		localstore.KeyAdminToken,
		localstore.KeyAdminRole,
	)
	if err != nil {
		logger.Errorf("failed to clear session keys: %v", err)
	}
}

// DeleteAccount removes the account on the backend, then clears every trace
// of the session including the profile picture.
func (s *Service) DeleteAccount(ctx context.Context) error {
	s.mu.Lock()
	token := s.token
	current := s.current
	s.mu.Unlock()

	if token == "" {
		return auth.ErrNoSession
	}

	if err := s.client.DeleteAccount(ctx, token); err != nil {
		return err
	}

	keys := []string{localstore.KeyUser, localstore.KeyToken, localstore.KeyAdminToken, localstore.KeyAdminRole}
	if current != nil && current.ID != "" {
		keys = append(keys, localstore.ProfilePictureKey(current.ID))
	}
	if err := s.store.Remove(keys...); err != nil {
		logger.Errorf("failed to clear account keys: %v", err)
	}

	s.mu.Lock()
	s.current = nil
	s.token = ""
	s.mu.Unlock()
	return nil
}

func (s *Service) Current() (User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return User{}, false
	}
	return *s.current, true
}

// Token yields the backend bearer token; it satisfies auth.UserTokenSource.
func (s *Service) Token() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, s.token != ""
}

// SetProfilePicture stores the picture (a data URL) for the current user.
func (s *Service) SetProfilePicture(data string) error {
	u, ok := s.Current()
	if !ok || u.ID == "" {
		return auth.ErrNoSession
	}
	return s.store.Set(localstore.ProfilePictureKey(u.ID), data)
}

func (s *Service) ProfilePicture() (string, bool) {
	u, ok := s.Current()
	if !ok || u.ID == "" {
		return "", false
	}
	return s.store.Get(localstore.ProfilePictureKey(u.ID))
}

func (s *Service) setSession(u User, token string) {
	if err := s.store.SetJSON(localstore.KeyUser, u); err != nil {
		logger.Errorf("failed to persist user: %v", err)
	}
	if err := s.store.Set(localstore.KeyToken, token); err != nil {
		logger.Errorf("failed to persist token: %v", err)
	}

	s.mu.Lock()
	s.current = &u
	s.token = token
	s.mu.Unlock()
}
