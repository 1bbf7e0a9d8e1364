package application

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/vidserve/backend/internal/domain/entity"
	"github.com/vidserve/backend/internal/domain/repository"
	"github.com/vidserve/backend/pkg/apperr"
	"github.com/vidserve/backend/pkg/helpers"
)

// Expected business rejections. These travel back as failure envelopes with
// HTTP 200, never as raised errors.
var (
	ErrEmailExists  = errors.New("email already exists")
	ErrMobileExists = errors.New("mobile already exists")
)

// Service composes the user repository, the session store and the identity
// cache into the register/login/profile/logout flows.
type Service struct {
	Repo     repository.UserRepository
	Sessions SessionStore
	Cache    *IdentityCache
	JWT      *helpers.JWTManager
	Logger   *logrus.Logger
}

func NewService(repo repository.UserRepository, sessions SessionStore, cache *IdentityCache, jwt *helpers.JWTManager, logger *logrus.Logger) *Service {
	return &Service{Repo: repo, Sessions: sessions, Cache: cache, JWT: jwt, Logger: logger}
}

type RegisterInput struct {
	Email     string
	Mobile    string
	Password  string
	FirstName string
	LastName  string
}

// Register creates a new user. Uniqueness of email and mobile is a pre-check
// followed by the insert; concurrent registrations can race past it.
func (s *Service) Register(ctx context.Context, in RegisterInput) error {
	existing, err := s.Repo.FindByEmail(ctx, in.Email)
	if err != nil {
		return err
	}
	if existing != nil {
		s.Logger.WithField("email", in.Email).Error("email already exists")
		return ErrEmailExists
	}

	existing, err = s.Repo.FindByMobile(ctx, in.Mobile)
	if err != nil {
		return err
	}
	if existing != nil {
		s.Logger.WithField("mobile", in.Mobile).Error("mobile already exists")
		return ErrMobileExists
	}

	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return err
	}
	u := &entity.User{
		UserID:    strings.ReplaceAll(uuid.NewString(), "-", ""),
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Mobile:    in.Mobile,
		Password:  hash,
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		return err
	}
	s.Logger.WithField("email", u.Email).Info("registration successful")
	return nil
}

// LoginResult carries everything the handler needs to establish the cookie.
type LoginResult struct {
	Identity entity.Identity
	Token    string
	Expiry   time.Time
	Remember bool
}

// Login checks the credentials and establishes a server-side session.
func (s *Service) Login(ctx context.Context, email, password string, remember bool) (*LoginResult, error) {
	u, err := s.Repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apperr.NotFound("user does not exist", 0)
	}
	if !helpers.CheckPassword(u.Password, password) {
		return nil, apperr.Auth("wrong credentials")
	}

	sid := uuid.NewString()
	sess := &Session{
		SessionID: sid,
		UserID:    u.UserID,
		Email:     u.Email,
		Remember:  remember,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Sessions.Create(ctx, sess, s.JWT.TTL(remember)); err != nil {
		return nil, err
	}
	token, exp, err := s.JWT.GenerateSessionToken(u.UserID, sid, remember)
	if err != nil {
		return nil, err
	}
	s.Logger.WithField("user_id", u.UserID).Info("user login successful")
	return &LoginResult{
		Identity: entity.Identity{UserID: u.UserID, Email: u.Email},
		Token:    token,
		Expiry:   exp,
		Remember: remember,
	}, nil
}

// LoadIdentity resolves a user id to its identity projection, serving from
// the cache when the entry is fresh. A miss for a nonexistent user is never
// cached; the database is re-queried on every lookup.
func (s *Service) LoadIdentity(ctx context.Context, userID string) (*entity.Identity, error) {
	if id, ok := s.Cache.Get(userID); ok {
		s.Logger.WithField("user_id", userID).Info("got identity from local cache")
		return id, nil
	}
	id, err := s.Repo.FindIdentity(ctx, userID)
	if err != nil || id == nil {
		return nil, err
	}
	s.Cache.Put(*id)
	s.Logger.WithField("user_id", userID).Info("loaded identity from database")
	return id, nil
}

// ResolveSession validates a session token against the session store and
// loads the identity for the request. Used by the auth middleware.
func (s *Service) ResolveSession(ctx context.Context, token string) (*entity.Identity, *helpers.SessionClaims, error) {
	claims, err := s.JWT.ParseSessionToken(token)
	if err != nil {
		return nil, nil, apperr.Auth("invalid session token")
	}
	sess, err := s.Sessions.Get(ctx, claims.SessionID)
	if err != nil {
		return nil, nil, err
	}
	if sess == nil || sess.UserID != claims.UserID {
		return nil, nil, apperr.Auth("session not found")
	}
	id, err := s.LoadIdentity(ctx, claims.UserID)
	if err != nil {
		return nil, nil, err
	}
	if id == nil {
		return nil, nil, apperr.Auth("session not found")
	}
	return id, claims, nil
}

// GetProfile returns the stored record minus the id and password fields.
func (s *Service) GetProfile(ctx context.Context, userID string) (map[string]any, error) {
	profile, err := s.Repo.Profile(ctx, userID)
	if err != nil {
		return nil, err
	}
	s.Logger.WithField("user_id", userID).Info("fetched user profile")
	return profile, nil
}

// UpdateProfile writes the caller-supplied fields verbatim; only a supplied
// password is intercepted for re-hashing before storage.
func (s *Service) UpdateProfile(ctx context.Context, userID string, fields map[string]any) error {
	set := make(map[string]any, len(fields))
	for k, v := range fields {
		set[k] = v
	}
	if pwd, ok := fields["password"]; ok {
		plain, ok := pwd.(string)
		if !ok {
			return apperr.Validation("password must be a string")
		}
		hash, err := helpers.HashPassword(plain)
		if err != nil {
			return err
		}
		set["password"] = hash
	}
	if _, err := s.Repo.UpdateFields(ctx, userID, set); err != nil {
		return err
	}
	s.Logger.WithField("user_id", userID).Info("profile update success")
	return nil
}

// Logout terminates the server-side session.
func (s *Service) Logout(ctx context.Context, sessionID string) error {
	return s.Sessions.Delete(ctx, sessionID)
}
