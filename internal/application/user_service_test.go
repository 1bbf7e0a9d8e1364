package application

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vidserve/backend/internal/domain/entity"
	"github.com/vidserve/backend/pkg/apperr"
	"github.com/vidserve/backend/pkg/helpers"
)

type stubRepo struct {
	users           map[string]*entity.User // by user_id
	identityLookups int
	updateCalls     []map[string]any
}

func newStubRepo() *stubRepo {
	return &stubRepo{users: make(map[string]*entity.User)}
}

func (r *stubRepo) Create(_ context.Context, u *entity.User) error {
	cp := *u
	r.users[u.UserID] = &cp
	return nil
}

func (r *stubRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *stubRepo) FindByMobile(_ context.Context, mobile string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Mobile == mobile {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *stubRepo) FindIdentity(_ context.Context, userID string) (*entity.Identity, error) {
	r.identityLookups++
	u, ok := r.users[userID]
	if !ok {
		return nil, nil
	}
	return &entity.Identity{UserID: u.UserID, Email: u.Email}, nil
}

func (r *stubRepo) Profile(_ context.Context, userID string) (map[string]any, error) {
	u, ok := r.users[userID]
	if !ok {
		return nil, apperr.NotFound("no user found", 0)
	}
	return map[string]any{
		"first_name": u.FirstName,
		"last_name":  u.LastName,
		"email":      u.Email,
		"mobile":     u.Mobile,
	}, nil
}

func (r *stubRepo) UpdateFields(_ context.Context, userID string, fields map[string]any) (int64, error) {
	r.updateCalls = append(r.updateCalls, fields)
	u, ok := r.users[userID]
	if !ok {
		return 0, apperr.NotFound("profile update failed", 0)
	}
	if v, ok := fields["password"].(string); ok {
		u.Password = v
	}
	if v, ok := fields["first_name"].(string); ok {
		u.FirstName = v
	}
	if v, ok := fields["email"].(string); ok {
		u.Email = v
	}
	return 1, nil
}

type memSessions struct {
	store map[string]*Session
}

func newMemSessions() *memSessions {
	return &memSessions{store: make(map[string]*Session)}
}

func (m *memSessions) Create(_ context.Context, s *Session, _ time.Duration) error {
	m.store[s.SessionID] = s
	return nil
}

func (m *memSessions) Get(_ context.Context, sid string) (*Session, error) {
	return m.store[sid], nil
}

func (m *memSessions) Delete(_ context.Context, sid string) error {
	delete(m.store, sid)
	return nil
}

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func newTestService(repo *stubRepo) (*Service, *memSessions) {
	sessions := newMemSessions()
	svc := NewService(repo, sessions, NewIdentityCache(time.Minute),
		helpers.NewJWTManager("testsecret", time.Hour, 24*time.Hour), testLogger())
	return svc, sessions
}

func registerInput() RegisterInput {
	return RegisterInput{
		Email:     "jane@example.com",
		Mobile:    "5550101",
		Password:  "hunter22",
		FirstName: "Jane",
		LastName:  "Doe",
	}
}

func TestRegisterStoresHashedPassword(t *testing.T) {
	repo := newStubRepo()
	svc, _ := newTestService(repo)

	require.NoError(t, svc.Register(context.Background(), registerInput()))
	require.Len(t, repo.users, 1)
	for _, u := range repo.users {
		assert.NotEqual(t, "hunter22", u.Password)
		assert.True(t, helpers.CheckPassword(u.Password, "hunter22"))
		assert.Len(t, u.UserID, 32)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := newStubRepo()
	svc, _ := newTestService(repo)

	require.NoError(t, svc.Register(context.Background(), registerInput()))

	in := registerInput()
	in.Mobile = "5550202"
	err := svc.Register(context.Background(), in)
	require.ErrorIs(t, err, ErrEmailExists)
	assert.Len(t, repo.users, 1, "second record must not be persisted")
}

func TestRegisterDuplicateMobile(t *testing.T) {
	repo := newStubRepo()
	svc, _ := newTestService(repo)

	require.NoError(t, svc.Register(context.Background(), registerInput()))

	in := registerInput()
	in.Email = "other@example.com"
	err := svc.Register(context.Background(), in)
	require.ErrorIs(t, err, ErrMobileExists)
	assert.Len(t, repo.users, 1)
}

func TestLoginSuccessEstablishesSession(t *testing.T) {
	repo := newStubRepo()
	svc, sessions := newTestService(repo)
	require.NoError(t, svc.Register(context.Background(), registerInput()))

	res, err := svc.Login(context.Background(), "jane@example.com", "hunter22", false)
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", res.Identity.Email)
	assert.NotEmpty(t, res.Token)
	assert.Len(t, sessions.store, 1)

	claims, err := svc.JWT.ParseSessionToken(res.Token)
	require.NoError(t, err)
	assert.Equal(t, res.Identity.UserID, claims.UserID)
}

func TestLoginWrongPassword(t *testing.T) {
	repo := newStubRepo()
	svc, sessions := newTestService(repo)
	require.NoError(t, svc.Register(context.Background(), registerInput()))

	_, err := svc.Login(context.Background(), "jane@example.com", "wrong", false)
	var ae *apperr.Error
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, 401, ae.Status)
	assert.Equal(t, "wrong credentials", ae.Message)
	assert.Empty(t, sessions.store, "no session on failed login")
}

func TestLoginUnknownEmail(t *testing.T) {
	repo := newStubRepo()
	svc, _ := newTestService(repo)

	_, err := svc.Login(context.Background(), "nobody@example.com", "x", false)
	var ae *apperr.Error
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, 500, ae.Status)
	assert.Equal(t, "user does not exist", ae.Message)
}

func TestLoadIdentityCachesWithinTTL(t *testing.T) {
	repo := newStubRepo()
	svc, _ := newTestService(repo)
	require.NoError(t, svc.Register(context.Background(), registerInput()))
	var uid string
	for id := range repo.users {
		uid = id
	}

	id, err := svc.LoadIdentity(context.Background(), uid)
	require.NoError(t, err)
	require.NotNil(t, id)
	assert.Equal(t, 1, repo.identityLookups)

	id, err = svc.LoadIdentity(context.Background(), uid)
	require.NoError(t, err)
	require.NotNil(t, id)
	assert.Equal(t, 1, repo.identityLookups, "second lookup within TTL must be served from cache")
}

func TestLoadIdentityRefreshesAfterTTL(t *testing.T) {
	repo := newStubRepo()
	svc, _ := newTestService(repo)
	require.NoError(t, svc.Register(context.Background(), registerInput()))
	var uid string
	for id := range repo.users {
		uid = id
	}

	_, err := svc.LoadIdentity(context.Background(), uid)
	require.NoError(t, err)

	// age the entry past the TTL
	svc.Cache.now = func() time.Time { return time.Now().Add(2 * time.Minute) }
	_, err = svc.LoadIdentity(context.Background(), uid)
	require.NoError(t, err)
	assert.Equal(t, 2, repo.identityLookups)
}

func TestLoadIdentityUnknownUserNotCached(t *testing.T) {
	repo := newStubRepo()
	svc, _ := newTestService(repo)

	id, err := svc.LoadIdentity(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, id)
	assert.Equal(t, 1, repo.identityLookups)

	// no negative caching: a repeat lookup re-queries
	_, _ = svc.LoadIdentity(context.Background(), "missing")
	assert.Equal(t, 2, repo.identityLookups)
	assert.Equal(t, 0, svc.Cache.Len())
}

func TestUpdateProfileRehashesPassword(t *testing.T) {
	repo := newStubRepo()
	svc, _ := newTestService(repo)
	require.NoError(t, svc.Register(context.Background(), registerInput()))
	var uid string
	for id := range repo.users {
		uid = id
	}

	err := svc.UpdateProfile(context.Background(), uid, map[string]any{"password": "newpass99", "first_name": "Janet"})
	require.NoError(t, err)

	u := repo.users[uid]
	assert.False(t, helpers.CheckPassword(u.Password, "hunter22"), "old password must no longer authenticate")
	assert.True(t, helpers.CheckPassword(u.Password, "newpass99"))
	assert.Equal(t, "Janet", u.FirstName)
	assert.Equal(t, "jane@example.com", u.Email, "unrelated fields untouched")

	// the plain password never reaches the repository
	require.Len(t, repo.updateCalls, 1)
	assert.NotEqual(t, "newpass99", repo.updateCalls[0]["password"])
}

func TestUpdateProfileNonStringPassword(t *testing.T) {
	repo := newStubRepo()
	svc, _ := newTestService(repo)

	err := svc.UpdateProfile(context.Background(), "uid", map[string]any{"password": 42})
	var ae *apperr.Error
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, 400, ae.Status)
}

func TestLogoutDeletesSession(t *testing.T) {
	repo := newStubRepo()
	svc, sessions := newTestService(repo)
	require.NoError(t, svc.Register(context.Background(), registerInput()))

	res, err := svc.Login(context.Background(), "jane@example.com", "hunter22", true)
	require.NoError(t, err)
	claims, err := svc.JWT.ParseSessionToken(res.Token)
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), claims.SessionID))
	assert.Empty(t, sessions.store)
}

func TestResolveSession(t *testing.T) {
	repo := newStubRepo()
	svc, _ := newTestService(repo)
	require.NoError(t, svc.Register(context.Background(), registerInput()))

	res, err := svc.Login(context.Background(), "jane@example.com", "hunter22", false)
	require.NoError(t, err)

	id, claims, err := svc.ResolveSession(context.Background(), res.Token)
	require.NoError(t, err)
	assert.Equal(t, res.Identity.UserID, id.UserID)
	assert.NotEmpty(t, claims.SessionID)

	// garbage token
	_, _, err = svc.ResolveSession(context.Background(), "not-a-token")
	var ae *apperr.Error
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, 401, ae.Status)

	// valid token, terminated session
	require.NoError(t, svc.Logout(context.Background(), claims.SessionID))
	_, _, err = svc.ResolveSession(context.Background(), res.Token)
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, 401, ae.Status)
}
