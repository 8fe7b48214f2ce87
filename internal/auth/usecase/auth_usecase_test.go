package usecase

import (
	"errors"
	"testing"
	"time"

	authdomain "classmon-backend/internal/auth/domain"
	authdto "classmon-backend/internal/auth/dto"
	"classmon-backend/pkg/config"

	"github.com/stretchr/testify/require"
)

// fakeUserRepo is an in-memory UserRepository for exercising the usecase
// without a database.
type fakeUserRepo struct {
	users         map[string]*authdomain.User
	findByIDCalls int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*authdomain.User{}}
}

func (r *fakeUserRepo) Create(user *authdomain.User) error {
	if user.ID == "" {
		user.ID = "user-" + user.Email
	}
	user.CreatedAt = time.Now()
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*authdomain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByID(id string) (*authdomain.User, error) {
	r.findByIDCalls++
	return r.users[id], nil
}

func (r *fakeUserRepo) ListByRole(role authdomain.Role) ([]*authdomain.User, error) {
	var out []*authdomain.User
	for _, u := range r.users {
		if u.Role == role {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) Delete(id string) error {
	delete(r.users, id)
	return nil
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret: "test-secret",
		JWTExpiry: time.Hour,
		SignupKey: "K1",
	}
}

func TestSignupThenLogin(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewAuthUsecase(repo, testConfig())

	signup, err := uc.Signup(&authdto.SignupRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "password1",
		Key:      "K1",
	})
	require.NoError(t, err)
	require.NotEmpty(t, signup.Token)
	require.Equal(t, authdomain.RoleAdmin, signup.User.Role)

	login, err := uc.Login(&authdto.LoginRequest{
		Email:    "alice@example.com",
		Password: "password1",
	})
	require.NoError(t, err)
	require.Equal(t, signup.User.ID, login.User.ID)
	require.Equal(t, signup.User.Role, login.User.Role)

	userID, role, err := uc.ValidateToken(login.Token)
	require.NoError(t, err)
	require.Equal(t, signup.User.ID, userID)
	require.Equal(t, authdomain.RoleAdmin, role)
}

func TestSignupWrongKeyCreatesNoAccount(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewAuthUsecase(repo, testConfig())

	_, err := uc.Signup(&authdto.SignupRequest{
		Username: "bob",
		Email:    "bob@example.com",
		Password: "password1",
		Key:      "K2",
	})
	require.ErrorIs(t, err, authdomain.ErrInvalidSignupKey)

	// The rejected signup must leave nothing behind.
	_, err = uc.Login(&authdto.LoginRequest{Email: "bob@example.com", Password: "password1"})
	require.ErrorIs(t, err, authdomain.ErrInvalidCredentials)
}

func TestSignupDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewAuthUsecase(repo, testConfig())

	req := &authdto.SignupRequest{Username: "alice", Email: "alice@example.com", Password: "password1", Key: "K1"}
	_, err := uc.Signup(req)
	require.NoError(t, err)

	_, err = uc.Signup(req)
	require.ErrorIs(t, err, authdomain.ErrEmailExists)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewAuthUsecase(repo, testConfig())

	_, err := uc.Signup(&authdto.SignupRequest{Username: "alice", Email: "alice@example.com", Password: "password1", Key: "K1"})
	require.NoError(t, err)

	_, errUnknown := uc.Login(&authdto.LoginRequest{Email: "nobody@example.com", Password: "password1"})
	_, errWrongPw := uc.Login(&authdto.LoginRequest{Email: "alice@example.com", Password: "wrong-password"})

	require.ErrorIs(t, errUnknown, authdomain.ErrInvalidCredentials)
	require.ErrorIs(t, errWrongPw, authdomain.ErrInvalidCredentials)
	require.Equal(t, errUnknown, errWrongPw)
}

func TestRegisterStaffForbiddenForNonAdmin(t *testing.T) {
	uc := NewAuthUsecase(newFakeUserRepo(), testConfig())

	_, err := uc.RegisterStaff(authdomain.RoleStaff, &authdto.RegisterStaffRequest{
		Username: "eve",
		Email:    "eve@example.com",
		Password: "password1",
	})
	require.ErrorIs(t, err, authdomain.ErrForbidden)
}

func TestRegisterStaffAlwaysCreatesStaff(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewAuthUsecase(repo, testConfig())

	user, err := uc.RegisterStaff(authdomain.RoleAdmin, &authdto.RegisterStaffRequest{
		Username: "carol",
		Email:    "carol@example.com",
		Password: "password1",
	})
	require.NoError(t, err)
	require.Equal(t, authdomain.RoleStaff, user.Role)

	login, err := uc.Login(&authdto.LoginRequest{Email: "carol@example.com", Password: "password1"})
	require.NoError(t, err)
	require.Equal(t, authdomain.RoleStaff, login.User.Role)
}

func TestTerminateChecksCallerBeforeLookup(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewAuthUsecase(repo, testConfig())

	err := uc.TerminateUser(authdomain.RoleStaff, "some-id")
	require.ErrorIs(t, err, authdomain.ErrForbidden)
	// A forbidden caller must not learn whether the target exists.
	require.Zero(t, repo.findByIDCalls)
}

func TestTerminateRefusesAdminTarget(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewAuthUsecase(repo, testConfig())

	admin, err := uc.Signup(&authdto.SignupRequest{Username: "alice", Email: "alice@example.com", Password: "password1", Key: "K1"})
	require.NoError(t, err)

	err = uc.TerminateUser(authdomain.RoleAdmin, admin.User.ID)
	require.ErrorIs(t, err, authdomain.ErrCannotTerminateAdmin)
}

func TestTerminateUnknownTarget(t *testing.T) {
	uc := NewAuthUsecase(newFakeUserRepo(), testConfig())

	err := uc.TerminateUser(authdomain.RoleAdmin, "missing-id")
	require.ErrorIs(t, err, authdomain.ErrUserNotFound)
}

func TestTerminateDeletesStaff(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewAuthUsecase(repo, testConfig())

	staff, err := uc.RegisterStaff(authdomain.RoleAdmin, &authdto.RegisterStaffRequest{
		Username: "carol",
		Email:    "carol@example.com",
		Password: "password1",
	})
	require.NoError(t, err)

	require.NoError(t, uc.TerminateUser(authdomain.RoleAdmin, staff.ID))

	_, err = uc.Login(&authdto.LoginRequest{Email: "carol@example.com", Password: "password1"})
	require.ErrorIs(t, err, authdomain.ErrInvalidCredentials)
}

func TestListStaff(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewAuthUsecase(repo, testConfig())

	_, err := uc.Signup(&authdto.SignupRequest{Username: "alice", Email: "alice@example.com", Password: "password1", Key: "K1"})
	require.NoError(t, err)
	staff, err := uc.RegisterStaff(authdomain.RoleAdmin, &authdto.RegisterStaffRequest{
		Username: "carol", Email: "carol@example.com", Password: "password1",
	})
	require.NoError(t, err)

	_, err = uc.ListStaff(authdomain.RoleStaff)
	require.ErrorIs(t, err, authdomain.ErrForbidden)

	list, err := uc.ListStaff(authdomain.RoleAdmin)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, staff.ID, list[0].ID)
}

func TestValidateTokenExpired(t *testing.T) {
	cfg := testConfig()
	cfg.JWTExpiry = -time.Minute
	repo := newFakeUserRepo()
	uc := NewAuthUsecase(repo, cfg)

	resp, err := uc.Signup(&authdto.SignupRequest{Username: "alice", Email: "alice@example.com", Password: "password1", Key: "K1"})
	require.NoError(t, err)

	_, _, err = uc.ValidateToken(resp.Token)
	require.ErrorIs(t, err, authdomain.ErrTokenExpired)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewAuthUsecase(repo, testConfig())

	resp, err := uc.Signup(&authdto.SignupRequest{Username: "alice", Email: "alice@example.com", Password: "password1", Key: "K1"})
	require.NoError(t, err)

	otherCfg := testConfig()
	otherCfg.JWTSecret = "other-secret"
	other := NewAuthUsecase(repo, otherCfg)

	_, _, err = other.ValidateToken(resp.Token)
	require.ErrorIs(t, err, authdomain.ErrInvalidToken)
}

func TestValidateTokenMalformed(t *testing.T) {
	uc := NewAuthUsecase(newFakeUserRepo(), testConfig())

	_, _, err := uc.ValidateToken("not.a.jwt")
	require.Error(t, err)
	require.True(t, errors.Is(err, authdomain.ErrInvalidToken))
}
