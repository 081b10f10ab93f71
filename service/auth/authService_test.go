package authsvc

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"

	"bikerental/model"
	"bikerental/util/hash"
)

type userRepoMock struct {
	byEmailFn func(ctx context.Context, email string) (*model.User, error)
	createFn  func(ctx context.Context, u *model.User) error
}

func (m *userRepoMock) ByEmail(ctx context.Context, email string) (*model.User, error) {
	if m.byEmailFn == nil {
		return nil, nil
	}
	return m.byEmailFn(ctx, email)
}

func (m *userRepoMock) Create(ctx context.Context, u *model.User) error {
	if m.createFn == nil {
		return nil
	}
	return m.createFn(ctx, u)
}

type adminRepoMock struct {
	byEmailFn func(ctx context.Context, email string) (*model.Admin, error)
	byIDFn    func(ctx context.Context, id int64) (*model.Admin, error)
	createFn  func(ctx context.Context, a *model.Admin) error
}

func (m *adminRepoMock) ByEmail(ctx context.Context, email string) (*model.Admin, error) {
	if m.byEmailFn == nil {
		return nil, nil
	}
	return m.byEmailFn(ctx, email)
}

func (m *adminRepoMock) ByID(ctx context.Context, id int64) (*model.Admin, error) {
	if m.byIDFn == nil {
		return nil, nil
	}
	return m.byIDFn(ctx, id)
}

func (m *adminRepoMock) Create(ctx context.Context, a *model.Admin) error {
	if m.createFn == nil {
		return nil
	}
	return m.createFn(ctx, a)
}

func mustHash(t *testing.T, plain string) string {
	t.Helper()
	h, err := hash.HashPassword(plain)
	require.NoError(t, err)
	return h
}

// --- tests ---

func TestRegister_Success(t *testing.T) {
	ctx := context.Background()
	m := &userRepoMock{
		createFn: func(ctx context.Context, u *model.User) error {
			u.ID = 42
			return nil
		},
	}
	svc := New(m, &adminRepoMock{}, "test-secret")

	u, tok, err := svc.Register(ctx, model.RegisterReq{
		Name:     "Alex",
		Email:    "USER@Example.COM",
		Password: "supersecret",
	})
	require.NoError(t, err)
	require.NotNil(t, u)
	require.NotEmpty(t, tok)
	require.Equal(t, int64(42), u.ID)
	require.Equal(t, "user@example.com", u.Email)
	require.NotEmpty(t, u.PasswordHash)
}

func TestRegister_BadInput(t *testing.T) {
	ctx := context.Background()
	svc := New(&userRepoMock{}, &adminRepoMock{}, "test-secret")

	_, _, err := svc.Register(ctx, model.RegisterReq{
		Name:     "",
		Email:    " ",
		Password: "123",
	})
	require.Error(t, err)
	require.Equal(t, ErrBadInput, Code(err))
}

func TestRegister_EmailTaken(t *testing.T) {
	ctx := context.Background()
	m := &userRepoMock{
		createFn: func(ctx context.Context, u *model.User) error {
			return &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "users_email_key"}
		},
	}
	svc := New(m, &adminRepoMock{}, "test-secret")

	_, _, err := svc.Register(ctx, model.RegisterReq{
		Name:     "Alex",
		Email:    "taken@example.com",
		Password: "123456",
	})
	require.Error(t, err)
	require.Equal(t, ErrEmailTaken, Code(err))
}

func TestRegister_CreateError(t *testing.T) {
	ctx := context.Background()
	m := &userRepoMock{
		createFn: func(ctx context.Context, u *model.User) error {
			return errors.New("db down")
		},
	}
	svc := New(m, &adminRepoMock{}, "test-secret")

	_, _, err := svc.Register(ctx, model.RegisterReq{
		Name:     "Alex",
		Email:    "ok@example.com",
		Password: "123456",
	})
	require.Error(t, err)
	require.Equal(t, ErrCode(""), Code(err))
}

func TestLogin_Success(t *testing.T) {
	ctx := context.Background()
	pw := "supersecret"
	hashed := mustHash(t, pw)

	m := &userRepoMock{
		byEmailFn: func(ctx context.Context, email string) (*model.User, error) {
			return &model.User{ID: 7, Email: "user@example.com", PasswordHash: hashed}, nil
		},
	}
	svc := New(m, &adminRepoMock{}, "test-secret")

	u, tok, err := svc.Login(ctx, model.LoginReq{Email: "User@Example.com", Password: pw})
	require.NoError(t, err)
	require.NotNil(t, u)
	require.NotEmpty(t, tok)
	require.Equal(t, int64(7), u.ID)
}

func TestLogin_UserNotFound(t *testing.T) {
	ctx := context.Background()
	svc := New(&userRepoMock{}, &adminRepoMock{}, "test-secret")

	_, _, err := svc.Login(ctx, model.LoginReq{Email: "missing@example.com", Password: "whatever"})
	require.Error(t, err)
	require.Equal(t, ErrInvalidCreds, Code(err))
}

func TestLogin_WrongPassword(t *testing.T) {
	ctx := context.Background()
	hashed := mustHash(t, "correct-password")

	m := &userRepoMock{
		byEmailFn: func(ctx context.Context, email string) (*model.User, error) {
			return &model.User{ID: 101, Email: "user@example.com", PasswordHash: hashed}, nil
		},
	}
	svc := New(m, &adminRepoMock{}, "test-secret")

	_, _, err := svc.Login(ctx, model.LoginReq{Email: "user@example.com", Password: "wrong-password"})
	require.Error(t, err)
	require.Equal(t, ErrInvalidCreds, Code(err))
}

func TestAdminLogin_Success(t *testing.T) {
	ctx := context.Background()
	hashed := mustHash(t, "admin123")

	m := &adminRepoMock{
		byEmailFn: func(ctx context.Context, email string) (*model.Admin, error) {
			return &model.Admin{ID: 1, Email: "admin@bikerental.com", PasswordHash: hashed}, nil
		},
	}
	svc := New(&userRepoMock{}, m, "test-secret")

	tok, err := svc.AdminLogin(ctx, model.LoginReq{Email: "admin@bikerental.com", Password: "admin123"})
	require.NoError(t, err)
	require.NotEmpty(t, tok)
}

func TestAdminLogin_InvalidCreds(t *testing.T) {
	ctx := context.Background()
	svc := New(&userRepoMock{}, &adminRepoMock{}, "test-secret")

	_, err := svc.AdminLogin(ctx, model.LoginReq{Email: "nobody@example.com", Password: "x"})
	require.Error(t, err)
	require.Equal(t, ErrInvalidCreds, Code(err))
}

func TestEnsureAdmin(t *testing.T) {
	ctx := context.Background()

	var created *model.Admin
	m := &adminRepoMock{
		createFn: func(ctx context.Context, a *model.Admin) error {
			a.ID = 1
			created = a
			return nil
		},
	}
	svc := New(&userRepoMock{}, m, "test-secret")

	require.NoError(t, svc.EnsureAdmin(ctx, "admin@bikerental.com", "admin123"))
	require.NotNil(t, created)
	require.NotEmpty(t, created.PasswordHash)

	// already present: no second create
	created = nil
	m.byEmailFn = func(ctx context.Context, email string) (*model.Admin, error) {
		return &model.Admin{ID: 1, Email: email}, nil
	}
	require.NoError(t, svc.EnsureAdmin(ctx, "admin@bikerental.com", "admin123"))
	require.Nil(t, created)

	// unset env: seeding skipped entirely
	require.NoError(t, svc.EnsureAdmin(ctx, "", ""))
}
