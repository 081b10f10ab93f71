package authsvc

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"bikerental/model"
	adminrepo "bikerental/repository/admin"
	userrepo "bikerental/repository/user"
	"bikerental/util/hash"
	jwtutil "bikerental/util/jwt"
)

type ErrCode string

const (
	ErrEmailTaken   ErrCode = "EMAIL_TAKEN"
	ErrBadInput     ErrCode = "BAD_INPUT"
	ErrInvalidCreds ErrCode = "INVALID_CREDS"
)

type codedError struct{ code ErrCode }

func (e codedError) Error() string { return string(e.code) }
func (e codedError) Code() ErrCode { return e.code }
func makeErr(c ErrCode) error      { return codedError{code: c} }

func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

type Service interface {
	Register(ctx context.Context, req model.RegisterReq) (*model.User, string, error)
	Login(ctx context.Context, req model.LoginReq) (*model.User, string, error)
	AdminLogin(ctx context.Context, req model.LoginReq) (string, error)
	AdminProfile(ctx context.Context, adminID int64) (*model.Admin, error)

	// EnsureAdmin seeds the bootstrap admin account when it does not exist.
	EnsureAdmin(ctx context.Context, email, password string) error
}

type service struct {
	users  userrepo.Repo
	admins adminrepo.Repo
	secret string
}

func New(users userrepo.Repo, admins adminrepo.Repo, secret string) Service {
	return &service{users: users, admins: admins, secret: secret}
}

func (s *service) Register(ctx context.Context, req model.RegisterReq) (*model.User, string, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || strings.TrimSpace(req.Name) == "" || len(req.Password) < 6 {
		return nil, "", makeErr(ErrBadInput)
	}

	hashed, err := hash.HashPassword(req.Password)
	if err != nil {
		return nil, "", err
	}

	u := &model.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: hashed,
	}
	if err := s.users.Create(ctx, u); err != nil {
		if isUniqueViolation(err) {
			return nil, "", makeErr(ErrEmailTaken)
		}
		return nil, "", err
	}

	token, err := jwtutil.Issue(s.secret, u.ID, "user", 24)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

func (s *service) Login(ctx context.Context, req model.LoginReq) (*model.User, string, error) {
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return nil, "", makeErr(ErrBadInput)
	}
	u, err := s.users.ByEmail(ctx, req.Email)
	if err != nil {
		return nil, "", err
	}
	if u == nil || !hash.Check(u.PasswordHash, req.Password) {
		return nil, "", makeErr(ErrInvalidCreds)
	}
	token, err := jwtutil.Issue(s.secret, u.ID, "user", 24)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

func (s *service) AdminLogin(ctx context.Context, req model.LoginReq) (string, error) {
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return "", makeErr(ErrBadInput)
	}
	a, err := s.admins.ByEmail(ctx, req.Email)
	if err != nil {
		return "", err
	}
	if a == nil || !hash.Check(a.PasswordHash, req.Password) {
		return "", makeErr(ErrInvalidCreds)
	}
	return jwtutil.Issue(s.secret, a.ID, "admin", 24)
}

func (s *service) AdminProfile(ctx context.Context, adminID int64) (*model.Admin, error) {
	return s.admins.ByID(ctx, adminID)
}

func (s *service) EnsureAdmin(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return nil
	}
	existing, err := s.admins.ByEmail(ctx, email)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}
	hashed, err := hash.HashPassword(password)
	if err != nil {
		return err
	}
	return s.admins.Create(ctx, &model.Admin{Email: strings.ToLower(email), PasswordHash: hashed})
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
