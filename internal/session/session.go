package session

import (
	"context"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ProtoSG/momentum-front/internal/model"
	"github.com/ProtoSG/momentum-front/internal/storage"
)

// Store holds the current session: a persisted token/refreshToken/userEmail
// record plus the in-memory user identity reconstructed from it. There is no
// token-refresh logic; expiry is only discovered via a 401 response.
type Store struct {
	repo *storage.SessionRepo
}

func NewStore(repo *storage.SessionRepo) *Store {
	return &Store{repo: repo}
}

// Token returns the persisted access token, or "" when logged out. It is
// read fresh on every call so a concurrent teardown is picked up immediately.
func (s *Store) Token(ctx context.Context) (string, error) {
	return s.repo.Get(ctx, storage.KeyToken)
}

// Current reconstructs the user from the persisted token+email pair.
// ok is false when no session record exists.
func (s *Store) Current(ctx context.Context) (model.User, bool, error) {
	token, err := s.repo.Get(ctx, storage.KeyToken)
	if err != nil {
		return model.User{}, false, err
	}
	email, err := s.repo.Get(ctx, storage.KeyUserEmail)
	if err != nil {
		return model.User{}, false, err
	}
	if token == "" || email == "" {
		return model.User{}, false, nil
	}
	return userFromToken(token, email), true, nil
}

// Login persists the full session record and makes the user current.
func (s *Store) Login(ctx context.Context, token, refreshToken, email string) error {
	if err := s.repo.Set(ctx, storage.KeyToken, token); err != nil {
		return err
	}
	if err := s.repo.Set(ctx, storage.KeyRefreshToken, refreshToken); err != nil {
		return err
	}
	return s.repo.Set(ctx, storage.KeyUserEmail, email)
}

// Logout clears every persisted session field.
func (s *Store) Logout(ctx context.Context) error {
	return s.repo.Clear(ctx)
}

// Clear is Logout under the name the API client expects for its 401 path.
func (s *Store) Clear(ctx context.Context) error {
	return s.repo.Clear(ctx)
}

// userFromToken rebuilds an identity from the stored pair. The access token
// is parsed without signature verification (the client has no signing key)
// purely to recover the numeric user id and display name; an opaque token
// degrades to id 0 and the email local part as the name.
func userFromToken(token, email string) model.User {
	u := model.User{
		Email: email,
		Name:  emailLocalPart(email),
	}

	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return u
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return u
	}
	if id, ok := numericClaim(claims, "userId"); ok {
		u.UserID = id
	} else if id, ok := numericClaim(claims, "sub"); ok {
		u.UserID = id
	}
	if name, ok := claims["name"].(string); ok && name != "" {
		u.Name = name
	}
	return u
}

func numericClaim(claims jwt.MapClaims, key string) (int64, bool) {
	v, ok := claims[key].(float64)
	if !ok {
		return 0, false
	}
	return int64(v), true
}

func emailLocalPart(email string) string {
	if at := strings.IndexByte(email, '@'); at > 0 {
		return email[:at]
	}
	return email
}
