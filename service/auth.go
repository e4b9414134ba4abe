package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/HoangPhanDev98/jobhunt-backend/db"
	"github.com/HoangPhanDev98/jobhunt-backend/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials covers both unknown email and wrong password,
	// so a login attempt cannot be used to probe for registered addresses.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrInvalidRefreshToken is the single error for every refresh failure:
	// missing cookie, bad signature, expiry, revoked or superseded token.
	// Callers cannot tell which check failed.
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
)

const (
	tokenSubject = "login token"
	tokenIssuer  = "api server"
)

// TokenClaims is the claim set carried by both access and refresh tokens.
type TokenClaims struct {
	UserID string `json:"_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// AuthConfig carries the two signing secrets and their expiries. Access
// and refresh tokens are never signed with the same secret.
type AuthConfig struct {
	AccessSecret  []byte
	AccessExpire  time.Duration
	RefreshSecret []byte
	RefreshExpire time.Duration
}

// AuthService owns the session lifecycle: credential verification, token
// issuance, rotation and revocation. Session state is the single
// refreshToken slot on the user document; possession of a matching token
// is the session.
type AuthService struct {
	users db.UserStore
	cfg   AuthConfig
	now   func() time.Time
}

func NewAuthService(users db.UserStore, cfg AuthConfig) *AuthService {
	return &AuthService{users: users, cfg: cfg, now: time.Now}
}

// Login verifies credentials and opens a session: a fresh access/refresh
// pair is issued and the refresh token is persisted, displacing whatever
// token the user held before. The returned refresh token belongs in an
// HttpOnly cookie, never in the response body.
func (s *AuthService) Login(ctx context.Context, email, password string) (models.AuthResult, string, error) {
	user, err := s.verifyCredentials(ctx, email, password)
	if err != nil {
		return models.AuthResult{}, "", err
	}

	return s.openSession(ctx, user, func(refresh string) error {
		return s.users.SetRefreshToken(ctx, user.ID, refresh)
	})
}

// Refresh exchanges a valid refresh token for a new access/refresh pair.
// The presented token is verified against the refresh secret before any
// database access, then matched against the stored slot; rotation is a
// conditional overwrite, so a token can be exchanged exactly once.
func (s *AuthService) Refresh(ctx context.Context, token string) (models.AuthResult, string, error) {
	if token == "" {
		return models.AuthResult{}, "", ErrInvalidRefreshToken
	}

	if _, err := s.parseToken(token, s.cfg.RefreshSecret); err != nil {
		return models.AuthResult{}, "", ErrInvalidRefreshToken
	}

	user, err := s.users.FindByRefreshToken(ctx, token)
	if err != nil {
		if !errors.Is(err, db.ErrNotFound) {
			slog.Error("refresh token lookup failed", "error", err)
		}
		return models.AuthResult{}, "", ErrInvalidRefreshToken
	}

	// Claims are rebuilt from the current record, not the old token, so a
	// role or name change takes effect on the next refresh.
	result, refresh, err := s.openSession(ctx, user, func(refresh string) error {
		return s.users.RotateRefreshToken(ctx, user.ID, token, refresh)
	})
	if err != nil {
		// db.ErrNotFound here means a concurrent rotation or logout won
		// between lookup and overwrite; the loser's token is simply
		// invalid, like every other refresh failure.
		if !errors.Is(err, db.ErrNotFound) {
			slog.Error("refresh rotation failed", "error", err, "user_id", user.ID.Hex())
		}
		return models.AuthResult{}, "", ErrInvalidRefreshToken
	}
	return result, refresh, nil
}

// Logout clears the stored refresh token. Calling it twice is safe; the
// second call clears an already-empty slot.
func (s *AuthService) Logout(ctx context.Context, userID bson.ObjectID) error {
	err := s.users.SetRefreshToken(ctx, userID, "")
	if errors.Is(err, db.ErrNotFound) {
		return nil
	}
	return err
}

// VerifyAccessToken checks signature and expiry against the access secret
// and resolves the caller's identity from the claims.
func (s *AuthService) VerifyAccessToken(token string) (models.Identity, error) {
	claims, err := s.parseToken(token, s.cfg.AccessSecret)
	if err != nil {
		return models.Identity{}, err
	}

	id, err := bson.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return models.Identity{}, fmt.Errorf("malformed user id in claims: %w", err)
	}

	return models.Identity{
		ID:    id,
		Name:  claims.Name,
		Email: claims.Email,
		Role:  models.Role(claims.Role),
	}, nil
}

// RefreshExpire exposes the refresh TTL so the HTTP layer can size the
// cookie Max-Age to match.
func (s *AuthService) RefreshExpire() time.Duration {
	return s.cfg.RefreshExpire
}

// verifyCredentials looks up the user by email and compares the password
// against the stored bcrypt hash. Both failure modes collapse into
// ErrInvalidCredentials.
func (s *AuthService) verifyCredentials(ctx context.Context, email, password string) (models.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return models.User{}, ErrInvalidCredentials
		}
		return models.User{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return models.User{}, ErrInvalidCredentials
	}

	return user, nil
}

// openSession issues a fresh token pair for the user and hands the refresh
// token to persist for storing before anything is returned.
func (s *AuthService) openSession(ctx context.Context, user models.User, persist func(refresh string) error) (models.AuthResult, string, error) {
	access, err := s.issueToken(user, s.cfg.AccessSecret, s.cfg.AccessExpire)
	if err != nil {
		return models.AuthResult{}, "", fmt.Errorf("sign access token: %w", err)
	}

	refresh, err := s.issueToken(user, s.cfg.RefreshSecret, s.cfg.RefreshExpire)
	if err != nil {
		return models.AuthResult{}, "", fmt.Errorf("sign refresh token: %w", err)
	}

	if err := persist(refresh); err != nil {
		return models.AuthResult{}, "", err
	}

	return models.AuthResult{
		AccessToken: access,
		User:        user.Identity(),
	}, refresh, nil
}

func (s *AuthService) issueToken(user models.User, secret []byte, expire time.Duration) (string, error) {
	now := s.now()
	claims := TokenClaims{
		UserID: user.ID.Hex(),
		Name:   user.Name,
		Email:  user.Email,
		Role:   string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   tokenSubject,
			Issuer:    tokenIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expire)),
			// The jti keeps two tokens minted within the same second from
			// being byte-identical; rotation must always change the value.
			ID: uuid.NewString(),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

func (s *AuthService) parseToken(token string, secret []byte) (TokenClaims, error) {
	var claims TokenClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		return TokenClaims{}, err
	}
	if !parsed.Valid {
		return TokenClaims{}, errors.New("invalid token")
	}
	return claims, nil
}
