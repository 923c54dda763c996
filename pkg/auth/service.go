package auth

import (
	"context"
	"database/sql"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pathsala/pathsala/pkg/errcodes"
	"github.com/pathsala/pathsala/pkg/models"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"
	"golang.org/x/crypto/bcrypt"
)

const (
	// BcryptCost is the cost factor for bcrypt hashing.
	BcryptCost = 12
	// TokenExpiry is how long session tokens are valid.
	TokenExpiry = 24 * time.Hour
)

// Subject kinds embedded in tokens. Reader and captain tokens are not
// interchangeable; each middleware checks the kind before looking up the
// entity in its own table.
const (
	SubjectReader  = "reader"
	SubjectCaptain = "captain"
)

// Claims are the JWT claims for a session token.
type Claims struct {
	SubjectID   int    `json:"subject_id"`
	SubjectKind string `json:"subject_kind"`
	jwt.RegisteredClaims
}

// Service issues, validates, and revokes session tokens, and owns password
// hashing.
type Service struct {
	db        *bun.DB
	jwtSecret []byte
}

func NewService(db *bun.DB, jwtSecret string) *Service {
	return &Service{
		db:        db,
		jwtSecret: []byte(jwtSecret),
	}
}

// GenerateToken signs a new token for the given subject.
func (s *Service) GenerateToken(subjectID int, subjectKind string) (string, error) {
	now := time.Now()
	claims := Claims{
		SubjectID:   subjectID,
		SubjectKind: subjectKind,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", errors.WithStack(err)
	}

	return signedToken, nil
}

// ValidateToken verifies the signature and expiry of a token and checks the
// revocation list. Callers re-derive the entity from the claims on every
// request; no session state is cached.
func (s *Service) ValidateToken(ctx context.Context, tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, errcodes.Unauthorized("Invalid or expired token")
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errcodes.Unauthorized("Invalid or expired token")
	}

	blacklisted, err := s.IsTokenBlacklisted(ctx, tokenString)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if blacklisted {
		return nil, errcodes.Unauthorized("Token has been revoked")
	}

	return claims, nil
}

// RevokeToken durably adds a token to the blacklist. Revoking an
// already-revoked token is a no-op. Each revocation also sweeps entries old
// enough that their signed tokens have expired anyway; the sweep is
// best-effort and stale rows are harmless.
func (s *Service) RevokeToken(ctx context.Context, tokenString string) error {
	entry := &models.BlacklistToken{
		CreatedAt: time.Now(),
		Token:     tokenString,
	}
	_, err := s.db.NewInsert().
		Model(entry).
		On("CONFLICT (token) DO NOTHING").
		Exec(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	cutoff := time.Now().Add(-TokenExpiry)
	_, _ = s.db.NewDelete().
		Model((*models.BlacklistToken)(nil)).
		Where("created_at < ?", cutoff).
		Exec(ctx)

	return nil
}

// IsTokenBlacklisted reports whether a token has been revoked.
func (s *Service) IsTokenBlacklisted(ctx context.Context, tokenString string) (bool, error) {
	exists, err := s.db.NewSelect().
		Model((*models.BlacklistToken)(nil)).
		Where("token = ?", tokenString).
		Exists(ctx)
	return exists, errors.WithStack(err)
}

// GetUserByID loads an active reader by id.
func (s *Service) GetUserByID(ctx context.Context, id int) (*models.User, error) {
	user := &models.User{}
	err := s.db.NewSelect().
		Model(user).
		Where("u.id = ?", id).
		Where("u.status = ?", models.UserStatusActive).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errcodes.NotFound("User")
		}
		return nil, errors.WithStack(err)
	}
	return user, nil
}

// GetCaptainByID loads an active captain by id.
func (s *Service) GetCaptainByID(ctx context.Context, id int) (*models.Captain, error) {
	captain := &models.Captain{}
	err := s.db.NewSelect().
		Model(captain).
		Where("cap.id = ?", id).
		Where("cap.status = ?", models.CaptainStatusActive).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errcodes.NotFound("Captain")
		}
		return nil, errors.WithStack(err)
	}
	return captain, nil
}

// HashPassword hashes a password using bcrypt.
func HashPassword(password string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", errors.WithStack(err)
	}
	return string(hashedPassword), nil
}

// CheckPassword compares a password with a hash.
func CheckPassword(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
