package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/peoplecore/hrm-backend-go/internal/domain/user"
	"github.com/peoplecore/hrm-backend-go/internal/pkg/database"
	"github.com/peoplecore/hrm-backend-go/internal/pkg/jwt"
	"github.com/peoplecore/hrm-backend-go/internal/pkg/oauth"
	"github.com/peoplecore/hrm-backend-go/internal/repository/postgresql"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidRefresh     = errors.New("invalid or expired refresh token")
	ErrEmailNotVerified   = errors.New("google account email is not verified")
)

type Service struct {
	db *database.DB
	user.Repository
	user.RefreshTokenRepository

	jwtService jwt.Service
	google     oauth.GoogleService
}

func NewService(
	db *database.DB,
	userRepository user.Repository,
	refreshTokenRepository user.RefreshTokenRepository,
	jwtService jwt.Service,
	google oauth.GoogleService,
) *Service {
	return &Service{
		db:                     db,
		Repository:             userRepository,
		RefreshTokenRepository: refreshTokenRepository,
		jwtService:             jwtService,
		google:                 google,
	}
}

func (s *Service) Register(ctx context.Context, req user.RegisterRequest) (user.User, error) {
	if err := req.Validate(); err != nil {
		return user.User{}, err
	}

	if _, err := s.Repository.GetByEmail(ctx, req.Email); err == nil {
		return user.User{}, user.ErrEmailExists
	} else if !errors.Is(err, user.ErrUserNotFound) {
		return user.User{}, fmt.Errorf("failed to check existing user: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := s.Repository.Create(ctx, user.User{
		Email:        req.Email,
		PasswordHash: string(hashed),
		Role:         user.Role(req.Role),
		PersonnelID:  req.PersonnelID,
	})
	if err != nil {
		return user.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return created, nil
}

func (s *Service) Login(ctx context.Context, req user.LoginRequest) (user.User, user.TokenPair, error) {
	if err := req.Validate(); err != nil {
		return user.User{}, user.TokenPair{}, err
	}

	u, err := s.Repository.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return user.User{}, user.TokenPair{}, ErrInvalidCredentials
		}
		return user.User{}, user.TokenPair{}, fmt.Errorf("failed to get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return user.User{}, user.TokenPair{}, ErrInvalidCredentials
	}

	pair, err := s.issueTokens(ctx, u)
	if err != nil {
		return user.User{}, user.TokenPair{}, err
	}

	return u, pair, nil
}

// Refresh rotates the refresh token: the presented token is revoked and a new
// pair is issued inside one transaction.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (user.TokenPair, error) {
	stored, err := s.RefreshTokenRepository.GetByHash(ctx, hashToken(refreshToken))
	if err != nil {
		return user.TokenPair{}, ErrInvalidRefresh
	}
	if stored.RevokedAt != nil || time.Now().After(stored.ExpiresAt) {
		return user.TokenPair{}, ErrInvalidRefresh
	}

	u, err := s.Repository.GetByID(ctx, stored.UserID)
	if err != nil {
		return user.TokenPair{}, fmt.Errorf("failed to get user: %w", err)
	}

	var pair user.TokenPair
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if err := s.RefreshTokenRepository.Revoke(txCtx, stored.ID); err != nil {
			return fmt.Errorf("failed to revoke refresh token: %w", err)
		}
		pair, err = s.issueTokens(txCtx, u)
		return err
	})
	if err != nil {
		return user.TokenPair{}, err
	}

	return pair, nil
}

func (s *Service) Logout(ctx context.Context, userID string) error {
	return s.RefreshTokenRepository.RevokeAllForUser(ctx, userID)
}

// GoogleRedirectURL starts the OAuth2 flow.
func (s *Service) GoogleRedirectURL(userAgent string) (url, state string) {
	state = s.google.GenerateState(userAgent)
	return s.google.RedirectURL(state), state
}

// GoogleCallback exchanges the code, verifies the Google account and signs
// the matching user in. Google sign-in never creates accounts; an unknown
// Google identity falls back to email matching and links the identity.
func (s *Service) GoogleCallback(ctx context.Context, code string) (user.User, user.TokenPair, error) {
	token, err := s.google.VerifyToken(ctx, code)
	if err != nil {
		return user.User{}, user.TokenPair{}, fmt.Errorf("failed to exchange code: %w", err)
	}

	info, err := s.google.VerifyUser(ctx, token)
	if err != nil {
		return user.User{}, user.TokenPair{}, fmt.Errorf("failed to fetch google user: %w", err)
	}
	if !info.VerifiedEmail {
		return user.User{}, user.TokenPair{}, ErrEmailNotVerified
	}

	u, err := s.Repository.GetByGoogleID(ctx, info.GoogleID)
	if errors.Is(err, user.ErrUserNotFound) {
		u, err = s.Repository.GetByEmail(ctx, info.Email)
		if err == nil {
			u.GoogleID = &info.GoogleID
			if err := s.Repository.Update(ctx, u); err != nil {
				return user.User{}, user.TokenPair{}, fmt.Errorf("failed to link google account: %w", err)
			}
		}
	}
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return user.User{}, user.TokenPair{}, ErrInvalidCredentials
		}
		return user.User{}, user.TokenPair{}, fmt.Errorf("failed to get user: %w", err)
	}

	pair, err := s.issueTokens(ctx, u)
	if err != nil {
		return user.User{}, user.TokenPair{}, err
	}

	return u, pair, nil
}

func (s *Service) issueTokens(ctx context.Context, u user.User) (user.TokenPair, error) {
	access, accessExp, err := s.jwtService.GenerateAccessToken(u.ID, u.Email, u.PersonnelID, u.Role)
	if err != nil {
		return user.TokenPair{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	refresh, refreshExp, err := s.jwtService.GenerateRefreshToken(u.ID)
	if err != nil {
		return user.TokenPair{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	_, err = s.RefreshTokenRepository.Create(ctx, user.RefreshToken{
		UserID:    u.ID,
		TokenHash: hashToken(refresh),
		ExpiresAt: time.Unix(refreshExp, 0),
	})
	if err != nil {
		return user.TokenPair{}, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return user.TokenPair{
		AccessToken:      access,
		RefreshToken:     refresh,
		ExpiresIn:        accessExp - time.Now().Unix(),
		RefreshExpiresAt: refreshExp,
	}, nil
}

// hashToken stores only a digest of refresh tokens, never the token itself.
func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
