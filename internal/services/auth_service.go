package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/tarefasapp/tarefas/internal/auth"
	"github.com/tarefasapp/tarefas/internal/models"
)

type authServiceImpl struct {
	logger zerolog.Logger
	db     DB
	tokens TokenIssuer
}

func NewAuthService(
	logger zerolog.Logger,
	db DB,
	tokens TokenIssuer,
) AuthService {
	return &authServiceImpl{
		logger: logger.With().Str("component", "auth_service").Logger(),
		db:     db,
		tokens: tokens,
	}
}

func (s *authServiceImpl) Login(ctx context.Context, params LoginParams) (*LoginResult, error) {
	user := models.User{
		Email: params.Email,
	}

	const selectUserByEmailQuery = `
SELECT id,
       name,
       password
FROM users
WHERE email = $1
`
	err := s.db.QueryRow(
		ctx,
		selectUserByEmailQuery,
		user.Email,
	).Scan(
		&user.ID,
		&user.Name,
		&user.Password,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			s.logger.Warn().
				Str("email", user.Email).
				Msg("user not found")
			return nil, ErrUserNotFound
		}

		s.logger.Error().
			Err(err).
			Str("email", user.Email).
			Msg("failed to select user by email")
		return nil, fmt.Errorf("failed to select user: %w", err)
	}
	s.logger.Debug().
		Int64("user_id", user.ID).
		Msg("selected user")

	if !auth.VerifyPassword(params.Password, user.Password) {
		s.logger.Warn().
			Int64("user_id", user.ID).
			Msg("passwords do not match")
		return nil, ErrUserPasswordMismatch
	}

	token, expiresAt, err := s.tokens.Issue(auth.Identity{
		UserID: user.ID,
		Email:  user.Email,
	})
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to issue token")
		return nil, err
	}

	s.logger.Info().
		Int64("user_id", user.ID).
		Time("expires_at", expiresAt).
		Msg("logged in")
	user.Password = ""
	return &LoginResult{
		User:           user,
		Token:          token,
		TokenExpiresAt: expiresAt,
	}, nil
}
