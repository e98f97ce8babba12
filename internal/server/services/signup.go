// Package services contains server-side business logic. This file implements
// SignupService, which orchestrates the signup and confirmation workflows.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"

	"signupd/internal/common"
	"signupd/internal/logging"
	"signupd/internal/randx"
	"signupd/internal/server/auth"
	"signupd/internal/server/mail"
	"signupd/internal/server/models"
	"signupd/internal/server/repositories/repomanager"
)

// ConfirmPath is the HTTP path embedded in confirmation links.
const ConfirmPath = "/confirm"

// SignupService provides the registration operations:
// - Register: create an unconfirmed user and email its confirmation link
// - Confirm: consume a confirmation token and activate the account
type SignupService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	mailer      mail.Mailer
	logger      logging.Logger
}

// NewSignupService constructs a SignupService using repositories and a mailer.
func NewSignupService(db *sql.DB, m repomanager.RepositoryManager, mailer mail.Mailer, l logging.Logger) *SignupService {
	return &SignupService{
		db:          db,
		repomanager: m,
		mailer:      mailer,
		logger:      l.With("component", "signup"),
	}
}

// Register creates a new unconfirmed user and sends the confirmation email.
// baseURL is the scheme://host:port of the current request, used to build
// the confirmation link.
//
// A taken nickname yields common.ErrorAlreadyExists. Nickname uniqueness is
// enforced by the storage layer's unique constraint, so two concurrent
// signups for the same nickname cannot both insert.
//
// The record is durably inserted before the email is sent, and a mail
// failure is logged, not returned: signup success means "record created",
// whether or not the email arrived.
func (s *SignupService) Register(ctx context.Context, nickname, email, password, baseURL string) (*models.User, error) {
	if nickname == "" || email == "" || password == "" {
		return nil, common.ErrorValidation
	}

	identityHash, err := auth.HashIdentity(email, password)
	if err != nil {
		return nil, fmt.Errorf("error hashing identity: %w", err)
	}

	token, err := randx.ConfirmationToken()
	if err != nil {
		return nil, fmt.Errorf("error generating confirmation token: %w", err)
	}

	user := &models.User{
		Nickname:          nickname,
		IdentityHash:      identityHash,
		ConfirmationToken: sql.NullString{String: token, Valid: true},
	}

	repo := s.repomanager.Users(s.db)
	user, err = repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	s.sendConfirmationEmail(ctx, email, token, baseURL)

	return user, nil
}

// Confirm looks up the record holding the token, marks it confirmed, and
// clears the token in one update. A second call with the same token finds
// nothing: confirmation is consumed, not idempotent.
func (s *SignupService) Confirm(ctx context.Context, token string) error {
	if token == "" {
		return common.ErrInvalidToken
	}

	repo := s.repomanager.Users(s.db)
	id, err := repo.Confirm(ctx, token)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrInvalidToken
		}
		return fmt.Errorf("error confirming user: %w", err)
	}

	s.logger.Info(ctx, "account confirmed", "user_id", id)
	return nil
}

// sendConfirmationEmail makes a single delivery attempt and never fails the
// signup: transport errors are logged and swallowed.
func (s *SignupService) sendConfirmationEmail(ctx context.Context, email, token, baseURL string) {
	if !s.mailer.IsEnabled() {
		s.logger.Info(ctx, "mail disabled, skipping confirmation email",
			"recipient", email)
		return
	}

	link, err := confirmationLink(baseURL, token)
	if err != nil {
		s.logger.Error(ctx, "error building confirmation link", "error", err)
		return
	}

	body, err := mail.ConfirmationBody(link)
	if err != nil {
		s.logger.Error(ctx, "error rendering confirmation email", "error", err)
		return
	}

	if err := s.mailer.SendTo(mail.ConfirmationSubject, body, email); err != nil {
		s.logger.Error(ctx, "error sending confirmation email",
			"recipient", email, "error", err)
		return
	}

	s.logger.Info(ctx, "confirmation email sent", "recipient", email)
}

func confirmationLink(baseURL, token string) (string, error) {
	u, err := url.Parse(baseURL + ConfirmPath)
	if err != nil {
		return "", err
	}

	q := u.Query()
	q.Set("token", token)
	u.RawQuery = q.Encode()

	return u.String(), nil
}
