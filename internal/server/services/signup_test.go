package services

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"signupd/internal/common"
	"signupd/internal/dbx"
	"signupd/internal/logging"
	"signupd/internal/server/mail"
	"signupd/internal/server/models"
	usersrepo "signupd/internal/server/repositories/users"
)

// --- fakes ---

type fakeUsersRepo struct {
	created   *models.User
	createErr error

	confirmID  int64
	confirmErr error

	confirmedTokens []string
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	u.ID = 1
	f.created = u
	return u, nil
}

func (f *fakeUsersRepo) GetByNickname(ctx context.Context, nickname string) (*models.User, error) {
	return nil, common.ErrorNotFound
}

func (f *fakeUsersRepo) GetByConfirmationToken(ctx context.Context, token string) (*models.User, error) {
	return nil, common.ErrorNotFound
}

func (f *fakeUsersRepo) Confirm(ctx context.Context, token string) (int64, error) {
	if f.confirmErr != nil {
		return 0, f.confirmErr
	}
	f.confirmedTokens = append(f.confirmedTokens, token)
	return f.confirmID, nil
}

type fakeRepoManager struct {
	u *fakeUsersRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository       { return m.u }

func newSignupService(t *testing.T, repo *fakeUsersRepo, mailer mail.Mailer) *SignupService {
	t.Helper()
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	return NewSignupService(nil, &fakeRepoManager{u: repo}, mailer, logger)
}

// --- tests ---

func TestRegister_Success(t *testing.T) {
	repo := &fakeUsersRepo{}
	mailer := mail.NewTestMailer()
	s := newSignupService(t, repo, mailer)

	u, err := s.Register(context.Background(), "alice", "a@x.com", "secret123", "http://localhost:8080")
	require.NoError(t, err)

	require.Equal(t, "alice", u.Nickname)
	require.False(t, u.Confirmed)
	require.True(t, u.ConfirmationToken.Valid)
	require.Regexp(t, `^[0-9a-f]{40}$`, u.ConfirmationToken.String)
	require.NotEmpty(t, u.IdentityHash)
	require.NotContains(t, u.IdentityHash, "secret123")

	require.Len(t, mailer.Messages, 1)
	msg := mailer.Messages[0]
	require.Equal(t, "a@x.com", msg.Recipient)
	require.Equal(t, mail.ConfirmationSubject, msg.Subject)
	require.Contains(t, msg.Body, "http://localhost:8080/confirm?token="+u.ConfirmationToken.String)
}

func TestRegister_EmptyFields(t *testing.T) {
	tests := []struct {
		name     string
		nickname string
		email    string
		password string
	}{
		{"no nickname", "", "a@x.com", "secret123"},
		{"no email", "alice", "", "secret123"},
		{"no password", "alice", "a@x.com", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeUsersRepo{}
			mailer := mail.NewTestMailer()
			s := newSignupService(t, repo, mailer)

			_, err := s.Register(context.Background(), tt.nickname, tt.email, tt.password, "http://localhost")
			require.ErrorIs(t, err, common.ErrorValidation)
			require.Nil(t, repo.created, "nothing may be inserted")
			require.Empty(t, mailer.Messages, "nothing may be sent")
		})
	}
}

func TestRegister_DuplicateNickname(t *testing.T) {
	repo := &fakeUsersRepo{createErr: common.ErrorAlreadyExists}
	mailer := mail.NewTestMailer()
	s := newSignupService(t, repo, mailer)

	_, err := s.Register(context.Background(), "alice", "a@x.com", "secret123", "http://localhost")
	require.ErrorIs(t, err, common.ErrorAlreadyExists)
	require.Empty(t, mailer.Messages, "no email for a rejected signup")
}

func TestRegister_MailFailureStillSucceeds(t *testing.T) {
	repo := &fakeUsersRepo{}
	mailer := mail.NewTestMailer()
	mailer.Err = errors.New("relay unreachable")
	s := newSignupService(t, repo, mailer)

	u, err := s.Register(context.Background(), "alice", "a@x.com", "secret123", "http://localhost")
	require.NoError(t, err, "mail failure must not surface to the caller")
	require.NotNil(t, u)
	require.NotNil(t, repo.created, "the record is inserted before the send")
}

func TestRegister_MailDisabledSkipsSend(t *testing.T) {
	repo := &fakeUsersRepo{}
	mailer := mail.NewTestMailer()
	mailer.Disabled = true
	s := newSignupService(t, repo, mailer)

	u, err := s.Register(context.Background(), "alice", "a@x.com", "secret123", "http://localhost")
	require.NoError(t, err)
	require.NotNil(t, u)
	require.NotNil(t, repo.created, "the record is inserted either way")
	require.Empty(t, mailer.Messages, "no send attempt when mail is disabled")
}

func TestConfirm_Success(t *testing.T) {
	repo := &fakeUsersRepo{confirmID: 7}
	s := newSignupService(t, repo, mail.NewTestMailer())

	err := s.Confirm(context.Background(), "deadbeef")
	require.NoError(t, err)
	require.Equal(t, []string{"deadbeef"}, repo.confirmedTokens)
}

func TestConfirm_EmptyToken(t *testing.T) {
	repo := &fakeUsersRepo{}
	s := newSignupService(t, repo, mail.NewTestMailer())

	err := s.Confirm(context.Background(), "")
	require.ErrorIs(t, err, common.ErrInvalidToken)
	require.Empty(t, repo.confirmedTokens)
}

func TestConfirm_UnknownToken(t *testing.T) {
	repo := &fakeUsersRepo{confirmErr: common.ErrorNotFound}
	s := newSignupService(t, repo, mail.NewTestMailer())

	err := s.Confirm(context.Background(), "stale")
	require.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestConfirmationLink_EncodesToken(t *testing.T) {
	link, err := confirmationLink("http://example.com:8080", "deadbeef")
	require.NoError(t, err)
	require.Equal(t, "http://example.com:8080/confirm?token=deadbeef", link)
}
