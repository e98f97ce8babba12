package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"signupd/internal/common"
	"signupd/internal/dbx"
	"signupd/internal/server/models"
)

// pgUniqueViolation is the PostgreSQL error code for unique_violation.
const pgUniqueViolation = "23505"

// nicknameConstraint is the unique constraint on users.nickname. Only a
// violation of this constraint means "nickname taken"; a token collision
// stays a plain db error.
const nicknameConstraint = "users_nickname_key"

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {

	query :=
		`INSERT INTO users (nickname, identity_hash, confirmation_token, confirmed)
         VALUES ($1, $2, $3, FALSE)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		user.Nickname, user.IdentityHash, user.ConfirmationToken).Scan(&user.ID, &user.CreatedAt)

	if err != nil {
		if isNicknameTaken(err) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *PostgresRepository) GetByNickname(ctx context.Context, nickname string) (*models.User, error) {
	query :=
		`SELECT id, nickname, identity_hash, confirmed, confirmation_token, created_at FROM users
		 WHERE nickname = $1
		 `

	return r.getOne(ctx, query, nickname)
}

func (r *PostgresRepository) GetByConfirmationToken(ctx context.Context, token string) (*models.User, error) {
	query :=
		`SELECT id, nickname, identity_hash, confirmed, confirmation_token, created_at FROM users
		 WHERE confirmation_token = $1
		 `

	return r.getOne(ctx, query, token)
}

func (r *PostgresRepository) Confirm(ctx context.Context, token string) (int64, error) {
	query :=
		`UPDATE users SET confirmed = TRUE, confirmation_token = NULL
		 WHERE confirmation_token = $1
		 RETURNING id
		 `

	var id int64
	err := r.db.QueryRowContext(ctx, query, token).Scan(&id)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, common.ErrorNotFound
		}
		return 0, fmt.Errorf("db error: %w", err)
	}

	return id, nil
}

func (r *PostgresRepository) getOne(ctx context.Context, query string, arg any) (*models.User, error) {
	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, arg).Scan(&user.ID, &user.Nickname,
		&user.IdentityHash, &user.Confirmed, &user.ConfirmationToken, &user.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func isNicknameTaken(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) &&
		pgErr.Code == pgUniqueViolation &&
		pgErr.ConstraintName == nicknameConstraint
}
