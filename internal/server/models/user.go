// Package models holds the persisted entities of the registration service.
package models

import (
	"database/sql"
	"time"
)

// User is the sole persisted entity: one row per signup.
//
// ConfirmationToken is set while the account is unconfirmed and cleared
// (NULL) by confirmation. Confirmed flips to true exactly once and never
// reverts.
type User struct {
	ID                int64
	Nickname          string
	IdentityHash      string
	Confirmed         bool
	ConfirmationToken sql.NullString
	CreatedAt         time.Time
}
