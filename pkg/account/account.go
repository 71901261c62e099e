package account

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"blackjack-server/pkg/db"

	"github.com/lib/pq"
	"github.com/synacor/argon2id"
)

const accountColumns = `
accounts.id,
accounts.username,
accounts.avatar,
accounts.wins,
accounts.losses,
accounts.password_hash,
accounts.created,
accounts.updated`

const pqDuplicateKeyErrorCode pq.ErrorCode = "23505"

// ErrInvalidUsernameOrPassword is an error for an invalid username or password
var ErrInvalidUsernameOrPassword = errors.New("invalid username and/or password")

// ErrDuplicateKey happens if a user tries to create an account with a taken username
var ErrDuplicateKey = errors.New("duplicate key constraint violation")

// ErrAccountNotFound happens when the requested account does not exist
var ErrAccountNotFound = errors.New("account not found")

// Account is a record in the `accounts` table
type Account struct {
	ID           int64  `json:"-"`
	Username     string `json:"username"`
	Avatar       string `json:"avatar"`
	Wins         int    `json:"wins"`
	Losses       int    `json:"losses"`
	passwordHash string
	Created      time.Time `json:"created"`
	Updated      time.Time `json:"updated"`
}

func getAccountByRow(row db.Scanner) (*Account, error) {
	var account Account
	if err := row.Scan(&account.ID, &account.Username, &account.Avatar, &account.Wins, &account.Losses, &account.passwordHash, &account.Created, &account.Updated); err != nil {
		return nil, err
	}

	return &account, nil
}

// GetAccountByID returns an account based on the ID
func GetAccountByID(ctx context.Context, id int64) (*Account, error) {
	const query = `
SELECT ` + accountColumns + `
FROM accounts
WHERE id = $1`

	row := db.Instance().QueryRowContext(ctx, query, id)
	account, err := getAccountByRow(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrAccountNotFound
		}

		return nil, err
	}

	return account, nil
}

// GetAccountByUsername will return an account by the username
func GetAccountByUsername(ctx context.Context, username string) (*Account, error) {
	const query = `
SELECT ` + accountColumns + `
FROM accounts
WHERE lower(username) = lower($1)`

	row := db.Instance().QueryRowContext(ctx, query, username)
	account, err := getAccountByRow(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrAccountNotFound
		}

		return nil, err
	}

	return account, nil
}

// GetAccountByUsernameAndPassword will return an account if the username and password are valid
func GetAccountByUsernameAndPassword(ctx context.Context, username, password string) (*Account, error) {
	account, err := GetAccountByUsername(ctx, username)
	if err != nil {
		if err == ErrAccountNotFound {
			// prevent timing attacks
			_ = argon2id.Compare("", "")
			return nil, ErrInvalidUsernameOrPassword
		}

		return nil, err
	}

	if err := argon2id.Compare(account.passwordHash, password); err != nil {
		return nil, ErrInvalidUsernameOrPassword
	}

	return account, nil
}

// LastAccountCreatedAt returns the last time an account was created by the remote address
// If an account hasn't been created yet, this will return a nil error and a time.Time{} object (i.e., zero)
func LastAccountCreatedAt(ctx context.Context, remoteAddr string) (time.Time, error) {
	const query = `
SELECT MAX(created)
FROM accounts
WHERE remote_addr = $1`

	var created sql.NullTime
	if err := db.Instance().QueryRowContext(ctx, query, remoteAddr).Scan(&created); err != nil {
		return time.Time{}, err
	}

	return created.Time, nil
}

// CreateAccount creates a new account
func CreateAccount(ctx context.Context, username, password, avatar, remoteAddr string) (*Account, error) {
	hashPassword, err := argon2id.DefaultHashPassword(password)
	if err != nil {
		return nil, err
	}

	const query = `
INSERT INTO accounts (username, password_hash, avatar, remote_addr)
VALUES ($1, $2, $3, $4)
RETURNING ` + accountColumns

	row := db.Instance().QueryRowContext(ctx, query, username, hashPassword, avatar, remoteAddr)
	account, err := getAccountByRow(row)
	if err != nil {
		if err, ok := err.(*pq.Error); ok && err.Code == pqDuplicateKeyErrorCode {
			return nil, ErrDuplicateKey
		}

		return nil, err
	}

	return account, nil
}

// SetPassword will set a new password
func (a *Account) SetPassword(password string) error {
	newHash, err := argon2id.DefaultHashPassword(password)
	if err != nil {
		return err
	}

	const query = `
UPDATE accounts
SET password_hash = $1, updated = (NOW() AT TIME ZONE 'utc')
WHERE id = $2`

	if _, err := db.Instance().Exec(query, newHash, a.ID); err != nil {
		return err
	}

	a.passwordHash = newHash
	return nil
}

// RecordResult adds a win or a loss to the named account's tallies and
// returns the updated counts
func RecordResult(ctx context.Context, username string, win bool) (wins, losses int, err error) {
	const query = `
UPDATE accounts
SET wins    = wins + $1,
    losses  = losses + $2,
    updated = (NOW() AT TIME ZONE 'utc')
WHERE lower(username) = lower($3)
RETURNING wins, losses`

	winInc, lossInc := 0, 1
	if win {
		winInc, lossInc = 1, 0
	}

	row := db.Instance().QueryRowContext(ctx, query, winInc, lossInc, username)
	if err := row.Scan(&wins, &losses); err != nil {
		if err == sql.ErrNoRows {
			return 0, 0, ErrAccountNotFound
		}

		return 0, 0, err
	}

	return wins, losses, nil
}
