package user

import (
	"context"
	"database/sql"

	"github.com/baraholka/marketplace/model"
	"github.com/jmoiron/sqlx"
)

type SQL struct {
	conn *sqlx.DB
}

type UserRepository interface {
	GetVerificationState(ctx context.Context, userID string) (*model.UserVerificationState, error)
	UpdateContactTx(ctx context.Context, tx *sqlx.Tx, userID int64, phone, email string) error
	SetVerifiedTx(ctx context.Context, tx *sqlx.Tx, userID int64, level string) error
}

func NewUserRepository(conn *sqlx.DB) UserRepository {
	return &SQL{conn: conn}
}

const (
	getVerificationStateQuery = `SELECT name, verified, verification_level FROM users WHERE id = $1::bigint`

	updateContactQuery = `UPDATE users SET phone = $1, email = $2 WHERE id = $3`

	setVerifiedQuery = `UPDATE users SET verified = TRUE, verification_level = $1 WHERE id = $2`
)

// GetVerificationState returns nil when the user does not exist.
func (s *SQL) GetVerificationState(ctx context.Context, userID string) (*model.UserVerificationState, error) {
	var state model.UserVerificationState
	if err := s.conn.QueryRowxContext(ctx, getVerificationStateQuery, userID).StructScan(&state); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &state, nil
}

func (s *SQL) UpdateContactTx(ctx context.Context, tx *sqlx.Tx, userID int64, phone, email string) error {
	_, err := tx.ExecContext(ctx, updateContactQuery, phone, email, userID)
	return err
}

func (s *SQL) SetVerifiedTx(ctx context.Context, tx *sqlx.Tx, userID int64, level string) error {
	_, err := tx.ExecContext(ctx, setVerifiedQuery, level, userID)
	return err
}
