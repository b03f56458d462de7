package verification

import (
	"context"
	"database/sql"

	"github.com/baraholka/marketplace/constant"
	"github.com/baraholka/marketplace/model"
	"github.com/baraholka/marketplace/utils/errors"
	"github.com/jmoiron/sqlx"
)

type SQL struct {
	conn *sqlx.DB
}

type VerificationRepository interface {
	GetLatestByUser(ctx context.Context, userID string) (*model.VerificationStatusResponse, error)
	ListPending(ctx context.Context) ([]model.PendingVerificationItem, error)
	InsertPendingTx(ctx context.Context, tx *sqlx.Tx, req *model.SubmitVerificationRequest) (int64, error)
	GetRequestUser(ctx context.Context, requestID int64) (int64, bool, error)
	ApproveTx(ctx context.Context, tx *sqlx.Tx, requestID int64) error
	RejectTx(ctx context.Context, tx *sqlx.Tx, requestID int64, reason string) error
}

func NewVerificationRepository(conn *sqlx.DB) VerificationRepository {
	return &SQL{conn: conn}
}

const (
	getLatestByUserQuery = `SELECT vr.id, vr.status, vr.phone, vr.email,
	vr.document_type, vr.submitted_at, vr.reviewed_at, vr.rejection_reason,
	u.name AS user_name, u.verified, u.verification_level
FROM verification_requests vr
JOIN users u ON vr.user_id = u.id
WHERE vr.user_id = $1::bigint
ORDER BY vr.submitted_at DESC
LIMIT 1`

	listPendingQuery = `SELECT vr.id, vr.user_id, vr.status, vr.phone, vr.email,
	vr.submitted_at, u.name AS user_name, COALESCE(u.rating, 0) AS user_rating
FROM verification_requests vr
JOIN users u ON vr.user_id = u.id
WHERE vr.status = 'pending'
ORDER BY vr.submitted_at ASC`

	// Conditional insert: at most one pending request per user, enforced in
	// one statement so concurrent submissions cannot both get through.
	insertPendingQuery = `INSERT INTO verification_requests (user_id, phone, email, document_type, document_number, status)
SELECT $1, $2, $3, $4, $5, 'pending'
WHERE NOT EXISTS (
	SELECT 1 FROM verification_requests WHERE user_id = $1 AND status = 'pending'
)
RETURNING id`

	getRequestUserQuery = `SELECT user_id FROM verification_requests WHERE id = $1`

	approveRequestQuery = `UPDATE verification_requests SET status = 'approved', reviewed_at = NOW() WHERE id = $1`

	rejectRequestQuery = `UPDATE verification_requests SET status = 'rejected', reviewed_at = NOW(), rejection_reason = NULLIF($1, '') WHERE id = $2`
)

// GetLatestByUser returns nil when the user has no verification request.
func (s *SQL) GetLatestByUser(ctx context.Context, userID string) (*model.VerificationStatusResponse, error) {
	var res model.VerificationStatusResponse
	if err := s.conn.QueryRowxContext(ctx, getLatestByUserQuery, userID).StructScan(&res); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &res, nil
}

func (s *SQL) ListPending(ctx context.Context) ([]model.PendingVerificationItem, error) {
	rows, err := s.conn.QueryxContext(ctx, listPendingQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.PendingVerificationItem, 0)
	for rows.Next() {
		var it model.PendingVerificationItem
		if err := rows.StructScan(&it); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// InsertPendingTx inserts a pending request unless the user already has one,
// in which case ErrConflict is returned and no row is written.
func (s *SQL) InsertPendingTx(ctx context.Context, tx *sqlx.Tx, req *model.SubmitVerificationRequest) (int64, error) {
	var id int64
	err := tx.QueryRowxContext(ctx, insertPendingQuery,
		req.UserID, req.Phone, req.Email, req.DocumentType, req.DocumentNumber).Scan(&id)
	if err == sql.ErrNoRows {
		return 0, errors.SetCustomErrorMessage(constant.ErrConflict, "Pending request already exists")
	}
	if err != nil {
		return 0, err
	}
	return id, nil
}

// GetRequestUser resolves the submitter of a request; found is false when the
// request id does not exist.
func (s *SQL) GetRequestUser(ctx context.Context, requestID int64) (int64, bool, error) {
	var userID int64
	if err := s.conn.GetContext(ctx, &userID, getRequestUserQuery, requestID); err != nil {
		if err == sql.ErrNoRows {
			return 0, false, nil
		}
		return 0, false, err
	}
	return userID, true, nil
}

func (s *SQL) ApproveTx(ctx context.Context, tx *sqlx.Tx, requestID int64) error {
	_, err := tx.ExecContext(ctx, approveRequestQuery, requestID)
	return err
}

func (s *SQL) RejectTx(ctx context.Context, tx *sqlx.Tx, requestID int64, reason string) error {
	_, err := tx.ExecContext(ctx, rejectRequestQuery, reason, requestID)
	return err
}
