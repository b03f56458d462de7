package notification

import (
	"context"

	"github.com/baraholka/marketplace/model"
	"github.com/jmoiron/sqlx"
)

type SQL struct {
	conn *sqlx.DB
}

type NotificationRepository interface {
	ListByUser(ctx context.Context, userID string) ([]model.NotificationItem, error)
	Create(ctx context.Context, req *model.CreateNotificationRequest) (int64, error)
	MarkRead(ctx context.Context, notificationID int64) error
}

func NewNotificationRepository(conn *sqlx.DB) NotificationRepository {
	return &SQL{conn: conn}
}

const (
	listNotificationsQuery = `SELECT id, type, title, message, is_read, created_at
FROM notifications
WHERE user_id = $1::bigint
ORDER BY created_at DESC
LIMIT 50`

	insertNotificationQuery = `INSERT INTO notifications (user_id, type, title, message)
VALUES ($1, $2, $3, $4)
RETURNING id`

	markNotificationReadQuery = `UPDATE notifications SET is_read = TRUE WHERE id = $1`
)

func (s *SQL) ListByUser(ctx context.Context, userID string) ([]model.NotificationItem, error) {
	rows, err := s.conn.QueryxContext(ctx, listNotificationsQuery, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.NotificationItem, 0)
	for rows.Next() {
		var it model.NotificationItem
		if err := rows.StructScan(&it); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (s *SQL) Create(ctx context.Context, req *model.CreateNotificationRequest) (int64, error) {
	var id int64
	err := s.conn.QueryRowxContext(ctx, insertNotificationQuery, req.UserID, req.Type, req.Title, req.Message).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (s *SQL) MarkRead(ctx context.Context, notificationID int64) error {
	_, err := s.conn.ExecContext(ctx, markNotificationReadQuery, notificationID)
	return err
}
