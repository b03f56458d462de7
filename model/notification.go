package model

import "time"

// NotificationItem is one row of a user's notification feed.
type NotificationItem struct {
	ID        int64      `db:"id" json:"id"`
	Type      string     `db:"type" json:"type"`
	Title     string     `db:"title" json:"title"`
	Message   string     `db:"message" json:"message"`
	IsRead    bool       `db:"is_read" json:"is_read"`
	CreatedAt *time.Time `db:"created_at" json:"created_at"`
}

type NotificationListResponse struct {
	Notifications []NotificationItem `json:"notifications"`
	UnreadCount   int                `json:"unread_count"`
}

type CreateNotificationRequest struct {
	UserID  int64  `json:"user_id" validate:"required"`
	Type    string `json:"type" validate:"required"`
	Title   string `json:"title" validate:"required"`
	Message string `json:"message" validate:"required"`
}

type CreateNotificationResponse struct {
	Success        bool  `json:"success"`
	NotificationID int64 `json:"notification_id"`
}

type MarkNotificationReadRequest struct {
	NotificationID int64 `json:"notification_id" validate:"required"`
}

type MarkNotificationReadResponse struct {
	Success bool `json:"success"`
}
