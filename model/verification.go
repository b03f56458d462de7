package model

import "time"

// VerificationStatusResponse is returned by the status lookup. When the user
// has never submitted a request only Status and the user fields are set; the
// request fields are omitted from the JSON body.
type VerificationStatusResponse struct {
	ID                int64      `db:"id" json:"id,omitempty"`
	Status            string     `db:"status" json:"status"`
	Phone             string     `db:"phone" json:"phone,omitempty"`
	Email             string     `db:"email" json:"email,omitempty"`
	DocumentType      string     `db:"document_type" json:"document_type,omitempty"`
	SubmittedAt       *time.Time `db:"submitted_at" json:"submitted_at,omitempty"`
	ReviewedAt        *time.Time `db:"reviewed_at" json:"reviewed_at,omitempty"`
	RejectionReason   *string    `db:"rejection_reason" json:"rejection_reason,omitempty"`
	UserName          string     `db:"user_name" json:"user_name"`
	Verified          bool       `db:"verified" json:"verified"`
	VerificationLevel *string    `db:"verification_level" json:"verification_level"`
}

// PendingVerificationItem is one entry of the reviewer queue.
type PendingVerificationItem struct {
	ID          int64      `db:"id" json:"id"`
	UserID      int64      `db:"user_id" json:"user_id"`
	Status      string     `db:"status" json:"status"`
	Phone       string     `db:"phone" json:"phone"`
	Email       string     `db:"email" json:"email"`
	SubmittedAt *time.Time `db:"submitted_at" json:"submitted_at"`
	UserName    string     `db:"user_name" json:"user_name"`
	UserRating  float64    `db:"user_rating" json:"user_rating"`
}

type PendingVerificationListResponse struct {
	Requests []PendingVerificationItem `json:"requests"`
}

type SubmitVerificationRequest struct {
	UserID         int64  `json:"user_id" validate:"required"`
	Phone          string `json:"phone" validate:"required"`
	Email          string `json:"email" validate:"required"`
	DocumentType   string `json:"document_type" validate:"required"`
	DocumentNumber string `json:"document_number" validate:"required"`
}

type SubmitVerificationResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

type ReviewVerificationRequest struct {
	RequestID       int64  `json:"request_id" validate:"required"`
	Action          string `json:"action" validate:"required,oneof=approve reject"`
	RejectionReason string `json:"rejection_reason"`
}

type ReviewVerificationResponse struct {
	Message string `json:"message"`
}
