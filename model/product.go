package model

import "time"

// ProductListItem is a catalog row joined with its seller. Posted is the
// relative-age label computed per request; PostedAt stays internal.
type ProductListItem struct {
	ID             int64     `db:"id" json:"id"`
	Title          string    `db:"title" json:"title"`
	Price          float64   `db:"price" json:"price"`
	Category       string    `db:"category" json:"category"`
	Description    *string   `db:"description" json:"description"`
	Location       string    `db:"location" json:"location"`
	ImageEmoji     string    `db:"image_emoji" json:"image"`
	Views          int64     `db:"views" json:"views"`
	VerifiedSeller bool      `db:"verified_seller" json:"verified"`
	PostedAt       time.Time `db:"posted_at" json:"-"`
	Posted         string    `db:"-" json:"posted"`
	SellerName     string    `db:"seller_name" json:"seller"`
	SellerRating   float64   `db:"seller_rating" json:"rating"`
}

type ProductListResponse struct {
	Products []ProductListItem `json:"products"`
}

type CreateProductRequest struct {
	Title       string  `json:"title" validate:"required"`
	Price       float64 `json:"price" validate:"required"`
	Category    string  `json:"category" validate:"required"`
	Description string  `json:"description"`
	Location    string  `json:"location" validate:"required"`
}

type CreateProductResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

// ProductEntity carries the columns written on listing creation.
type ProductEntity struct {
	Title          string  `db:"title"`
	Price          float64 `db:"price"`
	Category       string  `db:"category"`
	Description    string  `db:"description"`
	Location       string  `db:"location"`
	ImageEmoji     string  `db:"image_emoji"`
	SellerID       int64   `db:"seller_id"`
	VerifiedSeller bool    `db:"verified_seller"`
}
