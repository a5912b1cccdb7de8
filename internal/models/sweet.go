// Package models defines the catalog item type and the mutation payloads
// accepted by the backend.
package models

// Sweet is a catalog item as returned by the backend. The client only keeps
// a transient cached list of these for display and optimistic updates; the
// backend stays the source of truth.
type Sweet struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	ImageURL string  `json:"image_url,omitempty"`
}

// NewSweet is the payload for creating a catalog item (no id; the backend
// assigns one).
type NewSweet struct {
	Name     string  `json:"name" validate:"required"`
	Category string  `json:"category" validate:"required"`
	Price    float64 `json:"price" validate:"gte=0"`
	Quantity int     `json:"quantity" validate:"gte=0"`
	ImageURL string  `json:"image_url,omitempty"`
}

// SweetPatch carries partial fields for an update. Nil fields are omitted
// from the request body and left unchanged by the backend.
type SweetPatch struct {
	Name     *string  `json:"name,omitempty"`
	Category *string  `json:"category,omitempty"`
	Price    *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	Quantity *int     `json:"quantity,omitempty" validate:"omitempty,gte=0"`
	ImageURL *string  `json:"image_url,omitempty"`
}

// RestockRequest adds stock to an existing item. Amount must be a positive
// integer; this is verified client-side before any request is sent.
type RestockRequest struct {
	Amount int `json:"amount" validate:"required,gt=0"`
}
