// Package api translates catalog and auth intents into calls against the
// Sweet Shop REST backend. It holds no catalog state and performs no retries
// beyond what the transport does by default.
package api

import (
	"context"
	"net/url"

	"github.com/dmitrijs2005/sweetshop/internal/models"
)

// Client is the backend surface used by the storefront and the admin
// console.
//
// Contract:
//   - Login: authenticate, returning the raw bearer token on success.
//   - Register: create a new account.
//   - List: fetch items, optionally filtered; order is backend-defined.
//   - Purchase: decrement stock of one item by one unit.
//   - Create/Update/Delete/Restock: admin inventory mutations.
//   - Close: release underlying transport resources.
//
// All methods must honor context cancellation/timeouts.
type Client interface {
	Close() error
	Login(ctx context.Context, email string, password []byte) (string, error)
	Register(ctx context.Context, email string, password []byte) error
	List(ctx context.Context, filter *Filter) ([]models.Sweet, error)
	Purchase(ctx context.Context, id int64) error
	Create(ctx context.Context, item models.NewSweet) (*models.Sweet, error)
	Update(ctx context.Context, id int64, patch models.SweetPatch) (*models.Sweet, error)
	Delete(ctx context.Context, id int64) error
	Restock(ctx context.Context, id int64, amount int) (*models.Sweet, error)
}

// Filter narrows a catalog listing. Zero-value fields are omitted from the
// query; an entirely zero Filter routes to the unfiltered listing endpoint.
type Filter struct {
	Query    string
	Category string
	PriceMin string
	PriceMax string
}

func (f *Filter) IsZero() bool {
	return f == nil || (f.Query == "" && f.Category == "" && f.PriceMin == "" && f.PriceMax == "")
}

// values returns only the set fields as query parameters.
func (f *Filter) values() url.Values {
	v := url.Values{}
	if f.Query != "" {
		v.Set("q", f.Query)
	}
	if f.Category != "" {
		v.Set("category", f.Category)
	}
	if f.PriceMin != "" {
		v.Set("price_min", f.PriceMin)
	}
	if f.PriceMax != "" {
		v.Set("price_max", f.PriceMax)
	}
	return v
}
