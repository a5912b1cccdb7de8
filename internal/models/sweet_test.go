package models

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestNewSweet_Validation(t *testing.T) {
	validate := validator.New()

	tests := []struct {
		name    string
		sweet   NewSweet
		wantErr bool
	}{
		{
			name:  "valid item",
			sweet: NewSweet{Name: "Dark Chocolate", Category: "Chocolate", Price: 5.5, Quantity: 10},
		},
		{
			name:    "missing name",
			sweet:   NewSweet{Category: "Chocolate", Price: 5.5, Quantity: 10},
			wantErr: true,
		},
		{
			name:    "missing category",
			sweet:   NewSweet{Name: "Dark Chocolate", Price: 5.5, Quantity: 10},
			wantErr: true,
		},
		{
			name:    "negative price",
			sweet:   NewSweet{Name: "Dark Chocolate", Category: "Chocolate", Price: -1, Quantity: 10},
			wantErr: true,
		},
		{
			name:    "negative quantity",
			sweet:   NewSweet{Name: "Dark Chocolate", Category: "Chocolate", Price: 5.5, Quantity: -1},
			wantErr: true,
		},
		{
			name:  "zero price and quantity are allowed",
			sweet: NewSweet{Name: "Freebie", Category: "Promo"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate.Struct(tt.sweet)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRestockRequest_Validation(t *testing.T) {
	validate := validator.New()

	assert.NoError(t, validate.Struct(RestockRequest{Amount: 3}))
	assert.Error(t, validate.Struct(RestockRequest{Amount: 0}))
	assert.Error(t, validate.Struct(RestockRequest{Amount: -2}))
}

func TestSweetPatch_Validation(t *testing.T) {
	validate := validator.New()

	price := -0.5
	assert.Error(t, validate.Struct(SweetPatch{Price: &price}))

	ok := 2.5
	assert.NoError(t, validate.Struct(SweetPatch{Price: &ok}))
	assert.NoError(t, validate.Struct(SweetPatch{}))
}
