package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/sweetshop/internal/api"
	"github.com/dmitrijs2005/sweetshop/internal/models"
	"github.com/dmitrijs2005/sweetshop/internal/notify"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// renderNotification prints a notification as soon as it becomes current.
func renderNotification(m notify.Message) {
	printlnFn(fmt.Sprintf("[%s] %s", m.Kind, m.Text))
}

// failureText prefers the backend's own error message when one is available
// and falls back to a generic text otherwise.
func failureText(err error, fallback string) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

// lowStockThreshold marks items the storefront flags as nearly sold out.
const lowStockThreshold = 5

func formatSweet(s models.Sweet) string {
	var b strings.Builder
	fmt.Fprintf(&b, "#%d %s (%s) $%.2f, %d in stock", s.ID, s.Name, s.Category, s.Price, s.Quantity)
	switch {
	case s.Quantity == 0:
		b.WriteString(" [out of stock]")
	case s.Quantity < lowStockThreshold:
		b.WriteString(" [low stock]")
	}
	return b.String()
}

func printSweets(items []models.Sweet) {
	if len(items) == 0 {
		printlnFn("No sweets found. Try adjusting your search!")
		return
	}
	for _, s := range items {
		printlnFn(formatSweet(s))
	}
}
