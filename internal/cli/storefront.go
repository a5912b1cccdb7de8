package cli

import (
	"context"
	"os"
	"strconv"

	"github.com/dmitrijs2005/sweetshop/internal/api"
)

// Browse refreshes the full catalog and prints it.
func (a *App) Browse(ctx context.Context) error {
	if err := a.catalog.Load(ctx, nil); err != nil {
		return err
	}
	printSweets(a.catalog.Items())
	return nil
}

// Search prompts for the filter fields, any of which may be left blank, and
// loads the matching sweets. A blank filter falls back to the full catalog.
func (a *App) Search(ctx context.Context) error {
	query, err := getSimpleText(a.reader, "Search term (blank to skip)", os.Stdout)
	if err != nil {
		return err
	}
	category, err := getSimpleText(a.reader, "Category (blank to skip)", os.Stdout)
	if err != nil {
		return err
	}
	priceMin, ok, err := a.promptOptionalPrice("Min price (blank to skip)")
	if err != nil || !ok {
		return err
	}
	priceMax, ok, err := a.promptOptionalPrice("Max price (blank to skip)")
	if err != nil || !ok {
		return err
	}

	filter := &api.Filter{Query: query, Category: category, PriceMin: priceMin, PriceMax: priceMax}
	if err := a.catalog.Load(ctx, filter); err != nil {
		return err
	}
	printSweets(a.catalog.Items())
	return nil
}

// Buy prompts for a sweet id and purchases a single unit.
func (a *App) Buy(ctx context.Context) error {
	id, ok, err := a.promptID("Enter sweet id to buy")
	if err != nil || !ok {
		return err
	}
	return a.catalog.Purchase(ctx, id)
}

// promptID reads and parses a sweet identifier. A malformed value is
// reported as a notification; ok is false and err is nil in that case so
// the caller can return to the prompt.
func (a *App) promptID(prompt string) (int64, bool, error) {
	text, err := getSimpleText(a.reader, prompt, os.Stdout)
	if err != nil {
		return 0, false, err
	}
	id, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		a.notifier.Error("Sweet id must be a number")
		return 0, false, nil
	}
	return id, true, nil
}

// promptOptionalPrice reads a price bound. Blank means unset. The value is
// validated as a number but passed through as entered. A malformed value is
// reported as a notification with ok false.
func (a *App) promptOptionalPrice(prompt string) (string, bool, error) {
	text, err := getSimpleText(a.reader, prompt, os.Stdout)
	if err != nil {
		return "", false, err
	}
	if text == "" {
		return "", true, nil
	}
	if _, err := strconv.ParseFloat(text, 64); err != nil {
		a.notifier.Error("Price must be a number")
		return "", false, nil
	}
	return text, true, nil
}
