package cli

import (
	"bufio"
	"context"
	"os"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/sweetshop/internal/models"
)

// Admin runs the inventory console. The admin flag is re-checked on every
// entry, not cached from login: a token that lost its privileges or expired
// since then drops the user straight back to the storefront.
func (a *App) Admin(ctx context.Context) error {
	if !a.guard.AdminAllowed() {
		a.notifier.Error("Access denied: admins only")
		return nil
	}

	printlnFn("Admin console. Commands: list, add, update, restock, delete, back")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		printlnFn("admin> ")
		if !scanner.Scan() {
			return nil
		}
		cmd := strings.TrimSpace(scanner.Text())
		if cmd == "" {
			continue
		}

		if !a.guard.AdminAllowed() {
			a.notifier.Error("Access denied: admins only")
			return nil
		}

		switch cmd {
		case "list":
			printSweets(a.catalog.Items())
		case "add":
			_ = a.addSweet(ctx)
		case "update":
			_ = a.updateSweet(ctx)
		case "restock":
			_ = a.restockSweet(ctx)
		case "delete":
			_ = a.deleteSweet(ctx)
		case "back", "exit":
			return nil
		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func (a *App) addSweet(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Name", os.Stdout)
	if err != nil {
		return err
	}
	category, err := getSimpleText(a.reader, "Category", os.Stdout)
	if err != nil {
		return err
	}
	price, ok, err := a.promptFloat("Price")
	if err != nil || !ok {
		return err
	}
	quantity, ok, err := a.promptInt("Quantity")
	if err != nil || !ok {
		return err
	}
	imageURL, err := getSimpleText(a.reader, "Image URL (blank to skip)", os.Stdout)
	if err != nil {
		return err
	}

	item := models.NewSweet{Name: name, Category: category, Price: price, Quantity: quantity, ImageURL: imageURL}
	return a.catalog.Create(ctx, item)
}

// updateSweet prompts for each field; blank keeps the current value.
func (a *App) updateSweet(ctx context.Context) error {
	id, ok, err := a.promptID("Enter sweet id to update")
	if err != nil || !ok {
		return err
	}

	var patch models.SweetPatch

	name, err := getSimpleText(a.reader, "New name (blank to keep)", os.Stdout)
	if err != nil {
		return err
	}
	if name != "" {
		patch.Name = &name
	}

	category, err := getSimpleText(a.reader, "New category (blank to keep)", os.Stdout)
	if err != nil {
		return err
	}
	if category != "" {
		patch.Category = &category
	}

	priceText, err := getSimpleText(a.reader, "New price (blank to keep)", os.Stdout)
	if err != nil {
		return err
	}
	if priceText != "" {
		price, err := strconv.ParseFloat(priceText, 64)
		if err != nil {
			a.notifier.Error("Price must be a number")
			return nil
		}
		patch.Price = &price
	}

	quantityText, err := getSimpleText(a.reader, "New quantity (blank to keep)", os.Stdout)
	if err != nil {
		return err
	}
	if quantityText != "" {
		quantity, err := strconv.Atoi(quantityText)
		if err != nil {
			a.notifier.Error("Quantity must be a number")
			return nil
		}
		patch.Quantity = &quantity
	}

	return a.catalog.Update(ctx, id, patch)
}

func (a *App) restockSweet(ctx context.Context) error {
	id, ok, err := a.promptID("Enter sweet id to restock")
	if err != nil || !ok {
		return err
	}
	amount, ok, err := a.promptInt("Restock amount")
	if err != nil || !ok {
		return err
	}
	return a.catalog.Restock(ctx, id, amount)
}

// deleteSweet asks for confirmation before the irreversible call.
func (a *App) deleteSweet(ctx context.Context) error {
	id, ok, err := a.promptID("Enter sweet id to delete")
	if err != nil || !ok {
		return err
	}

	name := strconv.FormatInt(id, 10)
	if s, found := a.catalog.Item(id); found {
		name = s.Name
	}

	answer, err := getSimpleText(a.reader, "Delete "+name+"? (y/n)", os.Stdout)
	if err != nil {
		return err
	}
	if answer != "y" && answer != "yes" {
		printlnFn("Cancelled")
		return nil
	}

	return a.catalog.Delete(ctx, id)
}

func (a *App) promptFloat(prompt string) (float64, bool, error) {
	text, err := getSimpleText(a.reader, prompt, os.Stdout)
	if err != nil {
		return 0, false, err
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		a.notifier.Error("Price must be a number")
		return 0, false, nil
	}
	return v, true, nil
}

func (a *App) promptInt(prompt string) (int, bool, error) {
	text, err := getSimpleText(a.reader, prompt, os.Stdout)
	if err != nil {
		return 0, false, err
	}
	v, err := strconv.Atoi(text)
	if err != nil {
		a.notifier.Error("Amount must be a whole number")
		return 0, false, nil
	}
	return v, true, nil
}
