package cli

import (
	"context"
	"os"

	"github.com/dmitrijs2005/sweetshop/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts the user for an email and password and attempts to create
// a new account. The password byte slice is securely wiped before returning.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.auth.Register(ctx, email, password); err != nil {
		a.notifier.Error(failureText(err, "Registration failed"))
		return err
	}

	a.notifier.Success("Registration successful! Please log in.")
	return nil
}

// Login prompts for credentials, exchanges them for a token, and installs
// the token into the session. On success the catalog is loaded so the
// storefront is ready immediately. The password is wiped before returning.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	token, err := a.auth.Login(ctx, email, password)
	if err != nil {
		a.notifier.Error(failureText(err, "Incorrect email or password"))
		return err
	}

	if err := a.session.Login(ctx, token); err != nil {
		a.notifier.Error("Login failed")
		return err
	}

	a.notifier.Success("Welcome back!")
	_ = a.catalog.Load(ctx, nil)
	return nil
}

// Logout drops the token from storage and memory.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		return err
	}
	a.notifier.Info("Logged out")
	return nil
}
