package cli

import (
	"context"
	"os"

	"github.com/dmitrijs2005/blogkeeper/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword
var getInt64 = GetInt64
var getMultiline = GetMultiline

// Login prompts for credentials and starts a session. The password is wiped
// before returning.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeBytes(password)

	if err := a.controller.Login(ctx, username, password); err != nil {
		printlnFn(errorMessage(err))
		return err
	}

	printlnFn("Logged in.")
	return nil
}

// Logout ends the session.
func (a *App) Logout(ctx context.Context) error {
	if err := a.controller.Logout(ctx); err != nil {
		printlnFn(errorMessage(err))
		return err
	}
	printlnFn("Logged out.")
	return nil
}
