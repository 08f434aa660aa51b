package cli

import (
	"context"
	"fmt"
	"log"
	"os"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for an email and password and tries to authenticate against
// the store. On success the session captures a snapshot of the user record
// and selects the default view for their role: the admin console for admins,
// the dashboard for everyone else.
//
// Authentication failure is reported with a single message that does not
// distinguish an unknown email from a wrong password.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	user, err := a.store.Authenticate(email, password)
	if err != nil {
		log.Println("Invalid email or password. Please try again.")
		return nil
	}

	a.session.Login(user)
	fmt.Printf("Welcome, %s!\n", user.Name)
	return nil
}

// Logout returns the session to the anonymous state. The store's data is
// untouched: identity is ephemeral, content and users are durable.
func (a *App) Logout(ctx context.Context) error {
	a.session.Logout()
	fmt.Println("Logged out.")
	return nil
}
