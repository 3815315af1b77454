package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/dailytracker/internal/common"
)

// getSimpleText and getPassword point to the interactive input helpers and
// can be swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
)

var errEmptyCredentials = errors.New("username and password must not be empty")

func (a *App) readCredentials() (string, []byte, error) {
	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return "", nil, err
	}
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return "", nil, err
	}
	if userName == "" || len(password) == 0 {
		common.WipeByteArray(password)
		return "", nil, errEmptyCredentials
	}
	return userName, password, nil
}

// Register creates an account. A taken username is reported, not an error.
func (a *App) Register(ctx context.Context) error {
	userName, password, err := a.readCredentials()
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	ok, err := a.users.CreateUser(ctx, userName, string(password))
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintf(a.out, "Username %q is already taken\n", userName)
		return nil
	}

	fmt.Fprintln(a.out, "Success! You can log in now.")
	return nil
}

// Login checks credentials and saves the session for later runs.
func (a *App) Login(ctx context.Context) error {
	userName, password, err := a.readCredentials()
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	userID, ok, err := a.users.Authenticate(ctx, userName, string(password))
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(a.out, "Invalid username or password")
		return nil
	}

	sess, err := a.sessions.Save(ctx, userID, userName)
	if err != nil {
		return err
	}
	a.session = sess

	fmt.Fprintf(a.out, "Logged in as %s\n", userName)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.sessions.Clear(ctx); err != nil {
		return err
	}
	a.session = nil
	fmt.Fprintln(a.out, "Logged out")
	return nil
}
