// Package login provides runners for the session lifecycle.
package login

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/daypack/pkg/app"
	"tableflip.dev/daypack/pkg/printers"
)

// Login establishes a session, either through the identity provider or as a
// guest.
type Login struct {
	Guest   bool
	Service *app.Service
}

func (n *Login) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not login, no service")
	}

	pp := printers.PrettyPrint{}
	if n.Guest {
		sess, err := n.Service.LoginGuest()
		if err != nil {
			return err
		}
		fmt.Println("Logged in as guest.")
		pp.Session(sess)
		return nil
	}

	fmt.Println("Signing in...")
	sess, err := n.Service.Login(ctx)
	if err != nil {
		return err
	}
	fmt.Println("Successfully logged in.")
	pp.Session(sess)
	return nil
}

// Logout clears the session pointer; collections survive for the next login.
type Logout struct {
	Service *app.Service
}

func (n *Logout) Do(_ context.Context) error {
	if n.Service == nil {
		return errors.New("can not logout, no service")
	}
	if n.Service.Session() == nil {
		fmt.Println("Not logged in.")
		return nil
	}
	if err := n.Service.Logout(); err != nil {
		return err
	}
	fmt.Println("Successfully logged out.")
	return nil
}

// Whoami prints the active session.
type Whoami struct {
	Service *app.Service
}

func (n *Whoami) Do(_ context.Context) error {
	if n.Service == nil {
		return errors.New("can not whoami, no service")
	}
	pp := printers.PrettyPrint{}
	pp.Session(n.Service.Session())
	return nil
}
