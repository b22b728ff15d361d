// Package account provides the sign-up, sign-in and account removal runners.
package account

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/plannow/pkg/app"
	"tableflip.dev/plannow/pkg/auth"
	"tableflip.dev/plannow/pkg/printers"
)

// SignUp registers an account and signs it in.
type SignUp struct {
	Email    string
	Password string
	Out      io.Writer

	Accounts *auth.Accounts
	Sessions *auth.FileSession
}

func (n *SignUp) Do(ctx context.Context) error {
	if n.Accounts == nil || n.Sessions == nil {
		return errors.New("can not sign up, no account store")
	}
	sess, err := n.Accounts.SignUp(ctx, n.Email, n.Password)
	if err != nil {
		return err
	}
	if err := n.Sessions.Save(sess); err != nil {
		return err
	}
	signedIn(n.Out, sess)
	return nil
}

// SignIn checks credentials and stores a fresh session.
type SignIn struct {
	Email    string
	Password string
	Out      io.Writer

	Accounts *auth.Accounts
	Sessions *auth.FileSession
}

func (n *SignIn) Do(ctx context.Context) error {
	if n.Accounts == nil || n.Sessions == nil {
		return errors.New("can not sign in, no account store")
	}
	sess, err := n.Accounts.SignIn(ctx, n.Email, n.Password)
	if err != nil {
		return err
	}
	if err := n.Sessions.Save(sess); err != nil {
		return err
	}
	signedIn(n.Out, sess)
	return nil
}

// SignOut forgets the stored session.
type SignOut struct {
	Out      io.Writer
	Sessions *auth.FileSession
}

func (n *SignOut) Do(context.Context) error {
	if n.Sessions == nil {
		return errors.New("can not sign out, no session store")
	}
	if err := n.Sessions.Clear(); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(printers.Output(n.Out), "signed out")
	return nil
}

// Password changes the signed-in account's password.
type Password struct {
	Current string
	Next    string
	Out     io.Writer

	Service *app.Service
}

func (n *Password) Do(ctx context.Context) error {
	if n.Service == nil || n.Service.Accounts == nil {
		return errors.New("can not change password, no account store")
	}
	sess, err := n.Service.Session(ctx)
	if err != nil {
		return err
	}
	if err := n.Service.Accounts.ChangePassword(ctx, sess.Email, n.Current, n.Next); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(printers.Output(n.Out), "password changed")
	return nil
}

// Delete removes the signed-in account with all of its entries and profile
// values, then signs out.
type Delete struct {
	Password string
	Out      io.Writer

	Service  *app.Service
	Sessions *auth.FileSession
}

func (n *Delete) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not delete account, no service")
	}
	sess, err := n.Service.Session(ctx)
	if err != nil {
		return err
	}
	if err := n.Service.DeleteAccount(ctx, n.Password); err != nil {
		return err
	}
	if n.Sessions != nil {
		if err := n.Sessions.Clear(); err != nil {
			return err
		}
	}
	_, _ = fmt.Fprintf(printers.Output(n.Out), "deleted account %s\n", sess.Email)
	return nil
}

func signedIn(w io.Writer, sess auth.Session) {
	b := color.New(color.Bold)
	_, _ = fmt.Fprint(printers.Output(w), "signed in as ")
	_, _ = b.Fprintln(printers.Output(w), sess.Email)
}
