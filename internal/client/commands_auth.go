package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-protocol-catalog/internal/tui"
)

func (a *App) login(ctx context.Context, args []string) error {
	fs := a.newFlagSet("login")
	username := fs.String("u", "", "username")
	password := fs.String("p", "", "password")
	if handled, err := parseFlags(fs, args); handled || err != nil {
		return err
	}

	if *username == "" || *password == "" {
		var err error
		*username, *password, err = a.prompter.PromptCredentials(ctx, *username)
		if err != nil {
			return err
		}
	}

	resp, err := a.server.Login(ctx, *username, *password)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}

	if err = a.session.Set(ctx, resp.Token, resp.User); err != nil {
		return err
	}

	a.logger.Debug().Str("func", "App.login").Str("username", resp.User.Username).Msg("session stored")
	fmt.Fprintf(a.out, "logged in as %s (%s)\n", resp.User.Username, resp.User.Role)
	return nil
}

func (a *App) logout(ctx context.Context) error {
	if !a.session.IsAuthenticated() {
		fmt.Fprintln(a.out, "not logged in")
		return nil
	}

	if err := a.session.Clear(ctx); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "logged out")
	return nil
}

func (a *App) whoami(args []string) error {
	fs := a.newFlagSet("whoami")
	copyToken := fs.Bool("copy-token", false, "copy the session token to the clipboard")
	if handled, err := parseFlags(fs, args); handled || err != nil {
		return err
	}

	if err := a.requireSession(); err != nil {
		return err
	}

	fmt.Fprintln(a.out, tui.ProfileView(a.session.Profile()))

	if *copyToken {
		if err := a.copyText(a.session.Token()); err != nil {
			return fmt.Errorf("copy token to clipboard: %w", err)
		}
		fmt.Fprintln(a.out, "token copied to clipboard")
	}

	return nil
}

func (a *App) version(ctx context.Context) error {
	v, err := a.server.Version(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, v)
	return nil
}
