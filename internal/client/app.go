package client

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-protocol-catalog/internal/adapter"
	"github.com/MKhiriev/go-protocol-catalog/internal/app"
	"github.com/MKhiriev/go-protocol-catalog/internal/logger"
	"github.com/MKhiriev/go-protocol-catalog/internal/session"
	"github.com/MKhiriev/go-protocol-catalog/internal/tui"
	"github.com/atotto/clipboard"
)

const usage = `usage: protocol-client <command> [arguments]

commands:
  login [-u username] [-p password]   log in; prompts for missing credentials
  logout                              forget the stored session
  whoami [-copy-token]                show the current account
  version                             show the server build
  protocols list
  protocols add -category ... -function ... [flags]
  protocols delete <id>
  protocols export [-o protocols.xlsx]
  users list
  users add -username ... -password ... -email ... [-role user|admin]
  users update <id> [-username ...] [-email ...] [-role ...] [-password ...]
  users delete <id>
`

var _ Client = (*App)(nil)

type App struct {
	server   adapter.ServerAdapter
	session  *session.Session
	prompter Prompter

	// copyText is replaced in tests
	copyText func(string) error

	out    io.Writer
	logger *logger.Logger
}

func NewApp(server adapter.ServerAdapter, session *session.Session, prompter Prompter, out io.Writer, logger *logger.Logger) *App {
	return &App{
		server:   server,
		session:  session,
		prompter: prompter,
		copyText: clipboard.WriteAll,
		out:      out,
		logger:   logger,
	}
}

// Run executes one command line.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprint(a.out, usage)
		return ErrNoCommand
	}

	command, rest := args[0], args[1:]

	var err error
	switch command {
	case "login":
		return a.login(ctx, rest)
	case "logout":
		err = a.logout(ctx)
	case "whoami":
		err = a.whoami(rest)
	case "version":
		err = a.version(ctx)
	case "protocols":
		err = a.protocols(ctx, rest)
	case "users":
		err = a.users(ctx, rest)
	case "help", "-h", "-help", "--help":
		fmt.Fprint(a.out, usage)
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownCommand, command)
	}

	return a.checkSession(ctx, err)
}

// checkSession turns a rejected token into ErrSessionExpired. The adapter
// already dropped the session on 401; a 403 "invalid token" means the same
// thing for a token the server can no longer verify.
func (a *App) checkSession(ctx context.Context, err error) error {
	if errors.Is(err, adapter.ErrUnauthorized) {
		return fmt.Errorf("%w: %w", ErrSessionExpired, err)
	}

	var respErr *adapter.ResponseError
	if errors.As(err, &respErr) && errors.Is(err, adapter.ErrForbidden) && respErr.Message == app.MsgInvalidToken {
		if clearErr := a.session.Clear(ctx); clearErr != nil {
			a.logger.Err(clearErr).Str("func", "App.checkSession").Msg("error clearing rejected session")
		}
		return fmt.Errorf("%w: %w", ErrSessionExpired, err)
	}

	return err
}

// ErrorMessage is the text shown to the user for err.
func ErrorMessage(err error) string {
	if errors.Is(err, ErrSessionExpired) {
		return ErrSessionExpired.Error()
	}

	var respErr *adapter.ResponseError
	if errors.As(err, &respErr) {
		return respErr.Message
	}

	return tui.HumanizeError(err)
}

func (a *App) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.out)
	return fs
}

// parseFlags reports handled=true when -h was given and usage is printed.
func parseFlags(fs *flag.FlagSet, args []string) (handled bool, err error) {
	err = fs.Parse(args)
	if errors.Is(err, flag.ErrHelp) {
		return true, nil
	}
	return false, err
}

func parseID(args []string) (int64, []string, error) {
	if len(args) == 0 || strings.HasPrefix(args[0], "-") {
		return 0, args, ErrMissingID
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return 0, args, fmt.Errorf("%w: %q", ErrInvalidID, args[0])
	}

	return id, args[1:], nil
}
