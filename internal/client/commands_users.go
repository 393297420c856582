package client

import (
	"context"
	"flag"
	"fmt"

	"github.com/MKhiriev/go-protocol-catalog/internal/tui"
	"github.com/MKhiriev/go-protocol-catalog/models"
)

func (a *App) users(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: users list|add|update|delete", ErrMissingSubcommand)
	}

	if err := a.requireAdmin(); err != nil {
		return err
	}

	switch args[0] {
	case "list":
		return a.listUsers(ctx)
	case "add":
		return a.addUser(ctx, args[1:])
	case "update":
		return a.updateUser(ctx, args[1:])
	case "delete":
		return a.deleteUser(ctx, args[1:])
	default:
		return fmt.Errorf("%w: users %s", ErrUnknownCommand, args[0])
	}
}

func (a *App) listUsers(ctx context.Context) error {
	users, err := a.server.ListUsers(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, tui.UsersTable(users))
	return nil
}

func (a *App) addUser(ctx context.Context, args []string) error {
	var user models.NewUser

	fs := a.newFlagSet("users add")
	fs.StringVar(&user.Username, "username", "", "username")
	fs.StringVar(&user.Password, "password", "", "password")
	fs.StringVar(&user.Email, "email", "", "email")
	role := fs.String("role", string(models.RoleUser), "role: user or admin")
	if handled, err := parseFlags(fs, args); handled || err != nil {
		return err
	}

	var err error
	if user.Role, err = models.ParseRole(*role); err != nil {
		return err
	}

	id, err := a.server.CreateUser(ctx, user)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "user %s created, id %d\n", user.Username, id)
	return nil
}

// updateUser sends only the flags given on the command line.
func (a *App) updateUser(ctx context.Context, args []string) error {
	id, rest, err := parseID(args)
	if err != nil {
		return err
	}

	fs := a.newFlagSet("users update")
	username := fs.String("username", "", "new username")
	email := fs.String("email", "", "new email")
	role := fs.String("role", "", "new role: user or admin")
	password := fs.String("password", "", "new password")
	if handled, err := parseFlags(fs, rest); handled || err != nil {
		return err
	}

	var update models.UserUpdate
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "username":
			update.Username = username
		case "email":
			update.Email = email
		case "password":
			update.Password = password
		}
	})
	if isFlagSet(fs, "role") {
		parsed, err := models.ParseRole(*role)
		if err != nil {
			return err
		}
		update.Role = &parsed
	}

	if update.IsEmpty() {
		return ErrNothingToUpdate
	}

	if err = a.server.UpdateUser(ctx, id, update); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "user %d updated\n", id)
	return nil
}

func (a *App) deleteUser(ctx context.Context, args []string) error {
	id, _, err := parseID(args)
	if err != nil {
		return err
	}

	if err = a.server.DeleteUser(ctx, id); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "user %d deleted\n", id)
	return nil
}

func isFlagSet(fs *flag.FlagSet, name string) bool {
	set := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
