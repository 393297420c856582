// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-protocol-catalog/internal/adapter"
	"github.com/MKhiriev/go-protocol-catalog/internal/logger"
	"github.com/MKhiriev/go-protocol-catalog/internal/mock"
	"github.com/MKhiriev/go-protocol-catalog/internal/session"
	"github.com/MKhiriev/go-protocol-catalog/internal/tui"
	"github.com/MKhiriev/go-protocol-catalog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	adminProfile = models.Profile{ID: 1, Username: "admin", Role: models.RoleAdmin}
	aliceProfile = models.Profile{ID: 2, Username: "alice", Email: "alice@example.com", Role: models.RoleUser}
)

type fakePrompter struct {
	username, password string
	err                error
	calls              int
	gotUsername        string
}

func (f *fakePrompter) PromptCredentials(_ context.Context, username string) (string, string, error) {
	f.calls++
	f.gotUsername = username
	return f.username, f.password, f.err
}

type testApp struct {
	app      *App
	server   *mock.MockServerAdapter
	repo     *mock.MockSessionRepository
	session  *session.Session
	prompter *fakePrompter
	out      *bytes.Buffer
	copied   []string
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	ctrl := gomock.NewController(t)

	ta := &testApp{
		server:   mock.NewMockServerAdapter(ctrl),
		repo:     mock.NewMockSessionRepository(ctrl),
		prompter: &fakePrompter{},
		out:      &bytes.Buffer{},
	}
	ta.repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	ta.repo.EXPECT().Delete(gomock.Any()).Return(nil).AnyTimes()

	ta.session = session.New(ta.repo, logger.Nop())
	ta.app = NewApp(ta.server, ta.session, ta.prompter, ta.out, logger.Nop())
	ta.app.copyText = func(s string) error {
		ta.copied = append(ta.copied, s)
		return nil
	}
	return ta
}

func (ta *testApp) loginAs(t *testing.T, profile models.Profile) {
	t.Helper()
	require.NoError(t, ta.session.Set(context.Background(), "token-"+profile.Username, profile))
}

func (ta *testApp) run(args ...string) error {
	return ta.app.Run(context.Background(), args)
}

// ─────────────────────────────────────────────
// dispatch
// ─────────────────────────────────────────────

func TestRun_NoCommandPrintsUsage(t *testing.T) {
	ta := newTestApp(t)

	assert.ErrorIs(t, ta.run(), ErrNoCommand)
	assert.Contains(t, ta.out.String(), "usage:")
}

func TestRun_Help(t *testing.T) {
	ta := newTestApp(t)

	assert.NoError(t, ta.run("help"))
	assert.Contains(t, ta.out.String(), "protocols export")
}

func TestRun_UnknownCommand(t *testing.T) {
	ta := newTestApp(t)

	assert.ErrorIs(t, ta.run("frobnicate"), ErrUnknownCommand)
	assert.ErrorIs(t, ta.run("protocols"), ErrMissingSubcommand)
	assert.ErrorIs(t, ta.run("users"), ErrMissingSubcommand)
}

// ─────────────────────────────────────────────
// login / logout / whoami
// ─────────────────────────────────────────────

func TestLogin_WithFlags(t *testing.T) {
	ta := newTestApp(t)
	ta.server.EXPECT().Login(gomock.Any(), "admin", "admin123").
		Return(models.LoginResponse{Message: "login successful", Token: "tok", User: adminProfile}, nil)

	require.NoError(t, ta.run("login", "-u", "admin", "-p", "admin123"))

	assert.Zero(t, ta.prompter.calls)
	assert.Equal(t, "tok", ta.session.Token())
	assert.True(t, ta.session.IsAdmin())
	assert.Contains(t, ta.out.String(), "logged in as admin (admin)")
}

func TestLogin_PromptsForMissingCredentials(t *testing.T) {
	ta := newTestApp(t)
	ta.prompter.username, ta.prompter.password = "alice", "secret"
	ta.server.EXPECT().Login(gomock.Any(), "alice", "secret").
		Return(models.LoginResponse{Token: "tok", User: aliceProfile}, nil)

	require.NoError(t, ta.run("login", "-u", "alice"))

	assert.Equal(t, 1, ta.prompter.calls)
	assert.Equal(t, "alice", ta.prompter.gotUsername)
	assert.True(t, ta.session.IsAuthenticated())
	assert.False(t, ta.session.IsAdmin())
}

func TestLogin_PromptCancelled(t *testing.T) {
	ta := newTestApp(t)
	ta.prompter.err = tui.ErrLoginCancelled

	assert.ErrorIs(t, ta.run("login"), tui.ErrLoginCancelled)
	assert.False(t, ta.session.IsAuthenticated())
}

func TestLogin_BadCredentials(t *testing.T) {
	ta := newTestApp(t)
	ta.server.EXPECT().Login(gomock.Any(), "admin", "wrong").
		Return(models.LoginResponse{}, adapter.NewResponseError(401, "invalid username or password"))

	err := ta.run("login", "-u", "admin", "-p", "wrong")

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrSessionExpired)
	assert.Equal(t, "invalid username or password", ErrorMessage(err))
	assert.False(t, ta.session.IsAuthenticated())
}

func TestLogout(t *testing.T) {
	ta := newTestApp(t)

	require.NoError(t, ta.run("logout"))
	assert.Contains(t, ta.out.String(), "not logged in")

	ta.loginAs(t, aliceProfile)
	require.NoError(t, ta.run("logout"))
	assert.Contains(t, ta.out.String(), "logged out")
	assert.False(t, ta.session.IsAuthenticated())
}

func TestWhoami(t *testing.T) {
	ta := newTestApp(t)

	assert.ErrorIs(t, ta.run("whoami"), ErrNotLoggedIn)

	ta.loginAs(t, aliceProfile)
	require.NoError(t, ta.run("whoami"))
	assert.Contains(t, ta.out.String(), "alice@example.com")
	assert.Empty(t, ta.copied)
}

func TestWhoami_CopyToken(t *testing.T) {
	ta := newTestApp(t)
	ta.loginAs(t, aliceProfile)

	require.NoError(t, ta.run("whoami", "-copy-token"))
	assert.Equal(t, []string{"token-alice"}, ta.copied)
	assert.Contains(t, ta.out.String(), "token copied to clipboard")
}

func TestWhoami_CopyTokenFailure(t *testing.T) {
	ta := newTestApp(t)
	ta.loginAs(t, aliceProfile)
	ta.app.copyText = func(string) error { return errors.New("no clipboard utility") }

	assert.ErrorContains(t, ta.run("whoami", "-copy-token"), "no clipboard utility")
}

func TestVersion_NeedsNoSession(t *testing.T) {
	ta := newTestApp(t)
	ta.server.EXPECT().Version(gomock.Any()).Return("Build version: 1.0.0", nil)

	require.NoError(t, ta.run("version"))
	assert.Contains(t, ta.out.String(), "Build version: 1.0.0")
}

// ─────────────────────────────────────────────
// guards
// ─────────────────────────────────────────────

func TestGuard_SessionRequired(t *testing.T) {
	for _, args := range [][]string{
		{"protocols", "list"},
		{"protocols", "add", "-category", "Meter"},
		{"protocols", "delete", "1"},
		{"protocols", "export"},
		{"users", "list"},
	} {
		t.Run(args[0]+" "+args[1], func(t *testing.T) {
			ta := newTestApp(t)
			assert.ErrorIs(t, ta.run(args...), ErrNotLoggedIn)
		})
	}
}

func TestGuard_AdminRequired(t *testing.T) {
	for _, args := range [][]string{
		{"users", "list"},
		{"users", "add", "-username", "bob"},
		{"users", "update", "3", "-email", "x@example.com"},
		{"users", "delete", "3"},
	} {
		t.Run(args[1], func(t *testing.T) {
			ta := newTestApp(t)
			ta.loginAs(t, aliceProfile)

			err := ta.run(args...)
			assert.ErrorIs(t, err, ErrAdminRequired)
			assert.Equal(t, "admin role required", ErrorMessage(err))
		})
	}
}

// ─────────────────────────────────────────────
// rejected sessions
// ─────────────────────────────────────────────

func TestRejectedToken_401(t *testing.T) {
	ta := newTestApp(t)
	ta.loginAs(t, aliceProfile)

	// the adapter clears the session itself on 401
	ta.server.EXPECT().ListProtocols(gomock.Any()).DoAndReturn(func(ctx context.Context) ([]models.Protocol, error) {
		require.NoError(t, ta.session.Clear(ctx))
		return nil, adapter.NewResponseError(401, "token absent")
	})

	err := ta.run("protocols", "list")

	assert.ErrorIs(t, err, ErrSessionExpired)
	assert.Equal(t, "session expired, please log in again", ErrorMessage(err))
	assert.False(t, ta.session.IsAuthenticated())
}

func TestRejectedToken_403InvalidTokenClearsSession(t *testing.T) {
	ta := newTestApp(t)
	ta.loginAs(t, adminProfile)
	ta.server.EXPECT().ListUsers(gomock.Any()).
		Return(nil, adapter.NewResponseError(403, "invalid token"))

	err := ta.run("users", "list")

	assert.ErrorIs(t, err, ErrSessionExpired)
	assert.False(t, ta.session.IsAuthenticated())
}

func TestForbiddenOtherwiseKeepsSession(t *testing.T) {
	ta := newTestApp(t)
	ta.loginAs(t, aliceProfile)
	ta.server.EXPECT().DeleteProtocol(gomock.Any(), int64(5)).
		Return(adapter.NewResponseError(403, "no permission to delete this protocol"))

	err := ta.run("protocols", "delete", "5")

	assert.NotErrorIs(t, err, ErrSessionExpired)
	assert.Equal(t, "no permission to delete this protocol", ErrorMessage(err))
	assert.True(t, ta.session.IsAuthenticated())
}

// ─────────────────────────────────────────────
// protocols
// ─────────────────────────────────────────────

func TestProtocols_List(t *testing.T) {
	ta := newTestApp(t)
	ta.loginAs(t, aliceProfile)
	ta.server.EXPECT().ListProtocols(gomock.Any()).Return([]models.Protocol{
		{ID: 1, ProtocolKey: models.ProtocolKey{ProductCategory: "Meter"}, FunctionDescription: "Read active energy"},
	}, nil)

	require.NoError(t, ta.run("protocols", "list"))
	assert.Contains(t, ta.out.String(), "Read active energy")
}

func TestProtocols_Add(t *testing.T) {
	ta := newTestApp(t)
	ta.loginAs(t, aliceProfile)

	want := models.Protocol{
		ProtocolKey: models.ProtocolKey{
			ProductCategory: "Meter", FrameHeader: "68", ControlWord: "11", CommandWord: "0001",
			LengthIdentification: "04", CheckField: "CS", FrameEnd: "16",
		},
		FunctionDescription:   "Read active energy",
		TransmissionDirection: "master->slave",
		Data:                  "DI0-DI3",
	}
	ta.server.EXPECT().CreateProtocol(gomock.Any(), want).Return(int64(9), nil)

	require.NoError(t, ta.run("protocols", "add",
		"-category", "Meter", "-function", "Read active energy", "-direction", "master->slave",
		"-header", "68", "-control", "11", "-command", "0001", "-length", "04",
		"-data", "DI0-DI3", "-check", "CS", "-end", "16"))
	assert.Contains(t, ta.out.String(), "protocol created, id 9")
}

func TestProtocols_AddDuplicate(t *testing.T) {
	ta := newTestApp(t)
	ta.loginAs(t, aliceProfile)
	ta.server.EXPECT().CreateProtocol(gomock.Any(), gomock.Any()).
		Return(int64(0), adapter.NewResponseError(400, "protocol already exists"))

	err := ta.run("protocols", "add", "-category", "Meter")
	assert.Equal(t, "protocol already exists", ErrorMessage(err))
}

func TestProtocols_DeleteBadID(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{name: "missing", args: []string{"protocols", "delete"}, want: ErrMissingID},
		{name: "not a number", args: []string{"protocols", "delete", "abc"}, want: ErrInvalidID},
		{name: "zero", args: []string{"protocols", "delete", "0"}, want: ErrInvalidID},
		{name: "negative", args: []string{"protocols", "delete", "-3"}, want: ErrMissingID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ta := newTestApp(t)
			ta.loginAs(t, aliceProfile)
			assert.ErrorIs(t, ta.run(tt.args...), tt.want)
		})
	}
}

func TestProtocols_Export(t *testing.T) {
	ta := newTestApp(t)
	ta.loginAs(t, aliceProfile)
	workbook := []byte("PK\x03\x04workbook")
	ta.server.EXPECT().ExportProtocols(gomock.Any()).Return(workbook, nil)

	path := filepath.Join(t.TempDir(), "out.xlsx")
	require.NoError(t, ta.run("protocols", "export", "-o", path))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, workbook, got)
	assert.Contains(t, ta.out.String(), "exported to "+path)
}

// ─────────────────────────────────────────────
// users
// ─────────────────────────────────────────────

func TestUsers_List(t *testing.T) {
	ta := newTestApp(t)
	ta.loginAs(t, adminProfile)
	ta.server.EXPECT().ListUsers(gomock.Any()).Return([]models.User{{ID: 2, Username: "alice", Role: models.RoleUser}}, nil)

	require.NoError(t, ta.run("users", "list"))
	assert.Contains(t, ta.out.String(), "alice")
}

func TestUsers_Add(t *testing.T) {
	ta := newTestApp(t)
	ta.loginAs(t, adminProfile)
	ta.server.EXPECT().CreateUser(gomock.Any(), models.NewUser{
		Username: "bob", Password: "pw", Email: "bob@example.com", Role: models.RoleUser,
	}).Return(int64(3), nil)

	require.NoError(t, ta.run("users", "add", "-username", "bob", "-password", "pw", "-email", "bob@example.com"))
	assert.Contains(t, ta.out.String(), "user bob created, id 3")
}

func TestUsers_AddUnknownRole(t *testing.T) {
	ta := newTestApp(t)
	ta.loginAs(t, adminProfile)

	assert.ErrorIs(t, ta.run("users", "add", "-username", "bob", "-role", "root"), models.ErrUnknownRole)
}

func TestUsers_UpdateSendsOnlyGivenFields(t *testing.T) {
	ta := newTestApp(t)
	ta.loginAs(t, adminProfile)

	ta.server.EXPECT().UpdateUser(gomock.Any(), int64(3), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ int64, update models.UserUpdate) error {
			assert.Nil(t, update.Username)
			assert.Nil(t, update.Password)
			require.NotNil(t, update.Email)
			assert.Equal(t, "", *update.Email)
			require.NotNil(t, update.Role)
			assert.Equal(t, models.RoleAdmin, *update.Role)
			return nil
		})

	require.NoError(t, ta.run("users", "update", "3", "-email", "", "-role", "admin"))
	assert.Contains(t, ta.out.String(), "user 3 updated")
}

func TestUsers_UpdateNothing(t *testing.T) {
	ta := newTestApp(t)
	ta.loginAs(t, adminProfile)

	assert.ErrorIs(t, ta.run("users", "update", "3"), ErrNothingToUpdate)
}

func TestUsers_DeleteSelf(t *testing.T) {
	ta := newTestApp(t)
	ta.loginAs(t, adminProfile)
	ta.server.EXPECT().DeleteUser(gomock.Any(), int64(1)).
		Return(adapter.NewResponseError(400, "cannot delete your own account"))

	err := ta.run("users", "delete", "1")
	assert.Equal(t, "cannot delete your own account", ErrorMessage(err))
	assert.True(t, ta.session.IsAuthenticated())
}

func TestErrorMessage_Transport(t *testing.T) {
	err := errors.New(`Get "http://localhost:5000/api/protocols": dial tcp [::1]:5000: connect: connection refused`)
	assert.Equal(t, "server is unreachable, check the address and your network", ErrorMessage(err))
}
