package client

// requireSession rejects commands that need a login before any request is
// sent.
func (a *App) requireSession() error {
	if !a.session.IsAuthenticated() {
		return ErrNotLoggedIn
	}
	return nil
}

// requireAdmin runs after requireSession, the same order the server applies.
func (a *App) requireAdmin() error {
	if err := a.requireSession(); err != nil {
		return err
	}
	if !a.session.IsAdmin() {
		return ErrAdminRequired
	}
	return nil
}
