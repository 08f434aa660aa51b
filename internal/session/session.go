// Package session tracks which user, if any, is authenticated and which view
// they may see. Session state is transient: it is never persisted, so every
// process start begins anonymous even though the store's data survives.
package session

import (
	"github.com/bestpacific/induction/internal/common"
	"github.com/bestpacific/induction/internal/models"
)

// View names a top-level screen of the portal.
type View string

const (
	ViewDashboard View = "dashboard"
	ViewAdmin     View = "admin"
)

// Session holds the current authentication state. The user record is a value
// copy captured at login time, not a live reference: later edits to the
// stored record do not propagate into an active session.
type Session struct {
	user *models.User
	view View
}

// New returns an anonymous session.
func New() *Session {
	return &Session{}
}

// Login records u as the authenticated user and selects the default view:
// the admin console for admins, the dashboard for everyone else.
func (s *Session) Login(u models.User) {
	s.user = &u
	if u.IsAdmin() {
		s.view = ViewAdmin
	} else {
		s.view = ViewDashboard
	}
}

// Logout returns the session to the anonymous state.
func (s *Session) Logout() {
	s.user = nil
	s.view = ""
}

// IsAuthenticated reports whether a user is logged in.
func (s *Session) IsAuthenticated() bool {
	return s.user != nil
}

// User returns a copy of the authenticated user's record as captured at
// login. The second return is false for an anonymous session.
func (s *Session) User() (models.User, bool) {
	if s.user == nil {
		return models.User{}, false
	}
	return *s.user, true
}

// View returns the currently selected view, or "" when anonymous.
func (s *Session) View() View {
	return s.view
}

// CanAccess reports whether the authenticated user may see the given view.
// Admins may see every view; regular users may only see the dashboard. This
// view-routing rule is the system's only authorization boundary.
func (s *Session) CanAccess(v View) bool {
	if s.user == nil {
		return false
	}
	if v == ViewAdmin {
		return s.user.IsAdmin()
	}
	return true
}

// Switch changes the current view. It returns common.ErrorNotAuthenticated
// for an anonymous session and common.ErrorViewForbidden when the user's
// role does not permit the view.
func (s *Session) Switch(v View) error {
	if s.user == nil {
		return common.ErrorNotAuthenticated
	}
	if !s.CanAccess(v) {
		return common.ErrorViewForbidden
	}
	s.view = v
	return nil
}
