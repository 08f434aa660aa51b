// Package cli implements the interactive terminal surface of the induction
// portal: login, the employee dashboard (browse sections, query the AI
// assistant) and the admin console (manage users and content).
//
// The package is presentation only. All state changes go through the store,
// view access goes through the session, and assistant calls go through the
// gateway; handlers here prompt, dispatch and print.
package cli
