// Package nonce provides the anti-forgery token capability forms rely on.
// The engine treats it as an opaque issue/verify pair keyed by an action
// string ("nomad_form_<id>"); the default provider signs short-lived HMAC
// tokens.
package nonce

// Provider issues and verifies anti-forgery tokens for a named action.
type Provider interface {
	// Issue returns a fresh token bound to the action.
	Issue(action string) (string, error)

	// Verify reports whether token is valid for the action. Invalid,
	// expired and foreign tokens all verify false; Verify never panics on
	// malformed input.
	Verify(token, action string) bool
}
