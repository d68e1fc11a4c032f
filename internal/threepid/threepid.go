// Package threepid models third-party identifiers (email addresses and phone
// numbers) and the deterministic username derivations applied to them.
//
// A third-party identifier, or 3PID, is an identifier the user verified out of
// band during registration. The host hands these to the registration hook in
// the order it received them; this package only knows how to turn a single
// identifier into a username candidate.
package threepid

import (
	"fmt"
	"strings"
)

// Medium identifies the kind of a third-party identifier.
type Medium string

const (
	// MediumEmail is an email address.
	MediumEmail Medium = "email"

	// MediumMSISDN is a phone number in international format.
	MediumMSISDN Medium = "msisdn"
)

// ParseMedium validates a raw medium string and returns the typed Medium.
func ParseMedium(s string) (Medium, error) {
	switch Medium(s) {
	case MediumEmail, MediumMSISDN:
		return Medium(s), nil
	default:
		return "", fmt.Errorf("unknown threepid medium: %q (supported: email, msisdn)", s)
	}
}

// Identifier is a single third-party identifier supplied by the host for a
// registration attempt. The address is opaque to this package beyond the
// derivation rules for its medium.
type Identifier struct {
	Medium  Medium
	Address string
}

// DeriveUsername maps an identifier to a username candidate using the fixed
// transformation for its medium. The result is deterministic for a given
// identifier. An identifier whose address sanitizes to an empty string is a
// fault, not a policy decision, and returns an error.
func DeriveUsername(id Identifier) (string, error) {
	switch id.Medium {
	case MediumEmail:
		return usernameFromEmail(id.Address)
	case MediumMSISDN:
		return usernameFromMSISDN(id.Address)
	default:
		return "", fmt.Errorf("cannot derive username from medium %q", id.Medium)
	}
}

// usernameFromEmail takes the portion of the address before the domain
// separator, lower-cases it, and strips every rune outside the localpart
// character set.
func usernameFromEmail(address string) (string, error) {
	local, _, _ := strings.Cut(address, "@")

	var b strings.Builder
	for _, c := range strings.ToLower(local) {
		if localpartAllowed(c) {
			b.WriteRune(c)
		}
	}

	if b.Len() == 0 {
		return "", fmt.Errorf("email address %q yields an empty username", address)
	}
	return b.String(), nil
}

// usernameFromMSISDN strips everything but digits from the phone number.
func usernameFromMSISDN(address string) (string, error) {
	var b strings.Builder
	for _, c := range address {
		if c >= '0' && c <= '9' {
			b.WriteRune(c)
		}
	}

	if b.Len() == 0 {
		return "", fmt.Errorf("phone number %q yields an empty username", address)
	}
	return b.String(), nil
}

// localpartAllowed reports whether c may appear in a username localpart.
// This matches the homeserver's localpart grammar: lowercase ASCII letters,
// digits, and "_-./=".
func localpartAllowed(c rune) bool {
	switch {
	case c >= 'a' && c <= 'z':
		return true
	case c >= '0' && c <= '9':
		return true
	case c == '_' || c == '-' || c == '.' || c == '/' || c == '=':
		return true
	default:
		return false
	}
}
