// Package redact removes credentials and personal identifiers from strings
// before they are logged or returned in error responses. Storage URLs,
// driver errors and file paths routinely carry a password, a wallet or a
// user name.
package redact

import "regexp"

// Placeholders substituted for redacted fragments.
const (
	RedactionPlaceholder          = "[REDACTED]"
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	RedactedWalletPlaceholder     = "[REDACTED_WALLET]"
)

type rule struct {
	pattern *regexp.Regexp
	replace string
}

// rules are applied in order.
var rules = []rule{
	// userinfo of a database URL
	{regexp.MustCompile(`(?i)\b(postgres(?:ql)?|sqlite|file)://[^@\s/]+@`), "${1}://" + RedactedCredentialPlaceholder + "@"},
	// key=value passwords in DSNs and error text
	{regexp.MustCompile(`(?i)\b(password|passwd|pwd)=[^\s&]+`), "${1}=" + RedactionPlaceholder},
	// ledger wallet addresses
	{regexp.MustCompile(`\b0x[0-9a-fA-F]{40}\b`), RedactedWalletPlaceholder},
	// account names inside home directories
	{regexp.MustCompile(`/(home|Users)/[^/\s]+`), "/${1}/" + RedactionPlaceholder},
}

// String redacts sensitive information from s.
func String(s string) string {
	if s == "" {
		return s
	}
	for _, r := range rules {
		s = r.pattern.ReplaceAllString(s, r.replace)
	}
	return s
}

// Error redacts sensitive information from err.Error().
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
