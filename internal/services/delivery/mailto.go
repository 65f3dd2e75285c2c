package delivery

import (
	"errors"
	"net/url"
	"strings"
)

// ErrInvalidEmail is returned for addresses that are empty or lack an "@".
var ErrInvalidEmail = errors.New("please enter a valid email address")

// ValidateEmail applies the only check the app makes: non-empty with an "@".
func ValidateEmail(addr string) error {
	addr = strings.TrimSpace(addr)
	if addr == "" || !strings.Contains(addr, "@") {
		return ErrInvalidEmail
	}
	return nil
}

// componentEscaper undoes the differences between url.QueryEscape and the
// browser's encodeURIComponent, which mail clients expect.
var componentEscaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// EscapeComponent percent-encodes s like encodeURIComponent.
func EscapeComponent(s string) string {
	return componentEscaper.Replace(url.QueryEscape(s))
}

// MailtoURL builds a mailto: link with an encoded subject and body.
func MailtoURL(to, subject, body string) string {
	var b strings.Builder
	b.WriteString("mailto:")
	b.WriteString(strings.TrimSpace(to))
	b.WriteString("?subject=")
	b.WriteString(EscapeComponent(subject))
	b.WriteString("&body=")
	b.WriteString(EscapeComponent(body))
	return b.String()
}
