package services

import (
	"net/mail"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"
)

func validEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}

func lengthBetween(s string, min, max int) bool {
	n := utf8.RuneCountInString(s)
	return n >= min && n <= max
}

// optionalLength accepts empty strings and otherwise enforces 1..max.
func optionalLength(s string, max int) bool {
	return s == "" || lengthBetween(s, 1, max)
}

func validAbsoluteURL(s string) bool {
	u, err := url.Parse(s)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// parseEventDate accepts RFC 3339 timestamps and plain YYYY-MM-DD dates.
func parseEventDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
