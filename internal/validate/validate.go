package validate

import (
	"math"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"marketplace/internal/domain"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

var (
	reEmail    = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	reID       = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)
	reUsername = regexp.MustCompile(`^[A-Za-z0-9_.-]{1,32}$`)
)

// ID validates a resource identifier from a path segment.
func ID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reID.MatchString(s)
}

func Email(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) == 0 || len(s) > 254 {
		return "", false
	}
	return s, reEmail.MatchString(s)
}

func Username(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, reUsername.MatchString(s)
}

// Text trims s and checks it is 1..max runes with no control characters.
func Text(s string, max int) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || utf8.RuneCountInString(s) > max {
		return "", false
	}
	return s, printable(s)
}

// OptionalText is Text that also accepts the empty string.
func OptionalText(s string, max int) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", true
	}
	return Text(s, max)
}

// Q validates a free-text search query. Empty means no search.
func Q(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", true
	}
	if utf8.RuneCountInString(s) > 100 {
		return "", false
	}
	return s, printable(s)
}

func Price(p float64) bool {
	return !math.IsNaN(p) && !math.IsInf(p, 0) && p >= 0
}

// URL accepts absolute http(s) URLs with a host.
func URL(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 2048 {
		return "", false
	}
	u, err := url.Parse(s)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return "", false
	}
	return s, true
}

// Status validates an item status filter. Empty means no filter.
func Status(s string) (domain.ItemStatus, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return "", true
	}
	st := domain.ItemStatus(s)
	return st, st.Valid()
}

// SortBy accepts one of allowed, defaulting empty input to def.
func SortBy(s, def string, allowed map[string]string) (string, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return def, true
	}
	_, ok := allowed[s]
	return s, ok
}

// Order parses asc|desc; empty means desc.
func Order(s string) (desc bool, ok bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "desc":
		return true, true
	case "asc":
		return false, true
	}
	return false, false
}

// Paging parses skip/limit query values. Missing values take defaults and
// limit is clamped to MaxLimit.
func Paging(skip, limit string) (int, int, bool) {
	off := 0
	if s := strings.TrimSpace(skip); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			return 0, 0, false
		}
		off = n
	}
	lim := DefaultLimit
	if s := strings.TrimSpace(limit); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			return 0, 0, false
		}
		lim = n
	}
	if lim > MaxLimit {
		lim = MaxLimit
	} // clamp to avoid abuse
	return off, lim, true
}

func printable(s string) bool {
	for _, r := range s {
		if unicode.IsControl(r) && r != '\n' && r != '\t' {
			return false
		}
	}
	return true
}
