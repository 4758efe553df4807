package validator

import (
	"net/mail"
	"net/netip"
	"net/url"
	"strings"
)

// validEmail accepts a bare address only: display names and angle brackets
// are rejected, and the domain must contain a dot.
func validEmail(f Field, _ string) bool {
	if !f.Present || strings.TrimSpace(f.Value) == "" {
		return false
	}

	addr, err := mail.ParseAddress(f.Value)
	if err != nil || addr.Address != f.Value {
		return false
	}

	local, domain, ok := strings.Cut(addr.Address, "@")
	if !ok || local == "" {
		return false
	}

	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}
	for part := range strings.SplitSeq(domain, ".") {
		if part == "" {
			return false
		}
	}

	return true
}

func validURL(f Field, _ string) bool {
	if !f.Present || strings.TrimSpace(f.Value) == "" {
		return false
	}

	u, err := url.ParseRequestURI(f.Value)
	if err != nil {
		return false
	}

	return u.Scheme != "" && u.Host != ""
}

// validIP accepts IPv4 and IPv6 literals without zones.
func validIP(f Field, _ string) bool {
	if !f.Present {
		return false
	}
	addr, err := netip.ParseAddr(f.Value)
	return err == nil && addr.Zone() == ""
}
