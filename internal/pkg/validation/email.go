package validation

import "strings"

// disposableDomains lists common throwaway email providers rejected at registration
var disposableDomains = map[string]struct{}{
	"mailinator.com":    {},
	"tempmail.com":      {},
	"10minutemail.com":  {},
	"guerrillamail.com": {},
	"trashmail.com":     {},
	"yopmail.com":       {},
	"getnada.com":       {},
}

// IsDisposableEmail reports whether the email uses a known disposable domain.
// Malformed addresses are treated as disposable.
func IsDisposableEmail(email string) bool {
	parts := strings.Split(email, "@")
	if len(parts) != 2 || parts[1] == "" {
		return true
	}
	_, found := disposableDomains[strings.ToLower(parts[1])]
	return found
}
