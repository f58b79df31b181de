package domain

import (
	"regexp"
	"strings"
)

var addressRe = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)

// NormalizeAddress lowercases a hex address so lookups are case-insensitive.
func NormalizeAddress(addr string) string {
	return strings.ToLower(strings.TrimSpace(addr))
}

func IsAddress(addr string) bool {
	return addressRe.MatchString(strings.TrimSpace(addr))
}
