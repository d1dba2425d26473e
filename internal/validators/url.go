package validators

import (
	"net/url"
	"strings"
)

const maxProofURLLen = 500

// IsProofURL accepts absolute http(s) URLs that fit the proof_url column.
func IsProofURL(raw string) bool {
	raw = strings.TrimSpace(raw)
	if raw == "" || len(raw) > maxProofURLLen {
		return false
	}

	u, err := url.Parse(raw)
	if err != nil {
		return false
	}

	return (u.Scheme == "https" || u.Scheme == "http") && u.Host != ""
}
