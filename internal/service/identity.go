package service

import (
	"net"
	"net/http"
	"strings"

	"github.com/hoops-content-api/internal/models"
)

// ResolveIdentity extracts the visitor identity for view deduplication.
// The first comma-separated X-Forwarded-For entry wins; otherwise the
// connection's remote address is used with any port stripped. No syntax
// validation is applied to the result. Pure function of its inputs.
func ResolveIdentity(headers http.Header, remoteAddr, userID string) models.Identity {
	ip := remoteAddr
	if forwarded := headers.Get("X-Forwarded-For"); forwarded != "" {
		ip = strings.TrimSpace(strings.Split(forwarded, ",")[0])
	} else if host, _, err := net.SplitHostPort(remoteAddr); err == nil {
		ip = host
	}

	return models.Identity{IP: ip, UserID: userID}
}
