package state

import (
	"context"
)

const (
	CurrentUserIP = "CurrentIP"
)

// CurrentIP returns the client IP stored by the ClaimIp middleware.
func CurrentIP(ctx context.Context) string {
	value := ctx.Value(CurrentUserIP)
	if value == nil {
		return ""
	}

	ip, ok := value.(string)
	if !ok {
		return ""
	}

	return ip
}
