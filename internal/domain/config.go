package domain

import "time"

// AuthConfig carries the token settings shared by the auth service and middleware.
type AuthConfig struct {
	Issuer     string
	Secret     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}
