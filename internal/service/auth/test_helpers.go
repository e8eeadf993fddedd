package auth

import "time"

// NewTestJWTService creates a JWT service with an injectable clock and
// no clock skew allowance. Tests use the clock to move time forward
// between generating and validating tokens.
func NewTestJWTService(secret string, tokenLifetime time.Duration, timeFunc func() time.Time) JWTService {
	if timeFunc == nil {
		timeFunc = time.Now
	}
	return &hmacJWTService{
		signingKey:    []byte(secret),
		tokenLifetime: tokenLifetime,
		timeFunc:      timeFunc,
		clockSkew:     0,
	}
}
