package config

import (
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

type JWTConfig struct {
	Secret []byte
	TTL    time.Duration
}

var (
	jwtConfig *JWTConfig
	jwtOnce   sync.Once
)

func LoadJWTConfig() *JWTConfig {
	jwtOnce.Do(func() {
		secret := os.Getenv("JWT_SECRET")
		if secret == "" {
			secret = "jobhub-dev-secret"
			logrus.Warn("JWT_SECRET not set, using insecure development secret")
		}
		ttlHours := 72
		if v := os.Getenv("JWT_TTL_HOURS"); v != "" {
			if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
				ttlHours = parsed
			}
		}
		jwtConfig = &JWTConfig{
			Secret: []byte(secret),
			TTL:    time.Duration(ttlHours) * time.Hour,
		}
	})
	return jwtConfig
}
