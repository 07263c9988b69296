package middleware

import (
	"repo-activity-feed/config"
	"repo-activity-feed/pkg/log"
)

type Middleware struct {
	l              log.Logger
	allowedOrigins []string
}

func New(l log.Logger, corsConfig config.CORSConfig) Middleware {
	return Middleware{
		l:              l,
		allowedOrigins: corsConfig.AllowedOrigins,
	}
}
