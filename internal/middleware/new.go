package middleware

import (
	pkgLog "group-janitor/pkg/log"
)

type Middleware struct {
	l pkgLog.Logger
}

func New(l pkgLog.Logger) Middleware {
	return Middleware{
		l: l,
	}
}
