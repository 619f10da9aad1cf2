package usecase

import (
	"admin-auth-srv/internal/admintoken"
	"admin-auth-srv/internal/admintoken/repository"
	"admin-auth-srv/pkg/jwt"
	pkgLog "admin-auth-srv/pkg/log"
	"admin-auth-srv/pkg/token"
)

type usecase struct {
	l        pkgLog.Logger
	repo     repository.Repository
	resolver jwt.Resolver
	jwt      jwt.Manager
	tokens   token.Generator
}

func New(l pkgLog.Logger, repo repository.Repository, resolver jwt.Resolver, manager jwt.Manager, tokens token.Generator) admintoken.UseCase {
	return &usecase{
		l:        l,
		repo:     repo,
		resolver: resolver,
		jwt:      manager,
		tokens:   tokens,
	}
}
