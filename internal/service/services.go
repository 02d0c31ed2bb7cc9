package service

import (
	"time"

	"github.com/remib/phonestore/internal/config"
	"github.com/remib/phonestore/internal/repository"
)

type Services struct {
	Token   *TokenService
	Auth    *AuthService
	Catalog *CatalogService
	Order   *OrderService
	Account *AccountService
}

func NewServices(repos *repository.Repositories, cfg *config.Config) *Services {
	tokens := NewTokenService(cfg.JWTSecret, time.Duration(cfg.JWTExpirationHours)*time.Hour)

	return &Services{
		Token:   tokens,
		Auth:    NewAuthService(repos.User, tokens),
		Catalog: NewCatalogService(repos.Product),
		Order:   NewOrderService(repos.Order),
		Account: NewAccountService(repos.User),
	}
}
