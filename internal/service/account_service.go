package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/remib/phonestore/internal/repository"
)

type AccountService struct {
	userRepo repository.UserRepository
}

func NewAccountService(userRepo repository.UserRepository) *AccountService {
	return &AccountService{userRepo: userRepo}
}

// DeleteAccount removes the user's order history and account in one
// transaction. If any step fails, nothing is deleted.
func (s *AccountService) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	return s.userRepo.DeleteCascade(ctx, userID)
}
