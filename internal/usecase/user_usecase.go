package usecase

import (
	"context"
	"strings"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type UserUsecase struct {
	userRepo repo.UserRepository
}

func NewUserUsecase(userRepo repo.UserRepository) *UserUsecase {
	return &UserUsecase{userRepo: userRepo}
}

type CreateUserInput struct {
	Role string
	Name string
}

type UserOutput struct {
	ID        int64     `json:"id"`
	Role      string    `json:"role"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func (u *UserUsecase) CreateUser(ctx context.Context, in CreateUserInput) (UserOutput, error) {
	role := model.Role(strings.ToUpper(strings.TrimSpace(in.Role)))
	if role != model.RoleBuyer && role != model.RoleSeller {
		return UserOutput{}, NewAppError(KindValidation, "role must be either buyer or seller")
	}
	if strings.TrimSpace(in.Name) == "" {
		return UserOutput{}, NewAppError(KindValidation, "name is required")
	}

	created, err := u.userRepo.Create(ctx, model.User{
		Role: role,
		Name: strings.TrimSpace(in.Name),
	})
	if err != nil {
		return UserOutput{}, NewAppError(KindInternal, "db error")
	}

	return toUserOutput(created), nil
}

func (u *UserUsecase) GetUser(ctx context.Context, id int64) (UserOutput, error) {
	if id <= 0 {
		return UserOutput{}, NewAppError(KindValidation, "invalid id")
	}

	user, err := u.userRepo.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return UserOutput{}, NewAppError(KindNotFound, "user not found")
	}
	if err != nil {
		return UserOutput{}, NewAppError(KindInternal, "db error")
	}

	return toUserOutput(user), nil
}

func (u *UserUsecase) ListUsers(ctx context.Context) ([]UserOutput, error) {
	users, err := u.userRepo.List(ctx)
	if err != nil {
		return []UserOutput{}, NewAppError(KindInternal, "db error")
	}

	outs := make([]UserOutput, 0, len(users))
	for _, usr := range users {
		outs = append(outs, toUserOutput(usr))
	}
	return outs, nil
}

func toUserOutput(u model.User) UserOutput {
	return UserOutput{
		ID:        u.ID,
		Role:      string(u.Role),
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
	}
}
