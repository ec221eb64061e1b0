package service

import (
	"context"
	"fmt"

	"microfeed/internal/common"
	"microfeed/internal/domain/model"
	"microfeed/internal/domain/repository"
)

type UserService struct {
	userRepo repository.UserRepository
	postRepo repository.PostRepository
}

func NewUserService(userRepo repository.UserRepository, postRepo repository.PostRepository) *UserService {
	return &UserService{userRepo: userRepo, postRepo: postRepo}
}

type ProfileResponse struct {
	User  *model.User  `json:"user"`
	Posts []model.Post `json:"posts"`
}

type UpdateProfileRequest struct {
	Name string  `json:"name"`
	Bio  *string `json:"bio"` // omitted bio keeps the stored value
}

func (s *UserService) GetProfile(ctx context.Context, userID string) (*ProfileResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	posts, err := s.postRepo.FindByAuthor(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list user posts: %w", err)
	}

	return &ProfileResponse{User: user, Posts: posts}, nil
}

// UpdateProfile is self-only: acting on any other user's profile is
// rejected before the store is touched.
func (s *UserService) UpdateProfile(ctx context.Context, caller model.Identity, userID string, req UpdateProfileRequest) error {
	if caller.ID != userID {
		return common.ErrUnauthorized
	}
	if req.Name == "" {
		return common.Errorf("name is required: %w", common.ErrBadRequest)
	}
	return s.userRepo.UpdateProfile(ctx, userID, req.Name, req.Bio)
}
