package service

import (
	"context"
	"fmt"

	"microfeed/internal/common"
	"microfeed/internal/domain/model"
	"microfeed/internal/domain/repository"

	"github.com/google/uuid"
)

type PostService struct {
	postRepo repository.PostRepository
}

func NewPostService(postRepo repository.PostRepository) *PostService {
	return &PostService{postRepo: postRepo}
}

type PostRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Create stamps the author snapshot from the caller's identity. The
// snapshot is final: profile edits never propagate to existing posts.
func (s *PostService) Create(ctx context.Context, caller model.Identity, req PostRequest) (*model.Post, error) {
	if req.Title == "" || req.Description == "" {
		return nil, common.Errorf("title and description are required: %w", common.ErrBadRequest)
	}

	post := &model.Post{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		AuthorID:    caller.ID,
		AuthorName:  caller.Name,
		AuthorEmail: caller.Email,
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}
	return post, nil
}

func (s *PostService) ListAll(ctx context.Context) ([]model.Post, error) {
	posts, err := s.postRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return posts, nil
}

func (s *PostService) ListByAuthor(ctx context.Context, authorID string) ([]model.Post, error) {
	posts, err := s.postRepo.FindByAuthor(ctx, authorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts by author: %w", err)
	}
	return posts, nil
}

// Update applies the ownership check and the mutation as one filtered
// statement; a post that is absent or owned by someone else comes back
// as the same NotFound.
func (s *PostService) Update(ctx context.Context, caller model.Identity, postID string, req PostRequest) error {
	if req.Title == "" || req.Description == "" {
		return common.Errorf("title and description are required: %w", common.ErrBadRequest)
	}
	return s.postRepo.UpdateOwned(ctx, postID, caller.ID, req.Title, req.Description)
}

func (s *PostService) Delete(ctx context.Context, caller model.Identity, postID string) error {
	return s.postRepo.DeleteOwned(ctx, postID, caller.ID)
}
