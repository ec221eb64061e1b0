package service

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"microfeed/internal/common"
	"microfeed/internal/domain/model"
)

func strPtr(s string) *string { return &s }

// In-memory repositories mirroring the pg implementations' contracts:
// unique email on create, digest-free reads by id, and zero-row
// ownership filters reported as ErrNotFound.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]model.User // by id
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]model.User{}}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return fmt.Errorf("user with given email already exists: %w", common.ErrConflict)
		}
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	r.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			out := u
			return &out, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	out := u
	out.HashedPassword = ""
	return &out, nil
}

func (r *fakeUserRepo) UpdateProfile(ctx context.Context, id, name string, bio *string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return common.ErrNotFound
	}
	u.Name = name
	if bio != nil {
		u.Bio = *bio
	}
	u.UpdatedAt = time.Now()
	r.users[id] = u
	return nil
}

type fakePostRepo struct {
	mu    sync.Mutex
	posts []model.Post
	clock time.Time
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{clock: time.Now()}
}

func (r *fakePostRepo) Create(ctx context.Context, post *model.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clock = r.clock.Add(time.Second) // strictly increasing creation times
	post.CreatedAt = r.clock
	post.UpdatedAt = r.clock
	r.posts = append(r.posts, *post)
	return nil
}

func (r *fakePostRepo) FindAll(ctx context.Context) ([]model.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := append([]model.Post{}, r.posts...)
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakePostRepo) FindByAuthor(ctx context.Context, authorID string) ([]model.Post, error) {
	all, _ := r.FindAll(ctx)
	out := []model.Post{}
	for _, p := range all {
		if p.AuthorID == authorID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakePostRepo) UpdateOwned(ctx context.Context, postID, authorID, title, description string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.posts {
		if r.posts[i].ID == postID && r.posts[i].AuthorID == authorID {
			r.posts[i].Title = title
			r.posts[i].Description = description
			r.posts[i].UpdatedAt = time.Now()
			return nil
		}
	}
	return common.ErrNotFound
}

func (r *fakePostRepo) DeleteOwned(ctx context.Context, postID, authorID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.posts {
		if r.posts[i].ID == postID && r.posts[i].AuthorID == authorID {
			r.posts = append(r.posts[:i], r.posts[i+1:]...)
			return nil
		}
	}
	return common.ErrNotFound
}
