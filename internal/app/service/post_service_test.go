package service

import (
	"context"
	"testing"

	"microfeed/internal/common"
	"microfeed/internal/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ann = model.Identity{ID: "u-ann", Email: "a@x.com", Name: "Ann"}
var bob = model.Identity{ID: "u-bob", Email: "b@x.com", Name: "Bob"}

func TestCreatePost_StampsAuthorSnapshot(t *testing.T) {
	svc := NewPostService(newFakePostRepo())

	post, err := svc.Create(context.Background(), ann, PostRequest{Title: "Hi", Description: "World"})
	require.NoError(t, err)
	assert.NotEmpty(t, post.ID)
	assert.Equal(t, "u-ann", post.AuthorID)
	assert.Equal(t, "Ann", post.AuthorName)
	assert.Equal(t, "a@x.com", post.AuthorEmail)
}

func TestCreatePost_MissingFields(t *testing.T) {
	svc := NewPostService(newFakePostRepo())

	_, err := svc.Create(context.Background(), ann, PostRequest{Description: "World"})
	assert.ErrorIs(t, err, common.ErrBadRequest)
	_, err = svc.Create(context.Background(), ann, PostRequest{Title: "Hi"})
	assert.ErrorIs(t, err, common.ErrBadRequest)
}

func TestListAll_NewestFirst(t *testing.T) {
	svc := NewPostService(newFakePostRepo())

	p1, err := svc.Create(context.Background(), ann, PostRequest{Title: "first", Description: "d"})
	require.NoError(t, err)
	p2, err := svc.Create(context.Background(), ann, PostRequest{Title: "second", Description: "d"})
	require.NoError(t, err)

	posts, err := svc.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, p2.ID, posts[0].ID)
	assert.Equal(t, p1.ID, posts[1].ID)
}

func TestListByAuthor(t *testing.T) {
	svc := NewPostService(newFakePostRepo())

	_, err := svc.Create(context.Background(), ann, PostRequest{Title: "ann's", Description: "d"})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), bob, PostRequest{Title: "bob's", Description: "d"})
	require.NoError(t, err)

	posts, err := svc.ListByAuthor(context.Background(), ann.ID)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "ann's", posts[0].Title)
}

func TestUpdatePost_OwnerOnly(t *testing.T) {
	repo := newFakePostRepo()
	svc := NewPostService(repo)

	post, err := svc.Create(context.Background(), ann, PostRequest{Title: "Hi", Description: "World"})
	require.NoError(t, err)

	// Another identity gets NotFound, and the post is unchanged.
	err = svc.Update(context.Background(), bob, post.ID, PostRequest{Title: "Hacked", Description: "x"})
	assert.ErrorIs(t, err, common.ErrNotFound)

	posts, _ := svc.ListAll(context.Background())
	assert.Equal(t, "Hi", posts[0].Title)

	// The owner succeeds.
	err = svc.Update(context.Background(), ann, post.ID, PostRequest{Title: "New", Description: "Body"})
	require.NoError(t, err)
	posts, _ = svc.ListAll(context.Background())
	assert.Equal(t, "New", posts[0].Title)
}

func TestUpdatePost_MissingPostIsSameNotFound(t *testing.T) {
	svc := NewPostService(newFakePostRepo())

	err := svc.Update(context.Background(), ann, "no-such-post", PostRequest{Title: "t", Description: "d"})
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestUpdatePost_MissingFields(t *testing.T) {
	svc := NewPostService(newFakePostRepo())

	err := svc.Update(context.Background(), ann, "p-1", PostRequest{Title: "t"})
	assert.ErrorIs(t, err, common.ErrBadRequest)
}

func TestDeletePost_OwnerOnly(t *testing.T) {
	svc := NewPostService(newFakePostRepo())

	post, err := svc.Create(context.Background(), ann, PostRequest{Title: "Hi", Description: "World"})
	require.NoError(t, err)

	err = svc.Delete(context.Background(), bob, post.ID)
	assert.ErrorIs(t, err, common.ErrNotFound)

	posts, _ := svc.ListAll(context.Background())
	require.Len(t, posts, 1) // still present

	err = svc.Delete(context.Background(), ann, post.ID)
	require.NoError(t, err)

	posts, _ = svc.ListAll(context.Background())
	assert.Empty(t, posts)
}
