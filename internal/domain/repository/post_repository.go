package repository

import (
	"context"
	"database/sql"
	"fmt"

	"microfeed/internal/common"
	"microfeed/internal/domain/model"
)

type PostRepository interface {
	Create(ctx context.Context, post *model.Post) error
	// FindAll returns every post, newest first.
	FindAll(ctx context.Context) ([]model.Post, error)
	FindByAuthor(ctx context.Context, authorID string) ([]model.Post, error)
	// UpdateOwned mutates the post only when it exists AND belongs to
	// authorID, in a single filtered statement. Zero matched rows means
	// common.ErrNotFound: "absent" and "not yours" are indistinguishable.
	UpdateOwned(ctx context.Context, postID, authorID, title, description string) error
	// DeleteOwned has the same filter contract as UpdateOwned.
	DeleteOwned(ctx context.Context, postID, authorID string) error
}

type pgPostRepository struct {
	db *sql.DB
}

func NewPgPostRepository(db *sql.DB) PostRepository {
	return &pgPostRepository{db: db}
}

func (r *pgPostRepository) Create(ctx context.Context, post *model.Post) error {
	query := `INSERT INTO posts (id, title, description, author_id, author_name, author_email)
	          VALUES ($1, $2, $3, $4, $5, $6)
	          RETURNING created_at, updated_at`
	err := r.db.QueryRowContext(ctx, query,
		post.ID, post.Title, post.Description, post.AuthorID, post.AuthorName, post.AuthorEmail,
	).Scan(&post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		return fmt.Errorf("pgPostRepository.Create: %w", err)
	}
	return nil
}

func (r *pgPostRepository) FindAll(ctx context.Context) ([]model.Post, error) {
	query := `SELECT id, title, description, author_id, author_name, author_email, created_at, updated_at
	          FROM posts ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("pgPostRepository.FindAll: %w", err)
	}
	defer rows.Close()
	return scanPosts(rows)
}

func (r *pgPostRepository) FindByAuthor(ctx context.Context, authorID string) ([]model.Post, error) {
	query := `SELECT id, title, description, author_id, author_name, author_email, created_at, updated_at
	          FROM posts WHERE author_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, authorID)
	if err != nil {
		return nil, fmt.Errorf("pgPostRepository.FindByAuthor: %w", err)
	}
	defer rows.Close()
	return scanPosts(rows)
}

func (r *pgPostRepository) UpdateOwned(ctx context.Context, postID, authorID, title, description string) error {
	query := `UPDATE posts SET title = $1, description = $2, updated_at = now()
	          WHERE id = $3 AND author_id = $4`
	res, err := r.db.ExecContext(ctx, query, title, description, postID, authorID)
	if err != nil {
		return fmt.Errorf("pgPostRepository.UpdateOwned: %w", err)
	}
	return rowsOrNotFound(res, "pgPostRepository.UpdateOwned")
}

func (r *pgPostRepository) DeleteOwned(ctx context.Context, postID, authorID string) error {
	query := `DELETE FROM posts WHERE id = $1 AND author_id = $2`
	res, err := r.db.ExecContext(ctx, query, postID, authorID)
	if err != nil {
		return fmt.Errorf("pgPostRepository.DeleteOwned: %w", err)
	}
	return rowsOrNotFound(res, "pgPostRepository.DeleteOwned")
}

func scanPosts(rows *sql.Rows) ([]model.Post, error) {
	posts := []model.Post{}
	for rows.Next() {
		var p model.Post
		if err := rows.Scan(
			&p.ID, &p.Title, &p.Description, &p.AuthorID, &p.AuthorName, &p.AuthorEmail, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanPosts: %w", err)
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scanPosts: %w", err)
	}
	return posts, nil
}

func rowsOrNotFound(res sql.Result, op string) error {
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if rows == 0 {
		return common.ErrNotFound
	}
	return nil
}
