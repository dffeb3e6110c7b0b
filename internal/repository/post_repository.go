package repository

import (
	"context"

	"gorm.io/gorm"

	"forumhub/internal/model"
)

// ApprovedPost is one row of the public post listing: post columns joined
// with the author's username and current points.
type ApprovedPost struct {
	model.Post
	AuthorName   string `json:"author_name"`
	AuthorPoints int    `json:"-"`
}

// PostRepository defines post persistence operations.
type PostRepository interface {
	Create(ctx context.Context, post *model.Post) error
	// ListApproved returns at most limit approved posts, newest first,
	// each joined with its author.
	ListApproved(ctx context.Context, limit int) ([]ApprovedPost, error)
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository builds a GORM-backed repository.
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *model.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *postRepository) ListApproved(ctx context.Context, limit int) ([]ApprovedPost, error) {
	var posts []ApprovedPost
	if err := r.db.WithContext(ctx).
		Model(&model.Post{}).
		Select("posts.*, users.username AS author_name, users.points AS author_points").
		Joins("INNER JOIN users ON users.id = posts.author_id").
		Where("posts.status = ?", model.StatusApproved).
		Order("posts.created_at DESC").
		Limit(limit).
		Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}
