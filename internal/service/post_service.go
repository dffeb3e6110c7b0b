package service

import (
	"context"
	"fmt"
	"time"

	"forumhub/internal/model"
	"forumhub/internal/repository"
)

// listPostsLimit caps the public post listing.
const listPostsLimit = 20

// PostSummary is one entry of the public post listing.
type PostSummary struct {
	ID         uint      `json:"id"`
	Title      string    `json:"title"`
	Views      int       `json:"views"`
	CreatedAt  time.Time `json:"created_at"`
	Category   string    `json:"category"`
	AuthorName string    `json:"author_name"`
	Level      int       `json:"level"`
}

// PostService handles post submission and the public listing.
type PostService interface {
	// CreatePost submits a new post for review. The review status is owned
	// by the service: every new post starts pending regardless of input.
	CreatePost(ctx context.Context, authorID uint, category, title, content string) error
	ListPosts(ctx context.Context) ([]PostSummary, error)
}

type postService struct {
	posts repository.PostRepository
}

// NewPostService creates a new post service.
func NewPostService(posts repository.PostRepository) PostService {
	return &postService{posts: posts}
}

func (s *postService) CreatePost(ctx context.Context, authorID uint, category, title, content string) error {
	post := &model.Post{
		AuthorID: authorID,
		Category: category,
		Title:    title,
		Content:  content,
		Status:   model.StatusPendingReview,
	}
	if err := s.posts.Create(ctx, post); err != nil {
		return fmt.Errorf("create post: %w", err)
	}
	return nil
}

func (s *postService) ListPosts(ctx context.Context) ([]PostSummary, error) {
	rows, err := s.posts.ListApproved(ctx, listPostsLimit)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}

	summaries := make([]PostSummary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, PostSummary{
			ID:         row.ID,
			Title:      row.Title,
			Views:      row.Views,
			CreatedAt:  row.CreatedAt,
			Category:   row.Category,
			AuthorName: row.AuthorName,
			Level:      model.LevelFor(row.AuthorPoints),
		})
	}
	return summaries, nil
}
