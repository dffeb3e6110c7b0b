package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"forumhub/internal/model"
	"forumhub/internal/repository"
)

// MockPostRepository is a mock implementation of PostRepository.
type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) Create(ctx context.Context, post *model.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPostRepository) ListApproved(ctx context.Context, limit int) ([]repository.ApprovedPost, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.ApprovedPost), args.Error(1)
}

func TestPostService_CreatePostForcesPendingReview(t *testing.T) {
	mockRepo := new(MockPostRepository)

	var stored *model.Post
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Post")).
		Run(func(args mock.Arguments) {
			stored = args.Get(1).(*model.Post)
		}).
		Return(nil)

	svc := NewPostService(mockRepo)
	err := svc.CreatePost(context.Background(), 42, "general", "Hello", "First post")

	assert.NoError(t, err)
	assert.NotNil(t, stored)
	assert.Equal(t, model.StatusPendingReview, stored.Status)
	assert.Equal(t, uint(42), stored.AuthorID)
	assert.Equal(t, "general", stored.Category)
	mockRepo.AssertExpectations(t)
}

func TestPostService_CreatePostPropagatesStoreError(t *testing.T) {
	mockRepo := new(MockPostRepository)
	mockRepo.On("Create", mock.Anything, mock.Anything).Return(assert.AnError)

	svc := NewPostService(mockRepo)
	err := svc.CreatePost(context.Background(), 1, "general", "t", "c")

	assert.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestPostService_ListPosts(t *testing.T) {
	now := time.Now()
	mockRepo := new(MockPostRepository)
	mockRepo.On("ListApproved", mock.Anything, 20).Return([]repository.ApprovedPost{
		{
			Post: model.Post{
				ID:        2,
				Title:     "Second",
				Views:     10,
				Category:  "general",
				Status:    model.StatusApproved,
				CreatedAt: now,
			},
			AuthorName:   "alice",
			AuthorPoints: 2500,
		},
		{
			Post: model.Post{
				ID:        1,
				Title:     "First",
				Views:     99,
				Category:  "help",
				Status:    model.StatusApproved,
				CreatedAt: now.Add(-time.Hour),
			},
			AuthorName:   "bob",
			AuthorPoints: 5,
		},
	}, nil)

	svc := NewPostService(mockRepo)
	posts, err := svc.ListPosts(context.Background())

	assert.NoError(t, err)
	assert.Len(t, posts, 2)

	assert.Equal(t, uint(2), posts[0].ID)
	assert.Equal(t, "alice", posts[0].AuthorName)
	assert.Equal(t, 4, posts[0].Level)

	assert.Equal(t, uint(1), posts[1].ID)
	assert.Equal(t, "bob", posts[1].AuthorName)
	assert.Equal(t, 0, posts[1].Level)

	mockRepo.AssertExpectations(t)
}

func TestPostService_ListPostsEmptyIsNotNil(t *testing.T) {
	mockRepo := new(MockPostRepository)
	mockRepo.On("ListApproved", mock.Anything, 20).Return([]repository.ApprovedPost{}, nil)

	svc := NewPostService(mockRepo)
	posts, err := svc.ListPosts(context.Background())

	assert.NoError(t, err)
	assert.NotNil(t, posts)
	assert.Empty(t, posts)
}
