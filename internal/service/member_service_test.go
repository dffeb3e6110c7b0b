package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"forumhub/internal/model"
)

func TestMemberService_ListMembers(t *testing.T) {
	joined := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	mockRepo := new(MockUserRepository)
	// Repository order (points desc, join date asc) must be preserved.
	mockRepo.On("ListByRank", mock.Anything).Return([]model.User{
		{ID: 1, Username: "admin", Points: 5200, Role: model.RoleAdmin, CreatedAt: joined},
		{ID: 3, Username: "veteran", Points: 2400, Role: model.RoleMember, CreatedAt: joined.AddDate(0, 1, 0)},
		{ID: 2, Username: "newcomer", Points: 3, Role: model.RoleMember, CreatedAt: joined.AddDate(0, 2, 0)},
	}, nil)

	svc := NewMemberService(mockRepo)
	members, err := svc.ListMembers(context.Background())

	assert.NoError(t, err)
	assert.Len(t, members, 3)

	assert.Equal(t, []uint{1, 3, 2}, []uint{members[0].ID, members[1].ID, members[2].ID})
	assert.Equal(t, 5, members[0].Level)
	assert.Equal(t, 4, members[1].Level)
	assert.Equal(t, 0, members[2].Level)
	assert.Equal(t, joined, members[0].CreatedAt)

	mockRepo.AssertExpectations(t)
}

func TestMemberService_ListMembersStoreError(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("ListByRank", mock.Anything).Return(nil, assert.AnError)

	svc := NewMemberService(mockRepo)
	members, err := svc.ListMembers(context.Background())

	assert.Error(t, err)
	assert.Nil(t, members)
}
