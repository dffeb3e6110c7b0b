package service

import (
	"context"
	"fmt"
	"time"

	"forumhub/internal/model"
	"forumhub/internal/repository"
)

// MemberSummary is one entry of the member directory.
type MemberSummary struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	Level     int       `json:"level"`
	Points    int       `json:"points"`
	CreatedAt time.Time `json:"created_at"`
}

// MemberService exposes the member directory.
type MemberService interface {
	// ListMembers returns all members ordered by points descending,
	// ties broken by join date ascending.
	ListMembers(ctx context.Context) ([]MemberSummary, error)
}

type memberService struct {
	users repository.UserRepository
}

// NewMemberService creates a new member service.
func NewMemberService(users repository.UserRepository) MemberService {
	return &memberService{users: users}
}

func (s *memberService) ListMembers(ctx context.Context) ([]MemberSummary, error) {
	users, err := s.users.ListByRank(ctx)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}

	members := make([]MemberSummary, 0, len(users))
	for _, u := range users {
		members = append(members, MemberSummary{
			ID:        u.ID,
			Username:  u.Username,
			Role:      u.Role,
			Level:     model.LevelFor(u.Points),
			Points:    u.Points,
			CreatedAt: u.CreatedAt,
		})
	}
	return members, nil
}
