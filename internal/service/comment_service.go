package service

import (
	"context"

	"moodbook/internal/models"
	"moodbook/internal/repository"
)

type CommentService struct {
	commentRepo repository.CommentRepository
}

type AddCommentInput struct {
	UserID  uint
	PostID  uint
	Content string
}

func NewCommentService(commentRepo repository.CommentRepository) *CommentService {
	return &CommentService{commentRepo: commentRepo}
}

// AddComment records a comment on a post. There is no existence pre-check:
// a comment on a vanished post fails the foreign key and surfaces as a store
// error, matching the create-is-one-statement contract.
func (s *CommentService) AddComment(ctx context.Context, in AddCommentInput) (*models.Comment, error) {
	if in.PostID == 0 || in.Content == "" {
		return nil, models.NewValidationError("Post ID and content are required")
	}

	comment := &models.Comment{
		UserID:  in.UserID,
		PostID:  in.PostID,
		Content: in.Content,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, models.NewInternalError("Failed to add comment", err)
	}
	return comment, nil
}

// ListComments returns a post's comments oldest-first. An unknown post id
// yields an empty list, not an error.
func (s *CommentService) ListComments(ctx context.Context, postID uint) ([]*models.Comment, error) {
	comments, err := s.commentRepo.ListByPost(ctx, postID)
	if err != nil {
		return nil, models.NewInternalError("Failed to fetch comments", err)
	}
	return comments, nil
}
