// Package service contains the business logic between handlers and repositories.
package service

import (
	"context"

	"moodbook/internal/models"
	"moodbook/internal/repository"
)

// Toggle-like outcomes.
const (
	ActionLiked   = "liked"
	ActionUnliked = "unliked"
)

type PostService struct {
	postRepo repository.PostRepository
}

type CreatePostInput struct {
	UserID  uint
	Title   string
	Content string
}

func NewPostService(postRepo repository.PostRepository) *PostService {
	return &PostService{postRepo: postRepo}
}

func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if in.Title == "" || in.Content == "" {
		return nil, models.NewValidationError("Title and content are required")
	}

	post := &models.Post{
		UserID:  in.UserID,
		Title:   in.Title,
		Content: in.Content,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, models.NewInternalError("Failed to create post", err)
	}
	return post, nil
}

// ListPosts returns all posts newest-first, annotated with like/comment
// counts and, when viewerID is non-zero, whether the viewer liked each post.
func (s *PostService) ListPosts(ctx context.Context, viewerID uint) ([]*models.Post, error) {
	posts, err := s.postRepo.List(ctx, viewerID)
	if err != nil {
		return nil, models.NewInternalError("Failed to fetch posts", err)
	}
	return posts, nil
}

// ListUserPosts returns the user's own posts with the same annotations as
// ListPosts.
func (s *PostService) ListUserPosts(ctx context.Context, userID uint) ([]*models.Post, error) {
	posts, err := s.postRepo.ListByUser(ctx, userID, userID)
	if err != nil {
		return nil, models.NewInternalError("Failed to fetch user posts", err)
	}
	return posts, nil
}

// ToggleLike flips the user's like on a post: present deletes, absent
// inserts. The insert is an ON CONFLICT no-op, so two concurrent toggles by
// the same user converge on a single like row; the unique constraint, not
// this check, guarantees that. A post id with no post behind it simply
// toggles a like record whose insert the foreign key rejects.
func (s *PostService) ToggleLike(ctx context.Context, userID, postID uint) (string, error) {
	liked, err := s.postRepo.IsLiked(ctx, userID, postID)
	if err != nil {
		return "", models.NewInternalError("Failed to like/unlike post", err)
	}

	if liked {
		if err := s.postRepo.Unlike(ctx, userID, postID); err != nil {
			return "", models.NewInternalError("Failed to like/unlike post", err)
		}
		return ActionUnliked, nil
	}

	if err := s.postRepo.Like(ctx, userID, postID); err != nil {
		return "", models.NewInternalError("Failed to like/unlike post", err)
	}
	return ActionLiked, nil
}

// DeletePost removes the caller's post. A missing post and someone else's
// post produce the identical forbidden error so the response never reveals
// whether the post exists. The store cascades the delete to likes and
// comments.
func (s *PostService) DeletePost(ctx context.Context, userID, postID uint) error {
	owner, found, err := s.postRepo.GetOwner(ctx, postID)
	if err != nil {
		return models.NewInternalError("Failed to delete post", err)
	}
	if !found || owner != userID {
		return models.NewForbiddenError("Unauthorized or post not found")
	}

	if err := s.postRepo.Delete(ctx, postID); err != nil {
		return models.NewInternalError("Failed to delete post", err)
	}
	return nil
}
