package repository

import (
	"context"
	"errors"
	"time"

	"moodbook/internal/cache"
	"moodbook/internal/models"

	"gorm.io/gorm"
)

// PostRepository defines the interface for post data operations
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	List(ctx context.Context, viewerID uint) ([]*models.Post, error)
	ListByUser(ctx context.Context, userID uint, viewerID uint) ([]*models.Post, error)
	GetOwner(ctx context.Context, postID uint) (uint, bool, error)
	Delete(ctx context.Context, postID uint) error
	IsLiked(ctx context.Context, userID, postID uint) (bool, error)
	Like(ctx context.Context, userID, postID uint) error
	Unlike(ctx context.Context, userID, postID uint) error
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	err := r.db.WithContext(ctx).Create(post).Error
	if err == nil {
		cache.InvalidatePostsList(ctx)
	}
	return err
}

// applyPostDetails adds the author join and count/liked subqueries so a
// listing is a single query.
func (r *postRepository) applyPostDetails(db *gorm.DB, viewerID uint) *gorm.DB {
	selectQuery := "posts.*, users.fullname AS author, " +
		"(SELECT COUNT(*) FROM comments WHERE comments.post_id = posts.id) AS comments_count, " +
		"(SELECT COUNT(*) FROM likes WHERE likes.post_id = posts.id) AS likes_count"

	db = db.Model(&models.Post{}).
		Joins("JOIN users ON users.id = posts.user_id")

	if viewerID != 0 {
		return db.Select(selectQuery+
			", EXISTS(SELECT 1 FROM likes WHERE likes.post_id = posts.id AND likes.user_id = ?) AS user_liked",
			viewerID)
	}
	return db.Select(selectQuery + ", FALSE AS user_liked")
}

// List returns all posts newest-first. The anonymous listing (viewerID 0)
// carries no per-user state and is served cache-aside.
func (r *postRepository) List(ctx context.Context, viewerID uint) ([]*models.Post, error) {
	var posts []*models.Post

	fetch := func() error {
		return r.applyPostDetails(r.db.WithContext(ctx), viewerID).
			Order("posts.created_at DESC").
			Find(&posts).Error
	}

	if viewerID == 0 {
		if err := cache.Aside(ctx, cache.PostsListKey, &posts, cache.PostsListTTL, fetch); err != nil {
			return nil, err
		}
		return posts, nil
	}

	if err := fetch(); err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *postRepository) ListByUser(ctx context.Context, userID uint, viewerID uint) ([]*models.Post, error) {
	var posts []*models.Post
	err := r.applyPostDetails(r.db.WithContext(ctx), viewerID).
		Where("posts.user_id = ?", userID).
		Order("posts.created_at DESC").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// GetOwner looks up only the owning user id. The second return is false when
// the post does not exist; callers fold that into the combined
// forbidden/not-found response.
func (r *postRepository) GetOwner(ctx context.Context, postID uint) (uint, bool, error) {
	var post models.Post
	err := r.db.WithContext(ctx).
		Select("user_id").
		Where("id = ?", postID).
		Take(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, false, nil
		}
		return 0, false, err
	}
	return post.UserID, true, nil
}

// Delete hard-deletes the post; the foreign keys cascade to its likes and
// comments at the store level.
func (r *postRepository) Delete(ctx context.Context, postID uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Post{}, postID).Error; err != nil {
		return err
	}
	cache.InvalidatePostsList(ctx)
	return nil
}

func (r *postRepository) IsLiked(ctx context.Context, userID, postID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *postRepository) Like(ctx context.Context, userID, postID uint) error {
	// INSERT ... ON CONFLICT DO NOTHING: a concurrent duplicate insert is a
	// no-op instead of an error, so double-toggle converges.
	result := r.db.WithContext(ctx).Exec(
		`INSERT INTO likes (user_id, post_id, created_at)
		 VALUES (?, ?, ?)
		 ON CONFLICT (user_id, post_id) DO NOTHING`,
		userID, postID, time.Now().UTC(),
	)
	if result.Error == nil {
		cache.InvalidatePostsList(ctx)
	}
	return result.Error
}

func (r *postRepository) Unlike(ctx context.Context, userID, postID uint) error {
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Delete(&models.Like{}).Error
	if err == nil {
		cache.InvalidatePostsList(ctx)
	}
	return err
}
