package repository

import (
	"context"
	"testing"
	"time"

	"moodbook/internal/database"
	"moodbook/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupSQLiteDB gives the post tests a real database so the join, subquery
// and cascade behavior is exercised, not mocked.
func setupSQLiteDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)
	require.NoError(t, database.Migrate(db))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, name, email string) *models.User {
	t.Helper()
	user := &models.User{FullName: name, Email: email, Password: "hash"}
	require.NoError(t, db.Create(user).Error)
	return user
}

func TestPostRepository_ListDetails(t *testing.T) {
	db := setupSQLiteDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	alice := seedUser(t, db, "Alice", "alice@example.com")
	bob := seedUser(t, db, "Bob", "bob@example.com")

	base := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)
	first := &models.Post{UserID: alice.ID, Title: "first", Content: "a", CreatedAt: base}
	second := &models.Post{UserID: alice.ID, Title: "second", Content: "b", CreatedAt: base.Add(time.Minute)}
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	require.NoError(t, repo.Like(ctx, bob.ID, first.ID))
	require.NoError(t, db.Create(&models.Comment{UserID: bob.ID, PostID: first.ID, Content: "hi"}).Error)

	t.Run("viewer sees own likes", func(t *testing.T) {
		posts, err := repo.List(ctx, bob.ID)
		require.NoError(t, err)
		require.Len(t, posts, 2)

		// Newest first.
		assert.Equal(t, "second", posts[0].Title)
		assert.Equal(t, "first", posts[1].Title)

		liked := posts[1]
		assert.Equal(t, "Alice", liked.Author)
		assert.Equal(t, 1, liked.LikesCount)
		assert.Equal(t, 1, liked.CommentsCount)
		assert.True(t, liked.UserLiked)
		assert.False(t, posts[0].UserLiked)
	})

	t.Run("anonymous viewer never liked anything", func(t *testing.T) {
		posts, err := repo.List(ctx, 0)
		require.NoError(t, err)
		require.Len(t, posts, 2)
		for _, p := range posts {
			assert.False(t, p.UserLiked)
		}
	})

	t.Run("ListByUser filters to the owner", func(t *testing.T) {
		posts, err := repo.ListByUser(ctx, bob.ID, bob.ID)
		require.NoError(t, err)
		assert.Empty(t, posts)

		posts, err = repo.ListByUser(ctx, alice.ID, alice.ID)
		require.NoError(t, err)
		assert.Len(t, posts, 2)
	})
}

func TestPostRepository_LikeIdempotent(t *testing.T) {
	db := setupSQLiteDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	alice := seedUser(t, db, "Alice", "alice@example.com")
	post := &models.Post{UserID: alice.ID, Title: "t", Content: "c"}
	require.NoError(t, repo.Create(ctx, post))

	// A duplicate insert hits the unique index and is a no-op.
	require.NoError(t, repo.Like(ctx, alice.ID, post.ID))
	require.NoError(t, repo.Like(ctx, alice.ID, post.ID))

	var count int64
	require.NoError(t, db.Model(&models.Like{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	liked, err := repo.IsLiked(ctx, alice.ID, post.ID)
	require.NoError(t, err)
	assert.True(t, liked)

	require.NoError(t, repo.Unlike(ctx, alice.ID, post.ID))
	liked, err = repo.IsLiked(ctx, alice.ID, post.ID)
	require.NoError(t, err)
	assert.False(t, liked)

	// Unliking twice is fine too.
	require.NoError(t, repo.Unlike(ctx, alice.ID, post.ID))
}

func TestPostRepository_GetOwner(t *testing.T) {
	db := setupSQLiteDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	alice := seedUser(t, db, "Alice", "alice@example.com")
	post := &models.Post{UserID: alice.ID, Title: "t", Content: "c"}
	require.NoError(t, repo.Create(ctx, post))

	owner, found, err := repo.GetOwner(ctx, post.ID)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, alice.ID, owner)

	_, found, err = repo.GetOwner(ctx, 9999)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestPostRepository_DeleteCascades(t *testing.T) {
	db := setupSQLiteDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	alice := seedUser(t, db, "Alice", "alice@example.com")
	bob := seedUser(t, db, "Bob", "bob@example.com")

	post := &models.Post{UserID: alice.ID, Title: "t", Content: "c"}
	require.NoError(t, repo.Create(ctx, post))
	require.NoError(t, repo.Like(ctx, bob.ID, post.ID))
	require.NoError(t, db.Create(&models.Comment{UserID: bob.ID, PostID: post.ID, Content: "hi"}).Error)

	require.NoError(t, repo.Delete(ctx, post.ID))

	for _, model := range []any{&models.Post{}, &models.Like{}, &models.Comment{}} {
		var count int64
		require.NoError(t, db.Model(model).Count(&count).Error)
		assert.Equal(t, int64(0), count)
	}
}
