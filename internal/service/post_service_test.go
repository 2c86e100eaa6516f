package service

import (
	"context"
	"errors"
	"testing"

	"moodbook/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockPostRepo struct {
	mock.Mock
}

func (m *mockPostRepo) Create(ctx context.Context, post *models.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *mockPostRepo) List(ctx context.Context, viewerID uint) ([]*models.Post, error) {
	args := m.Called(ctx, viewerID)
	posts, _ := args.Get(0).([]*models.Post)
	return posts, args.Error(1)
}

func (m *mockPostRepo) ListByUser(ctx context.Context, userID uint, viewerID uint) ([]*models.Post, error) {
	args := m.Called(ctx, userID, viewerID)
	posts, _ := args.Get(0).([]*models.Post)
	return posts, args.Error(1)
}

func (m *mockPostRepo) GetOwner(ctx context.Context, postID uint) (uint, bool, error) {
	args := m.Called(ctx, postID)
	return args.Get(0).(uint), args.Bool(1), args.Error(2)
}

func (m *mockPostRepo) Delete(ctx context.Context, postID uint) error {
	args := m.Called(ctx, postID)
	return args.Error(0)
}

func (m *mockPostRepo) IsLiked(ctx context.Context, userID, postID uint) (bool, error) {
	args := m.Called(ctx, userID, postID)
	return args.Bool(0), args.Error(1)
}

func (m *mockPostRepo) Like(ctx context.Context, userID, postID uint) error {
	args := m.Called(ctx, userID, postID)
	return args.Error(0)
}

func (m *mockPostRepo) Unlike(ctx context.Context, userID, postID uint) error {
	args := m.Called(ctx, userID, postID)
	return args.Error(0)
}

func TestPostService_CreatePost(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo := new(mockPostRepo)
		svc := NewPostService(repo)
		repo.On("Create", ctx, mock.AnythingOfType("*models.Post")).Return(nil)

		post, err := svc.CreatePost(ctx, CreatePostInput{UserID: 1, Title: "t", Content: "c"})
		require.NoError(t, err)
		assert.Equal(t, uint(1), post.UserID)
		repo.AssertExpectations(t)
	})

	t.Run("validation", func(t *testing.T) {
		repo := new(mockPostRepo)
		svc := NewPostService(repo)

		for _, in := range []CreatePostInput{
			{UserID: 1, Title: "", Content: "c"},
			{UserID: 1, Title: "t", Content: ""},
		} {
			_, err := svc.CreatePost(ctx, in)
			var appErr *models.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, models.CodeValidation, appErr.Code)
		}
		repo.AssertNotCalled(t, "Create")
	})

	t.Run("store failure wraps", func(t *testing.T) {
		repo := new(mockPostRepo)
		svc := NewPostService(repo)
		repo.On("Create", ctx, mock.Anything).Return(errors.New("disk full"))

		_, err := svc.CreatePost(ctx, CreatePostInput{UserID: 1, Title: "t", Content: "c"})
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, models.CodeInternal, appErr.Code)
	})
}

func TestPostService_ToggleLike(t *testing.T) {
	ctx := context.Background()

	t.Run("not liked inserts", func(t *testing.T) {
		repo := new(mockPostRepo)
		svc := NewPostService(repo)
		repo.On("IsLiked", ctx, uint(1), uint(2)).Return(false, nil)
		repo.On("Like", ctx, uint(1), uint(2)).Return(nil)

		action, err := svc.ToggleLike(ctx, 1, 2)
		require.NoError(t, err)
		assert.Equal(t, ActionLiked, action)
		repo.AssertExpectations(t)
		repo.AssertNotCalled(t, "Unlike", ctx, uint(1), uint(2))
	})

	t.Run("liked deletes", func(t *testing.T) {
		repo := new(mockPostRepo)
		svc := NewPostService(repo)
		repo.On("IsLiked", ctx, uint(1), uint(2)).Return(true, nil)
		repo.On("Unlike", ctx, uint(1), uint(2)).Return(nil)

		action, err := svc.ToggleLike(ctx, 1, 2)
		require.NoError(t, err)
		assert.Equal(t, ActionUnliked, action)
		repo.AssertExpectations(t)
	})

	t.Run("store failure", func(t *testing.T) {
		repo := new(mockPostRepo)
		svc := NewPostService(repo)
		repo.On("IsLiked", ctx, uint(1), uint(2)).Return(false, errors.New("down"))

		_, err := svc.ToggleLike(ctx, 1, 2)
		assert.Error(t, err)
	})
}

func TestPostService_DeletePost(t *testing.T) {
	ctx := context.Background()

	t.Run("owner deletes", func(t *testing.T) {
		repo := new(mockPostRepo)
		svc := NewPostService(repo)
		repo.On("GetOwner", ctx, uint(5)).Return(uint(1), true, nil)
		repo.On("Delete", ctx, uint(5)).Return(nil)

		require.NoError(t, svc.DeletePost(ctx, 1, 5))
		repo.AssertExpectations(t)
	})

	// Missing post and foreign post must be indistinguishable to the caller.
	t.Run("not found and not owner look the same", func(t *testing.T) {
		missing := new(mockPostRepo)
		missing.On("GetOwner", ctx, uint(5)).Return(uint(0), false, nil)

		foreign := new(mockPostRepo)
		foreign.On("GetOwner", ctx, uint(5)).Return(uint(2), true, nil)

		errMissing := NewPostService(missing).DeletePost(ctx, 1, 5)
		errForeign := NewPostService(foreign).DeletePost(ctx, 1, 5)

		var appA, appB *models.AppError
		require.ErrorAs(t, errMissing, &appA)
		require.ErrorAs(t, errForeign, &appB)
		assert.Equal(t, models.CodeForbidden, appA.Code)
		assert.Equal(t, appA.Code, appB.Code)
		assert.Equal(t, appA.Message, appB.Message)

		missing.AssertNotCalled(t, "Delete", ctx, uint(5))
		foreign.AssertNotCalled(t, "Delete", ctx, uint(5))
	})
}

func TestPostService_ListPosts(t *testing.T) {
	ctx := context.Background()
	repo := new(mockPostRepo)
	svc := NewPostService(repo)

	expected := []*models.Post{{ID: 1, Title: "a"}}
	repo.On("List", ctx, uint(3)).Return(expected, nil)

	posts, err := svc.ListPosts(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, expected, posts)
}

func TestPostService_ListUserPosts(t *testing.T) {
	ctx := context.Background()
	repo := new(mockPostRepo)
	svc := NewPostService(repo)

	// Profile listing is the user's own posts viewed as themselves.
	repo.On("ListByUser", ctx, uint(3), uint(3)).Return([]*models.Post{}, nil)

	_, err := svc.ListUserPosts(ctx, 3)
	require.NoError(t, err)
	repo.AssertExpectations(t)
}
