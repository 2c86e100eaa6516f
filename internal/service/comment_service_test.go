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

type mockCommentRepo struct {
	mock.Mock
}

func (m *mockCommentRepo) Create(ctx context.Context, comment *models.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *mockCommentRepo) ListByPost(ctx context.Context, postID uint) ([]*models.Comment, error) {
	args := m.Called(ctx, postID)
	comments, _ := args.Get(0).([]*models.Comment)
	return comments, args.Error(1)
}

func TestCommentService_AddComment(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo := new(mockCommentRepo)
		svc := NewCommentService(repo)
		repo.On("Create", ctx, mock.AnythingOfType("*models.Comment")).Return(nil)

		comment, err := svc.AddComment(ctx, AddCommentInput{UserID: 1, PostID: 2, Content: "hi"})
		require.NoError(t, err)
		assert.Equal(t, uint(2), comment.PostID)
		repo.AssertExpectations(t)
	})

	t.Run("validation", func(t *testing.T) {
		repo := new(mockCommentRepo)
		svc := NewCommentService(repo)

		for _, in := range []AddCommentInput{
			{UserID: 1, PostID: 0, Content: "hi"},
			{UserID: 1, PostID: 2, Content: ""},
		} {
			_, err := svc.AddComment(ctx, in)
			var appErr *models.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, models.CodeValidation, appErr.Code)
			assert.Equal(t, "Post ID and content are required", appErr.Message)
		}
		repo.AssertNotCalled(t, "Create")
	})

	t.Run("store failure wraps", func(t *testing.T) {
		repo := new(mockCommentRepo)
		svc := NewCommentService(repo)
		repo.On("Create", ctx, mock.Anything).Return(errors.New("fk violation"))

		_, err := svc.AddComment(ctx, AddCommentInput{UserID: 1, PostID: 404, Content: "hi"})
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, models.CodeInternal, appErr.Code)
	})
}

func TestCommentService_ListComments(t *testing.T) {
	ctx := context.Background()
	repo := new(mockCommentRepo)
	svc := NewCommentService(repo)

	expected := []*models.Comment{{ID: 1, Content: "hi"}}
	repo.On("ListByPost", ctx, uint(7)).Return(expected, nil)

	comments, err := svc.ListComments(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, expected, comments)
}
