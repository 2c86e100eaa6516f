// Package seed provides helpers to create development and demo data.
// Not used by the request path.
package seed

import (
	"fmt"
	"math/rand"

	"moodbook/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options controls how much data Run generates.
type Options struct {
	Users           int
	PostsPerUser    int
	CommentsPerPost int
	// LikeProbability is the chance that any given user likes any given post.
	LikeProbability float64
	// Password is the plaintext password shared by all seeded users.
	Password string
}

// DefaultOptions returns a small but lively dataset.
func DefaultOptions() Options {
	return Options{
		Users:           10,
		PostsPerUser:    3,
		CommentsPerPost: 2,
		LikeProbability: 0.3,
		Password:        "password123",
	}
}

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db *gorm.DB
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	return &Factory{db: db}
}

// CreateUser persists a user with fake identity data.
func (f *Factory) CreateUser(password string) (*models.User, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		FullName: gofakeit.Name(),
		Email:    gofakeit.Email(),
		Password: string(digest),
	}
	if err := f.db.Create(user).Error; err != nil {
		return nil, fmt.Errorf("seed user: %w", err)
	}
	return user, nil
}

// CreatePost persists a post owned by the given user.
func (f *Factory) CreatePost(user *models.User) (*models.Post, error) {
	post := &models.Post{
		UserID:  user.ID,
		Title:   gofakeit.Sentence(5),
		Content: gofakeit.Paragraph(1, 3, 12, " "),
	}
	if err := f.db.Create(post).Error; err != nil {
		return nil, fmt.Errorf("seed post: %w", err)
	}
	return post, nil
}

// CreateComment persists a comment by the given user on the given post.
func (f *Factory) CreateComment(user *models.User, post *models.Post) (*models.Comment, error) {
	comment := &models.Comment{
		UserID:  user.ID,
		PostID:  post.ID,
		Content: gofakeit.Sentence(10),
	}
	if err := f.db.Create(comment).Error; err != nil {
		return nil, fmt.Errorf("seed comment: %w", err)
	}
	return comment, nil
}

// LikePost records a like. The unique constraint makes repeats harmless.
func (f *Factory) LikePost(user *models.User, post *models.Post) error {
	like := &models.Like{UserID: user.ID, PostID: post.ID}
	if err := f.db.Create(like).Error; err != nil {
		return fmt.Errorf("seed like: %w", err)
	}
	return nil
}

// Run populates the database per the options.
func Run(db *gorm.DB, opts Options) error {
	gofakeit.Seed(0)
	f := NewFactory(db)

	users := make([]*models.User, 0, opts.Users)
	for i := 0; i < opts.Users; i++ {
		u, err := f.CreateUser(opts.Password)
		if err != nil {
			return err
		}
		users = append(users, u)
	}

	var posts []*models.Post
	for _, u := range users {
		for i := 0; i < opts.PostsPerUser; i++ {
			p, err := f.CreatePost(u)
			if err != nil {
				return err
			}
			posts = append(posts, p)
		}
	}

	for _, p := range posts {
		for i := 0; i < opts.CommentsPerPost; i++ {
			commenter := users[rand.Intn(len(users))]
			if _, err := f.CreateComment(commenter, p); err != nil {
				return err
			}
		}
		for _, u := range users {
			if rand.Float64() < opts.LikeProbability {
				if err := f.LikePost(u, p); err != nil {
					return err
				}
			}
		}
	}

	return nil
}
