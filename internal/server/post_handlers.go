package server

import (
	"fmt"

	"moodbook/internal/models"
	"moodbook/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreatePost handles POST /create_post
func (s *Server) CreatePost(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Title and content are required"))
	}

	if _, err := s.postService.CreatePost(c.Context(), service.CreatePostInput{
		UserID:  userID,
		Title:   req.Title,
		Content: req.Content,
	}); err != nil {
		return respondAppError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Post created successfully",
	})
}

// GetPosts handles GET /posts. Anyone may browse; a logged-in caller
// additionally sees which posts they liked.
func (s *Server) GetPosts(c *fiber.Ctx) error {
	var viewerID uint
	if data, ok := s.optionalSession(c); ok {
		viewerID = data.UserID
	}

	posts, err := s.postService.ListPosts(c.Context(), viewerID)
	if err != nil {
		return respondAppError(c, err)
	}
	if posts == nil {
		posts = []*models.Post{}
	}

	return c.JSON(fiber.Map{
		"success": true,
		"posts":   posts,
	})
}

// ToggleLike handles POST /like/:postId
// @Summary Toggle the caller's like on a post
// @Produce json
// @Success 200 {object} object{success=bool,message=string,action=string}
// @Router /like/{postId} [post]
func (s *Server) ToggleLike(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	postID, err := s.parseID(c, "postId")
	if err != nil {
		return nil
	}

	action, err := s.postService.ToggleLike(c.Context(), userID, postID)
	if err != nil {
		return respondAppError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": fmt.Sprintf("Post %s successfully", action),
		"action":  action,
	})
}

// GetProfile handles GET /api/profile: the caller's own posts, annotated the
// same way as the public listing.
func (s *Server) GetProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	posts, err := s.postService.ListUserPosts(c.Context(), userID)
	if err != nil {
		return respondAppError(c, err)
	}
	if posts == nil {
		posts = []*models.Post{}
	}

	return c.JSON(fiber.Map{
		"success": true,
		"posts":   posts,
	})
}

// DeletePost handles DELETE /delete_post/:postId
func (s *Server) DeletePost(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	postID, err := s.parseID(c, "postId")
	if err != nil {
		return nil
	}

	if err := s.postService.DeletePost(c.Context(), userID, postID); err != nil {
		return respondAppError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Post deleted successfully",
	})
}
