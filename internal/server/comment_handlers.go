package server

import (
	"moodbook/internal/models"
	"moodbook/internal/service"

	"github.com/gofiber/fiber/v2"
)

// AddComment handles POST /comment
func (s *Server) AddComment(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req struct {
		PostID  uint   `json:"post_id"`
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Post ID and content are required"))
	}

	if _, err := s.commentService.AddComment(c.Context(), service.AddCommentInput{
		UserID:  userID,
		PostID:  req.PostID,
		Content: req.Content,
	}); err != nil {
		return respondAppError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Comment added successfully",
	})
}

// GetComments handles GET /comments/:postId (public)
func (s *Server) GetComments(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "postId")
	if err != nil {
		return nil
	}

	comments, err := s.commentService.ListComments(c.Context(), postID)
	if err != nil {
		return respondAppError(c, err)
	}
	if comments == nil {
		comments = []*models.Comment{}
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"comments": comments,
	})
}
