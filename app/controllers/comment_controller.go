package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"inkwell/app/middleware"
	"inkwell/app/repositories"
	"inkwell/app/services"
)

// CommentController handles HTTP requests for comments
type CommentController struct {
	commentService *services.CommentService
}

// NewCommentController creates a new CommentController
func NewCommentController(commentService *services.CommentService) *CommentController {
	return &CommentController{commentService: commentService}
}

// Create appends a comment to a post, responding with JSON
func (cc *CommentController) Create(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFrom(r.Context())
	if user == nil {
		sendJSONError(w, "Login required", http.StatusForbidden)
		return
	}

	if err := r.ParseForm(); err != nil {
		sendJSONError(w, "Failed to parse form", http.StatusBadRequest)
		return
	}
	text := r.FormValue("comment")
	id, err := strconv.Atoi(r.FormValue("post_id"))
	if err != nil {
		sendJSONError(w, "Invalid post ID", http.StatusBadRequest)
		return
	}

	comment, err := cc.commentService.AddComment(id, text, user)
	switch {
	case err == nil:
		sendJSON(w, map[string]string{"comment": comment.Comment})
	case errors.Is(err, services.ErrValidation):
		sendJSONError(w, "Comment cannot be empty", http.StatusBadRequest)
	case errors.Is(err, repositories.ErrNotFound):
		sendJSONError(w, "Post not found", http.StatusNotFound)
	default:
		sendJSONError(w, "Failed to add comment", http.StatusInternalServerError)
	}
}
