package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"inkwell/app/middleware"
	"inkwell/app/repositories"
	"inkwell/app/services"
)

// LikeController handles like/unlike requests
type LikeController struct {
	likeService *services.LikeService
}

// NewLikeController creates a new LikeController
func NewLikeController(likeService *services.LikeService) *LikeController {
	return &LikeController{likeService: likeService}
}

// Toggle flips the current user's like on a post, responding with JSON
func (lc *LikeController) Toggle(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFrom(r.Context())
	if user == nil {
		sendJSONError(w, "Login required", http.StatusForbidden)
		return
	}

	if err := r.ParseForm(); err != nil {
		sendJSONError(w, "Failed to parse form", http.StatusBadRequest)
		return
	}
	id, err := strconv.Atoi(r.FormValue("post_id"))
	if err != nil {
		sendJSONError(w, "Invalid post ID", http.StatusBadRequest)
		return
	}
	liked := r.FormValue("liked") == "true"

	counter, err := lc.likeService.Toggle(id, user.Name, liked)
	switch {
	case err == nil:
		sendJSON(w, map[string]int{"likes_counter": counter})
	case errors.Is(err, repositories.ErrNotFound):
		sendJSONError(w, "Post not found", http.StatusNotFound)
	default:
		sendJSONError(w, "Failed to toggle like", http.StatusInternalServerError)
	}
}
