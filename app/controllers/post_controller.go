package controllers

import (
	"errors"
	"html/template"
	"net/http"
	"net/url"
	"strconv"

	"inkwell/app/middleware"
	"inkwell/app/models"
	"inkwell/app/repositories"
	"inkwell/app/services"

	"github.com/gorilla/mux"
)

// PostController handles HTTP requests for blog posts
type PostController struct {
	postService *services.PostService
	templates   map[string]*template.Template
}

// NewPostController creates a new PostController
func NewPostController(postService *services.PostService, templates map[string]*template.Template) *PostController {
	return &PostController{
		postService: postService,
		templates:   templates,
	}
}

// Front handles the blog front page, posts newest first
func (pc *PostController) Front(w http.ResponseWriter, r *http.Request) {
	posts, err := pc.postService.ListPosts()
	if err != nil {
		http.Error(w, "Failed to fetch posts", http.StatusInternalServerError)
		return
	}

	data := struct {
		CurrentUser *models.User
		Posts       []*models.Post
	}{
		CurrentUser: middleware.UserFrom(r.Context()),
		Posts:       posts,
	}
	pc.render(w, "front", data)
}

// Show handles the permalink page for a single post
func (pc *PostController) Show(w http.ResponseWriter, r *http.Request) {
	post, ok := pc.postFromPath(w, r)
	if !ok {
		return
	}

	data := struct {
		CurrentUser *models.User
		Post        *models.Post
	}{
		CurrentUser: middleware.UserFrom(r.Context()),
		Post:        post,
	}
	pc.render(w, "permalink", data)
}

type postForm struct {
	CurrentUser *models.User
	PostID      int
	Subject     string
	Content     string
	Error       string
}

// NewForm displays the form for creating a new post
func (pc *PostController) NewForm(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFrom(r.Context())
	if user == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	pc.render(w, "newpost", postForm{CurrentUser: user})
}

// Create handles new post form submissions
func (pc *PostController) Create(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFrom(r.Context())
	if user == nil {
		http.Redirect(w, r, "/blog", http.StatusSeeOther)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form", http.StatusBadRequest)
		return
	}
	subject := r.FormValue("subject")
	content := r.FormValue("content")

	post, err := pc.postService.CreatePost(subject, content, user)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			pc.render(w, "newpost", postForm{
				CurrentUser: user,
				Subject:     subject,
				Content:     content,
				Error:       "subject and content, please!",
			})
			return
		}
		http.Error(w, "Failed to create post", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/blog/"+strconv.Itoa(post.ID), http.StatusSeeOther)
}

// EditForm displays the form for editing an existing post
func (pc *PostController) EditForm(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFrom(r.Context())
	if user == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	post, ok := pc.postFromPath(w, r)
	if !ok {
		return
	}

	if post.PosterID != user.ID {
		pc.redirectNotAuth(w, r, user)
		return
	}

	pc.render(w, "editpost", postForm{
		CurrentUser: user,
		PostID:      post.ID,
		Subject:     post.Subject,
		Content:     post.Content,
	})
}

// Update handles edit post form submissions
func (pc *PostController) Update(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFrom(r.Context())
	if user == nil {
		http.Redirect(w, r, "/blog", http.StatusSeeOther)
		return
	}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid post ID", http.StatusBadRequest)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form", http.StatusBadRequest)
		return
	}
	subject := r.FormValue("subject")
	content := r.FormValue("content")

	post, err := pc.postService.UpdatePost(id, subject, content, user)
	switch {
	case err == nil:
		http.Redirect(w, r, "/blog/"+strconv.Itoa(post.ID), http.StatusSeeOther)
	case errors.Is(err, repositories.ErrNotFound):
		http.NotFound(w, r)
	case errors.Is(err, services.ErrForbidden):
		pc.redirectNotAuth(w, r, user)
	case errors.Is(err, services.ErrValidation):
		pc.render(w, "editpost", postForm{
			CurrentUser: user,
			PostID:      id,
			Subject:     subject,
			Content:     content,
			Error:       "subject and content, please!",
		})
	default:
		http.Error(w, "Failed to update post", http.StatusInternalServerError)
	}
}

// Delete handles post deletion, responding with JSON
func (pc *PostController) Delete(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFrom(r.Context())
	if user == nil {
		sendJSONError(w, "Login required", http.StatusForbidden)
		return
	}

	if err := r.ParseForm(); err != nil {
		sendJSONError(w, "Failed to parse form", http.StatusBadRequest)
		return
	}
	postID := r.FormValue("post_id")
	id, err := strconv.Atoi(postID)
	if err != nil {
		sendJSONError(w, "Invalid post ID", http.StatusBadRequest)
		return
	}

	err = pc.postService.DeletePost(id, user)
	switch {
	case err == nil:
		sendJSON(w, map[string]string{"deleted": postID})
	case errors.Is(err, repositories.ErrNotFound):
		sendJSONError(w, "Post not found", http.StatusNotFound)
	case errors.Is(err, services.ErrForbidden):
		sendJSONError(w, "Only the poster may delete this post", http.StatusForbidden)
	default:
		sendJSONError(w, "Failed to delete post", http.StatusInternalServerError)
	}
}

func (pc *PostController) postFromPath(w http.ResponseWriter, r *http.Request) (*models.Post, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid post ID", http.StatusBadRequest)
		return nil, false
	}

	post, err := pc.postService.GetPost(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			http.NotFound(w, r)
		} else {
			http.Error(w, "Failed to fetch post", http.StatusInternalServerError)
		}
		return nil, false
	}
	return post, true
}

func (pc *PostController) redirectNotAuth(w http.ResponseWriter, r *http.Request, user *models.User) {
	http.Redirect(w, r, "/blog/notauth?username="+url.QueryEscape(user.Name), http.StatusSeeOther)
}

func (pc *PostController) render(w http.ResponseWriter, page string, data interface{}) {
	if err := pc.templates[page].ExecuteTemplate(w, "layout", data); err != nil {
		http.Error(w, "Template error: "+err.Error(), http.StatusInternalServerError)
	}
}
