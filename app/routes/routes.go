package routes

import (
	"net/http"
	"path/filepath"

	"inkwell/app/auth"
	"inkwell/app/controllers"
	"inkwell/app/middleware"
	"inkwell/app/repositories"
	"inkwell/app/services"

	"github.com/dgraph-io/badger/v4"
	"github.com/gorilla/mux"
)

// SetupRoutes wires the application's routes against the given database.
// basePath locates the views and static directories relative to the
// working directory and is "" in production.
func SetupRoutes(db *badger.DB, sessionSecret []byte, basePath string) *mux.Router {
	userRepo := repositories.NewBadgerUserRepository(db)
	postRepo := repositories.NewBadgerPostRepository(db)

	userService := services.NewUserService(userRepo)
	postService := services.NewPostService(postRepo)
	commentService := services.NewCommentService(postRepo)
	likeService := services.NewLikeService(postRepo)

	codec := auth.NewCookieCodec(sessionSecret)
	templates := controllers.LoadTemplates(basePath)

	authController := controllers.NewAuthController(userService, codec, templates)
	postController := controllers.NewPostController(postService, templates)
	commentController := controllers.NewCommentController(commentService)
	likeController := controllers.NewLikeController(likeService)

	router := mux.NewRouter()

	// Apply global middleware
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Session(codec, userService))

	// Serve static files
	router.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.Dir(filepath.Join(basePath, "static")))))

	// Blog pages
	router.HandleFunc("/", postController.Front).Methods("GET")
	router.HandleFunc("/blog", postController.Front).Methods("GET")
	router.HandleFunc("/blog/notauth", authController.NotAuth).Methods("GET")
	router.HandleFunc("/blog/newpost", postController.NewForm).Methods("GET")
	router.HandleFunc("/blog/newpost", postController.Create).Methods("POST")
	router.HandleFunc("/blog/editpost/{id:[0-9]+}", postController.EditForm).Methods("GET")
	router.HandleFunc("/blog/editpost/{id:[0-9]+}", postController.Update).Methods("POST")
	router.HandleFunc("/blog/{id:[0-9]+}", postController.Show).Methods("GET")

	// JSON endpoints
	router.HandleFunc("/blog/newcomment", commentController.Create).Methods("POST")
	router.HandleFunc("/blog/deletepost", postController.Delete).Methods("POST")
	router.HandleFunc("/blog/like", likeController.Toggle).Methods("POST")

	// Accounts
	router.HandleFunc("/signup", authController.SignupForm).Methods("GET")
	router.HandleFunc("/signup", authController.Signup).Methods("POST")
	router.HandleFunc("/login", authController.LoginForm).Methods("GET")
	router.HandleFunc("/login", authController.Login).Methods("POST")
	router.HandleFunc("/logout", authController.Logout).Methods("GET")

	return router
}
