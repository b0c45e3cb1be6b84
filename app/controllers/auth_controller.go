package controllers

import (
	"errors"
	"html/template"
	"net/http"
	"regexp"
	"strconv"

	"inkwell/app/auth"
	"inkwell/app/middleware"
	"inkwell/app/models"
	"inkwell/app/services"
)

// Sign-up form input rules.
var (
	userRE  = regexp.MustCompile(`^[a-zA-Z0-9_-]{3,20}$`)
	passRE  = regexp.MustCompile(`^.{3,20}$`)
	emailRE = regexp.MustCompile(`^[\S]+@[\S]+\.[\S]+$`)
)

func validUsername(username string) bool {
	return userRE.MatchString(username)
}

func validPassword(password string) bool {
	return passRE.MatchString(password)
}

func validEmail(email string) bool {
	return email == "" || emailRE.MatchString(email)
}

// AuthController handles sign-up, login and logout
type AuthController struct {
	userService *services.UserService
	codec       *auth.CookieCodec
	templates   map[string]*template.Template
}

// NewAuthController creates a new AuthController
func NewAuthController(userService *services.UserService, codec *auth.CookieCodec, templates map[string]*template.Template) *AuthController {
	return &AuthController{
		userService: userService,
		codec:       codec,
		templates:   templates,
	}
}

type signupForm struct {
	CurrentUser   *models.User
	Username      string
	Email         string
	ErrorUsername string
	ErrorPassword string
	ErrorVerify   string
	ErrorEmail    string
}

// SignupForm displays the sign-up form
func (ac *AuthController) SignupForm(w http.ResponseWriter, r *http.Request) {
	ac.render(w, "signup-form", signupForm{})
}

// Signup handles sign-up form submissions
func (ac *AuthController) Signup(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form", http.StatusBadRequest)
		return
	}

	username := r.FormValue("username")
	password := r.FormValue("password")
	verify := r.FormValue("verify")
	email := r.FormValue("email")

	form := signupForm{Username: username, Email: email}
	haveError := false

	if !validUsername(username) {
		form.ErrorUsername = "That's not a valid username"
		haveError = true
	}
	if !validPassword(password) {
		form.ErrorPassword = "That wasn't a valid password"
		haveError = true
	} else if password != verify {
		form.ErrorVerify = "Your passwords didn't match"
		haveError = true
	}
	if !validEmail(email) {
		form.ErrorEmail = "That's not a valid email"
		haveError = true
	}

	if haveError {
		ac.render(w, "signup-form", form)
		return
	}

	user, err := ac.userService.Register(username, password, email)
	if err != nil {
		if errors.Is(err, services.ErrDuplicateUser) {
			form.ErrorUsername = "That user already exists."
			ac.render(w, "signup-form", form)
			return
		}
		http.Error(w, "Failed to register", http.StatusInternalServerError)
		return
	}

	ac.signIn(w, user)
	http.Redirect(w, r, "/blog", http.StatusSeeOther)
}

type loginForm struct {
	CurrentUser *models.User
	Username    string
	Error       string
}

// LoginForm displays the login form
func (ac *AuthController) LoginForm(w http.ResponseWriter, r *http.Request) {
	ac.render(w, "login-form", loginForm{})
}

// Login handles login form submissions
func (ac *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form", http.StatusBadRequest)
		return
	}

	username := r.FormValue("username")
	password := r.FormValue("password")

	user, err := ac.userService.Authenticate(username, password)
	if err == nil {
		ac.signIn(w, user)
		http.Redirect(w, r, "/blog", http.StatusSeeOther)
		return
	}
	if !errors.Is(err, services.ErrInvalidCredentials) {
		http.Error(w, "Failed to log in", http.StatusInternalServerError)
		return
	}

	// The form distinguishes an unknown name from a wrong password. This
	// is a deliberate UI choice inherited from the original app, not an
	// enumeration-safe one.
	msg := "Invalid login"
	if _, lookupErr := ac.userService.ByName(username); lookupErr != nil {
		msg = "User not found, please sign up"
	}
	ac.render(w, "login-form", loginForm{Username: username, Error: msg})
}

// Logout clears the session cookie
func (ac *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	ac.signOut(w)
	http.Redirect(w, r, "/blog", http.StatusSeeOther)
}

type notAuthPage struct {
	CurrentUser *models.User
	Username    string
}

// NotAuth displays the not-authorized landing page
func (ac *AuthController) NotAuth(w http.ResponseWriter, r *http.Request) {
	username := r.URL.Query().Get("username")
	if !validUsername(username) {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	ac.render(w, "notauth", notAuthPage{CurrentUser: middleware.UserFrom(r.Context()), Username: username})
}

func (ac *AuthController) signIn(w http.ResponseWriter, user *models.User) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    ac.codec.Encode(strconv.Itoa(user.ID)),
		Path:     "/",
		HttpOnly: true,
	})
}

func (ac *AuthController) signOut(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
	})
}

func (ac *AuthController) render(w http.ResponseWriter, page string, data interface{}) {
	if err := ac.templates[page].ExecuteTemplate(w, "layout", data); err != nil {
		http.Error(w, "Template error: "+err.Error(), http.StatusInternalServerError)
	}
}
