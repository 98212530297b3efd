// Package router wires the OpenChat HTTP API onto the domain registry.
// It owns request decoding, response encoding and the mapping of domain
// failures onto HTTP statuses; the domain layer knows nothing about HTTP.
package router

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/thoas/go-funk"

	"github.com/patric-chuzhbe/openchat/internal/chat"
	"github.com/patric-chuzhbe/openchat/internal/gzippedhttp"
	"github.com/patric-chuzhbe/openchat/internal/logger"
	"github.com/patric-chuzhbe/openchat/internal/models"
)

type openChatSystem interface {
	RegisterUser(name, password, about string) (*chat.User, error)
	LoginUser(name, password string) (*chat.User, error)
	PublishPost(userID, text string) (*chat.Post, error)
	TimelineFor(userID string) ([]*chat.Post, error)
	WallFor(userID string) ([]*chat.Post, error)
	Follow(followerID, followeeID string) (*chat.User, error)
	Users() []*chat.User
	FolloweesFor(userID string) ([]*chat.User, error)
}

// Router holds the handlers of the OpenChat HTTP API.
type Router struct {
	system openChatSystem
}

// New builds the chi mux with every OpenChat route mounted under
// /openchat plus the logging and gzip middleware.
func New(system openChatSystem) *chi.Mux {
	theRouter := &Router{system: system}

	router := chi.NewRouter()
	router.Use(
		logger.WithLoggingHTTPMiddleware,
		gzippedhttp.UngzipRequest,
		gzippedhttp.GzipResponse,
	)

	router.Route(`/openchat`, func(r chi.Router) {
		r.Get(`/`, theRouter.GetStatus)
		r.Post(`/registration`, theRouter.PostRegistration)
		r.Post(`/login`, theRouter.PostLogin)
		r.Get(`/users`, theRouter.GetUsers)
		r.Post(`/users/{userId}/posts`, theRouter.PostUserPosts)
		r.Get(`/users/{userId}/timeline`, theRouter.GetUserTimeline)
		r.Get(`/users/{userId}/wall`, theRouter.GetUserWall)
		r.Post(`/users/{followerId}/follow`, theRouter.PostUserFollow)
		r.Get(`/users/{userId}/followees`, theRouter.GetUserFollowees)
	})

	return router
}

// GetStatus reports that the service is up.
func (rt *Router) GetStatus(res http.ResponseWriter, req *http.Request) {
	rt.writeJSON(res, http.StatusOK, models.StatusResponse{Status: "Up"})
}

// PostRegistration registers a new user.
func (rt *Router) PostRegistration(res http.ResponseWriter, req *http.Request) {
	var request models.RegistrationRequest
	if !rt.decodeJSONBody(res, req, &request) {
		return
	}

	user, err := rt.system.RegisterUser(request.Username, request.Password, request.About)
	if err != nil {
		rt.writeDomainError(res, err)
		return
	}

	rt.writeJSON(res, http.StatusCreated, userResultFrom(user))
}

// PostLogin authenticates a user by name and password.
func (rt *Router) PostLogin(res http.ResponseWriter, req *http.Request) {
	var request models.LoginRequest
	if !rt.decodeJSONBody(res, req, &request) {
		return
	}

	user, err := rt.system.LoginUser(request.Username, request.Password)
	if err != nil {
		rt.writeDomainError(res, err)
		return
	}

	rt.writeJSON(res, http.StatusOK, userResultFrom(user))
}

// PostUserPosts publishes a post as the user from the URL.
func (rt *Router) PostUserPosts(res http.ResponseWriter, req *http.Request) {
	var request models.PublishPostRequest
	if !rt.decodeJSONBody(res, req, &request) {
		return
	}

	post, err := rt.system.PublishPost(chi.URLParam(req, "userId"), request.Text)
	if err != nil {
		rt.writeDomainError(res, err)
		return
	}

	rt.writeJSON(res, http.StatusCreated, postResultFrom(post))
}

// GetUserTimeline returns the user's own posts, most recent first.
func (rt *Router) GetUserTimeline(res http.ResponseWriter, req *http.Request) {
	posts, err := rt.system.TimelineFor(chi.URLParam(req, "userId"))
	if err != nil {
		rt.writeDomainError(res, err)
		return
	}

	rt.writeJSON(res, http.StatusOK, postResultsFrom(posts))
}

// GetUserWall returns the user's wall, most recent first.
func (rt *Router) GetUserWall(res http.ResponseWriter, req *http.Request) {
	posts, err := rt.system.WallFor(chi.URLParam(req, "userId"))
	if err != nil {
		rt.writeDomainError(res, err)
		return
	}

	rt.writeJSON(res, http.StatusOK, postResultsFrom(posts))
}

// PostUserFollow makes the user from the URL follow the user from the body.
func (rt *Router) PostUserFollow(res http.ResponseWriter, req *http.Request) {
	var request models.FollowRequest
	if !rt.decodeJSONBody(res, req, &request) {
		return
	}

	_, err := rt.system.Follow(chi.URLParam(req, "followerId"), request.FolloweeID)
	if err != nil {
		rt.writeDomainError(res, err)
		return
	}

	res.WriteHeader(http.StatusCreated)
}

// GetUsers returns every registered user in registration order.
func (rt *Router) GetUsers(res http.ResponseWriter, req *http.Request) {
	rt.writeJSON(res, http.StatusOK, userResultsFrom(rt.system.Users()))
}

// GetUserFollowees returns the users followed by the user from the URL.
func (rt *Router) GetUserFollowees(res http.ResponseWriter, req *http.Request) {
	followees, err := rt.system.FolloweesFor(chi.URLParam(req, "userId"))
	if err != nil {
		rt.writeDomainError(res, err)
		return
	}

	rt.writeJSON(res, http.StatusOK, userResultsFrom(followees))
}

func (rt *Router) decodeJSONBody(res http.ResponseWriter, req *http.Request, target interface{}) bool {
	if err := json.NewDecoder(req.Body).Decode(target); err != nil {
		http.Error(res, "Malformed request.", http.StatusBadRequest)
		return false
	}

	return true
}

// writeDomainError maps a domain failure onto the transport: business
// rule violations become a 400 with the literal message, anything else a
// generic 500 whose detail is only logged.
func (rt *Router) writeDomainError(res http.ResponseWriter, err error) {
	if chat.IsRuleViolation(err) {
		http.Error(res, err.Error(), http.StatusBadRequest)
		return
	}

	logger.Log.Errorln("unexpected error from the domain layer:", err)
	http.Error(res, "Internal server error.", http.StatusInternalServerError)
}

func (rt *Router) writeJSON(res http.ResponseWriter, status int, value interface{}) {
	res.Header().Set("Content-Type", "application/json")
	res.WriteHeader(status)

	if err := json.NewEncoder(res).Encode(value); err != nil {
		logger.Log.Errorln("writing the response body:", err)
	}
}

func userResultFrom(user *chat.User) models.UserResult {
	return models.UserResult{
		UserID:   user.ID(),
		Username: user.Name(),
		About:    user.About(),
	}
}

func userResultsFrom(users []*chat.User) []models.UserResult {
	return funk.Map(users, userResultFrom).([]models.UserResult)
}

func postResultFrom(post *chat.Post) models.PostResult {
	return models.PostResult{
		PostID:          post.ID(),
		UserID:          post.Publisher().ID(),
		Text:            post.Text(),
		PublicationTime: post.PublicationTime(),
	}
}

func postResultsFrom(posts []*chat.Post) []models.PostResult {
	return funk.Map(posts, postResultFrom).([]models.PostResult)
}
