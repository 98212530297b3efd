// Package models defines the JSON request and response shapes of the
// OpenChat HTTP API.
package models

import "time"

// RegistrationRequest is the body of POST /openchat/registration.
type RegistrationRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	About    string `json:"about"`
}

// LoginRequest is the body of POST /openchat/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserResult is the public representation of a user. The password never
// appears here.
type UserResult struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	About    string `json:"about"`
}

// PublishPostRequest is the body of POST /openchat/users/{userId}/posts.
type PublishPostRequest struct {
	Text string `json:"text"`
}

// PostResult is the public representation of a post. PublicationTime
// serializes in RFC 3339 form.
type PostResult struct {
	PostID          string    `json:"postId"`
	UserID          string    `json:"userId"`
	Text            string    `json:"text"`
	PublicationTime time.Time `json:"publicationTime"`
}

// FollowRequest is the body of POST /openchat/users/{followerId}/follow.
type FollowRequest struct {
	FolloweeID string `json:"followeeId"`
}

// StatusResponse is the body of GET /openchat/.
type StatusResponse struct {
	Status string `json:"status"`
}
