// Package mocksystem provides a testify-based mock of the domain registry
// as the router consumes it. Router tests use it to simulate failures the
// real in-memory registry never produces.
package mocksystem

import (
	"github.com/stretchr/testify/mock"

	"github.com/patric-chuzhbe/openchat/internal/chat"
)

// SystemMock is a testify mock implementing the router's view of the
// OpenChat registry.
type SystemMock struct {
	mock.Mock
}

// RegisterUser mocks user registration.
func (m *SystemMock) RegisterUser(name, password, about string) (*chat.User, error) {
	args := m.Called(name, password, about)
	user, _ := args.Get(0).(*chat.User)

	return user, args.Error(1)
}

// LoginUser mocks credential verification.
func (m *SystemMock) LoginUser(name, password string) (*chat.User, error) {
	args := m.Called(name, password)
	user, _ := args.Get(0).(*chat.User)

	return user, args.Error(1)
}

// PublishPost mocks publishing a post.
func (m *SystemMock) PublishPost(userID, text string) (*chat.Post, error) {
	args := m.Called(userID, text)
	post, _ := args.Get(0).(*chat.Post)

	return post, args.Error(1)
}

// TimelineFor mocks the timeline query.
func (m *SystemMock) TimelineFor(userID string) ([]*chat.Post, error) {
	args := m.Called(userID)
	posts, _ := args.Get(0).([]*chat.Post)

	return posts, args.Error(1)
}

// WallFor mocks the wall query.
func (m *SystemMock) WallFor(userID string) ([]*chat.Post, error) {
	args := m.Called(userID)
	posts, _ := args.Get(0).([]*chat.Post)

	return posts, args.Error(1)
}

// Follow mocks the follow operation.
func (m *SystemMock) Follow(followerID, followeeID string) (*chat.User, error) {
	args := m.Called(followerID, followeeID)
	user, _ := args.Get(0).(*chat.User)

	return user, args.Error(1)
}

// Users mocks the registered users query.
func (m *SystemMock) Users() []*chat.User {
	args := m.Called()
	users, _ := args.Get(0).([]*chat.User)

	return users
}

// FolloweesFor mocks the followees query.
func (m *SystemMock) FolloweesFor(userID string) ([]*chat.User, error) {
	args := m.Called(userID)
	users, _ := args.Get(0).([]*chat.User)

	return users, args.Error(1)
}
