// Package chat implements the in-memory OpenChat domain model: users,
// their credentials, published posts and the follow graph. The System
// type is the registry every external caller goes through.
package chat

import (
	"sync"

	"github.com/patric-chuzhbe/openchat/internal/clock"
)

// System is the registry of all registered users and their credentials.
// It enforces name uniqueness and membership, and it is the only
// component allowed to read the clock.
//
// A single mutex spans each logical operation so that check-then-act
// sequences (uniqueness on register, existence on publish/follow) stay
// atomic under concurrent requests.
type System struct {
	mu          sync.Mutex
	clock       clock.Clock
	users       []*User
	credentials map[string]*Credential
}

// NewSystem creates an empty registry stamping posts with theClock.
func NewSystem(theClock clock.Clock) *System {
	return &System{
		clock:       theClock,
		credentials: map[string]*Credential{},
	}
}

// RegisterUser creates a user together with its credential and adds both
// to the registry. The checks run in a fixed order, pinned by tests:
// name uniqueness first, then password validation, then name validation.
func (s *System) RegisterUser(name, password, about string) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.userNamed(name) != nil {
		return nil, ErrUsernameAlreadyInUse
	}

	credential, err := NewCredential(password)
	if err != nil {
		return nil, err
	}

	user, err := NewUser(name, about)
	if err != nil {
		return nil, err
	}

	s.users = append(s.users, user)
	s.credentials[user.id] = credential

	return user, nil
}

// LoginUser returns the registered user matching both name and password.
// The error is the same whether the name is unknown or the password is
// wrong, so login failures leak no information about registered names.
func (s *System) LoginUser(name, password string) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if user.Named(name) && s.credentials[user.id].Matches(password) {
			return user, nil
		}
	}

	return nil, ErrInvalidCredentials
}

// UserIdentifiedBy looks a user up by id. The second return value is
// false when no registered user carries the id.
func (s *System) UserIdentifiedBy(id string) (*User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := s.registeredUser(id)

	return user, user != nil
}

// PublishPost publishes text as the user identified by userID, stamping
// it with the registry clock.
func (s *System) PublishPost(userID, text string) (*Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := s.registeredUser(userID)
	if user == nil {
		return nil, ErrUserDoesNotExist
	}

	return user.Publish(text, s.clock.Now()), nil
}

// TimelineFor returns the timeline of the user identified by userID.
func (s *System) TimelineFor(userID string) ([]*Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := s.registeredUser(userID)
	if user == nil {
		return nil, ErrUserDoesNotExist
	}

	return user.Timeline(), nil
}

// WallFor returns the wall of the user identified by userID.
func (s *System) WallFor(userID string) ([]*Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := s.registeredUser(userID)
	if user == nil {
		return nil, ErrUserDoesNotExist
	}

	return user.Wall(), nil
}

// Follow makes the follower follow the followee and returns the follower.
// Both sides must be registered; when either is missing the caller gets a
// single combined error.
func (s *System) Follow(followerID, followeeID string) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	follower := s.registeredUser(followerID)
	followee := s.registeredUser(followeeID)
	if follower == nil || followee == nil {
		return nil, ErrFollowerOrFolloweeDoesNotExist
	}

	return follower.Follow(followee), nil
}

// Users returns all registered users in registration order.
func (s *System) Users() []*User {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := make([]*User, len(s.users))
	copy(users, s.users)

	return users
}

// FolloweesFor returns the followees of the user identified by userID.
func (s *System) FolloweesFor(userID string) ([]*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := s.registeredUser(userID)
	if user == nil {
		return nil, ErrUserDoesNotExist
	}

	return user.Followees(), nil
}

// registeredUser scans the registry by id. Membership is by id, not by
// object identity, so a User built outside the registry is unregistered
// no matter how equal it looks. Callers must hold s.mu.
func (s *System) registeredUser(id string) *User {
	for _, user := range s.users {
		if user.IdentifiedBy(id) {
			return user
		}
	}

	return nil
}

func (s *System) userNamed(name string) *User {
	for _, user := range s.users {
		if user.Named(name) {
			return user
		}
	}

	return nil
}
