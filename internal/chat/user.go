package chat

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// User aggregates a registered account: identity, profile, the posts it
// published and the users it follows. Identity and profile are immutable;
// the collections only ever grow, through Publish and Follow.
type User struct {
	id        string
	name      string
	about     string
	posts     []*Post
	followees []*User
}

// NewUser creates a user with a fresh unique id. The name must contain at
// least one non-whitespace character; about may be empty.
func NewUser(name, about string) (*User, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyUserName
	}

	return &User{
		id:    uuid.NewString(),
		name:  name,
		about: about,
	}, nil
}

// ID returns the user's unique identifier in canonical UUID form.
func (u *User) ID() string {
	return u.id
}

// Name returns the user name.
func (u *User) Name() string {
	return u.name
}

// About returns the free-text profile description.
func (u *User) About() string {
	return u.about
}

// Publish appends a new post with the given text and publication time and
// returns it. There is no validation on text: publishing the empty string
// succeeds.
func (u *User) Publish(text string, publicationTime time.Time) *Post {
	post := newPost(u, text, publicationTime)
	u.posts = append(u.posts, post)

	return post
}

// Follow adds followee to the user's followee set. Following the same user
// twice is a no-op, and following oneself behaves like any other follow.
// The user itself is returned so callers can chain.
func (u *User) Follow(followee *User) *User {
	for _, existing := range u.followees {
		if existing.IdentifiedBy(followee.id) {
			return u
		}
	}

	u.followees = append(u.followees, followee)

	return u
}

// Timeline returns every post the user published, most recent first.
// Posts sharing the same publication time keep their publication order,
// earlier post first.
func (u *User) Timeline() []*Post {
	timeline := make([]*Post, len(u.posts))
	copy(timeline, u.posts)

	sort.SliceStable(timeline, func(i, j int) bool {
		return timeline[i].publicationTime.After(timeline[j].publicationTime)
	})

	return timeline
}

// Wall currently returns exactly the user's own timeline. Aggregating the
// followees' posts into the wall is still an open product decision, so the
// observed behavior is kept as is.
func (u *User) Wall() []*Post {
	return u.Timeline()
}

// Followees returns a copy of the followee list in follow order.
func (u *User) Followees() []*User {
	followees := make([]*User, len(u.followees))
	copy(followees, u.followees)

	return followees
}

// FolloweesCount returns the size of the followee set.
func (u *User) FolloweesCount() int {
	return len(u.followees)
}

// IdentifiedBy reports whether the user has the given id.
func (u *User) IdentifiedBy(id string) bool {
	return u.id == id
}

// Named reports whether the user has exactly the given name.
func (u *User) Named(name string) bool {
	return u.name == name
}

// DescribedBy reports whether the user's about text equals about.
func (u *User) DescribedBy(about string) bool {
	return u.about == about
}
