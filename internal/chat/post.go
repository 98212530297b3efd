package chat

import (
	"time"

	"github.com/google/uuid"
)

// Post is one published message. It is immutable: the id, text, time and
// publisher are fixed at creation.
type Post struct {
	id              string
	text            string
	publicationTime time.Time
	publisher       *User
}

func newPost(publisher *User, text string, publicationTime time.Time) *Post {
	return &Post{
		id:              uuid.NewString(),
		text:            text,
		publicationTime: publicationTime,
		publisher:       publisher,
	}
}

// ID returns the post's unique identifier in canonical UUID form.
func (p *Post) ID() string {
	return p.id
}

// Text returns the published text. Empty text is legal.
func (p *Post) Text() string {
	return p.text
}

// PublicationTime returns the instant the post was stamped with.
func (p *Post) PublicationTime() time.Time {
	return p.publicationTime
}

// Publisher returns the user who published the post.
func (p *Post) Publisher() *User {
	return p.publisher
}
