package chat

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUser(t *testing.T, name string) *User {
	t.Helper()

	user, err := NewUser(name, "About "+name)
	require.NoError(t, err)

	return user
}

func TestNewUserHasProperNameAboutAndID(t *testing.T) {
	carlos, err := NewUser("Carlos", "About Carlos")
	require.NoError(t, err)

	_, err = uuid.Parse(carlos.ID())
	assert.NoError(t, err, "the user id should be a canonical UUID")
	assert.Equal(t, "Carlos", carlos.Name())
	assert.Equal(t, "About Carlos", carlos.About())
}

func TestNewUserFailsWithEmptyName(t *testing.T) {
	for _, name := range []string{"", "   ", "\t"} {
		user, err := NewUser(name, "")

		assert.Nil(t, user)
		assert.ErrorIs(t, err, ErrEmptyUserName)
	}
}

func TestNewUserAboutDefaultsToEmptyString(t *testing.T) {
	carlos, err := NewUser("Carlos", "")
	require.NoError(t, err)

	assert.Equal(t, "", carlos.About())
	assert.True(t, carlos.DescribedBy(""))
}

func TestUserCanPublishPosts(t *testing.T) {
	carlos := newTestUser(t, "Carlos")
	publicationTime := time.Now()

	post := carlos.Publish("Nice post.", publicationTime)

	_, err := uuid.Parse(post.ID())
	assert.NoError(t, err)
	assert.Equal(t, "Nice post.", post.Text())
	assert.Equal(t, publicationTime, post.PublicationTime())
}

func TestUserIsThePublisherOfHerPost(t *testing.T) {
	carlos := newTestUser(t, "Carlos")

	post := carlos.Publish("Nice post.", time.Now())

	assert.Same(t, carlos, post.Publisher())
}

func TestUserCanPublishEmptyText(t *testing.T) {
	carlos := newTestUser(t, "Carlos")

	post := carlos.Publish("", time.Now())

	require.NotNil(t, post)
	assert.Equal(t, "", post.Text())
	assert.Len(t, carlos.Timeline(), 1)
}

func TestTimelineIsSortedMostRecentFirst(t *testing.T) {
	mark := newTestUser(t, "Mark")
	firstTime := time.Date(2018, 10, 1, 9, 0, 0, 0, time.UTC)
	secondTime := time.Date(2018, 10, 1, 11, 30, 0, 0, time.UTC)

	first := mark.Publish("Hello everyone. I'm Mark.", firstTime)
	second := mark.Publish("Anything interesting happening tonight?", secondTime)

	timeline := mark.Timeline()
	require.Len(t, timeline, 2)
	assert.Same(t, second, timeline[0])
	assert.Same(t, first, timeline[1])
}

func TestTimelineKeepsPublicationOrderForEqualTimes(t *testing.T) {
	mark := newTestUser(t, "Mark")
	at := time.Date(2018, 10, 1, 9, 0, 0, 0, time.UTC)

	first := mark.Publish("first", at)
	second := mark.Publish("second", at)
	third := mark.Publish("third", at)

	timeline := mark.Timeline()
	require.Len(t, timeline, 3)
	assert.Same(t, first, timeline[0])
	assert.Same(t, second, timeline[1])
	assert.Same(t, third, timeline[2])
}

func TestWallEqualsOwnTimeline(t *testing.T) {
	mark := newTestUser(t, "Mark")
	alice := newTestUser(t, "Alice")

	mark.Follow(alice)
	alice.Publish("Alice's post", time.Date(2018, 10, 1, 13, 25, 0, 0, time.UTC))
	mark.Publish("Mark's post", time.Date(2018, 10, 1, 9, 0, 0, 0, time.UTC))

	assert.Equal(t, mark.Timeline(), mark.Wall(), "the wall does not aggregate followees' posts")
}

func TestFollowIsIdempotent(t *testing.T) {
	mark := newTestUser(t, "Mark")
	alice := newTestUser(t, "Alice")

	mark.Follow(alice)
	mark.Follow(alice)

	assert.Equal(t, 1, mark.FolloweesCount())
}

func TestFollowReturnsTheFollower(t *testing.T) {
	mark := newTestUser(t, "Mark")
	alice := newTestUser(t, "Alice")

	assert.Same(t, mark, mark.Follow(alice))
}

func TestUserCanFollowHerself(t *testing.T) {
	mark := newTestUser(t, "Mark")

	mark.Follow(mark)
	mark.Follow(mark)

	require.Equal(t, 1, mark.FolloweesCount())
	assert.Same(t, mark, mark.Followees()[0])
}

func TestFolloweesReturnsACopy(t *testing.T) {
	mark := newTestUser(t, "Mark")
	alice := newTestUser(t, "Alice")
	bob := newTestUser(t, "Bob")

	mark.Follow(alice)

	followees := mark.Followees()
	followees[0] = bob

	assert.Same(t, alice, mark.Followees()[0])
}

func TestUserPredicates(t *testing.T) {
	carlos := newTestUser(t, "Carlos")

	assert.True(t, carlos.IdentifiedBy(carlos.ID()))
	assert.False(t, carlos.IdentifiedBy(uuid.NewString()))
	assert.True(t, carlos.Named("Carlos"))
	assert.False(t, carlos.Named("carlos"))
	assert.True(t, carlos.DescribedBy("About Carlos"))
	assert.False(t, carlos.DescribedBy("Someone else"))
}
