package endpoint

import (
	"testing"

	"github.com/broady/srapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tweetParams struct {
	Username string `schema:"username" validate:"required,max=15"`
	Comment  string `schema:"comment" validate:"required,max=1000"`
	Likes    int    `schema:"likes,omitempty" validate:"gte=0"`
	Theme    string `schema:"theme,omitempty" validate:"omitempty,oneof=light dim dark"`
}

var tweet = New("canvas/misc/tweet",
	Param("username"),
	Param("comment"),
	Param("likes", Optional()),
	Param("theme", Optional()),
)

func TestBindStruct(t *testing.T) {
	b, err := tweet.BindStruct(&tweetParams{Username: "ana", Comment: "hi there", Likes: 3})
	require.NoError(t, err)
	assert.Equal(t, "canvas/misc/tweet?username=ana&comment=hi+there&likes=3", b.URL())

	var back tweetParams
	require.NoError(t, b.Decode(&back))
	assert.Equal(t, tweetParams{Username: "ana", Comment: "hi there", Likes: 3}, back)
}

func TestBindStruct_Validation(t *testing.T) {
	_, err := tweet.BindStruct(&tweetParams{Username: "a-name-that-is-too-long", Comment: "c", Theme: "neon"})
	require.Error(t, err)

	var e *srapi.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, srapi.CodeInvalidValue, e.Code)
	assert.Equal(t, "must be at most 15 characters", e.Details["Username"])
	assert.Equal(t, "must be one of: light dim dark", e.Details["Theme"])
}

func TestBindStruct_NotAStruct(t *testing.T) {
	_, err := tweet.BindStruct("nope")
	assert.True(t, srapi.IsCode(err, srapi.CodeConfiguration), "got %v", err)
}
