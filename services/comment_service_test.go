package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shutterfeed/api-go/utils"
)

func TestReplyInheritsParentPost(t *testing.T) {
	db := newTestDB(t)
	svc := NewCommentService(db)
	ctx := context.Background()

	author := seedUser(t, db, "alice")
	replier := seedUser(t, db, "bob")
	post := seedPost(t, db, author)
	parent := seedComment(t, db, author, post, "first")

	reply, err := svc.Reply(ctx, parent.ID, replier.ID, "a reply")
	require.NoError(t, err)
	assert.Equal(t, post.ID, reply.PostID)
	require.NotNil(t, reply.ReplyTo)
	assert.Equal(t, parent.ID, *reply.ReplyTo)
	// The reply belongs to the replier, not the parent's author.
	assert.Equal(t, replier.ID, reply.UserID)
}

func TestReplyToDeletedParentIsNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewCommentService(db)
	ctx := context.Background()

	author := seedUser(t, db, "alice")
	post := seedPost(t, db, author)
	parent := seedComment(t, db, author, post, "first")

	require.NoError(t, svc.DeleteComment(ctx, parent.ID, author.ID))

	_, err := svc.Reply(ctx, parent.ID, author.ID, "too late")
	assert.True(t, utils.IsKind(err, utils.KindNotFound))
}

func TestRepliesSurviveParentDeletion(t *testing.T) {
	db := newTestDB(t)
	svc := NewCommentService(db)
	ctx := context.Background()

	author := seedUser(t, db, "alice")
	post := seedPost(t, db, author)
	parent := seedComment(t, db, author, post, "first")

	reply, err := svc.Reply(ctx, parent.ID, author.ID, "a reply")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteComment(ctx, parent.ID, author.ID))

	// The parent reference is only validated at creation time; existing
	// replies stay visible after the parent is soft-deleted.
	comments, err := svc.ListComments(ctx, post.ID)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, reply.ID, comments[0].ID)
}

func TestEditAnotherUsersCommentIsForbidden(t *testing.T) {
	db := newTestDB(t)
	svc := NewCommentService(db)
	ctx := context.Background()

	author := seedUser(t, db, "alice")
	other := seedUser(t, db, "bob")
	post := seedPost(t, db, author)
	comment := seedComment(t, db, author, post, "original")

	_, err := svc.UpdateComment(ctx, comment.ID, other.ID, "hijacked")
	assert.True(t, utils.IsKind(err, utils.KindForbidden))

	got, err := svc.GetComment(ctx, comment.ID)
	require.NoError(t, err)
	assert.Equal(t, "original", got.Body)
}

func TestUpdateCommentReplacesBody(t *testing.T) {
	db := newTestDB(t)
	svc := NewCommentService(db)
	ctx := context.Background()

	author := seedUser(t, db, "alice")
	post := seedPost(t, db, author)
	comment := seedComment(t, db, author, post, "original")

	updated, err := svc.UpdateComment(ctx, comment.ID, author.ID, "edited")
	require.NoError(t, err)
	assert.Equal(t, "edited", updated.Body)
}

func TestDeleteAnotherUsersCommentIsForbidden(t *testing.T) {
	db := newTestDB(t)
	svc := NewCommentService(db)
	ctx := context.Background()

	author := seedUser(t, db, "alice")
	other := seedUser(t, db, "bob")
	post := seedPost(t, db, author)
	comment := seedComment(t, db, author, post, "mine")

	err := svc.DeleteComment(ctx, comment.ID, other.ID)
	assert.True(t, utils.IsKind(err, utils.KindForbidden))
}

func TestDeleteCommentTwiceIsNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewCommentService(db)
	ctx := context.Background()

	author := seedUser(t, db, "alice")
	post := seedPost(t, db, author)
	comment := seedComment(t, db, author, post, "mine")

	require.NoError(t, svc.DeleteComment(ctx, comment.ID, author.ID))

	err := svc.DeleteComment(ctx, comment.ID, author.ID)
	assert.True(t, utils.IsKind(err, utils.KindNotFound))

	// Deleted comments are also invisible to the edit path.
	_, err = svc.UpdateComment(ctx, comment.ID, author.ID, "resurrect")
	assert.True(t, utils.IsKind(err, utils.KindNotFound))
}

func TestCreateCommentOnDeletedPostIsNotFound(t *testing.T) {
	db := newTestDB(t)
	posts := NewPostService(db, &fakeRemover{})
	svc := NewCommentService(db)
	ctx := context.Background()

	author := seedUser(t, db, "alice")
	post := seedPost(t, db, author)
	require.NoError(t, posts.DeletePost(ctx, post.ID, author.ID))

	_, err := svc.CreateComment(ctx, post.ID, author.ID, "late")
	assert.True(t, utils.IsKind(err, utils.KindNotFound))
}
