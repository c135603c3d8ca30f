package modio

import (
	"fmt"
	"strconv"

	"github.com/modio/go-modio/pkg/request"
)

// CommentID is the unique id of a mod comment.
type CommentID uint64

func (v CommentID) String() string {
	return strconv.FormatUint(uint64(v), 10)
}

// ModComment is one comment in the discussion of a mod profile.
type ModComment struct {
	ID             CommentID `json:"id"`
	ModID          ModID     `json:"mod_id"`
	User           User      `json:"user"`
	DateAdded      UnixTime  `json:"date_added"`
	ReplyID        CommentID `json:"reply_id"`
	ThreadPosition string    `json:"thread_position"`
	Karma          int       `json:"karma"`
	Content        string    `json:"content"`
}

// ListModCommentsRequest https://docs.mod.io/#get-mod-comments
func (a *API) ListModCommentsRequest(gameID GameID, modID ModID, opts ...ListOption) request.APIRequest[*Page[ModComment]] {
	result := &Page[ModComment]{}
	req := newListConfig(opts).apply(a.
		newRequest().
		WithResult(result).
		WithGet("games/{gameId}/mods/{modId}/comments").
		AndPathParam("gameId", gameID.String()).
		AndPathParam("modId", modID.String()),
	)
	return request.NewAPIRequest(result, req)
}

// GetModCommentRequest https://docs.mod.io/#get-mod-comment
func (a *API) GetModCommentRequest(gameID GameID, modID ModID, commentID CommentID) request.APIRequest[*ModComment] {
	result := &ModComment{}
	req := a.
		newRequest().
		WithResult(result).
		WithGet("games/{gameId}/mods/{modId}/comments/{commentId}").
		AndPathParam("gameId", gameID.String()).
		AndPathParam("modId", modID.String()).
		AndPathParam("commentId", commentID.String())
	return request.NewAPIRequest(result, req)
}

// AddModCommentRequest posts a new comment, replyID 0 starts a new thread.
// https://docs.mod.io/#add-mod-comment
func (a *API) AddModCommentRequest(gameID GameID, modID ModID, content string, replyID CommentID) request.APIRequest[*ModComment] {
	result := &ModComment{}
	if content == "" {
		return request.NewAPIRequest(result, request.NewReqDefinitionError(fmt.Errorf("comment content cannot be empty")))
	}

	fields := map[string]string{"content": content}
	if replyID != 0 {
		fields["reply_id"] = replyID.String()
	}

	req := a.
		newAuthRequest().
		WithResult(result).
		WithPost("games/{gameId}/mods/{modId}/comments").
		AndPathParam("gameId", gameID.String()).
		AndPathParam("modId", modID.String()).
		WithFormBody(fields)
	return request.NewAPIRequest(result, req)
}

// UpdateModCommentRequest https://docs.mod.io/#update-mod-comment
func (a *API) UpdateModCommentRequest(gameID GameID, modID ModID, commentID CommentID, content string) request.APIRequest[*ModComment] {
	result := &ModComment{}
	if content == "" {
		return request.NewAPIRequest(result, request.NewReqDefinitionError(fmt.Errorf("comment content cannot be empty")))
	}

	req := a.
		newAuthRequest().
		WithResult(result).
		WithPut("games/{gameId}/mods/{modId}/comments/{commentId}").
		AndPathParam("gameId", gameID.String()).
		AndPathParam("modId", modID.String()).
		AndPathParam("commentId", commentID.String()).
		WithFormBody(map[string]string{"content": content})
	return request.NewAPIRequest(result, req)
}

// DeleteModCommentRequest https://docs.mod.io/#delete-mod-comment
func (a *API) DeleteModCommentRequest(gameID GameID, modID ModID, commentID CommentID) request.APIRequest[request.NoResult] {
	req := a.
		newAuthRequest().
		WithDelete("games/{gameId}/mods/{modId}/comments/{commentId}").
		AndPathParam("gameId", gameID.String()).
		AndPathParam("modId", modID.String()).
		AndPathParam("commentId", commentID.String())
	return request.NewAPIRequest(request.NoResult{}, req)
}
