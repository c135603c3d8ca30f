package modio

import (
	"fmt"

	"github.com/modio/go-modio/pkg/request"
)

// GameTagOption is a group of tags that mods of the game can be labeled with.
type GameTagOption struct {
	Name   string   `json:"name"`
	Type   string   `json:"type"`
	Hidden bool     `json:"hidden"`
	Tags   []string `json:"tags"`
}

// ListGameTagOptionsRequest https://docs.mod.io/#get-game-tag-options
func (a *API) ListGameTagOptionsRequest(gameID GameID, opts ...ListOption) request.APIRequest[*Page[GameTagOption]] {
	result := &Page[GameTagOption]{}
	req := newListConfig(opts).apply(a.
		newRequest().
		WithResult(result).
		WithGet("games/{gameId}/tags").
		AndPathParam("gameId", gameID.String()),
	)
	return request.NewAPIRequest(result, req)
}

// AddGameTagOptionParams define a new tag group of a game.
type AddGameTagOptionParams struct {
	Name string
	// Type is "dropdown" for exclusive tags or "checkboxes" for multi-select.
	Type   string
	Hidden bool
	Tags   []string
}

// AddGameTagOptionRequest https://docs.mod.io/#add-game-tag-option
func (a *API) AddGameTagOptionRequest(gameID GameID, params AddGameTagOptionParams) request.APIRequest[*Message] {
	result := &Message{}
	if params.Name == "" || len(params.Tags) == 0 {
		return request.NewAPIRequest(result, request.NewReqDefinitionError(fmt.Errorf("tag option name and tags must be set")))
	}

	fields := map[string]string{"name": params.Name}
	if params.Type != "" {
		fields["type"] = params.Type
	}
	if params.Hidden {
		fields["hidden"] = "true"
	}
	for i, tag := range params.Tags {
		fields[fmt.Sprintf("tags[%d]", i)] = tag
	}

	req := a.
		newAuthRequest().
		WithResult(result).
		WithPost("games/{gameId}/tags").
		AndPathParam("gameId", gameID.String()).
		WithFormBody(fields)
	return request.NewAPIRequest(result, req)
}

// DeleteGameTagOptionRequest deletes tags from the group, or the whole group
// if tags is empty. https://docs.mod.io/#delete-game-tag-option
func (a *API) DeleteGameTagOptionRequest(gameID GameID, name string, tags ...string) request.APIRequest[request.NoResult] {
	if name == "" {
		return request.NewAPIRequest(request.NoResult{}, request.NewReqDefinitionError(fmt.Errorf("tag option name must be set")))
	}

	fields := map[string]string{"name": name}
	for i, tag := range tags {
		fields[fmt.Sprintf("tags[%d]", i)] = tag
	}

	req := a.
		newAuthRequest().
		WithDelete("games/{gameId}/tags").
		AndPathParam("gameId", gameID.String()).
		WithFormBody(fields)
	return request.NewAPIRequest(request.NoResult{}, req)
}

// ListModTagsRequest https://docs.mod.io/#get-mod-tags
func (a *API) ListModTagsRequest(gameID GameID, modID ModID, opts ...ListOption) request.APIRequest[*Page[ModTag]] {
	result := &Page[ModTag]{}
	req := newListConfig(opts).apply(a.
		newRequest().
		WithResult(result).
		WithGet("games/{gameId}/mods/{modId}/tags").
		AndPathParam("gameId", gameID.String()).
		AndPathParam("modId", modID.String()),
	)
	return request.NewAPIRequest(result, req)
}

// AddModTagsRequest https://docs.mod.io/#add-mod-tags
func (a *API) AddModTagsRequest(gameID GameID, modID ModID, tags ...string) request.APIRequest[*Message] {
	result := &Message{}
	if len(tags) == 0 {
		return request.NewAPIRequest(result, request.NewReqDefinitionError(fmt.Errorf("at least one tag must be set")))
	}

	fields := make(map[string]string)
	for i, tag := range tags {
		fields[fmt.Sprintf("tags[%d]", i)] = tag
	}

	req := a.
		newAuthRequest().
		WithResult(result).
		WithPost("games/{gameId}/mods/{modId}/tags").
		AndPathParam("gameId", gameID.String()).
		AndPathParam("modId", modID.String()).
		WithFormBody(fields)
	return request.NewAPIRequest(result, req)
}

// DeleteModTagsRequest https://docs.mod.io/#delete-mod-tags
func (a *API) DeleteModTagsRequest(gameID GameID, modID ModID, tags ...string) request.APIRequest[request.NoResult] {
	if len(tags) == 0 {
		return request.NewAPIRequest(request.NoResult{}, request.NewReqDefinitionError(fmt.Errorf("at least one tag must be set")))
	}

	fields := make(map[string]string)
	for i, tag := range tags {
		fields[fmt.Sprintf("tags[%d]", i)] = tag
	}

	req := a.
		newAuthRequest().
		WithDelete("games/{gameId}/mods/{modId}/tags").
		AndPathParam("gameId", gameID.String()).
		AndPathParam("modId", modID.String()).
		WithFormBody(fields)
	return request.NewAPIRequest(request.NoResult{}, req)
}
