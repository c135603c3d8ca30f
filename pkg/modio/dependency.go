package modio

import (
	"fmt"

	"github.com/modio/go-modio/pkg/request"
)

// ModDependency is a mod that another mod requires to work.
type ModDependency struct {
	ModID     ModID    `json:"mod_id"`
	DateAdded UnixTime `json:"date_added"`
}

// ListModDependenciesRequest https://docs.mod.io/#get-mod-dependencies
func (a *API) ListModDependenciesRequest(gameID GameID, modID ModID, opts ...ListOption) request.APIRequest[*Page[ModDependency]] {
	result := &Page[ModDependency]{}
	req := newListConfig(opts).apply(a.
		newRequest().
		WithResult(result).
		WithGet("games/{gameId}/mods/{modId}/dependencies").
		AndPathParam("gameId", gameID.String()).
		AndPathParam("modId", modID.String()),
	)
	return request.NewAPIRequest(result, req)
}

// AddModDependenciesRequest https://docs.mod.io/#add-mod-dependencies
func (a *API) AddModDependenciesRequest(gameID GameID, modID ModID, dependencies ...ModID) request.APIRequest[*Message] {
	result := &Message{}
	if len(dependencies) == 0 {
		return request.NewAPIRequest(result, request.NewReqDefinitionError(fmt.Errorf("at least one dependency must be set")))
	}

	req := a.
		newAuthRequest().
		WithResult(result).
		WithPost("games/{gameId}/mods/{modId}/dependencies").
		AndPathParam("gameId", gameID.String()).
		AndPathParam("modId", modID.String()).
		WithFormBody(dependencyFields(dependencies))
	return request.NewAPIRequest(result, req)
}

// DeleteModDependenciesRequest https://docs.mod.io/#delete-mod-dependencies
func (a *API) DeleteModDependenciesRequest(gameID GameID, modID ModID, dependencies ...ModID) request.APIRequest[request.NoResult] {
	if len(dependencies) == 0 {
		return request.NewAPIRequest(request.NoResult{}, request.NewReqDefinitionError(fmt.Errorf("at least one dependency must be set")))
	}

	req := a.
		newAuthRequest().
		WithDelete("games/{gameId}/mods/{modId}/dependencies").
		AndPathParam("gameId", gameID.String()).
		AndPathParam("modId", modID.String()).
		WithFormBody(dependencyFields(dependencies))
	return request.NewAPIRequest(request.NoResult{}, req)
}

func dependencyFields(dependencies []ModID) map[string]string {
	fields := make(map[string]string, len(dependencies))
	for i, id := range dependencies {
		fields[fmt.Sprintf("dependencies[%d]", i)] = id.String()
	}
	return fields
}
