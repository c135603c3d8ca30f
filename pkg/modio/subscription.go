package modio

import (
	"github.com/modio/go-modio/pkg/request"
)

// SubscribeToModRequest https://docs.mod.io/#subscribe-to-mod
func (a *API) SubscribeToModRequest(gameID GameID, modID ModID) request.APIRequest[*Mod] {
	result := &Mod{}
	req := a.
		newAuthRequest().
		WithResult(result).
		WithPost("games/{gameId}/mods/{modId}/subscribe").
		AndPathParam("gameId", gameID.String()).
		AndPathParam("modId", modID.String())
	return request.NewAPIRequest(result, req)
}

// UnsubscribeFromModRequest https://docs.mod.io/#unsubscribe-from-mod
func (a *API) UnsubscribeFromModRequest(gameID GameID, modID ModID) request.APIRequest[request.NoResult] {
	req := a.
		newAuthRequest().
		WithDelete("games/{gameId}/mods/{modId}/subscribe").
		AndPathParam("gameId", gameID.String()).
		AndPathParam("modId", modID.String())
	return request.NewAPIRequest(request.NoResult{}, req)
}
