package modio

import (
	"strconv"

	"github.com/modio/go-modio/pkg/request"
)

// GameID is the unique id of a game profile.
type GameID uint64

func (v GameID) String() string {
	return strconv.FormatUint(uint64(v), 10)
}

// Game is the game profile resource.
type Game struct {
	ID              GameID          `json:"id"`
	Status          int             `json:"status"`
	SubmittedBy     User            `json:"submitted_by"`
	DateAdded       UnixTime        `json:"date_added"`
	DateUpdated     UnixTime        `json:"date_updated"`
	DateLive        UnixTime        `json:"date_live"`
	Name            string          `json:"name"`
	NameID          string          `json:"name_id"`
	Summary         string          `json:"summary"`
	Instructions    string          `json:"instructions"`
	InstructionsURL string          `json:"instructions_url"`
	UGCName         string          `json:"ugc_name"`
	ProfileURL      string          `json:"profile_url"`
	Icon            Icon            `json:"icon"`
	Logo            Logo            `json:"logo"`
	Header          HeaderImage     `json:"header"`
	TagOptions      []GameTagOption `json:"tag_options"`
}

// GetGameRequest https://docs.mod.io/#get-game
func (a *API) GetGameRequest(gameID GameID) request.APIRequest[*Game] {
	result := &Game{}
	req := a.
		newRequest().
		WithResult(result).
		WithGet("games/{gameId}").
		AndPathParam("gameId", gameID.String())
	return request.NewAPIRequest(result, req)
}

// ListGamesRequest https://docs.mod.io/#get-games
func (a *API) ListGamesRequest(opts ...ListOption) request.APIRequest[*Page[Game]] {
	result := &Page[Game]{}
	req := newListConfig(opts).apply(a.
		newRequest().
		WithResult(result).
		WithGet("games"),
	)
	return request.NewAPIRequest(result, req)
}

// EditGameParams are the fields of the game profile that can be changed.
// Zero fields are not sent.
type EditGameParams struct {
	Status          int    `json:"status" writeoptional:"true"`
	Name            string `json:"name" writeoptional:"true"`
	NameID          string `json:"name_id" writeoptional:"true"`
	Summary         string `json:"summary" writeoptional:"true"`
	Instructions    string `json:"instructions" writeoptional:"true"`
	InstructionsURL string `json:"instructions_url" writeoptional:"true"`
	UGCName         string `json:"ugc_name" writeoptional:"true"`
}

// EditGameRequest https://docs.mod.io/#edit-game
func (a *API) EditGameRequest(gameID GameID, params EditGameParams) request.APIRequest[*Game] {
	result := &Game{}
	if err := validateNameID(params.NameID); err != nil {
		return request.NewAPIRequest(result, request.NewReqDefinitionError(err))
	}
	req := a.
		newAuthRequest().
		WithResult(result).
		WithPut("games/{gameId}").
		AndPathParam("gameId", gameID.String()).
		WithFormBody(request.ToFormBody(request.StructToMap(&params, nil)))
	return request.NewAPIRequest(result, req)
}
