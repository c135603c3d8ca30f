package modio

import (
	"fmt"
	"strconv"

	"github.com/modio/go-modio/pkg/request"
)

// Rating is the user verdict on a mod.
type Rating int

const (
	RatingPositive Rating = 1
	RatingNone     Rating = 0
	RatingNegative Rating = -1
)

// AddModRatingRequest submits the rating of the authenticated user,
// RatingNone withdraws a previous rating. https://docs.mod.io/#add-mod-rating
func (a *API) AddModRatingRequest(gameID GameID, modID ModID, rating Rating) request.APIRequest[*Message] {
	result := &Message{}
	if rating < RatingNegative || rating > RatingPositive {
		return request.NewAPIRequest(result, request.NewReqDefinitionError(fmt.Errorf("rating must be 1, 0 or -1, given %d", rating)))
	}

	req := a.
		newAuthRequest().
		WithResult(result).
		WithPost("games/{gameId}/mods/{modId}/ratings").
		AndPathParam("gameId", gameID.String()).
		AndPathParam("modId", modID.String()).
		WithFormBody(map[string]string{"rating": strconv.Itoa(int(rating))})
	return request.NewAPIRequest(result, req)
}
