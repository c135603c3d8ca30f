package modio

import (
	"strconv"

	"github.com/modio/go-modio/pkg/request"
)

// UserID is the unique id of a mod.io user account.
type UserID uint64

func (v UserID) String() string {
	return strconv.FormatUint(uint64(v), 10)
}

// User is a public user profile.
type User struct {
	ID         UserID   `json:"id"`
	NameID     string   `json:"name_id"`
	Username   string   `json:"username"`
	DateOnline UnixTime `json:"date_online"`
	Avatar     Avatar   `json:"avatar"`
	Timezone   string   `json:"timezone"`
	Language   string   `json:"language"`
	ProfileURL string   `json:"profile_url"`
}

// GetAuthenticatedUserRequest https://docs.mod.io/#get-authenticated-user
func (a *API) GetAuthenticatedUserRequest() request.APIRequest[*User] {
	result := &User{}
	req := a.
		newAuthRequest().
		WithResult(result).
		WithGet("me")
	return request.NewAPIRequest(result, req)
}

// ListUserGamesRequest lists games the authenticated user added or is a team member of.
// https://docs.mod.io/#get-user-games
func (a *API) ListUserGamesRequest(opts ...ListOption) request.APIRequest[*Page[Game]] {
	result := &Page[Game]{}
	req := newListConfig(opts).apply(a.
		newAuthRequest().
		WithResult(result).
		WithGet("me/games"),
	)
	return request.NewAPIRequest(result, req)
}

// ListUserModsRequest lists mods the authenticated user added or is a team member of.
// https://docs.mod.io/#get-user-mods
func (a *API) ListUserModsRequest(opts ...ListOption) request.APIRequest[*Page[Mod]] {
	result := &Page[Mod]{}
	req := newListConfig(opts).apply(a.
		newAuthRequest().
		WithResult(result).
		WithGet("me/mods"),
	)
	return request.NewAPIRequest(result, req)
}

// ListUserModfilesRequest lists modfiles the authenticated user uploaded.
// https://docs.mod.io/#get-user-modfiles
func (a *API) ListUserModfilesRequest(opts ...ListOption) request.APIRequest[*Page[Modfile]] {
	result := &Page[Modfile]{}
	req := newListConfig(opts).apply(a.
		newAuthRequest().
		WithResult(result).
		WithGet("me/files"),
	)
	return request.NewAPIRequest(result, req)
}

// ListUserSubscriptionsRequest lists mods the authenticated user is subscribed to.
// https://docs.mod.io/#get-user-subscriptions
func (a *API) ListUserSubscriptionsRequest(opts ...ListOption) request.APIRequest[*Page[Mod]] {
	result := &Page[Mod]{}
	req := newListConfig(opts).apply(a.
		newAuthRequest().
		WithResult(result).
		WithGet("me/subscribed"),
	)
	return request.NewAPIRequest(result, req)
}
