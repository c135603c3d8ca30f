package modio

import (
	"strconv"

	"github.com/modio/go-modio/pkg/request"
)

// EventID is the unique id of a mod event.
type EventID uint64

func (v EventID) String() string {
	return strconv.FormatUint(uint64(v), 10)
}

// Mod event types, used to refresh cached mod profiles.
const (
	EventModfileChanged  = "MODFILE_CHANGED"
	EventModAvailable    = "MOD_AVAILABLE"
	EventModUnavailable  = "MOD_UNAVAILABLE"
	EventModEdited       = "MOD_EDITED"
	EventModDeleted      = "MOD_DELETED"
	EventModTeamChanged  = "MOD_TEAM_CHANGED"
	EventUserSubscribe   = "USER_SUBSCRIBE"
	EventUserUnsubscribe = "USER_UNSUBSCRIBE"
	EventUserTeamJoin    = "USER_TEAM_JOIN"
	EventUserTeamLeave   = "USER_TEAM_LEAVE"
)

// ModEvent records a change of a mod profile.
type ModEvent struct {
	ID        EventID  `json:"id"`
	ModID     ModID    `json:"mod_id"`
	UserID    UserID   `json:"user_id"`
	DateAdded UnixTime `json:"date_added"`
	EventType string   `json:"event_type"`
}

// ListModEventsRequest lists events of all mods of the game, newest first.
// Filter by "date_added" to poll for changes since the last call.
// https://docs.mod.io/#get-mods-events
func (a *API) ListModEventsRequest(gameID GameID, opts ...ListOption) request.APIRequest[*Page[ModEvent]] {
	result := &Page[ModEvent]{}
	req := newListConfig(opts).apply(a.
		newRequest().
		WithResult(result).
		WithGet("games/{gameId}/mods/events").
		AndPathParam("gameId", gameID.String()),
	)
	return request.NewAPIRequest(result, req)
}

// ListModEventsForModRequest lists events of one mod, newest first.
// https://docs.mod.io/#get-mod-events
func (a *API) ListModEventsForModRequest(gameID GameID, modID ModID, opts ...ListOption) request.APIRequest[*Page[ModEvent]] {
	result := &Page[ModEvent]{}
	req := newListConfig(opts).apply(a.
		newRequest().
		WithResult(result).
		WithGet("games/{gameId}/mods/{modId}/events").
		AndPathParam("gameId", gameID.String()).
		AndPathParam("modId", modID.String()),
	)
	return request.NewAPIRequest(result, req)
}

// ListUserEventsRequest lists events of mods the authenticated user is
// subscribed to. https://docs.mod.io/#get-user-events
func (a *API) ListUserEventsRequest(opts ...ListOption) request.APIRequest[*Page[ModEvent]] {
	result := &Page[ModEvent]{}
	req := newListConfig(opts).apply(a.
		newAuthRequest().
		WithResult(result).
		WithGet("me/events"),
	)
	return request.NewAPIRequest(result, req)
}
