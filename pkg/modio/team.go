package modio

import (
	"fmt"
	"strconv"

	"github.com/modio/go-modio/pkg/request"
)

// TeamMemberID is the unique id of a team membership.
type TeamMemberID uint64

func (v TeamMemberID) String() string {
	return strconv.FormatUint(uint64(v), 10)
}

// TeamLevel is the permission level of a team member.
type TeamLevel int

const (
	TeamLevelModerator     TeamLevel = 1
	TeamLevelManager       TeamLevel = 4
	TeamLevelAdministrator TeamLevel = 8
)

// TeamMember is one member of a mod team.
type TeamMember struct {
	ID        TeamMemberID `json:"id"`
	User      User         `json:"user"`
	Level     TeamLevel    `json:"level"`
	DateAdded UnixTime     `json:"date_added"`
	Position  string       `json:"position"`
}

// ListModTeamRequest https://docs.mod.io/#get-mod-team-members
func (a *API) ListModTeamRequest(gameID GameID, modID ModID, opts ...ListOption) request.APIRequest[*Page[TeamMember]] {
	result := &Page[TeamMember]{}
	req := newListConfig(opts).apply(a.
		newAuthRequest().
		WithResult(result).
		WithGet("games/{gameId}/mods/{modId}/team").
		AndPathParam("gameId", gameID.String()).
		AndPathParam("modId", modID.String()),
	)
	return request.NewAPIRequest(result, req)
}

// AddTeamMemberParams invite a user to a mod team.
type AddTeamMemberParams struct {
	// Email of the mod.io account to invite.
	Email    string
	Level    TeamLevel
	Position string
}

// AddModTeamMemberRequest https://docs.mod.io/#add-mod-team-member
func (a *API) AddModTeamMemberRequest(gameID GameID, modID ModID, params AddTeamMemberParams) request.APIRequest[*Message] {
	result := &Message{}
	if params.Email == "" {
		return request.NewAPIRequest(result, request.NewReqDefinitionError(fmt.Errorf("team member email must be set")))
	}

	fields := map[string]string{
		"email": params.Email,
		"level": strconv.Itoa(int(params.Level)),
	}
	if params.Position != "" {
		fields["position"] = params.Position
	}

	req := a.
		newAuthRequest().
		WithResult(result).
		WithPost("games/{gameId}/mods/{modId}/team").
		AndPathParam("gameId", gameID.String()).
		AndPathParam("modId", modID.String()).
		WithFormBody(fields)
	return request.NewAPIRequest(result, req)
}

// UpdateTeamMemberParams are the membership fields that can be changed.
type UpdateTeamMemberParams struct {
	Level    TeamLevel
	Position string
}

// UpdateModTeamMemberRequest https://docs.mod.io/#update-mod-team-member
func (a *API) UpdateModTeamMemberRequest(gameID GameID, modID ModID, memberID TeamMemberID, params UpdateTeamMemberParams) request.APIRequest[*Message] {
	result := &Message{}

	fields := map[string]string{"level": strconv.Itoa(int(params.Level))}
	if params.Position != "" {
		fields["position"] = params.Position
	}

	req := a.
		newAuthRequest().
		WithResult(result).
		WithPut("games/{gameId}/mods/{modId}/team/{memberId}").
		AndPathParam("gameId", gameID.String()).
		AndPathParam("modId", modID.String()).
		AndPathParam("memberId", memberID.String()).
		WithFormBody(fields)
	return request.NewAPIRequest(result, req)
}

// DeleteModTeamMemberRequest https://docs.mod.io/#delete-mod-team-member
func (a *API) DeleteModTeamMemberRequest(gameID GameID, modID ModID, memberID TeamMemberID) request.APIRequest[request.NoResult] {
	req := a.
		newAuthRequest().
		WithDelete("games/{gameId}/mods/{modId}/team/{memberId}").
		AndPathParam("gameId", gameID.String()).
		AndPathParam("modId", modID.String()).
		AndPathParam("memberId", memberID.String())
	return request.NewAPIRequest(request.NoResult{}, req)
}
