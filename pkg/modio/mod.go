package modio

import (
	"fmt"
	"strconv"

	"github.com/modio/go-modio/pkg/request"
)

// ModID is the unique id of a mod profile.
type ModID uint64

func (v ModID) String() string {
	return strconv.FormatUint(uint64(v), 10)
}

// Mod is the mod profile resource.
type Mod struct {
	ID           ModID    `json:"id"`
	GameID       GameID   `json:"game_id"`
	Status       int      `json:"status"`
	Visible      int      `json:"visible"`
	SubmittedBy  User     `json:"submitted_by"`
	DateAdded    UnixTime `json:"date_added"`
	DateUpdated  UnixTime `json:"date_updated"`
	DateLive     UnixTime `json:"date_live"`
	Logo         Logo     `json:"logo"`
	HomepageURL  string   `json:"homepage_url"`
	Name         string   `json:"name"`
	NameID       string   `json:"name_id"`
	Summary      string   `json:"summary"`
	Description  string   `json:"description"`
	MetadataBlob string   `json:"metadata_blob"`
	ProfileURL   string   `json:"profile_url"`
	Modfile      Modfile  `json:"modfile"`
	Media        ModMedia `json:"media"`
	Tags         []ModTag `json:"tags"`
	Stats        ModStats `json:"stats"`
}

// ModTag is a single tag of a mod profile.
type ModTag struct {
	Name      string   `json:"name"`
	DateAdded UnixTime `json:"date_added"`
}

// ModStats are the aggregated statistics of a mod profile.
type ModStats struct {
	ModID                     ModID    `json:"mod_id"`
	PopularityRankPosition    int      `json:"popularity_rank_position"`
	PopularityRankTotalMods   int      `json:"popularity_rank_total_mods"`
	DownloadsTotal            int      `json:"downloads_total"`
	SubscribersTotal          int      `json:"subscribers_total"`
	RatingsTotal              int      `json:"ratings_total"`
	RatingsPositive           int      `json:"ratings_positive"`
	RatingsNegative           int      `json:"ratings_negative"`
	RatingsPercentagePositive int      `json:"ratings_percentage_positive"`
	RatingsWeightedAggregate  float64  `json:"ratings_weighted_aggregate"`
	RatingsDisplayText        string   `json:"ratings_display_text"`
	DateExpires               UnixTime `json:"date_expires"`
}

// ModMedia are the additional media of a mod profile.
type ModMedia struct {
	YoutubeURLs   []string `json:"youtube"`
	SketchfabURLs []string `json:"sketchfab"`
	Images        []Image  `json:"images"`
}

// ListModsRequest https://docs.mod.io/#get-mods
func (a *API) ListModsRequest(gameID GameID, opts ...ListOption) request.APIRequest[*Page[Mod]] {
	result := &Page[Mod]{}
	req := newListConfig(opts).apply(a.
		newRequest().
		WithResult(result).
		WithGet("games/{gameId}/mods").
		AndPathParam("gameId", gameID.String()),
	)
	return request.NewAPIRequest(result, req)
}

// GetModRequest https://docs.mod.io/#get-mod
func (a *API) GetModRequest(gameID GameID, modID ModID) request.APIRequest[*Mod] {
	result := &Mod{}
	req := a.
		newRequest().
		WithResult(result).
		WithGet("games/{gameId}/mods/{modId}").
		AndPathParam("gameId", gameID.String()).
		AndPathParam("modId", modID.String())
	return request.NewAPIRequest(result, req)
}

// AddModParams are the fields of a new mod profile.
type AddModParams struct {
	Name         string `json:"name"`
	NameID       string `json:"name_id" writeoptional:"true"`
	Summary      string `json:"summary"`
	Description  string `json:"description" writeoptional:"true"`
	HomepageURL  string `json:"homepage_url" writeoptional:"true"`
	MetadataBlob string `json:"metadata_blob" writeoptional:"true"`
	// Logo is the required image attachment.
	Logo FormFile `json:"-"`
}

// AddModRequest https://docs.mod.io/#add-mod
func (a *API) AddModRequest(gameID GameID, params AddModParams) request.APIRequest[*Mod] {
	result := &Mod{}
	if err := validateNameID(params.NameID); err != nil {
		return request.NewAPIRequest(result, request.NewReqDefinitionError(err))
	}
	if len(params.Logo.Content) == 0 {
		return request.NewAPIRequest(result, request.NewReqDefinitionError(fmt.Errorf("mod logo must be set")))
	}
	params.Logo.Field = "logo"

	req := a.
		newAuthRequest().
		WithResult(result).
		WithPost("games/{gameId}/mods").
		AndPathParam("gameId", gameID.String())
	req, err := withMultipartBody(req, request.ToFormBody(request.StructToMap(&params, nil)), params.Logo)
	if err != nil {
		return request.NewAPIRequest(result, request.NewReqDefinitionError(err))
	}
	return request.NewAPIRequest(result, req)
}

// EditModParams are the fields of the mod profile that can be changed.
// Zero fields are not sent.
type EditModParams struct {
	Status       int    `json:"status" writeoptional:"true"`
	Visible      int    `json:"visible" writeoptional:"true"`
	Name         string `json:"name" writeoptional:"true"`
	NameID       string `json:"name_id" writeoptional:"true"`
	Summary      string `json:"summary" writeoptional:"true"`
	Description  string `json:"description" writeoptional:"true"`
	HomepageURL  string `json:"homepage_url" writeoptional:"true"`
	MetadataBlob string `json:"metadata_blob" writeoptional:"true"`
}

// EditModRequest https://docs.mod.io/#edit-mod
func (a *API) EditModRequest(gameID GameID, modID ModID, params EditModParams) request.APIRequest[*Mod] {
	result := &Mod{}
	if err := validateNameID(params.NameID); err != nil {
		return request.NewAPIRequest(result, request.NewReqDefinitionError(err))
	}
	req := a.
		newAuthRequest().
		WithResult(result).
		WithPut("games/{gameId}/mods/{modId}").
		AndPathParam("gameId", gameID.String()).
		AndPathParam("modId", modID.String()).
		WithFormBody(request.ToFormBody(request.StructToMap(&params, nil)))
	return request.NewAPIRequest(result, req)
}

// DeleteModRequest https://docs.mod.io/#delete-mod
func (a *API) DeleteModRequest(gameID GameID, modID ModID) request.APIRequest[request.NoResult] {
	req := a.
		newAuthRequest().
		WithDelete("games/{gameId}/mods/{modId}").
		AndPathParam("gameId", gameID.String()).
		AndPathParam("modId", modID.String())
	return request.NewAPIRequest(request.NoResult{}, req)
}
