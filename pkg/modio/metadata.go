package modio

import (
	"fmt"
	"sort"

	"github.com/modio/go-modio/pkg/request"
)

// MetadataKVP is one searchable key-value pair attached to a mod profile.
type MetadataKVP struct {
	Metakey   string `json:"metakey"`
	Metavalue string `json:"metavalue"`
}

// ListModMetadataRequest https://docs.mod.io/#get-mod-kvp-metadata
func (a *API) ListModMetadataRequest(gameID GameID, modID ModID, opts ...ListOption) request.APIRequest[*Page[MetadataKVP]] {
	result := &Page[MetadataKVP]{}
	req := newListConfig(opts).apply(a.
		newRequest().
		WithResult(result).
		WithGet("games/{gameId}/mods/{modId}/metadatakvp").
		AndPathParam("gameId", gameID.String()).
		AndPathParam("modId", modID.String()),
	)
	return request.NewAPIRequest(result, req)
}

// AddModMetadataRequest https://docs.mod.io/#add-mod-kvp-metadata
func (a *API) AddModMetadataRequest(gameID GameID, modID ModID, metadata map[string]string) request.APIRequest[*Message] {
	result := &Message{}
	if len(metadata) == 0 {
		return request.NewAPIRequest(result, request.NewReqDefinitionError(fmt.Errorf("at least one metadata pair must be set")))
	}

	req := a.
		newAuthRequest().
		WithResult(result).
		WithPost("games/{gameId}/mods/{modId}/metadatakvp").
		AndPathParam("gameId", gameID.String()).
		AndPathParam("modId", modID.String()).
		WithFormBody(metadataFields(metadata))
	return request.NewAPIRequest(result, req)
}

// DeleteModMetadataRequest deletes the given pairs, a key with an empty value
// deletes all pairs with that key. https://docs.mod.io/#delete-mod-kvp-metadata
func (a *API) DeleteModMetadataRequest(gameID GameID, modID ModID, metadata map[string]string) request.APIRequest[request.NoResult] {
	if len(metadata) == 0 {
		return request.NewAPIRequest(request.NoResult{}, request.NewReqDefinitionError(fmt.Errorf("at least one metadata key must be set")))
	}

	req := a.
		newAuthRequest().
		WithDelete("games/{gameId}/mods/{modId}/metadatakvp").
		AndPathParam("gameId", gameID.String()).
		AndPathParam("modId", modID.String()).
		WithFormBody(metadataFields(metadata))
	return request.NewAPIRequest(request.NoResult{}, req)
}

// metadataFields encodes pairs to the "metadata[n]=key:value" form fields,
// in a deterministic order.
func metadataFields(metadata map[string]string) map[string]string {
	keys := make([]string, 0, len(metadata))
	for k := range metadata {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fields := make(map[string]string, len(keys))
	for i, k := range keys {
		value := k
		if v := metadata[k]; v != "" {
			value += ":" + v
		}
		fields[fmt.Sprintf("metadata[%d]", i)] = value
	}
	return fields
}
