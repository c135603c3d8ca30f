package modio

import (
	"fmt"

	"github.com/modio/go-modio/pkg/request"
)

// Logo is the mod or game logo in all generated sizes.
type Logo struct {
	Filename      string `json:"filename"`
	Original      string `json:"original"`
	Thumb320x180  string `json:"thumb_320x180"`
	Thumb640x360  string `json:"thumb_640x360"`
	Thumb1280x720 string `json:"thumb_1280x720"`
}

// Icon is the game icon in all generated sizes.
type Icon struct {
	Filename     string `json:"filename"`
	Original     string `json:"original"`
	Thumb64x64   string `json:"thumb_64x64"`
	Thumb128x128 string `json:"thumb_128x128"`
	Thumb256x256 string `json:"thumb_256x256"`
}

// HeaderImage is the game header banner.
type HeaderImage struct {
	Filename string `json:"filename"`
	Original string `json:"original"`
}

// Avatar is a user avatar in all generated sizes.
type Avatar struct {
	Filename     string `json:"filename"`
	Original     string `json:"original"`
	Thumb50x50   string `json:"thumb_50x50"`
	Thumb100x100 string `json:"thumb_100x100"`
}

// Image is a gallery image of a mod profile.
type Image struct {
	Filename     string `json:"filename"`
	Original     string `json:"original"`
	Thumb320x180 string `json:"thumb_320x180"`
}

// AddModMediaParams are the media attachments added to a mod profile.
// At least one attachment or URL must be set.
type AddModMediaParams struct {
	// Logo replaces the mod logo.
	Logo *FormFile
	// Images are gallery images, or a single zip archive of images.
	Images []FormFile
	// YoutubeURLs are full URLs of youtube videos to link.
	YoutubeURLs []string
	// SketchfabURLs are full URLs of sketchfab models to link.
	SketchfabURLs []string
}

// AddModMediaRequest https://docs.mod.io/#add-mod-media
func (a *API) AddModMediaRequest(gameID GameID, modID ModID, params AddModMediaParams) request.APIRequest[*Message] {
	result := &Message{}
	if params.Logo == nil && len(params.Images) == 0 && len(params.YoutubeURLs) == 0 && len(params.SketchfabURLs) == 0 {
		return request.NewAPIRequest(result, request.NewReqDefinitionError(fmt.Errorf("at least one media attachment must be set")))
	}

	fields := make(map[string]string)
	for i, v := range params.YoutubeURLs {
		fields[fmt.Sprintf("youtube[%d]", i)] = v
	}
	for i, v := range params.SketchfabURLs {
		fields[fmt.Sprintf("sketchfab[%d]", i)] = v
	}

	var files []FormFile
	if params.Logo != nil {
		logo := *params.Logo
		logo.Field = "logo"
		files = append(files, logo)
	}
	for i, image := range params.Images {
		image.Field = fmt.Sprintf("image%d", i+1)
		files = append(files, image)
	}

	req := a.
		newAuthRequest().
		WithResult(result).
		WithPost("games/{gameId}/mods/{modId}/media").
		AndPathParam("gameId", gameID.String()).
		AndPathParam("modId", modID.String())
	req, err := withMultipartBody(req, fields, files...)
	if err != nil {
		return request.NewAPIRequest(result, request.NewReqDefinitionError(err))
	}
	return request.NewAPIRequest(result, req)
}

// DeleteModMediaParams name the media to detach from a mod profile.
type DeleteModMediaParams struct {
	// Images are filenames of gallery images to delete.
	Images []string
	// YoutubeURLs are full URLs of linked youtube videos to delete.
	YoutubeURLs []string
	// SketchfabURLs are full URLs of linked sketchfab models to delete.
	SketchfabURLs []string
}

// DeleteModMediaRequest https://docs.mod.io/#delete-mod-media
func (a *API) DeleteModMediaRequest(gameID GameID, modID ModID, params DeleteModMediaParams) request.APIRequest[request.NoResult] {
	if len(params.Images) == 0 && len(params.YoutubeURLs) == 0 && len(params.SketchfabURLs) == 0 {
		return request.NewAPIRequest(request.NoResult{}, request.NewReqDefinitionError(fmt.Errorf("at least one media attachment must be set")))
	}

	fields := make(map[string]string)
	for i, v := range params.Images {
		fields[fmt.Sprintf("images[%d]", i)] = v
	}
	for i, v := range params.YoutubeURLs {
		fields[fmt.Sprintf("youtube[%d]", i)] = v
	}
	for i, v := range params.SketchfabURLs {
		fields[fmt.Sprintf("sketchfab[%d]", i)] = v
	}

	req := a.
		newAuthRequest().
		WithDelete("games/{gameId}/mods/{modId}/media").
		AndPathParam("gameId", gameID.String()).
		AndPathParam("modId", modID.String()).
		WithFormBody(fields)
	return request.NewAPIRequest(request.NoResult{}, req)
}

// AddGameMediaParams are the media attachments added to a game profile.
type AddGameMediaParams struct {
	Logo   *FormFile
	Icon   *FormFile
	Header *FormFile
}

// AddGameMediaRequest https://docs.mod.io/#add-game-media
func (a *API) AddGameMediaRequest(gameID GameID, params AddGameMediaParams) request.APIRequest[*Message] {
	result := &Message{}
	if params.Logo == nil && params.Icon == nil && params.Header == nil {
		return request.NewAPIRequest(result, request.NewReqDefinitionError(fmt.Errorf("at least one media attachment must be set")))
	}

	var files []FormFile
	for field, file := range map[string]*FormFile{"logo": params.Logo, "icon": params.Icon, "header": params.Header} {
		if file != nil {
			f := *file
			f.Field = field
			files = append(files, f)
		}
	}

	req := a.
		newAuthRequest().
		WithResult(result).
		WithPost("games/{gameId}/media").
		AndPathParam("gameId", gameID.String())
	req, err := withMultipartBody(req, nil, files...)
	if err != nil {
		return request.NewAPIRequest(result, request.NewReqDefinitionError(err))
	}
	return request.NewAPIRequest(result, req)
}
