package modio

import (
	"fmt"
	"io"
	"net/url"
	"strconv"

	"github.com/modio/go-modio/pkg/request"
)

// FileID is the unique id of a modfile.
type FileID uint64

func (v FileID) String() string {
	return strconv.FormatUint(uint64(v), 10)
}

// Modfile is a release of a mod, one uploaded archive.
type Modfile struct {
	ID            FileID   `json:"id"`
	ModID         ModID    `json:"mod_id"`
	DateAdded     UnixTime `json:"date_added"`
	DateScanned   UnixTime `json:"date_scanned"`
	VirusStatus   int      `json:"virus_status"`
	VirusPositive int      `json:"virus_positive"`
	Filesize      int64    `json:"filesize"`
	Filehash      Filehash `json:"filehash"`
	Filename      string   `json:"filename"`
	Version       string   `json:"version"`
	Changelog     string   `json:"changelog"`
	MetadataBlob  string   `json:"metadata_blob"`
	Download      Download `json:"download"`
}

// Filehash contains checksums of the uploaded archive.
type Filehash struct {
	MD5 string `json:"md5"`
}

// Download is a time-limited link to the modfile binary.
type Download struct {
	BinaryURL   string   `json:"binary_url"`
	DateExpires UnixTime `json:"date_expires"`
}

// ListModfilesRequest https://docs.mod.io/#get-modfiles
func (a *API) ListModfilesRequest(gameID GameID, modID ModID, opts ...ListOption) request.APIRequest[*Page[Modfile]] {
	result := &Page[Modfile]{}
	req := newListConfig(opts).apply(a.
		newRequest().
		WithResult(result).
		WithGet("games/{gameId}/mods/{modId}/files").
		AndPathParam("gameId", gameID.String()).
		AndPathParam("modId", modID.String()),
	)
	return request.NewAPIRequest(result, req)
}

// GetModfileRequest https://docs.mod.io/#get-modfile
func (a *API) GetModfileRequest(gameID GameID, modID ModID, fileID FileID) request.APIRequest[*Modfile] {
	result := &Modfile{}
	req := a.
		newRequest().
		WithResult(result).
		WithGet("games/{gameId}/mods/{modId}/files/{fileId}").
		AndPathParam("gameId", gameID.String()).
		AndPathParam("modId", modID.String()).
		AndPathParam("fileId", fileID.String())
	return request.NewAPIRequest(result, req)
}

// AddModfileParams are the fields of a new modfile release.
type AddModfileParams struct {
	Version      string `json:"version" writeoptional:"true"`
	Changelog    string `json:"changelog" writeoptional:"true"`
	MetadataBlob string `json:"metadata_blob" writeoptional:"true"`
	// Filehash is the MD5 of the upload, the server verifies it when set.
	Filehash string `json:"filehash" writeoptional:"true"`
	// Active marks the release as the current one.
	Active bool `json:"active" writeoptional:"true"`
	// Upload is the zip archive with the mod content.
	Upload FormFile `json:"-"`
}

// AddModfileRequest https://docs.mod.io/#add-modfile
func (a *API) AddModfileRequest(gameID GameID, modID ModID, params AddModfileParams) request.APIRequest[*Modfile] {
	result := &Modfile{}
	if len(params.Upload.Content) == 0 {
		return request.NewAPIRequest(result, request.NewReqDefinitionError(fmt.Errorf("modfile upload must be set")))
	}
	params.Upload.Field = "filedata"

	req := a.
		newAuthRequest().
		WithResult(result).
		WithPost("games/{gameId}/mods/{modId}/files").
		AndPathParam("gameId", gameID.String()).
		AndPathParam("modId", modID.String())
	req, err := withMultipartBody(req, request.ToFormBody(request.StructToMap(&params, nil)), params.Upload)
	if err != nil {
		return request.NewAPIRequest(result, request.NewReqDefinitionError(err))
	}
	return request.NewAPIRequest(result, req)
}

// EditModfileParams are the modfile fields that can be changed after upload.
type EditModfileParams struct {
	Version      string `json:"version" writeoptional:"true"`
	Changelog    string `json:"changelog" writeoptional:"true"`
	MetadataBlob string `json:"metadata_blob" writeoptional:"true"`
	Active       bool   `json:"active" writeoptional:"true"`
}

// EditModfileRequest https://docs.mod.io/#edit-modfile
func (a *API) EditModfileRequest(gameID GameID, modID ModID, fileID FileID, params EditModfileParams) request.APIRequest[*Modfile] {
	result := &Modfile{}
	req := a.
		newAuthRequest().
		WithResult(result).
		WithPut("games/{gameId}/mods/{modId}/files/{fileId}").
		AndPathParam("gameId", gameID.String()).
		AndPathParam("modId", modID.String()).
		AndPathParam("fileId", fileID.String()).
		WithFormBody(request.ToFormBody(request.StructToMap(&params, nil)))
	return request.NewAPIRequest(result, req)
}

// DeleteModfileRequest https://docs.mod.io/#delete-modfile
func (a *API) DeleteModfileRequest(gameID GameID, modID ModID, fileID FileID) request.APIRequest[request.NoResult] {
	req := a.
		newAuthRequest().
		WithDelete("games/{gameId}/mods/{modId}/files/{fileId}").
		AndPathParam("gameId", gameID.String()).
		AndPathParam("modId", modID.String()).
		AndPathParam("fileId", fileID.String())
	return request.NewAPIRequest(request.NoResult{}, req)
}

// DownloadModfileRequest streams the modfile binary from the download URL
// to the writer. The request goes to the CDN, not to the API host.
// The URL signature query parameters are preserved.
func (a *API) DownloadModfileRequest(download Download, output io.Writer) request.APIRequest[request.NoResult] {
	if download.BinaryURL == "" {
		return request.NewAPIRequest(request.NoResult{}, request.NewReqDefinitionError(fmt.Errorf("download binary url must be set")))
	}
	u, err := url.Parse(download.BinaryURL)
	if err != nil {
		return request.NewAPIRequest(request.NoResult{}, request.NewReqDefinitionError(fmt.Errorf(`download binary url "%s" is not valid: %w`, download.BinaryURL, err)))
	}

	req := request.
		NewHTTPRequest(a.Client()).
		WithResult(output).
		WithGet(download.BinaryURL)
	for k, values := range u.Query() {
		for _, v := range values {
			req = req.AndQueryParam(k, v)
		}
	}
	return request.NewAPIRequest(request.NoResult{}, req)
}
