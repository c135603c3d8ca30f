package modio_test

import (
	"bytes"
	"context"
	"net/http"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modio/go-modio/pkg/modio"
	"github.com/modio/go-modio/pkg/request"
)

func TestGetModfileRequest(t *testing.T) {
	t.Parallel()
	api, transport := mockedAPI(t)

	transport.RegisterResponder("GET", "https://api.mod.io/v1/games/1/mods/42/files/7",
		httpmock.NewStringResponder(200, `{
			"id": 7,
			"mod_id": 42,
			"filename": "mod.zip",
			"version": "1.2.0",
			"filesize": 1024,
			"filehash": {"md5": "2157a1a2a087ee1cbd2d8a70f5fab4ba"},
			"download": {"binary_url": "https://cdn.mod.io/file/1/42/mod.zip?key=abc", "date_expires": 1700003600}
		}`),
	)

	file, err := api.GetModfileRequest(1, 42, 7).Send(context.Background())
	require.NoError(t, err)
	assert.Equal(t, modio.FileID(7), file.ID)
	assert.Equal(t, int64(1024), file.Filesize)
	assert.Equal(t, "2157a1a2a087ee1cbd2d8a70f5fab4ba", file.Filehash.MD5)
	assert.Equal(t, "https://cdn.mod.io/file/1/42/mod.zip?key=abc", file.Download.BinaryURL)
}

func TestDownloadModfileRequest(t *testing.T) {
	t.Parallel()
	api, transport := mockedAPI(t)

	transport.RegisterResponder("GET", "https://cdn.mod.io/file/1/42/mod.zip", func(req *http.Request) (*http.Response, error) {
		// The URL signature must survive the request assembly
		assert.Equal(t, "abc", req.URL.Query().Get("key"))
		return httpmock.NewStringResponse(200, "zip-bytes"), nil
	})

	var buf bytes.Buffer
	download := modio.Download{BinaryURL: "https://cdn.mod.io/file/1/42/mod.zip?key=abc"}
	err := api.DownloadModfileRequest(download, &buf).SendOrErr(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "zip-bytes", buf.String())
}

func TestDownloadModfileRequest_MissingURL(t *testing.T) {
	t.Parallel()
	api, _ := mockedAPI(t)

	var buf bytes.Buffer
	err := api.DownloadModfileRequest(modio.Download{}, &buf).SendOrErr(context.Background())
	require.Error(t, err)
	var defErr request.ReqDefinitionError
	assert.ErrorAs(t, err, &defErr)
}

func TestAddModfileRequest_MissingUpload(t *testing.T) {
	t.Parallel()
	api, _ := mockedAPI(t)

	_, err := api.AddModfileRequest(1, 42, modio.AddModfileParams{Version: "1.0.0"}).Send(context.Background())
	require.Error(t, err)
	var defErr request.ReqDefinitionError
	assert.ErrorAs(t, err, &defErr)
}
