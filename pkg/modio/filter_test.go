package modio_test

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modio/go-modio/pkg/modio"
)

func listQuery(t *testing.T, opts ...modio.ListOption) url.Values {
	t.Helper()
	api, transport := mockedAPI(t)

	var query url.Values
	transport.RegisterResponder("GET", "https://api.mod.io/v1/games/1/mods", func(req *http.Request) (*http.Response, error) {
		query = req.URL.Query()
		return httpmock.NewJsonResponse(200, map[string]any{"data": []any{}})
	})

	_, err := api.ListModsRequest(1, opts...).Send(context.Background())
	require.NoError(t, err)
	return query
}

func TestListOptions_Pagination(t *testing.T) {
	t.Parallel()
	query := listQuery(t, modio.WithLimit(25), modio.WithOffset(50))
	assert.Equal(t, "25", query.Get("_limit"))
	assert.Equal(t, "50", query.Get("_offset"))
}

func TestListOptions_SortAndSearch(t *testing.T) {
	t.Parallel()
	query := listQuery(t, modio.WithSort("name"), modio.WithQuery("dungeon"))
	assert.Equal(t, "name", query.Get("_sort"))
	assert.Equal(t, "dungeon", query.Get("_q"))

	query = listQuery(t, modio.WithSortDesc("date_updated"))
	assert.Equal(t, "-date_updated", query.Get("_sort"))
}

func TestListOptions_Filters(t *testing.T) {
	t.Parallel()
	query := listQuery(t,
		modio.FilterEq("name_id", "example-mod"),
		modio.FilterNot("status", 3),
		modio.FilterLike("name", "Example*"),
		modio.FilterIn("id", modio.ModID(42), modio.ModID(43)),
		modio.FilterMin("downloads_total", 100),
		modio.FilterMax("downloads_total", 1000),
		modio.FilterBitwiseAnd("maturity_option", 2),
	)

	assert.Equal(t, "example-mod", query.Get("name_id"))
	assert.Equal(t, "3", query.Get("status-not"))
	assert.Equal(t, "Example*", query.Get("name-lk"))
	assert.Equal(t, "42,43", query.Get("id-in"))
	assert.Equal(t, "100", query.Get("downloads_total-min"))
	assert.Equal(t, "1000", query.Get("downloads_total-max"))
	assert.Equal(t, "2", query.Get("maturity_option-bitwise-and"))
}

func TestListOptions_EventPolling(t *testing.T) {
	t.Parallel()
	api, transport := mockedAPI(t)

	transport.RegisterResponder("GET", "https://api.mod.io/v1/games/1/mods/events", func(req *http.Request) (*http.Response, error) {
		assert.Equal(t, "1700000000", req.URL.Query().Get("date_added-min"))
		return httpmock.NewJsonResponse(200, map[string]any{
			"data": []map[string]any{
				{"id": 1, "mod_id": 42, "date_added": 1700000100, "event_type": "MODFILE_CHANGED"},
			},
			"result_count": 1,
		})
	})

	page, err := api.ListModEventsRequest(1, modio.FilterMin("date_added", 1700000000)).Send(context.Background())
	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	assert.Equal(t, modio.EventModfileChanged, page.Data[0].EventType)
	assert.Equal(t, modio.ModID(42), page.Data[0].ModID)
}
