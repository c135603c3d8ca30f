package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToFormBody(t *testing.T) {
	t.Parallel()
	out := ToFormBody(map[string]any{
		"name":    "Example Mod",
		"visible": 1,
		"active":  true,
		"tags":    []string{"Tools", "UI"},
		"meta":    map[string]string{"key": "value"},
	})
	assert.Equal(t, map[string]string{
		"name":      "Example Mod",
		"visible":   "1",
		"active":    "true",
		"tags[0]":   "Tools",
		"tags[1]":   "UI",
		"meta[key]": "value",
	}, out)
}

func TestStructToMap(t *testing.T) {
	t.Parallel()
	type params struct {
		Name      string `json:"name"`
		NameID    string `json:"name_id" writeoptional:"true"`
		Alias     string `writeas:"alias_field" json:"alias"`
		Internal  string `json:"internal" readonly:"true"`
		Skipped   string `json:"-"`
		Unchanged string `json:"unchanged" writeoptional:"true"`
	}

	out := StructToMap(&params{Name: "Example", NameID: "example", Alias: "a", Internal: "x", Skipped: "y"}, nil)
	assert.Equal(t, map[string]any{
		"name":        "Example",
		"name_id":     "example",
		"alias_field": "a",
	}, out)

	// Allowed fields filter
	out = StructToMap(&params{Name: "Example", NameID: "example"}, []string{"name"})
	assert.Equal(t, map[string]any{"name": "Example"}, out)
}
