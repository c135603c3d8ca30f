package client

import (
	"github.com/umisama/go-regexpcache"
)

const (
	ContentTypeApplicationJSON       = "application/json"
	ContentTypeApplicationJSONRegexp = `^application/([a-zA-Z0-9\.\-]+\+)?json($|;)`
)

func isJSONContentType(contentType string) bool {
	return regexpcache.MustCompile(ContentTypeApplicationJSONRegexp).MatchString(contentType)
}
