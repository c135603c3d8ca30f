package decode

import (
	"bytes"
	"compress/gzip"
	"io"
	"strings"
	"testing"

	"github.com/andybalholm/brotli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_Identity(t *testing.T) {
	t.Parallel()
	out, err := Decode(io.NopCloser(strings.NewReader("plain body")), "")
	require.NoError(t, err)
	content, err := io.ReadAll(out)
	require.NoError(t, err)
	assert.Equal(t, "plain body", string(content))
}

func TestDecode_Gzip(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	_, err := w.Write([]byte("gzip body"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	out, err := Decode(io.NopCloser(&buf), "gzip")
	require.NoError(t, err)
	content, err := io.ReadAll(out)
	require.NoError(t, err)
	assert.Equal(t, "gzip body", string(content))
}

func TestDecode_Brotli(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	w := brotli.NewWriter(&buf)
	_, err := w.Write([]byte("brotli body"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	out, err := Decode(io.NopCloser(&buf), "br")
	require.NoError(t, err)
	content, err := io.ReadAll(out)
	require.NoError(t, err)
	assert.Equal(t, "brotli body", string(content))
}
