package selfupdate

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func releaseServer(t *testing.T, tag string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/repos/misaki/kumora/releases/latest", r.URL.Path)
		fmt.Fprintf(w, `{"tag_name":%q,"html_url":"https://example.com/release/%s"}`, tag, tag)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestCheck_UpdateAvailable(t *testing.T) {
	srv := releaseServer(t, "v1.3.0")
	c := NewChecker(WithAPIBaseURL(srv.URL))

	result, err := c.Check(context.Background(), &CheckInput{Version: "v1.2.0"})
	require.NoError(t, err)
	assert.True(t, result.UpdateAvailable)
	assert.Equal(t, "v1.3.0", result.LatestVersion)
	assert.Equal(t, "https://example.com/release/v1.3.0", result.ReleaseURL)
}

func TestCheck_AlreadyLatest(t *testing.T) {
	srv := releaseServer(t, "v1.2.0")
	c := NewChecker(WithAPIBaseURL(srv.URL))

	result, err := c.Check(context.Background(), &CheckInput{Version: "v1.2.0"})
	require.NoError(t, err)
	assert.False(t, result.UpdateAvailable)
}

func TestCheck_NewerLocalBuild(t *testing.T) {
	srv := releaseServer(t, "v1.2.0")
	c := NewChecker(WithAPIBaseURL(srv.URL))

	result, err := c.Check(context.Background(), &CheckInput{Version: "v2.0.0"})
	require.NoError(t, err)
	assert.False(t, result.UpdateAvailable)
}

func TestCheck_HandlesUnprefixedVersions(t *testing.T) {
	srv := releaseServer(t, "1.3.0")
	c := NewChecker(WithAPIBaseURL(srv.URL))

	result, err := c.Check(context.Background(), &CheckInput{Version: "1.2.9"})
	require.NoError(t, err)
	assert.True(t, result.UpdateAvailable)
}

func TestCheck_DevBuild(t *testing.T) {
	c := NewChecker()

	_, err := c.Check(context.Background(), &CheckInput{Version: "(devel)"})
	require.ErrorIs(t, err, ErrDevBuild)
}

func TestCheck_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)
	c := NewChecker(WithAPIBaseURL(srv.URL))

	_, err := c.Check(context.Background(), &CheckInput{Version: "v1.0.0"})
	require.Error(t, err)
}
