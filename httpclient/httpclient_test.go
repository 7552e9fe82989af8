package httpclient

import (
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockTransportServesBodies(t *testing.T) {
	var client http.Client
	mock := NewHttpClientMock(&client)
	mock.AddPage("http://example.com/x", "payload")

	resp, err := client.Get("http://example.com/x")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "payload", string(body))
	assert.Equal(t, 1, mock.Calls("http://example.com/x"))
}

func TestMockTransportDefaultsUnknownRequestsToOK(t *testing.T) {
	var client http.Client
	mock := NewHttpClientMock(&client)

	resp, err := client.Get("http://example.com/unregistered")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, mock.Calls("http://example.com/unregistered"))
}

func TestNewBuildsInstrumentedClient(t *testing.T) {
	client := New("cachetrace", "test", 5*time.Second)
	require.NotNil(t, client)
	assert.Equal(t, 5*time.Second, client.Timeout)
	assert.IsType(t, &transport{}, client.Transport)
}
