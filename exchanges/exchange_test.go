package exchange

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEndpointsGetURL(t *testing.T) {
	t.Parallel()
	e := NewEndpoints("bitflyer.com")
	e.SetDefaultEndpoints(map[URL]string{
		RestSpot:      "https://api.{hostname}",
		ChainAnalysis: "https://chainflyer.bitflyer.jp/v1/",
	})

	u, err := e.GetURL(RestSpot)
	require.NoError(t, err)
	assert.Equal(t, "https://api.bitflyer.com", u)

	u, err = e.GetURL(ChainAnalysis)
	require.NoError(t, err)
	assert.Equal(t, "https://chainflyer.bitflyer.jp/v1/", u)

	_, err = e.GetURL("UnknownURL")
	assert.ErrorIs(t, err, ErrEndpointNotFound)

	e.SetHostname("bitflyer.jp")
	u, err = e.GetURL(RestSpot)
	require.NoError(t, err)
	assert.Equal(t, "https://api.bitflyer.jp", u)

	e.SetRunningURL(RestSpot, "http://127.0.0.1:9999")
	u, err = e.GetURL(RestSpot)
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:9999", u)
}

func TestGetCredentials(t *testing.T) {
	t.Parallel()
	b := Base{Name: "testexch"}
	_, err := b.GetCredentials()
	assert.ErrorIs(t, err, ErrCredentialsNotSet)

	b.SetCredentials("key", "")
	_, err = b.GetCredentials()
	assert.ErrorIs(t, err, ErrCredentialsNotSet)

	b.SetCredentials("key", "secret")
	creds, err := b.GetCredentials()
	require.NoError(t, err)
	assert.Equal(t, "key", creds.Key)
	assert.Equal(t, "secret", creds.Secret)
	assert.True(t, b.API.AuthenticatedSupport)
}
