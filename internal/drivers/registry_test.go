package drivers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryKnownBrowsers(t *testing.T) {
	assert.Equal(t, []string{"chrome", "opera"}, Browsers())
}

func TestNewSelectsInstallerByName(t *testing.T) {
	deps := testDeps(mustDescriptor("linux"), nil, &fakeTags{}, newFakeFetcher(), &fakeArchive{})

	opera, err := New("opera", deps)
	require.NoError(t, err)
	assert.Equal(t, "opera", opera.BrowserName())

	chrome, err := New("chrome", deps)
	require.NoError(t, err)
	assert.Equal(t, "chromedriver", chrome.DriverName())
}

func TestNewUnknownBrowser(t *testing.T) {
	_, err := New("netscape", testDeps(mustDescriptor("linux"), nil, nil, nil, nil))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "netscape")
	assert.Contains(t, err.Error(), "chrome, opera")
}

func TestNewDefaultsOptionalDeps(t *testing.T) {
	deps := Deps{Descriptor: mustDescriptor("linux")}

	installer, err := New("opera", deps)
	require.NoError(t, err)
	require.NotNil(t, installer)
}

func TestCurrentUsernameStripsDomain(t *testing.T) {
	name, err := currentUsername()
	require.NoError(t, err)
	assert.NotContains(t, name, `\`)
	assert.NotEmpty(t, name)
}
