package drivers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"getdriver.dev/cli/internal/core/domain"
)

func TestChromeBestDriverVersionUsesBrowserMajor(t *testing.T) {
	fetcher := newFakeFetcher()
	fetcher.responses["https://chromedriver.storage.googleapis.com/LATEST_RELEASE_114"] = "114.0.5735.90\n"
	chrome := NewChrome(testDeps(mustDescriptor("linux"), nil, nil, fetcher, nil))

	v, err := chrome.BestDriverVersion(context.Background(), "114.0.5735.16")
	require.NoError(t, err)
	assert.Equal(t, "114.0.5735.90", v)
	assert.Equal(t, []string{"https://chromedriver.storage.googleapis.com/LATEST_RELEASE_114"}, fetcher.requested)
}

func TestChromeBestDriverVersionWithoutBrowser(t *testing.T) {
	fetcher := newFakeFetcher()
	fetcher.responses["https://chromedriver.storage.googleapis.com/LATEST_RELEASE"] = "120.0.6099.109"
	chrome := NewChrome(testDeps(mustDescriptor("linux"), nil, nil, fetcher, nil))

	// No browser detected: fall back to the newest release train.
	v, err := chrome.BestDriverVersion(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "120.0.6099.109", v)
}

func TestChromeBestDriverVersionEmptyBody(t *testing.T) {
	fetcher := newFakeFetcher()
	fetcher.responses["https://chromedriver.storage.googleapis.com/LATEST_RELEASE_114"] = "  \n"
	chrome := NewChrome(testDeps(mustDescriptor("linux"), nil, nil, fetcher, nil))

	_, err := chrome.BestDriverVersion(context.Background(), "114.0.5735.16")
	assert.ErrorIs(t, err, domain.ErrEmptyTag)
}

func TestChromeInstallLinux(t *testing.T) {
	arch := &fakeArchive{}
	chrome := NewChrome(testDeps(mustDescriptor("linux"), nil, nil, nil, arch))

	artifact, err := chrome.Install(context.Background(), "114.0.5735.90", "/tmp/drivers")
	require.NoError(t, err)

	assert.Equal(t,
		"https://chromedriver.storage.googleapis.com/114.0.5735.90/chromedriver_linux64.zip",
		arch.lastReq.URL)
	// chromedriver sits at the archive root, unlike operadriver.
	assert.Equal(t, "chromedriver", arch.lastReq.NameInArchive)
	assert.Equal(t, "chromedriver", arch.lastReq.OutputName)
	assert.True(t, arch.lastReq.Zip)
	assert.Equal(t, "/tmp/drivers/chromedriver", artifact.Path)
}

func TestChromeInstallWindows(t *testing.T) {
	arch := &fakeArchive{}
	chrome := NewChrome(testDeps(mustDescriptor("windows"), nil, nil, nil, arch))

	_, err := chrome.Install(context.Background(), "114.0.5735.90", t.TempDir())
	require.NoError(t, err)
	assert.Equal(t,
		"https://chromedriver.storage.googleapis.com/114.0.5735.90/chromedriver_win64.zip",
		arch.lastReq.URL)
	assert.Equal(t, "chromedriver.exe", arch.lastReq.NameInArchive)
	assert.Equal(t, "chromedriver.exe", arch.lastReq.OutputName)
}

func TestChromeInstallUnsupportedPlatform(t *testing.T) {
	arch := &fakeArchive{}
	chrome := NewChrome(testDeps(domain.Descriptor{OS: "freebsd"}, nil, nil, nil, arch))

	_, err := chrome.Install(context.Background(), "114.0.5735.90", t.TempDir())
	assert.ErrorIs(t, err, domain.ErrUnsupportedPlatform)
	assert.False(t, arch.called)
}

func TestChromeBrowserVersionLinuxExtractsNumericToken(t *testing.T) {
	runner := newScriptedRunner()
	runner.outputs["google-chrome"] = "Google Chrome 114.0.5735.90 \n"
	chrome := NewChrome(testDeps(mustDescriptor("linux"), runner, nil, nil, nil))

	v, ok, err := chrome.InstalledBrowserVersion(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "114.0.5735.90", v)
}

func TestChromeBrowserVersionLinuxCandidateOrder(t *testing.T) {
	runner := newScriptedRunner()
	runner.outputs["chromium-browser"] = "Chromium 113.0.5672.63 snap\n"
	chrome := NewChrome(testDeps(mustDescriptor("linux"), runner, nil, nil, nil))

	v, ok, err := chrome.InstalledBrowserVersion(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "113.0.5672.63", v)
	// All earlier candidates were tried and missed.
	assert.Len(t, runner.calls, 4)
}

func TestChromeBrowserVersionNotInstalled(t *testing.T) {
	chrome := NewChrome(testDeps(mustDescriptor("linux"), newScriptedRunner(), nil, nil, nil))

	_, ok, err := chrome.InstalledBrowserVersion(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestChromeNames(t *testing.T) {
	chrome := NewChrome(testDeps(mustDescriptor("linux"), nil, nil, nil, nil))
	assert.Equal(t, "chrome", chrome.BrowserName())
	assert.Equal(t, "chromedriver", chrome.DriverName())
}
