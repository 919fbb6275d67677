package drivers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"getdriver.dev/cli/internal/core/domain"
	"getdriver.dev/cli/internal/core/ports"
	"getdriver.dev/cli/internal/platform"
)

// scriptedRunner scripts probe command results keyed by executable name.
type scriptedRunner struct {
	outputs map[string]string
	calls   [][]string
}

func newScriptedRunner() *scriptedRunner {
	return &scriptedRunner{outputs: make(map[string]string)}
}

func (r *scriptedRunner) Output(ctx context.Context, name string, args ...string) (string, error) {
	r.calls = append(r.calls, append([]string{name}, args...))
	out, ok := r.outputs[name]
	if !ok {
		return "", fmt.Errorf("command %s: executable file not found in $PATH", name)
	}
	return out, nil
}

// fakeTags is a canned TagResolver.
type fakeTags struct {
	tag   string
	err   error
	calls int
}

func (f *fakeTags) LatestTag(ctx context.Context, repo string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.tag, nil
}

// fakeFetcher serves canned bodies keyed by URL and records requests.
type fakeFetcher struct {
	responses map[string]string
	requested []string
}

func newFakeFetcher() *fakeFetcher {
	return &fakeFetcher{responses: make(map[string]string)}
}

func (f *fakeFetcher) Fetch(ctx context.Context, url string) (io.ReadCloser, int64, error) {
	f.requested = append(f.requested, url)
	body, ok := f.responses[url]
	if !ok {
		return nil, 0, fmt.Errorf("fetch %s: unexpected status 404", url)
	}
	return io.NopCloser(strings.NewReader(body)), int64(len(body)), nil
}

// fakeArchive records the install request instead of downloading.
type fakeArchive struct {
	lastReq ports.InstallRequest
	called  bool
	err     error
}

func (f *fakeArchive) InstallBinary(ctx context.Context, req ports.InstallRequest) (string, error) {
	f.called = true
	f.lastReq = req
	if f.err != nil {
		return "", f.err
	}
	return req.OutputDir + "/" + req.OutputName, nil
}

var errNotOnPath = errors.New("executable file not found in $PATH")

// testDeps assembles a Deps bundle with every collaborator faked.
func testDeps(desc domain.Descriptor, runner ports.CommandRunner, tags *fakeTags, fetcher *fakeFetcher, arch *fakeArchive) Deps {
	if runner == nil {
		runner = newScriptedRunner()
	}
	return Deps{
		Descriptor: desc,
		Probe:      platform.NewProbe(runner),
		Tags:       tags,
		Fetcher:    fetcher,
		Archive:    arch,
		LookPath:   func(string) (string, error) { return "", errNotOnPath },
		Username:   func() (string, error) { return "testuser", nil },
	}
}

func mustDescriptor(goos string) domain.Descriptor {
	desc, err := domain.DescribePlatform(goos)
	if err != nil {
		panic(err)
	}
	return desc
}
