package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/edhgrab"
	main "github.com/fwojciec/edhgrab/cmd/edhgrab"
	"github.com/fwojciec/edhgrab/extract"
	"github.com/fwojciec/edhgrab/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArticlesCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists discovered upgrade guides", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Discoverer: &extract.Discoverer{
				Sitemaps: &mock.SitemapService{
					DiscoverURLsFn: func(_ context.Context, _ string, _ *edhgrab.URLFilter) ([]string, error) {
						return []string{
							"https://edhrec.com/articles/korvold-upgrade-guide",
							"https://edhrec.com/articles/atraxa-upgrade-guide",
						}, nil
					},
				},
			},
		}

		cmd := &main.ArticlesCmd{URL: "https://edhrec.com/articles/"}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "https://edhrec.com/articles/korvold-upgrade-guide\n")
		assert.Contains(t, stdout.String(), "https://edhrec.com/articles/atraxa-upgrade-guide\n")
		assert.Contains(t, stderr.String(), "Found 2 upgrade guides")
	})

	t.Run("reports when no guides are found", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Discoverer: &extract.Discoverer{
				Sitemaps: &mock.SitemapService{
					DiscoverURLsFn: func(_ context.Context, _ string, _ *edhgrab.URLFilter) ([]string, error) {
						return nil, nil
					},
				},
				Fetcher: &mock.Fetcher{
					FetchFn: func(_ context.Context, _ string) (string, error) {
						return "<html><body>no articles</body></html>", nil
					},
				},
				Links: &mock.LinkExtractor{
					ExtractLinksFn: func(_ string, _ string) ([]edhgrab.DiscoveredLink, error) {
						return nil, nil
					},
				},
				Limiter: &mock.DomainLimiter{
					WaitFn: func(_ context.Context, _ string) error { return nil },
				},
				MaxPages: 5,
			},
		}

		cmd := &main.ArticlesCmd{URL: "https://edhrec.com/articles/"}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No upgrade guides found.")
		assert.Empty(t, stderr.String())
	})

	t.Run("reports discovery failures", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Discoverer: &extract.Discoverer{},
		}

		cmd := &main.ArticlesCmd{URL: "not a url"}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, edhgrab.EINVALID, edhgrab.ErrorCode(err))
		assert.Contains(t, stderr.String(), "error:")
	})
}
