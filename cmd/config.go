package cmd

import (
	"strings"
	"time"

	"github.com/spf13/afero"

	"github.com/octobatch/octobatch/internal/batch"
	"github.com/octobatch/octobatch/internal/config"
	"github.com/octobatch/octobatch/internal/cookies"
	"github.com/octobatch/octobatch/internal/octo"
	"github.com/octobatch/octobatch/internal/proxy"
)

const (
	DEF_PROXY_FILE   = "proxies.csv"
	DEF_COOKIE_FILE  = "cookies.json"
	DEF_TITLE_PREFIX = "BatchProfile"
	DEF_TIMEOUT      = time.Second * 30
)

const DESCRIPTION = `
Octobatch creates Octo Browser profiles in bulk. Each profile is
assigned a proxy cycled from a CSV table and, optionally, a cookie
set imported from a JSON file keyed by creation index. Fingerprints
are generated remotely by the Octo API from its default template.
`

const (
	CreateDescription = `The create command loads the proxy table and the optional
cookie file, then creates one profile per planned slot through
the Octo automation API. Proxies are reused round-robin when
the requested count exceeds the table length. A profile that
fails to create is reported and the batch continues.

Example:
        octobatch create -n 10

`
	CheckDescription = `The check command validates the configured inputs and prints
the planned (index, proxy, cookies) assignments without calling
the API. Use it to verify proxy cycling and cookie matching
before spending rate-limited requests.

Example:
        octobatch check --proxy-file proxies.csv

`
	TokenDescription = `The token command manages the Octo API token stored in the
OS keyring. A token passed via --token or OCTO_API_TOKEN always
takes precedence over the stored one.

Example:
        octobatch token set <api-token>

`
)

// buildConfig assembles the run configuration from flags, environment
// and the OS keyring. The token is the only setting with a fallback
// chain; everything else comes straight from flag destinations.
func buildConfig() (*config.Config, error) {
	token := strings.TrimSpace(apiToken)
	if token == "" {
		token = storedToken()
	}
	if token == "" {
		return nil, config.NewError("token", config.ErrMissingToken)
	}
	return &config.Config{
		Token:       token,
		APIURL:      apiURL,
		ProxyFile:   proxyFile,
		CookieFile:  cookieFile,
		Count:       count,
		TitlePrefix: titlePrefix,
		Timeout:     reqTimeout,
		Quiet:       quiet,
		Debug:       debug,
	}, nil
}

// loadSpecs runs the load/build phase: proxy table, cookie map, then
// the ordered creation plan. Any error here is fatal configuration,
// surfaced before a single API call is made.
func loadSpecs(fsys afero.Fs, proxyPath, cookiePath string, n int) ([]batch.ProfileSpec, error) {
	proxies, err := proxy.Load(fsys, proxyPath)
	if err != nil {
		return nil, err
	}
	cookieMap, err := cookies.Load(fsys, cookiePath)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		n = len(proxies)
	}
	return batch.Build(n, proxies, cookieMap)
}

// newOctoClient builds the API client from the resolved configuration.
func newOctoClient(cfg *config.Config) (*octo.Client, error) {
	return octo.NewClient(octo.Options{
		BaseURL:     cfg.APIURL,
		Token:       cfg.Token,
		Timeout:     cfg.Timeout,
		TitlePrefix: cfg.TitlePrefix,
		Logger:      newRunLogger(cfg),
	})
}
