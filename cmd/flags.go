package cmd

import (
	"time"

	"github.com/urfave/cli"
)

var (
	proxyFile   string
	cookieFile  string
	count       int
	apiToken    string
	apiURL      string
	titlePrefix string
	reqTimeout  time.Duration
	quiet       bool
	debug       bool
)

var createFlags = []cli.Flag{
	cli.StringFlag{
		Name:        "proxy-file, p",
		Usage:       "path to the proxy CSV table (header: type,host,port,login,password)",
		EnvVar:      "OCTO_PROXY_FILE",
		Value:       DEF_PROXY_FILE,
		Destination: &proxyFile,
	},
	cli.StringFlag{
		Name:        "cookie-file, k",
		Usage:       "path to the optional cookies JSON file keyed by profile index",
		EnvVar:      "OCTO_COOKIE_FILE",
		Value:       DEF_COOKIE_FILE,
		Destination: &cookieFile,
	},
	cli.IntFlag{
		Name:        "count, n",
		Usage:       "number of profiles to create (0 = one per proxy row)",
		EnvVar:      "OCTO_PROFILE_COUNT",
		Value:       0,
		Destination: &count,
	},
	cli.StringFlag{
		Name:        "token, t",
		Usage:       "Octo API token (falls back to the OS keyring, see 'octobatch token')",
		EnvVar:      "OCTO_API_TOKEN",
		Destination: &apiToken,
	},
	cli.StringFlag{
		Name:        "api-url",
		Usage:       "base URL of the Octo automation API",
		EnvVar:      "OCTO_API_URL",
		Destination: &apiURL,
	},
	cli.StringFlag{
		Name:        "title-prefix",
		Usage:       "prefix for generated profile titles",
		EnvVar:      "OCTO_TITLE_PREFIX",
		Value:       DEF_TITLE_PREFIX,
		Destination: &titlePrefix,
	},
	cli.DurationFlag{
		Name:        "timeout",
		Usage:       "per-request timeout for API calls",
		EnvVar:      "OCTO_REQ_TIMEOUT",
		Value:       DEF_TIMEOUT,
		Destination: &reqTimeout,
	},
	cli.BoolFlag{
		Name:        "quiet, q",
		Usage:       "disable the progress bar",
		Destination: &quiet,
	},
	cli.BoolFlag{
		Name:        "debug",
		Usage:       "enable verbose logging",
		Hidden:      true,
		Destination: &debug,
	},
}

// checkFlags reuses the create flags minus API-call settings that a dry
// run never touches.
var checkFlags = []cli.Flag{
	createFlags[0], // proxy-file
	createFlags[1], // cookie-file
	createFlags[2], // count
}
