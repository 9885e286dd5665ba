package cmd

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/urfave/cli"
)

// check runs the load/build phase only and prints the resulting plan.
// It never touches the API, so it needs no token.
func check(ctx *cli.Context) error {
	specs, err := loadSpecs(afero.NewOsFs(), proxyFile, cookieFile, count)
	if err != nil {
		return err
	}

	fmt.Printf("Plan: %d profile(s)\n", len(specs))
	for _, s := range specs {
		withCookies := "no"
		if s.Cookies != nil {
			withCookies = "yes"
		}
		fmt.Printf("  #%-3d %s://%s  cookies: %s\n", s.Index+1, s.Proxy.Type, s.Proxy.Addr(), withCookies)
	}
	return nil
}
