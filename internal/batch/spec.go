// Package batch turns a target count, a proxy table and a cookie map
// into an ordered creation plan and drives it through the API client.
package batch

import (
	"github.com/octobatch/octobatch/internal/config"
	"github.com/octobatch/octobatch/internal/cookies"
	"github.com/octobatch/octobatch/internal/proxy"
)

// ProfileSpec is one planned profile creation. Never mutated after Build.
type ProfileSpec struct {
	// Index is the 0-based creation order.
	Index int
	// Proxy is the record assigned to this profile.
	Proxy proxy.Record
	// Cookies is the optional cookie payload. Nil means no cookies.
	Cookies cookies.Set
}

// Build produces the ordered creation plan for count profiles. Proxies
// are assigned round-robin by position (proxies[i mod len(proxies)]) and
// cookies are looked up by decimal string index, defaulting to none.
//
// Build is pure and deterministic: identical inputs yield identical
// plans. It fails with a ConfigError when count is not positive or the
// proxy table is empty.
func Build(count int, proxies []proxy.Record, cookieMap cookies.Map) ([]ProfileSpec, error) {
	if count <= 0 {
		return nil, config.NewError("count", config.ErrBadCount)
	}
	if len(proxies) == 0 {
		return nil, config.NewError("proxies", config.ErrNoProxies)
	}

	specs := make([]ProfileSpec, count)
	for i := range specs {
		specs[i] = ProfileSpec{
			Index:   i,
			Proxy:   proxies[i%len(proxies)],
			Cookies: cookieMap.Lookup(i),
		}
	}
	return specs, nil
}
