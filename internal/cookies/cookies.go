// Package cookies loads the optional per-profile cookie map. Cookie
// payloads are opaque: they pass through to the API untouched.
package cookies

import (
	"encoding/json"
	"errors"
	"os"
	"strconv"

	"github.com/spf13/afero"

	"github.com/octobatch/octobatch/internal/config"
)

// Set is one profile's cookie payload, kept as raw JSON.
type Set = json.RawMessage

// Map associates decimal string creation indices ("0", "1", ...) with
// cookie sets. Indices without an entry simply get no cookies.
type Map map[string]Set

// Lookup returns the cookie set for the given creation index, or nil
// when none is configured.
func (m Map) Lookup(index int) Set {
	return m[strconv.Itoa(index)]
}

// Load reads the cookie map from the JSON file at path. A missing file
// is not an error: cookies are optional, so it yields an empty map.
// Content that is not a JSON object fails with a ConfigError.
func Load(fsys afero.Fs, path string) (Map, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Map{}, nil
		}
		return nil, config.NewError(path, err)
	}

	var m Map
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, config.Errorf(path, "cookie file must be a JSON object: %v", err)
	}
	if m == nil {
		// JSON null decodes to a nil map.
		m = Map{}
	}
	return m, nil
}
