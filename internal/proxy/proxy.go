// Package proxy loads the ordered proxy table that profile creation
// cycles through. Row order is preserved because proxy assignment is
// positional.
package proxy

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/afero"

	"github.com/octobatch/octobatch/internal/config"
)

// Record is one row of the proxy table. Immutable once loaded; its
// identity is its position in the table.
type Record struct {
	// Type is the proxy protocol (http, https, socks5, ...).
	Type string
	// Host is the proxy hostname or IP address.
	Host string
	// Port is the proxy port. Always positive.
	Port int
	// Login is the optional proxy username. Empty means no auth.
	Login string
	// Password is the optional proxy password.
	Password string
}

// Addr returns the host:port form of the record, for display.
func (r Record) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// requiredFields are the header columns every proxy table must declare.
// Login and password columns are mandatory in the header even though
// their values may be empty.
var requiredFields = []string{"type", "host", "port", "login", "password"}

// Load reads proxy records from the CSV table at path, in file order.
// The delimiter is sniffed from the header line (comma, semicolon, tab
// or space). A missing file, a header lacking required fields, a
// non-numeric port or an empty table all fail with a ConfigError.
func Load(fsys afero.Fs, path string) ([]Record, error) {
	f, err := fsys.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, config.NewError(path, config.ErrFileNotFound)
		}
		return nil, config.NewError(path, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, config.NewError(path, err)
	}

	r := csv.NewReader(strings.NewReader(string(data)))
	r.Comma = sniffDelimiter(string(data))
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err == io.EOF {
		return nil, config.NewError(path, config.ErrNoProxies)
	}
	if err != nil {
		return nil, config.Errorf(path, "reading header: %v", err)
	}

	cols, err := headerIndex(header)
	if err != nil {
		return nil, config.NewError(path, err)
	}

	var records []Record
	row := 1
	for {
		fields, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, config.Errorf(path, "row %d: %v", row, err)
		}
		rec, err := parseRow(fields, cols)
		if err != nil {
			return nil, config.Errorf(path, "row %d: %v", row, err)
		}
		records = append(records, rec)
		row++
	}

	if len(records) == 0 {
		return nil, config.NewError(path, config.ErrNoProxies)
	}
	return records, nil
}

// sniffDelimiter picks the delimiter that occurs most often in the first
// line of the sample. Comma wins ties.
func sniffDelimiter(sample string) rune {
	line := sample
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	best, bestCount := ',', strings.Count(line, ",")
	for _, cand := range []rune{';', '\t', ' '} {
		if n := strings.Count(line, string(cand)); n > bestCount {
			best, bestCount = cand, n
		}
	}
	return best
}

// headerIndex maps the required field names to their column positions.
func headerIndex(header []string) (map[string]int, error) {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	var missing []string
	for _, name := range requiredFields {
		if _, ok := cols[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("header is missing required fields: %s", strings.Join(missing, ", "))
	}
	return cols, nil
}

func parseRow(fields []string, cols map[string]int) (Record, error) {
	get := func(name string) string {
		i := cols[name]
		if i >= len(fields) {
			return ""
		}
		return strings.TrimSpace(fields[i])
	}

	portStr := get("port")
	port, err := strconv.Atoi(portStr)
	if err != nil || port <= 0 {
		return Record{}, fmt.Errorf("invalid port %q", portStr)
	}

	return Record{
		Type:     get("type"),
		Host:     get("host"),
		Port:     port,
		Login:    get("login"),
		Password: get("password"),
	}, nil
}
