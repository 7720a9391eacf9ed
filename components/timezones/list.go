package timezones

import (
	"bufio"
	"embed"
	"fmt"
	"io"
	"slices"
	"strings"
	"sync"
)

//go:embed data/iana_timezones.txt
var dataFS embed.FS

const embeddedList = "data/iana_timezones.txt"

var loadEmbedded = sync.OnceValues(func() ([]string, error) {
	f, err := dataFS.Open(embeddedList)
	if err != nil {
		return nil, fmt.Errorf("timezones: open embedded list: %w", err)
	}
	defer func() { _ = f.Close() }()
	return LoadZones(f)
})

// DefaultZones returns a copy of the embedded zone list.
func DefaultZones() ([]string, error) {
	zones, err := loadEmbedded()
	if err != nil {
		return nil, err
	}
	return slices.Clone(zones), nil
}

// LoadZones reads one zone per line, skipping blanks, comments and
// duplicates. The result is sorted.
func LoadZones(r io.Reader) ([]string, error) {
	if r == nil {
		return nil, fmt.Errorf("timezones: missing reader")
	}

	seen := map[string]struct{}{}
	zones := make([]string, 0, 512)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if _, dup := seen[line]; dup {
			continue
		}
		seen[line] = struct{}{}
		zones = append(zones, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("timezones: read list: %w", err)
	}

	slices.Sort(zones)
	return zones, nil
}
