package song

import (
	"fmt"
	"strings"
)

// Catalog is an ordered, read-only set of songs.
type Catalog struct {
	songs []*Song
}

// NewCatalog builds a catalog. Names are matched case-insensitively, so they
// must be unique ignoring case.
func NewCatalog(songs ...*Song) (*Catalog, error) {
	seen := make(map[string]bool, len(songs))
	for _, s := range songs {
		key := strings.ToLower(s.Name)
		if seen[key] {
			return nil, fmt.Errorf("duplicate song name %q", s.Name)
		}
		seen[key] = true
	}
	return &Catalog{songs: songs}, nil
}

// Len returns the number of songs.
func (c *Catalog) Len() int {
	return len(c.songs)
}

// At returns the song at index i, wrapping around in both directions.
func (c *Catalog) At(i int) *Song {
	if len(c.songs) == 0 {
		return nil
	}
	i %= len(c.songs)
	if i < 0 {
		i += len(c.songs)
	}
	return c.songs[i]
}

// Lookup finds a song by name and returns it with its index.
func (c *Catalog) Lookup(name string) (*Song, int, bool) {
	for i, s := range c.songs {
		if strings.EqualFold(s.Name, name) {
			return s, i, true
		}
	}
	return nil, -1, false
}

// Names lists song names in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.songs))
	for i, s := range c.songs {
		names[i] = s.Name
	}
	return names
}

// Builtin returns the songs compiled into the binary.
func Builtin() *Catalog {
	return builtin
}

var builtin = &Catalog{songs: []*Song{
	MustNew("scale", 120, scaleData),
	MustNew("arpeggio", 140, arpeggioData),
	MustNew("twinkle", 100, twinkleData),
	MustNew("cluster", 90, clusterData),
}}
