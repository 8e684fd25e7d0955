// Package content builds the off-chain metadata dictionaries that ride
// along with dao deployments: every entry is stored under the sha256 hash
// of its name so clients can look fields up without parsing the whole blob.
package content

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
)

// EntryKey returns the dictionary key for a named entry.
func EntryKey(name string) string {
	sum := sha256.Sum256([]byte(name))
	return hex.EncodeToString(sum[:])
}

// BuildContentDict hashes every entry name and returns the lookup table.
func BuildContentDict(entries map[string]string) map[string]string {
	dict := make(map[string]string, len(entries))
	for name, value := range entries {
		dict[EntryKey(name)] = value
	}
	return dict
}

// DaoDraft is the standard metadata set a dao publishes about itself.
type DaoDraft struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
	Image       string `yaml:"image" json:"image"`
}

// Dict renders the draft as a content dictionary, skipping empty fields.
func (d *DaoDraft) Dict() map[string]string {
	entries := map[string]string{}
	if d.Name != "" {
		entries["name"] = d.Name
	}
	if d.Description != "" {
		entries["description"] = d.Description
	}
	if d.Image != "" {
		entries["image"] = d.Image
	}
	return BuildContentDict(entries)
}

// Names lists the entry names a key table covers, sorted for stable output.
func Names(entries map[string]string) []string {
	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
