package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntryKey(t *testing.T) {
	assert.Equal(t,
		"82a3537ff0dbce7eec35d69edc3a189ee6f17d82f353a553f9aa96cb0be3ce89",
		EntryKey("name"))
	assert.Equal(t, EntryKey("description"), EntryKey("description"))
	assert.NotEqual(t, EntryKey("name"), EntryKey("image"))
}

func TestBuildContentDict(t *testing.T) {
	dict := BuildContentDict(map[string]string{
		"name":        "Northwind Collective",
		"description": "weighted governance",
	})
	require.Len(t, dict, 2)
	assert.Equal(t, "Northwind Collective", dict[EntryKey("name")])
	assert.Equal(t, "weighted governance", dict[EntryKey("description")])
}

func TestDraftDictSkipsEmptyFields(t *testing.T) {
	d := DaoDraft{Name: "Northwind Collective", Image: "ipfs://img"}
	dict := d.Dict()
	require.Len(t, dict, 2)
	assert.Equal(t, "Northwind Collective", dict[EntryKey("name")])
	_, hasDesc := dict[EntryKey("description")]
	assert.False(t, hasDesc)
}

func TestNamesSorted(t *testing.T) {
	names := Names(map[string]string{"image": "", "name": "", "description": ""})
	assert.Equal(t, []string{"description", "image", "name"}, names)
}
