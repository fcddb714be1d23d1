//go:build debug

package debug

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCategories(t *testing.T) {
	def := parseCategories("")
	assert.True(t, def[TREE])
	assert.False(t, def[FS_ENTRY])

	all := parseCategories("all")
	assert.True(t, all[FS_ENTRY])
	assert.True(t, all[APP])

	none := parseCategories("None")
	assert.False(t, none[APP])

	some := parseCategories("tree, fs")
	assert.True(t, some[TREE])
	assert.True(t, some[FS])
	assert.False(t, some[APP])
}

func TestLogRespectsCategory(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	SetCategories(map[Category]bool{TREE: true, UI: false})

	Log(TREE, "created %s", "Docs")
	Log(UI, "hidden")

	assert.Contains(t, buf.String(), "[TREE] created Docs")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, ListEnabled(), TREE)
}
