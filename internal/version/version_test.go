package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFullVersion(t *testing.T) {
	oldVersion, oldCommit := Version, Commit
	t.Cleanup(func() { Version, Commit = oldVersion, oldCommit })

	Version, Commit = "1.2.3", ""
	assert.Equal(t, "v1.2.3", FullVersion())

	Commit = "abc1234"
	assert.Equal(t, "v1.2.3 (abc1234)", FullVersion())
}
