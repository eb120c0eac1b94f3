package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDocTitle(t *testing.T) {
	assert.Equal(t, "mlvm", docTitle("/tmp/ref/mlvm.md"))
	assert.Equal(t, "node install", docTitle("/tmp/ref/mlvm_node_install.md"))
	assert.Equal(t, "list-remote", docTitle("mlvm_list-remote.md"))
}

func TestDocFrontMatter(t *testing.T) {
	got := docFrontMatter("mlvm_python_use.md")
	assert.Equal(t, "---\ntitle: \"python use\"\ndescription: \"Reference for the python use command\"\n---\n", got)
}

func TestDocLink(t *testing.T) {
	assert.Equal(t, "/reference/mlvm_go_current/", docLink("mlvm_go_current.md"))
}
