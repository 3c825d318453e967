package loader_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ensaremirerol/shacl-validate/internal/loader"
)

func TestLoadParsesNQuads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.nq")
	content := `<ex:alice> <ex:name> "Alice" .
<ex:alice> <rdf:type> <ex:Person> .
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	g, err := loader.Load(path)
	require.NoError(t, err)
	require.Equal(t, 2, g.Len())
}

func TestLoadMissingFileErrors(t *testing.T) {
	_, err := loader.Load(filepath.Join(t.TempDir(), "missing.nq"))
	require.Error(t, err)
}
