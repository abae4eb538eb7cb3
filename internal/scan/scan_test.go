package scan

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/kerem-kaynak/phrase-matcher/pkg/phrase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFiles(t *testing.T) {
	m, err := phrase.NewBuilder().IgnoreCase().AddPhrase("golden hammer").Build()
	require.NoError(t, err)

	dir := t.TempDir()
	var paths []string
	for i := 0; i < 10; i++ {
		path := filepath.Join(dir, fmt.Sprintf("page%d.html", i))
		body := "<p>nothing here</p>"
		if i%2 == 0 {
			body = "<p>a Golden <b>Hammer</b></p>"
		}
		require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
		paths = append(paths, path)
	}

	results, err := Files(context.Background(), m, paths, 3)
	require.NoError(t, err)
	require.Len(t, results, len(paths))
	for i, r := range results {
		assert.Equal(t, paths[i], r.Path)
		if i%2 == 0 {
			require.Len(t, r.Matches, 1)
			assert.Equal(t, phrase.Match{Start: 5, End: 21, Phrase: "golden hammer", Text: "Golden <b>Hammer"}, r.Matches[0])
		} else {
			assert.Empty(t, r.Matches)
		}
	}
}

func TestFilesReadError(t *testing.T) {
	m, err := phrase.NewBuilder().AddPhrase("golden hammer").Build()
	require.NoError(t, err)

	_, err = Files(context.Background(), m, []string{filepath.Join(t.TempDir(), "missing.html")}, 1)
	assert.ErrorContains(t, err, "missing.html")
}

func TestFilesStdinOnce(t *testing.T) {
	m, err := phrase.NewBuilder().Build()
	require.NoError(t, err)

	_, err = Files(context.Background(), m, []string{Stdin, "a.html", Stdin}, 2)
	assert.ErrorContains(t, err, "stdin listed more than once")
}

func TestFilesCanceled(t *testing.T) {
	m, err := phrase.NewBuilder().Build()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Files(ctx, m, []string{"a", "b"}, 1)
	assert.ErrorIs(t, err, context.Canceled)
}
