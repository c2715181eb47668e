package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestReadNamesFileSkipsBlankLines(t *testing.T) {
	path := writeTempFile(t, "names.txt", "Ada Lovelace\n\n  \nGrace Hopper\n")

	names, err := readNamesFile(path)
	require.NoError(t, err)
	require.Equal(t, []string{"Ada Lovelace", "Grace Hopper"}, names)
}

func TestReadNamesFileMissing(t *testing.T) {
	_, err := readNamesFile(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
}

func TestReadFormatsFileSkipsComments(t *testing.T) {
	path := writeTempFile(t, "formats.txt", "# corporate formats\nfirst.last\n\n# digits\nfirstlast3\n")

	formats, err := readFormatsFile(path)
	require.NoError(t, err)
	require.Equal(t, []string{"first.last", "firstlast3"}, formats)
}

func TestReadFormatsFileAllComments(t *testing.T) {
	path := writeTempFile(t, "formats.txt", "# nothing here\n# at all\n")

	_, err := readFormatsFile(path)
	require.ErrorContains(t, err, "no format patterns")
}

func TestOpenSinkStdout(t *testing.T) {
	sink, err := openSink("")
	require.NoError(t, err)
	require.False(t, sink.isFile())
	require.NoError(t, sink.close())

	sink, err = openSink("-")
	require.NoError(t, err)
	require.False(t, sink.isFile())
	require.NoError(t, sink.close())
}

func TestOpenSinkFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "wordlist.txt")

	sink, err := openSink(path)
	require.NoError(t, err)
	require.True(t, sink.isFile())

	_, err = sink.writer.Write([]byte("ada.lovelace\n"))
	require.NoError(t, err)
	require.NoError(t, sink.close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "ada.lovelace\n", string(data))
}
