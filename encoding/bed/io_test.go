package bed

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/grailbio/testutil"
	"github.com/grailbio/testutil/expect"
	"github.com/stretchr/testify/require"
)

func TestWriteAllReadAll(t *testing.T) {
	tempDir, cleanup := testutil.TempDir(t, "", "")
	defer cleanup()
	ctx := context.Background()

	records := []Bed3{
		{"chr1", 2, 5},
		{"chr1", 4, 10},
		{"chr2", 4, 5},
	}
	for _, name := range []string{"features.bed", "features.bed.gz", "features.bed.bgz"} {
		path := filepath.Join(tempDir, name)
		require.NoError(t, WriteAll(ctx, path, records))
		got, err := ReadAll[Bed3](ctx, path)
		require.NoError(t, err)
		expect.EQ(t, got, records)
	}

	// The compressed outputs must actually be compressed.
	for _, name := range []string{"features.bed.gz", "features.bed.bgz"} {
		data, err := os.ReadFile(filepath.Join(tempDir, name))
		require.NoError(t, err)
		require.True(t, len(data) >= 2)
		expect.EQ(t, []byte{data[0], data[1]}, []byte{0x1f, 0x8b})
	}
}

func TestReadAllSkipsComments(t *testing.T) {
	tempDir, cleanup := testutil.TempDir(t, "", "")
	defer cleanup()
	ctx := context.Background()

	path := filepath.Join(tempDir, "commented.bed")
	body := "# header\ntrack name=x\n\n  \nchr1\t1\t2\nbrowser full\nchr2\t3\t9\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))

	got, err := ReadAll[Bed3](ctx, path)
	require.NoError(t, err)
	expect.EQ(t, got, []Bed3{{"chr1", 1, 2}, {"chr2", 3, 9}})
}

func TestReadAllParseError(t *testing.T) {
	tempDir, cleanup := testutil.TempDir(t, "", "")
	defer cleanup()
	ctx := context.Background()

	path := filepath.Join(tempDir, "bad.bed")
	require.NoError(t, os.WriteFile(path, []byte("chr1\tx\t2\n"), 0644))

	_, err := ReadAll[Bed3](ctx, path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "cannot parse field chromStart")
}

func TestReadAllMissingFile(t *testing.T) {
	tempDir, cleanup := testutil.TempDir(t, "", "")
	defer cleanup()

	_, err := ReadAll[Bed3](context.Background(), filepath.Join(tempDir, "absent.bed"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "absent.bed")
}

func TestWriteAllEmpty(t *testing.T) {
	tempDir, cleanup := testutil.TempDir(t, "", "")
	defer cleanup()
	ctx := context.Background()

	path := filepath.Join(tempDir, "empty.bed")
	require.NoError(t, WriteAll(ctx, path, []Bed2{}))
	got, err := ReadAll[Bed2](ctx, path)
	require.NoError(t, err)
	expect.EQ(t, len(got), 0)
}
