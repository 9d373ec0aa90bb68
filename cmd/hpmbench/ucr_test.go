package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseUCRFilename(t *testing.T) {
	id, trainLen, anomStart, anomEnd, err := parseUCRFilename("007_UCR_Anomaly_1000_2500_2550.txt")
	require.NoError(t, err)
	require.Equal(t, "007", id)
	require.Equal(t, 1000, trainLen)
	require.Equal(t, 2500, anomStart)
	require.Equal(t, 2550, anomEnd)
}

func TestParseUCRFilenameRejectsMalformed(t *testing.T) {
	_, _, _, _, err := parseUCRFilename("notenoughfields.txt")
	require.Error(t, err)
}

func TestUCRFilesSortedBySize(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b_meta_2_0_0.txt"), []byte("1 2\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a_meta_2_0_0.txt"), []byte("1 2 3 4 5 6\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ignored.csv"), []byte("x"), 0o644))

	files, err := ucrFiles(dir)
	require.NoError(t, err)
	require.Equal(t, []string{"b_meta_2_0_0.txt", "a_meta_2_0_0.txt"}, files)
}

func TestLoadDatasetSplitsTrainTest(t *testing.T) {
	dir := t.TempDir()
	name := "007_UCR_Anomaly_3_5_6.txt"
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("1\n2\n3\n4\n5\n6\n7\n"), 0o644))

	d, err := loadDataset(dir, name)
	require.NoError(t, err)
	require.Equal(t, "007", d.id)
	require.Equal(t, []float64{1, 2, 3}, d.train)
	require.Equal(t, []float64{4, 5, 6, 7}, d.test)
	require.Equal(t, 5, d.anomalyStart)
	require.Equal(t, 6, d.anomalyEnd)
}
