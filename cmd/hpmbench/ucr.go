package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// dataset is one parsed UCR-style series file: train/test split plus the
// ground-truth anomaly range as indices into the whole series, train
// included (both inclusive, as encoded in the filename).
type dataset struct {
	id           string
	train        []float64
	test         []float64
	anomalyStart int
	anomalyEnd   int
}

// ucrFiles lists the .txt files under dir sorted ascending by byte size,
// matching the reference harness's iteration order (cheapest series first).
func ucrFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("hpmbench: reading data dir %q: %w", dir, err)
	}
	type sized struct {
		name string
		size int64
	}
	var files []sized
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".txt") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return nil, fmt.Errorf("hpmbench: stat %q: %w", e.Name(), err)
		}
		files = append(files, sized{e.Name(), info.Size()})
	}
	sort.Slice(files, func(i, j int) bool { return files[i].size < files[j].size })
	names := make([]string, len(files))
	for i, f := range files {
		names[i] = f.name
	}
	return names, nil
}

// parseUCRFilename decodes the "<id>_<meta>_<train_len>_<anom_start>_<anom_end>.txt"
// naming convention: the identifier is the leading field, and the trailing
// three underscore-separated fields are the training length and the
// inclusive ground-truth anomaly range.
func parseUCRFilename(name string) (id string, trainLen, anomStart, anomEnd int, err error) {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	parts := strings.Split(base, "_")
	if len(parts) < 4 {
		return "", 0, 0, 0, fmt.Errorf("hpmbench: malformed UCR filename %q", name)
	}
	id = parts[0]
	trainLen, err = strconv.Atoi(parts[len(parts)-3])
	if err != nil {
		return "", 0, 0, 0, fmt.Errorf("hpmbench: %q: bad train length: %w", name, err)
	}
	anomStart, err = strconv.Atoi(parts[len(parts)-2])
	if err != nil {
		return "", 0, 0, 0, fmt.Errorf("hpmbench: %q: bad anomaly start: %w", name, err)
	}
	anomEnd, err = strconv.Atoi(parts[len(parts)-1])
	if err != nil {
		return "", 0, 0, 0, fmt.Errorf("hpmbench: %q: bad anomaly end: %w", name, err)
	}
	return id, trainLen, anomStart, anomEnd, nil
}

// loadSeries reads a whitespace-separated single-column (or single-row) file
// of floats, mirroring numpy.loadtxt's tolerance for either layout.
func loadSeries(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("hpmbench: opening %q: %w", path, err)
	}
	defer f.Close()

	var values []float64
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		v, err := strconv.ParseFloat(scanner.Text(), 64)
		if err != nil {
			return nil, fmt.Errorf("hpmbench: %q: bad sample %q: %w", path, scanner.Text(), err)
		}
		values = append(values, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("hpmbench: reading %q: %w", path, err)
	}
	return values, nil
}

// loadDataset loads and splits one UCR file named per parseUCRFilename.
func loadDataset(dir, name string) (dataset, error) {
	id, trainLen, anomStart, anomEnd, err := parseUCRFilename(name)
	if err != nil {
		return dataset{}, err
	}
	series, err := loadSeries(filepath.Join(dir, name))
	if err != nil {
		return dataset{}, err
	}
	if trainLen > len(series) {
		return dataset{}, fmt.Errorf("hpmbench: %q: train length %d exceeds series length %d", name, trainLen, len(series))
	}
	return dataset{
		id:           id,
		train:        series[:trainLen],
		test:         series[trainLen:],
		anomalyStart: anomStart,
		anomalyEnd:   anomEnd,
	}, nil
}
