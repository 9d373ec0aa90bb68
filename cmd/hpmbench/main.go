// Command hpmbench runs the Hierarchical Pattern Matching anomaly score
// driver over a directory of UCR-style time series files and reports, per
// configured algorithm, whether its predicted anomaly location lands near
// the file's ground-truth range.
//
// Grounded on eval/ucr/benchmark.py: the same file naming convention,
// byte-size iteration order, and results CSV shape, without the plotting
// and .npy score dumping that have no bearing on the anomaly-detection
// core (out of scope per spec.md §1).
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

func main() {
	dataDir := flag.String("data", "data", "directory of UCR-style .txt series files")
	outPath := flag.String("out", "results.csv", "path to write the results CSV")
	flag.Parse()

	if err := run(*dataDir, *outPath); err != nil {
		log.Fatalf("hpmbench: %v", err)
	}
}

func run(dataDir, outPath string) error {
	algorithms := defaultAlgorithms()

	files, err := ucrFiles(dataDir)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("hpmbench: creating output directory: %w", err)
	}

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("hpmbench: creating %q: %w", outPath, err)
	}
	defer out.Close()

	w := csv.NewWriter(out)
	defer w.Flush()

	header := make([]string, 0, len(algorithms)+1)
	header = append(header, "id")
	for _, alg := range algorithms {
		header = append(header, alg.name)
	}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("hpmbench: writing header: %w", err)
	}

	for _, name := range files {
		d, err := loadDataset(dataDir, name)
		if err != nil {
			return err
		}

		log.Printf(
			"evaluating %s (train [0:%d], test [%d:%d], anomaly [%d,%d])",
			d.id, len(d.train), len(d.train), len(d.train)+len(d.test), d.anomalyStart, d.anomalyEnd,
		)

		row := make([]string, 0, len(algorithms)+1)
		row = append(row, d.id)
		for _, alg := range algorithms {
			hit, err := evaluate(alg, d)
			if err != nil {
				return err
			}
			row = append(row, fmt.Sprintf("%t", hit))
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("hpmbench: writing row for %s: %w", d.id, err)
		}
		w.Flush()
		if err := w.Error(); err != nil {
			return fmt.Errorf("hpmbench: flushing results: %w", err)
		}
	}
	return nil
}
