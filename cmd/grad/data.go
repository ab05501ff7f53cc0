package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"math/rand"
	"os"
	"strconv"
)

// Dataset holds 2D points with labels in {-1, +1}.
type Dataset struct {
	Points [][]float64 // [num_samples, 2]
	Labels []float64   // [num_samples]
}

// NumSamples returns the number of samples.
func (d *Dataset) NumSamples() int {
	return len(d.Labels)
}

// Split returns (train, val) with a valFrac share of samples in val.
func (d *Dataset) Split(valFrac float64) (train, val *Dataset) {
	cut := d.NumSamples() - int(float64(d.NumSamples())*valFrac)
	train = &Dataset{Points: d.Points[:cut], Labels: d.Labels[:cut]}
	val = &Dataset{Points: d.Points[cut:], Labels: d.Labels[cut:]}
	return train, val
}

// MakeMoons generates two interleaving half circles with Gaussian noise,
// shuffled. Upper-moon points are labeled -1, lower-moon points +1.
func MakeMoons(n int, noise float64, seed int64) *Dataset {
	//nolint:gosec // Synthetic data, not security-critical
	rng := rand.New(rand.NewSource(seed))

	d := &Dataset{
		Points: make([][]float64, n),
		Labels: make([]float64, n),
	}
	upper := n / 2
	for i := 0; i < n; i++ {
		var x, y, label float64
		if i < upper {
			t := math.Pi * float64(i) / float64(max(upper-1, 1))
			x, y, label = math.Cos(t), math.Sin(t), -1
		} else {
			t := math.Pi * float64(i-upper) / float64(max(n-upper-1, 1))
			x, y, label = 1-math.Cos(t), 0.5-math.Sin(t), 1
		}
		d.Points[i] = []float64{x + rng.NormFloat64()*noise, y + rng.NormFloat64()*noise}
		d.Labels[i] = label
	}

	rng.Shuffle(n, func(i, j int) {
		d.Points[i], d.Points[j] = d.Points[j], d.Points[i]
		d.Labels[i], d.Labels[j] = d.Labels[j], d.Labels[i]
	})
	return d
}

// LoadCSV loads a dataset from a CSV file.
//
// CSV Format:
//
//	x,y,label
//	0.12,-0.40,1
//	1.05,0.33,-1
//
// Labels must be -1 or 1. The header row is required.
func LoadCSV(filename string) (*Dataset, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return ReadCSV(file)
}

// ReadCSV parses the LoadCSV format from r.
func ReadCSV(r io.Reader) (*Dataset, error) {
	reader := csv.NewReader(r)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}

	if len(records) < 2 {
		return nil, fmt.Errorf("CSV file is empty or missing header")
	}
	records = records[1:]

	d := &Dataset{
		Points: make([][]float64, len(records)),
		Labels: make([]float64, len(records)),
	}
	for i, record := range records {
		if len(record) != 3 {
			return nil, fmt.Errorf("invalid record length at row %d: got %d, want 3", i+1, len(record))
		}

		var row [3]float64
		for j, field := range record {
			row[j], err = strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid number at row %d, column %d: %w", i+1, j+1, err)
			}
		}
		if row[2] != -1 && row[2] != 1 {
			return nil, fmt.Errorf("label must be -1 or 1 at row %d: %v", i+1, row[2])
		}

		d.Points[i] = []float64{row[0], row[1]}
		d.Labels[i] = row[2]
	}
	return d, nil
}
