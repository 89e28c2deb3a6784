package matrix

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// WritePhylip serialises the matrix in square phylip format: a leading genome
// count, then one row per genome with its label and distances
func (dm *DistanceMatrix) WritePhylip(w io.Writer) error {
	bw := bufio.NewWriter(w)
	n := dm.Size()
	if _, err := fmt.Fprintf(bw, "%d\n", n); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		if _, err := fmt.Fprintf(bw, "%-10s", dm.names[i]); err != nil {
			return err
		}
		for j := 0; j < n; j++ {
			if _, err := fmt.Fprintf(bw, " %8.6f", dm.Get(i, j)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(bw); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ReadPhylip parses a square phylip distance matrix
func ReadPhylip(r io.Reader) (*DistanceMatrix, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024)
	if !scanner.Scan() {
		return nil, fmt.Errorf("empty phylip matrix")
	}
	n, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
	if err != nil || n < 1 {
		return nil, fmt.Errorf("bad genome count in phylip matrix: %v", scanner.Text())
	}
	names := make([]string, n)
	dm := NewDistanceMatrix(names)
	for i := 0; i < n; i++ {
		if !scanner.Scan() {
			return nil, fmt.Errorf("phylip matrix truncated: expected %d rows, got %d", n, i)
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) != n+1 {
			return nil, fmt.Errorf("phylip matrix row %d has %d fields, expected %d", i+1, len(fields), n+1)
		}
		names[i] = fields[0]
		for j := 0; j < i; j++ {
			distance, err := strconv.ParseFloat(fields[j+1], 64)
			if err != nil {
				return nil, fmt.Errorf("bad distance in phylip matrix row %d: %v", i+1, fields[j+1])
			}
			if distance < 0.0 {
				return nil, fmt.Errorf("negative distance in phylip matrix row %d: %v", i+1, fields[j+1])
			}
			dm.dists[i][j] = distance
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return dm, nil
}
