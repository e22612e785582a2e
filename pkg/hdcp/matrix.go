package hdcp

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	MatrixRows  = 40
	MatrixCols  = 40
	MatrixCells = MatrixRows * MatrixCols
)

// MasterMatrix is the shared Master Key Matrix: a 40x40 grid of 56-bit
// cells stored row-major. The array type guarantees the 1600-cell shape; the
// derivation engine never re-checks it. The matrix is treated as an opaque
// external asset and is never mutated after loading.
type MasterMatrix [MatrixCells]uint64

// At returns the cell at the given row and column.
func (m *MasterMatrix) At(row, col int) uint64 {
	return m[row*MatrixCols+col]
}

// ParseMasterMatrix reads a Master Key Matrix from its textual asset form:
// 1600 whitespace-separated hexadecimal cells, row-major. Lines starting
// with '#' are comments. Unlike the lenient KSV codec, the asset loader is
// strict: a malformed cell, an out-of-range cell, or a wrong cell count is
// an error.
func ParseMasterMatrix(r io.Reader) (*MasterMatrix, error) {
	var m MasterMatrix

	n := 0
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		for _, tok := range strings.Fields(line) {
			if n >= MatrixCells {
				return nil, fmt.Errorf("master matrix has more than %d cells", MatrixCells)
			}

			cell, err := strconv.ParseUint(tok, 16, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid matrix cell %d %q: %w", n, tok, err)
			}
			if cell > cellMask {
				return nil, fmt.Errorf("matrix cell %d %q exceeds %d bits", n, tok, CellBits)
			}

			m[n] = cell
			n++
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read master matrix: %w", err)
	}

	if n != MatrixCells {
		return nil, fmt.Errorf("master matrix has %d cells, expected %d", n, MatrixCells)
	}

	return &m, nil
}
