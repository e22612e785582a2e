package hdcp

// KeyArray is a derived device key: 40 cells of 56 bits each.
type KeyArray [MatrixRows]uint64

// GenerateSource derives the source (transmitter) device key. For each
// output index i, the cells M[z][i] of every row z whose KSV bit is set are
// summed and the sum truncated to 56 bits. Equivalent to ksv^T * M with
// column reads, mod 2^56. Total over all 40-bit KSVs.
func GenerateSource(ksv KSV, m *MasterMatrix) KeyArray {
	var out KeyArray

	for i := 0; i < MatrixRows; i++ {
		var sum uint64
		for z := 0; z < KSVBits; z++ {
			if ksv>>z&1 == 1 {
				sum += m[z*MatrixCols+i]
			}
		}
		out[i] = sum & cellMask
	}

	return out
}

// GenerateSink derives the sink (receiver) device key. Same selection rule
// as GenerateSource but reading along row i instead of column i: M * ksv,
// mod 2^56. The row/column asymmetry is the scheme's defining property; the
// engine does not verify or depend on matrix symmetry.
func GenerateSink(ksv KSV, m *MasterMatrix) KeyArray {
	var out KeyArray

	for i := 0; i < MatrixRows; i++ {
		var sum uint64
		for z := 0; z < KSVBits; z++ {
			if ksv>>z&1 == 1 {
				sum += m[i*MatrixCols+z]
			}
		}
		out[i] = sum & cellMask
	}

	return out
}

// Derivation is the result of deriving both device keys for one KSV. It
// borrows the matrix for rendering the full output variants and never
// mutates it.
type Derivation struct {
	KSV    KSV
	Source KeyArray
	Sink   KeyArray

	matrix *MasterMatrix
}

// Derive computes the source and sink keys for ksv against m.
func Derive(ksv KSV, m *MasterMatrix) *Derivation {
	return &Derivation{
		KSV:    ksv,
		Source: GenerateSource(ksv, m),
		Sink:   GenerateSink(ksv, m),
		matrix: m,
	}
}
