// Package hdcp implements HDCP 1.x (versions 1.0-1.4) key derivation:
// fixed-width hex codecs, Key Selection Vector handling, and the Blom-style
// source/sink key generation over a shared 40x40 Master Key Matrix.
package hdcp

const (
	KSVBits  = 40 // width of a Key Selection Vector.
	CellBits = 56 // width of a Master Key Matrix cell.

	KSVHexChars  = KSVBits / 4
	CellHexChars = CellBits / 4

	// maxDecodeChars bounds lenient decoding to 60 bits of input; characters
	// past this position are never consulted.
	maxDecodeChars = 15

	ksvMask  = 1<<KSVBits - 1
	cellMask = 1<<CellBits - 1
)

const hexDigits = "0123456789abcdef"

// EncodeHex40 renders the low 40 bits of v as exactly 10 lower-case hex
// characters, most significant nibble first.
func EncodeHex40(v uint64) string {
	return encodeHex(v, KSVBits)
}

// EncodeHex56 renders the low 56 bits of v as exactly 14 lower-case hex
// characters, most significant nibble first.
func EncodeHex56(v uint64) string {
	return encodeHex(v, CellBits)
}

// DecodeHex40 leniently decodes s into a 40-bit value. See DecodeHex64 for
// the decoding contract.
func DecodeHex40(s string) uint64 {
	return DecodeHex64(s) & ksvMask
}

// DecodeHex56 leniently decodes s into a 56-bit value. See DecodeHex64 for
// the decoding contract.
func DecodeHex56(s string) uint64 {
	return DecodeHex64(s) & cellMask
}

// DecodeHex64 leniently decodes a hex string, most significant character
// first. At most the first 15 characters are consulted (60 bits); shorter
// input is treated as left-padded with '0'. Characters outside 0-9a-f
// contribute a zero nibble. The function never fails; callers needing strict
// validation must pre-validate the text themselves.
func DecodeHex64(s string) uint64 {
	if len(s) > maxDecodeChars {
		s = s[:maxDecodeChars]
	}

	var v uint64
	for i := 0; i < len(s); i++ {
		v = v<<4 | uint64(nibble(s[i]))
	}

	return v
}

func encodeHex(v uint64, width uint) string {
	chars := width / 4
	buf := make([]byte, chars)
	for i := uint(0); i < chars; i++ {
		shift := width - 4*(i+1)
		buf[i] = hexDigits[v>>shift&0xf]
	}

	return string(buf)
}

// nibble maps a lower-case hex character to its 4-bit value; anything else
// maps to 0.
func nibble(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	default:
		return 0
	}
}
