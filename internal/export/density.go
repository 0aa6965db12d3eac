package export

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"math"
)

// The standard encoders carry no resolution metadata, so the encoded bytes
// are patched directly: PNG gets a pHYs chunk after IHDR, JPEG a JFIF APP0
// segment with dots-per-inch density after SOI.

// pngSigLen + the fixed-size IHDR chunk locates the insertion point for pHYs.
const (
	pngSigLen   = 8
	pngIHDRLen  = 4 + 4 + 13 + 4
	jpegSOILen  = 2
	metersPerIn = 0.0254
)

// withPNGDensity inserts a pHYs chunk declaring dpi into an encoded PNG.
func withPNGDensity(data []byte, dpi int) []byte {
	if dpi <= 0 || len(data) < pngSigLen+pngIHDRLen {
		return data
	}

	ppm := uint32(math.Round(float64(dpi) / metersPerIn))

	chunk := make([]byte, 0, 4+4+9+4)
	chunk = binary.BigEndian.AppendUint32(chunk, 9)
	chunk = append(chunk, 'p', 'H', 'Y', 's')
	chunk = binary.BigEndian.AppendUint32(chunk, ppm)
	chunk = binary.BigEndian.AppendUint32(chunk, ppm)
	chunk = append(chunk, 1) // unit: meter
	chunk = binary.BigEndian.AppendUint32(chunk, crc32.ChecksumIEEE(chunk[4:]))

	at := pngSigLen + pngIHDRLen
	out := make([]byte, 0, len(data)+len(chunk))
	out = append(out, data[:at]...)
	out = append(out, chunk...)
	out = append(out, data[at:]...)
	return out
}

// withJPEGDensity inserts a JFIF APP0 segment declaring dpi into an encoded
// JPEG, directly after the SOI marker.
func withJPEGDensity(data []byte, dpi int) []byte {
	if dpi <= 0 || len(data) < jpegSOILen || !bytes.HasPrefix(data, []byte{0xFF, 0xD8}) {
		return data
	}

	seg := make([]byte, 0, 18)
	seg = append(seg, 0xFF, 0xE0)  // APP0
	seg = append(seg, 0x00, 0x10)  // segment length, marker excluded
	seg = append(seg, "JFIF\x00"...)
	seg = append(seg, 0x01, 0x02) // JFIF version 1.02
	seg = append(seg, 0x01)       // density unit: dots per inch
	seg = binary.BigEndian.AppendUint16(seg, uint16(dpi))
	seg = binary.BigEndian.AppendUint16(seg, uint16(dpi))
	seg = append(seg, 0x00, 0x00) // no thumbnail

	out := make([]byte, 0, len(data)+len(seg))
	out = append(out, data[:jpegSOILen]...)
	out = append(out, seg...)
	out = append(out, data[jpegSOILen:]...)
	return out
}
