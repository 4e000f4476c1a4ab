package texture

import (
	"encoding/binary"
	"image"
)

const dxt5BlockSize = 16

// DecodeDXT5 reconstructs an RGBA image from DXT5 block-compressed data at
// the given pixel dimensions. Each 16-byte block holds an 8-entry alpha
// codebook (two stored endpoints plus six or four interpolated values,
// depending on endpoint ordering) addressed by a 48-bit, 3-bit-per-pixel
// index, followed by a DXT1-style RGB565 color codebook and 32-bit,
// 2-bit-per-pixel color index.
func DecodeDXT5(data []byte, width, height int) (*image.RGBA, error) {
	if err := validateDimensions(width, height); err != nil {
		return nil, err
	}
	total, err := textureBufferSize(width, height)
	if err != nil {
		return nil, err
	}

	buf := make([]byte, total)
	blocksX := (width + 3) / 4

	for i := 0; i*dxt5BlockSize < len(data); i++ {
		start := i * dxt5BlockSize
		end := start + dxt5BlockSize
		if end > len(data) {
			return nil, ErrInvalidData
		}
		pixels := decodeDXT5Block(data[start:end])
		placeBlock(buf, pixels, i, blocksX, width, height)
	}

	return &image.RGBA{
		Pix:    buf,
		Stride: width * 4,
		Rect:   image.Rect(0, 0, width, height),
	}, nil
}

func decodeDXT5Block(chunk []byte) [16][4]byte {
	alpha0 := chunk[0]
	alpha1 := chunk[1]

	var alphaIdx uint64
	for k := 0; k < 6; k++ {
		alphaIdx |= uint64(chunk[2+k]) << (8 * uint(k))
	}

	var alphas [8]byte
	alphas[0] = alpha0
	alphas[1] = alpha1
	if alpha0 > alpha1 {
		for i := 2; i < 8; i++ {
			alphas[i] = byte((uint16(8-i)*uint16(alpha0) + uint16(i-1)*uint16(alpha1)) / 7)
		}
	} else {
		for i := 2; i < 6; i++ {
			alphas[i] = byte((uint16(6-i)*uint16(alpha0) + uint16(i-1)*uint16(alpha1)) / 5)
		}
		alphas[6] = 0
		alphas[7] = 255
	}

	c0 := binary.LittleEndian.Uint16(chunk[8:10])
	c1 := binary.LittleEndian.Uint16(chunk[10:12])
	colorIdx := binary.LittleEndian.Uint32(chunk[12:16])

	r0, g0, b0 := rgb565to888(c0)
	r1, g1, b1 := rgb565to888(c1)

	var colors [4][3]byte
	colors[0] = [3]byte{r0, g0, b0}
	colors[1] = [3]byte{r1, g1, b1}
	colors[2] = [3]byte{
		byte((2*uint16(r0) + uint16(r1)) / 3),
		byte((2*uint16(g0) + uint16(g1)) / 3),
		byte((2*uint16(b0) + uint16(b1)) / 3),
	}
	colors[3] = [3]byte{
		byte((uint16(r0) + 2*uint16(r1)) / 3),
		byte((uint16(g0) + 2*uint16(g1)) / 3),
		byte((uint16(b0) + 2*uint16(b1)) / 3),
	}

	var pixels [16][4]byte
	for i := 0; i < 16; i++ {
		ai := (alphaIdx >> uint(3*i)) & 0x7
		ci := (colorIdx >> uint(2*i)) & 0x3
		rgb := colors[ci]
		pixels[i] = [4]byte{rgb[0], rgb[1], rgb[2], alphas[ai]}
	}
	return pixels
}
