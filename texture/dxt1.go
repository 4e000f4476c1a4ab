package texture

import (
	"encoding/binary"
	"image"
)

const dxt1BlockSize = 8

// DecodeDXT1 reconstructs an RGBA image from DXT1 block-compressed data at
// the given pixel dimensions. Each 8-byte block holds two RGB565 endpoint
// colors and a 32-bit, 2-bit-per-pixel color index; a four-entry codebook is
// built per block, holding four opaque colors or three opaque colors
// depending on the ordering of the endpoints, with the fourth entry fully
// transparent when the block encodes 1-bit alpha.
func DecodeDXT1(data []byte, width, height int) (*image.RGBA, error) {
	if err := validateDimensions(width, height); err != nil {
		return nil, err
	}
	total, err := textureBufferSize(width, height)
	if err != nil {
		return nil, err
	}

	buf := make([]byte, total)
	blocksX := (width + 3) / 4

	for i := 0; i*dxt1BlockSize < len(data); i++ {
		start := i * dxt1BlockSize
		end := start + dxt1BlockSize
		if end > len(data) {
			return nil, ErrInvalidData
		}
		pixels := decodeDXT1Block(data[start:end])
		placeBlock(buf, pixels, i, blocksX, width, height)
	}

	return &image.RGBA{
		Pix:    buf,
		Stride: width * 4,
		Rect:   image.Rect(0, 0, width, height),
	}, nil
}

func decodeDXT1Block(chunk []byte) [16][4]byte {
	c0 := binary.LittleEndian.Uint16(chunk[0:2])
	c1 := binary.LittleEndian.Uint16(chunk[2:4])
	colorIdx := binary.LittleEndian.Uint32(chunk[4:8])

	r0, g0, b0 := rgb565to888(c0)
	r1, g1, b1 := rgb565to888(c1)

	var colors [4][4]byte
	colors[0] = [4]byte{r0, g0, b0, 255}
	colors[1] = [4]byte{r1, g1, b1, 255}

	if c0 > c1 {
		colors[2] = [4]byte{
			byte((2*uint16(r0) + uint16(r1)) / 3),
			byte((2*uint16(g0) + uint16(g1)) / 3),
			byte((2*uint16(b0) + uint16(b1)) / 3),
			255,
		}
		colors[3] = [4]byte{
			byte((uint16(r0) + 2*uint16(r1)) / 3),
			byte((uint16(g0) + 2*uint16(g1)) / 3),
			byte((uint16(b0) + 2*uint16(b1)) / 3),
			255,
		}
	} else {
		colors[2] = [4]byte{
			byte((uint16(r0) + uint16(r1)) / 2),
			byte((uint16(g0) + uint16(g1)) / 2),
			byte((uint16(b0) + uint16(b1)) / 2),
			255,
		}
		colors[3] = [4]byte{0, 0, 0, 0}
	}

	var pixels [16][4]byte
	for i := 0; i < 16; i++ {
		ci := (colorIdx >> uint(2*i)) & 0x3
		pixels[i] = colors[ci]
	}
	return pixels
}
