package texture

import (
	"fmt"

	"github.com/scigolib/unitytype/internal/errs"
	"github.com/scigolib/unitytype/internal/utils"
)

func validateDimensions(width, height int) error {
	if width <= 0 || height <= 0 {
		return ErrImageDecode
	}
	if uint64(width) > utils.MaxTextureDimension || uint64(height) > utils.MaxTextureDimension {
		return errs.Wrap("texture dimensions", fmt.Errorf("dimension exceeds maximum %d", utils.MaxTextureDimension))
	}
	return nil
}

// textureBufferSize computes width*height*4, the size of an RGBA pixel
// buffer, checking for overflow and for an unreasonably large declared
// size before any allocation happens.
func textureBufferSize(width, height int) (int, error) {
	wh, err := utils.SafeMultiply(uint64(width), uint64(height))
	if err != nil {
		return 0, errs.Wrap("texture buffer size", err)
	}
	total, err := utils.SafeMultiply(wh, 4)
	if err != nil {
		return 0, errs.Wrap("texture buffer size", err)
	}
	if err := utils.ValidateBufferSize(total, utils.MaxByteBufSize, "texture pixel buffer"); err != nil {
		return 0, errs.Wrap("texture buffer size", err)
	}
	return int(total), nil
}

// rgb565to888 expands a 5/6/5-bit packed color into 8 bits per channel by
// replicating the high bits into the low bits, matching the hardware
// expansion Unity's GPU textures assume.
func rgb565to888(c uint16) (r, g, b byte) {
	r5 := byte((c >> 11) & 0x1f)
	g6 := byte((c >> 5) & 0x3f)
	b5 := byte(c & 0x1f)
	r = (r5 << 3) | (r5 >> 2)
	g = (g6 << 2) | (g6 >> 4)
	b = (b5 << 3) | (b5 >> 2)
	return r, g, b
}

// placeBlock writes a decoded 4x4 block into buf (a width*height*4 RGBA
// buffer), skipping pixels that fall outside the image and flipping rows
// vertically — DXT blocks are stored bottom-to-top relative to the image's
// top-left origin.
func placeBlock(buf []byte, pixels [16][4]byte, blockIndex, blocksX, width, height int) {
	blockX := (blockIndex % blocksX) * 4
	blockY := (blockIndex / blocksX) * 4

	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			x := blockX + col
			y := blockY + row
			if x >= width || y >= height {
				continue
			}
			flippedY := height - 1 - y
			idx := (flippedY*width + x) * 4
			px := pixels[row*4+col]
			copy(buf[idx:idx+4], px[:])
		}
	}
}
