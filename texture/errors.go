// Package texture decodes DXT1/DXT5 block-compressed textures into
// standard-library RGBA images.
package texture

import "errors"

// ErrInvalidData is returned when the input is shorter than a whole
// number of fixed-size blocks.
var ErrInvalidData = errors.New("texture: truncated block data")

// ErrImageDecode is returned, before any block is decoded, when the
// declared width or height is zero or negative, so no image.RGBA of those
// dimensions can be built.
var ErrImageDecode = errors.New("texture: pixel buffer does not match declared dimensions")
