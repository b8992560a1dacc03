package fontfx

import "errors"

// Construction and operation errors.
var (
	ErrNilFont           = errors.New("fontfx: font is nil")
	ErrNilTexture        = errors.New("fontfx: texture is nil")
	ErrNoColors          = errors.New("fontfx: color list must contain at least one color")
	ErrInvalidSize       = errors.New("fontfx: size must be at least one pixel on each axis")
	ErrZeroExtent        = errors.New("fontfx: content has zero extent")
	ErrNoDefiniteSize    = errors.New("fontfx: a composite has no definite size, so its center cannot be determined")
	ErrRepeatUnsupported = errors.New("fontfx: repeating scheduled tasks are not implemented")
	ErrAlreadyTracked    = errors.New("fontfx: item is already tracked by this sequence")
	ErrInvalidConfig     = errors.New("fontfx: invalid config")
)
