package enums

import (
	"fmt"
	"strings"

	"github.com/pacscore/dicom-registry/pkg/errors"
)

// PixelFormat is the memory layout of the pixels of a decoded image.
// The numeric values are part of the plugin ABI and are frozen.
type PixelFormat int

const (
	// PixelFormatRGB24 stores each pixel in 3 consecutive bytes, RGB.
	PixelFormatRGB24 PixelFormat = 1

	// PixelFormatRGBA32 stores each pixel in 4 consecutive bytes, RGBA.
	PixelFormatRGBA32 PixelFormat = 2

	// PixelFormatGrayscale8 is unsigned graylevel, one byte per pixel.
	PixelFormatGrayscale8 PixelFormat = 3

	// PixelFormatGrayscale16 is unsigned graylevel, two bytes per pixel.
	PixelFormatGrayscale16 PixelFormat = 4

	// PixelFormatSignedGrayscale16 is signed graylevel, two bytes per
	// pixel.
	PixelFormatSignedGrayscale16 PixelFormat = 5

	// PixelFormatFloat32 is floating-point graylevel, 4 bytes per pixel.
	PixelFormatFloat32 PixelFormat = 6

	// PixelFormatBGRA32 is the Cairo memory layout.
	PixelFormatBGRA32 PixelFormat = 7

	// PixelFormatGrayscale32 is unsigned graylevel, 4 bytes per pixel.
	PixelFormatGrayscale32 PixelFormat = 8

	// PixelFormatRGB48 stores each pixel in 6 consecutive bytes, RGB.
	PixelFormatRGB48 PixelFormat = 9

	// PixelFormatGrayscale64 is unsigned graylevel, 8 bytes per pixel.
	PixelFormatGrayscale64 PixelFormat = 10
)

var pixelFormatNames = map[PixelFormat]string{
	PixelFormatRGB24:             "RGB24",
	PixelFormatRGBA32:            "RGBA32",
	PixelFormatGrayscale8:        "Grayscale8",
	PixelFormatGrayscale16:       "Grayscale16",
	PixelFormatSignedGrayscale16: "SignedGrayscale16",
	PixelFormatFloat32:           "Float32",
	PixelFormatBGRA32:            "BGRA32",
	PixelFormatGrayscale32:       "Grayscale32",
	PixelFormatRGB48:             "RGB48",
	PixelFormatGrayscale64:       "Grayscale64",
}

func (f PixelFormat) String() string {
	if s, ok := pixelFormatNames[f]; ok {
		return s
	}
	return fmt.Sprintf("PixelFormat(%d)", int(f))
}

// BytesPerPixel returns the storage size of one pixel.
func (f PixelFormat) BytesPerPixel() (int, error) {
	switch f {
	case PixelFormatGrayscale8:
		return 1, nil
	case PixelFormatGrayscale16, PixelFormatSignedGrayscale16:
		return 2, nil
	case PixelFormatRGB24:
		return 3, nil
	case PixelFormatRGBA32, PixelFormatBGRA32, PixelFormatFloat32, PixelFormatGrayscale32:
		return 4, nil
	case PixelFormatRGB48:
		return 6, nil
	case PixelFormatGrayscale64:
		return 8, nil
	default:
		return 0, errors.NewParameterOutOfRange(
			fmt.Sprintf("unknown pixel format: %d", int(f)))
	}
}

// ImageFormat is an image file format the server can render to.
type ImageFormat int

const (
	ImageFormatPng ImageFormat = 1
)

func (f ImageFormat) String() string {
	if f == ImageFormatPng {
		return "Png"
	}
	return fmt.Sprintf("ImageFormat(%d)", int(f))
}

func ParseImageFormat(s string) (ImageFormat, error) {
	if strings.EqualFold(s, "png") {
		return ImageFormatPng, nil
	}
	return ImageFormatPng, errors.NewParameterOutOfRange(
		fmt.Sprintf("unknown image format: %q", s))
}

// ImageExtractionMode specifies how pixel values are scaled when a 2D
// image is downloaded. Values are frozen.
type ImageExtractionMode int

const (
	// ImageExtractionModePreview rescales to 8bpp, mapping the image
	// minimum to 0 and its maximum to 255.
	ImageExtractionModePreview ImageExtractionMode = 1

	// ImageExtractionModeUInt8 truncates to [0, 255].
	ImageExtractionModeUInt8 ImageExtractionMode = 2

	// ImageExtractionModeUInt16 truncates to [0, 65535].
	ImageExtractionModeUInt16 ImageExtractionMode = 3

	// ImageExtractionModeInt16 truncates to [-32768, 32767].
	ImageExtractionModeInt16 ImageExtractionMode = 4
)

func (m ImageExtractionMode) String() string {
	switch m {
	case ImageExtractionModePreview:
		return "Preview"
	case ImageExtractionModeUInt8:
		return "UInt8"
	case ImageExtractionModeUInt16:
		return "UInt16"
	case ImageExtractionModeInt16:
		return "Int16"
	default:
		return fmt.Sprintf("ImageExtractionMode(%d)", int(m))
	}
}

// PhotometricInterpretation describes the color space of stored pixel
// data (PS3.3 C.7.6.3.1.2).
type PhotometricInterpretation int

const (
	PhotometricInterpretationARGB PhotometricInterpretation = iota // Retired
	PhotometricInterpretationCMYK                                  // Retired
	PhotometricInterpretationHSV                                   // Retired
	PhotometricInterpretationMonochrome1
	PhotometricInterpretationMonochrome2
	PhotometricInterpretationPalette
	PhotometricInterpretationRGB
	PhotometricInterpretationYBRFull
	PhotometricInterpretationYBRFull422
	PhotometricInterpretationYBRPartial420
	PhotometricInterpretationYBRPartial422
	PhotometricInterpretationYBRICT
	PhotometricInterpretationYBRRCT
	PhotometricInterpretationUnknown
)

var photometricTokens = map[PhotometricInterpretation]string{
	PhotometricInterpretationARGB:          "ARGB",
	PhotometricInterpretationCMYK:          "CMYK",
	PhotometricInterpretationHSV:           "HSV",
	PhotometricInterpretationMonochrome1:   "MONOCHROME1",
	PhotometricInterpretationMonochrome2:   "MONOCHROME2",
	PhotometricInterpretationPalette:       "PALETTE COLOR",
	PhotometricInterpretationRGB:           "RGB",
	PhotometricInterpretationYBRFull:       "YBR_FULL",
	PhotometricInterpretationYBRFull422:    "YBR_FULL_422",
	PhotometricInterpretationYBRPartial420: "YBR_PARTIAL_420",
	PhotometricInterpretationYBRPartial422: "YBR_PARTIAL_422",
	PhotometricInterpretationYBRICT:        "YBR_ICT",
	PhotometricInterpretationYBRRCT:        "YBR_RCT",
}

func (p PhotometricInterpretation) String() string {
	if s, ok := photometricTokens[p]; ok {
		return s
	}
	if p == PhotometricInterpretationUnknown {
		return "Unknown"
	}
	return fmt.Sprintf("PhotometricInterpretation(%d)", int(p))
}

// ParsePhotometricInterpretation maps the value of tag (0028,0004) to
// its enum value. Unrecognized input falls back to the Unknown
// sentinel: datasets in the wild carry many vendor spellings.
func ParsePhotometricInterpretation(s string) PhotometricInterpretation {
	token := strings.TrimSpace(s)
	for p, t := range photometricTokens {
		if t == token {
			return p
		}
	}
	return PhotometricInterpretationUnknown
}

// Endianness is the byte ordering of multi-byte pixel values.
type Endianness int

const (
	EndiannessUnknown Endianness = iota
	EndiannessBig
	EndiannessLittle
)

func (e Endianness) String() string {
	switch e {
	case EndiannessBig:
		return "Big"
	case EndiannessLittle:
		return "Little"
	case EndiannessUnknown:
		return "Unknown"
	default:
		return fmt.Sprintf("Endianness(%d)", int(e))
	}
}
