package enums

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPixelFormatValuesAreFrozen(t *testing.T) {
	require.Equal(t, 1, int(PixelFormatRGB24))
	require.Equal(t, 2, int(PixelFormatRGBA32))
	require.Equal(t, 3, int(PixelFormatGrayscale8))
	require.Equal(t, 4, int(PixelFormatGrayscale16))
	require.Equal(t, 5, int(PixelFormatSignedGrayscale16))
	require.Equal(t, 6, int(PixelFormatFloat32))
	require.Equal(t, 7, int(PixelFormatBGRA32))
	require.Equal(t, 8, int(PixelFormatGrayscale32))
	require.Equal(t, 9, int(PixelFormatRGB48))
	require.Equal(t, 10, int(PixelFormatGrayscale64))
}

func TestBytesPerPixel(t *testing.T) {
	tests := map[PixelFormat]int{
		PixelFormatGrayscale8:        1,
		PixelFormatGrayscale16:       2,
		PixelFormatSignedGrayscale16: 2,
		PixelFormatRGB24:             3,
		PixelFormatRGBA32:            4,
		PixelFormatBGRA32:            4,
		PixelFormatFloat32:           4,
		PixelFormatGrayscale32:       4,
		PixelFormatRGB48:             6,
		PixelFormatGrayscale64:       8,
	}
	for f, want := range tests {
		got, err := f.BytesPerPixel()
		require.NoError(t, err)
		require.Equal(t, want, got, "bytes per pixel of %s", f)
	}

	_, err := PixelFormat(42).BytesPerPixel()
	require.Error(t, err)
}

func TestImageFormat(t *testing.T) {
	require.Equal(t, 1, int(ImageFormatPng))
	require.Equal(t, "Png", ImageFormatPng.String())

	f, err := ParseImageFormat("png")
	require.NoError(t, err)
	require.Equal(t, ImageFormatPng, f)

	_, err = ParseImageFormat("jpeg")
	require.Error(t, err)
}

func TestImageExtractionModeValuesAreFrozen(t *testing.T) {
	require.Equal(t, 1, int(ImageExtractionModePreview))
	require.Equal(t, 2, int(ImageExtractionModeUInt8))
	require.Equal(t, 3, int(ImageExtractionModeUInt16))
	require.Equal(t, 4, int(ImageExtractionModeInt16))
}

func TestPhotometricInterpretationRoundTrip(t *testing.T) {
	all := []PhotometricInterpretation{
		PhotometricInterpretationARGB, PhotometricInterpretationCMYK,
		PhotometricInterpretationHSV, PhotometricInterpretationMonochrome1,
		PhotometricInterpretationMonochrome2, PhotometricInterpretationPalette,
		PhotometricInterpretationRGB, PhotometricInterpretationYBRFull,
		PhotometricInterpretationYBRFull422, PhotometricInterpretationYBRPartial420,
		PhotometricInterpretationYBRPartial422, PhotometricInterpretationYBRICT,
		PhotometricInterpretationYBRRCT,
	}
	for _, p := range all {
		require.Equal(t, p, ParsePhotometricInterpretation(p.String()))
	}

	require.Equal(t, "PALETTE COLOR", PhotometricInterpretationPalette.String())
	require.Equal(t, PhotometricInterpretationUnknown,
		ParsePhotometricInterpretation("VENDOR_SPECIAL"))
	require.Equal(t, PhotometricInterpretationMonochrome2,
		ParsePhotometricInterpretation(" MONOCHROME2 "), "padded attribute value")
}

func TestEndiannessString(t *testing.T) {
	require.Equal(t, "Unknown", EndiannessUnknown.String())
	require.Equal(t, "Big", EndiannessBig.String())
	require.Equal(t, "Little", EndiannessLittle.String())
}
