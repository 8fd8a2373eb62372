package enums

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
	"pgregory.net/rapid"
)

func TestAllEncodingsCoversNameTable(t *testing.T) {
	all := AllEncodings()
	require.Len(t, all, len(encodingNames))

	seen := make(map[Encoding]bool, len(all))
	for _, e := range all {
		require.Contains(t, encodingNames, e)
		require.False(t, seen[e], "duplicate entry %s", e)
		seen[e] = true
	}

	require.Equal(t, EncodingAscii, all[0])
	require.Equal(t, EncodingSimplifiedChinese, all[len(all)-1])
}

func TestEncodingNameRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		e := rapid.SampledFrom(AllEncodings()).Draw(t, "encoding")
		parsed, err := ParseEncoding(e.String())
		require.NoError(t, err)
		require.Equal(t, e, parsed)
	})
}

func TestParseEncodingCaseInsensitive(t *testing.T) {
	e, err := ParseEncoding("utf8")
	require.NoError(t, err)
	require.Equal(t, EncodingUtf8, e)

	_, err = ParseEncoding("Klingon")
	require.Error(t, err)
}

func TestSpecificCharacterSetRoundTrip(t *testing.T) {
	for _, e := range AllEncodings() {
		label := e.SpecificCharacterSet()
		if label == "" {
			continue // default repertoire or no DICOM defined term
		}
		parsed, ok := ParseSpecificCharacterSet(label)
		require.True(t, ok, "label %q of %s did not parse", label, e)
		require.Equal(t, e, parsed, "label %q", label)
	}
}

func TestSpecificCharacterSetLabels(t *testing.T) {
	require.Equal(t, "", EncodingAscii.SpecificCharacterSet())
	require.Equal(t, "", EncodingWindows1251.SpecificCharacterSet())
	require.Equal(t, "ISO_IR 192", EncodingUtf8.SpecificCharacterSet())
	require.Equal(t, "ISO_IR 100", EncodingLatin1.SpecificCharacterSet())
	require.Equal(t, "ISO 2022 IR 87", EncodingJapaneseKanji.SpecificCharacterSet())
	require.Equal(t, "GB18030", EncodingChinese.SpecificCharacterSet())
}

func TestParseSpecificCharacterSet(t *testing.T) {
	e, ok := ParseSpecificCharacterSet("")
	require.True(t, ok)
	require.Equal(t, EncodingAscii, e)

	e, ok = ParseSpecificCharacterSet("ISO_IR 6")
	require.True(t, ok)
	require.Equal(t, EncodingAscii, e)

	// code-extension spelling
	e, ok = ParseSpecificCharacterSet("ISO 2022 IR 100")
	require.True(t, ok)
	require.Equal(t, EncodingLatin1, e)

	// surrounding whitespace, as padded attribute values arrive
	e, ok = ParseSpecificCharacterSet(" ISO_IR 144 ")
	require.True(t, ok)
	require.Equal(t, EncodingCyrillic, e)

	_, ok = ParseSpecificCharacterSet("ISO_IR 999")
	require.False(t, ok)
}

func TestNewDecoder(t *testing.T) {
	dec, ok := EncodingAscii.NewDecoder()
	require.True(t, ok)
	require.Nil(t, dec)

	dec, ok = EncodingUtf8.NewDecoder()
	require.True(t, ok)
	require.Nil(t, dec)

	dec, ok = EncodingLatin1.NewDecoder()
	require.True(t, ok)
	require.NotNil(t, dec)

	dec, ok = EncodingWindows1251.NewDecoder()
	require.True(t, ok)
	require.NotNil(t, dec)

	// escape-sequence based repertoire without an x/text codec
	_, ok = EncodingSimplifiedChinese.NewDecoder()
	require.False(t, ok)
}

func TestDecoderTranscodesLatin1(t *testing.T) {
	dec, ok := EncodingLatin1.NewDecoder()
	require.True(t, ok)

	out, err := dec.Bytes([]byte{0xE9}) // 'é' in ISO-8859-1
	require.NoError(t, err)
	require.Equal(t, "é", string(out))
}

func TestDefaultDicomEncoding(t *testing.T) {
	original := GetDefaultDicomEncoding()
	defer SetDefaultDicomEncoding(original)

	SetDefaultDicomEncoding(EncodingUtf8)
	require.Equal(t, EncodingUtf8, GetDefaultDicomEncoding())

	SetDefaultDicomEncoding(EncodingLatin1)
	require.Equal(t, EncodingLatin1, GetDefaultDicomEncoding())
}

func TestDefaultDicomEncodingConcurrentAccess(t *testing.T) {
	original := GetDefaultDicomEncoding()
	defer SetDefaultDicomEncoding(original)

	var g errgroup.Group

	// Readers started before the write: every observed value must be a
	// member of the closed set, never a torn intermediate.
	for i := 0; i < 8; i++ {
		g.Go(func() error {
			for j := 0; j < 1000; j++ {
				e := GetDefaultDicomEncoding()
				if e != EncodingUtf8 && e != original {
					t.Errorf("observed unexpected default encoding %v", e)
				}
			}
			return nil
		})
	}

	g.Go(func() error {
		SetDefaultDicomEncoding(EncodingUtf8)
		return nil
	})

	// Readers started after the write completes.
	require.NoError(t, g.Wait())
	for i := 0; i < 4; i++ {
		g.Go(func() error {
			if e := GetDefaultDicomEncoding(); e != EncodingUtf8 {
				t.Errorf("default encoding lost the write: %v", e)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}
