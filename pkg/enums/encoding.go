package enums

import (
	"fmt"
	"strings"
	"sync/atomic"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"

	"github.com/pacscore/dicom-registry/pkg/errors"
)

// Encoding identifies a character repertoire used by DICOM text
// attributes (PS3.3 C.12.1.1.2).
type Encoding int

const (
	EncodingAscii Encoding = iota
	EncodingUtf8
	EncodingLatin1
	EncodingLatin2
	EncodingLatin3
	EncodingLatin4
	EncodingLatin5 // Turkish
	EncodingCyrillic
	EncodingWindows1251 // Cyrillic variant without a DICOM defined term
	EncodingArabic
	EncodingGreek
	EncodingHebrew
	EncodingThai     // TIS 620-2533
	EncodingJapanese // JIS X 0201 (Shift JIS): Katakana
	EncodingChinese  // GB18030, Chinese simplified
	EncodingJapaneseKanji
	EncodingKorean
	EncodingSimplifiedChinese // ISO 2022 IR 58
)

var encodingNames = map[Encoding]string{
	EncodingAscii:             "Ascii",
	EncodingUtf8:              "Utf8",
	EncodingLatin1:            "Latin1",
	EncodingLatin2:            "Latin2",
	EncodingLatin3:            "Latin3",
	EncodingLatin4:            "Latin4",
	EncodingLatin5:            "Latin5",
	EncodingCyrillic:          "Cyrillic",
	EncodingWindows1251:       "Windows1251",
	EncodingArabic:            "Arabic",
	EncodingGreek:             "Greek",
	EncodingHebrew:            "Hebrew",
	EncodingThai:              "Thai",
	EncodingJapanese:          "Japanese",
	EncodingChinese:           "Chinese",
	EncodingJapaneseKanji:     "JapaneseKanji",
	EncodingKorean:            "Korean",
	EncodingSimplifiedChinese: "SimplifiedChinese",
}

// AllEncodings returns every member of the closed set, in declaration
// order. The slice is freshly allocated on each call.
func AllEncodings() []Encoding {
	return []Encoding{
		EncodingAscii, EncodingUtf8, EncodingLatin1, EncodingLatin2,
		EncodingLatin3, EncodingLatin4, EncodingLatin5, EncodingCyrillic,
		EncodingWindows1251, EncodingArabic, EncodingGreek, EncodingHebrew,
		EncodingThai, EncodingJapanese, EncodingChinese,
		EncodingJapaneseKanji, EncodingKorean, EncodingSimplifiedChinese,
	}
}

func (e Encoding) String() string {
	if s, ok := encodingNames[e]; ok {
		return s
	}
	return fmt.Sprintf("Encoding(%d)", int(e))
}

// ParseEncoding parses the configuration name of an encoding (the
// value of the "DefaultEncoding" option), case-insensitively.
func ParseEncoding(s string) (Encoding, error) {
	for e, name := range encodingNames {
		if strings.EqualFold(s, name) {
			return e, nil
		}
	}
	return EncodingAscii, errors.NewParameterOutOfRange(
		fmt.Sprintf("unknown encoding: %q", s))
}

// specificCharacterSets holds the canonical DICOM Specific Character
// Set defined term per encoding. Ascii maps to the empty string: the
// attribute is simply absent for the default repertoire. Windows1251
// has no defined term in the standard.
var specificCharacterSets = map[Encoding]string{
	EncodingAscii:             "",
	EncodingUtf8:              "ISO_IR 192",
	EncodingLatin1:            "ISO_IR 100",
	EncodingLatin2:            "ISO_IR 101",
	EncodingLatin3:            "ISO_IR 109",
	EncodingLatin4:            "ISO_IR 110",
	EncodingLatin5:            "ISO_IR 148",
	EncodingCyrillic:          "ISO_IR 144",
	EncodingWindows1251:       "",
	EncodingArabic:            "ISO_IR 127",
	EncodingGreek:             "ISO_IR 126",
	EncodingHebrew:            "ISO_IR 138",
	EncodingThai:              "ISO_IR 166",
	EncodingJapanese:          "ISO_IR 13",
	EncodingChinese:           "GB18030",
	EncodingJapaneseKanji:     "ISO 2022 IR 87",
	EncodingKorean:            "ISO 2022 IR 149",
	EncodingSimplifiedChinese: "ISO 2022 IR 58",
}

// dicomCharsetLabels accepts both the "ISO_IR xxx" and the code-
// extension "ISO 2022 IR xxx" spellings of each defined term.
var dicomCharsetLabels = map[string]Encoding{
	"":                EncodingAscii,
	"ISO_IR 6":        EncodingAscii,
	"ISO 2022 IR 6":   EncodingAscii,
	"ISO_IR 192":      EncodingUtf8,
	"ISO_IR 100":      EncodingLatin1,
	"ISO 2022 IR 100": EncodingLatin1,
	"ISO_IR 101":      EncodingLatin2,
	"ISO 2022 IR 101": EncodingLatin2,
	"ISO_IR 109":      EncodingLatin3,
	"ISO 2022 IR 109": EncodingLatin3,
	"ISO_IR 110":      EncodingLatin4,
	"ISO 2022 IR 110": EncodingLatin4,
	"ISO_IR 148":      EncodingLatin5,
	"ISO 2022 IR 148": EncodingLatin5,
	"ISO_IR 144":      EncodingCyrillic,
	"ISO 2022 IR 144": EncodingCyrillic,
	"ISO_IR 127":      EncodingArabic,
	"ISO 2022 IR 127": EncodingArabic,
	"ISO_IR 126":      EncodingGreek,
	"ISO 2022 IR 126": EncodingGreek,
	"ISO_IR 138":      EncodingHebrew,
	"ISO 2022 IR 138": EncodingHebrew,
	"ISO_IR 166":      EncodingThai,
	"ISO 2022 IR 166": EncodingThai,
	"ISO_IR 13":       EncodingJapanese,
	"ISO 2022 IR 13":  EncodingJapanese,
	"GB18030":         EncodingChinese,
	"ISO 2022 IR 87":  EncodingJapaneseKanji,
	"ISO 2022 IR 149": EncodingKorean,
	"ISO 2022 IR 58":  EncodingSimplifiedChinese,
}

// SpecificCharacterSet returns the DICOM defined term for the
// encoding, or "" when the encoding is the default repertoire or has
// no defined term (Windows1251).
func (e Encoding) SpecificCharacterSet() string {
	return specificCharacterSets[e]
}

// ParseSpecificCharacterSet parses the value of the DICOM Specific
// Character Set attribute (0008,0005). The second result is false for
// unrecognized defined terms; the first result is unspecified in that
// case and must not be read.
func ParseSpecificCharacterSet(label string) (Encoding, bool) {
	e, ok := dicomCharsetLabels[strings.TrimSpace(label)]
	return e, ok
}

// Mapping of encodings to WHATWG encoding labels understood by
// golang.org/x/text/encoding/htmlindex, following the charset handling
// of the DICOM parsers this registry serves. "" means the bytes are
// already UTF-8 compatible and need no transcoding.
var htmlEncodingNames = map[Encoding]string{
	EncodingAscii:         "",
	EncodingUtf8:          "",
	EncodingLatin1:        "iso-8859-1",
	EncodingLatin2:        "iso-8859-2",
	EncodingLatin3:        "iso-8859-3",
	EncodingLatin4:        "iso-8859-4",
	EncodingLatin5:        "iso-8859-9",
	EncodingCyrillic:      "iso-8859-5",
	EncodingWindows1251:   "windows-1251",
	EncodingArabic:        "iso-8859-6",
	EncodingGreek:         "iso-8859-7",
	EncodingHebrew:        "iso-8859-8",
	EncodingThai:          "tis-620",
	EncodingJapanese:      "shift_jis",
	EncodingChinese:       "gb18030",
	EncodingJapaneseKanji: "iso-2022-jp",
	EncodingKorean:        "euc-kr",
	// EncodingSimplifiedChinese (ISO 2022 IR 58) is escape-sequence
	// based and has no codec in x/text.
}

// NewDecoder returns a byte-to-UTF-8 decoder for the encoding. The
// decoder is nil with ok=true when no transcoding is needed (Ascii,
// Utf8); ok is false when no codec is available.
func (e Encoding) NewDecoder() (*encoding.Decoder, bool) {
	name, ok := htmlEncodingNames[e]
	if !ok {
		return nil, false
	}
	if name == "" {
		return nil, true
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, false
	}
	return enc.NewDecoder(), true
}

// defaultDicomEncoding is the process-wide default used when a dataset
// carries no Specific Character Set attribute. Written at most a few
// times (configuration load and reload), read constantly by the DICOM
// codec, hence a single atomic cell.
var defaultDicomEncoding atomic.Int32

func init() {
	defaultDicomEncoding.Store(int32(EncodingLatin1))
}

// GetDefaultDicomEncoding returns the current default encoding.
func GetDefaultDicomEncoding() Encoding {
	return Encoding(defaultDicomEncoding.Load())
}

// SetDefaultDicomEncoding overwrites the process-wide default.
func SetDefaultDicomEncoding(e Encoding) {
	defaultDicomEncoding.Store(int32(e))
}
