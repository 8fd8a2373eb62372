package enums

import (
	"fmt"
	"strings"

	"github.com/pacscore/dicom-registry/pkg/errors"
)

// TransferSyntax is a family of DICOM transfer syntaxes that can be
// individually accepted or refused by the network layer.
type TransferSyntax int

const (
	TransferSyntaxDeflated TransferSyntax = iota
	TransferSyntaxJpeg
	TransferSyntaxJpeg2000
	TransferSyntaxJpegLossless
	TransferSyntaxJpip
	TransferSyntaxMpeg2
	TransferSyntaxRle
)

func (s TransferSyntax) String() string {
	switch s {
	case TransferSyntaxDeflated:
		return "Deflated"
	case TransferSyntaxJpeg:
		return "Jpeg"
	case TransferSyntaxJpeg2000:
		return "Jpeg2000"
	case TransferSyntaxJpegLossless:
		return "JpegLossless"
	case TransferSyntaxJpip:
		return "Jpip"
	case TransferSyntaxMpeg2:
		return "Mpeg2"
	case TransferSyntaxRle:
		return "Rle"
	default:
		return fmt.Sprintf("TransferSyntax(%d)", int(s))
	}
}

// DicomVersion selects which edition of the DICOM dictionary the
// server advertises.
type DicomVersion int

const (
	DicomVersion2008 DicomVersion = iota
	DicomVersion2017c
)

func (v DicomVersion) String() string {
	switch v {
	case DicomVersion2008:
		return "2008"
	case DicomVersion2017c:
		return "2017c"
	default:
		return fmt.Sprintf("DicomVersion(%d)", int(v))
	}
}

func ParseDicomVersion(s string) (DicomVersion, error) {
	switch s {
	case "2008":
		return DicomVersion2008, nil
	case "2017c":
		return DicomVersion2017c, nil
	default:
		return DicomVersion2017c, errors.NewParameterOutOfRange(
			fmt.Sprintf("unknown DICOM version: %q", s))
	}
}

// DicomRequestType is the class of an incoming DIMSE request.
type DicomRequestType int

const (
	DicomRequestTypeEcho DicomRequestType = iota
	DicomRequestTypeFind
	DicomRequestTypeGet
	DicomRequestTypeMove
	DicomRequestTypeStore
)

func (t DicomRequestType) String() string {
	switch t {
	case DicomRequestTypeEcho:
		return "Echo"
	case DicomRequestTypeFind:
		return "Find"
	case DicomRequestTypeGet:
		return "Get"
	case DicomRequestTypeMove:
		return "Move"
	case DicomRequestTypeStore:
		return "Store"
	default:
		return fmt.Sprintf("DicomRequestType(%d)", int(t))
	}
}

// ModalityManufacturer selects the query quirks applied when talking
// to a remote modality.
type ModalityManufacturer int

const (
	ModalityManufacturerGeneric ModalityManufacturer = iota
	ModalityManufacturerGenericNoWildcardInDates
	ModalityManufacturerGenericNoUniversalWildcard
	ModalityManufacturerStoreScp
	ModalityManufacturerClearCanvas
	ModalityManufacturerDcm4Chee
	ModalityManufacturerVitrea
	ModalityManufacturerGE
)

var modalityManufacturerNames = map[ModalityManufacturer]string{
	ModalityManufacturerGeneric:                    "Generic",
	ModalityManufacturerGenericNoWildcardInDates:   "GenericNoWildcardInDates",
	ModalityManufacturerGenericNoUniversalWildcard: "GenericNoUniversalWildcard",
	ModalityManufacturerStoreScp:                   "StoreScp",
	ModalityManufacturerClearCanvas:                "ClearCanvas",
	ModalityManufacturerDcm4Chee:                   "Dcm4Chee",
	ModalityManufacturerVitrea:                     "Vitrea",
	ModalityManufacturerGE:                         "GE",
}

func (m ModalityManufacturer) String() string {
	if s, ok := modalityManufacturerNames[m]; ok {
		return s
	}
	return fmt.Sprintf("ModalityManufacturer(%d)", int(m))
}

// ParseModalityManufacturer parses the manufacturer name used in the
// modalities configuration.
func ParseModalityManufacturer(s string) (ModalityManufacturer, error) {
	for m, name := range modalityManufacturerNames {
		if strings.EqualFold(s, name) {
			return m, nil
		}
	}
	return ModalityManufacturerGeneric, errors.NewParameterOutOfRange(
		fmt.Sprintf("unknown modality manufacturer: %q", s))
}

// DicomReplaceMode controls what a tag modification does when the
// target tag is absent from the dataset.
type DicomReplaceMode int

const (
	DicomReplaceModeInsertIfAbsent DicomReplaceMode = iota
	DicomReplaceModeThrowIfAbsent
	DicomReplaceModeIgnoreIfAbsent
)

func (m DicomReplaceMode) String() string {
	switch m {
	case DicomReplaceModeInsertIfAbsent:
		return "InsertIfAbsent"
	case DicomReplaceModeThrowIfAbsent:
		return "ThrowIfAbsent"
	case DicomReplaceModeIgnoreIfAbsent:
		return "IgnoreIfAbsent"
	default:
		return fmt.Sprintf("DicomReplaceMode(%d)", int(m))
	}
}

// DicomToJSONFormat selects how tag keys are rendered when a dataset
// is serialized to JSON: full objects keyed by numeric tag, the bare
// value keyed by numeric tag, or the bare value keyed by tag name.
type DicomToJSONFormat int

const (
	DicomToJSONFormatFull DicomToJSONFormat = iota
	DicomToJSONFormatShort
	DicomToJSONFormatHuman
)

func (f DicomToJSONFormat) String() string {
	switch f {
	case DicomToJSONFormatFull:
		return "Full"
	case DicomToJSONFormatShort:
		return "Short"
	case DicomToJSONFormatHuman:
		return "Human"
	default:
		return fmt.Sprintf("DicomToJSONFormat(%d)", int(f))
	}
}

// ParseDicomToJSONFormat parses the format name used by the REST
// layer. The names are exact tokens.
func ParseDicomToJSONFormat(s string) (DicomToJSONFormat, error) {
	switch s {
	case "Full":
		return DicomToJSONFormatFull, nil
	case "Short":
		return DicomToJSONFormatShort, nil
	case "Human":
		return DicomToJSONFormatHuman, nil
	default:
		return DicomToJSONFormatFull, errors.NewParameterOutOfRange(
			fmt.Sprintf("unknown DICOM-to-JSON format: %q", s))
	}
}

// DicomToJSONFlags tunes which attributes a dataset-to-JSON conversion
// keeps and how binary values are substituted. The bit values are part
// of the plugin ABI and are frozen.
type DicomToJSONFlags int

const (
	DicomToJSONFlagsIncludeBinary        DicomToJSONFlags = 1 << 0
	DicomToJSONFlagsIncludePrivateTags   DicomToJSONFlags = 1 << 1
	DicomToJSONFlagsIncludeUnknownTags   DicomToJSONFlags = 1 << 2
	DicomToJSONFlagsIncludePixelData     DicomToJSONFlags = 1 << 3
	DicomToJSONFlagsConvertBinaryToAscii DicomToJSONFlags = 1 << 4
	DicomToJSONFlagsConvertBinaryToNull  DicomToJSONFlags = 1 << 5

	DicomToJSONFlagsNone DicomToJSONFlags = 0
	DicomToJSONFlagsDefault = DicomToJSONFlagsIncludeBinary |
		DicomToJSONFlagsIncludePixelData |
		DicomToJSONFlagsIncludePrivateTags |
		DicomToJSONFlagsIncludeUnknownTags |
		DicomToJSONFlagsConvertBinaryToNull
)

// Has reports whether every bit of flag is set.
func (f DicomToJSONFlags) Has(flag DicomToJSONFlags) bool {
	return f&flag == flag
}

// DicomFromJSONFlags tunes the reverse conversion, building a dataset
// from its JSON form. The bit values are frozen.
type DicomFromJSONFlags int

const (
	DicomFromJSONFlagsDecodeDataURIScheme DicomFromJSONFlags = 1 << 0
	DicomFromJSONFlagsGenerateIdentifiers DicomFromJSONFlags = 1 << 1

	DicomFromJSONFlagsNone DicomFromJSONFlags = 0
)

// Has reports whether every bit of flag is set.
func (f DicomFromJSONFlags) Has(flag DicomFromJSONFlags) bool {
	return f&flag == flag
}
