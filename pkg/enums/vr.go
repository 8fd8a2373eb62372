package enums

import (
	"fmt"

	"github.com/pacscore/dicom-registry/pkg/errors"
)

// ValueRepresentation is the per-attribute data type of DICOM (PS3.5
// 6.2, 2016b edition). The numeric values are part of the plugin ABI
// and are frozen.
type ValueRepresentation int

const (
	VRApplicationEntity   ValueRepresentation = 1  // AE
	VRAgeString           ValueRepresentation = 2  // AS
	VRAttributeTag        ValueRepresentation = 3  // AT (2 x uint16)
	VRCodeString          ValueRepresentation = 4  // CS
	VRDate                ValueRepresentation = 5  // DA
	VRDecimalString       ValueRepresentation = 6  // DS
	VRDateTime            ValueRepresentation = 7  // DT
	VRFloatingPointSingle ValueRepresentation = 8  // FL
	VRFloatingPointDouble ValueRepresentation = 9  // FD
	VRIntegerString       ValueRepresentation = 10 // IS
	VRLongString          ValueRepresentation = 11 // LO
	VRLongText            ValueRepresentation = 12 // LT
	VROtherByte           ValueRepresentation = 13 // OB
	VROtherDouble         ValueRepresentation = 14 // OD
	VROtherFloat          ValueRepresentation = 15 // OF
	VROtherLong           ValueRepresentation = 16 // OL
	VROtherWord           ValueRepresentation = 17 // OW
	VRPersonName          ValueRepresentation = 18 // PN
	VRShortString         ValueRepresentation = 19 // SH
	VRSignedLong          ValueRepresentation = 20 // SL (int32)
	VRSequence            ValueRepresentation = 21 // SQ
	VRSignedShort         ValueRepresentation = 22 // SS (int16)
	VRShortText           ValueRepresentation = 23 // ST
	VRTime                ValueRepresentation = 24 // TM
	VRUnlimitedCharacters ValueRepresentation = 25 // UC
	VRUniqueIdentifier    ValueRepresentation = 26 // UI
	VRUnsignedLong        ValueRepresentation = 27 // UL (uint32)
	VRUnknown             ValueRepresentation = 28 // UN
	VRUniversalResource   ValueRepresentation = 29 // UR
	VRUnsignedShort       ValueRepresentation = 30 // US (uint16)
	VRUnlimitedText       ValueRepresentation = 31 // UT

	// VRNotSupported marks a VR outside the supported set, or a tag
	// absent from the dictionary.
	VRNotSupported ValueRepresentation = 32
)

var vrTokens = map[ValueRepresentation]string{
	VRApplicationEntity:   "AE",
	VRAgeString:           "AS",
	VRAttributeTag:        "AT",
	VRCodeString:          "CS",
	VRDate:                "DA",
	VRDecimalString:       "DS",
	VRDateTime:            "DT",
	VRFloatingPointSingle: "FL",
	VRFloatingPointDouble: "FD",
	VRIntegerString:       "IS",
	VRLongString:          "LO",
	VRLongText:            "LT",
	VROtherByte:           "OB",
	VROtherDouble:         "OD",
	VROtherFloat:          "OF",
	VROtherLong:           "OL",
	VROtherWord:           "OW",
	VRPersonName:          "PN",
	VRShortString:         "SH",
	VRSignedLong:          "SL",
	VRSequence:            "SQ",
	VRSignedShort:         "SS",
	VRShortText:           "ST",
	VRTime:                "TM",
	VRUnlimitedCharacters: "UC",
	VRUniqueIdentifier:    "UI",
	VRUnsignedLong:        "UL",
	VRUnknown:             "UN",
	VRUniversalResource:   "UR",
	VRUnsignedShort:       "US",
	VRUnlimitedText:       "UT",
}

var vrParse = func() map[string]ValueRepresentation {
	m := make(map[string]ValueRepresentation, len(vrTokens))
	for vr, token := range vrTokens {
		m[token] = vr
	}
	return m
}()

// String returns the two-letter DICOM token of the VR.
func (vr ValueRepresentation) String() string {
	if token, ok := vrTokens[vr]; ok {
		return token
	}
	if vr == VRNotSupported {
		return "Unsupported"
	}
	return fmt.Sprintf("ValueRepresentation(%d)", int(vr))
}

// ParseValueRepresentation parses a two-letter DICOM VR token. With
// strict set, an unrecognized token is a NotImplemented failure;
// otherwise VRNotSupported is returned without error.
func ParseValueRepresentation(token string, strict bool) (ValueRepresentation, error) {
	if vr, ok := vrParse[token]; ok {
		return vr, nil
	}
	if strict {
		return VRNotSupported, errors.NewNotImplemented(
			fmt.Sprintf("unsupported value representation: %q", token))
	}
	return VRNotSupported, nil
}

// IsBinary reports whether the VR holds opaque bytes. Binary values
// are subject to the base64/null-substitution policy during JSON
// serialization instead of being emitted as text. VRNotSupported is
// treated as binary so that unknown data is never rendered as text.
func (vr ValueRepresentation) IsBinary() bool {
	switch vr {
	case VROtherByte,
		VROtherDouble,
		VROtherFloat,
		VROtherLong,
		VROtherWord,
		VRUnknown:
		return true

	case VRApplicationEntity,
		VRAgeString,
		VRAttributeTag,
		VRCodeString,
		VRDate,
		VRDecimalString,
		VRDateTime,
		VRFloatingPointSingle,
		VRFloatingPointDouble,
		VRIntegerString,
		VRLongString,
		VRLongText,
		VRPersonName,
		VRShortString,
		VRSignedLong,
		VRSequence,
		VRSignedShort,
		VRShortText,
		VRTime,
		VRUnlimitedCharacters,
		VRUniqueIdentifier,
		VRUnsignedLong,
		VRUniversalResource,
		VRUnsignedShort,
		VRUnlimitedText:
		return false

	default:
		return true
	}
}
