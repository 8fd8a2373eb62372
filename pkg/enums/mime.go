package enums

import "fmt"

// URISchemePrefixBinary prefixes binary payloads embedded in JSON
// bodies according to the Data URI scheme.
const URISchemePrefixBinary = "data:application/octet-stream;base64,"

const (
	MIMEBinary   = "application/octet-stream"
	MIMEDicom    = "application/dicom"
	MIMEJpeg     = "image/jpeg"
	MIMEJSON     = "application/json"
	MIMEJSONUtf8 = "application/json; charset=utf-8"
	MIMEPdf      = "application/pdf"
	MIMEPng      = "image/png"
	MIMEXML      = "application/xml"
	MIMEXMLUtf8  = "application/xml; charset=utf-8"

	// No media type for PAM has been registered with IANA; the
	// unofficial value below follows the Netpbm convention.
	// http://netpbm.sourceforge.net/doc/pam.html
	MIMEPam = "image/x-portable-arbitrarymap"
)

// MIMEType enumerates the media types the server can emit.
type MIMEType int

const (
	MIMETypeBinary MIMEType = iota
	MIMETypeCss
	MIMETypeDicom
	MIMETypeGif
	MIMETypeGzip
	MIMETypeHTML
	MIMETypeJavaScript
	MIMETypeJpeg
	MIMETypeJpeg2000
	MIMETypeJSON
	MIMETypeNaCl
	MIMETypePNaCl
	MIMETypePam
	MIMETypePdf
	MIMETypePlainText
	MIMETypePng
	MIMETypeSvg
	MIMETypeWebAssembly
	MIMETypeXML
	MIMETypeWoff
	MIMETypeZip
	MIMETypePrometheusText
	MIMETypeDicomWebJSON
	MIMETypeDicomWebXML
)

var mimeTypeStrings = map[MIMEType]string{
	MIMETypeBinary:         MIMEBinary,
	MIMETypeCss:            "text/css",
	MIMETypeDicom:          MIMEDicom,
	MIMETypeGif:            "image/gif",
	MIMETypeGzip:           "application/gzip",
	MIMETypeHTML:           "text/html",
	MIMETypeJavaScript:     "application/javascript",
	MIMETypeJpeg:           MIMEJpeg,
	MIMETypeJpeg2000:       "image/jp2",
	MIMETypeJSON:           MIMEJSON,
	MIMETypeNaCl:           "application/x-nacl",
	MIMETypePNaCl:          "application/x-pnacl",
	MIMETypePam:            MIMEPam,
	MIMETypePdf:            MIMEPdf,
	MIMETypePlainText:      "text/plain",
	MIMETypePng:            MIMEPng,
	MIMETypeSvg:            "image/svg+xml",
	MIMETypeWebAssembly:    "application/wasm",
	MIMETypeXML:            MIMEXML,
	MIMETypeWoff:           "application/x-font-woff",
	MIMETypeZip:            "application/zip",
	MIMETypePrometheusText: "text/plain; version=0.0.4; charset=utf-8",
	MIMETypeDicomWebJSON:   "application/dicom+json",
	MIMETypeDicomWebXML:    "application/dicom+xml",
}

var mimeTypeParse = func() map[string]MIMEType {
	m := make(map[string]MIMEType, len(mimeTypeStrings))
	for t, s := range mimeTypeStrings {
		m[s] = t
	}
	// Alternative spelling still seen in the wild
	m["text/xml"] = MIMETypeXML
	return m
}()

// String returns the canonical lowercase MIME token.
func (t MIMEType) String() string {
	if s, ok := mimeTypeStrings[t]; ok {
		return s
	}
	return fmt.Sprintf("MIMEType(%d)", int(t))
}

// ParseMIMEType maps a MIME token to its enum value. Unrecognized
// input falls back to MIMETypeBinary, the generic octet-stream type.
func ParseMIMEType(s string) MIMEType {
	if t, ok := mimeTypeParse[s]; ok {
		return t
	}
	return MIMETypeBinary
}
