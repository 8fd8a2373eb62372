package enums

import "fmt"

// The values below are written to the database as raw integers and
// must never change between versions.

// CompressionType describes how an attached file is stored on disk.
type CompressionType int

const (
	// CompressionTypeNone stores the buffer as-is.
	CompressionTypeNone CompressionType = 1

	// CompressionTypeZlibWithSize stores the buffer compressed with
	// "deflate" (RFC 1951) wrapped in the zlib format (RFC 1950),
	// prefixed with the uncompressed size as a little-endian uint64.
	// An empty compressed buffer represents an empty uncompressed
	// buffer.
	CompressionTypeZlibWithSize CompressionType = 2
)

func (t CompressionType) String() string {
	switch t {
	case CompressionTypeNone:
		return "None"
	case CompressionTypeZlibWithSize:
		return "ZlibWithSize"
	default:
		return fmt.Sprintf("CompressionType(%d)", int(t))
	}
}

// FileContentType identifies what an attached file contains. Core
// types stay below FileContentTypeStartUser; the range
// [FileContentTypeStartUser, FileContentTypeEndUser] is reserved for
// externally-defined types and is passed through unmodified.
type FileContentType int

const (
	FileContentTypeUnknown     FileContentType = 0
	FileContentTypeDicom       FileContentType = 1
	FileContentTypeDicomAsJSON FileContentType = 2

	FileContentTypeStartUser FileContentType = 1024
	FileContentTypeEndUser   FileContentType = 65535
)

func (t FileContentType) String() string {
	switch t {
	case FileContentTypeUnknown:
		return "Unknown"
	case FileContentTypeDicom:
		return "Dicom"
	case FileContentTypeDicomAsJSON:
		return "DicomAsJson"
	default:
		if t.IsUserContentType() {
			return fmt.Sprintf("User(%d)", int(t))
		}
		return fmt.Sprintf("FileContentType(%d)", int(t))
	}
}

// IsUserContentType reports whether the value lies in the range
// reserved for externally-defined content types.
func (t FileContentType) IsUserContentType() bool {
	return t >= FileContentTypeStartUser && t <= FileContentTypeEndUser
}
