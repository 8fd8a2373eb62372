// Package enums is the canonical enumeration registry of the imaging
// server: closed value sets for HTTP semantics, DICOM vocabulary
// (value representations, character sets, transfer syntaxes, the
// patient/study/series/instance hierarchy), pixel layouts, job states
// and the numeric codes persisted to disk.
//
// All conversion tables are immutable package-level data; every lookup
// is safe for unrestricted concurrent use. The single mutable cell is
// the process-wide default DICOM encoding, which is atomic.
package enums
