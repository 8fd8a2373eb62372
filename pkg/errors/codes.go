package errors

import "fmt"

// Code identifies an error condition of the imaging server. Codes are
// persisted to the database and exchanged with plugins as raw integers:
// once a code is published its numeric value must never change. New
// codes are appended, never renumbered.
//
// Ranges:
//
//	-1..999      core server codes
//	1000..1999   database/transaction diagnostics
//	2000..2999   filesystem, network and DICOM-domain codes
//	1000000..    reserved for externally-defined (plugin) codes
type Code int

const (
	CodeInternalError               Code = -1
	CodeSuccess                     Code = 0
	CodePlugin                      Code = 1
	CodeNotImplemented              Code = 2
	CodeParameterOutOfRange         Code = 3
	CodeNotEnoughMemory             Code = 4
	CodeBadParameterType            Code = 5
	CodeBadSequenceOfCalls          Code = 6
	CodeInexistentItem              Code = 7
	CodeBadRequest                  Code = 8
	CodeNetworkProtocol             Code = 9
	CodeSystemCommand               Code = 10
	CodeDatabase                    Code = 11
	CodeUriSyntax                   Code = 12
	CodeInexistentFile              Code = 13
	CodeCannotWriteFile             Code = 14
	CodeBadFileFormat               Code = 15
	CodeTimeout                     Code = 16
	CodeUnknownResource             Code = 17
	CodeIncompatibleDatabaseVersion Code = 18
	CodeFullStorage                 Code = 19
	CodeCorruptedFile               Code = 20
	CodeInexistentTag               Code = 21
	CodeReadOnly                    Code = 22
	CodeIncompatibleImageFormat     Code = 23
	CodeIncompatibleImageSize       Code = 24
	CodeSharedLibrary               Code = 25
	CodeUnknownPluginService        Code = 26
	CodeUnknownDicomTag             Code = 27
	CodeBadJson                     Code = 28
	CodeUnauthorized                Code = 29
	CodeBadFont                     Code = 30
	CodeDatabasePlugin              Code = 31
	CodeStorageAreaPlugin           Code = 32
	CodeEmptyRequest                Code = 33
	CodeNotAcceptable               Code = 34
	CodeNullPointer                 Code = 35
	CodeDatabaseUnavailable         Code = 36
	CodeCanceledJob                 Code = 37
)

// Database/transaction diagnostics (1000..1999).
const (
	CodeSQLiteNotOpened                  Code = 1000
	CodeSQLiteAlreadyOpened              Code = 1001
	CodeSQLiteCannotOpen                 Code = 1002
	CodeSQLiteStatementAlreadyUsed       Code = 1003
	CodeSQLiteExecute                    Code = 1004
	CodeSQLiteRollbackWithoutTransaction Code = 1005
	CodeSQLiteCommitWithoutTransaction   Code = 1006
	CodeSQLiteRegisterFunction           Code = 1007
	CodeSQLiteFlush                      Code = 1008
	CodeSQLiteCannotRun                  Code = 1009
	CodeSQLiteCannotStep                 Code = 1010
	CodeSQLiteBindOutOfRange             Code = 1011
	CodeSQLitePrepareStatement           Code = 1012
	CodeSQLiteTransactionAlreadyStarted  Code = 1013
	CodeSQLiteTransactionCommit          Code = 1014
	CodeSQLiteTransactionBegin           Code = 1015
)

// Filesystem, network and DICOM-domain codes (2000..2999).
const (
	CodeDirectoryOverFile                Code = 2000
	CodeFileStorageCannotWrite           Code = 2001
	CodeDirectoryExpected                Code = 2002
	CodeHttpPortInUse                    Code = 2003
	CodeDicomPortInUse                   Code = 2004
	CodeBadHttpStatusInRest              Code = 2005
	CodeRegularFileExpected              Code = 2006
	CodePathToExecutable                 Code = 2007
	CodeMakeDirectory                    Code = 2008
	CodeBadApplicationEntityTitle        Code = 2009
	CodeNoCFindHandler                   Code = 2010
	CodeNoCMoveHandler                   Code = 2011
	CodeNoCStoreHandler                  Code = 2012
	CodeNoApplicationEntityFilter        Code = 2013
	CodeNoSopClassOrInstance             Code = 2014
	CodeNoPresentationContext            Code = 2015
	CodeDicomFindUnavailable             Code = 2016
	CodeDicomMoveUnavailable             Code = 2017
	CodeCannotStoreInstance              Code = 2018
	CodeCreateDicomNotString             Code = 2019
	CodeCreateDicomOverrideTag           Code = 2020
	CodeCreateDicomUseContent            Code = 2021
	CodeCreateDicomNoPayload             Code = 2022
	CodeCreateDicomUseDataUriScheme      Code = 2023
	CodeCreateDicomBadParent             Code = 2024
	CodeCreateDicomParentIsInstance      Code = 2025
	CodeCreateDicomParentEncoding        Code = 2026
	CodeUnknownModality                  Code = 2027
	CodeBadJobOrdering                   Code = 2028
	CodeJsonToLuaTable                   Code = 2029
	CodeCannotCreateLua                  Code = 2030
	CodeCannotExecuteLua                 Code = 2031
	CodeLuaAlreadyExecuted               Code = 2032
	CodeLuaBadOutput                     Code = 2033
	CodeNotLuaPredicate                  Code = 2034
	CodeLuaReturnsNoString               Code = 2035
	CodeStorageAreaAlreadyRegistered     Code = 2036
	CodeDatabaseBackendAlreadyRegistered Code = 2037
	CodeDatabaseNotInitialized           Code = 2038
	CodeSslDisabled                      Code = 2039
	CodeCannotOrderSlices                Code = 2040
	CodeNoWorklistHandler                Code = 2041
	CodeAlreadyExistingTag               Code = 2042
)

// CodeStartPlugins is the first value of the range reserved for
// externally-defined codes. Values at or above it are passed through
// the registry unmodified.
const CodeStartPlugins Code = 1000000

type codeInfo struct {
	name        string
	description string
}

var codeTable = map[Code]codeInfo{
	CodeInternalError:               {"InternalError", "Internal error"},
	CodeSuccess:                     {"Success", "Success"},
	CodePlugin:                      {"Plugin", "Error encountered within the plugin engine"},
	CodeNotImplemented:              {"NotImplemented", "Not implemented yet"},
	CodeParameterOutOfRange:         {"ParameterOutOfRange", "Parameter out of range"},
	CodeNotEnoughMemory:             {"NotEnoughMemory", "The server is running out of memory"},
	CodeBadParameterType:            {"BadParameterType", "Bad type for a parameter"},
	CodeBadSequenceOfCalls:          {"BadSequenceOfCalls", "Bad sequence of calls"},
	CodeInexistentItem:              {"InexistentItem", "Accessing an inexistent item"},
	CodeBadRequest:                  {"BadRequest", "Bad request"},
	CodeNetworkProtocol:             {"NetworkProtocol", "Error in the network protocol"},
	CodeSystemCommand:               {"SystemCommand", "Error while calling a system command"},
	CodeDatabase:                    {"Database", "Error with the database engine"},
	CodeUriSyntax:                   {"UriSyntax", "Badly formatted URI"},
	CodeInexistentFile:              {"InexistentFile", "Inexistent file"},
	CodeCannotWriteFile:             {"CannotWriteFile", "Cannot write to file"},
	CodeBadFileFormat:               {"BadFileFormat", "Bad file format"},
	CodeTimeout:                     {"Timeout", "Timeout"},
	CodeUnknownResource:             {"UnknownResource", "Unknown resource"},
	CodeIncompatibleDatabaseVersion: {"IncompatibleDatabaseVersion", "Incompatible version of the database"},
	CodeFullStorage:                 {"FullStorage", "The file storage is full"},
	CodeCorruptedFile:               {"CorruptedFile", "Corrupted file (e.g. inconsistent MD5 hash)"},
	CodeInexistentTag:               {"InexistentTag", "Inexistent tag"},
	CodeReadOnly:                    {"ReadOnly", "Cannot modify a read-only data structure"},
	CodeIncompatibleImageFormat:     {"IncompatibleImageFormat", "Incompatible format of the images"},
	CodeIncompatibleImageSize:       {"IncompatibleImageSize", "Incompatible size of the images"},
	CodeSharedLibrary:               {"SharedLibrary", "Error while using a shared library (plugin)"},
	CodeUnknownPluginService:        {"UnknownPluginService", "Plugin invoking an unknown service"},
	CodeUnknownDicomTag:             {"UnknownDicomTag", "Unknown DICOM tag"},
	CodeBadJson:                     {"BadJson", "Cannot parse a JSON document"},
	CodeUnauthorized:                {"Unauthorized", "Bad credentials were provided to an HTTP request"},
	CodeBadFont:                     {"BadFont", "Badly formatted font file"},
	CodeDatabasePlugin:              {"DatabasePlugin", "The plugin implementing a custom database back-end does not fulfill the proper interface"},
	CodeStorageAreaPlugin:           {"StorageAreaPlugin", "Error in the plugin implementing a custom storage area"},
	CodeEmptyRequest:                {"EmptyRequest", "The request is empty"},
	CodeNotAcceptable:               {"NotAcceptable", "Cannot send a response which is acceptable according to the Accept HTTP header"},
	CodeNullPointer:                 {"NullPointer", "Cannot handle a NULL pointer"},
	CodeDatabaseUnavailable:         {"DatabaseUnavailable", "The database is currently not available (probably a transient situation)"},
	CodeCanceledJob:                 {"CanceledJob", "This job was canceled"},

	CodeSQLiteNotOpened:                  {"SQLiteNotOpened", "SQLite: The database is not opened"},
	CodeSQLiteAlreadyOpened:              {"SQLiteAlreadyOpened", "SQLite: Connection is already open"},
	CodeSQLiteCannotOpen:                 {"SQLiteCannotOpen", "SQLite: Unable to open the database"},
	CodeSQLiteStatementAlreadyUsed:       {"SQLiteStatementAlreadyUsed", "SQLite: This cached statement is already being referred to"},
	CodeSQLiteExecute:                    {"SQLiteExecute", "SQLite: Cannot execute a command"},
	CodeSQLiteRollbackWithoutTransaction: {"SQLiteRollbackWithoutTransaction", "SQLite: Rolling back a nonexistent transaction"},
	CodeSQLiteCommitWithoutTransaction:   {"SQLiteCommitWithoutTransaction", "SQLite: Committing a nonexistent transaction"},
	CodeSQLiteRegisterFunction:           {"SQLiteRegisterFunction", "SQLite: Unable to register a function"},
	CodeSQLiteFlush:                      {"SQLiteFlush", "SQLite: Unable to flush the database"},
	CodeSQLiteCannotRun:                  {"SQLiteCannotRun", "SQLite: Cannot run a cached statement"},
	CodeSQLiteCannotStep:                 {"SQLiteCannotStep", "SQLite: Cannot step over a cached statement"},
	CodeSQLiteBindOutOfRange:             {"SQLiteBindOutOfRange", "SQLite: Binding a value while out of range (serious error)"},
	CodeSQLitePrepareStatement:           {"SQLitePrepareStatement", "SQLite: Cannot prepare a cached statement"},
	CodeSQLiteTransactionAlreadyStarted:  {"SQLiteTransactionAlreadyStarted", "SQLite: Beginning the same transaction twice"},
	CodeSQLiteTransactionCommit:          {"SQLiteTransactionCommit", "SQLite: Failure when committing the transaction"},
	CodeSQLiteTransactionBegin:           {"SQLiteTransactionBegin", "SQLite: Cannot start a transaction"},

	CodeDirectoryOverFile:                {"DirectoryOverFile", "The directory to be created is already occupied by a regular file"},
	CodeFileStorageCannotWrite:           {"FileStorageCannotWrite", "Unable to create a subdirectory or a file in the file storage"},
	CodeDirectoryExpected:                {"DirectoryExpected", "The specified path does not point to a directory"},
	CodeHttpPortInUse:                    {"HttpPortInUse", "The TCP port of the HTTP server is privileged or already in use"},
	CodeDicomPortInUse:                   {"DicomPortInUse", "The TCP port of the DICOM server is privileged or already in use"},
	CodeBadHttpStatusInRest:              {"BadHttpStatusInRest", "This HTTP status is not allowed in a REST API"},
	CodeRegularFileExpected:              {"RegularFileExpected", "The specified path does not point to a regular file"},
	CodePathToExecutable:                 {"PathToExecutable", "Unable to get the path to the executable"},
	CodeMakeDirectory:                    {"MakeDirectory", "Cannot create a directory"},
	CodeBadApplicationEntityTitle:        {"BadApplicationEntityTitle", "An application entity title (AET) cannot be empty or be longer than 16 characters"},
	CodeNoCFindHandler:                   {"NoCFindHandler", "No request handler factory for DICOM C-FIND SCP"},
	CodeNoCMoveHandler:                   {"NoCMoveHandler", "No request handler factory for DICOM C-MOVE SCP"},
	CodeNoCStoreHandler:                  {"NoCStoreHandler", "No request handler factory for DICOM C-STORE SCP"},
	CodeNoApplicationEntityFilter:        {"NoApplicationEntityFilter", "No application entity filter"},
	CodeNoSopClassOrInstance:             {"NoSopClassOrInstance", "Unable to find the SOP class and instance"},
	CodeNoPresentationContext:            {"NoPresentationContext", "No acceptable presentation context for modality"},
	CodeDicomFindUnavailable:             {"DicomFindUnavailable", "The C-FIND command is not supported by the remote SCP"},
	CodeDicomMoveUnavailable:             {"DicomMoveUnavailable", "The C-MOVE command is not supported by the remote SCP"},
	CodeCannotStoreInstance:              {"CannotStoreInstance", "Cannot store an instance"},
	CodeCreateDicomNotString:             {"CreateDicomNotString", "Only string values are supported when creating DICOM instances"},
	CodeCreateDicomOverrideTag:           {"CreateDicomOverrideTag", "Trying to override a value inherited from a parent module"},
	CodeCreateDicomUseContent:            {"CreateDicomUseContent", "Use \"Content\" to inject an image into a new DICOM instance"},
	CodeCreateDicomNoPayload:             {"CreateDicomNoPayload", "No payload is present for one instance in the series"},
	CodeCreateDicomUseDataUriScheme:      {"CreateDicomUseDataUriScheme", "The payload of the DICOM instance must be specified according to Data URI scheme"},
	CodeCreateDicomBadParent:             {"CreateDicomBadParent", "Trying to attach a new DICOM instance to an inexistent resource"},
	CodeCreateDicomParentIsInstance:      {"CreateDicomParentIsInstance", "Trying to attach a new DICOM instance to an instance (must be a series, study or patient)"},
	CodeCreateDicomParentEncoding:        {"CreateDicomParentEncoding", "Unable to get the encoding of the parent resource"},
	CodeUnknownModality:                  {"UnknownModality", "Unknown modality"},
	CodeBadJobOrdering:                   {"BadJobOrdering", "Bad ordering of filters in a job"},
	CodeJsonToLuaTable:                   {"JsonToLuaTable", "Cannot convert the given JSON object to a Lua table"},
	CodeCannotCreateLua:                  {"CannotCreateLua", "Cannot create the Lua context"},
	CodeCannotExecuteLua:                 {"CannotExecuteLua", "Cannot execute a Lua command"},
	CodeLuaAlreadyExecuted:               {"LuaAlreadyExecuted", "Arguments cannot be pushed after the Lua function is executed"},
	CodeLuaBadOutput:                     {"LuaBadOutput", "The Lua function does not give the expected number of outputs"},
	CodeNotLuaPredicate:                  {"NotLuaPredicate", "The Lua function is not a predicate (only true/false outputs allowed)"},
	CodeLuaReturnsNoString:               {"LuaReturnsNoString", "The Lua function does not return a string"},
	CodeStorageAreaAlreadyRegistered:     {"StorageAreaAlreadyRegistered", "Another plugin has already registered a custom storage area"},
	CodeDatabaseBackendAlreadyRegistered: {"DatabaseBackendAlreadyRegistered", "Another plugin has already registered a custom database back-end"},
	CodeDatabaseNotInitialized:           {"DatabaseNotInitialized", "Plugin trying to call the database during its initialization"},
	CodeSslDisabled:                      {"SslDisabled", "The server has been built without SSL support"},
	CodeCannotOrderSlices:                {"CannotOrderSlices", "Unable to order the slices of the series"},
	CodeNoWorklistHandler:                {"NoWorklistHandler", "No request handler factory for DICOM C-FIND Modality SCP"},
	CodeAlreadyExistingTag:               {"AlreadyExistingTag", "Cannot override the value of a tag that already exists"},

	CodeStartPlugins: {"StartPlugins", "Start of the range reserved for plugin-defined error codes"},
}

// String returns the stable CamelCase name of the code. Values outside
// the published set get a deterministic "Code(n)" form so that logging
// a foreign (plugin-defined) code stays harmless.
func (c Code) String() string {
	if info, ok := codeTable[c]; ok {
		return info.name
	}
	return fmt.Sprintf("Code(%d)", int(c))
}

// Description returns the human-readable description of the code.
func (c Code) Description() string {
	if info, ok := codeTable[c]; ok {
		return info.description
	}
	return fmt.Sprintf("Unknown error code (%d)", int(c))
}

// IsPluginCode reports whether the code belongs to the range reserved
// for externally-defined codes.
func (c Code) IsPluginCode() bool {
	return c >= CodeStartPlugins
}
