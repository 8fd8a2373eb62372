package errors

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// The numeric values below are persisted to disk and exchanged with
// plugins. This table is a regression guard: a failure here means a
// published code was renumbered, which is never allowed.
var publishedCodes = []struct {
	code  Code
	value int
	name  string
}{
	{CodeInternalError, -1, "InternalError"},
	{CodeSuccess, 0, "Success"},
	{CodePlugin, 1, "Plugin"},
	{CodeNotImplemented, 2, "NotImplemented"},
	{CodeParameterOutOfRange, 3, "ParameterOutOfRange"},
	{CodeNotEnoughMemory, 4, "NotEnoughMemory"},
	{CodeBadParameterType, 5, "BadParameterType"},
	{CodeBadSequenceOfCalls, 6, "BadSequenceOfCalls"},
	{CodeInexistentItem, 7, "InexistentItem"},
	{CodeBadRequest, 8, "BadRequest"},
	{CodeNetworkProtocol, 9, "NetworkProtocol"},
	{CodeSystemCommand, 10, "SystemCommand"},
	{CodeDatabase, 11, "Database"},
	{CodeUriSyntax, 12, "UriSyntax"},
	{CodeInexistentFile, 13, "InexistentFile"},
	{CodeCannotWriteFile, 14, "CannotWriteFile"},
	{CodeBadFileFormat, 15, "BadFileFormat"},
	{CodeTimeout, 16, "Timeout"},
	{CodeUnknownResource, 17, "UnknownResource"},
	{CodeIncompatibleDatabaseVersion, 18, "IncompatibleDatabaseVersion"},
	{CodeFullStorage, 19, "FullStorage"},
	{CodeCorruptedFile, 20, "CorruptedFile"},
	{CodeInexistentTag, 21, "InexistentTag"},
	{CodeReadOnly, 22, "ReadOnly"},
	{CodeIncompatibleImageFormat, 23, "IncompatibleImageFormat"},
	{CodeIncompatibleImageSize, 24, "IncompatibleImageSize"},
	{CodeSharedLibrary, 25, "SharedLibrary"},
	{CodeUnknownPluginService, 26, "UnknownPluginService"},
	{CodeUnknownDicomTag, 27, "UnknownDicomTag"},
	{CodeBadJson, 28, "BadJson"},
	{CodeUnauthorized, 29, "Unauthorized"},
	{CodeBadFont, 30, "BadFont"},
	{CodeDatabasePlugin, 31, "DatabasePlugin"},
	{CodeStorageAreaPlugin, 32, "StorageAreaPlugin"},
	{CodeEmptyRequest, 33, "EmptyRequest"},
	{CodeNotAcceptable, 34, "NotAcceptable"},
	{CodeNullPointer, 35, "NullPointer"},
	{CodeDatabaseUnavailable, 36, "DatabaseUnavailable"},
	{CodeCanceledJob, 37, "CanceledJob"},

	{CodeSQLiteNotOpened, 1000, "SQLiteNotOpened"},
	{CodeSQLiteAlreadyOpened, 1001, "SQLiteAlreadyOpened"},
	{CodeSQLiteCannotOpen, 1002, "SQLiteCannotOpen"},
	{CodeSQLiteStatementAlreadyUsed, 1003, "SQLiteStatementAlreadyUsed"},
	{CodeSQLiteExecute, 1004, "SQLiteExecute"},
	{CodeSQLiteRollbackWithoutTransaction, 1005, "SQLiteRollbackWithoutTransaction"},
	{CodeSQLiteCommitWithoutTransaction, 1006, "SQLiteCommitWithoutTransaction"},
	{CodeSQLiteRegisterFunction, 1007, "SQLiteRegisterFunction"},
	{CodeSQLiteFlush, 1008, "SQLiteFlush"},
	{CodeSQLiteCannotRun, 1009, "SQLiteCannotRun"},
	{CodeSQLiteCannotStep, 1010, "SQLiteCannotStep"},
	{CodeSQLiteBindOutOfRange, 1011, "SQLiteBindOutOfRange"},
	{CodeSQLitePrepareStatement, 1012, "SQLitePrepareStatement"},
	{CodeSQLiteTransactionAlreadyStarted, 1013, "SQLiteTransactionAlreadyStarted"},
	{CodeSQLiteTransactionCommit, 1014, "SQLiteTransactionCommit"},
	{CodeSQLiteTransactionBegin, 1015, "SQLiteTransactionBegin"},

	{CodeDirectoryOverFile, 2000, "DirectoryOverFile"},
	{CodeFileStorageCannotWrite, 2001, "FileStorageCannotWrite"},
	{CodeDirectoryExpected, 2002, "DirectoryExpected"},
	{CodeHttpPortInUse, 2003, "HttpPortInUse"},
	{CodeDicomPortInUse, 2004, "DicomPortInUse"},
	{CodeBadHttpStatusInRest, 2005, "BadHttpStatusInRest"},
	{CodeRegularFileExpected, 2006, "RegularFileExpected"},
	{CodePathToExecutable, 2007, "PathToExecutable"},
	{CodeMakeDirectory, 2008, "MakeDirectory"},
	{CodeBadApplicationEntityTitle, 2009, "BadApplicationEntityTitle"},
	{CodeNoCFindHandler, 2010, "NoCFindHandler"},
	{CodeNoCMoveHandler, 2011, "NoCMoveHandler"},
	{CodeNoCStoreHandler, 2012, "NoCStoreHandler"},
	{CodeNoApplicationEntityFilter, 2013, "NoApplicationEntityFilter"},
	{CodeNoSopClassOrInstance, 2014, "NoSopClassOrInstance"},
	{CodeNoPresentationContext, 2015, "NoPresentationContext"},
	{CodeDicomFindUnavailable, 2016, "DicomFindUnavailable"},
	{CodeDicomMoveUnavailable, 2017, "DicomMoveUnavailable"},
	{CodeCannotStoreInstance, 2018, "CannotStoreInstance"},
	{CodeCreateDicomNotString, 2019, "CreateDicomNotString"},
	{CodeCreateDicomOverrideTag, 2020, "CreateDicomOverrideTag"},
	{CodeCreateDicomUseContent, 2021, "CreateDicomUseContent"},
	{CodeCreateDicomNoPayload, 2022, "CreateDicomNoPayload"},
	{CodeCreateDicomUseDataUriScheme, 2023, "CreateDicomUseDataUriScheme"},
	{CodeCreateDicomBadParent, 2024, "CreateDicomBadParent"},
	{CodeCreateDicomParentIsInstance, 2025, "CreateDicomParentIsInstance"},
	{CodeCreateDicomParentEncoding, 2026, "CreateDicomParentEncoding"},
	{CodeUnknownModality, 2027, "UnknownModality"},
	{CodeBadJobOrdering, 2028, "BadJobOrdering"},
	{CodeJsonToLuaTable, 2029, "JsonToLuaTable"},
	{CodeCannotCreateLua, 2030, "CannotCreateLua"},
	{CodeCannotExecuteLua, 2031, "CannotExecuteLua"},
	{CodeLuaAlreadyExecuted, 2032, "LuaAlreadyExecuted"},
	{CodeLuaBadOutput, 2033, "LuaBadOutput"},
	{CodeNotLuaPredicate, 2034, "NotLuaPredicate"},
	{CodeLuaReturnsNoString, 2035, "LuaReturnsNoString"},
	{CodeStorageAreaAlreadyRegistered, 2036, "StorageAreaAlreadyRegistered"},
	{CodeDatabaseBackendAlreadyRegistered, 2037, "DatabaseBackendAlreadyRegistered"},
	{CodeDatabaseNotInitialized, 2038, "DatabaseNotInitialized"},
	{CodeSslDisabled, 2039, "SslDisabled"},
	{CodeCannotOrderSlices, 2040, "CannotOrderSlices"},
	{CodeNoWorklistHandler, 2041, "NoWorklistHandler"},
	{CodeAlreadyExistingTag, 2042, "AlreadyExistingTag"},

	{CodeStartPlugins, 1000000, "StartPlugins"},
}

func TestCodeValuesAreFrozen(t *testing.T) {
	seen := make(map[int]string, len(publishedCodes))
	for _, tc := range publishedCodes {
		require.Equal(t, tc.value, int(tc.code), "code %s was renumbered", tc.name)
		require.Equal(t, tc.name, tc.code.String())

		prev, dup := seen[tc.value]
		require.False(t, dup, "value %d reused by %s and %s", tc.value, prev, tc.name)
		seen[tc.value] = tc.name
	}
}

func TestCodeDescriptionsAreComplete(t *testing.T) {
	for _, tc := range publishedCodes {
		require.NotEmpty(t, tc.code.Description(), "code %s has no description", tc.name)
	}
}

func TestCodeStringUnknownValue(t *testing.T) {
	require.Equal(t, "Code(424242)", Code(424242).String())
	require.NotEmpty(t, Code(424242).Description())
}

func TestIsPluginCode(t *testing.T) {
	require.True(t, CodeStartPlugins.IsPluginCode())
	require.True(t, Code(1000001).IsPluginCode())
	require.False(t, CodeAlreadyExistingTag.IsPluginCode())
	require.False(t, CodeSuccess.IsPluginCode())
}
