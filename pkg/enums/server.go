package enums

import (
	"fmt"
	"strings"

	"github.com/pacscore/dicom-registry/pkg/errors"
)

// LogLevel is the verbosity of a log record.
type LogLevel int

const (
	LogLevelError LogLevel = iota
	LogLevelWarning
	LogLevelInfo
	LogLevelTrace
)

func (l LogLevel) String() string {
	switch l {
	case LogLevelError:
		return "ERROR"
	case LogLevelWarning:
		return "WARNING"
	case LogLevelInfo:
		return "INFO"
	case LogLevelTrace:
		return "TRACE"
	default:
		return fmt.Sprintf("LogLevel(%d)", int(l))
	}
}

// ParseLogLevel parses a log level name, case-insensitively.
func ParseLogLevel(s string) (LogLevel, error) {
	switch strings.ToUpper(s) {
	case "ERROR":
		return LogLevelError, nil
	case "WARNING":
		return LogLevelWarning, nil
	case "INFO":
		return LogLevelInfo, nil
	case "TRACE":
		return LogLevelTrace, nil
	default:
		return LogLevelInfo, errors.NewParameterOutOfRange(
			fmt.Sprintf("unknown log level: %q", s))
	}
}

// RequestOrigin records which entry point of the server triggered an
// operation.
type RequestOrigin int

const (
	RequestOriginUnknown RequestOrigin = iota
	RequestOriginDicomProtocol
	RequestOriginRestAPI
	RequestOriginPlugins
	RequestOriginLua
)

var requestOriginNames = map[RequestOrigin]string{
	RequestOriginUnknown:       "Unknown",
	RequestOriginDicomProtocol: "DicomProtocol",
	RequestOriginRestAPI:       "RestApi",
	RequestOriginPlugins:       "Plugins",
	RequestOriginLua:           "Lua",
}

func (o RequestOrigin) String() string {
	if s, ok := requestOriginNames[o]; ok {
		return s
	}
	return fmt.Sprintf("RequestOrigin(%d)", int(o))
}

// ParseRequestOrigin parses the serialized form of a request origin.
func ParseRequestOrigin(s string) (RequestOrigin, error) {
	for o, name := range requestOriginNames {
		if s == name {
			return o, nil
		}
	}
	return RequestOriginUnknown, errors.NewParameterOutOfRange(
		fmt.Sprintf("unknown request origin: %q", s))
}
