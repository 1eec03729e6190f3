// Package flogging configures the module-scoped loggers used by the law
// runner and the lawcheck command.
package flogging

import (
	"io"
	"os"
	"regexp"
	"strings"
	"sync"

	"github.com/op/go-logging"
)

const (
	pkgLogID      = "flogging"
	defaultFormat = "%{color}%{time:2006-01-02 15:04:05.000 MST} [%{module}] %{shortfunc} -> %{level:.4s} %{id:03x}%{color:reset} %{message}"
	defaultLevel  = logging.INFO
)

var (
	logger *logging.Logger

	modules map[string]string
	lock    sync.RWMutex
)

func init() {
	modules = make(map[string]string)
	logger = MustGetLogger(pkgLogID)
	Reset()
}

// Reset restores the default format, output and level.
func Reset() {
	InitBackend(SetFormat(defaultFormat), os.Stderr)
	InitFromSpec("")
}

// SetFormat builds a formatter from formatSpec, or from the default format
// when formatSpec is empty.
func SetFormat(formatSpec string) logging.Formatter {
	if formatSpec == "" {
		formatSpec = defaultFormat
	}
	return logging.MustStringFormatter(formatSpec)
}

// InitBackend sets up the logging backend based on the provided formatter
// and writer.
func InitBackend(formatter logging.Formatter, output io.Writer) {
	backend := logging.NewLogBackend(output, "", 0)
	backendFormatter := logging.NewBackendFormatter(backend, formatter)
	logging.SetBackend(backendFormatter).SetLevel(defaultLevel, "")
}

// DefaultLevel returns the fallback level name used when parsing fails.
func DefaultLevel() string {
	return defaultLevel.String()
}

// GetModuleLevel gets the current level for module.
func GetModuleLevel(module string) string {
	return logging.GetLevel(module).String()
}

// SetModuleLevel sets level on every registered module whose name matches
// moduleRegExp and returns the level that was applied.
func SetModuleLevel(moduleRegExp string, level string) (string, error) {
	logLevel, err := logging.LogLevel(level)
	if err != nil {
		logger.Warningf("Invalid logging level '%s' - ignored", level)
		return "", err
	}
	re, err := regexp.Compile(moduleRegExp)
	if err != nil {
		logger.Warningf("Invalid regular expression: %s", moduleRegExp)
		return "", err
	}

	lock.Lock()
	defer lock.Unlock()
	for module := range modules {
		if re.MatchString(module) {
			logging.SetLevel(logLevel, module)
			modules[module] = logLevel.String()
			logger.Debugf("Module '%s' logger enabled for log level '%s'", module, logLevel)
		}
	}
	return logLevel.String(), nil
}

// MustGetLogger is used in place of logging.MustGetLogger so that every
// module with a logger is known to SetModuleLevel.
func MustGetLogger(module string) *logging.Logger {
	l := logging.MustGetLogger(module)
	lock.Lock()
	defer lock.Unlock()
	modules[module] = GetModuleLevel(module)
	return l
}

// InitFromSpec initializes levels from a specification of the form
//
//	[<module>[,<module>...]=]<level>[:[<module>[,<module>...]=]<level>...]
//
// and returns the level applied to all modules.
func InitFromSpec(spec string) string {
	levelAll := defaultLevel
	var err error

	if spec != "" {
		for _, field := range strings.Split(spec, ":") {
			split := strings.Split(field, "=")
			switch len(split) {
			case 1:
				if levelAll, err = logging.LogLevel(field); err != nil {
					logger.Warningf("Logging level '%s' not recognized, defaulting to '%s': %s", field, defaultLevel, err)
					levelAll = defaultLevel
				}
			case 2:
				levelSingle, err := logging.LogLevel(split[1])
				if err != nil {
					logger.Warningf("Invalid logging level in '%s' ignored", field)
					continue
				}
				if split[0] == "" {
					logger.Warningf("Invalid logging override specification '%s' ignored - no module specified", field)
					continue
				}
				for _, module := range strings.Split(split[0], ",") {
					logging.SetLevel(levelSingle, module)
				}
			default:
				logger.Warningf("Invalid logging override '%s' ignored - missing ':'?", field)
			}
		}
	}

	logging.SetLevel(levelAll, "")

	lock.Lock()
	defer lock.Unlock()
	for k := range modules {
		modules[k] = GetModuleLevel(k)
	}
	return levelAll.String()
}
