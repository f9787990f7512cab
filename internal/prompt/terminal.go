package prompt

import (
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

const (
	columnsEnvironmentVariableNameConstant      = "COLUMNS"
	terminalTypeEnvironmentVariableNameConstant = "TERM"
	dumbTerminalTypeValueConstant               = "dumb"
	fallbackTerminalWidthConstant               = 80
)

// TerminalWidthResolver determines the width used for horizontal rules.
//
// Resolution order: COLUMNS environment override, live terminal query, then a
// fixed fallback when the terminal type is unset or reports the dumb
// placeholder common inside containers.
type TerminalWidthResolver struct {
	environmentLookup    func(string) string
	terminalSizeQuery    func(fileDescriptor int) (int, int, error)
	outputFileDescriptor int
}

// NewTerminalWidthResolver constructs a resolver backed by the process environment and standard output.
func NewTerminalWidthResolver() *TerminalWidthResolver {
	return &TerminalWidthResolver{
		environmentLookup:    os.Getenv,
		terminalSizeQuery:    term.GetSize,
		outputFileDescriptor: int(os.Stdout.Fd()),
	}
}

// ResolveWidth reports the terminal width in visible character columns.
func (resolver *TerminalWidthResolver) ResolveWidth() int {
	if resolver == nil {
		return fallbackTerminalWidthConstant
	}

	columnsOverride := strings.TrimSpace(resolver.environmentLookup(columnsEnvironmentVariableNameConstant))
	if len(columnsOverride) > 0 {
		overriddenWidth, parseError := strconv.Atoi(columnsOverride)
		if parseError == nil && overriddenWidth > 0 {
			return overriddenWidth
		}
	}

	terminalType := strings.TrimSpace(resolver.environmentLookup(terminalTypeEnvironmentVariableNameConstant))
	if len(terminalType) == 0 || strings.EqualFold(terminalType, dumbTerminalTypeValueConstant) {
		return fallbackTerminalWidthConstant
	}

	queriedWidth, _, queryError := resolver.terminalSizeQuery(resolver.outputFileDescriptor)
	if queryError != nil || queriedWidth <= 0 {
		return fallbackTerminalWidthConstant
	}

	return queriedWidth
}
