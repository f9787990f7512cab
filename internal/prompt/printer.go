package prompt

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/libpointmatcher-build/pmentry/internal/utils"
)

const (
	messageLineTemplateConstant               = "%s\n"
	errorMessagePrefixConstant                = "ERROR: "
	invalidCategoryDiagnosticTemplateConstant = "unrecognized message category %s requested by %s\n"
	unknownCallerLabelConstant                = "unknown caller"
	defaultRuleSymbolConstant                 = "="
	invalidCategoryExitCodeConstant           = 1
	fatalErrorExitCodeConstant                = 1
	messageCallerSkipFramesConstant           = 2
)

// PrinterOptions configures the collaborators injected into a Printer.
type PrinterOptions struct {
	OutputWriter            io.Writer
	ErrorWriter             io.Writer
	Styles                  *StyleConfiguration
	WidthResolver           *TerminalWidthResolver
	ExitFunction            func(int)
	ChangeDirectoryFunction func(string) error
}

// Printer renders styled console output over an immutable style configuration.
type Printer struct {
	outputWriter            io.Writer
	errorWriter             io.Writer
	styles                  StyleConfiguration
	widthResolver           *TerminalWidthResolver
	exitFunction            func(int)
	changeDirectoryFunction func(string) error
}

// NewPrinter constructs a Printer, substituting process-level defaults for absent collaborators.
func NewPrinter(options PrinterOptions) *Printer {
	printer := &Printer{
		outputWriter:            options.OutputWriter,
		errorWriter:             options.ErrorWriter,
		widthResolver:           options.WidthResolver,
		exitFunction:            options.ExitFunction,
		changeDirectoryFunction: options.ChangeDirectoryFunction,
	}

	if printer.outputWriter == nil {
		printer.outputWriter = utils.NewFlushingWriter(os.Stdout)
	}
	if printer.errorWriter == nil {
		printer.errorWriter = utils.NewFlushingWriter(os.Stderr)
	}
	if options.Styles != nil {
		printer.styles = *options.Styles
	} else {
		printer.styles = DefaultStyleConfiguration()
	}
	if printer.widthResolver == nil {
		printer.widthResolver = NewTerminalWidthResolver()
	}
	if printer.exitFunction == nil {
		printer.exitFunction = os.Exit
	}
	if printer.changeDirectoryFunction == nil {
		printer.changeDirectoryFunction = os.Chdir
	}

	return printer
}

// Message writes the text wrapped in the style tokens resolved for the category.
//
// An unmapped category terminates the process with a diagnostic naming the
// offending value and the calling function.
func (printer *Printer) Message(category MessageCategory, text string) {
	tokenPair, categoryKnown := printer.styles.CategoryStyle(category)
	if !categoryKnown {
		fmt.Fprintf(printer.errorWriter, invalidCategoryDiagnosticTemplateConstant, category, callerFunctionName(messageCallerSkipFramesConstant))
		printer.exitFunction(invalidCategoryExitCodeConstant)
		return
	}

	fmt.Fprintf(printer.outputWriter, messageLineTemplateConstant, tokenPair.Apply(text))
}

// Print writes a base-category message.
func (printer *Printer) Print(text string) {
	printer.Message(MessageCategoryBase, text)
}

// PrintDone writes a done-category message.
func (printer *Printer) PrintDone(text string) {
	printer.Message(MessageCategoryDone, text)
}

// PrintWarning writes a warning-category message.
func (printer *Printer) PrintWarning(text string) {
	printer.Message(MessageCategoryWarning, text)
}

// PrintAwaitingInput writes an awaiting-input-category message.
func (printer *Printer) PrintAwaitingInput(text string) {
	printer.Message(MessageCategoryAwaitingInput, text)
}

// Error writes a styled error line to standard error and returns control.
func (printer *Printer) Error(text string) {
	fmt.Fprintf(printer.errorWriter, messageLineTemplateConstant, printer.styles.Error.Apply(errorMessagePrefixConstant+text))
}

// FatalError writes a styled error line, restores the supplied working directory, and terminates the process.
func (printer *Printer) FatalError(originalWorkingDirectory string, text string) {
	printer.Error(text)

	trimmedWorkingDirectory := strings.TrimSpace(originalWorkingDirectory)
	if len(trimmedWorkingDirectory) > 0 {
		_ = printer.changeDirectoryFunction(trimmedWorkingDirectory)
	}

	printer.exitFunction(fatalErrorExitCodeConstant)
}

// DrawRule writes a horizontal line of the repeated symbol spanning the resolved terminal width.
func (printer *Printer) DrawRule(symbol string) {
	fmt.Fprintf(printer.outputWriter, messageLineTemplateConstant, printer.ruleLine(symbol))
}

func (printer *Printer) ruleLine(symbol string) string {
	ruleSymbol := defaultRuleSymbolConstant
	trimmedSymbol := strings.TrimSpace(symbol)
	if len(trimmedSymbol) > 0 {
		ruleSymbol = string([]rune(trimmedSymbol)[0])
	}
	return strings.Repeat(ruleSymbol, printer.widthResolver.ResolveWidth())
}

func (printer *Printer) blankLine() {
	fmt.Fprintln(printer.outputWriter)
}

func callerFunctionName(skipFrames int) string {
	programCounter, _, _, callerAvailable := runtime.Caller(skipFrames)
	if !callerAvailable {
		return unknownCallerLabelConstant
	}
	callerFunction := runtime.FuncForPC(programCounter)
	if callerFunction == nil {
		return unknownCallerLabelConstant
	}
	return callerFunction.Name()
}
