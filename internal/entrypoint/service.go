package entrypoint

import (
	"context"
	"errors"
	"fmt"

	"github.com/libpointmatcher-build/pmentry/internal/execshell"
	"github.com/libpointmatcher-build/pmentry/internal/prompt"
)

const (
	installerVersionFlagConstant      = "--libpointmatcher-version"
	installerBuildTypeFlagConstant    = "--cmake-build-type"
	entrypointScriptNameConstant      = "pmentry"
	installerCompletedMessageConstant = "libpointmatcher install step completed"
	installerSkippedMessageConstant   = "libpointmatcher install step skipped"
	executorRequiredMessageConstant   = "entrypoint service requires a command executor"
	printerRequiredMessageConstant    = "entrypoint service requires a printer"
)

// Sentinel errors reported during service construction.
var (
	// ErrExecutorNotConfigured indicates the service was constructed without a command executor.
	ErrExecutorNotConfigured = errors.New(executorRequiredMessageConstant)
	// ErrPrinterNotConfigured indicates the service was constructed without a printer.
	ErrPrinterNotConfigured = errors.New(printerRequiredMessageConstant)
)

// DispatchError pairs a dispatch failure with the exit code to report.
type DispatchError struct {
	ExitCode int
	Cause    error
}

// Error renders the underlying failure description.
func (dispatchError DispatchError) Error() string {
	return dispatchError.Cause.Error()
}

// Unwrap exposes the underlying cause for errors.Is and errors.As inspection.
func (dispatchError DispatchError) Unwrap() error {
	return dispatchError.Cause
}

// CommandExecutor abstracts shell execution for the dispatch sequence.
type CommandExecutor interface {
	Execute(executionContext context.Context, commandName execshell.CommandName, details execshell.CommandDetails) (execshell.ExecutionResult, error)
}

// EnvironmentLoader abstracts environment file resolution.
type EnvironmentLoader interface {
	Load(environmentFilePath string) (InstallerVariables, error)
}

// RunOptions parameterizes one dispatch of the entrypoint sequence.
type RunOptions struct {
	// EnvironmentFilePath locates the environment file consulted before process variables.
	EnvironmentFilePath string
	// InstallerCommand names the installer executable invoked with derived flags.
	InstallerCommand string
	// SkipInstall bypasses the installer while still validating required variables.
	SkipInstall bool
	// PassthroughArguments form the command executed after the install step.
	PassthroughArguments []string
	// WorkingDirectory is applied to the installer and the pass-through command.
	WorkingDirectory string
}

// Service orchestrates the entrypoint dispatch sequence.
type Service struct {
	executor          CommandExecutor
	printer           *prompt.Printer
	environmentLoader EnvironmentLoader
}

// NewService validates dependencies and constructs a Service.
func NewService(executor CommandExecutor, printer *prompt.Printer, environmentLoader EnvironmentLoader) (*Service, error) {
	if executor == nil {
		return nil, ErrExecutorNotConfigured
	}
	if printer == nil {
		return nil, ErrPrinterNotConfigured
	}

	resolvedLoader := environmentLoader
	if resolvedLoader == nil {
		resolvedLoader = NewEnvironmentFileLoader()
	}

	return &Service{
		executor:          executor,
		printer:           printer,
		environmentLoader: resolvedLoader,
	}, nil
}

// Run executes the dispatch sequence and returns the exit code of the final command.
//
// The sequence loads the environment file, validates the required installer
// variables, runs the installer with derived flags, previews the environment
// file, and finally replaces control with the pass-through command. Validation
// failures abort before the installer starts.
func (service *Service) Run(executionContext context.Context, options RunOptions) (int, error) {
	service.printer.StartBanner(entrypointScriptNameConstant, "")

	installerVariables, loadError := service.environmentLoader.Load(options.EnvironmentFilePath)
	if loadError != nil {
		return 1, loadError
	}

	validationError := ValidateInstallerVariables(installerVariables)
	if validationError != nil {
		return 1, validationError
	}

	if options.SkipInstall {
		service.printer.PrintWarning(installerSkippedMessageConstant)
	} else {
		installerExitCode, installerError := service.runInstaller(executionContext, options, installerVariables)
		if installerError != nil {
			return installerExitCode, installerError
		}
		service.printer.PrintDone(installerCompletedMessageConstant)
	}

	if len(options.EnvironmentFilePath) > 0 {
		service.printer.PreviewBegin(options.EnvironmentFilePath)
		service.printer.PreviewEnd()
	}

	if len(options.PassthroughArguments) == 0 {
		service.printer.EndBanner(entrypointScriptNameConstant, "")
		return 0, nil
	}

	passthroughExitCode, passthroughError := service.runPassthrough(executionContext, options)
	service.printer.EndBanner(entrypointScriptNameConstant, "")
	return passthroughExitCode, passthroughError
}

func (service *Service) runInstaller(executionContext context.Context, options RunOptions, installerVariables InstallerVariables) (int, error) {
	installerCommand := options.InstallerCommand
	if len(installerCommand) == 0 {
		installerCommand = string(execshell.CommandInstaller)
	}

	installerDetails := execshell.CommandDetails{
		Arguments: []string{
			installerVersionFlagConstant, installerVariables.Version,
			installerBuildTypeFlagConstant, installerVariables.CMakeBuildType,
			installerVariables.InstallScriptFlag,
		},
		WorkingDirectory:       options.WorkingDirectory,
		InheritStandardStreams: true,
	}

	executionResult, executionError := service.executor.Execute(executionContext, execshell.CommandName(installerCommand), installerDetails)
	if executionError != nil {
		return exitCodeForError(executionResult, executionError), executionError
	}

	return executionResult.ExitCode, nil
}

func (service *Service) runPassthrough(executionContext context.Context, options RunOptions) (int, error) {
	passthroughDetails := execshell.CommandDetails{
		Arguments:              options.PassthroughArguments[1:],
		WorkingDirectory:       options.WorkingDirectory,
		InheritStandardStreams: true,
	}

	executionResult, executionError := service.executor.Execute(executionContext, execshell.CommandName(options.PassthroughArguments[0]), passthroughDetails)
	if executionError != nil {
		return exitCodeForError(executionResult, executionError), executionError
	}

	return executionResult.ExitCode, nil
}

func exitCodeForError(executionResult execshell.ExecutionResult, executionError error) int {
	var commandFailure execshell.CommandFailedError
	if errors.As(executionError, &commandFailure) {
		return commandFailure.Result.ExitCode
	}

	if executionResult.ExitCode != 0 {
		return executionResult.ExitCode
	}

	return 1
}

// DescribeRequiredVariables lists the environment variables the dispatcher validates.
func DescribeRequiredVariables() string {
	return fmt.Sprintf("%s, %s, %s", VersionVariableNameConstant, CMakeBuildTypeVariableNameConstant, InstallScriptFlagVariableNameConstant)
}
