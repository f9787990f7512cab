// Package entry exposes the container entrypoint dispatch sequence as the run command.
package entry

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/libpointmatcher-build/pmentry/internal/entrypoint"
	"github.com/libpointmatcher-build/pmentry/internal/execshell"
	"github.com/libpointmatcher-build/pmentry/internal/prompt"
	"github.com/libpointmatcher-build/pmentry/internal/ui"
	"github.com/libpointmatcher-build/pmentry/internal/utils"
	flagutils "github.com/libpointmatcher-build/pmentry/internal/utils/flags"
)

const (
	commandUseConstant                     = "run [flags] [-- command...]"
	commandShortDescriptionConstant        = "Install libpointmatcher and hand off to the container command"
	commandLongDescriptionTemplateConstant = "run validates the required libpointmatcher environment variables (%s), invokes the installer with flags derived from them, and then executes the remaining arguments as the container command."
	envFileFlagNameConstant                = "env-file"
	envFileFlagUsageConstant               = "Path to the environment file consulted before process variables."
	skipInstallFlagNameConstant            = "skip-install"
	skipInstallFlagUsageConstant           = "Skip the installer invocation while still validating required variables."
)

// LoggerProvider supplies the logger shared with the command at execution time.
type LoggerProvider func() *zap.Logger

// CommandBuilder assembles the run command.
type CommandBuilder struct {
	LoggerProvider               LoggerProvider
	HumanReadableLoggingProvider func() bool
	ConfigurationProvider        func() entrypoint.CommandConfiguration
	StyleSettingsProvider        func() prompt.StyleSettings
	Executor                     entrypoint.CommandExecutor
	EnvironmentLoader            entrypoint.EnvironmentLoader
	Printer                      *prompt.Printer
}

// Build constructs the run command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	skipInstall := false

	command := &cobra.Command{
		Use:   commandUseConstant,
		Short: commandShortDescriptionConstant,
		Long:  fmt.Sprintf(commandLongDescriptionTemplateConstant, entrypoint.DescribeRequiredVariables()),
		RunE: func(command *cobra.Command, arguments []string) error {
			return builder.run(command, arguments, &skipInstall)
		},
	}

	command.Flags().String(envFileFlagNameConstant, "", envFileFlagUsageConstant)
	flagutils.AddToggleFlag(command.Flags(), &skipInstall, skipInstallFlagNameConstant, "", false, skipInstallFlagUsageConstant)

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string, skipInstall *bool) error {
	commandConfiguration := builder.resolveConfiguration()

	environmentFilePath := commandConfiguration.EnvironmentFile
	if command.Flags().Changed(envFileFlagNameConstant) {
		flagValue, _ := command.Flags().GetString(envFileFlagNameConstant)
		environmentFilePath = strings.TrimSpace(flagValue)
	}

	workingDirectory := ""
	contextAccessor := utils.NewCommandContextAccessor()
	if contextWorkingDirectory, workingDirectoryAvailable := contextAccessor.OriginalWorkingDirectory(command.Context()); workingDirectoryAvailable {
		workingDirectory = contextWorkingDirectory
	}

	executor, executorError := builder.resolveExecutor()
	if executorError != nil {
		return executorError
	}

	printer := builder.resolvePrinter()

	service, serviceError := entrypoint.NewService(executor, printer, builder.EnvironmentLoader)
	if serviceError != nil {
		return serviceError
	}

	runOptions := entrypoint.RunOptions{
		EnvironmentFilePath:  environmentFilePath,
		InstallerCommand:     commandConfiguration.InstallerCommand,
		SkipInstall:          *skipInstall,
		PassthroughArguments: arguments,
		WorkingDirectory:     workingDirectory,
	}

	exitCode, runError := service.Run(command.Context(), runOptions)
	if runError != nil {
		return entrypoint.DispatchError{ExitCode: exitCode, Cause: runError}
	}

	return nil
}

func (builder *CommandBuilder) resolveConfiguration() entrypoint.CommandConfiguration {
	if builder.ConfigurationProvider == nil {
		return entrypoint.CommandConfiguration{
			EnvironmentFile:  entrypoint.DefaultEnvironmentFileNameConstant,
			InstallerCommand: string(execshell.CommandInstaller),
		}
	}

	return builder.ConfigurationProvider()
}

func (builder *CommandBuilder) resolveExecutor() (entrypoint.CommandExecutor, error) {
	if builder.Executor != nil {
		return builder.Executor, nil
	}

	logger := builder.resolveLogger()

	var observers []execshell.CommandEventObserver
	if builder.HumanReadableLoggingProvider != nil && builder.HumanReadableLoggingProvider() {
		observers = append(observers, ui.NewConsoleCommandEventLogger(logger))
	}

	return execshell.NewShellExecutor(logger, execshell.NewOSCommandRunner(), observers...)
}

func (builder *CommandBuilder) resolvePrinter() *prompt.Printer {
	if builder.Printer != nil {
		return builder.Printer
	}

	styleSettings := prompt.StyleSettings{}
	if builder.StyleSettingsProvider != nil {
		styleSettings = builder.StyleSettingsProvider()
	}

	styles := prompt.BuildStyleConfiguration(styleSettings)
	return prompt.NewPrinter(prompt.PrinterOptions{Styles: &styles})
}

func (builder *CommandBuilder) resolveLogger() *zap.Logger {
	if builder.LoggerProvider == nil {
		return zap.NewNop()
	}

	logger := builder.LoggerProvider()
	if logger == nil {
		return zap.NewNop()
	}

	return logger
}
