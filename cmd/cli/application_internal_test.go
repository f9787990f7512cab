package cli

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/libpointmatcher-build/pmentry/internal/entrypoint"
	"github.com/libpointmatcher-build/pmentry/internal/utils"
)

const (
	runCommandNameConstant    = "run"
	promptCommandNameConstant = "prompt"
)

func TestNewApplicationRegistersSubcommands(testInstance *testing.T) {
	application := NewApplication()

	registeredCommandNames := map[string]bool{}
	for _, registeredCommand := range application.rootCommand.Commands() {
		registeredCommandNames[registeredCommand.Name()] = true
	}

	require.True(testInstance, registeredCommandNames[runCommandNameConstant])
	require.True(testInstance, registeredCommandNames[promptCommandNameConstant])
}

func TestInitializeConfigurationAppliesEmbeddedDefaults(testInstance *testing.T) {
	application := NewApplication()

	initializationError := application.initializeConfiguration(application.rootCommand)

	require.NoError(testInstance, initializationError)
	require.Equal(testInstance, entrypoint.DefaultEnvironmentFileNameConstant, application.configuration.Tools.Run.EnvironmentFile)
	require.Equal(testInstance, "lpm_install_libpointmatcher_ubuntu.bash", application.configuration.Tools.Run.InstallerCommand)
	require.True(testInstance, application.humanReadableLoggingEnabled())

	workingDirectory, workingDirectoryAvailable := application.commandContextAccessor.OriginalWorkingDirectory(application.rootCommand.Context())
	require.True(testInstance, workingDirectoryAvailable)
	require.NotEmpty(testInstance, workingDirectory)
}

func TestInitializeConfigurationReadsStyleOverridesFromEnvironment(testInstance *testing.T) {
	testInstance.Setenv("PMENTRY_TOOLS_PROMPT_STYLES_DONE_PREFIX", "[ok] ")

	application := NewApplication()

	initializationError := application.initializeConfiguration(application.rootCommand)

	require.NoError(testInstance, initializationError)
	require.Equal(testInstance, "[ok] ", application.promptStyleSettings().DonePrefix)
}

func TestInitializeConfigurationHonorsLogFormatFlag(testInstance *testing.T) {
	application := NewApplication()

	flagError := application.rootCommand.PersistentFlags().Set(logFormatFlagNameConstant, string(utils.LogFormatStructured))
	require.NoError(testInstance, flagError)

	initializationError := application.initializeConfiguration(application.rootCommand)

	require.NoError(testInstance, initializationError)
	require.False(testInstance, application.humanReadableLoggingEnabled())
}

func TestExitCode(testInstance *testing.T) {
	testCases := []struct {
		name             string
		executionError   error
		expectedExitCode int
	}{
		{
			name:             "nil_error",
			executionError:   nil,
			expectedExitCode: 0,
		},
		{
			name:             "generic_error",
			executionError:   fmt.Errorf("dispatch unavailable"),
			expectedExitCode: 1,
		},
		{
			name:             "dispatch_error",
			executionError:   entrypoint.DispatchError{ExitCode: 7, Cause: fmt.Errorf("command failed")},
			expectedExitCode: 7,
		},
		{
			name:             "wrapped_dispatch_error",
			executionError:   fmt.Errorf("run failed: %w", entrypoint.DispatchError{ExitCode: 3, Cause: fmt.Errorf("command failed")}),
			expectedExitCode: 3,
		},
	}

	for testCaseIndex, testCase := range testCases {
		testInstance.Run(fmt.Sprintf("%d_%s", testCaseIndex, testCase.name), func(subtestInstance *testing.T) {
			require.Equal(subtestInstance, testCase.expectedExitCode, ExitCode(testCase.executionError))
		})
	}
}
