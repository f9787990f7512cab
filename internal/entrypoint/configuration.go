package entrypoint

import (
	"fmt"
	"os"
	"strings"

	"github.com/libpointmatcher-build/pmentry/internal/execshell"
	"github.com/libpointmatcher-build/pmentry/internal/utils"
)

const (
	// VersionVariableNameConstant names the environment variable selecting the libpointmatcher release.
	VersionVariableNameConstant = "LIBPOINTMATCHER_VERSION"
	// CMakeBuildTypeVariableNameConstant names the environment variable selecting the CMake build type.
	CMakeBuildTypeVariableNameConstant = "LIBPOINTMATCHER_CMAKE_BUILD_TYPE"
	// InstallScriptFlagVariableNameConstant names the environment variable carrying the verbatim installer flag.
	InstallScriptFlagVariableNameConstant = "LIBPOINTMATCHER_INSTALL_SCRIPT_FLAG"

	// DefaultEnvironmentFileNameConstant is the environment file consulted when no override is provided.
	DefaultEnvironmentFileNameConstant = ".env.libpointmatcher"

	environmentConfigurationTypeConstant      = "env"
	environmentFileLoadErrorTemplateConstant  = "failed to load environment file %s: %w"
	versionConfigurationKeyConstant           = "libpointmatcher_version"
	cmakeBuildTypeConfigurationKeyConstant    = "libpointmatcher_cmake_build_type"
	installScriptFlagConfigurationKeyConstant = "libpointmatcher_install_script_flag"
	environmentFileKeyConstant                = "environment_file"
	installerCommandKeyConstant               = "installer_command"
	configurationKeyTemplateConstant          = "%s.%s"
)

// CommandConfiguration captures the configurable inputs of the run command.
type CommandConfiguration struct {
	EnvironmentFile  string `mapstructure:"environment_file"`
	InstallerCommand string `mapstructure:"installer_command"`
}

// DefaultConfigurationValues exposes run command defaults keyed beneath the provided prefix.
func DefaultConfigurationValues(configurationPrefix string) map[string]any {
	return map[string]any{
		fmt.Sprintf(configurationKeyTemplateConstant, configurationPrefix, environmentFileKeyConstant):  DefaultEnvironmentFileNameConstant,
		fmt.Sprintf(configurationKeyTemplateConstant, configurationPrefix, installerCommandKeyConstant): string(execshell.CommandInstaller),
	}
}

// InstallerVariables holds the resolved values required before the installer may run.
type InstallerVariables struct {
	Version           string `mapstructure:"libpointmatcher_version"`
	CMakeBuildType    string `mapstructure:"libpointmatcher_cmake_build_type"`
	InstallScriptFlag string `mapstructure:"libpointmatcher_install_script_flag"`
}

// VariableNotSetError reports a required environment variable that resolved to an empty value.
type VariableNotSetError struct {
	VariableName string
}

// Error describes the missing variable.
func (variableError VariableNotSetError) Error() string {
	return fmt.Sprintf("required environment variable %s is not set", variableError.VariableName)
}

// EnvironmentFileLoader resolves installer variables from an environment file with process overrides.
type EnvironmentFileLoader struct {
	configurationLoader *utils.ConfigurationLoader
	fileExistenceCheck  func(string) (os.FileInfo, error)
}

// NewEnvironmentFileLoader builds a loader backed by the shared configuration loader.
func NewEnvironmentFileLoader() *EnvironmentFileLoader {
	return &EnvironmentFileLoader{
		configurationLoader: utils.NewConfigurationLoader("", environmentConfigurationTypeConstant, "", nil),
		fileExistenceCheck:  os.Stat,
	}
}

// Load reads the environment file when present and merges process environment overrides.
// Process environment variables take precedence over file-provided values.
func (loader *EnvironmentFileLoader) Load(environmentFilePath string) (InstallerVariables, error) {
	resolvedFilePath := environmentFilePath
	if len(resolvedFilePath) > 0 {
		_, statError := loader.fileExistenceCheck(resolvedFilePath)
		if statError != nil {
			resolvedFilePath = ""
		}
	}

	defaultValues := map[string]any{
		versionConfigurationKeyConstant:           "",
		cmakeBuildTypeConfigurationKeyConstant:    "",
		installScriptFlagConfigurationKeyConstant: "",
	}

	installerVariables := InstallerVariables{}
	_, loadError := loader.configurationLoader.LoadConfiguration(resolvedFilePath, defaultValues, &installerVariables)
	if loadError != nil {
		return InstallerVariables{}, fmt.Errorf(environmentFileLoadErrorTemplateConstant, environmentFilePath, loadError)
	}

	return installerVariables, nil
}

// ValidateInstallerVariables confirms every required variable carries a non-empty value.
// The first missing variable is reported by name so operators can correct their environment.
func ValidateInstallerVariables(installerVariables InstallerVariables) error {
	requiredVariables := []struct {
		variableName  string
		variableValue string
	}{
		{variableName: VersionVariableNameConstant, variableValue: installerVariables.Version},
		{variableName: CMakeBuildTypeVariableNameConstant, variableValue: installerVariables.CMakeBuildType},
		{variableName: InstallScriptFlagVariableNameConstant, variableValue: installerVariables.InstallScriptFlag},
	}

	for _, requiredVariable := range requiredVariables {
		if len(strings.TrimSpace(requiredVariable.variableValue)) == 0 {
			return VariableNotSetError{VariableName: requiredVariable.variableName}
		}
	}

	return nil
}
