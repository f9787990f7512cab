package utils

import "context"

const (
	configurationFilePathContextKeyConstant    = commandContextKey("configurationFilePath")
	originalWorkingDirectoryContextKeyConstant = commandContextKey("originalWorkingDirectory")
)

type commandContextKey string

// CommandContextAccessor manages values stored in command execution contexts.
type CommandContextAccessor struct{}

// NewCommandContextAccessor constructs a CommandContextAccessor instance.
func NewCommandContextAccessor() CommandContextAccessor {
	return CommandContextAccessor{}
}

// WithConfigurationFilePath attaches the configuration file path to the provided context.
func (accessor CommandContextAccessor) WithConfigurationFilePath(parentContext context.Context, configurationFilePath string) context.Context {
	if parentContext == nil {
		parentContext = context.Background()
	}
	return context.WithValue(parentContext, configurationFilePathContextKeyConstant, configurationFilePath)
}

// ConfigurationFilePath extracts the configuration file path from the provided context.
func (accessor CommandContextAccessor) ConfigurationFilePath(executionContext context.Context) (string, bool) {
	if executionContext == nil {
		return "", false
	}
	configurationFilePath, configurationFilePathAvailable := executionContext.Value(configurationFilePathContextKeyConstant).(string)
	if !configurationFilePathAvailable {
		return "", false
	}
	return configurationFilePath, true
}

// WithOriginalWorkingDirectory attaches the working directory captured at process entry to the provided context.
func (accessor CommandContextAccessor) WithOriginalWorkingDirectory(parentContext context.Context, workingDirectory string) context.Context {
	if parentContext == nil {
		parentContext = context.Background()
	}
	return context.WithValue(parentContext, originalWorkingDirectoryContextKeyConstant, workingDirectory)
}

// OriginalWorkingDirectory extracts the working directory captured at process entry from the provided context.
func (accessor CommandContextAccessor) OriginalWorkingDirectory(executionContext context.Context) (string, bool) {
	if executionContext == nil {
		return "", false
	}
	workingDirectory, workingDirectoryAvailable := executionContext.Value(originalWorkingDirectoryContextKeyConstant).(string)
	if !workingDirectoryAvailable {
		return "", false
	}
	return workingDirectory, true
}
