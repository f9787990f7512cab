// Package prompt exposes the styled console prompt helpers as CLI subcommands
// so shell scripts can render messages, rules, banners, and file previews.
package prompt

import (
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/libpointmatcher-build/pmentry/internal/prompt"
	"github.com/libpointmatcher-build/pmentry/internal/utils"
)

const (
	groupUseConstant              = "prompt"
	groupShortDescriptionConstant = "Render styled console output for build scripts"
	groupLongDescriptionConstant  = "prompt renders styled messages, horizontal rules, script banners, and file preview frames using the palette resolved at process entry."

	messageUseConstant         = "msg <text>..."
	messageShortConstant       = "Print a base-category message"
	doneUseConstant            = "done <text>..."
	doneShortConstant          = "Print a done-category message"
	warningUseConstant         = "warning <text>..."
	warningShortConstant       = "Print a warning-category message"
	awaitingInputUseConstant   = "awaiting-input <text>..."
	awaitingInputShortConstant = "Print an awaiting-input-category message"
	errorUseConstant           = "error <text>..."
	errorShortConstant         = "Print an error message to standard error"
	ruleUseConstant            = "rule [symbol]"
	ruleShortConstant          = "Draw a horizontal rule spanning the terminal width"
	startUseConstant           = "start <script-name> [symbol]"
	startShortConstant         = "Print a script start banner"
	endUseConstant             = "end <script-name> [symbol]"
	endShortConstant           = "Print a script completion banner"
	backUseConstant            = "back [symbol]"
	backShortConstant          = "Print a banner returning focus to the calling script"
	previewBeginUseConstant    = "preview-begin <file>"
	previewBeginShortConstant  = "Open a file preview frame"
	previewEndUseConstant      = "preview-end"
	previewEndShortConstant    = "Close a file preview frame"

	messageArgumentSeparatorConstant = " "
)

// CommandConfiguration captures the configurable inputs of the prompt command group.
type CommandConfiguration struct {
	Styles prompt.StyleSettings `mapstructure:"styles"`
}

// CommandBuilder assembles the prompt command group.
type CommandBuilder struct {
	LoggerProvider        func() *zap.Logger
	StyleSettingsProvider func() prompt.StyleSettings
	Printer               *prompt.Printer
}

// Build constructs the prompt command group with its rendering subcommands.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	groupCommand := &cobra.Command{
		Use:   groupUseConstant,
		Short: groupShortDescriptionConstant,
		Long:  groupLongDescriptionConstant,
	}

	groupCommand.AddCommand(
		builder.messageCommand(messageUseConstant, messageShortConstant, prompt.MessageCategoryBase),
		builder.messageCommand(doneUseConstant, doneShortConstant, prompt.MessageCategoryDone),
		builder.messageCommand(warningUseConstant, warningShortConstant, prompt.MessageCategoryWarning),
		builder.messageCommand(awaitingInputUseConstant, awaitingInputShortConstant, prompt.MessageCategoryAwaitingInput),
		builder.errorCommand(),
		builder.ruleCommand(),
		builder.startBannerCommand(),
		builder.endBannerCommand(),
		builder.backBannerCommand(),
		builder.previewBeginCommand(),
		builder.previewEndCommand(),
	)

	return groupCommand, nil
}

func (builder *CommandBuilder) messageCommand(use string, short string, category prompt.MessageCategory) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(command *cobra.Command, arguments []string) error {
			builder.resolvePrinter(command).Message(category, joinArguments(arguments))
			return nil
		},
	}
}

func (builder *CommandBuilder) errorCommand() *cobra.Command {
	return &cobra.Command{
		Use:   errorUseConstant,
		Short: errorShortConstant,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(command *cobra.Command, arguments []string) error {
			builder.resolvePrinter(command).Error(joinArguments(arguments))
			return nil
		},
	}
}

func (builder *CommandBuilder) ruleCommand() *cobra.Command {
	return &cobra.Command{
		Use:   ruleUseConstant,
		Short: ruleShortConstant,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(command *cobra.Command, arguments []string) error {
			builder.resolvePrinter(command).DrawRule(optionalArgument(arguments, 0))
			return nil
		},
	}
}

func (builder *CommandBuilder) startBannerCommand() *cobra.Command {
	return &cobra.Command{
		Use:   startUseConstant,
		Short: startShortConstant,
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(command *cobra.Command, arguments []string) error {
			builder.resolvePrinter(command).StartBanner(arguments[0], optionalArgument(arguments, 1))
			return nil
		},
	}
}

func (builder *CommandBuilder) endBannerCommand() *cobra.Command {
	return &cobra.Command{
		Use:   endUseConstant,
		Short: endShortConstant,
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(command *cobra.Command, arguments []string) error {
			builder.resolvePrinter(command).EndBanner(arguments[0], optionalArgument(arguments, 1))
			return nil
		},
	}
}

func (builder *CommandBuilder) backBannerCommand() *cobra.Command {
	return &cobra.Command{
		Use:   backUseConstant,
		Short: backShortConstant,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(command *cobra.Command, arguments []string) error {
			builder.resolvePrinter(command).BackBanner(optionalArgument(arguments, 0))
			return nil
		},
	}
}

func (builder *CommandBuilder) previewBeginCommand() *cobra.Command {
	return &cobra.Command{
		Use:   previewBeginUseConstant,
		Short: previewBeginShortConstant,
		Args:  cobra.ExactArgs(1),
		RunE: func(command *cobra.Command, arguments []string) error {
			builder.resolvePrinter(command).PreviewBegin(arguments[0])
			return nil
		},
	}
}

func (builder *CommandBuilder) previewEndCommand() *cobra.Command {
	return &cobra.Command{
		Use:   previewEndUseConstant,
		Short: previewEndShortConstant,
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			builder.resolvePrinter(command).PreviewEnd()
			return nil
		},
	}
}

func (builder *CommandBuilder) resolvePrinter(command *cobra.Command) *prompt.Printer {
	if builder.Printer != nil {
		return builder.Printer
	}

	styleSettings := prompt.StyleSettings{}
	if builder.StyleSettingsProvider != nil {
		styleSettings = builder.StyleSettingsProvider()
	}

	styles := prompt.BuildStyleConfiguration(styleSettings)
	printerOptions := prompt.PrinterOptions{
		OutputWriter: utils.NewFlushingWriter(command.OutOrStdout()),
		ErrorWriter:  utils.NewFlushingWriter(command.ErrOrStderr()),
		Styles:       &styles,
	}

	return prompt.NewPrinter(printerOptions)
}

func joinArguments(arguments []string) string {
	return strings.Join(arguments, messageArgumentSeparatorConstant)
}

func optionalArgument(arguments []string, argumentIndex int) string {
	if argumentIndex < len(arguments) {
		return arguments[argumentIndex]
	}
	return ""
}
