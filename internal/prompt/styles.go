package prompt

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

const (
	styleProbeTextConstant = "pmentry"

	doneColorCodeConstant          = "2"
	warningColorCodeConstant       = "3"
	awaitingInputColorCodeConstant = "6"
	errorColorCodeConstant         = "1"
)

// StyleTokenPair wraps formatted text between a prefix and suffix token.
type StyleTokenPair struct {
	Prefix string
	Suffix string
}

// Apply surrounds the supplied text with the pair's tokens.
func (pair StyleTokenPair) Apply(text string) string {
	return pair.Prefix + text + pair.Suffix
}

// StyleConfiguration holds the immutable style tokens resolved at process entry.
type StyleConfiguration struct {
	Base          StyleTokenPair
	Done          StyleTokenPair
	Warning       StyleTokenPair
	AwaitingInput StyleTokenPair
	Error         StyleTokenPair
	Dimmed        StyleTokenPair
}

// CategoryStyle resolves the token pair mapped to the supplied category.
func (configuration StyleConfiguration) CategoryStyle(category MessageCategory) (StyleTokenPair, bool) {
	switch category {
	case MessageCategoryBase:
		return configuration.Base, true
	case MessageCategoryDone:
		return configuration.Done, true
	case MessageCategoryWarning:
		return configuration.Warning, true
	case MessageCategoryAwaitingInput:
		return configuration.AwaitingInput, true
	default:
		return StyleTokenPair{}, false
	}
}

// StyleSettings carries environment and configuration overrides for individual style tokens.
type StyleSettings struct {
	BasePrefix          string `mapstructure:"base_prefix"`
	BaseSuffix          string `mapstructure:"base_suffix"`
	DonePrefix          string `mapstructure:"done_prefix"`
	DoneSuffix          string `mapstructure:"done_suffix"`
	WarningPrefix       string `mapstructure:"warning_prefix"`
	WarningSuffix       string `mapstructure:"warning_suffix"`
	AwaitingInputPrefix string `mapstructure:"awaiting_input_prefix"`
	AwaitingInputSuffix string `mapstructure:"awaiting_input_suffix"`
	ErrorPrefix         string `mapstructure:"error_prefix"`
	ErrorSuffix         string `mapstructure:"error_suffix"`
	DimmedPrefix        string `mapstructure:"dimmed_prefix"`
	DimmedSuffix        string `mapstructure:"dimmed_suffix"`
}

// DefaultStyleSettingValues exposes every style token key beneath the provided
// prefix so environment overrides resolve during configuration unmarshalling.
func DefaultStyleSettingValues(configurationPrefix string) map[string]any {
	settingKeys := []string{
		"base_prefix",
		"base_suffix",
		"done_prefix",
		"done_suffix",
		"warning_prefix",
		"warning_suffix",
		"awaiting_input_prefix",
		"awaiting_input_suffix",
		"error_prefix",
		"error_suffix",
		"dimmed_prefix",
		"dimmed_suffix",
	}

	settingValues := make(map[string]any, len(settingKeys))
	for _, settingKey := range settingKeys {
		settingValues[fmt.Sprintf("%s.%s", configurationPrefix, settingKey)] = ""
	}
	return settingValues
}

// DefaultStyleConfiguration renders the built-in palette into style token pairs.
func DefaultStyleConfiguration() StyleConfiguration {
	styleRenderer := lipgloss.NewRenderer(io.Discard)
	styleRenderer.SetColorProfile(termenv.ANSI)

	return StyleConfiguration{
		Base:          StyleTokenPair{},
		Done:          styleTokenPair(styleRenderer.NewStyle().Foreground(lipgloss.Color(doneColorCodeConstant))),
		Warning:       styleTokenPair(styleRenderer.NewStyle().Foreground(lipgloss.Color(warningColorCodeConstant))),
		AwaitingInput: styleTokenPair(styleRenderer.NewStyle().Foreground(lipgloss.Color(awaitingInputColorCodeConstant))),
		Error:         styleTokenPair(styleRenderer.NewStyle().Bold(true).Foreground(lipgloss.Color(errorColorCodeConstant))),
		Dimmed:        styleTokenPair(styleRenderer.NewStyle().Faint(true)),
	}
}

// BuildStyleConfiguration merges token overrides over the default palette.
func BuildStyleConfiguration(settings StyleSettings) StyleConfiguration {
	configuration := DefaultStyleConfiguration()

	applyPairOverride(&configuration.Base, settings.BasePrefix, settings.BaseSuffix)
	applyPairOverride(&configuration.Done, settings.DonePrefix, settings.DoneSuffix)
	applyPairOverride(&configuration.Warning, settings.WarningPrefix, settings.WarningSuffix)
	applyPairOverride(&configuration.AwaitingInput, settings.AwaitingInputPrefix, settings.AwaitingInputSuffix)
	applyPairOverride(&configuration.Error, settings.ErrorPrefix, settings.ErrorSuffix)
	applyPairOverride(&configuration.Dimmed, settings.DimmedPrefix, settings.DimmedSuffix)

	return configuration
}

func applyPairOverride(pair *StyleTokenPair, prefixOverride string, suffixOverride string) {
	if len(prefixOverride) > 0 {
		pair.Prefix = prefixOverride
	}
	if len(suffixOverride) > 0 {
		pair.Suffix = suffixOverride
	}
}

func styleTokenPair(style lipgloss.Style) StyleTokenPair {
	renderedProbe := style.Render(styleProbeTextConstant)
	probeIndex := strings.Index(renderedProbe, styleProbeTextConstant)
	if probeIndex < 0 {
		return StyleTokenPair{}
	}
	return StyleTokenPair{
		Prefix: renderedProbe[:probeIndex],
		Suffix: renderedProbe[probeIndex+len(styleProbeTextConstant):],
	}
}
