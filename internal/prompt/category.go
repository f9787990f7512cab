package prompt

import (
	"fmt"
	"strings"
)

const (
	messageCategoryBaseNameConstant           = "base"
	messageCategoryDoneNameConstant           = "done"
	messageCategoryWarningNameConstant        = "warning"
	messageCategoryAwaitingInputNameConstant  = "awaiting-input"
	unknownCategoryLabelTemplateConstant      = "MessageCategory(%d)"
	unrecognizedCategoryErrorTemplateConstant = "unrecognized message category %q"
)

// MessageCategory classifies console messages and selects their styling.
type MessageCategory int

// The closed set of recognized message categories.
const (
	MessageCategoryBase MessageCategory = iota
	MessageCategoryDone
	MessageCategoryWarning
	MessageCategoryAwaitingInput
)

var messageCategoryNames = map[MessageCategory]string{
	MessageCategoryBase:          messageCategoryBaseNameConstant,
	MessageCategoryDone:          messageCategoryDoneNameConstant,
	MessageCategoryWarning:       messageCategoryWarningNameConstant,
	MessageCategoryAwaitingInput: messageCategoryAwaitingInputNameConstant,
}

// String renders the canonical category name, or a positional label for unmapped values.
func (category MessageCategory) String() string {
	categoryName, categoryKnown := messageCategoryNames[category]
	if !categoryKnown {
		return fmt.Sprintf(unknownCategoryLabelTemplateConstant, int(category))
	}
	return categoryName
}

// ParseMessageCategory resolves a category name arriving from the CLI surface.
func ParseMessageCategory(rawValue string) (MessageCategory, error) {
	normalized := strings.ToLower(strings.TrimSpace(rawValue))
	for category, categoryName := range messageCategoryNames {
		if categoryName == normalized {
			return category, nil
		}
	}
	return MessageCategoryBase, fmt.Errorf(unrecognizedCategoryErrorTemplateConstant, rawValue)
}
