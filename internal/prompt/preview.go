package prompt

import "fmt"

const (
	previewRuleSymbolConstant     = "."
	previewHeaderTemplateConstant = "File preview: %s <<< EOF"
	previewClosingMarkerConstant  = "EOF >>>"
)

// PreviewBegin opens a dimmed frame announcing a file preview.
//
// The caller streams the file contents between PreviewBegin and PreviewEnd.
func (printer *Printer) PreviewBegin(filePath string) {
	printer.blankLine()
	fmt.Fprint(printer.outputWriter, printer.styles.Dimmed.Prefix)
	printer.DrawRule(previewRuleSymbolConstant)
	fmt.Fprintf(printer.outputWriter, messageLineTemplateConstant, fmt.Sprintf(previewHeaderTemplateConstant, filePath))
}

// PreviewEnd closes the dimmed preview frame opened by PreviewBegin.
func (printer *Printer) PreviewEnd() {
	fmt.Fprintf(printer.outputWriter, messageLineTemplateConstant, previewClosingMarkerConstant)
	printer.DrawRule(previewRuleSymbolConstant)
	fmt.Fprint(printer.outputWriter, printer.styles.Dimmed.Suffix)
	printer.blankLine()
}
