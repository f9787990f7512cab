package prompt

import "fmt"

const (
	startBannerMessageTemplateConstant = "Starting %s"
	endBannerMessageTemplateConstant   = "Completed %s"
	backBannerMessageTemplateConstant  = "Back to %s"

	// upstreamScriptNameConstant names the build-matrix crawler that dispatches
	// entrypoint runs; the back banner always references it.
	upstreamScriptNameConstant = "lpm_crawl_libpointmatcher_build_matrix.bash"
)

// StartBanner marks the beginning of a named script: rule, starting line, blank line.
func (printer *Printer) StartBanner(scriptName string, ruleSymbol string) {
	printer.DrawRule(ruleSymbol)
	printer.Print(fmt.Sprintf(startBannerMessageTemplateConstant, scriptName))
	printer.blankLine()
}

// EndBanner marks the completion of a named script: blank line, completion line, rule.
func (printer *Printer) EndBanner(scriptName string, ruleSymbol string) {
	printer.blankLine()
	printer.Print(fmt.Sprintf(endBannerMessageTemplateConstant, scriptName))
	printer.DrawRule(ruleSymbol)
}

// BackBanner hands control back to the upstream build-matrix script: blank line, reference line, rule.
func (printer *Printer) BackBanner(ruleSymbol string) {
	printer.blankLine()
	printer.Print(fmt.Sprintf(backBannerMessageTemplateConstant, upstreamScriptNameConstant))
	printer.DrawRule(ruleSymbol)
}
