package prompt_test

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/libpointmatcher-build/pmentry/internal/prompt"
)

const (
	testMessageTextConstant          = "build environment ready"
	testColumnsVariableNameConstant  = "COLUMNS"
	testTerminalTypeVariableConstant = "TERM"
	testRuleWidthTenConstant         = "10"
	testInvalidCategoryValueConstant = prompt.MessageCategory(97)
	testFatalErrorMessageConstant    = "installer prerequisites missing"
	testSubtestNameTemplateConstant  = "%d_%s"
)

func testStyleConfiguration() prompt.StyleConfiguration {
	return prompt.StyleConfiguration{
		Base:          prompt.StyleTokenPair{Prefix: "<base>", Suffix: "</base>"},
		Done:          prompt.StyleTokenPair{Prefix: "<done>", Suffix: "</done>"},
		Warning:       prompt.StyleTokenPair{Prefix: "<warn>", Suffix: "</warn>"},
		AwaitingInput: prompt.StyleTokenPair{Prefix: "<await>", Suffix: "</await>"},
		Error:         prompt.StyleTokenPair{Prefix: "<error>", Suffix: "</error>"},
		Dimmed:        prompt.StyleTokenPair{Prefix: "<dim>", Suffix: "</dim>"},
	}
}

func newRecordingPrinter(styles prompt.StyleConfiguration, exitCodes *[]int) (*prompt.Printer, *bytes.Buffer, *bytes.Buffer) {
	outputBuffer := &bytes.Buffer{}
	errorBuffer := &bytes.Buffer{}
	printer := prompt.NewPrinter(prompt.PrinterOptions{
		OutputWriter: outputBuffer,
		ErrorWriter:  errorBuffer,
		Styles:       &styles,
		ExitFunction: func(exitCode int) {
			*exitCodes = append(*exitCodes, exitCode)
		},
	})
	return printer, outputBuffer, errorBuffer
}

func TestPrinterMessageAppliesCategoryStyles(testInstance *testing.T) {
	testCases := []struct {
		name           string
		emit           func(printer *prompt.Printer)
		expectedOutput string
	}{
		{
			name:           "base_category",
			emit:           func(printer *prompt.Printer) { printer.Print(testMessageTextConstant) },
			expectedOutput: "<base>build environment ready</base>\n",
		},
		{
			name:           "done_category",
			emit:           func(printer *prompt.Printer) { printer.PrintDone(testMessageTextConstant) },
			expectedOutput: "<done>build environment ready</done>\n",
		},
		{
			name:           "warning_category",
			emit:           func(printer *prompt.Printer) { printer.PrintWarning(testMessageTextConstant) },
			expectedOutput: "<warn>build environment ready</warn>\n",
		},
		{
			name:           "awaiting_input_category",
			emit:           func(printer *prompt.Printer) { printer.PrintAwaitingInput(testMessageTextConstant) },
			expectedOutput: "<await>build environment ready</await>\n",
		},
	}

	for testCaseIndex, testCase := range testCases {
		testInstance.Run(fmt.Sprintf(testSubtestNameTemplateConstant, testCaseIndex, testCase.name), func(testInstance *testing.T) {
			recordedExitCodes := []int{}
			printer, outputBuffer, errorBuffer := newRecordingPrinter(testStyleConfiguration(), &recordedExitCodes)

			testCase.emit(printer)

			require.Equal(testInstance, testCase.expectedOutput, outputBuffer.String())
			require.Contains(testInstance, outputBuffer.String(), testMessageTextConstant)
			require.Empty(testInstance, errorBuffer.String())
			require.Empty(testInstance, recordedExitCodes)
		})
	}
}

func TestPrinterMessageRejectsUnmappedCategory(testInstance *testing.T) {
	recordedExitCodes := []int{}
	printer, outputBuffer, errorBuffer := newRecordingPrinter(testStyleConfiguration(), &recordedExitCodes)

	printer.Message(testInvalidCategoryValueConstant, testMessageTextConstant)

	require.Equal(testInstance, []int{1}, recordedExitCodes)
	require.Empty(testInstance, outputBuffer.String())
	require.Contains(testInstance, errorBuffer.String(), testInvalidCategoryValueConstant.String())
	require.NotContains(testInstance, errorBuffer.String(), "<base>")
}

func TestPrinterErrorWritesStyledLineToErrorWriter(testInstance *testing.T) {
	recordedExitCodes := []int{}
	printer, outputBuffer, errorBuffer := newRecordingPrinter(testStyleConfiguration(), &recordedExitCodes)

	printer.Error(testFatalErrorMessageConstant)

	require.Empty(testInstance, outputBuffer.String())
	require.Equal(testInstance, "<error>ERROR: installer prerequisites missing</error>\n", errorBuffer.String())
	require.Empty(testInstance, recordedExitCodes)
}

func TestPrinterFatalErrorRestoresWorkingDirectoryBeforeExit(testInstance *testing.T) {
	originalWorkingDirectory := testInstance.TempDir()
	transientWorkingDirectory := testInstance.TempDir()
	previousWorkingDirectory, previousWorkingDirectoryError := os.Getwd()
	require.NoError(testInstance, previousWorkingDirectoryError)
	require.NoError(testInstance, os.Chdir(transientWorkingDirectory))
	testInstance.Cleanup(func() {
		_ = os.Chdir(previousWorkingDirectory)
	})

	recordedExitCodes := []int{}
	printer, _, errorBuffer := newRecordingPrinter(testStyleConfiguration(), &recordedExitCodes)

	printer.FatalError(originalWorkingDirectory, testFatalErrorMessageConstant)

	require.Equal(testInstance, []int{1}, recordedExitCodes)
	require.Contains(testInstance, errorBuffer.String(), testFatalErrorMessageConstant)

	currentWorkingDirectory, workingDirectoryError := os.Getwd()
	require.NoError(testInstance, workingDirectoryError)

	resolvedExpected, resolveExpectedError := filepath.EvalSymlinks(originalWorkingDirectory)
	require.NoError(testInstance, resolveExpectedError)
	resolvedCurrent, resolveCurrentError := filepath.EvalSymlinks(currentWorkingDirectory)
	require.NoError(testInstance, resolveCurrentError)
	require.Equal(testInstance, resolvedExpected, resolvedCurrent)
}

func TestPrinterDrawRuleSpansResolvedWidth(testInstance *testing.T) {
	testCases := []struct {
		name          string
		columnsValue  string
		ruleSymbol    string
		expectedWidth int
	}{
		{name: "width_ten", columnsValue: testRuleWidthTenConstant, ruleSymbol: "=", expectedWidth: 10},
		{name: "width_eighty", columnsValue: "80", ruleSymbol: "", expectedWidth: 80},
		{name: "width_two_hundred", columnsValue: "200", ruleSymbol: ".", expectedWidth: 200},
	}

	for testCaseIndex, testCase := range testCases {
		testInstance.Run(fmt.Sprintf(testSubtestNameTemplateConstant, testCaseIndex, testCase.name), func(testInstance *testing.T) {
			testInstance.Setenv(testColumnsVariableNameConstant, testCase.columnsValue)

			recordedExitCodes := []int{}
			printer, outputBuffer, _ := newRecordingPrinter(testStyleConfiguration(), &recordedExitCodes)

			printer.DrawRule(testCase.ruleSymbol)

			renderedRule := strings.TrimSuffix(outputBuffer.String(), "\n")
			require.Len(testInstance, renderedRule, testCase.expectedWidth)

			expectedSymbol := testCase.ruleSymbol
			if len(expectedSymbol) == 0 {
				expectedSymbol = "="
			}
			require.Equal(testInstance, strings.Repeat(expectedSymbol, testCase.expectedWidth), renderedRule)
		})
	}
}
