// Package report builds the diagnostic narratives attached to each case
// and delivers them, with the final result, to one or more sinks.
package report

import "fmt"

// ContentType is the MIME type of every diagnostic body.
const ContentType = "text/plain"

// Attachment labels.
const (
	LabelFail     = "FAIL Reason"
	LabelPass     = "PASS Reason"
	LabelGraceful = "Handled Gracefully"
	LabelUI       = "UI Verification"
)

// empty stands in for text that is absent.
const empty = "[EMPTY]"

// Attachment is a labelled diagnostic body attached to a case result.
type Attachment struct {
	Label       string `json:"label"`
	Body        string `json:"body"`
	ContentType string `json:"content_type"`
}

func attachment(label, body string) Attachment {
	return Attachment{Label: label, Body: body, ContentType: ContentType}
}

// EmptyOutput describes a translation that never produced output.
func EmptyOutput(input, expected string) Attachment {
	return attachment(LabelFail, fmt.Sprintf(`Failure Type: Empty Output
Reason: Translator did not produce any Sinhala output.

Input: %s
Expected: %s
Actual: %s`, input, expected, empty))
}

// Mismatch describes output that differs from the expected translation.
func Mismatch(input, expected, actual string) Attachment {
	return attachment(LabelFail, fmt.Sprintf(`Failure Type: Output Mismatch
Reason: Translator output does not match expected Sinhala translation.

Input: %s
Expected: %s
Actual: %s`, input, expected, actual))
}

// Pass describes an exact match.
func Pass() Attachment {
	return attachment(LabelPass, `Result: PASS
Reason: Translator output matches expected Sinhala translation.`)
}

// InvalidInput describes a known weakness in handling malformed input.
func InvalidInput(input, output string) Attachment {
	return attachment(LabelFail, fmt.Sprintf(`Failure Type: Invalid Input Processing Failure
Reason: The system fails to correctly process invalid or malformed Singlish input.

Input: %s
Output: %s
Expected Behavior: System should either provide meaningful output or show appropriate error message.
Actual Behavior: System produced incorrect/meaningless output or failed to handle input gracefully.`, orEmpty(input), orEmpty(output)))
}

// HandledGracefully describes malformed input that did not break the page.
func HandledGracefully(input, output string) Attachment {
	return attachment(LabelGraceful, fmt.Sprintf(`Negative Test Case
Reason: System handled invalid input without crashing.

Input: %s
Output: %s`, orEmpty(input), orEmpty(output)))
}

// UIVerified describes live output that appeared while typing.
func UIVerified(input, expected string) Attachment {
	return attachment(LabelUI, fmt.Sprintf("Result: PASS\nReason: Real-time Sinhala output \"%s\" appeared while typing \"%s\".", expected, input))
}

func orEmpty(s string) string {
	if s == "" {
		return empty
	}
	return s
}
