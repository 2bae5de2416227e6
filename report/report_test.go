package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTemplates(t *testing.T) {
	tcs := []struct {
		name  string
		got   Attachment
		label string
		body  string
	}{
		{
			name:  "empty output",
			got:   EmptyOutput("mata kiri bonna onnea", "මට කිරි බොන්න ඕනෑ"),
			label: "FAIL Reason",
			body: "Failure Type: Empty Output\n" +
				"Reason: Translator did not produce any Sinhala output.\n\n" +
				"Input: mata kiri bonna onnea\n" +
				"Expected: මට කිරි බොන්න ඕනෑ\n" +
				"Actual: [EMPTY]",
		},
		{
			name:  "mismatch",
			got:   Mismatch("mama eliyata enawa", "මම එලියට එනවා", "මම එළියට එනවා"),
			label: "FAIL Reason",
			body: "Failure Type: Output Mismatch\n" +
				"Reason: Translator output does not match expected Sinhala translation.\n\n" +
				"Input: mama eliyata enawa\n" +
				"Expected: මම එලියට එනවා\n" +
				"Actual: මම එළියට එනවා",
		},
		{
			name:  "pass",
			got:   Pass(),
			label: "PASS Reason",
			body:  "Result: PASS\nReason: Translator output matches expected Sinhala translation.",
		},
		{
			name:  "invalid input",
			got:   InvalidInput("####@@@@****", ""),
			label: "FAIL Reason",
			body: "Failure Type: Invalid Input Processing Failure\n" +
				"Reason: The system fails to correctly process invalid or malformed Singlish input.\n\n" +
				"Input: ####@@@@****\n" +
				"Output: [EMPTY]\n" +
				"Expected Behavior: System should either provide meaningful output or show appropriate error message.\n" +
				"Actual Behavior: System produced incorrect/meaningless output or failed to handle input gracefully.",
		},
		{
			name:  "handled gracefully",
			got:   HandledGracefully("", "x"),
			label: "Handled Gracefully",
			body: "Negative Test Case\n" +
				"Reason: System handled invalid input without crashing.\n\n" +
				"Input: [EMPTY]\n" +
				"Output: x",
		},
		{
			name:  "whitespace input is not empty",
			got:   HandledGracefully("   ", ""),
			label: "Handled Gracefully",
			body: "Negative Test Case\n" +
				"Reason: System handled invalid input without crashing.\n\n" +
				"Input:    \n" +
				"Output: [EMPTY]",
		},
		{
			name:  "ui",
			got:   UIVerified("subha rathriyak", "සුභ රාත්‍රියක්"),
			label: "UI Verification",
			body:  "Result: PASS\nReason: Real-time Sinhala output \"සුභ රාත්‍රියක්\" appeared while typing \"subha rathriyak\".",
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.label, tc.got.Label)
			assert.Equal(t, tc.body, tc.got.Body)
			assert.Equal(t, "text/plain", tc.got.ContentType)
		})
	}
}
