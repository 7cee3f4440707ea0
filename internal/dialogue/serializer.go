package dialogue

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Render serializes conversations into the example_conversation document.
// Each conversation becomes one JSON object whose keys are role tokens in
// turn order; the same key repeats for consecutive turns by the same role,
// which is why the object body is assembled by hand instead of marshaling a
// (key-unique, unordered) map. Output is byte-for-byte deterministic so the
// capacity selector can measure candidates by re-rendering.
func Render(convs []Conversation) string {
	lines := []string{"{", `  "example_conversation": [`}

	for i, conv := range convs {
		lines = append(lines, "    {")

		for j, turn := range conv {
			line := "      " + encodeString(string(turn.Role)) + ": " + encodeString(turn.Text)
			if j < len(conv)-1 {
				line += ","
			}
			lines = append(lines, line)
		}

		if i < len(convs)-1 {
			lines = append(lines, "    },")
		} else {
			lines = append(lines, "    }")
		}
	}

	lines = append(lines, "  ]", "}")
	return strings.Join(lines, "\n")
}

// encodeString renders s as a JSON string literal with standard escaping.
// HTML escaping is off so "<sends an attachment>" and non-ASCII text pass
// through literally.
func encodeString(s string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	// Encoding a plain string cannot fail.
	enc.Encode(s)
	return strings.TrimSuffix(buf.String(), "\n")
}
