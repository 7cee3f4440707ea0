package dialogue

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestRender(t *testing.T) {
	convs := []Conversation{
		{
			{Role: RoleUser, Text: "hi"},
			{Role: RoleChar, Text: "hey"},
		},
		{
			{Role: RoleUser, Text: "back again"},
			{Role: RoleUser, Text: "you there?"},
			{Role: RoleChar, Text: "yes"},
		},
	}

	want := `{
  "example_conversation": [
    {
      "{{random_user_1}}": "hi",
      "{{char}}": "hey"
    },
    {
      "{{random_user_1}}": "back again",
      "{{random_user_1}}": "you there?",
      "{{char}}": "yes"
    }
  ]
}`

	if got := Render(convs); got != want {
		t.Errorf("Render mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderEmpty(t *testing.T) {
	want := "{\n  \"example_conversation\": [\n  ]\n}"
	if got := Render(nil); got != want {
		t.Errorf("Render(nil) = %q, want %q", got, want)
	}
}

func TestRenderEscaping(t *testing.T) {
	convs := []Conversation{{
		{Role: RoleUser, Text: `she said "hi" \o/`},
		{Role: RoleChar, Text: "<sends an attachment>"},
	}}

	doc := Render(convs)

	if !strings.Contains(doc, `"she said \"hi\" \\o/"`) {
		t.Errorf("quotes/backslashes not escaped: %s", doc)
	}
	// HTML escaping is off: angle brackets stay literal.
	if strings.Contains(doc, `\u003c`) {
		t.Errorf("angle brackets were HTML-escaped: %s", doc)
	}
	if !strings.Contains(doc, `"<sends an attachment>"`) {
		t.Errorf("replacement text not literal: %s", doc)
	}
}

func TestRenderNonASCIIPassthrough(t *testing.T) {
	convs := []Conversation{{
		{Role: RoleUser, Text: "café ☕"},
		{Role: RoleChar, Text: "görüşürüz"},
	}}

	doc := Render(convs)
	if !strings.Contains(doc, "café ☕") || !strings.Contains(doc, "görüşürüz") {
		t.Errorf("non-ASCII text was escaped: %s", doc)
	}
}

func TestRenderDeterministic(t *testing.T) {
	convs := []Conversation{{
		{Role: RoleUser, Text: "a"},
		{Role: RoleChar, Text: "b"},
	}}

	first := Render(convs)
	for i := 0; i < 10; i++ {
		if got := Render(convs); got != first {
			t.Fatal("Render is not deterministic")
		}
	}
}

// Parsing the document back with a token-level reader must reproduce the
// turn sequence exactly, duplicate keys included.
func TestRenderRoundTrip(t *testing.T) {
	convs := []Conversation{
		{
			{Role: RoleUser, Text: "one"},
			{Role: RoleUser, Text: "two"},
			{Role: RoleChar, Text: "three"},
		},
		{
			{Role: RoleChar, Text: "four"},
			{Role: RoleUser, Text: "five"},
		},
	}

	doc := Render(convs)
	if !json.Valid([]byte(doc)) {
		t.Fatalf("output is not valid JSON:\n%s", doc)
	}

	got := decodeConversations(t, doc)
	if len(got) != len(convs) {
		t.Fatalf("decoded %d conversations, want %d", len(got), len(convs))
	}
	for i := range convs {
		if len(got[i]) != len(convs[i]) {
			t.Fatalf("conversation %d: decoded %d turns, want %d", i, len(got[i]), len(convs[i]))
		}
		for j := range convs[i] {
			if got[i][j] != convs[i][j] {
				t.Errorf("conversation %d turn %d = %+v, want %+v", i, j, got[i][j], convs[i][j])
			}
		}
	}
}

// decodeConversations walks the document with json.Decoder tokens, which
// preserve duplicate keys in file order (unlike unmarshaling into a map).
func decodeConversations(t *testing.T, doc string) []Conversation {
	t.Helper()

	dec := json.NewDecoder(strings.NewReader(doc))
	expectDelim(t, dec, '{')

	key, err := dec.Token()
	if err != nil || key != "example_conversation" {
		t.Fatalf("top-level key = %v (err %v), want example_conversation", key, err)
	}

	expectDelim(t, dec, '[')
	var convs []Conversation
	for dec.More() {
		expectDelim(t, dec, '{')
		var conv Conversation
		for dec.More() {
			k, err := dec.Token()
			if err != nil {
				t.Fatalf("read key: %v", err)
			}
			v, err := dec.Token()
			if err != nil {
				t.Fatalf("read value: %v", err)
			}
			conv = append(conv, Turn{Role: Role(k.(string)), Text: v.(string)})
		}
		expectDelim(t, dec, '}')
		convs = append(convs, conv)
	}
	expectDelim(t, dec, ']')
	expectDelim(t, dec, '}')

	return convs
}

func expectDelim(t *testing.T, dec *json.Decoder, want rune) {
	t.Helper()
	tok, err := dec.Token()
	if err != nil {
		t.Fatalf("read token: %v", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != json.Delim(want) {
		t.Fatalf("token = %v, want %c", tok, want)
	}
}
