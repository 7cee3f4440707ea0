package transcript

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
	"time"
)

// Message is a single parsed WhatsApp message.
type Message struct {
	Timestamp time.Time
	Speaker   string
	Body      string
}

// headerRe matches the start of a new message in a WhatsApp export:
// "12/25/21, 12:51 PM - Username: Message". The speaker field cannot
// contain a colon.
var headerRe = regexp.MustCompile(`^(\d{1,2}/\d{1,2}/\d{2,4}),\s+(\d{1,2}:\d{2})\s+([AP]M)\s+-\s+([^:]+):\s+(.*)$`)

// timestampLayout is the fixed export timestamp format: month-first,
// two-digit year, 12-hour clock.
const timestampLayout = "1/2/06, 3:04 PM"

// ParseLine parses one raw line as a message header. It reports false for
// lines that do not start a new message, including header-shaped lines
// whose date/time does not parse (four-digit years, invalid calendar
// dates). Those fall through as continuation text.
func ParseLine(line string) (Message, bool) {
	m := headerRe.FindStringSubmatch(line)
	if m == nil {
		return Message{}, false
	}

	ts, err := time.Parse(timestampLayout, m[1]+", "+m[2]+" "+m[3])
	if err != nil {
		return Message{}, false
	}

	return Message{
		Timestamp: ts,
		Speaker:   strings.TrimSpace(m[4]),
		Body:      strings.TrimSpace(m[5]),
	}, true
}

// ParseFile reads a WhatsApp export file and returns its messages.
func ParseFile(path string) ([]Message, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open transcript: %w", err)
	}
	defer f.Close()

	msgs, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse transcript: %w", err)
	}
	return msgs, nil
}

// Parse reads an export line by line and assembles messages, merging
// continuation lines into the message that precedes them.
func Parse(r io.Reader) ([]Message, error) {
	var msgs []Message
	var current *Message

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024) // 1MB line buffer

	for scanner.Scan() {
		current = consumeLine(scanner.Text(), current, &msgs)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan transcript: %w", err)
	}

	if current != nil {
		msgs = append(msgs, *current)
	}
	return msgs, nil
}

// ParseLines parses export content already split into lines (for testing).
func ParseLines(lines []string) []Message {
	var msgs []Message
	var current *Message

	for _, line := range lines {
		current = consumeLine(line, current, &msgs)
	}

	if current != nil {
		msgs = append(msgs, *current)
	}
	return msgs
}

// consumeLine folds one raw line into the accumulator. A header line
// flushes the open message and starts a new one; a non-blank non-header
// line extends the open message with a single separating space. Lines
// before the first header have no message to extend and are dropped.
func consumeLine(line string, current *Message, msgs *[]Message) *Message {
	if msg, ok := ParseLine(line); ok {
		if current != nil {
			*msgs = append(*msgs, *current)
		}
		return &msg
	}

	if current != nil {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			current.Body += " " + trimmed
		}
	}
	return current
}

// CountSpeakers returns the number of distinct speakers in the messages.
func CountSpeakers(msgs []Message) int {
	seen := make(map[string]bool, 2)
	for _, m := range msgs {
		seen[m.Speaker] = true
	}
	return len(seen)
}
