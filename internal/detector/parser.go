package detector

import (
	"regexp"
	"strings"
	"time"
)

// Header patterns for the two common chat export shapes. The trailing
// capture holds everything after the timestamp separator; the sender/body
// split happens afterwards on the first ": " so that colons inside message
// bodies are never misattributed. Both patterns are RE2 and therefore run in
// linear time on any input.
var (
	// Android-style: "1/1/25, 12:34 - John Doe: Hello there"
	androidHeaderRegex = regexp.MustCompile(
		`^(\d{1,2}/\d{1,2}/\d{2,4}),\s+(\d{1,2}:\d{2}(?::\d{2})?(?:[\s\x{a0}\x{202f}]?[AaPp][Mm])?)\s+-\s+(.*)$`)

	// iOS-style: "[01/01/2025, 12:34:56] John Doe: Hello there"
	iosHeaderRegex = regexp.MustCompile(
		`^\[(\d{1,2}/\d{1,2}/\d{2,4}),\s+(\d{1,2}:\d{2}(?::\d{2})?(?:[\s\x{a0}\x{202f}]?[AaPp][Mm])?)\]\s+(.*)$`)
)

// Directional and BOM marks that chat exports prepend to lines, especially
// with RTL scripts.
const directionalMarks = "\ufeff\u200e\u200f"

// Timestamp layouts tried in order, day-first as in the export format.
var timestampLayouts = []string{
	"2/1/2006 15:04:05",
	"2/1/2006 15:04",
	"2/1/06 15:04:05",
	"2/1/06 15:04",
	"2/1/2006 3:04:05 PM",
	"2/1/2006 3:04 PM",
	"2/1/06 3:04:05 PM",
	"2/1/06 3:04 PM",
}

// ParseTranscript turns a raw chat export into an ordered message sequence.
// Each physical line either starts a new message (when it matches a header
// pattern), is folded into the text of the most recent message, or is
// discarded when it precedes the first valid header. Every line is trimmed
// of surrounding whitespace before folding, so leading indentation inside
// multi-line messages is deliberately not preserved; the line itself still
// counts toward its message. Parsing never fails: malformed input degrades
// to continuation or discard.
func ParseTranscript(raw string) []Message {
	lines := splitLines(raw)
	messages := make([]Message, 0, len(lines))

	for _, rawLine := range lines {
		line := strings.TrimSpace(strings.TrimLeft(rawLine, directionalMarks))

		match := iosHeaderRegex.FindStringSubmatch(line)
		if match == nil {
			match = androidHeaderRegex.FindStringSubmatch(line)
		}

		if match == nil {
			// Continuation of the previous message, or noise before
			// the first header.
			if len(messages) > 0 {
				messages[len(messages)-1].Text += "\n" + line
			}
			continue
		}

		msg := Message{Timestamp: parseTimestamp(match[1], match[2])}

		rest := match[3]
		if idx := strings.Index(rest, ": "); idx >= 0 {
			msg.Sender = rest[:idx]
			msg.Text = rest[idx+2:]
		} else {
			// Header without a "sender: " segment is a system notice
			// (membership change, settings change, etc.).
			msg.IsSystem = true
			msg.Text = rest
		}
		messages = append(messages, msg)
	}

	return messages
}

func splitLines(raw string) []string {
	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	raw = strings.ReplaceAll(raw, "\r", "\n")
	return strings.Split(raw, "\n")
}

// parseTimestamp converts the captured date and time fragments into a
// time.Time. Returns nil when no known layout matches; the message is still
// kept.
func parseTimestamp(date, clock string) *time.Time {
	clock = strings.Map(func(r rune) rune {
		if r == '\u202f' || r == '\u00a0' {
			return ' '
		}
		return r
	}, clock)
	clock = strings.ToUpper(clock)
	if n := len(clock); n > 2 && (strings.HasSuffix(clock, "AM") || strings.HasSuffix(clock, "PM")) && clock[n-3] != ' ' {
		clock = clock[:n-2] + " " + clock[n-2:]
	}

	raw := date + " " + clock
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, raw); err == nil {
			return &ts
		}
	}
	return nil
}
