package detector

import (
	"strings"
	"testing"
)

func TestParseTranscriptHeaders(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name       string
		input      string
		wantCount  int
		wantSender string
		wantText   string
	}{
		{
			name:       "android header",
			input:      "01/01/25, 12:00 - John: hello everyone",
			wantCount:  1,
			wantSender: "John",
			wantText:   "hello everyone",
		},
		{
			name:       "android header with four digit year",
			input:      "01/01/2025, 12:00 - John: hi",
			wantCount:  1,
			wantSender: "John",
			wantText:   "hi",
		},
		{
			name:       "ios bracket header with seconds",
			input:      "[01/01/2025, 12:34:56] John Doe: Hello there",
			wantCount:  1,
			wantSender: "John Doe",
			wantText:   "Hello there",
		},
		{
			name:       "twelve hour clock",
			input:      "1/1/25, 1:05 PM - Jane: afternoon",
			wantCount:  1,
			wantSender: "Jane",
			wantText:   "afternoon",
		},
		{
			name:       "narrow no-break space before AM",
			input:      "1/1/25, 9:05\u202fAM - Jane: morning",
			wantCount:  1,
			wantSender: "Jane",
			wantText:   "morning",
		},
		{
			name:       "colon inside body attributes to correct sender",
			input:      "01/01/25, 12:00 - John: note: buy milk",
			wantCount:  1,
			wantSender: "John",
			wantText:   "note: buy milk",
		},
		{
			name:       "RTL marks stripped before header match",
			input:      "‏01/01/25, 12:00 - דנה: שלום",
			wantCount:  1,
			wantSender: "דנה",
			wantText:   "שלום",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			msgs := ParseTranscript(tc.input)
			if len(msgs) != tc.wantCount {
				t.Fatalf("got %d messages, want %d", len(msgs), tc.wantCount)
			}
			if msgs[0].Sender != tc.wantSender {
				t.Errorf("sender = %q, want %q", msgs[0].Sender, tc.wantSender)
			}
			if msgs[0].Text != tc.wantText {
				t.Errorf("text = %q, want %q", msgs[0].Text, tc.wantText)
			}
			if msgs[0].IsSystem {
				t.Error("message unexpectedly marked as system")
			}
		})
	}
}

func TestParseTranscriptContinuation(t *testing.T) {
	t.Parallel()

	input := "01/01/25, 12:00 - John: first line\nsecond line\nthird line\n01/01/25, 12:01 - Jane: ok"
	msgs := ParseTranscript(input)

	if len(msgs) != 2 {
		t.Fatalf("got %d messages, want 2", len(msgs))
	}
	want := "first line\nsecond line\nthird line"
	if msgs[0].Text != want {
		t.Errorf("folded text = %q, want %q", msgs[0].Text, want)
	}
	if msgs[1].Text != "ok" {
		t.Errorf("second message text = %q, want %q", msgs[1].Text, "ok")
	}
}

func TestParseTranscriptSystemNotice(t *testing.T) {
	t.Parallel()

	input := "01/01/25, 12:00 - John added Jane\n01/01/25, 12:01 - John: welcome"
	msgs := ParseTranscript(input)

	if len(msgs) != 2 {
		t.Fatalf("got %d messages, want 2", len(msgs))
	}
	if !msgs[0].IsSystem {
		t.Error("membership notice not marked as system")
	}
	if msgs[0].Sender != "" {
		t.Errorf("system notice sender = %q, want empty", msgs[0].Sender)
	}
	if msgs[1].IsSystem {
		t.Error("regular message marked as system")
	}
}

func TestParseTranscriptLeadingNoiseDiscarded(t *testing.T) {
	t.Parallel()

	input := "export header noise\nmore noise\n01/01/25, 12:00 - John: hello"
	msgs := ParseTranscript(input)

	if len(msgs) != 1 {
		t.Fatalf("got %d messages, want 1", len(msgs))
	}
	if msgs[0].Text != "hello" {
		t.Errorf("text = %q, want %q", msgs[0].Text, "hello")
	}
}

func TestParseTranscriptLineAccounting(t *testing.T) {
	t.Parallel()

	// Every non-header line must survive inside some message text.
	input := "01/01/25, 12:00 - John: alpha\nbeta\ngamma\n01/01/25, 12:01 - Jane: delta\nepsilon"
	msgs := ParseTranscript(input)

	var all strings.Builder
	for _, m := range msgs {
		all.WriteString(m.Text)
		all.WriteString("\n")
	}
	for _, fragment := range []string{"alpha", "beta", "gamma", "delta", "epsilon"} {
		if !strings.Contains(all.String(), fragment) {
			t.Errorf("fragment %q lost during parsing", fragment)
		}
	}
}

func TestParseTranscriptNeverFails(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		input string
	}{
		{name: "empty input", input: ""},
		{name: "only whitespace", input: "  \n\t\n  "},
		{name: "garbage bytes", input: "\x00\x01 not a transcript ::: - ,"},
		{name: "windows line endings", input: "01/01/25, 12:00 - John: hi\r\n01/01/25, 12:01 - Jane: yo\r\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// Must not panic; malformed lines degrade to discard.
			msgs := ParseTranscript(tc.input)
			for _, m := range msgs {
				if m.IsSystem && m.Sender != "" {
					t.Errorf("system message carries sender %q", m.Sender)
				}
			}
		})
	}
}

func TestParseTranscriptTimestamps(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		input    string
		wantNil  bool
		wantHour int
	}{
		{
			name:     "24h clock",
			input:    "02/03/25, 14:30 - John: hi",
			wantHour: 14,
		},
		{
			name:     "12h clock PM",
			input:    "02/03/25, 2:30 PM - John: hi",
			wantHour: 14,
		},
		{
			name:    "nonsense date keeps message with nil timestamp",
			input:   "99/99/99, 99:99 - John: hi",
			wantNil: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			msgs := ParseTranscript(tc.input)
			if len(msgs) != 1 {
				t.Fatalf("got %d messages, want 1", len(msgs))
			}
			ts := msgs[0].Timestamp
			if tc.wantNil {
				if ts != nil {
					t.Errorf("timestamp = %v, want nil", ts)
				}
				return
			}
			if ts == nil {
				t.Fatal("timestamp is nil, want parsed value")
			}
			if ts.Hour() != tc.wantHour {
				t.Errorf("hour = %d, want %d", ts.Hour(), tc.wantHour)
			}
		})
	}
}
