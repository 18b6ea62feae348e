package detector

import "testing"

func TestAggregateStats(t *testing.T) {
	t.Parallel()

	messages := []Message{
		{Sender: "John", Text: "hello everyone"},
		{Sender: "Jane", Text: "we should boycott Acme", BoycottRelated: true},
		{Sender: "John", Text: "I agree", BoycottRelated: true},
		{IsSystem: true, Text: "John added Jane"},
	}

	stats := AggregateStats(messages)

	if len(stats) != 2 {
		t.Fatalf("got %d senders, want 2", len(stats))
	}

	john := stats["John"]
	if john.Messages != 2 || john.BoycottMessages != 1 {
		t.Errorf("John = %+v, want 2 messages and 1 boycott message", john)
	}
	jane := stats["Jane"]
	if jane.Messages != 1 || jane.BoycottMessages != 1 {
		t.Errorf("Jane = %+v, want 1 message and 1 boycott message", jane)
	}

	if john.Chars != len("hello everyone")+len("I agree") {
		t.Errorf("John chars = %d, want %d", john.Chars, len("hello everyone")+len("I agree"))
	}
}

func TestAggregateStatsCleansTextBeforeCounting(t *testing.T) {
	t.Parallel()

	messages := []Message{
		{Sender: "John", Text: "  a   b\n\nc  "},
	}

	stats := AggregateStats(messages)
	if got := stats["John"].Chars; got != len("a b c") {
		t.Errorf("chars = %d, want %d", got, len("a b c"))
	}
}

func TestAggregateStatsNoNormalizationOfSenders(t *testing.T) {
	t.Parallel()

	messages := []Message{
		{Sender: "John", Text: "hi"},
		{Sender: "john", Text: "hi"},
	}

	stats := AggregateStats(messages)
	if len(stats) != 2 {
		t.Errorf("got %d senders, want 2 distinct keys for John and john", len(stats))
	}
}

func TestAggregateStatsEmpty(t *testing.T) {
	t.Parallel()

	stats := AggregateStats(nil)
	if len(stats) != 0 {
		t.Errorf("got %d senders for empty input, want 0", len(stats))
	}
}
