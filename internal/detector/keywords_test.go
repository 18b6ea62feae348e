package detector

import "testing"

func TestClassifierMatch(t *testing.T) {
	t.Parallel()

	classifier := NewClassifier([]string{"boycott", "חרם", "stop talking to"})

	testCases := []struct {
		name string
		text string
		want bool
	}{
		{name: "exact keyword", text: "we should boycott them", want: true},
		{name: "case insensitive", text: "BOYCOTT Acme now", want: true},
		{name: "substring match inside word", text: "boycotting works too", want: true},
		{name: "hebrew keyword", text: "יש חרם על דני", want: true},
		{name: "multi word phrase", text: "please stop talking to him", want: true},
		{name: "no keyword", text: "lovely weather today", want: false},
		{name: "empty text", text: "", want: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := classifier.Match(tc.text); got != tc.want {
				t.Errorf("Match(%q) = %v, want %v", tc.text, got, tc.want)
			}
		})
	}
}

func TestClassifierIgnoresBlankEntries(t *testing.T) {
	t.Parallel()

	// A blank vocabulary line must not flag every message.
	classifier := NewClassifier([]string{"", "  ", "boycott"})

	if classifier.Match("an ordinary message") {
		t.Error("blank keyword entry flagged an ordinary message")
	}
	if !classifier.Match("boycott!") {
		t.Error("real keyword no longer matches")
	}
}
