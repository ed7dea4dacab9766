package router

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		text string
		want Intent
	}{
		// A date signal plus a quote keyword forces quote even when other
		// keywords score.
		{"AAPL price on 2025-01-01", IntentQuote},
		{"what was the TSLA close yesterday", IntentQuote},

		// News wins only on a strict majority; "last week" is a date signal
		// but there's no quote keyword override here because news outscores.
		{"AAPL news last week", IntentNews},
		{"latest headlines for tesla", IntentNews},

		// Plain quote requests.
		{"MSFT stock price", IntentQuote},
		{"how much is nvidia trading at", IntentQuote},

		// Advice fallback for generic and ambiguous questions.
		{"should i buy tesla?", IntentAdvice},
		{"tell me about your investment philosophy", IntentAdvice},
		{"hello there", IntentAdvice},
	}
	for _, tt := range tests {
		if got := Classify(tt.text); got != tt.want {
			t.Errorf("Classify(%q) = %s, want %s", tt.text, got, tt.want)
		}
	}
}

func TestClassify_NewsBeatsQuoteOnScore(t *testing.T) {
	// Both quote and news keywords present; news must strictly outscore.
	if got := Classify("recent news and sentiment updates for AAPL"); got != IntentNews {
		t.Errorf("got %s, want news", got)
	}
}

func TestParseSwitch(t *testing.T) {
	tests := []struct {
		text     string
		wantName string
		wantOK   bool
	}{
		{"change personality to Peter Lynch", "peter lynch", true},
		{"switch to Lynch", "lynch", true},
		{"become cathie wood", "cathie wood", true},
		{"act like Michael Burry", "michael burry", true},
		{"be graham", "graham", true},
		{"what is the AAPL price", "", false},
	}
	for _, tt := range tests {
		name, ok := ParseSwitch(tt.text)
		if ok != tt.wantOK || name != tt.wantName {
			t.Errorf("ParseSwitch(%q) = (%q, %v), want (%q, %v)",
				tt.text, name, ok, tt.wantName, tt.wantOK)
		}
	}
}

func TestResolvePersona(t *testing.T) {
	known := []string{"Warren Buffett", "Peter Lynch", "Benjamin Graham"}

	if got, ok := ResolvePersona("lynch", known); !ok || got != "Peter Lynch" {
		t.Errorf("lynch -> (%q, %v), want Peter Lynch", got, ok)
	}
	if got, ok := ResolvePersona("warren buffett", known); !ok || got != "Warren Buffett" {
		t.Errorf("warren buffett -> (%q, %v)", got, ok)
	}
	if _, ok := ResolvePersona("Zorro", known); ok {
		t.Error("unknown persona must not resolve")
	}
	if _, ok := ResolvePersona("", known); ok {
		t.Error("empty request must not resolve")
	}
}
