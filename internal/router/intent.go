// Package router classifies free-text messages into intents and detects
// persona-switch requests.
package router

import (
	"regexp"
	"strings"
)

// Intent is the routed purpose of a message.
type Intent string

const (
	IntentQuote  Intent = "quote"
	IntentNews   Intent = "news"
	IntentAdvice Intent = "advice"
)

var quoteKeywords = []string{
	"price", "quote", "stock price", "current price", "trading at",
	"what is", "how much", "cost", "value", "worth", "ohlc",
	"open", "close", "high", "low", "volume",
}

var newsKeywords = []string{
	"news", "headlines", "articles", "stories", "reports",
	"latest", "recent", "updates", "announcements", "sentiment",
}

var adviceKeywords = []string{
	"should i buy", "should i sell", "invest", "investment",
	"advice", "recommend", "opinion", "analysis", "outlook",
	"buy", "sell", "hold", "portfolio", "strategy",
}

var dateSignalPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\d{4}-\d{2}-\d{2}`),
	regexp.MustCompile(`\d{2}/\d{2}/\d{4}`),
	regexp.MustCompile(`on \w+`),
	regexp.MustCompile(`yesterday`),
	regexp.MustCompile(`last week`),
	regexp.MustCompile(`last month`),
}

// Classify scores the three keyword sets by substring presence and applies the
// decision order:
//  1. a date signal plus any quote keyword means a historical price lookup
//  2. news wins only when it strictly beats both other scores
//  3. quote beats advice
//  4. advice is the fallback for ties and generic investment questions
func Classify(text string) Intent {
	lower := strings.ToLower(text)

	quoteScore := countHits(lower, quoteKeywords)
	newsScore := countHits(lower, newsKeywords)
	adviceScore := countHits(lower, adviceKeywords)

	if hasDateSignal(lower) && quoteScore > 0 {
		return IntentQuote
	}
	if newsScore > quoteScore && newsScore > adviceScore {
		return IntentNews
	}
	if quoteScore > adviceScore {
		return IntentQuote
	}
	return IntentAdvice
}

func countHits(lower string, keywords []string) int {
	n := 0
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			n++
		}
	}
	return n
}

func hasDateSignal(lower string) bool {
	for _, p := range dateSignalPatterns {
		if p.MatchString(lower) {
			return true
		}
	}
	return false
}
