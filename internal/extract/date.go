package extract

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"AdvisorBot/internal/model"
)

var dateIndicators = map[string]bool{"on": true, "for": true, "at": true, "during": true}

var numericDatePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\d{4}-\d{2}-\d{2}`), // YYYY-MM-DD
	regexp.MustCompile(`\d{2}/\d{2}/\d{4}`), // MM/DD/YYYY
	regexp.MustCompile(`\d{2}-\d{2}-\d{4}`), // MM-DD-YYYY
}

var (
	fromToPattern   = regexp.MustCompile(`from\s+(.+?)\s+to\s+(\S+)`)
	fromOnlyPattern = regexp.MustCompile(`from\s+(\S+)`)
	lastNPattern    = regexp.MustCompile(`last\s+(\d+)\s+(day|week|month)s?`)
)

// Date extracts a single calendar date from free text. The words after an
// indicator token ("on", "for", "at", "during") are tried first as a natural
// language date, then explicit numeric patterns anywhere in the text.
func Date(text string) (time.Time, bool) {
	words := strings.Fields(strings.ToLower(text))

	for i, w := range words {
		if !dateIndicators[w] || i+1 >= len(words) {
			continue
		}
		// Up to three following tokens, longest candidate first.
		for n := 3; n >= 1; n-- {
			end := i + 1 + n
			if end > len(words) {
				continue
			}
			candidate := strings.Trim(strings.Join(words[i+1:end], " "), ".,!?")
			if t, err := dateparse.ParseAny(candidate); err == nil {
				return model.DateOnly(t), true
			}
		}
	}

	for _, p := range numericDatePatterns {
		if m := p.FindString(text); m != "" {
			if t, err := dateparse.ParseAny(m); err == nil {
				return model.DateOnly(t), true
			}
		}
	}

	return time.Time{}, false
}

// Range extracts a date range from free text. The default is the last 30 days.
// "from A to B" and "from A" refine it; a "last N day|week|month" phrase is
// checked last and overwrites any earlier match in the same text. A parse
// failure inside a branch leaves the range exactly as the prior rule set it.
func Range(text string) model.DateRange {
	lower := strings.ToLower(text)
	today := model.DateOnly(time.Now())

	r := model.DateRange{Start: today.AddDate(0, 0, -30), End: today}

	if m := fromToPattern.FindStringSubmatch(lower); m != nil {
		start, err1 := dateparse.ParseAny(strings.TrimSpace(m[1]))
		end, err2 := dateparse.ParseAny(strings.Trim(m[2], ".,!?"))
		if err1 == nil && err2 == nil {
			r = model.DateRange{Start: model.DateOnly(start), End: model.DateOnly(end)}
		}
	} else if m := fromOnlyPattern.FindStringSubmatch(lower); m != nil {
		if start, err := dateparse.ParseAny(strings.Trim(m[1], ".,!?")); err == nil {
			s := model.DateOnly(start)
			end := s.AddDate(0, 0, 30)
			if end.After(today) {
				end = today
			}
			r = model.DateRange{Start: s, End: end}
		}
	}

	if m := lastNPattern.FindStringSubmatch(lower); m != nil {
		n, err := strconv.Atoi(m[1])
		if err == nil {
			days := n
			switch m[2] {
			case "week":
				days = n * 7
			case "month":
				days = n * 30
			}
			r = model.DateRange{Start: today.AddDate(0, 0, -days), End: today}
		}
	}

	return r
}
