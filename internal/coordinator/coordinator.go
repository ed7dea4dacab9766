// Package coordinator routes incoming chat messages to the quote, news, and
// advice handlers and holds per-session persona state.
package coordinator

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"AdvisorBot/internal/advisor"
	"AdvisorBot/internal/calculator"
	"AdvisorBot/internal/extract"
	"AdvisorBot/internal/model"
	"AdvisorBot/internal/recorder"
	"AdvisorBot/internal/router"
	"AdvisorBot/internal/source"
)

const apology = "I apologize, but I encountered an issue processing your request. Please try again."

// Session handles messages for one connected client. Persona state is
// per-session; everything else is shared. Not safe for concurrent use, each
// connection gets its own Session and reads messages serially.
type Session struct {
	Quotes    *source.QuoteService
	News      *source.NewsService
	Generator advisor.Generator
	Recorder  recorder.Recorder

	persona string
}

func NewSession(quotes *source.QuoteService, news *source.NewsService, gen advisor.Generator, rec recorder.Recorder, defaultPersona string) *Session {
	if rec == nil {
		rec = recorder.NewNoopRecorder()
	}
	if _, ok := advisor.Personas[defaultPersona]; !ok {
		defaultPersona = "Warren Buffett"
	}
	return &Session{
		Quotes:    quotes,
		News:      news,
		Generator: gen,
		Recorder:  rec,
		persona:   defaultPersona,
	}
}

// Persona returns the session's active persona name.
func (s *Session) Persona() string { return s.persona }

// Route handles one message and always produces a Reply. Failures become
// user-facing text; nothing escapes as an error or a panic.
func (s *Session) Route(ctx context.Context, message string) (reply *model.Reply) {
	start := time.Now()
	evt := &recorder.Event{Persona: s.persona, Outcome: "ok"}

	defer func() {
		if r := recover(); r != nil {
			log.Printf("[ERROR] panic while handling message: %v", r)
			evt.Outcome = "panic"
			reply = &model.Reply{Message: apology, Personality: s.persona}
		}
		evt.Duration = time.Since(start)
		if err := s.Recorder.RecordInteraction(evt); err != nil {
			log.Printf("[WARN] record interaction: %v", err)
		}
	}()

	if requested, ok := router.ParseSwitch(message); ok {
		evt.Intent = "persona_switch"
		return s.switchPersona(requested, evt)
	}

	intent := router.Classify(message)
	evt.Intent = string(intent)

	switch intent {
	case router.IntentQuote:
		return s.handleQuote(ctx, message, evt)
	case router.IntentNews:
		return s.handleNews(ctx, message, evt)
	default:
		return s.handleAdvice(ctx, message, evt)
	}
}

func (s *Session) switchPersona(requested string, evt *recorder.Event) *model.Reply {
	resolved, ok := router.ResolvePersona(requested, advisor.Names)
	if !ok {
		evt.Outcome = "unknown_persona"
		log.Printf("[WARN] persona switch failed: %q: %v", requested, model.ErrUnrecognizedPersona)
		return &model.Reply{
			Message: fmt.Sprintf("I don't recognize that personality. Available personalities: %s.",
				strings.Join(advisor.Names, ", ")),
			Personality: s.persona,
		}
	}
	s.persona = resolved
	evt.Persona = resolved
	log.Printf("[INFO] persona switched to %s", resolved)
	return &model.Reply{
		Message:     fmt.Sprintf("Switched to %s personality! Ask me for trading advice.", resolved),
		Personality: resolved,
	}
}

func (s *Session) handleQuote(ctx context.Context, message string, evt *recorder.Event) *model.Reply {
	symbol := extract.Ticker(message)
	if symbol == "" {
		evt.Outcome = "no_symbol"
		return s.noSymbolReply()
	}
	evt.Symbol = symbol

	var (
		answer *source.QuoteAnswer
		err    error
	)
	if date, ok := extract.Date(message); ok {
		answer, err = s.Quotes.On(ctx, symbol, date)
	} else {
		answer, err = s.Quotes.Current(ctx, symbol)
	}
	if err != nil {
		evt.Outcome = "source_error"
		log.Printf("[ERROR] quote lookup for %s: %v", symbol, err)
		return &model.Reply{
			Message:     fmt.Sprintf("Sorry, I couldn't retrieve price data for %s right now. Please try again later.", symbol),
			Personality: s.persona,
		}
	}
	evt.CacheHit = answer.FromCache

	return &model.Reply{
		Message:     answer.Text,
		Personality: s.persona,
		Data:        map[string]string{"stock_data": answer.Text},
	}
}

func (s *Session) handleNews(ctx context.Context, message string, evt *recorder.Event) *model.Reply {
	symbol := extract.Ticker(message)
	if symbol == "" {
		evt.Outcome = "no_symbol"
		return s.noSymbolReply()
	}
	evt.Symbol = symbol

	r := extract.Range(message)
	digest, err := s.News.InRange(ctx, symbol, r)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrNoDataInRange):
			evt.Outcome = "no_data"
			return &model.Reply{
				Message: fmt.Sprintf("I couldn't find any %s news between %s and %s.",
					symbol, r.Start.Format("2006-01-02"), r.End.Format("2006-01-02")),
				Personality: s.persona,
			}
		default:
			evt.Outcome = "source_error"
			log.Printf("[ERROR] news lookup for %s: %v", symbol, err)
			return &model.Reply{
				Message:     fmt.Sprintf("Sorry, I couldn't retrieve news for %s right now. Please try again later.", symbol),
				Personality: s.persona,
			}
		}
	}

	return &model.Reply{
		Message:     digest,
		Personality: s.persona,
		Data:        map[string]string{"news_data": digest},
	}
}

// handleAdvice enriches the question with whatever price and news context is
// available, then asks the generator. Context gathering is best effort, a
// failed lookup just means a thinner prompt.
func (s *Session) handleAdvice(ctx context.Context, message string, evt *recorder.Event) *model.Reply {
	prompt := message

	if symbol := extract.Ticker(message); symbol != "" {
		evt.Symbol = symbol

		if answer, err := s.Quotes.Current(ctx, symbol); err == nil && answer.Record != nil {
			section := answer.Text
			if history, herr := s.Quotes.Store.Quotes(symbol); herr == nil {
				if snap := calculator.Snapshot(symbol, history); snap != "" {
					section += "\n" + snap
				}
			}
			prompt += "\n\nRelevant stock data:\n" + section
			evt.CacheHit = answer.FromCache
		} else if err != nil {
			log.Printf("[WARN] advice context: quote for %s: %v", symbol, err)
		}

		if digest, err := s.News.InRange(ctx, symbol, extract.Range(message)); err == nil {
			prompt += "\n\nRelevant news:\n" + truncate(digest, 500)
		} else if !errors.Is(err, model.ErrNoDataInRange) {
			log.Printf("[WARN] advice context: news for %s: %v", symbol, err)
		}
	}

	text, err := s.Generator.Generate(ctx, advisor.Prompt(s.persona), prompt)
	if err != nil {
		evt.Outcome = "generator_error"
		log.Printf("[ERROR] advice generation failed: %v", err)
		return &model.Reply{Message: apology, Personality: s.persona}
	}

	return &model.Reply{Message: text, Personality: s.persona}
}

func (s *Session) noSymbolReply() *model.Reply {
	log.Printf("[WARN] %v", model.ErrEntityNotFound)
	return &model.Reply{
		Message:     "I couldn't identify a stock symbol in your message. Please mention a company name or ticker symbol, like AAPL or Tesla.",
		Personality: s.persona,
	}
}

// truncate limits s to n characters, cutting on a rune boundary so the
// generator prompt never receives broken UTF-8.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
