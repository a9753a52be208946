package usecase

import (
	"errors"
	"fmt"
	"strings"

	"github.com/riskibarqy/football-hub/internal/domain/match"
	"github.com/riskibarqy/football-hub/internal/domain/news"
)

const (
	msgRateLimited = "Rate limit reached. Please try again in a minute."
	msgAuthFailure = "API authorization failed. Please check your API token."
)

// Envelope is the uniform result of every gateway operation. Error is set on failure and
// the collection inside Data is then empty rather than nil.
type Envelope[T any] struct {
	Data          T      `json:"data"`
	Error         string `json:"error,omitempty"`
	IsRateLimited bool   `json:"isRateLimited,omitempty"`
	IsAuthError   bool   `json:"isAuthError,omitempty"`
}

// Failed reports whether the envelope carries an error message.
func (e Envelope[T]) Failed() bool {
	return e.Error != ""
}

// Usable reports a clean success: no error and no rate-limit degradation.
func (e Envelope[T]) Usable() bool {
	return e.Error == "" && !e.IsRateLimited
}

type MatchList struct {
	Matches []match.Match `json:"matches"`
}

type ArticleList struct {
	Articles []news.Article `json:"articles"`
}

func matchesOK(items []match.Match) Envelope[MatchList] {
	if items == nil {
		items = []match.Match{}
	}
	return Envelope[MatchList]{Data: MatchList{Matches: items}}
}

// failureEnvelope maps an upstream failure kind to its user-facing message. api names
// the query in messages, e.g. "Live Matches".
func failureEnvelope[T any](empty T, api string, err error) Envelope[T] {
	env := Envelope[T]{Data: empty}
	switch {
	case errors.Is(err, ErrRateLimited):
		env.Error = msgRateLimited
		env.IsRateLimited = true
	case errors.Is(err, ErrUpstreamAuth):
		env.Error = msgAuthFailure
		env.IsAuthError = true
	case errors.Is(err, ErrUpstreamStatus):
		env.Error = fmt.Sprintf("Failed to fetch data from %s API. Status: %d", api, statusCodeOf(err))
	case errors.Is(err, ErrUpstreamDecode):
		env.Error = fmt.Sprintf("Failed to parse %s API response", api)
	case errors.Is(err, ErrInvalidInput):
		env.Error = "Invalid request: " + strings.TrimPrefix(err.Error(), ErrInvalidInput.Error()+": ")
	default:
		env.Error = fmt.Sprintf("Failed to connect to %s API", strings.ToLower(api))
	}
	return env
}

// newsFailure follows the news contract, which only distinguishes status failures.
func newsFailure(err error) Envelope[ArticleList] {
	env := Envelope[ArticleList]{Data: ArticleList{Articles: []news.Article{}}}
	if code := statusCodeOf(err); code != 0 {
		env.Error = fmt.Sprintf("Failed to fetch news. Status: %d", code)
		return env
	}
	env.Error = "Failed to connect to news API"
	return env
}
