package competition

import (
	"strconv"
	"strings"

	"github.com/riskibarqy/football-hub/internal/domain/match"
)

// Season is the season block shared by standings and scorers payloads.
type Season struct {
	ID              int64       `json:"id"`
	StartDate       string      `json:"startDate"`
	EndDate         string      `json:"endDate"`
	CurrentMatchday *int        `json:"currentMatchday,omitempty"`
	Winner          *match.Team `json:"winner,omitempty"`
}

// StandingsTable mirrors GET /competitions/{code}/standings. It is passed through, not reshaped.
type StandingsTable struct {
	Filters     map[string]any    `json:"filters,omitempty"`
	Area        match.Area        `json:"area"`
	Competition match.Competition `json:"competition"`
	Season      Season            `json:"season"`
	Standings   []StandingGroup   `json:"standings"`
}

// StandingGroup is one table: TOTAL/HOME/AWAY for leagues, one per group for cups.
type StandingGroup struct {
	Stage string        `json:"stage"`
	Type  string        `json:"type"`
	Group string        `json:"group,omitempty"`
	Table []StandingRow `json:"table"`
}

type StandingRow struct {
	Position       int        `json:"position"`
	Team           match.Team `json:"team"`
	PlayedGames    int        `json:"playedGames"`
	Form           *string    `json:"form"`
	Won            int        `json:"won"`
	Draw           int        `json:"draw"`
	Lost           int        `json:"lost"`
	Points         int        `json:"points"`
	GoalsFor       int        `json:"goalsFor"`
	GoalsAgainst   int        `json:"goalsAgainst"`
	GoalDifference int        `json:"goalDifference"`
}

// ScorersTable mirrors GET /competitions/{code}/scorers.
type ScorersTable struct {
	Count       int               `json:"count"`
	Filters     map[string]any    `json:"filters,omitempty"`
	Competition match.Competition `json:"competition"`
	Season      Season            `json:"season"`
	Scorers     []Scorer          `json:"scorers"`
}

type Scorer struct {
	Player        Player     `json:"player"`
	Team          match.Team `json:"team"`
	PlayedMatches int        `json:"playedMatches"`
	Goals         int        `json:"goals"`
	Assists       *int       `json:"assists"`
	Penalties     *int       `json:"penalties"`
}

type Player struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	FirstName   string `json:"firstName,omitempty"`
	LastName    string `json:"lastName,omitempty"`
	DateOfBirth string `json:"dateOfBirth,omitempty"`
	Nationality string `json:"nationality,omitempty"`
	Section     string `json:"section,omitempty"`
	Position    string `json:"position,omitempty"`
}

// EmptyStandings is the payload used on failure so callers can range without nil checks.
func EmptyStandings() *StandingsTable {
	return &StandingsTable{Standings: []StandingGroup{}}
}

func EmptyScorers() *ScorersTable {
	return &ScorersTable{Scorers: []Scorer{}}
}

// Resource is a per-competition upstream collection exposed through the proxy routes.
type Resource string

const (
	ResourceStandings Resource = "standings"
	ResourceScorers   Resource = "scorers"
	ResourceMatches   Resource = "matches"
)

// ResourceResponse is an unclassified upstream reply. RequestsAvailable is the raw
// X-Requests-Available-Minute header, empty when absent.
type ResourceResponse struct {
	StatusCode        int
	Status            string
	RequestsAvailable string
	ContentType       string
	Body              []byte
}

func (r ResourceResponse) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// QuotaExhausted reports a 429 or an explicit zero remaining quota.
func (r ResourceResponse) QuotaExhausted() bool {
	return r.StatusCode == 429 || IsQuotaExhausted(r.RequestsAvailable)
}

// IsQuotaExhausted reads an X-Requests-Available-Minute value. Only a value that parses
// to zero counts; an absent or malformed header does not.
func IsQuotaExhausted(requestsAvailable string) bool {
	n, err := strconv.Atoi(strings.TrimSpace(requestsAvailable))
	return err == nil && n == 0
}
