package match

import (
	"strings"
	"time"
)

// Status is the upstream lifecycle state of a match.
type Status string

const (
	StatusScheduled Status = "SCHEDULED"
	StatusTimed     Status = "TIMED"
	StatusInPlay    Status = "IN_PLAY"
	StatusPaused    Status = "PAUSED"
	StatusFinished  Status = "FINISHED"
	StatusPostponed Status = "POSTPONED"
	StatusSuspended Status = "SUSPENDED"
	StatusCancelled Status = "CANCELLED"
	StatusAwarded   Status = "AWARDED"

	// StatusLive only exists as a query alias; the upstream never returns it on a match.
	StatusLive Status = "LIVE"
)

// Stage is a competition phase, used mostly for cup knockout queries.
type Stage string

const (
	StageRegularSeason Stage = "REGULAR_SEASON"
	StageGroupStage    Stage = "GROUP_STAGE"
	StagePlayoffs      Stage = "PLAYOFFS"
	StageLast16        Stage = "LAST_16"
	StageRoundOf16     Stage = "ROUND_OF_16"
	StageQuarterFinals Stage = "QUARTER_FINALS"
	StageSemiFinals    Stage = "SEMI_FINALS"
	StageThirdPlace    Stage = "THIRD_PLACE"
	StageFinal         Stage = "FINAL"
)

var (
	LiveStatuses     = []Status{StatusLive, StatusInPlay, StatusPaused}
	UpcomingStatuses = []Status{StatusScheduled, StatusTimed}
	KnockoutStages   = []Stage{StageRoundOf16, StageQuarterFinals, StageSemiFinals, StageFinal}
)

var queryableStatuses = map[Status]struct{}{
	StatusScheduled: {}, StatusTimed: {}, StatusInPlay: {}, StatusPaused: {}, StatusFinished: {},
	StatusPostponed: {}, StatusSuspended: {}, StatusCancelled: {}, StatusAwarded: {}, StatusLive: {},
}

var knownStages = map[Stage]struct{}{
	StageRegularSeason: {}, StageGroupStage: {}, StagePlayoffs: {}, StageLast16: {}, StageRoundOf16: {},
	StageQuarterFinals: {}, StageSemiFinals: {}, StageThirdPlace: {}, StageFinal: {},
}

func NormalizeStatus(value string) Status {
	return Status(strings.ToUpper(strings.TrimSpace(value)))
}

func (s Status) Valid() bool {
	_, ok := queryableStatuses[s]
	return ok
}

func (s Status) IsLive() bool {
	switch s {
	case StatusLive, StatusInPlay, StatusPaused:
		return true
	default:
		return false
	}
}

func NormalizeStage(value string) Stage {
	return Stage(strings.ToUpper(strings.TrimSpace(value)))
}

func (s Stage) Valid() bool {
	_, ok := knownStages[s]
	return ok
}

// Match is one fixture or result as returned by the football-data v4 API.
type Match struct {
	ID          int64       `json:"id"`
	UTCDate     time.Time   `json:"utcDate"`
	Status      Status      `json:"status"`
	Minute      any         `json:"minute,omitempty"`
	Matchday    *int        `json:"matchday,omitempty"`
	Stage       string      `json:"stage,omitempty"`
	Group       string      `json:"group,omitempty"`
	LastUpdated *time.Time  `json:"lastUpdated,omitempty"`
	Area        Area        `json:"area"`
	Competition Competition `json:"competition"`
	HomeTeam    Team        `json:"homeTeam"`
	AwayTeam    Team        `json:"awayTeam"`
	Score       Score       `json:"score"`
}

type Area struct {
	ID   int64  `json:"id,omitempty"`
	Name string `json:"name"`
	Code string `json:"code,omitempty"`
	Flag string `json:"flag,omitempty"`
}

type Competition struct {
	ID     int64  `json:"id,omitempty"`
	Name   string `json:"name"`
	Code   string `json:"code,omitempty"`
	Type   string `json:"type,omitempty"`
	Emblem string `json:"emblem"`
}

type Team struct {
	ID        int64  `json:"id,omitempty"`
	Name      string `json:"name"`
	ShortName string `json:"shortName,omitempty"`
	TLA       string `json:"tla,omitempty"`
	Crest     string `json:"crest"`
	Coach     *Coach `json:"coach,omitempty"`
}

type Coach struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Score holds the full-time pair plus the optional periods. Sides are nil until played.
type Score struct {
	Winner    string     `json:"winner,omitempty"`
	Duration  string     `json:"duration,omitempty"`
	FullTime  ScorePair  `json:"fullTime"`
	HalfTime  *ScorePair `json:"halfTime,omitempty"`
	ExtraTime *ScorePair `json:"extraTime,omitempty"`
	Penalties *ScorePair `json:"penalties,omitempty"`
}

type ScorePair struct {
	Home *int `json:"home"`
	Away *int `json:"away"`
}

// FilterByCompetitionName keeps matches whose competition name equals name exactly.
func FilterByCompetitionName(items []Match, name string) []Match {
	out := make([]Match, 0, len(items))
	for _, item := range items {
		if item.Competition.Name == name {
			out = append(out, item)
		}
	}
	return out
}
