package match

import (
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleMatch = `{
  "id": 537785,
  "utcDate": "2026-10-18T14:00:00Z",
  "status": "FINISHED",
  "matchday": 8,
  "stage": "REGULAR_SEASON",
  "group": null,
  "area": {"id": 2072, "name": "England", "code": "ENG", "flag": "https://crests.football-data.org/770.svg"},
  "competition": {"id": 2021, "name": "Premier League", "code": "PL", "type": "LEAGUE", "emblem": "https://crests.football-data.org/PL.png"},
  "homeTeam": {"id": 57, "name": "Arsenal FC", "shortName": "Arsenal", "tla": "ARS", "crest": "https://crests.football-data.org/57.png"},
  "awayTeam": {"id": 61, "name": "Chelsea FC", "shortName": "Chelsea", "tla": "CHE", "crest": "https://crests.football-data.org/61.png"},
  "score": {"winner": "HOME_TEAM", "duration": "REGULAR", "fullTime": {"home": 2, "away": 1}, "halfTime": {"home": 1, "away": 0}}
}`

func TestMatch_DecodeAndReencode(t *testing.T) {
	var decoded Match
	require.NoError(t, sonic.Unmarshal([]byte(sampleMatch), &decoded))

	assert.Equal(t, int64(537785), decoded.ID)
	assert.Equal(t, StatusFinished, decoded.Status)
	assert.Equal(t, "Arsenal FC", decoded.HomeTeam.Name)
	assert.Equal(t, "Chelsea FC", decoded.AwayTeam.Name)
	require.NotNil(t, decoded.Score.FullTime.Home)
	assert.Equal(t, 2, *decoded.Score.FullTime.Home)
	assert.Equal(t, 1, *decoded.Score.FullTime.Away)
	assert.Nil(t, decoded.Score.ExtraTime)

	raw, err := sonic.Marshal(decoded)
	require.NoError(t, err)

	var again Match
	require.NoError(t, sonic.Unmarshal(raw, &again))
	assert.Equal(t, decoded.ID, again.ID)
	assert.Equal(t, decoded.Status, again.Status)
	assert.Equal(t, decoded.HomeTeam.Name, again.HomeTeam.Name)
	assert.Equal(t, decoded.AwayTeam.Name, again.AwayTeam.Name)
	assert.Equal(t, *decoded.Score.FullTime.Home, *again.Score.FullTime.Home)
	assert.Equal(t, *decoded.Score.FullTime.Away, *again.Score.FullTime.Away)
}

func TestScorePair_UnplayedSidesStayNull(t *testing.T) {
	var score Score
	require.NoError(t, sonic.Unmarshal([]byte(`{"fullTime":{"home":null,"away":null}}`), &score))
	assert.Nil(t, score.FullTime.Home)

	raw, err := sonic.Marshal(score)
	require.NoError(t, err)
	assert.JSONEq(t, `{"fullTime":{"home":null,"away":null}}`, string(raw))
}
