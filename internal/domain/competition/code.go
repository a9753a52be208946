package competition

import "strings"

// Known competition codes on football-data.org.
const (
	CodePremierLeague   = "PL"
	CodePrimeraDivision = "PD"
	CodeBundesliga      = "BL1"
	CodeSerieA          = "SA"
	CodeLigue1          = "FL1"
	CodeChampionship    = "ELC"
	CodePrimeiraLiga    = "PPL"
	CodeEredivisie      = "DED"
	CodeChampionsLeague = "CL"
)

var codeByName = map[string]string{
	"Premier League":   CodePremierLeague,
	"Primera Division": CodePrimeraDivision,
	"La Liga":          CodePrimeraDivision,
	"Bundesliga":       CodeBundesliga,
	"Serie A":          CodeSerieA,
	"Ligue 1":          CodeLigue1,
	"Championship":     CodeChampionship,
	"Primeira Liga":    CodePrimeiraLiga,
	"Eredivisie":       CodeEredivisie,
	"Champions League": CodeChampionsLeague,
}

// Slugs are the URL-friendly names used by the proxy routes. Eredivisie has no slug.
var codeBySlug = map[string]string{
	"premier-league":   CodePremierLeague,
	"la-liga":          CodePrimeraDivision,
	"bundesliga":       CodeBundesliga,
	"serie-a":          CodeSerieA,
	"ligue-1":          CodeLigue1,
	"championship":     CodeChampionship,
	"primeira-liga":    CodePrimeiraLiga,
	"champions-league": CodeChampionsLeague,
}

// nameByCode holds the name the upstream reports on matches for each code.
var nameByCode = map[string]string{
	CodePremierLeague:   "Premier League",
	CodePrimeraDivision: "Primera Division",
	CodeBundesliga:      "Bundesliga",
	CodeSerieA:          "Serie A",
	CodeLigue1:          "Ligue 1",
	CodeChampionship:    "Championship",
	CodePrimeiraLiga:    "Primeira Liga",
	CodeEredivisie:      "Eredivisie",
	CodeChampionsLeague: "UEFA Champions League",
}

// ResolveCode maps a human-readable league name to its code. Anything not in the
// table is assumed to already be a code and is returned trimmed.
func ResolveCode(nameOrCode string) string {
	value := strings.TrimSpace(nameOrCode)
	if code, ok := codeByName[value]; ok {
		return code
	}
	return value
}

// CodeForSlug returns the code for a proxy slug such as "la-liga".
func CodeForSlug(slug string) (string, bool) {
	code, ok := codeBySlug[strings.ToLower(strings.TrimSpace(slug))]
	return code, ok
}

// Resolve accepts a slug, a name or a code.
func Resolve(value string) string {
	if code, ok := CodeForSlug(value); ok {
		return code
	}
	return ResolveCode(value)
}

// UpstreamName returns the competition name carried on match payloads for code.
// Unknown codes are returned as given.
func UpstreamName(code string) string {
	if name, ok := nameByCode[strings.ToUpper(strings.TrimSpace(code))]; ok {
		return name
	}
	return code
}
