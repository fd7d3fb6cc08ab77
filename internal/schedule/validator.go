package schedule

import (
	"fmt"
	"sort"

	"github.com/j-r-j/gridiron/internal/domain"
)

// Gate names. Each is an independent pure predicate over a built schedule;
// Validate reports every failing gate rather than stopping at the first.
const (
	GateGameTotal               = "game_total"
	GateTeamGameCounts          = "team_game_counts"
	GateHomeAwaySplit           = "home_away_split"
	GateDivisionalStructure     = "divisional_structure"
	GateIntraconfRotation       = "intraconference_rotation"
	GateInterconfRotation       = "interconference_rotation"
	GateStandingsComponent      = "standings_component"
	GateExtraGame               = "extra_game"
	GateDuplicateMatchups       = "duplicate_matchups"
	GateComponentCounts         = "component_counts"
	GatePairingSymmetry         = "pairing_symmetry"
	GateExtraGameSeparation     = "extra_game_separation"
	GateByeWindow               = "bye_window"
	GateByeDiversity            = "bye_diversity"
	GateByeConflicts            = "bye_conflicts"
	GateWeekUniqueness          = "week_uniqueness"
	GateRotationCoverage        = "rotation_coverage"
	GateRotationSymmetry        = "rotation_symmetry"
	GateHostAlternation         = "host_alternation"
)

// expectedComponentCounts are the per-component league-wide bucket sizes.
var expectedComponentCounts = map[domain.Component]int{
	domain.ComponentDivisional:         96,
	domain.ComponentIntraconfRotation:  64,
	domain.ComponentInterconfRotation:  64,
	domain.ComponentStandingsIntraconf: 32,
	domain.ComponentExtraGame:          16,
}

// GateFailure names one failed gate with detail.
type GateFailure struct {
	Gate   string `json:"gate"`
	Detail string `json:"detail"`
}

// Report collects every gate failure found in one validation pass.
type Report struct {
	Failures []GateFailure `json:"failures"`
}

// Pass reports whether no gate failed.
func (r Report) Pass() bool {
	return len(r.Failures) == 0
}

// Gates returns the distinct failed gate names, sorted.
func (r Report) Gates() []string {
	seen := make(map[string]bool)
	var gates []string
	for _, f := range r.Failures {
		if !seen[f.Gate] {
			seen[f.Gate] = true
			gates = append(gates, f.Gate)
		}
	}
	sort.Strings(gates)
	return gates
}

func (r *Report) addf(gate, format string, args ...any) {
	r.Failures = append(r.Failures, GateFailure{Gate: gate, Detail: fmt.Sprintf(format, args...)})
}

type checker struct {
	report    *Report
	schedule  domain.SeasonSchedule
	league    *domain.League
	prev      map[string]domain.TeamStanding
	teamGames map[string][]domain.Game
}

// Validate runs the full gate bank over a built schedule. It returns the
// complete failure list as diagnostic data; the error is reserved for
// malformed inputs (league or standings violating their own contracts).
func Validate(s domain.SeasonSchedule, league *domain.League, prev []domain.TeamStanding) (Report, error) {
	if league == nil {
		return Report{}, fmt.Errorf("%w: nil league", ErrInvalidInput)
	}
	prevByTeam, err := indexStandings(league, prev)
	if err != nil {
		return Report{}, err
	}

	c := &checker{
		report:    &Report{},
		schedule:  s,
		league:    league,
		prev:      prevByTeam,
		teamGames: make(map[string][]domain.Game),
	}
	for _, g := range s.Games {
		c.teamGames[g.HomeID] = append(c.teamGames[g.HomeID], g)
		c.teamGames[g.AwayID] = append(c.teamGames[g.AwayID], g)
	}

	c.checkGameTotal()
	c.checkTeamCounts()
	c.checkHomeAwaySplit()
	c.checkDivisionalStructure()
	c.checkIntraRotation()
	c.checkInterRotation()
	c.checkStandingsComponent()
	c.checkExtraGame()
	c.checkDuplicates()
	c.checkComponentCounts()
	c.checkPairingSymmetry()
	c.checkExtraGameSeparation()
	c.checkByes()
	c.checkWeekUniqueness()

	return *c.report, nil
}

func (c *checker) checkGameTotal() {
	if n := len(c.schedule.Games); n != domain.LeagueGames {
		c.report.addf(GateGameTotal, "league has %d games, expected %d", n, domain.LeagueGames)
	}
}

func (c *checker) checkTeamCounts() {
	for _, t := range c.league.Teams() {
		if n := len(c.teamGames[t.ID]); n != domain.GamesPerTeam {
			c.report.addf(GateTeamGameCounts, "team %s has %d games, expected %d", t.ID, n, domain.GamesPerTeam)
		}
	}
}

func (c *checker) checkHomeAwaySplit() {
	host := ExtraGameHostConference(c.schedule.Year)
	for _, t := range c.league.Teams() {
		home := 0
		for _, g := range c.teamGames[t.ID] {
			if g.HomeID == t.ID {
				home++
			}
		}
		wantHome := 8
		if t.Conference == host {
			wantHome = 9
		}
		if home != wantHome {
			c.report.addf(GateHomeAwaySplit, "team %s has %d home games, expected %d", t.ID, home, wantHome)
		}
	}
}

func (c *checker) checkDivisionalStructure() {
	for _, t := range c.league.Teams() {
		home, away := 0, 0
		perRival := make(map[string]int)
		hostedRival := make(map[string]int)
		for _, g := range c.teamGames[t.ID] {
			if g.Component != domain.ComponentDivisional {
				continue
			}
			opp, _ := g.Opponent(t.ID)
			rival, ok := c.league.Team(opp)
			if !ok || rival.Conference != t.Conference || rival.Division != t.Division {
				c.report.addf(GateDivisionalStructure, "team %s has divisional game against non-rival %s", t.ID, opp)
				continue
			}
			perRival[opp]++
			if g.HomeID == t.ID {
				home++
				hostedRival[opp]++
			} else {
				away++
			}
		}
		if home != 3 || away != 3 {
			c.report.addf(GateDivisionalStructure, "team %s divisional split is %d home / %d away, expected 3/3", t.ID, home, away)
		}
		for _, rival := range c.league.DivisionTeams(t.Conference, t.Division) {
			if rival.ID == t.ID {
				continue
			}
			if perRival[rival.ID] != 2 {
				c.report.addf(GateDivisionalStructure, "team %s plays rival %s %d times, expected 2", t.ID, rival.ID, perRival[rival.ID])
			} else if hostedRival[rival.ID] != 1 {
				c.report.addf(GateDivisionalStructure, "team %s hosts rival %s %d times, expected 1", t.ID, rival.ID, hostedRival[rival.ID])
			}
		}
	}
}

// checkRotationBlock verifies a team's four-game block against one division:
// full coverage of its teams with a 2 home / 2 away split.
func (c *checker) checkRotationBlock(gate string, t domain.Team, component domain.Component,
	wantConf domain.Conference, wantDiv domain.Division) {

	opponents := make(map[string]bool)
	home := 0
	for _, g := range c.teamGames[t.ID] {
		if g.Component != component {
			continue
		}
		opp, _ := g.Opponent(t.ID)
		oppTeam, ok := c.league.Team(opp)
		if !ok || oppTeam.Conference != wantConf || oppTeam.Division != wantDiv {
			c.report.addf(gate, "team %s plays %s outside assigned division %s %s", t.ID, opp, wantConf, wantDiv)
			continue
		}
		opponents[opp] = true
		if g.HomeID == t.ID {
			home++
		}
	}
	if len(opponents) != domain.TeamsPerDivision {
		c.report.addf(gate, "team %s covers %d of %d teams in %s %s", t.ID, len(opponents), domain.TeamsPerDivision, wantConf, wantDiv)
	}
	if home != 2 {
		c.report.addf(gate, "team %s hosts %d rotation games against %s %s, expected 2", t.ID, home, wantConf, wantDiv)
	}
}

func (c *checker) checkIntraRotation() {
	for _, t := range c.league.Teams() {
		partner := IntraconferenceOpponent(t.Division, c.schedule.Year)
		c.checkRotationBlock(GateIntraconfRotation, t, domain.ComponentIntraconfRotation, t.Conference, partner)
	}
}

func (c *checker) checkInterRotation() {
	for _, t := range c.league.Teams() {
		partner := InterconferenceOpponent(t.Conference, t.Division, c.schedule.Year)
		c.checkRotationBlock(GateInterconfRotation, t, domain.ComponentInterconfRotation, t.Conference.Opposite(), partner)
	}
}

func (c *checker) checkStandingsComponent() {
	year := c.schedule.Year
	for _, t := range c.league.Teams() {
		rotationPartner := IntraconferenceOpponent(t.Division, year)
		divisions := make(map[domain.Division]bool)
		home := 0
		count := 0
		for _, g := range c.teamGames[t.ID] {
			if g.Component != domain.ComponentStandingsIntraconf {
				continue
			}
			count++
			opp, _ := g.Opponent(t.ID)
			oppTeam, ok := c.league.Team(opp)
			if !ok || oppTeam.Conference != t.Conference {
				c.report.addf(GateStandingsComponent, "team %s standings game against %s is not intraconference", t.ID, opp)
				continue
			}
			if oppTeam.Division == t.Division || oppTeam.Division == rotationPartner {
				c.report.addf(GateStandingsComponent, "team %s standings opponent %s comes from an excluded division", t.ID, opp)
			}
			if divisions[oppTeam.Division] {
				c.report.addf(GateStandingsComponent, "team %s has two standings games against %s", t.ID, oppTeam.Division)
			}
			divisions[oppTeam.Division] = true
			if c.prev[opp].DivisionRank != c.prev[t.ID].DivisionRank {
				c.report.addf(GateStandingsComponent, "team %s (rank %d) plays %s (rank %d) in standings game",
					t.ID, c.prev[t.ID].DivisionRank, opp, c.prev[opp].DivisionRank)
			}
			if g.HomeID == t.ID {
				home++
			}
		}
		if count != 2 {
			c.report.addf(GateStandingsComponent, "team %s has %d standings games, expected 2", t.ID, count)
		} else if home != 1 {
			c.report.addf(GateStandingsComponent, "team %s hosts %d standings games, expected 1", t.ID, home)
		}
	}
}

func (c *checker) checkExtraGame() {
	year := c.schedule.Year
	host := ExtraGameHostConference(year)
	for _, t := range c.league.Teams() {
		wantDiv := ExtraGameOpponentDivision(t.Conference, t.Division, year)
		count := 0
		for _, g := range c.teamGames[t.ID] {
			if g.Component != domain.ComponentExtraGame {
				continue
			}
			count++
			opp, _ := g.Opponent(t.ID)
			oppTeam, ok := c.league.Team(opp)
			if !ok || oppTeam.Conference == t.Conference {
				c.report.addf(GateExtraGame, "team %s extra game against %s is not interconference", t.ID, opp)
				continue
			}
			if oppTeam.Division != wantDiv {
				c.report.addf(GateExtraGame, "team %s extra-game opponent %s is from %s, expected %s", t.ID, opp, oppTeam.Division, wantDiv)
			}
			if c.prev[opp].DivisionRank != c.prev[t.ID].DivisionRank {
				c.report.addf(GateExtraGame, "team %s (rank %d) plays %s (rank %d) in extra game",
					t.ID, c.prev[t.ID].DivisionRank, opp, c.prev[opp].DivisionRank)
			}
			hostsIt := g.HomeID == t.ID
			shouldHost := t.Conference == host
			if hostsIt != shouldHost {
				c.report.addf(GateExtraGame, "team %s hosting=%v in extra game, host conference is %s", t.ID, hostsIt, host)
			}
		}
		if count != 1 {
			c.report.addf(GateExtraGame, "team %s has %d extra games, expected 1", t.ID, count)
		}
	}
}

func pairKey(a, b string) string {
	if a < b {
		return a + "|" + b
	}
	return b + "|" + a
}

func (c *checker) checkDuplicates() {
	nonDivisional := make(map[string]int)
	for _, g := range c.schedule.Games {
		if g.Component == domain.ComponentDivisional {
			continue
		}
		nonDivisional[pairKey(g.HomeID, g.AwayID)]++
	}
	var keys []string
	for k, n := range nonDivisional {
		if n > 1 {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		c.report.addf(GateDuplicateMatchups, "non-divisional matchup %s occurs %d times", k, nonDivisional[k])
	}
}

func (c *checker) checkComponentCounts() {
	counts := make(map[domain.Component]int)
	for _, g := range c.schedule.Games {
		counts[g.Component]++
		if g.Divisional != (g.Component == domain.ComponentDivisional) {
			c.report.addf(GateComponentCounts, "game %s divisional flag disagrees with component %s", g.ID, g.Component)
		}
		if g.Conference != componentSameConference(g.Component) {
			c.report.addf(GateComponentCounts, "game %s conference flag disagrees with component %s", g.ID, g.Component)
		}
	}
	for _, comp := range domain.Components() {
		if counts[comp] != expectedComponentCounts[comp] {
			c.report.addf(GateComponentCounts, "component %s has %d games, expected %d", comp, counts[comp], expectedComponentCounts[comp])
		}
	}
}

func (c *checker) checkPairingSymmetry() {
	hostsByPair := make(map[string]map[string]int)
	for _, g := range c.schedule.Games {
		if g.HomeID == g.AwayID {
			c.report.addf(GatePairingSymmetry, "game %s pairs team %s with itself", g.ID, g.HomeID)
			continue
		}
		if _, ok := c.league.Team(g.HomeID); !ok {
			c.report.addf(GatePairingSymmetry, "game %s references unknown home team %s", g.ID, g.HomeID)
		}
		if _, ok := c.league.Team(g.AwayID); !ok {
			c.report.addf(GatePairingSymmetry, "game %s references unknown away team %s", g.ID, g.AwayID)
		}
		key := pairKey(g.HomeID, g.AwayID)
		if hostsByPair[key] == nil {
			hostsByPair[key] = make(map[string]int)
		}
		hostsByPair[key][g.HomeID]++
	}
	var keys []string
	for k := range hostsByPair {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		hosts := hostsByPair[k]
		total := 0
		for _, n := range hosts {
			total += n
		}
		// A pair meeting twice must split hosting; a reversed reference
		// would surface here as a lopsided host count.
		if total == 2 && len(hosts) != 2 {
			c.report.addf(GatePairingSymmetry, "matchup %s is hosted twice by the same team", k)
		}
	}
}

func (c *checker) checkExtraGameSeparation() {
	year := c.schedule.Year
	for _, t := range c.league.Teams() {
		rotationDiv := InterconferenceOpponent(t.Conference, t.Division, year)
		for _, g := range c.teamGames[t.ID] {
			if g.Component != domain.ComponentExtraGame {
				continue
			}
			opp, _ := g.Opponent(t.ID)
			if oppTeam, ok := c.league.Team(opp); ok && oppTeam.Division == rotationDiv && oppTeam.Conference != t.Conference {
				c.report.addf(GateExtraGameSeparation, "team %s extra game repeats current interconference division %s", t.ID, rotationDiv)
			}
		}
	}
}

func (c *checker) checkByes() {
	for _, conf := range domain.Conferences() {
		for _, div := range domain.Divisions() {
			weeks := make(map[int]bool)
			for _, t := range c.league.DivisionTeams(conf, div) {
				bye, ok := c.schedule.ByeWeek(t.ID)
				if !ok {
					c.report.addf(GateByeWindow, "team %s has no bye week", t.ID)
					continue
				}
				if bye < ByeWindowStart || bye > ByeWindowEnd {
					c.report.addf(GateByeWindow, "team %s bye week %d outside [%d,%d]", t.ID, bye, ByeWindowStart, ByeWindowEnd)
				}
				weeks[bye] = true
				for _, g := range c.teamGames[t.ID] {
					if g.Week == bye {
						c.report.addf(GateByeConflicts, "team %s plays game %s in its bye week %d", t.ID, g.ID, bye)
					}
				}
			}
			if len(weeks) < 2 {
				c.report.addf(GateByeDiversity, "%s %s uses %d distinct bye weeks, expected at least 2", conf, div, len(weeks))
			}
		}
	}
}

func (c *checker) checkWeekUniqueness() {
	for _, g := range c.schedule.Games {
		if g.Week < 1 || g.Week > domain.RegularSeasonWeeks {
			c.report.addf(GateWeekUniqueness, "game %s placed in week %d", g.ID, g.Week)
		}
	}
	for _, t := range c.league.Teams() {
		weeks := make(map[int]bool)
		for _, g := range c.teamGames[t.ID] {
			if weeks[g.Week] {
				c.report.addf(GateWeekUniqueness, "team %s plays twice in week %d", t.ID, g.Week)
			}
			weeks[g.Week] = true
		}
		if len(c.teamGames[t.ID]) == domain.GamesPerTeam && len(weeks) != domain.GamesPerTeam {
			c.report.addf(GateWeekUniqueness, "team %s occupies %d distinct weeks, expected %d", t.ID, len(weeks), domain.GamesPerTeam)
		}
	}
}

// ValidateRotation checks the rotation tables alone across a run of
// consecutive years: no self-pairings, within-year symmetry, cycle coverage
// windows, the two-year extra-game lag, and host-conference alternation.
func ValidateRotation(fromYear, toYear int) Report {
	var report Report
	for year := fromYear; year <= toYear; year++ {
		for _, div := range domain.Divisions() {
			partner := IntraconferenceOpponent(div, year)
			if partner == div {
				report.addf(GateRotationSymmetry, "year %d: division %s paired with itself", year, div)
			}
			if back := IntraconferenceOpponent(partner, year); back != div {
				report.addf(GateRotationSymmetry, "year %d: intraconference pairing %s->%s not symmetric", year, div, partner)
			}
			for _, conf := range domain.Conferences() {
				inter := InterconferenceOpponent(conf, div, year)
				if back := InterconferenceOpponent(conf.Opposite(), inter, year); back != div {
					report.addf(GateRotationSymmetry, "year %d: interconference pairing %s %s->%s not symmetric", year, conf, div, inter)
				}
				extra := ExtraGameOpponentDivision(conf, div, year)
				if extra != InterconferenceOpponent(conf, div, year-2) {
					report.addf(GateRotationSymmetry, "year %d: extra-game division is not the two-year-lagged pairing", year)
				}
				if extra == inter {
					report.addf(GateRotationCoverage, "year %d: extra game repeats the interconference pairing %s %s", year, conf, div)
				}
			}
			if year+2 <= toYear {
				seen := make(map[domain.Division]bool)
				for offset := 0; offset < 3; offset++ {
					seen[IntraconferenceOpponent(div, year+offset)] = true
				}
				if len(seen) != 3 || seen[div] {
					report.addf(GateRotationCoverage, "years %d-%d: division %s misses intraconference coverage", year, year+2, div)
				}
			}
			if year+3 <= toYear {
				for _, conf := range domain.Conferences() {
					seen := make(map[domain.Division]bool)
					for offset := 0; offset < 4; offset++ {
						seen[InterconferenceOpponent(conf, div, year+offset)] = true
					}
					if len(seen) != 4 {
						report.addf(GateRotationCoverage, "years %d-%d: %s %s misses interconference coverage", year, year+3, conf, div)
					}
				}
			}
		}
		if year+1 <= toYear && ExtraGameHostConference(year) == ExtraGameHostConference(year+1) {
			report.addf(GateHostAlternation, "years %d and %d share host conference %s", year, year+1, ExtraGameHostConference(year))
		}
	}
	return report
}
