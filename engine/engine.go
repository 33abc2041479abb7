package engine

import (
	"github.com/rs/zerolog/log"

	"warsim/game"
)

// MaxRounds caps a campaign that neither side can finish.
const MaxRounds = 500

// Summary aggregates what happened over one campaign.
type Summary struct {
	Rounds     int
	Draws      int
	Wins       map[string]int // battles won per army
	Casualties map[string]int // units lost per army
}

// Engine drives repeated battles between two armies until one side has no
// units left or the round cap is hit. The engine holds no state beyond the
// two aggregates it was given; campaigns are fully deterministic.
type Engine struct {
	A, B      *game.Army
	MaxRounds int
}

// New returns an engine over two initialized armies with the default round cap.
func New(a, b *game.Army) *Engine {
	return &Engine{A: a, B: b, MaxRounds: MaxRounds}
}

// Run executes the campaign loop. It returns the name of the winning army
// and a summary; the winner of a campaign stopped at the round cap is the
// side with more remaining strength, or "" when dead even.
func (e *Engine) Run() (string, Summary) {
	summary := Summary{
		Wins:       map[string]int{},
		Casualties: map[string]int{},
	}

	log.Info().Str("attacker", e.A.Name).Str("defender", e.B.Name).Msg("campaign starting")

	for round := 1; round <= e.MaxRounds; round++ {
		if len(e.A.Roster) == 0 || len(e.B.Roster) == 0 {
			break
		}
		label := Battle(e.A, e.B)
		summary.Rounds = round

		rec := e.A.History[len(e.A.History)-1]
		summary.Casualties[e.A.Name] += len(rec.OwnLosses)
		summary.Casualties[e.B.Name] += len(rec.OpponentLosses)
		switch label {
		case DrawLabel:
			summary.Draws++
		case WinLabel(e.A.Name):
			summary.Wins[e.A.Name]++
		default:
			summary.Wins[e.B.Name]++
		}

		log.Info().
			Int("round", round).
			Str("result", label).
			Int("attacker_strength", e.A.TotalStrength()).
			Int("defender_strength", e.B.TotalStrength()).
			Msg("battle resolved")
	}

	var winner string
	switch {
	case e.A.TotalStrength() > e.B.TotalStrength():
		winner = e.A.Name
	case e.B.TotalStrength() > e.A.TotalStrength():
		winner = e.B.Name
	}
	log.Info().Str("winner", winner).Int("rounds", summary.Rounds).Msg("campaign over")

	return winner, summary
}
