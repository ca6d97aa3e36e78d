package scoring

import "strings"

// KeywordTiers holds the four ordered keyword lists used for the shared
// urgency bonus. Tiers are checked critical first, the first tier with a
// match wins.
type KeywordTiers struct {
	Critical []string
	High     []string
	Medium   []string
	Low      []string
}

// DefaultKeywordTiers returns the built-in keyword lists
func DefaultKeywordTiers() KeywordTiers {
	return KeywordTiers{
		Critical: []string{"urgent", "asap", "critical", "emergency", "immediately", "outage"},
		High:     []string{"important", "priority", "deadline", "eod", "blocker", "escalat"},
		Medium:   []string{"review", "feedback", "question", "reminder", "follow up", "follow-up"},
		Low:      []string{"fyi", "heads up", "minor", "no rush", "whenever"},
	}
}

// bonus factors per tier, no match falls back to the default
const (
	bonusCritical  = 1.0
	bonusHigh      = 0.7
	bonusMedium    = 0.4
	bonusLow       = 0.1
	bonusNoMatch   = 0.3
	bonusMaxPoints = 10.0
)

// match returns the bonus factor for the combined item text
func (k KeywordTiers) match(text string) float64 {
	text = strings.ToLower(text)
	contains := func(terms []string) bool {
		for _, t := range terms {
			if t != "" && strings.Contains(text, t) {
				return true
			}
		}
		return false
	}

	switch {
	case contains(k.Critical):
		return bonusCritical
	case contains(k.High):
		return bonusHigh
	case contains(k.Medium):
		return bonusMedium
	case contains(k.Low):
		return bonusLow
	default:
		return bonusNoMatch
	}
}
