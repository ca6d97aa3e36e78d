package scoring

import "priofeed/pkg/domain"

// factor names used in weight maps
const (
	FactorPriority      = "priority"
	FactorOverdue       = "overdue"
	FactorDependency    = "dependency"
	FactorAssignee      = "assignee"
	FactorStatus        = "status"
	FactorRecency       = "recency"
	FactorMentions      = "mentions"
	FactorUrgencyLabel  = "urgency_label"
	FactorCollaboration = "collaboration"
	FactorSender        = "sender"
	FactorMarkers       = "markers"
	FactorWaitTime      = "wait_time"
	FactorActionItems   = "action_items"
	FactorThread        = "thread"
)

// Weights maps source type to named factor weights. Weights within a source
// informally sum to 1.0 so the weighted factor sum stays on a 0-100 scale
// before the keyword bonus.
type Weights map[domain.Source]map[string]float64

// DefaultWeights returns the built-in weight configuration
func DefaultWeights() Weights {
	return Weights{
		domain.SourceTask: {
			FactorPriority:   0.30,
			FactorOverdue:    0.25,
			FactorDependency: 0.15,
			FactorAssignee:   0.10,
			FactorStatus:     0.20,
		},
		domain.SourceDocument: {
			FactorRecency:       0.40,
			FactorMentions:      0.25,
			FactorUrgencyLabel:  0.20,
			FactorCollaboration: 0.15,
		},
		domain.SourceMessage: {
			FactorSender:      0.30,
			FactorMarkers:     0.25,
			FactorWaitTime:    0.25,
			FactorActionItems: 0.15,
			FactorThread:      0.05,
		},
	}
}

// Clone returns a deep copy of the weights
func (w Weights) Clone() Weights {
	out := make(Weights, len(w))
	for src, factors := range w {
		fc := make(map[string]float64, len(factors))
		for name, v := range factors {
			fc[name] = v
		}
		out[src] = fc
	}
	return out
}

// Merge shallow-merges partial weights into a copy of w. Sources and factors
// missing from partial keep their prior values.
func (w Weights) Merge(partial Weights) Weights {
	out := w.Clone()
	for src, factors := range partial {
		if out[src] == nil {
			out[src] = make(map[string]float64, len(factors))
		}
		for name, v := range factors {
			out[src][name] = v
		}
	}
	return out
}
