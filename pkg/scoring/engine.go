package scoring

import (
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"

	"priofeed/pkg/domain"
)

// Engine maps raw upstream items to comparable 0-100 priority scores using
// per-source weighted factors plus a shared keyword bonus. Scoring is
// deterministic given the item, the weights and the injected clock.
type Engine struct {
	mu             sync.RWMutex
	weights        Weights
	keywords       KeywordTiers
	internalDomain string
	nowFn          func() time.Time
}

// Config holds engine construction parameters, zero values fall back to defaults.
// InternalDomain marks the organization's mail domain; senders from other domains
// get the elevated external-sender factor. When empty, every address is treated
// as an internal peer.
type Config struct {
	Weights        Weights
	Keywords       *KeywordTiers
	InternalDomain string
	Now            func() time.Time
}

// NewEngine creates a scoring engine
func NewEngine(cfg Config) *Engine {
	weights := cfg.Weights
	if weights == nil {
		weights = DefaultWeights()
	}
	keywords := DefaultKeywordTiers()
	if cfg.Keywords != nil {
		keywords = *cfg.Keywords
	}
	nowFn := cfg.Now
	if nowFn == nil {
		nowFn = time.Now
	}
	return &Engine{
		weights:        weights.Clone(),
		keywords:       keywords,
		internalDomain: strings.ToLower(cfg.InternalDomain),
		nowFn:          nowFn,
	}
}

// UrgencyFromScore buckets a priority score into an urgency level
func UrgencyFromScore(score int) domain.UrgencyLevel {
	switch {
	case score >= 80:
		return domain.UrgencyUrgent
	case score >= 60:
		return domain.UrgencyHigh
	case score >= 40:
		return domain.UrgencyMedium
	default:
		return domain.UrgencyLow
	}
}

// UpdateWeights shallow-merges partial weights into the live configuration,
// unspecified sources and factors keep their prior values
func (e *Engine) UpdateWeights(partial Weights) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.weights = e.weights.Merge(partial)
}

// SetWeights replaces the weight configuration wholesale
func (e *Engine) SetWeights(w Weights) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.weights = w.Clone()
}

// CurrentWeights returns a copy of the live weight configuration
func (e *Engine) CurrentWeights() Weights {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.weights.Clone()
}

// factor is one scored signal on a 0.0-1.0 sub-scale. A non-empty note marks
// the factor as notable and contributes a clause to the reasoning string.
type factor struct {
	name  string
	value float64
	note  string
}

// ScoreTask scores a tracker task
func (e *Engine) ScoreTask(t domain.RawTask) (score int, reasoning string) {
	factors := []factor{
		e.taskPriorityFactor(t),
		e.taskOverdueFactor(t),
		e.taskDependencyFactor(t),
		e.taskAssigneeFactor(t),
		e.taskStatusFactor(t),
	}
	return e.applyFactors(domain.SourceTask, factors, t.Title+" "+t.Description)
}

// ScoreDocument scores a knowledge-base page
func (e *Engine) ScoreDocument(p domain.RawPage) (score int, reasoning string) {
	factors := []factor{
		e.docRecencyFactor(p),
		e.docMentionsFactor(p),
		e.docUrgencyLabelFactor(p),
		e.docCollaborationFactor(p),
	}
	return e.applyFactors(domain.SourceDocument, factors, p.Title+" "+p.Body)
}

// ScoreMessage scores an inbox message
func (e *Engine) ScoreMessage(m domain.RawMessage) (score int, reasoning string) {
	factors := []factor{
		e.msgSenderFactor(m),
		e.msgMarkersFactor(m),
		e.msgWaitTimeFactor(m),
		e.msgActionItemsFactor(m),
		// thread depth is not available from the inbox listing, keep a fixed
		// low contribution until a real thread-size signal exists
		{name: FactorThread, value: 0.2},
	}
	return e.applyFactors(domain.SourceMessage, factors, m.Subject+" "+m.Preview)
}

// applyFactors combines weighted factors, layers the keyword bonus on top and
// clamps the result to [0,100]. This single routine serves all three sources,
// only the factor tables differ.
func (e *Engine) applyFactors(source domain.Source, factors []factor, text string) (int, string) {
	e.mu.RLock()
	weights := e.weights[source]
	keywords := e.keywords
	e.mu.RUnlock()

	sum := 0.0
	var notes []string
	for _, f := range factors {
		sum += f.value * weights[f.name]
		if f.note != "" {
			notes = append(notes, f.note)
		}
	}

	score := sum*100 + keywords.match(text)*bonusMaxPoints
	result := int(score + 0.5)
	if result < 0 {
		result = 0
	}
	if result > 100 {
		result = 100
	}

	reasoning := "standard priority calculation"
	if len(notes) > 0 {
		reasoning = strings.Join(notes, "; ")
	}
	return result, reasoning
}

// overdueScale converts a day count into the graduated 0.3-1.0 urgency ladder
// shared by task overdue and message wait-time factors
func overdueScale(days int) float64 {
	switch {
	case days <= 0:
		return 0
	case days <= 1:
		return 0.3
	case days <= 3:
		return 0.5
	case days <= 7:
		return 0.7
	case days <= 14:
		return 0.9
	default:
		return 1.0
	}
}

// daysSince returns whole elapsed days from t to now, never negative
func (e *Engine) daysSince(t time.Time) int {
	if t.IsZero() {
		return 0
	}
	d := int(e.nowFn().Sub(t).Hours() / 24)
	if d < 0 {
		return 0
	}
	return d
}

// DaysOverdue returns how many whole days past due the task is, 0 when not
// overdue or when no due date is set
func (e *Engine) DaysOverdue(due *time.Time) int {
	if due == nil {
		return 0
	}
	return e.daysSince(*due)
}

func (e *Engine) taskPriorityFactor(t domain.RawTask) factor {
	f := factor{name: FactorPriority}
	switch strings.ToLower(t.Priority) {
	case "urgent", "critical", "highest", "blocker":
		f.value = 1.0
		f.note = fmt.Sprintf("%s priority", strings.ToLower(t.Priority))
	case "high", "major":
		f.value = 0.8
	case "medium", "normal":
		f.value = 0.6
	case "low":
		f.value = 0.3
	case "lowest", "trivial":
		f.value = 0.1
	default:
		// unknown or missing label stays neutral
		f.value = 0.5
	}
	return f
}

func (e *Engine) taskOverdueFactor(t domain.RawTask) factor {
	days := e.DaysOverdue(t.DueDate)
	f := factor{name: FactorOverdue, value: overdueScale(days)}
	if days > 0 {
		f.note = fmt.Sprintf("overdue by %d day(s)", days)
	}
	return f
}

func (e *Engine) taskDependencyFactor(t domain.RawTask) factor {
	text := strings.ToLower(t.Title + " " + t.Description)
	f := factor{name: FactorDependency}
	switch {
	case strings.Contains(text, "blocked") || strings.Contains(text, "blocker"):
		f.value = 0.8
		f.note = "blocking dependency detected"
	case strings.Contains(text, "depends"):
		f.value = 0.5
		f.note = "has dependencies"
	case t.SubtaskCount > 0:
		f.value = 0.3
	}
	return f
}

func (e *Engine) taskAssigneeFactor(t domain.RawTask) factor {
	if t.Assignee != "" {
		return factor{name: FactorAssignee, value: 0.7}
	}
	return factor{name: FactorAssignee, value: 0.3}
}

func (e *Engine) taskStatusFactor(t domain.RawTask) factor {
	f := factor{name: FactorStatus}
	switch strings.ToLower(t.Status) {
	case "in progress", "in-progress", "doing", "active":
		f.value = 1.0
		f.note = "in progress"
	case "assigned":
		f.value = 0.9
	case "new", "open", "todo", "to do", "backlog":
		f.value = 0.7
	case "on hold", "on-hold", "blocked", "waiting":
		f.value = 0.3
	case "done", "closed", "resolved", "cancelled":
		f.value = 0
	default:
		f.value = 0.5
	}
	return f
}

func (e *Engine) docRecencyFactor(p domain.RawPage) factor {
	f := factor{name: FactorRecency}
	if p.UpdatedAt.IsZero() {
		f.value = 0.1
		return f
	}
	age := e.nowFn().Sub(p.UpdatedAt)
	switch {
	case age <= 2*time.Hour:
		f.value = 1.0
		f.note = "edited in the last 2 hours"
	case age <= 24*time.Hour:
		f.value = 0.8
		f.note = "edited today"
	case age <= 48*time.Hour:
		f.value = 0.6
	case age <= 7*24*time.Hour:
		f.value = 0.3
	default:
		f.value = 0.1
	}
	return f
}

var mentionRe = regexp.MustCompile(`@\w+`)

func (e *Engine) docMentionsFactor(p domain.RawPage) factor {
	count := len(mentionRe.FindAllString(p.Body, -1))
	value := float64(count) * 0.2
	if value > 1.0 {
		value = 1.0
	}
	f := factor{name: FactorMentions, value: value}
	if count > 2 {
		f.note = fmt.Sprintf("%d people mentioned", count)
	}
	return f
}

func (e *Engine) docUrgencyLabelFactor(p domain.RawPage) factor {
	for _, label := range p.Labels {
		switch strings.ToLower(label) {
		case "urgent", "important", "priority", "action-required":
			return factor{name: FactorUrgencyLabel, value: 1.0, note: "urgency label: " + label}
		}
	}
	return factor{name: FactorUrgencyLabel}
}

func (e *Engine) docCollaborationFactor(p domain.RawPage) factor {
	f := factor{name: FactorCollaboration}
	switch {
	case p.Version > 10:
		f.value = 1.0
		f.note = fmt.Sprintf("high edit activity (%d versions)", p.Version)
	case p.Version > 5:
		f.value = 0.7
	case p.Version > 2:
		f.value = 0.4
	default:
		f.value = 0.2
	}
	return f
}

// managerTokens marks sender names/roles that suggest organizational weight
var managerTokens = []string{"manager", "director", "lead", "head", "chief", "vp", "ceo", "cto"}

func (e *Engine) msgSenderFactor(m domain.RawMessage) factor {
	f := factor{name: FactorSender}
	roleAndName := strings.ToLower(m.Sender + " " + m.SenderRole)
	for _, token := range managerTokens {
		if strings.Contains(roleAndName, token) {
			f.value = 1.0
			f.note = "sender appears to be a manager"
			return f
		}
	}
	if m.Sender == "" || !strings.Contains(m.Sender, "@") {
		// no address to go by, treat as unknown
		f.value = 0.8
		return f
	}
	if e.internalDomain != "" && senderDomain(m.Sender) != e.internalDomain {
		f.value = 0.8
		f.note = "external sender"
		return f
	}
	f.value = 0.4
	return f
}

// senderDomain extracts the mail domain from an address, tolerating the
// "Name <addr@host>" form
func senderDomain(sender string) string {
	addr := strings.ToLower(sender[strings.LastIndex(sender, "@")+1:])
	return strings.TrimSpace(strings.TrimRight(strings.TrimSpace(addr), ">"))
}

func (e *Engine) msgMarkersFactor(m domain.RawMessage) factor {
	f := factor{name: FactorMarkers}
	var notes []string
	if m.Flagged {
		f.value += 0.7
		notes = append(notes, "flagged")
	}
	if strings.EqualFold(m.Importance, "high") {
		f.value += 0.8
		notes = append(notes, "high importance")
	}
	if m.Unread {
		f.value += 0.3
	}
	if f.value > 1.0 {
		f.value = 1.0
	}
	f.note = strings.Join(notes, ", ")
	return f
}

func (e *Engine) msgWaitTimeFactor(m domain.RawMessage) factor {
	days := e.daysSince(m.ReceivedAt)
	f := factor{name: FactorWaitTime, value: overdueScale(days)}
	if days > 1 {
		f.note = fmt.Sprintf("waiting %d day(s) for a reply", days)
	}
	return f
}

// actionTerms are phrases that suggest the message asks for something
var actionTerms = []string{
	"please", "can you", "could you", "need", "review", "approve",
	"respond", "confirm", "by eod", "deadline", "action required",
}

func (e *Engine) msgActionItemsFactor(m domain.RawMessage) factor {
	text := strings.ToLower(m.Subject + " " + m.Preview)
	count := 0
	for _, term := range actionTerms {
		count += strings.Count(text, term)
	}
	value := float64(count) * 0.2
	if value > 1.0 {
		value = 1.0
	}
	f := factor{name: FactorActionItems, value: value}
	if count >= 2 {
		f.note = "contains action items"
	}
	return f
}
