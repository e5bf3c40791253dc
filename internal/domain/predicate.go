package domain

import (
	"cmp"
	"slices"
)

// PredicateKind tags the shape of a single search condition.
type PredicateKind int

const (
	PredicateEquals PredicateKind = iota + 1
	PredicateNotEquals
	PredicateInSet
	PredicateNotInSet
	PredicateSubqueryMembership
)

func (k PredicateKind) String() string {
	switch k {
	case PredicateEquals:
		return "EQUALS"
	case PredicateNotEquals:
		return "NOT_EQUALS"
	case PredicateInSet:
		return "IN_SET"
	case PredicateNotInSet:
		return "NOT_IN_SET"
	case PredicateSubqueryMembership:
		return "SUBQUERY_MEMBERSHIP"
	}
	return "UNKNOWN"
}

// InterviewField names a filterable interview column.
type InterviewField string

const (
	FieldID             InterviewField = "id"
	FieldTopicID        InterviewField = "topic_id"
	FieldSubmitterID    InterviewField = "submitter_id"
	FieldAgreedWisherID InterviewField = "agreed_wisher_id"
	FieldStatus         InterviewField = "status"
	FieldMode           InterviewField = "mode"
)

// WisherSubquery selects the ids of interviews that have at least one wisher
// row for UserID, approved or not.
type WisherSubquery struct {
	UserID int
}

// Predicate is one condition of a conjunctive interview search.
//
// Equals and NotEquals compare Field with Value. InSet and NotInSet test Field
// against Values. SubqueryMembership tests Field against the id set produced
// by Subquery; Negate turns it into a NOT IN test.
type Predicate struct {
	Kind     PredicateKind
	Field    InterviewField
	Value    int
	Values   []int
	Subquery WisherSubquery
	Negate   bool
}

// Predicates is a conjunction. An empty set matches every interview.
type Predicates []Predicate

// scalarRule binds one optional scalar search field to the column it filters.
type scalarRule struct {
	field      InterviewField
	value      func(FilterRequestParams) int
	excludable bool
}

var (
	participantRules = []scalarRule{
		{FieldSubmitterID, func(p FilterRequestParams) int { return p.SubmitterID }, true},
		{FieldAgreedWisherID, func(p FilterRequestParams) int { return p.AgreedWisherID }, true},
	}
	attributeRules = []scalarRule{
		{FieldStatus, func(p FilterRequestParams) int { return p.Status }, false},
		{FieldMode, func(p FilterRequestParams) int { return p.Mode }, false},
	}
)

// BuildInterviewPredicates turns sparse search parameters into the predicate
// set that selects matching interviews. Fields holding a non-positive value
// produce no predicate.
func BuildInterviewPredicates(p FilterRequestParams) Predicates {
	preds := make(Predicates, 0, 6)

	if len(p.TopicIDs) > 0 {
		preds = append(preds, Predicate{
			Kind:   PredicateInSet,
			Field:  FieldTopicID,
			Values: slices.Clone(p.TopicIDs),
		})
	}

	for _, rule := range participantRules {
		preds = appendScalar(preds, rule, p)
	}

	if p.WisherID > 0 {
		preds = append(preds, Predicate{
			Kind:     PredicateSubqueryMembership,
			Field:    FieldID,
			Subquery: WisherSubquery{UserID: p.WisherID},
			Negate:   p.Exclude,
		})
	}

	for _, rule := range attributeRules {
		preds = appendScalar(preds, rule, p)
	}

	return preds
}

func appendScalar(preds Predicates, rule scalarRule, p FilterRequestParams) Predicates {
	v := rule.value(p)
	if v <= 0 {
		return preds
	}
	kind := PredicateEquals
	if rule.excludable && p.Exclude {
		kind = PredicateNotEquals
	}
	return append(preds, Predicate{Kind: kind, Field: rule.field, Value: v})
}

// ---------------------------------------------------------------------------
// In-memory evaluation
// ---------------------------------------------------------------------------

// WisherIndex answers whether a user has applied to an interview.
type WisherIndex interface {
	HasWisher(interviewID, userID int) bool
}

// WisherSet is a WisherIndex built from loaded wisher rows.
type WisherSet map[int]map[int]struct{}

// NewWisherSet indexes wishers by interview and user.
func NewWisherSet(wishers []Wisher) WisherSet {
	set := make(WisherSet)
	for _, w := range wishers {
		users, ok := set[w.InterviewID]
		if !ok {
			users = make(map[int]struct{})
			set[w.InterviewID] = users
		}
		users[w.UserID] = struct{}{}
	}
	return set
}

func (s WisherSet) HasWisher(interviewID, userID int) bool {
	_, ok := s[interviewID][userID]
	return ok
}

// Match evaluates the predicate against a single interview.
func (p Predicate) Match(i Interview, idx WisherIndex) bool {
	v := fieldValue(i, p.Field)
	switch p.Kind {
	case PredicateEquals:
		return v == p.Value
	case PredicateNotEquals:
		return v != p.Value
	case PredicateInSet:
		return slices.Contains(p.Values, v)
	case PredicateNotInSet:
		return !slices.Contains(p.Values, v)
	case PredicateSubqueryMembership:
		member := idx != nil && idx.HasWisher(v, p.Subquery.UserID)
		return member != p.Negate
	}
	return false
}

// Match reports whether the interview satisfies every predicate.
func (ps Predicates) Match(i Interview, idx WisherIndex) bool {
	for _, p := range ps {
		if !p.Match(i, idx) {
			return false
		}
	}
	return true
}

// FilterInterviews returns the matching interviews newest first.
func FilterInterviews(items []Interview, ps Predicates, idx WisherIndex) []Interview {
	out := make([]Interview, 0, len(items))
	for _, i := range items {
		if ps.Match(i, idx) {
			out = append(out, i)
		}
	}
	SortNewestFirst(out)
	return out
}

// SortNewestFirst orders by creation time descending, then id descending.
func SortNewestFirst(items []Interview) {
	slices.SortStableFunc(items, func(a, b Interview) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})
}

func fieldValue(i Interview, f InterviewField) int {
	switch f {
	case FieldID:
		return i.ID
	case FieldTopicID:
		return i.TopicID
	case FieldSubmitterID:
		return i.SubmitterID
	case FieldAgreedWisherID:
		return i.AgreedWisherID
	case FieldStatus:
		return i.Status.Code()
	case FieldMode:
		return i.Mode
	}
	return 0
}
