package interview

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/heartmarshall/mockinterview-backend/internal/domain"
)

// columnFor maps a filterable field to its SQL expression over interviews i.
// A NULL topic reads as the default topic, so it is filtered the same way.
func columnFor(f domain.InterviewField) (string, error) {
	switch f {
	case domain.FieldID:
		return "i.id", nil
	case domain.FieldTopicID:
		return fmt.Sprintf("COALESCE(i.topic_id, %d)", domain.DefaultTopicID), nil
	case domain.FieldSubmitterID:
		return "i.submitter_id", nil
	case domain.FieldAgreedWisherID:
		return "i.agreed_wisher_id", nil
	case domain.FieldStatus:
		return "i.status", nil
	case domain.FieldMode:
		return "i.mode", nil
	}
	return "", fmt.Errorf("unsupported filter field %q", f)
}

// wisherInterviewIDs selects the interviews userID applied to. It keeps ?
// placeholders; the enclosing statement renumbers them.
func wisherInterviewIDs(userID int) sq.SelectBuilder {
	return sq.Select("w.interview_id").
		From("wishers w").
		Where(sq.Eq{"w.user_id": userID})
}

// lowerPredicate converts a domain predicate into a squirrel condition.
func lowerPredicate(p domain.Predicate) (sq.Sqlizer, error) {
	col, err := columnFor(p.Field)
	if err != nil {
		return nil, err
	}

	switch p.Kind {
	case domain.PredicateEquals:
		return sq.Eq{col: p.Value}, nil
	case domain.PredicateNotEquals:
		return sq.NotEq{col: p.Value}, nil
	case domain.PredicateInSet:
		return sq.Eq{col: p.Values}, nil
	case domain.PredicateNotInSet:
		return sq.NotEq{col: p.Values}, nil
	case domain.PredicateSubqueryMembership:
		subSQL, args, err := wisherInterviewIDs(p.Subquery.UserID).ToSql()
		if err != nil {
			return nil, fmt.Errorf("build wisher subquery: %w", err)
		}
		op := "IN"
		if p.Negate {
			op = "NOT IN"
		}
		return sq.Expr(col+" "+op+" ("+subSQL+")", args...), nil
	}

	return nil, fmt.Errorf("unsupported predicate kind %s", p.Kind)
}

// applyPredicates ANDs every predicate onto the builder.
func applyPredicates(b sq.SelectBuilder, preds domain.Predicates) (sq.SelectBuilder, error) {
	for _, p := range preds {
		cond, err := lowerPredicate(p)
		if err != nil {
			return b, err
		}
		b = b.Where(cond)
	}
	return b, nil
}
