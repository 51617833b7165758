package report

import (
	"strings"

	"go-warehouse-reports/internal/model"
	"go-warehouse-reports/pkg/utils"
)

// ApplyFilters returns the rows surviving every predicate. Predicates
// are stateless and compose by logical AND, so their order never
// changes the surviving set.
func ApplyFilters(rows []model.Record, filters []model.Filter) []model.Record {
	if len(filters) == 0 {
		return rows
	}
	out := rows[:0:0]
	for _, row := range rows {
		if keepRow(row, filters) {
			out = append(out, row)
		}
	}
	return out
}

func keepRow(row model.Record, filters []model.Filter) bool {
	for _, f := range filters {
		if !matches(row, f) {
			return false
		}
	}
	return true
}

// matches applies a single predicate. A missing value never matches a
// token, so it fails inclusion predicates and survives exclusion
// predicates unless the rule sets MissingExcluded.
func matches(row model.Record, f model.Filter) bool {
	raw, present := row[f.Column]
	missing := !present || utils.IsBlank(raw)
	value := utils.FormatValue(raw)

	switch f.Kind {
	case model.FilterContains:
		if missing {
			return false
		}
		return containsAny(value, f.Tokens, f.Fold)

	case model.FilterNotContains:
		if missing {
			return !f.MissingExcluded
		}
		return !containsAny(value, f.Tokens, f.Fold)

	case model.FilterEquals:
		if missing {
			return false
		}
		return equalsAny(value, f.Tokens, f.Fold)

	case model.FilterNotEquals:
		if missing {
			return !f.MissingExcluded
		}
		return !equalsAny(value, f.Tokens, f.Fold)

	case model.FilterPrefixExclude:
		if missing {
			return true
		}
		for _, prefix := range f.Tokens {
			if strings.HasPrefix(strings.ToUpper(value), strings.ToUpper(prefix)) {
				return false
			}
		}
		return true

	default:
		// Unknown predicate kinds never drop data.
		return true
	}
}

func containsAny(value string, tokens []string, fold bool) bool {
	if fold {
		value = strings.ToLower(value)
	}
	for _, tok := range tokens {
		if fold {
			tok = strings.ToLower(tok)
		}
		if strings.Contains(value, tok) {
			return true
		}
	}
	return false
}

func equalsAny(value string, tokens []string, fold bool) bool {
	for _, tok := range tokens {
		if fold {
			if strings.EqualFold(value, tok) {
				return true
			}
		} else if value == tok {
			return true
		}
	}
	return false
}
