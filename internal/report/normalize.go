package report

import (
	"strings"

	"go-warehouse-reports/internal/model"
	"go-warehouse-reports/pkg/utils"
)

// NormalizeSKU canonicalizes a raw SKU or warehouse code: every
// case-insensitive occurrence of "loose" is removed and every character
// that is not an ASCII letter or digit is stripped. The result is a
// fixed point: normalizing an already-normalized code returns it
// unchanged, even when stripping separators splices a new "loose"
// together.
func NormalizeSKU(raw string) string {
	s := stripAlnum(removeLoose(raw))
	for {
		next := removeLoose(s)
		if next == s {
			return s
		}
		s = next
	}
}

func removeLoose(s string) string {
	for {
		idx := strings.Index(strings.ToLower(s), "loose")
		if idx < 0 {
			return s
		}
		s = s[:idx] + s[idx+len("loose"):]
	}
}

func stripAlnum(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ApplyNormalize canonicalizes the configured columns in place. A
// missing cell normalizes to the empty string rather than failing.
func ApplyNormalize(rows []model.Record, rules []model.NormalizeRule) {
	for _, rule := range rules {
		for _, row := range rows {
			s := utils.FormatValue(row[rule.Column])
			if rule.Trim {
				s = strings.TrimSpace(s)
			}
			switch rule.Casing {
			case model.CaseLower:
				s = strings.ToLower(s)
			case model.CaseUpper:
				s = strings.ToUpper(s)
			}
			if rule.SKUCode {
				s = NormalizeSKU(s)
			}
			row[rule.Column] = s
		}
	}
}
