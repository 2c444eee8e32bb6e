// Package score assigns heuristic relevance scores to Drive candidates.
//
// Scoring is a fixed, ordered rule table. Every rule is independent and
// additive, and each fired rule contributes both its weight and a
// human-readable reason, in table order, so results stay explainable.
package score

import (
	"strings"

	"github.com/altadigital/driveseek/internal/domain/file"
	"github.com/altadigital/driveseek/internal/domain/search/query"
)

// Rule weights.
const (
	WeightWhitelistFolder = 4
	WeightWeekly          = 3
	WeightDaily           = 3
	WeightCheckIn         = 3
	WeightClientName      = 2
	WeightIntentKeyword   = 1
	WeightGoogleApps      = 1
)

// inputs carries the request-side context rules match against.
type inputs struct {
	client    string // lowercased, "" when absent
	whitelist map[string]struct{}
}

type rule struct {
	reason  string
	weight  int
	matches func(f *file.Record, name string, in *inputs) bool
}

// rules is evaluated top to bottom; order defines reason emission order.
var rules = []rule{
	{
		reason: "Está em pasta whitelisted",
		weight: WeightWhitelistFolder,
		matches: func(f *file.Record, _ string, in *inputs) bool {
			for _, p := range f.Parents() {
				if _, ok := in.whitelist[p]; ok {
					return true
				}
			}
			return false
		},
	},
	{
		reason: "Bate padrão de Weekly",
		weight: WeightWeekly,
		matches: func(_ *file.Record, name string, _ *inputs) bool {
			return strings.Contains(name, strings.ToLower(query.WeeklyPattern))
		},
	},
	{
		reason: "Bate padrão de Daily",
		weight: WeightDaily,
		matches: func(_ *file.Record, name string, _ *inputs) bool {
			return strings.Contains(name, strings.ToLower(query.DailyPattern))
		},
	},
	{
		reason: "Bate padrão de Check-in",
		weight: WeightCheckIn,
		matches: func(_ *file.Record, name string, _ *inputs) bool {
			return strings.Contains(name, "check-in") || strings.Contains(name, "checkin")
		},
	},
	{
		reason: "Contém cliente no nome",
		weight: WeightClientName,
		matches: func(_ *file.Record, name string, in *inputs) bool {
			return in.client != "" && strings.Contains(name, in.client)
		},
	},
	{
		reason: "Contém termo de intenção",
		weight: WeightIntentKeyword,
		matches: func(_ *file.Record, name string, _ *inputs) bool {
			for _, kw := range []string{"planejamento", "estratégia", "estrategia", "tráfego", "trafego"} {
				if strings.Contains(name, kw) {
					return true
				}
			}
			return false
		},
	},
	{
		reason: "Arquivo Google (Docs/Slides/Sheets)",
		weight: WeightGoogleApps,
		matches: func(f *file.Record, _ string, _ *inputs) bool {
			return f.IsGoogleApps()
		},
	},
}

// Evaluate scores a candidate against the request context. The returned
// reasons list one entry per fired rule, in rule order; a file matching
// nothing scores 0 with no reasons.
func Evaluate(f *file.Record, client string, folderWhitelist []string) (int, []string) {
	in := inputs{
		client:    strings.ToLower(strings.TrimSpace(client)),
		whitelist: make(map[string]struct{}, len(folderWhitelist)),
	}
	for _, id := range folderWhitelist {
		in.whitelist[id] = struct{}{}
	}

	name := strings.ToLower(f.Name())

	total := 0
	var reasons []string
	for _, r := range rules {
		if r.matches(f, name, &in) {
			total += r.weight
			reasons = append(reasons, r.reason)
		}
	}
	return total, reasons
}
