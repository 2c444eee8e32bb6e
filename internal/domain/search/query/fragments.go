package query

import (
	"strings"
	"time"
)

// Name patterns for the document types the agency produces. The accented and
// plain spellings are both queried because Drive substring matching is literal.
const (
	WeeklyPattern = "Weekly de Alta Performance"
	DailyPattern  = "Daily Operacional"
)

// Transcript markers used by the meeting-notes fallback pass.
const (
	TranscriptNameMarker     = "Anotações do Gemini"
	TranscriptFullTextMarker = "Transcrição"
)

// Parents restricts to the whitelisted folders. Nil when the list is empty.
func Parents(folderIDs []string) Clause {
	parts := make([]Clause, 0, len(folderIDs))
	for _, id := range folderIDs {
		if id == "" {
			continue
		}
		parts = append(parts, InParents(id))
	}
	return Or(parts...)
}

// Types maps recognized type tags to name patterns. Unrecognized tags are
// ignored; nil is returned when nothing matched.
func Types(tags []string) Clause {
	parts := make([]Clause, 0, len(tags))
	for _, tag := range tags {
		switch strings.ToLower(tag) {
		case "weekly":
			parts = append(parts, NameContains(WeeklyPattern))
		case "daily":
			parts = append(parts, NameContains(DailyPattern))
		case "check-in", "checkin":
			parts = append(parts, checkInPattern())
		case "planejamento":
			parts = append(parts, NameContains("planejamento"))
		case "estratégia", "estrategia":
			parts = append(parts, Or(NameContains("estratégia"), NameContains("estrategia")))
		case "tráfego", "trafego":
			parts = append(parts, Or(NameContains("tráfego"), NameContains("trafego")))
		}
	}
	return Or(parts...)
}

// Client matches the client name in the file name or indexed content.
// Nil when the name is blank.
func Client(name string) Clause {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}
	return Or(NameContains(name), FullTextContains(name))
}

// Window restricts to files modified in the last days. Nil when days <= 0,
// meaning no date restriction.
func Window(days int, now time.Time) Clause {
	if days <= 0 {
		return nil
	}
	return ModifiedAfter(now.Add(-time.Duration(days) * 24 * time.Hour))
}

// DefaultTypes is the type pattern used when the caller names no types:
// the OR of the four built-in report name patterns.
func DefaultTypes() Clause {
	return Or(
		NameContains(WeeklyPattern),
		NameContains(DailyPattern),
		NameContains("check-in"),
		NameContains("checkin"),
	)
}

// DefaultIntent is the intent pattern used when the caller names no types:
// planning/strategy/traffic keywords with their accent variants.
func DefaultIntent() Clause {
	return Or(
		NameContains("planejamento"),
		NameContains("estratégia"),
		NameContains("estrategia"),
		NameContains("tráfego"),
		NameContains("trafego"),
	)
}

// Transcript matches meeting transcription artifacts by name or content.
func Transcript() Clause {
	return Or(
		NameContains(TranscriptNameMarker),
		FullTextContains(TranscriptFullTextMarker),
	)
}

func checkInPattern() Clause {
	return Or(NameContains("check-in"), NameContains("checkin"))
}
