package query

import (
	"strings"
	"testing"
	"time"
)

func TestSerialize_Nil(t *testing.T) {
	if got := Serialize(nil); got != "" {
		t.Errorf("Serialize(nil) = %q, want empty", got)
	}
}

func TestSerialize_Leaves(t *testing.T) {
	tests := []struct {
		name   string
		clause Clause
		want   string
	}{
		{"name contains", NameContains("Weekly"), "name contains 'Weekly'"},
		{"fullText contains", FullTextContains("Transcrição"), "fullText contains 'Transcrição'"},
		{"in parents", InParents("F1"), "'F1' in parents"},
		{"not trashed", NotTrashed(), "trashed = false"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Serialize(tt.clause); got != tt.want {
				t.Errorf("Serialize() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSerialize_Escaping(t *testing.T) {
	got := Serialize(NameContains(`O'Neill \ Co`))
	want := `name contains 'O\'Neill \\ Co'`
	if got != want {
		t.Errorf("Serialize() = %q, want %q", got, want)
	}
}

func TestModifiedAfter_RFC3339(t *testing.T) {
	ts := time.Date(2026, 3, 10, 12, 30, 0, 0, time.UTC)
	got := Serialize(ModifiedAfter(ts))
	want := "modifiedTime > '2026-03-10T12:30:00Z'"
	if got != want {
		t.Errorf("Serialize() = %q, want %q", got, want)
	}
}

func TestAnd_DropsNilFragments(t *testing.T) {
	got := Serialize(And(NotTrashed(), nil, NameContains("x"), nil))
	want := "trashed = false and name contains 'x'"
	if got != want {
		t.Errorf("Serialize() = %q, want %q", got, want)
	}
	if strings.Contains(got, "and and") {
		t.Error("dangling operator in serialized query")
	}
}

func TestAnd_SingleUnwrapped(t *testing.T) {
	got := Serialize(And(nil, NotTrashed(), nil))
	if got != "trashed = false" {
		t.Errorf("Serialize() = %q", got)
	}
}

func TestAnd_AllNil(t *testing.T) {
	if c := And(nil, nil); c != nil {
		t.Errorf("And(nil, nil) = %v, want nil", c)
	}
}

func TestOr_Group(t *testing.T) {
	got := Serialize(Or(NameContains("a"), NameContains("b")))
	want := "(name contains 'a' or name contains 'b')"
	if got != want {
		t.Errorf("Serialize() = %q, want %q", got, want)
	}
}

func TestOr_NestedInsideAnd(t *testing.T) {
	clause := And(NotTrashed(), Or(InParents("F1"), InParents("F2")))
	got := Serialize(clause)
	want := "trashed = false and ('F1' in parents or 'F2' in parents)"
	if got != want {
		t.Errorf("Serialize() = %q, want %q", got, want)
	}
}

func TestParents(t *testing.T) {
	tests := []struct {
		name string
		ids  []string
		want string
	}{
		{"empty", nil, ""},
		{"blank ids dropped", []string{"", ""}, ""},
		{"single", []string{"F1"}, "'F1' in parents"},
		{"multiple", []string{"F1", "F2"}, "('F1' in parents or 'F2' in parents)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Serialize(Parents(tt.ids)); got != tt.want {
				t.Errorf("Serialize(Parents(%v)) = %q, want %q", tt.ids, got, tt.want)
			}
		})
	}
}

func TestTypes_RecognizedTags(t *testing.T) {
	tests := []struct {
		name string
		tags []string
		want string
	}{
		{"weekly", []string{"weekly"}, "name contains 'Weekly de Alta Performance'"},
		{"daily", []string{"daily"}, "name contains 'Daily Operacional'"},
		{"check-in", []string{"check-in"}, "(name contains 'check-in' or name contains 'checkin')"},
		{"checkin variant", []string{"checkin"}, "(name contains 'check-in' or name contains 'checkin')"},
		{"planejamento", []string{"planejamento"}, "name contains 'planejamento'"},
		{
			"estrategia without accent",
			[]string{"estrategia"},
			"(name contains 'estratégia' or name contains 'estrategia')",
		},
		{
			"estratégia with accent",
			[]string{"estratégia"},
			"(name contains 'estratégia' or name contains 'estrategia')",
		},
		{
			"trafego both spellings",
			[]string{"tráfego"},
			"(name contains 'tráfego' or name contains 'trafego')",
		},
		{"uppercase tag", []string{"WEEKLY"}, "name contains 'Weekly de Alta Performance'"},
		{"unrecognized ignored", []string{"podcast"}, ""},
		{
			"mix keeps recognized only",
			[]string{"weekly", "podcast", "daily"},
			"(name contains 'Weekly de Alta Performance' or name contains 'Daily Operacional')",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Serialize(Types(tt.tags)); got != tt.want {
				t.Errorf("Serialize(Types(%v)) = %q, want %q", tt.tags, got, tt.want)
			}
		})
	}
}

func TestClient(t *testing.T) {
	if c := Client(""); c != nil {
		t.Error("Client(\"\") should be nil")
	}
	if c := Client("   "); c != nil {
		t.Error("Client of blanks should be nil")
	}

	got := Serialize(Client("Acme"))
	want := "(name contains 'Acme' or fullText contains 'Acme')"
	if got != want {
		t.Errorf("Serialize(Client) = %q, want %q", got, want)
	}
}

func TestClient_EscapesQuotes(t *testing.T) {
	got := Serialize(Client("D'Angelo"))
	want := `(name contains 'D\'Angelo' or fullText contains 'D\'Angelo')`
	if got != want {
		t.Errorf("Serialize(Client) = %q, want %q", got, want)
	}
}

func TestWindow(t *testing.T) {
	now := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	if c := Window(0, now); c != nil {
		t.Error("Window(0) should be nil")
	}
	if c := Window(-5, now); c != nil {
		t.Error("negative window should be nil")
	}

	got := Serialize(Window(30, now))
	want := "modifiedTime > '2026-04-01T00:00:00Z'"
	if got != want {
		t.Errorf("Serialize(Window) = %q, want %q", got, want)
	}
}

func TestDefaultTypes(t *testing.T) {
	got := Serialize(DefaultTypes())
	want := "(name contains 'Weekly de Alta Performance' or name contains 'Daily Operacional'" +
		" or name contains 'check-in' or name contains 'checkin')"
	if got != want {
		t.Errorf("Serialize(DefaultTypes) = %q, want %q", got, want)
	}
}

func TestDefaultIntent(t *testing.T) {
	got := Serialize(DefaultIntent())
	for _, kw := range []string{"planejamento", "estratégia", "estrategia", "tráfego", "trafego"} {
		if !strings.Contains(got, "name contains '"+kw+"'") {
			t.Errorf("DefaultIntent missing keyword %q in %q", kw, got)
		}
	}
}

func TestTranscript(t *testing.T) {
	got := Serialize(Transcript())
	want := "(name contains 'Anotações do Gemini' or fullText contains 'Transcrição')"
	if got != want {
		t.Errorf("Serialize(Transcript) = %q, want %q", got, want)
	}
}
