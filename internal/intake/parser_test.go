package intake

import (
	"encoding/json"
	"testing"

	"github.com/Irtizzasmartlog/AIFuneral/internal/domain/entities"
)

func mustField(t *testing.T, key entities.FieldKey) Field {
	t.Helper()
	f, ok := FieldFor(key)
	if !ok {
		t.Fatalf("field %s not in schema", key)
	}
	return f
}

func TestParseAnswer_Date(t *testing.T) {
	field := mustField(t, entities.FieldDeceasedDOD)

	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"01/08/2026", "2026-08-01", true},
		{"1-8-26", "2026-08-01", true},
		{"early September", "early september", true},
		{"skip", "", false},
		{"no", "", false},
		{"", "", false},
	}
	for _, c := range cases {
		got, ok := ParseAnswer(field, c.in)
		if ok != c.ok || got != c.want {
			t.Fatalf("ParseAnswer(date, %q) = (%q, %v), want (%q, %v)", c.in, got, ok, c.want, c.ok)
		}
	}
}

func TestParseAnswer_Number(t *testing.T) {
	field := mustField(t, entities.FieldExpectedAttendeesMax)

	got, ok := ParseAnswer(field, "about 1,500 people")
	if !ok || got != "1500" {
		t.Fatalf("expected 1500, got (%q, %v)", got, ok)
	}

	if _, ok := ParseAnswer(field, "fifty or so"); ok {
		t.Fatalf("digitless input must not parse")
	}
}

func TestParseAnswer_ServiceType(t *testing.T) {
	field := mustField(t, entities.FieldServiceType)

	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"a burial please", "burial", true},
		{"Cremation", "cremation", true},
		{"not sure yet", "", false},
	}
	for _, c := range cases {
		got, ok := ParseAnswer(field, c.in)
		if ok != c.ok || got != c.want {
			t.Fatalf("ParseAnswer(serviceType, %q) = (%q, %v), want (%q, %v)", c.in, got, ok, c.want, c.ok)
		}
	}
}

func TestParseAnswer_State(t *testing.T) {
	field := mustField(t, entities.FieldState)

	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"nsw", "NSW", true},
		{"qld", "QLD", true},
		{"Tasmania", "TAS", true},
		{"zz", "", false},
	}
	for _, c := range cases {
		got, ok := ParseAnswer(field, c.in)
		if ok != c.ok || got != c.want {
			t.Fatalf("ParseAnswer(state, %q) = (%q, %v), want (%q, %v)", c.in, got, ok, c.want, c.ok)
		}
	}
}

func TestParseAnswer_AddOns(t *testing.T) {
	field := mustField(t, entities.FieldAddOns)

	t.Run("keywords set the matching flags", func(t *testing.T) {
		got, ok := ParseAnswer(field, "Livestream and flowers please")
		if !ok {
			t.Fatalf("expected parse")
		}
		var flags entities.AddOnFlags
		if err := json.Unmarshal([]byte(got), &flags); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if !flags.Livestream || !flags.Flowers {
			t.Fatalf("expected livestream and flowers, got %+v", flags)
		}
		if flags.Catering || flags.Invitations {
			t.Fatalf("unmentioned flags must stay false, got %+v", flags)
		}
	})

	t.Run("none yields the empty flag set, not a skip", func(t *testing.T) {
		for _, in := range []string{"none", "no"} {
			got, ok := ParseAnswer(field, in)
			if !ok {
				t.Fatalf("%q must parse", in)
			}
			var flags entities.AddOnFlags
			if err := json.Unmarshal([]byte(got), &flags); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if flags != (entities.AddOnFlags{}) {
				t.Fatalf("expected empty flags for %q, got %+v", in, flags)
			}
		}
	})

	t.Run("blank is no answer", func(t *testing.T) {
		if _, ok := ParseAnswer(field, "  "); ok {
			t.Fatalf("blank input must not parse")
		}
	})
}

func TestParseAnswer_PreferredName(t *testing.T) {
	field := mustField(t, entities.FieldDeceasedPreferredName)

	if _, ok := ParseAnswer(field, "same"); ok {
		t.Fatalf("'same' must fall back to the legal name")
	}
	if _, ok := ParseAnswer(field, "SAME"); ok {
		t.Fatalf("case-insensitive 'same' must fall back")
	}
	got, ok := ParseAnswer(field, "Johnny")
	if !ok || got != "Johnny" {
		t.Fatalf("expected Johnny, got (%q, %v)", got, ok)
	}
}

func TestParseAnswer_Text(t *testing.T) {
	field := mustField(t, entities.FieldNotes)

	// "no" is a legitimate free-text answer; only skip words are rejected.
	got, ok := ParseAnswer(field, "no")
	if !ok || got != "no" {
		t.Fatalf("expected 'no' to be kept, got (%q, %v)", got, ok)
	}
	for _, in := range []string{"", "skip", "N/A"} {
		if _, ok := ParseAnswer(field, in); ok {
			t.Fatalf("%q must not parse as a text answer", in)
		}
	}
}
