package commands

import (
	"errors"
	"testing"
	"time"
)

var now = time.Date(2026, 3, 30, 18, 0, 0, 0, time.UTC)

func TestParseSupportedCommands(t *testing.T) {
	cases := []struct {
		in       string
		typeWant Type
	}{
		{"/add call landlord", TypeAdd},
		{"section Pets", TypeSection},
		{"preset BANK", TypePreset},
		{"rename Finance stuff", TypeRename},
		{"title Change address online", TypeTitle},
		{"note", TypeNote},
		{"due +3", TypeDue},
		{"set newAddress.city Berlin", TypeSet},
		{"lang de", TypeLang},
		{"country world", TypeCountry},
		{"export csv /tmp/out.csv", TypeExport},
		{"import ~/backup.json", TypeImport},
	}

	for _, tc := range cases {
		cmd, err := Parse(tc.in, now)
		if err != nil {
			t.Fatalf("parse %q failed: %v", tc.in, err)
		}
		if cmd.Type != tc.typeWant {
			t.Fatalf("parse %q type = %s, want %s", tc.in, cmd.Type, tc.typeWant)
		}
	}
}

func TestParseArguments(t *testing.T) {
	cmd, _ := Parse("preset BANK", now)
	if cmd.Preset.Key != "bank" {
		t.Fatalf("preset keys are lower-cased, got %q", cmd.Preset.Key)
	}
	cmd, _ = Parse("set newAddress.street Unter den Linden", now)
	if cmd.Set.Path != "newAddress.street" || cmd.Set.Value != "Unter den Linden" {
		t.Fatalf("unexpected set args: %+v", cmd.Set)
	}
	cmd, _ = Parse("set email", now)
	if cmd.Set.Value != "" {
		t.Fatalf("set without value clears the field, got %+v", cmd.Set)
	}
	cmd, _ = Parse("note", now)
	if cmd.Text.Text != "" {
		t.Fatalf("empty note clears notes, got %q", cmd.Text.Text)
	}
	cmd, _ = Parse("export xlsx", now)
	if cmd.Export.Format != "xlsx" || cmd.Export.Path != "" {
		t.Fatalf("unexpected export args: %+v", cmd.Export)
	}
}

func TestResolveDue(t *testing.T) {
	cases := map[string]string{
		"2026-04-01": "2026-04-01",
		"today":      "2026-03-30",
		"tomorrow":   "2026-03-31",
		"+2":         "2026-04-01",
		"+0":         "2026-03-30",
		"clear":      "",
	}
	for in, want := range cases {
		got, err := ResolveDue(in, now)
		if err != nil {
			t.Fatalf("ResolveDue(%q) failed: %v", in, err)
		}
		if got != want {
			t.Fatalf("ResolveDue(%q) = %q, want %q", in, got, want)
		}
	}
	for _, bad := range []string{"next week", "+x", "-3", "2026-13-40"} {
		if _, err := ResolveDue(bad, now); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

func TestParseInvalidArguments(t *testing.T) {
	for _, in := range []string{"add", "preset", "preset a b", "due", "lang fr", "country FR", "export pdf", "import", "set"} {
		_, err := Parse(in, now)
		var ce *CommandError
		if !errors.As(err, &ce) || ce.Code != ErrCodeInvalidArgument {
			t.Fatalf("%q: expected invalid argument error, got %v", in, err)
		}
	}
}

func TestParseUnknownCommand(t *testing.T) {
	_, err := Parse("/unknown do x", now)
	if err == nil {
		t.Fatal("expected error")
	}
	var ce *CommandError
	if !errors.As(err, &ce) || ce.Code != ErrCodeUnknownCommand {
		t.Fatalf("expected unknown command error, got %v", err)
	}

	_, err = Parse("  / ", now)
	if !errors.As(err, &ce) || ce.Code != ErrCodeEmptyInput {
		t.Fatalf("expected empty input error, got %v", err)
	}
}

func TestExecuteDispatch(t *testing.T) {
	cmd, err := Parse("/add write to bank", now)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	called := false
	res, err := Execute(cmd, Handlers{
		Add: func(a TextArgs) (Result, error) {
			called = true
			if a.Text != "write to bank" {
				t.Fatalf("unexpected title: %q", a.Text)
			}
			return Result{Message: "ok"}, nil
		},
	})
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if !called || res.Message != "ok" {
		t.Fatalf("dispatch failed, called=%v res=%+v", called, res)
	}
}

func TestExecuteMissingHandler(t *testing.T) {
	cmd, err := Parse("country DE", now)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	_, err = Execute(cmd, Handlers{})
	if err == nil {
		t.Fatal("expected error")
	}
	var ce *CommandError
	if !errors.As(err, &ce) || ce.Code != ErrCodeHandlerMissing {
		t.Fatalf("expected missing handler error, got %v", err)
	}
}
