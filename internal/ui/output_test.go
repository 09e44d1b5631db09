package ui

import (
	"bytes"
	"testing"
)

func TestOutputPrefixes(t *testing.T) {
	tests := []struct {
		name   string
		print  func(u *UI)
		expect string
	}{
		{"info", func(u *UI) { u.Info("hello") }, "[INFO] hello\n"},
		{"infof", func(u *UI) { u.Infof("Processing %s ...", "wikidump/") }, "[INFO] Processing wikidump/ ...\n"},
		{"success", func(u *UI) { u.Successf("%d done", 3) }, "[✓] 3 done\n"},
		{"warning", func(u *UI) { u.Warning("careful") }, "[WARNING] careful\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			u := NewWithWriter(&buf)
			u.SetNoColor(true)

			tt.print(u)

			if buf.String() != tt.expect {
				t.Errorf("output = %q, want %q", buf.String(), tt.expect)
			}
		})
	}
}

func TestPromptYesNoNonInteractive(t *testing.T) {
	u := NewWithWriter(&bytes.Buffer{})
	u.SetNonInteractive(true)

	for _, def := range []bool{true, false} {
		got, err := u.PromptYesNo("Overwrite?", def)
		if err != nil {
			t.Fatalf("PromptYesNo() error = %v", err)
		}
		if got != def {
			t.Errorf("PromptYesNo() = %v, want default %v", got, def)
		}
	}
}

func TestNonInteractiveToggle(t *testing.T) {
	u := New()
	if u.IsNonInteractive() {
		t.Error("New() should be interactive")
	}
	u.SetNonInteractive(true)
	if !u.IsNonInteractive() {
		t.Error("SetNonInteractive(true) had no effect")
	}
}
