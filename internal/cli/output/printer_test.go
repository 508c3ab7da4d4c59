package output

import (
	"bytes"
	"strings"
	"testing"
)

func newBufferPrinter(quiet bool) (*Printer, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	p := &Printer{out: &stdout, err: &stderr, useColors: false, quiet: quiet}
	return p, &stdout, &stderr
}

func TestPrinter_SuccessPlain(t *testing.T) {
	p, stdout, _ := newBufferPrinter(false)

	p.Success("listing posted: %s", "j1")

	if got := stdout.String(); got != "[OK] listing posted: j1\n" {
		t.Errorf("unexpected output: %q", got)
	}
}

func TestPrinter_QuietSuppressesInfo(t *testing.T) {
	p, stdout, stderr := newBufferPrinter(true)

	p.Info("page 1 of 3")
	p.Success("done")
	p.Error("boom")

	if stdout.Len() != 0 {
		t.Errorf("quiet mode should suppress stdout, got %q", stdout.String())
	}
	if !strings.Contains(stderr.String(), "boom") {
		t.Errorf("errors must not be suppressed, got %q", stderr.String())
	}
}

func TestPrinter_StatusBadgePlain(t *testing.T) {
	p, _, _ := newBufferPrinter(false)

	if got := p.StatusBadge("offered"); got != "[offered]" {
		t.Errorf("StatusBadge = %q, want %q", got, "[offered]")
	}
}

func TestCLIError_Error(t *testing.T) {
	err := &CLIError{
		Summary:  "not logged in",
		ExitCode: ExitAuth,
	}
	if err.Error() != "not logged in" {
		t.Errorf("Error() = %q, want %q", err.Error(), "not logged in")
	}
}

func TestFormatError_AllFields(t *testing.T) {
	p, _, stderr := newBufferPrinter(false)

	p.FormatError(&CLIError{
		Summary:    "this command requires the employer role",
		Detail:     "you are signed in as alice@example.com (job_seeker)",
		Suggestion: "Log in with an account that has the right role",
		ExitCode:   ExitAuth,
	})

	out := stderr.String()
	if !strings.Contains(out, "this command requires the employer role") {
		t.Errorf("missing summary in output: %q", out)
	}
	if !strings.Contains(out, "Cause: you are signed in as alice@example.com (job_seeker)") {
		t.Errorf("missing detail in output: %q", out)
	}
	if !strings.Contains(out, "Suggestion: Log in with an account that has the right role") {
		t.Errorf("missing suggestion in output: %q", out)
	}
}

func TestFormatError_NoDetail(t *testing.T) {
	p, _, stderr := newBufferPrinter(false)

	p.FormatError(&CLIError{Summary: "not logged in", ExitCode: ExitAuth})

	out := stderr.String()
	if strings.Contains(out, "Cause:") {
		t.Errorf("should not contain Cause line when Detail is empty: %q", out)
	}
}
