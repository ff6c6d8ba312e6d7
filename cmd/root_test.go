package cmd

import (
	"strings"
	"testing"
)

func TestVersionTemplate(t *testing.T) {
	SetVersionInfo("1.2.3", "abc1234", "2026-08-25")
	got := versionTemplate()
	for _, want := range []string{"winnow 1.2.3", "abc1234", "2026-08-25"} {
		if !strings.Contains(got, want) {
			t.Errorf("versionTemplate() = %q, missing %q", got, want)
		}
	}

	SetVersionInfo("dev", "none", "unknown")
	got = versionTemplate()
	if strings.Contains(got, "commit") {
		t.Errorf("versionTemplate() = %q, should omit commit without build info", got)
	}
}

func TestStressCommandRegistered(t *testing.T) {
	found := false
	for _, c := range rootCmd.Commands() {
		if c.Name() == "stress" {
			found = true
		}
	}
	if !found {
		t.Error("stress subcommand not registered on the root command")
	}
}
