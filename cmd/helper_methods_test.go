package cmd

import (
	"log"
	"strings"
	"testing"
)

func TestStartSpinner_LeavesStdLogAlone(t *testing.T) {
	for _, quiet := range []bool{true, false} {
		before := log.Writer()

		output, err := captureOutput(func() error {
			s, cleanup := startSpinner("Saving...", !quiet)
			if log.Writer() != before {
				t.Errorf("quiet=%t: standard logger output was redirected", quiet)
			}
			s.FinalMSG = "done"
			cleanup()
			return nil
		})
		if err != nil {
			t.Fatal(err)
		}

		if log.Writer() != before {
			t.Errorf("quiet=%t: standard logger output not the same after cleanup", quiet)
		}
		if !strings.Contains(output, "done\n") {
			t.Errorf("quiet=%t: expected final message with newline, got %q", quiet, output)
		}
	}
}
