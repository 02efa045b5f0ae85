package cmd

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// writeScript creates an executable opsheet-<name> shell script in dir.
func writeScript(t *testing.T, dir, name, body string) {
	t.Helper()
	path := filepath.Join(dir, "opsheet-"+name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755); err != nil {
		t.Fatalf("Failed to write opsheet-%s: %v", name, err)
	}
}

func TestRunExtension(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("extension scripts need a POSIX shell")
	}
	tempDir := t.TempDir()
	out := filepath.Join(tempDir, "env.txt")
	writeScript(t, tempDir, "hello", `echo "$OPSHEET_CONFIG $OPSHEET_VERBOSE $OPSHEET_FORMAT $1" > "`+out+`"`)
	writeScript(t, tempDir, "fail", "exit 3")
	t.Setenv("PATH", tempDir+string(os.PathListSeparator)+os.Getenv("PATH"))

	*configFile, *format, *Verbose = "custom.toml", "json", true
	t.Cleanup(func() { *configFile, *format, *Verbose = "opsheet.toml", "", false })

	found, code := RunExtension("hello", []string{"world"})
	if !found || code != 0 {
		t.Fatalf("RunExtension(hello) = %v, %d, want true, 0", found, code)
	}
	content, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("extension did not run: %v", err)
	}
	if got, want := strings.TrimSpace(string(content)), "custom.toml true json world"; got != want {
		t.Errorf("extension environment = %q, want %q", got, want)
	}

	if found, code := RunExtension("fail", nil); !found || code != 3 {
		t.Errorf("RunExtension(fail) = %v, %d, want true, 3", found, code)
	}
	if found, _ := RunExtension("missing", nil); found {
		t.Error("RunExtension(missing) found an extension")
	}
}
