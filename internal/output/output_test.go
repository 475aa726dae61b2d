package output

import (
	"bytes"
	"context"
	"os"
	"testing"
)

func TestPrinter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p := FromContext(WithPrinter(context.Background(), &buf))
	if p.Writer() != &buf {
		t.Fatal("Writer() is not the writer passed to WithPrinter")
	}

	p.Print("✓ Created worktree", " ")
	p.Printf("%s\n", "feature-x-1")
	p.Println("  path:", "/src/feature-x-1")

	want := "✓ Created worktree feature-x-1\n  path: /src/feature-x-1\n"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestFromContext_DefaultsToStdout(t *testing.T) {
	t.Parallel()
	if FromContext(context.Background()).Writer() != os.Stdout {
		t.Error("a context without a printer should write to stdout")
	}
	if New(os.Stderr).Writer() != os.Stderr {
		t.Error("New() should keep its writer")
	}
}
