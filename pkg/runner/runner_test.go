package runner_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yaklabco/htmltomd/pkg/config"
	"github.com/yaklabco/htmltomd/pkg/runner"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestRun_ConvertsSingleFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := filepath.Join(dir, "page.html")
	writeFile(t, input, "<h1>Title</h1>\n<p>Body.</p>\n")

	result, err := runner.New().Run(context.Background(), runner.Options{
		Paths:      []string{input},
		WorkingDir: dir,
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if result.Stats.FilesDiscovered != 1 {
		t.Fatalf("expected 1 file discovered, got %d", result.Stats.FilesDiscovered)
	}
	if result.Stats.FilesConverted != 1 {
		t.Fatalf("expected 1 file converted, got %d", result.Stats.FilesConverted)
	}
	if result.Stats.FilesErrored != 0 {
		t.Fatalf("expected no errors, got %d", result.Stats.FilesErrored)
	}

	outPath := strings.TrimSuffix(input, ".html") + ".md"
	content, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(content), "Title") {
		t.Errorf("expected output to contain %q, got: %s", "Title", content)
	}
}

func TestRun_SkipsUnchangedOutput(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := filepath.Join(dir, "page.html")
	writeFile(t, input, "<p>Hello</p>")

	opts := runner.Options{Paths: []string{input}, WorkingDir: dir}

	first, err := runner.New().Run(context.Background(), opts)
	if err != nil {
		t.Fatalf("first Run() error = %v", err)
	}
	if first.Stats.FilesConverted != 1 {
		t.Fatalf("expected first run to convert 1 file, got %d", first.Stats.FilesConverted)
	}

	second, err := runner.New().Run(context.Background(), opts)
	if err != nil {
		t.Fatalf("second Run() error = %v", err)
	}
	if second.Stats.FilesSkipped != 1 {
		t.Fatalf("expected second run to skip 1 unchanged file, got %d", second.Stats.FilesSkipped)
	}
}

func TestRun_NoFilesFound(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	result, err := runner.New().Run(context.Background(), runner.Options{
		Paths:      []string{dir},
		WorkingDir: dir,
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if result.Stats.FilesDiscovered != 0 {
		t.Errorf("expected 0 files discovered, got %d", result.Stats.FilesDiscovered)
	}
	if result.HasFailures() {
		t.Error("expected no failures for an empty directory")
	}
}

func TestRun_OutputDirMirrorsRelativePaths(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	sub := filepath.Join(dir, "docs")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	input := filepath.Join(sub, "page.html")
	writeFile(t, input, "<p>Hello</p>")

	outDir := filepath.Join(dir, "out")

	result, err := runner.New().Run(context.Background(), runner.Options{
		Paths:      []string{sub},
		WorkingDir: dir,
		OutputDir:  outDir,
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if result.Stats.FilesConverted != 1 {
		t.Fatalf("expected 1 file converted, got %d", result.Stats.FilesConverted)
	}

	expected := filepath.Join(outDir, "docs", "page.md")
	if _, err := os.Stat(expected); err != nil {
		t.Errorf("expected output at %s: %v", expected, err)
	}
}

func TestRun_RemoveTagsConfig(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := filepath.Join(dir, "page.html")
	writeFile(t, input, "<p>Keep this</p><script>drop this</script>")

	cfg := config.NewConfig()
	cfg.RemoveTags = []string{"script"}

	_, err := runner.New().Run(context.Background(), runner.Options{
		Paths:      []string{input},
		WorkingDir: dir,
		Config:     cfg,
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	outPath := strings.TrimSuffix(input, ".html") + ".md"
	content, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if strings.Contains(string(content), "drop this") {
		t.Errorf("expected removed tag content to be stripped, got: %s", content)
	}
	if !strings.Contains(string(content), "Keep this") {
		t.Errorf("expected kept content to survive, got: %s", content)
	}
}

func TestRun_ReferenceLinkNumbersDoNotCrossPollinateBetweenFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	fileA := filepath.Join(dir, "a.html")
	fileB := filepath.Join(dir, "b.html")
	writeFile(t, fileA, `<p><a href="https://a.example">a</a></p>`)
	writeFile(t, fileB, `<p><a href="https://b.example">b</a></p>`)

	cfg := config.NewConfig()
	cfg.LinkStyle = "referenced"

	result, err := runner.New().Run(context.Background(), runner.Options{
		Paths:      []string{fileA, fileB},
		WorkingDir: dir,
		Config:     cfg,
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if result.Stats.FilesConverted != 2 {
		t.Fatalf("expected 2 files converted, got %d", result.Stats.FilesConverted)
	}

	for _, input := range []string{fileA, fileB} {
		outPath := strings.TrimSuffix(input, ".html") + ".md"
		content, err := os.ReadFile(outPath)
		if err != nil {
			t.Fatalf("read output %s: %v", outPath, err)
		}
		if !strings.Contains(string(content), "][1]") {
			t.Errorf("expected %s to start reference numbering at 1 independently of other files, got: %s", outPath, content)
		}
	}
}

func TestRun_ReadError(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	missing := filepath.Join(dir, "missing.html")

	result, err := runner.New().Run(context.Background(), runner.Options{
		Paths:      []string{missing},
		WorkingDir: dir,
	})
	// Discover stats every named path up front, so a directly-named
	// missing file surfaces as a discovery error rather than a per-file
	// outcome.
	if err == nil && result.Stats.FilesErrored == 0 {
		t.Fatal("expected either a discovery error or a per-file error for a missing input")
	}
}
