package app

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const cleanLayout = `screens:
  - id: main
    title: Main
    content:
      type: vertical
      children:
        - {type: button, text: One}
        - {type: button, text: Two}
  - id: extra
    title: Extra
    content:
      type: vertical
      children:
        - {type: toggle, id: flag, text: Flag}
`

func writeLayout(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "layout.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write layout: %v", err)
	}
	return path
}

func TestDiagnoseCleanLayout(t *testing.T) {
	menu, err := loadMenu(writeLayout(t, cleanLayout))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	var out bytes.Buffer
	if err := Diagnose(&out, menu); err != nil {
		t.Fatalf("diagnose: %v\n%s", err, out.String())
	}
	text := out.String()
	for _, want := range []string{"screen  Main", "screen  Extra", "status  ok"} {
		if !strings.Contains(text, want) {
			t.Fatalf("expected %q in\n%s", want, text)
		}
	}
	if strings.Contains(text, "problems") {
		t.Fatalf("expected no problems in\n%s", text)
	}
}

func TestLoadMenuErrors(t *testing.T) {
	if _, err := loadMenu(filepath.Join(t.TempDir(), "missing.yaml")); err == nil || !strings.Contains(err.Error(), "load layout") {
		t.Fatalf("expected load error, got %v", err)
	}
	bad := writeLayout(t, "screens: []\n")
	if _, err := loadMenu(bad); err == nil {
		t.Fatal("expected error for empty layout")
	}
}

func TestRunRejectsMissingLayout(t *testing.T) {
	err := Run(Config{LayoutPath: filepath.Join(t.TempDir(), "none.yaml")})
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestWriteValues(t *testing.T) {
	var out bytes.Buffer
	if err := WriteValues(&out, map[string]string{"sound": "on", "difficulty": "Hard"}); err != nil {
		t.Fatalf("write: %v", err)
	}
	want := "{\n  \"difficulty\": \"Hard\",\n  \"sound\": \"on\"\n}\n"
	if out.String() != want {
		t.Fatalf("expected %q, got %q", want, out.String())
	}
}
