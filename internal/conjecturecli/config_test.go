package conjecturecli_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/calvinalkan/conjecture-go/internal/conjecturecli"
)

func intPtr(v int) *int { return &v }

func Test_LoadSettings_Returns_Defaults_When_No_Config_File_Exists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	settings, err := conjecturecli.LoadSettings(conjecturecli.LoadConfigInput{WorkDir: dir})
	if err != nil {
		t.Fatal(err)
	}

	if settings.BufferSize == 0 || settings.Generations == 0 {
		t.Fatalf("expected non-zero defaults, got %+v", settings)
	}
}

func Test_LoadSettings_Applies_Project_Config_File(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	content := `{
		// allow comments, hujson standardizes these away
		"buffer_size": 4096,
		"max_shrinks": 10,
	}`

	if err := os.WriteFile(filepath.Join(dir, conjecturecli.ConfigFileName), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	settings, err := conjecturecli.LoadSettings(conjecturecli.LoadConfigInput{WorkDir: dir})
	if err != nil {
		t.Fatal(err)
	}

	if settings.BufferSize != 4096 {
		t.Errorf("BufferSize = %d, want 4096", settings.BufferSize)
	}

	if settings.MaxShrinks != 10 {
		t.Errorf("MaxShrinks = %d, want 10", settings.MaxShrinks)
	}
}

func Test_LoadSettings_CLI_Override_Wins_Over_Config_File(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	content := `{"buffer_size": 4096}`
	if err := os.WriteFile(filepath.Join(dir, conjecturecli.ConfigFileName), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	settings, err := conjecturecli.LoadSettings(conjecturecli.LoadConfigInput{
		WorkDir:    dir,
		BufferSize: intPtr(128),
	})
	if err != nil {
		t.Fatal(err)
	}

	if settings.BufferSize != 128 {
		t.Errorf("BufferSize = %d, want 128", settings.BufferSize)
	}
}

func Test_LoadSettings_Rejects_Nonpositive_BufferSize(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	_, err := conjecturecli.LoadSettings(conjecturecli.LoadConfigInput{
		WorkDir:    dir,
		BufferSize: intPtr(0),
	})
	if err == nil {
		t.Fatal("expected an error for a zero buffer size")
	}
}

func Test_LoadSettings_Explicit_Config_Path_Must_Exist(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	_, err := conjecturecli.LoadSettings(conjecturecli.LoadConfigInput{
		WorkDir:    dir,
		ConfigPath: "does-not-exist.json",
	})
	if err == nil {
		t.Fatal("expected an error for a missing explicit config file")
	}
}
