package pkgmgr

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestInstallCommand(t *testing.T) {
	dir := "/work/demo"

	t.Run("yarn scopes via --cwd, no dir change", func(t *testing.T) {
		args, cmdDir := Yarn.InstallCommand(dir)
		want := []string{"install", "--cwd", dir}
		if !reflect.DeepEqual(args, want) {
			t.Errorf("args = %v, want %v", args, want)
		}
		if cmdDir != "" {
			t.Errorf("cmdDir = %q, want unchanged", cmdDir)
		}
	})

	t.Run("npm runs inside the project, no --cwd flag", func(t *testing.T) {
		args, cmdDir := Npm.InstallCommand(dir)
		if !reflect.DeepEqual(args, []string{"install"}) {
			t.Errorf("args = %v, want [install]", args)
		}
		for _, a := range args {
			if a == "--cwd" {
				t.Error("npm args must not contain --cwd")
			}
		}
		if cmdDir != dir {
			t.Errorf("cmdDir = %q, want %q", cmdDir, dir)
		}
	})
}

func TestAddCommand(t *testing.T) {
	dir := "/work/demo"

	t.Run("yarn add", func(t *testing.T) {
		args, cmdDir := Yarn.AddCommand(dir, false, "left-pad")
		want := []string{"add", "--cwd", dir, "left-pad"}
		if !reflect.DeepEqual(args, want) {
			t.Errorf("args = %v, want %v", args, want)
		}
		if cmdDir != "" {
			t.Errorf("cmdDir = %q, want unchanged", cmdDir)
		}
	})

	t.Run("yarn add --dev", func(t *testing.T) {
		args, _ := Yarn.AddCommand(dir, true, "typescript")
		want := []string{"add", "--cwd", dir, "--dev", "typescript"}
		if !reflect.DeepEqual(args, want) {
			t.Errorf("args = %v, want %v", args, want)
		}
	})

	t.Run("npm install --save-dev", func(t *testing.T) {
		args, cmdDir := Npm.AddCommand(dir, true, "typescript")
		want := []string{"install", "--save-dev", "typescript"}
		if !reflect.DeepEqual(args, want) {
			t.Errorf("args = %v, want %v", args, want)
		}
		if cmdDir != dir {
			t.Errorf("cmdDir = %q, want %q", cmdDir, dir)
		}
	})
}

func TestHasManifest(t *testing.T) {
	dir := t.TempDir()
	if HasManifest(dir) {
		t.Error("HasManifest = true for empty dir")
	}
	if err := os.WriteFile(filepath.Join(dir, "package.json"), []byte("{}"), 0644); err != nil {
		t.Fatal(err)
	}
	if !HasManifest(dir) {
		t.Error("HasManifest = false with package.json present")
	}
}

func TestString(t *testing.T) {
	if Npm.String() != "npm" || Yarn.String() != "yarn" {
		t.Errorf("String() = %q/%q", Npm.String(), Yarn.String())
	}
}
