package execx

import "testing"

func TestCommandErrorMessage(t *testing.T) {
	err := &CommandError{Command: "npm install", ExitCode: 7}
	want := `command "npm install" exited with status 7`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestAvailable(t *testing.T) {
	if Available("definitely-not-a-real-binary-xyz", "--version") {
		t.Error("Available = true for nonexistent binary")
	}
}

func TestRunUnknownCommand(t *testing.T) {
	err := Run("definitely-not-a-real-binary-xyz", nil, Options{})
	if err == nil {
		t.Fatal("expected error for unknown command")
	}
	if _, ok := err.(*CommandError); ok {
		t.Error("start failure must not be a CommandError")
	}
}
