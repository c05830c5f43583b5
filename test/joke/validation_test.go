package joke

import (
	"testing"

	"github.com/jokeboard/server/internal/joke/service"
)

func TestValidateJokeName_Boundaries(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"empty", "", true},
		{"one char", "a", true},
		{"two chars", "ab", false},
		{"longer", "Road worker", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			msg := service.ValidateJokeName(tc.input)
			if tc.wantErr && msg == "" {
				t.Errorf("expected %q to be rejected", tc.input)
			}
			if !tc.wantErr && msg != "" {
				t.Errorf("expected %q to pass, got %q", tc.input, msg)
			}
		})
	}
}

func TestValidateJokeName_Message(t *testing.T) {
	if got := service.ValidateJokeName("a"); got != "That joke`s name too short" {
		t.Errorf("unexpected message %q", got)
	}
}

func TestValidateJokeContent_Boundaries(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"empty", "", true},
		{"nine chars", "123456789", true},
		{"ten chars", "1234567890", false},
		{"longer", "I never wanted to believe that my Dad was stealing from his job as a road worker.", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			msg := service.ValidateJokeContent(tc.input)
			if tc.wantErr && msg == "" {
				t.Errorf("expected %q to be rejected", tc.input)
			}
			if !tc.wantErr && msg != "" {
				t.Errorf("expected %q to pass, got %q", tc.input, msg)
			}
		})
	}
}

func TestValidateJokeContent_Message(t *testing.T) {
	if got := service.ValidateJokeContent("short"); got != "That joke too short" {
		t.Errorf("unexpected message %q", got)
	}
}

func TestValidateSubmission_ReportsBothFailures(t *testing.T) {
	fieldErrors, ok := service.ValidateSubmission(service.Fields{Name: "a", Content: "short"})
	if ok {
		t.Fatal("expected validation to fail")
	}
	if fieldErrors.Name == "" {
		t.Error("expected a name error")
	}
	if fieldErrors.Content == "" {
		t.Error("expected a content error")
	}
}

func TestValidateSubmission_SingleFailureLeavesOtherEmpty(t *testing.T) {
	fieldErrors, ok := service.ValidateSubmission(service.Fields{
		Name:    "a",
		Content: "long enough to pass",
	})
	if ok {
		t.Fatal("expected validation to fail")
	}
	if fieldErrors.Name == "" {
		t.Error("expected a name error")
	}
	if fieldErrors.Content != "" {
		t.Errorf("expected no content error, got %q", fieldErrors.Content)
	}
}

func TestValidateSubmission_Valid(t *testing.T) {
	fieldErrors, ok := service.ValidateSubmission(service.Fields{
		Name:    "Road worker",
		Content: "I never wanted to believe that my Dad was stealing from his job as a road worker. But when I got home, all the signs were there.",
	})
	if !ok {
		t.Fatalf("expected validation to pass, got %+v", fieldErrors)
	}
	if !fieldErrors.Empty() {
		t.Errorf("expected empty field errors, got %+v", fieldErrors)
	}
}
