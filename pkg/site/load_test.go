package site

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeTestFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestLoadMembers(t *testing.T) {
	path := writeTestFile(t, "members.json", `[
  {"name": "Jane Doe", "image": "jane.jpg", "statement": "Hi", "instagram": "https://instagram.com/jane"},
  {"name": "Bo Lee", "image": "bo.jpg", "statement": "Hello"}
]`)
	members, err := LoadMembers(path)
	if err != nil {
		t.Fatalf("LoadMembers failed: %v", err)
	}
	if len(members) != 2 {
		t.Fatalf("expected 2 members, got %d", len(members))
	}
	if members[0].Instagram != "https://instagram.com/jane" || members[0].Shop != "" {
		t.Errorf("unexpected optional fields: %+v", members[0])
	}
	if members[1].Name != "Bo Lee" {
		t.Errorf("members should keep document order, got %q second", members[1].Name)
	}
}

func TestLoadWorkshops(t *testing.T) {
	path := writeTestFile(t, "workshops.json", `[
  {"name": "Wheel", "date": "2025-06-20", "time": "6pm", "image": "w.jpg", "description": "Throwing", "instructor": "Jane Doe"}
]`)
	workshops, err := LoadWorkshops(path)
	if err != nil {
		t.Fatalf("LoadWorkshops failed: %v", err)
	}
	if len(workshops) != 1 || workshops[0].Instructor != "Jane Doe" || workshops[0].Link != "" {
		t.Errorf("unexpected workshops: %+v", workshops)
	}
}

func TestLoad_Errors(t *testing.T) {
	_, err := LoadMembers(filepath.Join(t.TempDir(), "missing.json"))
	if !errors.Is(err, ErrInputNotFound) {
		t.Errorf("expected ErrInputNotFound, got %v", err)
	}

	path := writeTestFile(t, "broken.json", `[{"name": "Jane"`)
	_, err = LoadWorkshops(path)
	if !errors.Is(err, ErrInputMalformed) {
		t.Errorf("expected ErrInputMalformed, got %v", err)
	}

	path = writeTestFile(t, "object.json", `{"name": "not a list"}`)
	_, err = LoadMembers(path)
	if !errors.Is(err, ErrInputMalformed) {
		t.Errorf("expected ErrInputMalformed for a non-array document, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	members := []Member{{Name: "Jane Doe", Image: "jane.jpg", Statement: "Hi"}}
	workshops := []Workshop{{Name: "A", Date: "2025-06-20", Time: "6pm", Image: "a.jpg", Description: "a"}}
	if err := Validate(members, workshops); err != nil {
		t.Fatalf("Validate rejected valid records: %v", err)
	}

	noImage := append(members, Member{Name: "Bo Lee", Statement: "Hello"})
	err := Validate(noImage, workshops)
	var recErr *RecordError
	if !errors.As(err, &recErr) || !errors.Is(err, ErrMissingField) {
		t.Fatalf("expected a missing-field *RecordError, got %v", err)
	}
	if recErr.Kind != "member" || recErr.Index != 1 || recErr.Field != "image" {
		t.Errorf("unexpected record error: %+v", recErr)
	}

	badDate := []Workshop{{Name: "A", Date: "June 20", Time: "6pm", Image: "a.jpg", Description: "a"}}
	if err = Validate(members, badDate); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("expected ErrInvalidDate, got %v", err)
	}
}
