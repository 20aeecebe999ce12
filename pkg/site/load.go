package site

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// LoadMembers reads a members JSON document.
func LoadMembers(path string) ([]Member, error) {
	var members []Member
	if err := loadJSON(path, &members); err != nil {
		return nil, err
	}
	return members, nil
}

// LoadWorkshops reads a workshops JSON document.
func LoadWorkshops(path string) ([]Workshop, error) {
	var workshops []Workshop
	if err := loadJSON(path, &workshops); err != nil {
		return nil, err
	}
	return workshops, nil
}

func loadJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrInputNotFound, path)
		}
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err = json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInputMalformed, path, err)
	}
	return nil
}
