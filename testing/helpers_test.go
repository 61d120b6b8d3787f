package testing

import (
	"errors"
	"testing"
	"time"

	"github.com/RG4421/lounge"
)

func TestUser_ToJSON_DropsPassword(t *testing.T) {
	u := &User{ID: "1", Email: "a@example.com", Password: "secret", Created: time.Unix(0, 0)}

	obj, err := u.ToJSON(lounge.Options{DateToISO: true})
	if err != nil {
		t.Fatalf("ToJSON() error: %v", err)
	}

	m := obj.(map[string]any)
	if _, ok := m["password"]; ok {
		t.Error("ToJSON() should drop password")
	}
	if m["created"] != "1970-01-01T00:00:00.000Z" {
		t.Errorf("created = %v, want ISO string", m["created"])
	}
}

func TestFailingDoc(t *testing.T) {
	_, err := FailingDoc{}.ToObject(lounge.Options{})
	if !errors.Is(err, ErrConversion) {
		t.Errorf("ToObject() error = %v, want ErrConversion", err)
	}
}

func TestKeyNotFoundErrors(t *testing.T) {
	for name, err := range KeyNotFoundErrors() {
		if !lounge.IsKeyNotFound(err) {
			t.Errorf("%s: IsKeyNotFound(%v) = false, want true", name, err)
		}
	}
}
