package lounge_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/RG4421/lounge"
	"github.com/RG4421/lounge/json"
	loungetest "github.com/RG4421/lounge/testing"
)

// failingCodec fails every operation.
type failingCodec struct{}

func (failingCodec) ContentType() string { return "application/x-failing" }

func (failingCodec) Marshal(any) ([]byte, error) { return nil, errors.New("marshal boom") }

func (failingCodec) Unmarshal([]byte, any) error { return errors.New("unmarshal boom") }

func TestEncoder_Encode(t *testing.T) {
	enc := lounge.NewEncoder(json.New(), lounge.Options{Minimize: true, DateToISO: true})
	ctx := context.Background()

	tests := []struct {
		name  string
		input any
		want  string
	}{
		{
			name:  "struct",
			input: User{Name: "alice", Email: testEmail, Password: "secret"},
			want:  `{"Age":0,"email":"alice@example.com","id":"","name":"alice"}`,
		},
		{
			name:  "minimized map",
			input: map[string]any{"a": nil, "b": []any{1}},
			want:  `{"b":[1]}`,
		},
		{
			name:  "minimized away",
			input: map[string]any{"a": nil},
			want:  `null`,
		},
		{
			name:  "date",
			input: map[string]any{"at": time.Unix(0, 0)},
			want:  `{"at":"1970-01-01T00:00:00.000Z"}`,
		},
		{
			name:  "document",
			input: loungetest.Note{Text: "<b>"},
			want:  `{"text":"<b>"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := enc.Encode(ctx, tt.input)
			if err != nil {
				t.Fatalf("Encode() error: %v", err)
			}
			if string(data) != tt.want {
				t.Errorf("Encode() = %s, want %s", data, tt.want)
			}
		})
	}
}

func TestEncoder_EncodeDocumentError(t *testing.T) {
	enc := lounge.NewEncoder(json.New(), lounge.Options{})

	_, err := enc.Encode(context.Background(), loungetest.FailingDoc{})
	if err != loungetest.ErrConversion { //nolint:errorlint // must be returned unwrapped
		t.Errorf("Encode() error = %v, want ErrConversion unwrapped", err)
	}
}

func TestEncoder_EncodeStrict(t *testing.T) {
	enc := lounge.NewEncoder(json.New(), lounge.Options{Strict: true})

	_, err := enc.Encode(context.Background(), map[string]any{"ch": make(chan int)})
	if !errors.Is(err, lounge.ErrUnsupported) {
		t.Errorf("Encode() error = %v, want ErrUnsupported", err)
	}
}

func TestEncoder_MarshalError(t *testing.T) {
	enc := lounge.NewEncoder(failingCodec{}, lounge.Options{})

	_, err := enc.Encode(context.Background(), map[string]any{"a": 1})
	if !errors.Is(err, lounge.ErrMarshal) {
		t.Fatalf("Encode() error = %v, want ErrMarshal", err)
	}

	var codecErr *lounge.CodecError
	if !errors.As(err, &codecErr) {
		t.Fatalf("Encode() error should be *CodecError, got %T", err)
	}
	if codecErr.ContentType != "application/x-failing" {
		t.Errorf("ContentType = %q", codecErr.ContentType)
	}
}

func TestEncoder_Decode(t *testing.T) {
	enc := lounge.NewEncoder(json.New(), lounge.Options{})

	var got map[string]any
	if err := enc.Decode(context.Background(), []byte(`{"name":"alice"}`), &got); err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if got["name"] != "alice" {
		t.Errorf("Decode() = %#v", got)
	}

	err := enc.Decode(context.Background(), []byte(`{`), &got)
	if !errors.Is(err, lounge.ErrUnmarshal) {
		t.Errorf("Decode() error = %v, want ErrUnmarshal", err)
	}
}

func TestEncoder_Accessors(t *testing.T) {
	opts := lounge.Options{JSON: true}
	enc := lounge.NewEncoder(json.New(), opts)

	if enc.ContentType() != "application/json" {
		t.Errorf("ContentType() = %q", enc.ContentType())
	}
	if enc.Options() != opts {
		t.Errorf("Options() = %+v, want %+v", enc.Options(), opts)
	}
}

func TestEncoder_EncodeFuncFields(t *testing.T) {
	enc := lounge.NewEncoder(json.New(), lounge.Options{})
	want := `{"Name":"a","OnSave":null,"Updates":null}`

	for name, input := range map[string]Hooks{
		"nil":     {Name: "a"},
		"non-nil": {Name: "a", OnSave: func() {}, Updates: make(chan int)},
	} {
		t.Run(name, func(t *testing.T) {
			data, err := enc.Encode(context.Background(), input)
			if err != nil {
				t.Fatalf("Encode() error: %v", err)
			}
			if string(data) != want {
				t.Errorf("Encode() = %s, want %s", data, want)
			}
		})
	}
}
