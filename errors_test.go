package lounge

import (
	"errors"
	"testing"
)

func TestUnsupportedError_Is(t *testing.T) {
	err := newUnsupportedError("a.b", "func()")

	if !errors.Is(err, ErrUnsupported) {
		t.Error("UnsupportedError should unwrap to ErrUnsupported")
	}

	if errors.Is(err, ErrMarshal) {
		t.Error("UnsupportedError should not match ErrMarshal")
	}
}

func TestUnsupportedError_Message(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "with path",
			err:  newUnsupportedError("routes.0", "chan int"),
			want: "unsupported value: chan int (at routes.0)",
		},
		{
			name: "root",
			err:  newUnsupportedError("", "func()"),
			want: "unsupported value: func()",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestConfigError_Is(t *testing.T) {
	err := &ConfigError{Field: "Delimiter", Rule: "required"}

	if !errors.Is(err, ErrInvalidConfig) {
		t.Error("ConfigError should unwrap to ErrInvalidConfig")
	}
}

func TestConfigError_Message(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "field and rule",
			err:  &ConfigError{Field: "Delimiter", Rule: "required"},
			want: `invalid config: field Delimiter failed "required"`,
		},
		{
			name: "cause only",
			err:  &ConfigError{Cause: errors.New("bad input")},
			want: "invalid config: bad input",
		},
		{
			name: "bare",
			err:  &ConfigError{},
			want: "invalid config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCodecError_Is(t *testing.T) {
	err := newCodecError(ErrUnmarshal, "application/json", errors.New("parse error"))

	if !errors.Is(err, ErrUnmarshal) {
		t.Error("CodecError should unwrap to ErrUnmarshal")
	}

	if errors.Is(err, ErrMarshal) {
		t.Error("CodecError should not match ErrMarshal")
	}
}

func TestCodecError_Message(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "with cause",
			err:  newCodecError(ErrMarshal, "application/yaml", errors.New("boom")),
			want: "marshal failed (application/yaml): boom",
		},
		{
			name: "without cause",
			err:  &CodecError{Err: ErrUnmarshal, ContentType: "application/bson"},
			want: "unmarshal failed (application/bson)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestErrorsAs(t *testing.T) {
	var err error = newUnsupportedError("x", "chan int")

	var unsupported *UnsupportedError
	if !errors.As(err, &unsupported) {
		t.Fatal("errors.As should match *UnsupportedError")
	}
	if unsupported.Path != "x" {
		t.Errorf("Path = %q, want %q", unsupported.Path, "x")
	}

	err = newCodecError(ErrMarshal, "application/json", nil)
	var codecErr *CodecError
	if !errors.As(err, &codecErr) {
		t.Fatal("errors.As should match *CodecError")
	}
	if codecErr.ContentType != "application/json" {
		t.Errorf("ContentType = %q", codecErr.ContentType)
	}
}
