package lounge

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// Config holds the defaults the mapping layer reads when it builds keys and
// reference indexes. This package only supplies and validates them, and
// builds keys from them.
type Config struct {
	// StoreFullReferenceID stores the full key of referenced documents
	// instead of their id.
	StoreFullReferenceID bool `json:"storeFullReferenceId" yaml:"storeFullReferenceId" msgpack:"storeFullReferenceId" bson:"storeFullReferenceId"`

	// StoreFullKey stores document ids with their key prefix and suffix.
	StoreFullKey bool `json:"storeFullKey" yaml:"storeFullKey" msgpack:"storeFullKey" bson:"storeFullKey"`

	// AlwaysReturnArrays makes index lookups return slices even for a
	// single match.
	AlwaysReturnArrays bool `json:"alwaysReturnArrays" yaml:"alwaysReturnArrays" msgpack:"alwaysReturnArrays" bson:"alwaysReturnArrays"`

	// RefIndexKeyPrefix prefixes every reference-index key.
	RefIndexKeyPrefix string `json:"refIndexKeyPrefix" yaml:"refIndexKeyPrefix" msgpack:"refIndexKeyPrefix" bson:"refIndexKeyPrefix" validate:"required"`

	// Delimiter separates key segments.
	Delimiter string `json:"delimiter" yaml:"delimiter" msgpack:"delimiter" bson:"delimiter" validate:"required"`

	// WaitForIndex makes saves wait until index writes are confirmed.
	WaitForIndex bool `json:"waitForIndex" yaml:"waitForIndex" msgpack:"waitForIndex" bson:"waitForIndex"`
}

// Default configuration values.
const (
	DefaultDelimiter         = "_"
	DefaultRefIndexKeyPrefix = "$_ref_by_"
)

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		StoreFullReferenceID: false,
		StoreFullKey:         false,
		AlwaysReturnArrays:   false,
		RefIndexKeyPrefix:    DefaultRefIndexKeyPrefix,
		Delimiter:            DefaultDelimiter,
		WaitForIndex:         false,
	}
}

var configValidate = validator.New()

// Validate checks that required values are set.
func (c Config) Validate() error {
	err := configValidate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return &ConfigError{Field: verrs[0].Field(), Rule: verrs[0].Tag()}
	}
	return &ConfigError{Cause: err}
}

// ParseConfig decodes data with codec over DefaultConfig, so that absent
// fields keep their defaults, and validates the result.
func ParseConfig(codec Codec, data []byte) (Config, error) {
	cfg := DefaultConfig()
	if len(data) > 0 {
		if err := codec.Unmarshal(data, &cfg); err != nil {
			return Config{}, newCodecError(ErrUnmarshal, codec.ContentType(), err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
