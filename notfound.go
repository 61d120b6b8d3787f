package lounge

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/dgraph-io/badger/v4"
	"go.mongodb.org/mongo-driver/mongo"
)

// KeyNotFoundCode is the store status code for a missing key.
const KeyNotFoundCode = 13

// legacyKeyNotFoundCode is the same status as older protocol revisions
// report it, possibly as a string.
const legacyKeyNotFoundCode = "13"

// StoreError is a loosely typed store error, for callers that receive
// error frames as decoded data rather than typed errors.
type StoreError struct {
	Code    any    // Status code as reported, number or string
	Message string // Human-readable message, possibly empty
}

func (e *StoreError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("store error (code %v)", e.Code)
}

// KeyNotFoundCheck inspects the code and message of a store error.
// code is nil when the error carries none.
type KeyNotFoundCheck func(code any, message string) bool

// keyNotFoundSentinels are errors that mean "key not found" wherever they
// appear in a wrap chain.
var keyNotFoundSentinels = []error{
	ErrKeyNotFound,
	badger.ErrKeyNotFound,
	mongo.ErrNoDocuments,
}

var (
	keyNotFoundChecks = []KeyNotFoundCheck{
		codeIsKeyNotFound,
		messageIsKeyNotFound,
		messageHasKeyDoesNotExist,
		messageHasKeyNotFound,
		codeIsLegacyKeyNotFound,
	}
	checksMu sync.RWMutex
)

// RegisterKeyNotFound adds a check to the classifier. Checks are
// independent: any one matching classifies the error as "key not found".
func RegisterKeyNotFound(check KeyNotFoundCheck) {
	if check == nil {
		return
	}
	checksMu.Lock()
	defer checksMu.Unlock()
	keyNotFoundChecks = append(keyNotFoundChecks, check)
}

// IsKeyNotFound reports whether err means the requested key does not exist.
//
// Store clients have reported this condition as a numeric status code, as
// the same code in string form and as several message wordings, depending
// on client and protocol version. Every error in the wrap chain is
// inspected. IsKeyNotFound never panics and returns false for nil.
func IsKeyNotFound(err error) (found bool) {
	if err == nil {
		return false
	}

	// Error shapes are caller-controlled; a panicking Code or Error
	// method classifies as no match.
	defer func() {
		if recover() != nil {
			found = false
		}
	}()

	for _, sentinel := range keyNotFoundSentinels {
		if errors.Is(err, sentinel) {
			return true
		}
	}

	checksMu.RLock()
	checks := keyNotFoundChecks
	checksMu.RUnlock()

	return walkErrors(err, func(e error) bool {
		code, message := normalizeError(e)
		for _, check := range checks {
			if check(code, message) {
				return true
			}
		}
		return false
	})
}

// walkErrors calls fn for err and every error it wraps until fn returns true.
func walkErrors(err error, fn func(error) bool) bool {
	if err == nil {
		return false
	}
	if fn(err) {
		return true
	}
	switch x := err.(type) {
	case interface{ Unwrap() error }:
		return walkErrors(x.Unwrap(), fn)
	case interface{ Unwrap() []error }:
		for _, e := range x.Unwrap() {
			if walkErrors(e, fn) {
				return true
			}
		}
	}
	return false
}

// normalizeError extracts a status code and a message from e. The code
// comes from a Code() method or a Code field; the message from a
// Message() method, a Message field or Error().
func normalizeError(e error) (code any, message string) {
	rv := reflect.ValueOf(e)

	if m := rv.MethodByName("Code"); m.IsValid() && m.Type().NumIn() == 0 && m.Type().NumOut() == 1 {
		code = m.Call(nil)[0].Interface()
	} else if f, ok := structField(rv, "Code"); ok {
		code = f.Interface()
	}

	if m, ok := e.(interface{ Message() string }); ok {
		message = m.Message()
	} else if f, ok := structField(rv, "Message"); ok && f.Kind() == reflect.String {
		message = f.String()
	}
	if message == "" {
		message = e.Error()
	}

	if IsUndefined(code) {
		code = nil
	}
	return code, message
}

// structField returns the exported field name of the struct behind rv.
func structField(rv reflect.Value, name string) (reflect.Value, bool) {
	for rv.Kind() == reflect.Ptr || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return reflect.Value{}, false
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return reflect.Value{}, false
	}
	sf, ok := rv.Type().FieldByName(name)
	if !ok || !sf.IsExported() {
		return reflect.Value{}, false
	}
	return rv.FieldByIndex(sf.Index), true
}

func codeIsKeyNotFound(code any, _ string) bool {
	rv := reflect.ValueOf(code)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() == KeyNotFoundCode
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint() == KeyNotFoundCode
	default:
		return false
	}
}

func messageIsKeyNotFound(_ any, message string) bool {
	return message == "key not found"
}

func messageHasKeyDoesNotExist(_ any, message string) bool {
	return strings.Contains(message, "key does not exist")
}

func messageHasKeyNotFound(_ any, message string) bool {
	return strings.Contains(message, "key not found")
}

func codeIsLegacyKeyNotFound(code any, _ string) bool {
	return code != nil && fmt.Sprint(code) == legacyKeyNotFoundCode
}
