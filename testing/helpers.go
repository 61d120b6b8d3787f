// Package testing provides test utilities for lounge.
package testing

import (
	"errors"
	"time"

	"github.com/RG4421/lounge"
)

// ErrConversion is returned by FailingDoc.
var ErrConversion = errors.New("conversion failed")

// User is a document with both conversion methods.
type User struct {
	ID       string
	Email    string
	Password string
	Created  time.Time
}

// ToObject implements lounge.Document. The password is kept.
func (u *User) ToObject(opts lounge.Options) (any, error) {
	out := map[string]any{
		"id":       u.ID,
		"email":    u.Email,
		"password": u.Password,
	}
	created, err := lounge.Clone(u.Created, opts)
	if err != nil {
		return nil, err
	}
	out["created"] = created
	return out, nil
}

// ToJSON implements lounge.JSONDocument. The password is left out.
func (u *User) ToJSON(opts lounge.Options) (any, error) {
	obj, err := u.ToObject(opts)
	if err != nil {
		return nil, err
	}
	m := obj.(map[string]any)
	delete(m, "password")
	return m, nil
}

// Note is a document with ToObject only.
type Note struct {
	Text string
}

// ToObject implements lounge.Document.
func (n Note) ToObject(_ lounge.Options) (any, error) {
	return map[string]any{"text": n.Text}, nil
}

// FailingDoc is a document whose conversion always fails.
type FailingDoc struct{}

// ToObject implements lounge.Document.
func (FailingDoc) ToObject(_ lounge.Options) (any, error) {
	return nil, ErrConversion
}

// CodedError carries its status through a Code method, the way typed
// store clients report it.
type CodedError struct {
	Status int
	Msg    string
}

func (e *CodedError) Error() string { return e.Msg }

// Code returns the status code.
func (e *CodedError) Code() int { return e.Status }

// KeyNotFoundErrors returns one error per shape a "key not found"
// condition has been reported in.
func KeyNotFoundErrors() map[string]error {
	return map[string]error{
		"code":             &lounge.StoreError{Code: lounge.KeyNotFoundCode},
		"code method":      &CodedError{Status: lounge.KeyNotFoundCode, Msg: "status 13"},
		"exact message":    &lounge.StoreError{Message: "key not found"},
		"does not exist":   &lounge.StoreError{Message: "the key does not exist here"},
		"message contains": errors.New("get user::1: key not found (retry 0)"),
		"legacy code":      &lounge.StoreError{Code: "13"},
		"sentinel":         lounge.ErrKeyNotFound,
	}
}
