package lounge_test

import (
	"database/sql/driver"
	"time"
)

// Base is embedded without a tag, so its fields are flattened.
type Base struct {
	ID string `json:"id"`
}

type Address struct {
	Street string `json:"street,omitempty"`
	City   string
}

type User struct {
	Base
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Password string   `json:"-"`
	Address  *Address `json:"address,omitempty"`
	Age      int
	internal string
}

type Profile struct {
	Name    string   `json:"name"`
	Address *Address `json:"address"`
}

type Status string

type Level int

// Hooks carries callbacks that never belong in a stored payload.
type Hooks struct {
	Name    string
	OnSave  func()
	Updates chan int
}

type OmitFields struct {
	When  time.Time `json:"when,omitempty"`
	Arr   [2]int    `json:"arr,omitempty"`
	Tags  []string  `json:"tags,omitempty"`
	Empty [0]int    `json:"empty,omitempty"`
	Ptr   *int      `json:"ptr,omitempty"`
	Count int       `json:"count,omitempty"`
	Flag  bool      `json:"flag,omitempty"`
	Inner Base      `json:"inner,omitempty"`
}

// Blob is stored through its driver.Valuer.
type Blob []byte

func (b Blob) Value() (driver.Value, error) { return []byte(b), nil }
