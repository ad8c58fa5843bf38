// Package domain defines the person entity, its field bounds, and the closed set of
// failures each person operation can report.
package domain

import (
	"github.com/google/uuid"
)

// SearchLimit caps the number of persons returned by a search.
const SearchLimit = 50

// Person is a single registered person. Persons are created once and never updated.
type Person struct {
	// ID is assigned by the repository at insert time.
	ID uuid.UUID
	// Name is free text, 1-100 characters.
	Name string
	// Nickname is free text, 1-32 characters, unique across all persons.
	Nickname string
	// Birthdate has no time component.
	Birthdate Date
	// Stack lists technology tags in the order given; duplicates are kept.
	Stack []string
}

// NicknameLength bounds the nickname ("apelido").
type NicknameLength struct{}

func (NicknameLength) MinLength() int { return 1 }
func (NicknameLength) MaxLength() int { return 32 }

// NameLength bounds the name ("nome").
type NameLength struct{}

func (NameLength) MinLength() int { return 1 }
func (NameLength) MaxLength() int { return 100 }

// StackItemLength bounds each stack entry.
type StackItemLength struct{}

func (StackItemLength) MinLength() int { return 1 }
func (StackItemLength) MaxLength() int { return 32 }
