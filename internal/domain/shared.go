package domain

import (
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/zeebo/xxh3"
)

// Person is a shared entity: one row per distinct (first_name, type).
type Person struct {
	ID        int64  `json:"person_id"`
	FirstName string `json:"first_name"`
	Type      string `json:"type"`
}

type PersonKey struct {
	FirstName string `json:"first_name"`
	Type      string `json:"type"`
}

type PersonInput struct {
	FirstName string `json:"first_name" validate:"required,max=255"`
	Type      string `json:"type" validate:"required,max=255"`
}

func (in PersonInput) Key() PersonKey {
	return PersonKey{FirstName: in.FirstName, Type: in.Type}
}

// Link is a thread that ties stories together.
type Link struct {
	ID          int64  `json:"link_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Colour      string `json:"colour"`
}

type LinkKey struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Colour      string `json:"colour"`
}

type LinkInput struct {
	Title       string `json:"title" validate:"required,max=255"`
	Description string `json:"description" validate:"required,max=255"`
	Colour      string `json:"colour" validate:"required,max=255"`
}

func (in LinkInput) Key() LinkKey {
	return LinkKey{Title: in.Title, Description: in.Description, Colour: in.Colour}
}

type Character struct {
	ID           int64  `json:"character_id"`
	BodyLanguage string `json:"body_language"`
	Dialog       string `json:"dialog"`
}

type CharacterKey struct {
	BodyLanguage string `json:"body_language"`
	Dialog       string `json:"dialog"`
}

type CharacterInput struct {
	BodyLanguage string `json:"body_language" validate:"required,max=255"`
	Dialog       string `json:"dialog" validate:"required"`
}

func (in CharacterInput) Key() CharacterKey {
	return CharacterKey{BodyLanguage: in.BodyLanguage, Dialog: in.Dialog}
}

// NaturalKeyDigest returns the fixed width value stored in the unique
// natural_key column. Keys are plain structs, so their JSON encoding is stable.
func NaturalKeyDigest[K comparable](key K) (string, error) {
	b, err := json.Marshal(key)
	if err != nil {
		return "", err
	}
	sum := xxh3.Hash128(b).Bytes()
	return hex.EncodeToString(sum[:]), nil
}

// OwnerRef addresses the owner row of an association.
// StoryID is zero for owners outside the stories domain.
type OwnerRef struct {
	StoryID int64
	ID      int64
}

// Association is a junction row between an owner and a shared entity.
type Association struct {
	OwnerID   int64     `json:"owner_id"`
	SharedID  int64     `json:"shared_id"`
	CreatedAt time.Time `json:"created_at"`
}

// LinkResult is the outcome of linking a shared entity to an owner.
// Created is false when the association already existed.
type LinkResult[S any] struct {
	Shared      S
	Association Association
	Created     bool
}

func (r LinkResult[S]) Status() string {
	if r.Created {
		return LinkStatusLinked
	}
	return LinkStatusAlreadyLinked
}

// Event is published whenever an account's associations change.
type Event struct {
	Type      string    `json:"type"`
	AccountID int64     `json:"account_id"`
	StoryID   int64     `json:"story_id,omitempty"`
	OwnerID   int64     `json:"owner_id"`
	Resource  string    `json:"resource"`
	SharedID  int64     `json:"resource_id"`
	Created   bool      `json:"created"`
	Timestamp time.Time `json:"timestamp"`
}
