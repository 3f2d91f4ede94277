// Package domain contains the lobby records and their JSON decoding.
package domain

import (
	"bytes"
	"encoding/json"
	"errors"
)

// Player is one participant of a game. It is immutable once built.
type Player struct {
	name      string
	color     Color
	moderator bool
}

func NewPlayer(name string, color Color, moderator bool) Player {
	return Player{name: name, color: color, moderator: moderator}
}

func (p Player) Name() string      { return p.name }
func (p Player) Color() Color      { return p.color }
func (p Player) IsModerator() bool { return p.moderator }

type playerWire struct {
	Name      string `json:"name"`
	Color     string `json:"color"`
	Moderator bool   `json:"moderator"`
}

// playerFields keeps the raw values so falsy ones of any JSON type can fall
// back to their defaults.
type playerFields struct {
	Name      json.RawMessage `json:"name"`
	Color     json.RawMessage `json:"color"`
	Moderator json.RawMessage `json:"moderator"`
}

// DecodePlayer builds a Player from its wire object. A name or moderator that
// is absent or falsy (null, false, 0, "") falls back to "" and false; any
// other moderator value counts as true. The color must be one of the known
// tokens.
func DecodePlayer(raw []byte) (Player, error) {
	if !isObject(raw) {
		return Player{}, &DecodeError{Record: "player", Err: errors.New("not a JSON object")}
	}
	var f playerFields
	if err := json.Unmarshal(raw, &f); err != nil {
		return Player{}, &DecodeError{Record: "player", Err: err}
	}

	name, err := orEmpty(f.Name)
	if err != nil {
		return Player{}, &DecodeError{Record: "player", Field: "name", Err: err}
	}
	moderator, err := truthy(f.Moderator)
	if err != nil {
		return Player{}, &DecodeError{Record: "player", Field: "moderator", Err: err}
	}
	token, err := orEmpty(f.Color)
	if err != nil {
		return Player{}, &DecodeError{Record: "player", Field: "color", Err: err}
	}
	color, ok := ParseColor(token)
	if !ok {
		return Player{}, &DecodeError{Record: "player", Field: "color", Value: token, Err: ErrUnknownColor}
	}
	return NewPlayer(name, color, moderator), nil
}

// truthy applies JavaScript truthiness to a raw JSON value. Absent, null,
// false, 0 and "" are false; everything else, objects and arrays included,
// is true.
func truthy(raw json.RawMessage) (bool, error) {
	if len(raw) == 0 {
		return false, nil
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return false, err
	}
	switch t := v.(type) {
	case nil:
		return false, nil
	case bool:
		return t, nil
	case float64:
		return t != 0, nil
	case string:
		return t != "", nil
	}
	return true, nil
}

// orEmpty returns a string value as is, "" for a falsy value and the JSON
// text of any other value.
func orEmpty(raw json.RawMessage) (string, error) {
	ok, err := truthy(raw)
	if err != nil || !ok {
		return "", err
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, nil
	}
	return string(bytes.TrimSpace(raw)), nil
}

func (p *Player) UnmarshalJSON(b []byte) error {
	decoded, err := DecodePlayer(b)
	if err != nil {
		return err
	}
	*p = decoded
	return nil
}

func (p Player) MarshalJSON() ([]byte, error) {
	return json.Marshal(playerWire{Name: p.name, Color: p.color.String(), Moderator: p.moderator})
}

func isObject(raw []byte) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '{'
}
