package domain

import (
	"errors"
	"strings"
)

const MaxNameLen = 36

var (
	ErrNameTooLong = errors.New("name too long")
	ErrNameEmpty   = errors.New("name empty")
)

// ValidateName checks a display name typed by the user before it is sent to
// the server, which rejects blank names. Names decoded from the server are
// never validated.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameEmpty
	}
	if len(name) > MaxNameLen {
		return ErrNameTooLong
	}
	return nil
}

// JoinResult is the server's verdict on a join request.
type JoinResult string

const (
	JoinSuccess       JoinResult = "SUCCESS"
	JoinNotFound      JoinResult = "NOT_FOUND"
	JoinAlreadyJoined JoinResult = "ALREADY_JOINED"
	JoinGameFull      JoinResult = "GAME_FULL"
	JoinColorTaken    JoinResult = "COLOR_TAKEN"
)

func (r JoinResult) Known() bool {
	switch r {
	case JoinSuccess, JoinNotFound, JoinAlreadyJoined, JoinGameFull, JoinColorTaken:
		return true
	}
	return false
}
