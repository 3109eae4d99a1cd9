package message

import "github.com/google/uuid"

type GameUid string

func NewGameUid() GameUid {
	return GameUid(uuid.New().String())
}

func ParseGameUid(s string) (GameUid, bool) {
	id, err := uuid.Parse(s)
	if err != nil {
		return "", false
	}
	return GameUid(id.String()), true
}
