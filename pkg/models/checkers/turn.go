package checkers

type Turn int8

const (
	Player1 Turn = 1
	Player2 Turn = -1
)

var Turns = [...]Turn{Player1, Player2}

func (t Turn) String() string {
	switch t {
	case Player1:
		return "Player1"
	case Player2:
		return "Player2"
	}
	return ""
}

func ParseTurn(s string) (t Turn, ok bool) {
	switch s {
	case "Player1", "player1", "1":
		return Player1, true
	case "Player2", "player2", "2":
		return Player2, true
	}
	return 0, false
}

func (t Turn) Valid() bool {
	return t == Player1 || t == Player2
}

func (t Turn) Opponent() Turn {
	return -t
}

// Forward is the row step a man of t advances by.
func (t Turn) Forward() int {
	return int(t)
}

// FarRow is the row on which a man of t promotes.
func (t Turn) FarRow() int {
	if t == Player1 {
		return BoardSize - 1
	}
	return 0
}
