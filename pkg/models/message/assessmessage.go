package message

import (
	"strings"

	"github.com/HuXin0817/checkers/pkg/models/checkers"
	"github.com/bytedance/sonic"
)

// BoardKey packs b into a 100 character string, column-major.
func BoardKey(b checkers.Board) string {
	var builder strings.Builder
	builder.Grow(checkers.BoardSize * checkers.BoardSize)
	for _, p := range checkers.Positions() {
		builder.WriteByte(cellByte(b.At(p)))
	}
	return builder.String()
}

func cellByte(c checkers.Cell) byte {
	switch c {
	case 0:
		return '.'

	case checkers.NewCell(checkers.Player1, checkers.Man):
		return 'x'
	case checkers.NewCell(checkers.Player1, checkers.King):
		return 'X'
	case checkers.NewCell(checkers.Player2, checkers.Man):
		return 'o'
	}
	return 'O'
}

type AssessMessageKey struct {
	Board string
	Turn  checkers.Turn
	Depth int
}

func NewAssessMessageKey(b checkers.Board, turn checkers.Turn, depth int) AssessMessageKey {
	return AssessMessageKey{
		Board: BoardKey(b),
		Turn:  turn,
		Depth: depth,
	}
}

func (a AssessMessageKey) String() string {
	str, _ := sonic.MarshalString(a)
	return "assess:" + str
}

type AssessMessageValue struct {
	Move  checkers.Move
	Score int
	Ok    bool
	Nodes int64
}

func NewAssessMessageValue(s string) (newAssessMessageValue AssessMessageValue, err error) {
	err = sonic.UnmarshalString(s, &newAssessMessageValue)
	return
}

func (a AssessMessageValue) String() string {
	str, _ := sonic.MarshalString(a)
	return str
}

// AssessRecord is one finished analysis, kept in the recent analysis list.
type AssessRecord struct {
	TimeStamp
	GameUid `json:",omitempty"`
	AssessMessageKey
	AssessMessageValue
}

func NewAssessRecord(s string) (newAssessRecord AssessRecord, err error) {
	err = sonic.UnmarshalString(s, &newAssessRecord)
	return
}

func (a AssessRecord) String() string {
	str, _ := sonic.MarshalString(a)
	return str
}
