package models

import (
	"errors"
	"fmt"
	"time"

	constants "github.com/Aeomanate/TableOfAdditionGame/internal/constants"
)

var ErrNicknameTooLong = errors.New("nickname too long")

// Nickname is a player name of at most constants.MaxNicknameLength bytes.
// The zero value is the empty nickname.
type Nickname struct {
	value string
}

func NewNickname(s string) (Nickname, error) {
	if len(s) > constants.MaxNicknameLength {
		return Nickname{}, fmt.Errorf("%w: %d bytes, max %d", ErrNicknameTooLong, len(s), constants.MaxNicknameLength)
	}
	return Nickname{value: s}, nil
}

func (n Nickname) String() string {
	return n.value
}

func (n Nickname) IsEmpty() bool {
	return n.value == ""
}

// ScoreRecord is the result of one timed session.
type ScoreRecord struct {
	Nickname Nickname
	Scores   uint32
}

// Before orders records by descending score.
func (r ScoreRecord) Before(other ScoreRecord) bool {
	return r.Scores > other.Scores
}

// TimedScoreRecord is the result of one error-limited session. Duration has
// microsecond resolution on disk.
type TimedScoreRecord struct {
	ScoreRecord
	Duration time.Duration
}

// Before orders records by descending score, then by ascending duration.
func (r TimedScoreRecord) Before(other TimedScoreRecord) bool {
	if r.Scores != other.Scores {
		return r.Scores > other.Scores
	}
	return r.Duration < other.Duration
}

type Config struct {
	ScoresDir   string        `env:"TOA_SCORES_DIR" envDefault:"."`
	TimedLimit  time.Duration `env:"TOA_TIMED_LIMIT" envDefault:"3s"`
	ErrorLimit  int           `env:"TOA_ERROR_LIMIT" envDefault:"3"`
	RoundPause  time.Duration `env:"TOA_ROUND_PAUSE" envDefault:"500ms"`
	ResultPause time.Duration `env:"TOA_RESULT_PAUSE" envDefault:"1500ms"`
	RevealEvery time.Duration `env:"TOA_REVEAL_EVERY" envDefault:"50ms"`
	LogFile     string        `env:"TOA_LOG_FILE" envDefault:"table_of_addition.log"`
}
