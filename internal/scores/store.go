package scores

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	constants "github.com/Aeomanate/TableOfAdditionGame/internal/constants"
	models "github.com/Aeomanate/TableOfAdditionGame/internal/models"
	util "github.com/Aeomanate/TableOfAdditionGame/internal/util"
)

const (
	scoreRecordSize      = constants.NicknameFieldSize + 4
	timedScoreRecordSize = constants.NicknameFieldSize + 4 + 4 + 8
)

// Codec converts one record to and from its fixed-size binary layout.
type Codec[T any] interface {
	Size() int
	Encode(dst []byte, r T)
	Decode(src []byte) T
}

// Store loads and saves one leaderboard.
type Store[T Ordered[T]] interface {
	Load() (*Leaderboard[T], error)
	Save(lb *Leaderboard[T]) error
}

// FileStore keeps a leaderboard in a file of back-to-back records with no
// header. Only the first constants.LeaderboardSize records are written.
type FileStore[T Ordered[T]] struct {
	path  string
	codec Codec[T]
}

func NewFileStore[T Ordered[T]](path string, codec Codec[T]) *FileStore[T] {
	return &FileStore[T]{path: path, codec: codec}
}

func (s *FileStore[T]) Path() string {
	return s.path
}

// Load reads every complete record in the file. A missing file is an empty
// leaderboard and a trailing partial record is ignored.
func (s *FileStore[T]) Load() (*Leaderboard[T], error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			util.LogInfo("No score file at %s, starting with an empty leaderboard", s.path)
			return NewLeaderboard[T](), nil
		}
		return nil, fmt.Errorf("read scores %s: %w", s.path, err)
	}

	size := s.codec.Size()
	if rest := len(data) % size; rest != 0 {
		util.LogWarn("Dropping %d trailing bytes from %s", rest, s.path)
	}

	lb := NewLeaderboard[T]()
	for off := 0; off+size <= len(data); off += size {
		lb.Insert(s.codec.Decode(data[off : off+size]))
	}
	util.LogInfo("Loaded %d records from %s", lb.Len(), s.path)
	return lb, nil
}

// Save replaces the file with the top records of lb.
func (s *FileStore[T]) Save(lb *Leaderboard[T]) error {
	top := lb.Top(constants.LeaderboardSize)
	size := s.codec.Size()
	data := make([]byte, len(top)*size)
	for i, r := range top {
		s.codec.Encode(data[i*size:(i+1)*size], r)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write scores %s: %w", s.path, err)
	}
	util.LogInfo("Saved %d records to %s", len(top), s.path)
	return nil
}

type ScoreRecordCodec struct{}

func (ScoreRecordCodec) Size() int { return scoreRecordSize }

func (ScoreRecordCodec) Encode(dst []byte, r models.ScoreRecord) {
	putNickname(dst[:constants.NicknameFieldSize], r.Nickname)
	binary.LittleEndian.PutUint32(dst[16:20], r.Scores)
}

func (ScoreRecordCodec) Decode(src []byte) models.ScoreRecord {
	return models.ScoreRecord{
		Nickname: nickname(src[:constants.NicknameFieldSize]),
		Scores:   binary.LittleEndian.Uint32(src[16:20]),
	}
}

// TimedScoreRecordCodec lays records out like a C struct on x86-64: the
// uint64 duration (microseconds) is 8-byte aligned after 4 bytes of padding.
type TimedScoreRecordCodec struct{}

func (TimedScoreRecordCodec) Size() int { return timedScoreRecordSize }

func (TimedScoreRecordCodec) Encode(dst []byte, r models.TimedScoreRecord) {
	ScoreRecordCodec{}.Encode(dst[:scoreRecordSize], r.ScoreRecord)
	clear(dst[20:24])
	binary.LittleEndian.PutUint64(dst[24:32], uint64(r.Duration.Microseconds()))
}

func (TimedScoreRecordCodec) Decode(src []byte) models.TimedScoreRecord {
	micros := binary.LittleEndian.Uint64(src[24:32])
	return models.TimedScoreRecord{
		ScoreRecord: ScoreRecordCodec{}.Decode(src[:scoreRecordSize]),
		Duration:    time.Duration(micros) * time.Microsecond,
	}
}

func putNickname(dst []byte, n models.Nickname) {
	clear(dst)
	copy(dst[:constants.MaxNicknameLength], n.String())
}

// nickname reads a NUL-terminated field, keeping at most MaxNicknameLength
// bytes when the terminator is missing.
func nickname(field []byte) models.Nickname {
	if i := bytes.IndexByte(field, 0); i >= 0 {
		field = field[:i]
	}
	if len(field) > constants.MaxNicknameLength {
		field = field[:constants.MaxNicknameLength]
	}
	n, _ := models.NewNickname(string(field))
	return n
}

func NewTimedStore(dir string) *FileStore[models.ScoreRecord] {
	return NewFileStore[models.ScoreRecord](filepath.Join(dir, constants.TimedScoresFile), ScoreRecordCodec{})
}

func NewErrorLimitedStore(dir string) *FileStore[models.TimedScoreRecord] {
	return NewFileStore[models.TimedScoreRecord](filepath.Join(dir, constants.ErrorLimitedScoresFile), TimedScoreRecordCodec{})
}
