package constants

const (
	MinDigit = 1
	MaxDigit = 9
)

const (
	MaxNicknameLength = 15
	NicknameFieldSize = MaxNicknameLength + 1
	LeaderboardSize   = 10
)

const (
	TimedScoresFile        = "game_scores_30s.bin"
	ErrorLimitedScoresFile = "game_scores_3errors.bin"
)

const (
	MenuRunEndless = iota + 1
	MenuRunTimed
	MenuRunErrorLimited
	MenuTopTimed
	MenuTopErrorLimited
	MenuExit
)

const (
	PromptChoice        = "Your choice: "
	PromptContinue      = "\nContinue? (Enter - yes, 0 - no): "
	PromptNickname      = "Enter nickname: "
	PromptRedefine      = "Redefine (empty to skip): "
	MessageWrongChoice  = "Wrong choice, try again\n"
	MessageTooLong      = "Too long! (Max 15 symbols)\n"
	MessageCorrect      = "----- YES!"
	MessageAnswerPrefix = " Ans: "
)

// DurationColumnWidth fits the widest duration the table expects, "100m 59.999s".
const DurationColumnWidth = len("100m 59.999s")

const (
	SessionIDKey contextKey = "session_id"
)

type contextKey string
