// Package problem generates single-digit addition questions and checks the
// answers.
package problem

import (
	"math/rand/v2"
	"sync"
	"time"

	console "github.com/Aeomanate/TableOfAdditionGame/internal/console"
	constants "github.com/Aeomanate/TableOfAdditionGame/internal/constants"
)

// DigitSource yields the operands of each question.
type DigitSource interface {
	NextDigit() int
}

type randomDigits struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func (r *randomDigits) NextDigit() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return constants.MinDigit + r.rng.IntN(constants.MaxDigit-constants.MinDigit+1)
}

var processDigits = sync.OnceValue(func() DigitSource {
	seed := uint64(time.Now().UnixNano())
	return &randomDigits{rng: rand.New(rand.NewPCG(seed, seed>>32))}
})

// Random returns the process-wide digit source, seeded from the wall clock on
// first use.
func Random() DigitSource {
	return processDigits()
}

// NextDigit returns a uniform digit in [MinDigit, MaxDigit].
func NextDigit() int {
	return Random().NextDigit()
}

type Problem struct {
	A, B int
}

func New(src DigitSource) Problem {
	return Problem{A: src.NextDigit(), B: src.NextDigit()}
}

func (p Problem) Sum() int {
	return p.A + p.B
}

func (p Problem) Check(answer int) bool {
	return answer == p.Sum()
}

// PlayRound asks one question on c and reports whether it was answered
// correctly. Input that is not a number counts as a wrong answer.
func PlayRound(c *console.Console, src DigitSource) (bool, error) {
	p := New(src)
	c.Printf("Q: %d + %d = ", p.A, p.B)

	answer, _, err := c.ReadInt()
	if err != nil {
		return false, err
	}

	c.Print("-----")
	correct := p.Check(answer)
	if correct {
		c.Print(constants.MessageCorrect)
	} else {
		c.Printf("%s%d\n", constants.MessageAnswerPrefix, p.Sum())
	}
	return correct, nil
}

// Script replays a fixed digit sequence, wrapping around at the end.
type Script struct {
	Digits []int
	next   int
}

func (s *Script) NextDigit() int {
	d := s.Digits[s.next%len(s.Digits)]
	s.next++
	return d
}
