package problem

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	console "github.com/Aeomanate/TableOfAdditionGame/internal/console"
)

func TestNextDigitRange(t *testing.T) {
	seen := make(map[int]bool)
	for range 2000 {
		d := NextDigit()
		require.GreaterOrEqual(t, d, 1)
		require.LessOrEqual(t, d, 9)
		seen[d] = true
	}
	assert.Len(t, seen, 9)
}

func TestRandomIsProcessWide(t *testing.T) {
	assert.Same(t, Random(), Random())
}

func TestCheckAllPairs(t *testing.T) {
	for a := 1; a <= 9; a++ {
		for b := 1; b <= 9; b++ {
			p := Problem{A: a, B: b}
			assert.True(t, p.Check(a+b))
			assert.False(t, p.Check(a+b+1))
			assert.False(t, p.Check(a+b-1))
		}
	}
}

func TestPlayRoundAllPairs(t *testing.T) {
	for a := 1; a <= 9; a++ {
		for b := 1; b <= 9; b++ {
			var out bytes.Buffer
			input := fmt.Sprintf("%d\n%d\n", a+b, a+b+1)
			c := console.New(strings.NewReader(input), &out)
			src := &Script{Digits: []int{a, b}}

			ok, err := PlayRound(c, src)
			require.NoError(t, err)
			assert.True(t, ok, "%d + %d", a, b)

			ok, err = PlayRound(c, src)
			require.NoError(t, err)
			assert.False(t, ok, "%d + %d", a, b)
		}
	}
}

func TestPlayRoundOutput(t *testing.T) {
	var out bytes.Buffer
	c := console.New(strings.NewReader("7\n3\n"), &out)
	src := &Script{Digits: []int{3, 4, 1, 1}}

	ok, err := PlayRound(c, src)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Q: 3 + 4 = -----"+"----- YES!", out.String())

	out.Reset()
	ok, err = PlayRound(c, src)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, "Q: 1 + 1 = ----- Ans: 2\n", out.String())
}

func TestPlayRoundNonNumericIsWrong(t *testing.T) {
	c := console.New(strings.NewReader("twelve\n"), &bytes.Buffer{})
	ok, err := PlayRound(c, &Script{Digits: []int{5, 7}})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPlayRoundEOF(t *testing.T) {
	c := console.New(strings.NewReader(""), &bytes.Buffer{})
	_, err := PlayRound(c, &Script{Digits: []int{5, 7}})
	assert.Error(t, err)
}
