package menu

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	console "github.com/Aeomanate/TableOfAdditionGame/internal/console"
)

type GameMock struct {
	mock.Mock
}

func (m *GameMock) Run(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *GameMock) Top(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func newMenu(input string) (*Menu, *bytes.Buffer, *GameMock, *GameMock, *GameMock) {
	var out bytes.Buffer
	endless, timed, limited := &GameMock{}, &GameMock{}, &GameMock{}
	m := New(console.New(strings.NewReader(input), &out), endless, timed, limited)
	return m, &out, endless, timed, limited
}

func TestMenuDispatch(t *testing.T) {
	m, out, endless, timed, limited := newMenu("1\n2\n3\n4\n5\n6\n")
	endless.On("Run", mock.Anything).Return(nil).Once()
	timed.On("Run", mock.Anything).Return(nil).Once()
	limited.On("Run", mock.Anything).Return(nil).Once()
	timed.On("Top", mock.Anything).Return(nil).Once()
	limited.On("Top", mock.Anything).Return(nil).Once()

	require.NoError(t, m.Run(context.Background()))

	endless.AssertExpectations(t)
	timed.AssertExpectations(t)
	limited.AssertExpectations(t)
	assert.Equal(t, 6, strings.Count(out.String(), "Your choice: "))
	assert.Contains(t, out.String(), "1. Run without scores\n")
	assert.Contains(t, out.String(), "4. Show top \"30s\" scores\n")
	assert.Contains(t, out.String(), "6. Exit\n")
}

func TestMenuWrongChoice(t *testing.T) {
	m, out, endless, _, _ := newMenu("9\n\nabc\n\n0\n\n6\n")

	require.NoError(t, m.Run(context.Background()))

	assert.Equal(t, 3, strings.Count(out.String(), "Wrong choice, try again\n"))
	endless.AssertNotCalled(t, "Run", mock.Anything)
}

func TestMenuEndsOnEOF(t *testing.T) {
	m, _, _, _, _ := newMenu("")
	assert.NoError(t, m.Run(context.Background()))
}

func TestMenuPropagatesGameErrors(t *testing.T) {
	m, _, endless, _, _ := newMenu("1\n")
	boom := errors.New("boom")
	endless.On("Run", mock.Anything).Return(boom)

	assert.ErrorIs(t, m.Run(context.Background()), boom)
}

func TestMenuCancelled(t *testing.T) {
	m, _, _, _, _ := newMenu("6\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, m.Run(ctx), context.Canceled)
}
