package factory

import (
	"log/slog"
	"time"

	"github.com/mcoot/sosgame/internal/dependencies/mocks"
	"github.com/mcoot/sosgame/internal/storage/memory"
	"github.com/mcoot/sosgame/internal/testutil"
)

// TestStartTime is the mocked clock's initial reading
var TestStartTime = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

// TestApp is an App on memory storage with a mocked clock and random source
type TestApp struct {
	*App

	Memory     *memory.Storage
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates a TestApp that discards logs
func NewTestApp() *TestApp {
	return NewTestAppWithLogger(testutil.NopLogger())
}

// NewTestAppWithLogger creates a TestApp logging to logger
func NewTestAppWithLogger(logger *slog.Logger) *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(TestStartTime)
	mockRandom := mocks.NewMockRandom()

	return &TestApp{
		App:        newWithDependencies(store, mockClock, mockRandom, logger),
		Memory:     store,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}

// QueueGameIDs sets the IDs given to the next created games, in order
func (a *TestApp) QueueGameIDs(ids ...string) {
	a.MockRandom.QueueString(ids...)
}
