package store

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"character-auction/internal/room"
)

func TestPutIfAbsent(t *testing.T) {
	m := NewMemoryStore()

	ok := m.PutIfAbsent(&room.Room{Code: "ABC123"})
	assert.True(t, ok)
	ok = m.PutIfAbsent(&room.Room{Code: "ABC123"})
	assert.False(t, ok)

	r, found := m.GetRoom("ABC123")
	require.True(t, found)
	assert.Equal(t, "ABC123", r.Code)
}

func TestGetRoomMissing(t *testing.T) {
	m := NewMemoryStore()
	_, found := m.GetRoom("NOPE")
	assert.False(t, found)
}

func TestAllReturnsSnapshot(t *testing.T) {
	m := NewMemoryStore()
	require.True(t, m.PutIfAbsent(&room.Room{Code: "AAAAAA"}))
	require.True(t, m.PutIfAbsent(&room.Room{Code: "BBBBBB"}))

	all := m.All()
	assert.Len(t, all, 2)
	codes := []string{all[0].Code, all[1].Code}
	assert.ElementsMatch(t, []string{"AAAAAA", "BBBBBB"}, codes)
}

func TestConcurrentPutIfAbsentSingleWinner(t *testing.T) {
	m := NewMemoryStore()
	const workers = 32

	var wg sync.WaitGroup
	wins := make(chan bool, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			wins <- m.PutIfAbsent(&room.Room{Code: "SHARED"})
		}()
	}
	wg.Wait()
	close(wins)

	won := 0
	for ok := range wins {
		if ok {
			won++
		}
	}
	assert.Equal(t, 1, won)
}
