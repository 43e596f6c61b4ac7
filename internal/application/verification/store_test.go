package verification

import (
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/go-ivr-verify/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPhone = "+15551234567"

func newTestStore() *Store {
	return NewStore(10*time.Minute, 3)
}

func TestStartSession_CodeInRange(t *testing.T) {
	s := newTestStore()
	for i := 0; i < 100; i++ {
		code, err := s.StartSession(testPhone)
		require.NoError(t, err)
		n, err := strconv.Atoi(code)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 100000)
		assert.LessOrEqual(t, n, 999999)
	}
}

func TestStartSession_OverwritesAndResetsAttempts(t *testing.T) {
	s := newTestStore()
	first, err := s.StartSession(testPhone)
	require.NoError(t, err)

	// Burn an attempt on the first session.
	assert.Equal(t, domain.ResultMismatch, s.CheckCode(testPhone, "000000"))

	second, err := s.StartSession(testPhone)
	require.NoError(t, err)

	// The old code no longer verifies; only the fresh one does, and the
	// earlier failed attempt does not carry over.
	if first != second {
		assert.Equal(t, domain.ResultMismatch, s.CheckCode(testPhone, first))
	}
	assert.Equal(t, domain.ResultSuccess, s.CheckCode(testPhone, second))
}

func TestCheckCode_NoSession(t *testing.T) {
	s := newTestStore()
	assert.Equal(t, domain.ResultNoSession, s.CheckCode(testPhone, "123456"))
}

func TestCheckCode_SuccessConsumesSession(t *testing.T) {
	s := newTestStore()
	code, err := s.StartSession(testPhone)
	require.NoError(t, err)

	assert.Equal(t, domain.ResultSuccess, s.CheckCode(testPhone, code))
	assert.Equal(t, domain.ResultNoSession, s.CheckCode(testPhone, code))
}

func TestCheckCode_WrongCodeSequence(t *testing.T) {
	s := newTestStore()
	_, err := s.StartSession(testPhone)
	require.NoError(t, err)

	assert.Equal(t, domain.ResultMismatch, s.CheckCode(testPhone, "000000"))
	assert.Equal(t, domain.ResultMismatch, s.CheckCode(testPhone, "000000"))
	assert.Equal(t, domain.ResultTooManyAttempts, s.CheckCode(testPhone, "000000"))
	assert.Equal(t, domain.ResultNoSession, s.CheckCode(testPhone, "000000"))
}

func TestCheckCode_CorrectCodeAfterMismatchStillSucceeds(t *testing.T) {
	s := newTestStore()
	code, err := s.StartSession(testPhone)
	require.NoError(t, err)

	assert.Equal(t, domain.ResultMismatch, s.CheckCode(testPhone, "000000"))
	assert.Equal(t, domain.ResultSuccess, s.CheckCode(testPhone, code))
	assert.Equal(t, domain.ResultNoSession, s.CheckCode(testPhone, code))
}

func TestCheckCode_ExpiredRegardlessOfCode(t *testing.T) {
	s := newTestStore()
	code, err := s.StartSession(testPhone)
	require.NoError(t, err)

	s.now = func() time.Time { return time.Now().Add(11 * time.Minute) }

	assert.Equal(t, domain.ResultExpired, s.CheckCode(testPhone, code))
	// Session was deleted on the expiry check.
	assert.Equal(t, domain.ResultNoSession, s.CheckCode(testPhone, code))
}

func TestHasSession(t *testing.T) {
	s := newTestStore()
	assert.False(t, s.HasSession(testPhone))

	_, err := s.StartSession(testPhone)
	require.NoError(t, err)
	assert.True(t, s.HasSession(testPhone))

	s.now = func() time.Time { return time.Now().Add(11 * time.Minute) }
	assert.False(t, s.HasSession(testPhone))
}

func TestEvictExpired(t *testing.T) {
	s := newTestStore()
	_, err := s.StartSession("+15550000001")
	require.NoError(t, err)
	_, err = s.StartSession("+15550000002")
	require.NoError(t, err)

	s.now = func() time.Time { return time.Now().Add(11 * time.Minute) }
	s.evictExpired()

	s.mu.Lock()
	defer s.mu.Unlock()
	assert.Empty(t, s.sessions)
}

func TestCheckCode_ConcurrentAttemptsNeverExceedLimit(t *testing.T) {
	s := newTestStore()
	_, err := s.StartSession(testPhone)
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make(chan domain.VerificationResult, 10)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- s.CheckCode(testPhone, "000000")
		}()
	}
	wg.Wait()
	close(results)

	var mismatches, exhausted, noSession int
	for r := range results {
		switch r {
		case domain.ResultMismatch:
			mismatches++
		case domain.ResultTooManyAttempts:
			exhausted++
		case domain.ResultNoSession:
			noSession++
		}
	}
	// Exactly 3 attempts may consume the session: two mismatches, one
	// exhaustion; everything after sees no session.
	assert.Equal(t, 2, mismatches)
	assert.Equal(t, 1, exhausted)
	assert.Equal(t, 7, noSession)
}
