package verification

import (
	"sync"
	"time"

	"github.com/go-ivr-verify/internal/domain"
	"github.com/go-ivr-verify/internal/pkg/otp"
)

// sweepInterval is how often expired sessions are evicted in the background.
// Expiry itself is always enforced on access; the sweep only bounds memory.
const sweepInterval = time.Minute

// Store owns all pending verification sessions, keyed by caller phone number.
// All access is serialized through the mutex: the telephony provider retries
// webhooks, so two callbacks for the same number can race, and an unguarded
// map would lose attempt-counter updates.
//
// Sessions live for the lifetime of the process only.
type Store struct {
	mu          sync.Mutex
	sessions    map[string]*domain.VerificationSession
	ttl         time.Duration
	maxAttempts int
	now         func() time.Time // overridable in tests
}

// NewStore creates a session store and starts its eviction sweep.
func NewStore(ttl time.Duration, maxAttempts int) *Store {
	s := &Store{
		sessions:    make(map[string]*domain.VerificationSession),
		ttl:         ttl,
		maxAttempts: maxAttempts,
		now:         time.Now,
	}
	go s.sweep()
	return s
}

// StartSession generates a fresh code for the caller, unconditionally
// replacing any session already pending for that number.
func (s *Store) StartSession(phoneNumber string) (string, error) {
	code, err := otp.NewCode()
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	s.sessions[phoneNumber] = &domain.VerificationSession{
		PhoneNumber: phoneNumber,
		Code:        code,
		Attempts:    0,
		CreatedAt:   now,
		ExpiresAt:   now.Add(s.ttl),
	}
	return code, nil
}

// CheckCode validates a submitted code against the caller's pending session.
//
// Expiry and the attempt limit are checked before an attempt is consumed, so
// an expired or exhausted session is never double-penalized. A mismatch keeps
// the session alive for retry unless it used up the final attempt.
func (s *Store) CheckCode(phoneNumber, submitted string) domain.VerificationResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[phoneNumber]
	if !ok {
		return domain.ResultNoSession
	}
	if s.now().After(sess.ExpiresAt) {
		delete(s.sessions, phoneNumber)
		return domain.ResultExpired
	}
	if sess.Attempts >= s.maxAttempts {
		delete(s.sessions, phoneNumber)
		return domain.ResultTooManyAttempts
	}

	sess.Attempts++
	if submitted == sess.Code {
		delete(s.sessions, phoneNumber)
		return domain.ResultSuccess
	}
	if sess.Attempts >= s.maxAttempts {
		// Final attempt spent; nothing left to retry with.
		delete(s.sessions, phoneNumber)
		return domain.ResultTooManyAttempts
	}
	return domain.ResultMismatch
}

// HasSession reports whether the caller has a live, unexpired session.
func (s *Store) HasSession(phoneNumber string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[phoneNumber]
	return ok && !s.now().After(sess.ExpiresAt)
}

// evictExpired drops every session past its deadline.
func (s *Store) evictExpired() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	for phone, sess := range s.sessions {
		if now.After(sess.ExpiresAt) {
			delete(s.sessions, phone)
		}
	}
}

func (s *Store) sweep() {
	for {
		time.Sleep(sweepInterval)
		s.evictExpired()
	}
}
