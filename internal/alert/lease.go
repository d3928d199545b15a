package alert

import "sync"

// Lease is the poller's leader election primitive. Exactly one holder at a
// time; a second instance that fails to acquire stays passive until the
// holder releases.
type Lease struct {
	mu    sync.Mutex
	owner string
}

func NewLease() *Lease {
	return &Lease{}
}

// TryAcquire claims the lease for id. It succeeds when the lease is unowned
// or already held by id.
func (l *Lease) TryAcquire(id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.owner == "" || l.owner == id {
		l.owner = id
		return true
	}
	return false
}

// Release frees the lease. Only the owner may release; anyone else is
// ignored.
func (l *Lease) Release(id string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.owner == id {
		l.owner = ""
	}
}

func (l *Lease) Owner() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.owner
}
