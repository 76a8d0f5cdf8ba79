package domain

type SessionStore interface {
	Put(session *Session)
	// Get returns nil when no session exists for the id.
	Get(id string) *Session
	Delete(id string)
}
