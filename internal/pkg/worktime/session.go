package worktime

// SessionState is the lifecycle of an attendance or overtime session.
type SessionState string

const (
	StateOpen   SessionState = "open"
	StateClosed SessionState = "closed"
)

func (s SessionState) IsValid() bool {
	return s == StateOpen || s == StateClosed
}
