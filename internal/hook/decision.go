package hook

// DecisionKind discriminates the outcomes a registration hook can produce.
type DecisionKind int

const (
	// KindNoOpinion means the hook has nothing to say; the host proceeds
	// with its default username-selection behavior.
	KindNoOpinion DecisionKind = iota

	// KindProposed means the hook derived a username candidate. The host
	// applies its own uniqueness and collision policy to it.
	KindProposed

	// KindRejected means the registration attempt must fail, with a
	// user-facing message explaining why.
	KindRejected
)

// String implements fmt.Stringer for logging.
func (k DecisionKind) String() string {
	switch k {
	case KindNoOpinion:
		return "no_opinion"
	case KindProposed:
		return "proposed"
	case KindRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// Decision is the tagged outcome of a registration hook. Username is set only
// for KindProposed, Message only for KindRejected. The no-match case is a
// value, not an error; error returns are reserved for genuine faults.
type Decision struct {
	Kind     DecisionKind
	Username string
	Message  string
}

// NoOpinion returns the decision that lets the host proceed on its own.
func NoOpinion() Decision {
	return Decision{Kind: KindNoOpinion}
}

// Propose returns a decision carrying a derived username candidate.
func Propose(username string) Decision {
	return Decision{Kind: KindProposed, Username: username}
}

// Reject returns a decision that fails the registration attempt with a
// user-facing message.
func Reject(message string) Decision {
	return Decision{Kind: KindRejected, Message: message}
}
