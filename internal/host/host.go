// Package host defines the contract this module consumes from the homeserver:
// a registration point for before-registration hooks, and the error shape a
// rejected attempt surfaces through.
//
// The homeserver's registration pipeline, account storage, and username
// uniqueness policy all live on the other side of this contract.
package host

import (
	"github.com/matrix-org/synapse-username-from-threepid/internal/hook"
)

// Registrar is the extension point the homeserver exposes for
// before-registration hooks.
type Registrar interface {
	// RegisterRegistrationHook adds a hook to the host's registration
	// pipeline. Hooks run in registration order.
	RegisterRegistrationHook(h hook.RegistrationHook)
}

// RejectedError is how a Rejected decision surfaces to callers that propagate
// registration failures as errors. The message is user-facing; the host maps
// it onto its standard registration-failure response.
type RejectedError struct {
	Message string
}

func (e *RejectedError) Error() string {
	return e.Message
}
