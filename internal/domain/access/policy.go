package access

import (
	"time"

	"construlab/internal/domain/users"
)

type Policy struct {
	State        AccessState  `json:"state"`
	Capabilities []Capability `json:"capabilities"`
	ExpiresAt    *time.Time   `json:"expires_at,omitempty"`
}

func ComputePolicy(now time.Time, u *users.User) Policy {
	state := ComputeEffectiveAccessState(now, u)

	p := Policy{
		State:        state,
		Capabilities: CapabilitiesFor(state),
	}
	if u != nil && (state == AccessPro || state == AccessTrial) {
		p.ExpiresAt = u.SubscriptionExpiresAt
	}
	return p
}

func (p Policy) Can(c Capability) bool {
	for _, have := range p.Capabilities {
		if have == c {
			return true
		}
	}
	return false
}
