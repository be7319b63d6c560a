package ai

import "time"

// UpstreamObserver records outbound backend calls. Status is the HTTP status
// of the reply, or 0 when none was received.
type UpstreamObserver interface {
	ObserveUpstream(provider, operation string, status int, started time.Time)
}

type nopObserver struct{}

func (nopObserver) ObserveUpstream(string, string, int, time.Time) {}

func observerOrNop(obs UpstreamObserver) UpstreamObserver {
	if obs == nil {
		return nopObserver{}
	}
	return obs
}
