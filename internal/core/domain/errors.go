package domain

import "fmt"

// FetchError reports a failed content retrieval. Fatal for the event.
type FetchError struct {
	URL     string
	Status  int
	Snippet string
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: status %d: %s", e.URL, e.Status, e.Snippet)
}

// AuthRefreshError reports a failed OAuth token refresh. The session state is
// left untouched when this is returned.
type AuthRefreshError struct {
	Status int
	Body   string
}

func (e *AuthRefreshError) Error() string {
	return fmt.Sprintf("token refresh failed: status %d: %s", e.Status, e.Body)
}

// TranscriptionError reports a provider rejection. Fatal per audio segment,
// recoverable at canvas-fanout granularity.
type TranscriptionError struct {
	Provider string
	Detail   string
}

func (e *TranscriptionError) Error() string {
	return fmt.Sprintf("transcription failed (%s): %s", e.Provider, e.Detail)
}

// TranscriptionTimeoutError reports a poll-based transcription job that never
// reached a terminal status within the configured attempt budget.
type TranscriptionTimeoutError struct {
	Provider string
	Attempts int
}

func (e *TranscriptionTimeoutError) Error() string {
	return fmt.Sprintf("transcription job did not finish after %d polls (%s)", e.Attempts, e.Provider)
}

// TicketUpsertError reports a failed helpdesk call. Fatal for the event.
type TicketUpsertError struct {
	Op     string
	Status int
	Body   string
}

func (e *TicketUpsertError) Error() string {
	return fmt.Sprintf("helpdesk %s failed: status %d: %s", e.Op, e.Status, e.Body)
}
