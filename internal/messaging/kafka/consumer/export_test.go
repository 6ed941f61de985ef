package consumer

import "time"

// SetRetryBackoff shortens the storage retry delay for tests.
func SetRetryBackoff(d time.Duration) (restore func()) {
	prevWait, prevMax := retryBackoff, maxRetryBackoff
	retryBackoff, maxRetryBackoff = d, d
	return func() { retryBackoff, maxRetryBackoff = prevWait, prevMax }
}
