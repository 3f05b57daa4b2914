package files

import "time"

// retentionDays is how long deliverables stay downloadable after the service
// is completed.
const retentionDays = 30

// Policy decides download availability for delivered files. Now is injectable
// for tests; when nil, time.Now is used.
type Policy struct {
	Now func() time.Time
}

// Expired reports whether the retention window has passed. A nil completion
// date means the service is not finished yet, so files are never expired.
// The comparison is on whole elapsed days: exactly 30 days is still available,
// 31 is not.
func (p Policy) Expired(completed *time.Time) bool {
	if completed == nil {
		return false
	}

	now := time.Now
	if p.Now != nil {
		now = p.Now
	}

	elapsed := now().Sub(*completed)
	if elapsed <= 0 {
		return false
	}

	days := int(elapsed.Hours() / 24)
	return days > retentionDays
}
