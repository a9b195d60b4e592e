package league

import "strconv"

// Instance is the scope every aggregation runs under: one organizing group
// chat plus an optional topic thread. It is a pure grouping key and is never
// mutated.
type Instance struct {
	ChatID   int64
	ThreadID int64
}

// Key renders a stable cache/map key for the instance.
func (i Instance) Key() string {
	return strconv.FormatInt(i.ChatID, 10) + ":" + strconv.FormatInt(i.ThreadID, 10)
}
