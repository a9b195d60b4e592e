package matchevent

import "sort"

// GroupByMatch buckets events by match, ordered by minute ascending with the
// original record order breaking minute ties (and untimed events sorting
// first, matching how the store returns NULL minutes). Used for the
// expandable per-match detail view only; the numeric aggregators do not read
// grouped events.
func GroupByMatch(events []Event) map[int64][]Event {
	grouped := make(map[int64][]Event)
	for _, e := range events {
		grouped[e.MatchID] = append(grouped[e.MatchID], e)
	}

	for _, bucket := range grouped {
		sort.SliceStable(bucket, func(i, j int) bool {
			mi, mj := bucket[i].Minute, bucket[j].Minute
			switch {
			case mi == nil && mj == nil:
				return bucket[i].ID < bucket[j].ID
			case mi == nil:
				return true
			case mj == nil:
				return false
			case *mi != *mj:
				return *mi < *mj
			default:
				return bucket[i].ID < bucket[j].ID
			}
		})
	}

	return grouped
}

// AssistIndex counts goal assists per assisting player per match.
type AssistIndex map[int64]map[int64]int

// CountAssists builds the index from raw events. Only goal events with a
// credited assist count; a self-credited assist counts like any other since
// the source data permits it.
func CountAssists(events []Event) AssistIndex {
	index := make(AssistIndex)
	for _, e := range events {
		if e.Type != TypeGoal || e.AssistPlayerID == 0 {
			continue
		}
		byMatch := index[e.AssistPlayerID]
		if byMatch == nil {
			byMatch = make(map[int64]int)
			index[e.AssistPlayerID] = byMatch
		}
		byMatch[e.MatchID]++
	}
	return index
}

// Count returns the assists credited to the player in one match.
func (a AssistIndex) Count(playerID, matchID int64) int {
	return a[playerID][matchID]
}

// Total returns the assists credited to the player across all matches.
func (a AssistIndex) Total(playerID int64) int {
	total := 0
	for _, count := range a[playerID] {
		total += count
	}
	return total
}
