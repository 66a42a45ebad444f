package scoring

// MasteryTime is the average response time, in seconds, under which a
// perfect activity counts as mastered. Mastery gates the bonus round.
const MasteryTime = 3.0

// Attempt records the outcome of a single question within an activity.
// Attempts live only for the duration of the activity; only their rollup
// is persisted.
type Attempt struct {
	Correct bool
	Elapsed float64 // seconds from prompt to accepted answer
}

// Rollup is the aggregate of one activity's attempts, shaped like the
// session_lessons row it will be persisted as.
type Rollup struct {
	Asked          int
	Correct        int
	AvgTime        float64 // mean elapsed seconds, 0 when no attempts
	PercentCorrect float64 // 0-100, 0 when no attempts
}

// Aggregate rolls a list of attempts up into per-activity statistics.
func Aggregate(attempts []Attempt) Rollup {
	r := Rollup{Asked: len(attempts)}

	var total float64
	for _, a := range attempts {
		if a.Correct {
			r.Correct++
		}
		total += a.Elapsed
	}

	if r.Asked > 0 {
		r.AvgTime = total / float64(r.Asked)
		r.PercentCorrect = float64(r.Correct) / float64(r.Asked) * 100
	}

	return r
}

// Perfect reports whether every question was answered correctly.
// An empty activity (e.g. an aborted lesson lookup) is never perfect.
func (r Rollup) Perfect() bool {
	return r.Asked > 0 && r.Correct == r.Asked
}

// Mastery reports whether the activity was perfect and fast enough to
// unlock bonus content.
func (r Rollup) Mastery() bool {
	return r.Perfect() && r.AvgTime < MasteryTime
}
