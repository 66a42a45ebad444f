package session

import "time"

// Summary holds the data displayed on the summary screen and written to
// the closed session row.
type Summary struct {
	StudentName    string
	TotalQuestions int
	TotalCorrect   int

	// AvgTime is the mean of the per-activity average times, not
	// total_time / total_questions. The unweighted mean matches what
	// students have always been shown, so it stays even though a
	// weighted mean would be the more usual statistic.
	AvgTime float64

	Duration time.Duration
	Results  []LessonResult
}

// Accuracy returns total correct over total questions as a 0-100
// percentage, 0 when nothing was asked.
func (s Summary) Accuracy() float64 {
	if s.TotalQuestions == 0 {
		return 0
	}
	return float64(s.TotalCorrect) / float64(s.TotalQuestions) * 100
}

func (o *Orchestrator) buildSummary() Summary {
	var avg float64
	if len(o.activityAvgs) > 0 {
		var sum float64
		for _, a := range o.activityAvgs {
			sum += a
		}
		avg = sum / float64(len(o.activityAvgs))
	}

	return Summary{
		StudentName:    o.studentName,
		TotalQuestions: o.totalQuestions,
		TotalCorrect:   o.totalCorrect,
		AvgTime:        avg,
		Duration:       o.now().Sub(o.startedAt),
		Results:        o.results,
	}
}
