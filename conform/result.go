package conform

// Result classifies one conformance test. All three values are normal,
// expected outcomes; test bodies never return errors or panic for a
// semantic mismatch.
type Result int

const (
	// Fail means at least one lane of one window differed from the
	// reference computation.
	Fail Result = iota

	// Pass means every lane matched for every tested window.
	Pass

	// NotImpl means the operation has no translation or test body yet.
	// It is deliberately distinct from Fail so deferred work does not
	// pollute the pass/fail statistics.
	NotImpl
)

// String returns the reporting word for the result.
func (r Result) String() string {
	switch r {
	case Pass:
		return "passed"
	case Fail:
		return "failed"
	case NotImpl:
		return "skipped"
	default:
		return "unknown"
	}
}

// Tally aggregates results across a run selection.
type Tally struct {
	Passed  uint32
	Failed  uint32
	Skipped uint32
}

// Record adds one result to the tally.
func (t *Tally) Record(r Result) {
	switch r {
	case Pass:
		t.Passed++
	case Fail:
		t.Failed++
	case NotImpl:
		t.Skipped++
	}
}

// Total returns the number of recorded results.
func (t *Tally) Total() uint32 {
	return t.Passed + t.Failed + t.Skipped
}

// Coverage returns passed/total as a percentage, 0 for an empty tally.
func (t *Tally) Coverage() float64 {
	total := t.Total()
	if total == 0 {
		return 0
	}
	return float64(t.Passed) / float64(total) * 100
}
