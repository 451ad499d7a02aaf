package forest

// Simulate runs f to burn-out under fc.
//
// Behavior:
//  1. visit day 0 with the initial forest and fc.Resolve(0).
//  2. While any cell burns: advance the day, resolve its weather,
//     Step, visit.
//  3. Return the number of the last simulated day.
//
// A forest with no fire on day 0 returns 0 after a single visit.
// A nil visit is allowed.
// The run stops early with the visitor's error when it returns one.
// Termination: every burning cell turns Burnt within BurnDuration days and
// only Tree cells can ignite, so the loop ends after at most
// (number of trees + 1) × BurnDuration days.
func Simulate(f *Forest, fc Forecast, visit func(Day) error) (int, error) {
	if visit == nil {
		visit = func(Day) error { return nil }
	}
	day := 0
	if err := visit(Day{Number: day, Conditions: fc.Resolve(day), Forest: f}); err != nil {
		return day, err
	}
	for f.Burning() {
		day++
		cond := fc.Resolve(day)
		f.Step(cond.Weather)
		if err := visit(Day{Number: day, Conditions: cond, Forest: f}); err != nil {
			return day, err
		}
	}

	return day, nil
}
