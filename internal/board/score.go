package board

// BaseScore is the number of points awarded for a three-cell run.
const BaseScore = 10

// MinRunLength is the shortest sequence of equal icons that counts as a run.
const MinRunLength = 3

// runScore returns the points awarded for a single run of the given length:
// BaseScore for length 3, doubling for every extra cell. Lengths below
// MinRunLength score nothing.
func runScore(length int) int {
	if length < MinRunLength {
		return 0
	}
	return BaseScore << (length - MinRunLength)
}
