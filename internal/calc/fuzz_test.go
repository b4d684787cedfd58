package calc

import "testing"

func FuzzEvaluate(f *testing.F) {
	f.Add("1 + 2")
	f.Add("2 * 3 + 4 * 5")
	f.Add("|(4 - 6)| * 2")
	f.Add("(2 + 1)!")
	f.Add("1 + ")
	f.Add("123.45.3")
	f.Add("max(1, 2)")
	f.Fuzz(func(t *testing.T, s string) {
		// Every input must produce a value or an error, never a panic.
		Evaluate(s)
	})
}
