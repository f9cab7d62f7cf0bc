package testutil

import "testing"

// Given, When, Then and And nest subtests so a scenario reads as a sentence
// in go test -v output, e.g. "Given a loaded dataset/When it is
// invalidated/Then the next read reloads".
func Given(t *testing.T, desc string, fn func(t *testing.T)) bool {
	t.Helper()
	return step(t, "Given", desc, fn)
}

func When(t *testing.T, desc string, fn func(t *testing.T)) bool {
	t.Helper()
	return step(t, "When", desc, fn)
}

func Then(t *testing.T, desc string, fn func(t *testing.T)) bool {
	t.Helper()
	return step(t, "Then", desc, fn)
}

func And(t *testing.T, desc string, fn func(t *testing.T)) bool {
	t.Helper()
	return step(t, "And", desc, fn)
}

func step(t *testing.T, keyword, desc string, fn func(t *testing.T)) bool {
	t.Helper()
	return t.Run(keyword+" "+desc, fn)
}
