package main

import "time"

// timeIt runs fn and returns how long it took.
func timeIt(fn func()) time.Duration {
	start := time.Now()
	fn()
	return time.Since(start)
}
