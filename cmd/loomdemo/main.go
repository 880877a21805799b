// Command loomdemo renders a small set of sample panels through the
// loomterm compositor, as a one-shot snapshot, a live bubbletea session, or
// a timing benchmark. See SPEC_FULL.md for the compositor it exercises.
package main

func main() {
	Execute()
}
