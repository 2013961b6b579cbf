// Package clock abstracts the timer backend used to suspend between retry
// attempts.
//
// Exactly one concrete backend is linked per build, selected by build tag:
// the default backend uses the runtime timers from the time package, while
// building with -tags quartzclock uses the real clock from
// github.com/coder/quartz instead. The tag pair is mutually exclusive by
// construction, so a build can never end up with zero or two backends.
//
// Tests inject their own Clock (for example a quartz mock) instead of
// switching backends.
package clock
