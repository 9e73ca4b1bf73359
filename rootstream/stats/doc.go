// Package stats runs quick statistical smoke tests over generator output.
//
// These checks catch gross mistakes (a stuck bit, a broken fold, a stream
// that repeats) rather than certify randomness. Use a dedicated battery
// such as PractRand or TestU01 for that.
package stats
