// Package password implements the password strength engine and generator.
//
// Architecture overview:
//
//   - Analyze maps an arbitrary candidate string to an Analysis value:
//     an entropy estimate derived from the character classes actually used,
//     five independent requirement checks, a 0-100 composite score with a
//     qualitative Strength label, and a human-readable crack-time estimate.
//   - Analyze is a pure, total function. Every input, including the empty
//     string, produces a result; there is no error path.
//   - Generate produces random passwords from a CharsetConfig using
//     crypto/rand, guaranteeing at least one character from every enabled
//     class. Requesting generation with no class enabled is the only
//     validation failure in this package.
//
// Scoring constants (the 80-bit entropy ceiling and the per-requirement
// bonus) are fixed design choices; the binding contract is that the score
// is monotonically non-decreasing in entropy for a fixed requirement set,
// and in the count of satisfied requirements for fixed entropy.
package password
