// Package clock abstracts wall-clock reads and one-shot scheduling.
//
// Timers in this module never call time.Now or time.AfterFunc directly.
// Production code uses Real; tests substitute a Fake and move time by hand,
// which makes tick sequences and simulated host suspension deterministic.
//
// # Fake Clock
//
// Callbacks registered on a Fake run synchronously on the goroutine that
// calls Advance, Jump or Set, in deadline order. Callbacks may schedule new
// callbacks; those fire in the same call if they become due.
package clock
