// Package card holds the navigation state of the greeting card.
//
// Allowed here:
// - the Screen enum, triggers and the pure transition function
// - the Machine that applies triggers and reports side effects as values
// - evasion offset computation for the "No" control
//
// Not allowed here:
// - rendering, terminal input decoding, timers
// - direct calls into audio or particle services (see Effect)
package card
