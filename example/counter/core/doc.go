// Package core contains the event and the observer for the example: a running counter.
//
// ValueIncremented is the only event; it carries an integer delta. Accumulator is the observer;
// it adds every delta to its running total and reports the new total as one line, e.g.:
//
//	Observer 1 received 1
//
// Neither type knows about weak or strong handles, that is left to the observable package.
package core
