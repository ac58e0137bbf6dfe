// Package device answers the encoding reported by the device behind an
// open file descriptor. Only character devices carry one: terminals answer
// with the session's encoding, while pipes, files, and sockets report
// nothing and leave the decision to the locale query.
package device
