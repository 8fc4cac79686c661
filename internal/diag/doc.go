// Package diag defines diagnostic codes, severities, and the Bag that
// accumulates them during lexing. The lexer never prints; it only reports
// through a Reporter, and the formatting layer decides presentation.
package diag
