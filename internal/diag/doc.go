// Package diag defines diagnostics produced by every compiler phase:
// stable codes, severities, the Bag collector and the Reporter contract.
// Fatal syntax failures travel as *Error values, analyzer findings are
// accumulated through a Reporter.
package diag
