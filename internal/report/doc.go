// Package report turns run statistics into the end-of-run summary: derived
// figures (space saved, percent saved, throughput) and their console
// rendering. It is presentation only; the figures are computed from an
// immutable stats snapshot so rendering can never perturb a run.
package report
