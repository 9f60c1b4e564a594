// Package encoding turns selected mappings into per-file encode jobs and
// dispatches them to an Encoder.
//
// Plan expands every selection into one Job per rename file, with the output
// placed in the mapping's encode directory. HandBrakeArgs renders the
// HandBrakeCLI argument list for a job. Runner serialises runs through an
// exclusive lock file, skips outputs that already exist unless overwriting is
// enabled, and records an Outcome for every job so one failed file never
// hides the rest of the report.
//
// The shipped Encoder is Preview, which prints the command each job would
// run. Other encoders plug in through the Encoder interface.
package encoding
