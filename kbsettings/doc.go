// Package kbsettings defines the narrow settings collaborator the engine
// reads from, and a DefaultSettings implementation with conventional
// defaults. The engine never reads flags, environment variables, or config
// files directly — it only ever sees the Settings interface, so callers
// (CLIs, services, test harnesses) can wire in whatever configuration
// source fits them.
package kbsettings
