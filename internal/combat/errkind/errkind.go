// Package errkind holds the engine's recoverable error taxonomy: kinds,
// not types. Each Kind is a plain comparable string carried by *Error; only
// genuine programmer-error contract violations get wrapped with a stack
// trace via github.com/pkg/errors before reaching a caller.
package errkind

import "github.com/pkg/errors"

// Kind is one of the Engine's recoverable error categories. None of these
// ever propagate as a panic out of ExecuteRound; they are recovered locally
// at the site named in the comment.
type Kind string

const (
	// InvalidTarget: a descriptor resolved to zero tiles. Recovered by
	// dropping that per-target payload and continuing the cast.
	InvalidTarget Kind = "InvalidTarget"
	// MissingCatalogEntry: unknown spell_id/effect_name/hero_id. Recovered
	// by skipping that cast/effect and logging via add_log.
	MissingCatalogEntry Kind = "MissingCatalogEntry"
	// InsufficientEnergy: resolved cast cost exceeds the caster's energy
	// at resolution time. Recovered by dropping the cast.
	InsufficientEnergy Kind = "InsufficientEnergy"
)

// Error wraps a Kind with the offending identifier for log messages.
type Error struct {
	Kind Kind
	What string
}

func (e *Error) Error() string { return string(e.Kind) + ": " + e.What }

func New(kind Kind, what string) *Error { return &Error{Kind: kind, What: what} }

// Contract wraps a programmer-error contract violation (malformed
// RoundInput, missing required catalog wiring) with a stack trace. These
// are the only errors the Engine ever lets propagate/panic on.
func Contract(msg string) error { return errors.New(msg) }

// WrapContract attaches a stack trace to an unexpected lower-level error
// surfaced during ExecuteRound setup (e.g. a nil Catalog).
func WrapContract(err error, msg string) error { return errors.Wrap(err, msg) }
