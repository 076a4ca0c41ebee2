// Package advisor defines the port through which task prioritization can be
// delegated to an external language model, together with the helpers that
// turn a model response into scored results.
//
// Implementations live in infrastructure packages (see platform/gemini). The
// application core only depends on the Advisor interface and the Outcome
// result type, and decides on its own whether to fall back to the built-in
// prioritization engine.
package advisor
