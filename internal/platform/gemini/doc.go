// Package gemini provides an implementation of the advisor.Advisor interface
// that asks Google's Gemini API to prioritize a batch of tasks.
//
// This package is an infrastructure adapter in the hexagonal architecture,
// connecting the application core to Google's external Gemini AI service.
// It translates a task batch into a prompt and the model's answer back into
// scored results without exposing the details of the external service.
//
// Key components:
//
// 1. Advisor:
//   - Implements the advisor.Advisor interface
//   - Bounds every request with a timeout and a circuit breaker
//   - Downgrades every failure to an advisor.Unavailable outcome
//
// 2. Prompt Management:
//   - Ships a default prompt template
//   - Optionally loads an override template from a file
//
// 3. Response Processing:
//   - Requests a JSON response and strips code fences before parsing
//   - Merges the model's opinions into results by task id
//
// The package depends on the google.golang.org/genai client library for
// communicating with the Gemini API and on sony/gobreaker for failure isolation.
package gemini
