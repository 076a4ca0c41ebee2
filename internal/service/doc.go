// Package service contains the application use cases of the task analyzer.
// It orchestrates the prioritization engine, the optional external advisor,
// and the task store (defined in internal/store) to fulfill the analyze and
// suggest features.
//
// The service layer depends on domain types and on the store and advisor
// interfaces, never on a specific database or language model implementation.
//
// Error handling:
//   - A batch with a dependency cycle yields a *CycleError, which matches
//     domain.ErrCycleDetected.
//   - Advisor failures never surface; the service falls back to the engine.
//   - Persistence failures are wrapped in *TaskServiceError.
package service
