// Package api implements the HTTP handlers of the task analyzer.
//
// Endpoints:
//   - POST /api/tasks/analyze?strategy=<s>&use_ai=true
//   - GET  /api/tasks/suggest?limit=<n>
//   - GET  /health
//
// Handlers decode and validate requests, call service.TaskService, and map
// errors to status codes with MapErrorToStatusCode and GetSafeErrorMessage so
// internal details never reach clients.
package api
