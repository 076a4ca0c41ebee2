// Package domain contains the core entities of the task analyzer: the task
// record as the prioritization engine sees it, the strategies that tune the
// engine, and the scored result handed back to callers. It is independent of
// any transport or storage concern.
package domain
