// Package order provides the Order aggregate: the immutable snapshot of a
// checked-out cart plus its delivery lifecycle.
//
// Key business rules:
//   - An order has at least one item and its total is the sum of item prices at placement
//   - Status follows Pending -> Assigned -> Completed, or Pending -> Completed
//   - A delivery crew member is assigned at most once and never replaced
//   - Completing a completed order changes nothing
//
// Orders record domain events that the unit of work publishes after commit.
package order
