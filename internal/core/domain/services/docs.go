// Package services holds the domain services that do not belong to a single
// aggregate:
//   - AccessPolicy: the (role, action) dispatch table every use case consults
//   - Checkout: turns a user's cart entries into a new Order
package services
