// Package identity models who is calling: users, the staff roles they can
// hold and the authenticated principal a request runs as.
//
// Only two roles are stored, Manager and DeliveryCrew. A user holding
// neither is a Customer; Customer is never persisted as a membership.
package identity
