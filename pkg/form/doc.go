// Package form implements the state controller of the demo form. A
// Controller owns the field values, the touched set and the derived error
// map. Every mutation re-runs the schema before returning, so reads always
// reflect the latest update. Errors are only displayed for touched fields,
// while submit is gated on the full error map.
//
// A Controller is not safe for concurrent use; the rendering layer that
// drives it is its single owner.
package form
