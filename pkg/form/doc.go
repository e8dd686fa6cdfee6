// Package form models a server-rendered filter form: a small set of field
// types, a container that validates and applies request parameters, and a
// fixed HTML rendering of the whole form.
//
// Instances are request-scoped. Construct the form, apply one request's
// parameters with Update, render, discard. Nothing in the package is safe
// for concurrent mutation.
package form
