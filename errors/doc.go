/*
Package errors implements custom error interfaces for flora.

The idea is to reuse as many errors from this package as possible and define
custom package errors when absolutely necessary. Errors are registered with a
unique numeric code, so a client can match them without parsing strings.

Use Register to declare a new root error, Wrap/Wrapf to attach context while
preserving the root cause, and the root error's Is method to test the kind of
a (possibly wrapped) error instance.
*/
package errors
