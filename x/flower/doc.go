/*
Package flower implements the flower registry: an append-only collection of
flower records addressed by a dense integer index, with ownership transfer
against payment.

The Controller holds the state machine: create, read, buy, gift, toggle the
sale flag, count. Every mutating operation takes the caller identity as an
explicit argument; there is no ambient authorization. Payment during a buy
is delegated to a Ledger capability and the local mutation is only applied
after the ledger reported success.

The Service wraps a Controller with a mutex and a cache-wrap per operation,
giving the strictly serialized, all-or-nothing execution the registry
requires when used from concurrent code.
*/
package flower
