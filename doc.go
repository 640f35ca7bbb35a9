/*
Package flora defines the basic types shared by every layer of the flower
registry: identities (Address, Condition), the key-value storage interfaces,
and the serialization contract for stored models.

The actual functionality lives in the sub-packages:

  errors - coded errors with stack traces
  coin - the money type used for prices and balances
  store - in-memory btree cache-wrap store
  store/sqlitestore - durable sqlite-backed store
  orm - buckets and sequences on top of a KVStore
  x/token - the fungible token ledger
  x/flower - the flower registry itself
*/
package flora
