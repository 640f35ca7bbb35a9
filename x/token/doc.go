/*
Package token implements the fungible token ledger.

Balances are kept per address, allowances per (owner, spender) pair. The
Controller moves value around: Transfer for direct sends, Approve plus
TransferFrom for delegated spending the way the flower registry pays an
owner on behalf of a buyer. Issue mints new value and is meant for genesis
and tests.

The ledger holds a single currency; every amount must carry the ticker the
controller was configured with.
*/
package token
