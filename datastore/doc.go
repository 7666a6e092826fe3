/*
Package datastore defines the client interface for the connector's
backing store.

The main interface is Client, which covers the native surface the CRUD
layer needs: single-entity get/put/delete by key, batch get/put/delete
by key list, and execution of compiled query plans.

Implementations:
  - gcd: Google Cloud Datastore implementation
  - mock: in-memory implementation for testing

Consistency follows the backing store: single-key lookups are strongly
consistent, query results are eventually consistent. Callers must
tolerate a delay between a write and that write appearing in a query
over the same kind.
*/
package datastore
