/*
Package gcd implements the datastore.Client interface on Google Cloud
Datastore.

The Store translates the connector's portable shapes into native calls:

  - keys.Key ↔ *datastore.Key (incomplete keys for the insert path)
  - entity.Properties ↔ datastore.Property lists, so records stay
    schemaless property maps
  - query.Plan → datastore.Query via FilterField/Order/Limit/Offset/
    Project

Mutating calls report the commit's mutation-result count, which the
CRUD layer surfaces as {count}. A single Store wraps one long-lived
*datastore.Client; the client library handles pooling, retries are not
added on top.
*/
package gcd
