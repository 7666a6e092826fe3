/*
Package connector translates framework CRUD and filter operations into
native Google Cloud Datastore calls and shapes the responses back into
the forms the framework expects: record arrays with inline ids, new
identifiers, and {count} objects.

The connector is a pure in-process translation layer, decomposed into
four responsibilities:

  - keys: builds storage keys from model names and validated ids
  - query: compiles abstract filters into composed query plans
  - entity: moves key identifiers in and out of records and stamps
    creation timestamps
  - the verb handlers in this package, which pick an execution strategy
    per verb (single-key, batch, or query-then-batch-mutate)

Basic Usage:

	store, _ := gcd.New(ctx, gcd.Config{ProjectID: "acme-prod"})
	c := connector.New(store)

	c.Create(ctx, "Customer", entity.Properties{"name": "Anna"}, nil,
	    func(err error, id int64) { ... })

	c.All(ctx, "Customer",
	    &query.Filter{Where: query.Where{"age": map[string]interface{}{"gte": 21}}},
	    nil, func(err error, records []entity.Properties) { ... })

Every verb invokes its callback exactly once, with either an error or
a result. The model name is used verbatim as the kind name; renaming a
model silently redirects future operations to a different, empty kind.
*/
package connector
