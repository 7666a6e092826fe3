/*
Package registry tracks model definitions.

A Definition ties a model name to its declared properties and optional
per-model policy overrides. The connector resolves kinds by model name
whether or not the model is registered; the registry exists for
tooling and policy, not for routing. The name-to-kind mapping is
stable for the lifetime of a definition: renaming a model redirects
future operations to a different, empty kind.
*/
package registry
