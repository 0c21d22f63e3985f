/*
Package processor validates identifier configuration files for memrepo.

The processor reads the YAML file understood by package config:

	strict: true
	identifiers:
	  Product: sequence
	  Order: uuid
	  Cart: ulid

and prints the resulting entity → strategy table:

	ENTITY   STRATEGY
	Cart     ulid
	Order    uuid
	Product  sequence

When a registry.Types is supplied, entity names are resolved to Go types and
each strategy is checked against the entity's identifier type, so that a bad
configuration fails at build time instead of on first save. The idmap command
has no types of its own and only checks strategy names; applications embed
Run with their registry.Types to get the full check.
*/
package processor
