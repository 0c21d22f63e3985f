/*
Package config builds the identifier mapping that stores are constructed with.

Registrations come from Configurers, run once at start-up:

	mapping, err := config.BuildMapping(
	    config.ConfigurerFunc(func(r *registry.IdentifierRegistry) error {
	        return registry.Register[*Product, int64](r, keygen.NewSequence[int64]())
	    }),
	    fileConfig.Configurer(types),
	)

A Config selects strategies by entity name from YAML. LoadEnv reads dotenv
files first and takes the file location from MEMREPO_CONFIG:

	# memrepo.yaml
	strict: true
	identifiers:
	  Product: sequence
	  Order: uuid
*/
package config
