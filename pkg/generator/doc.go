/*
Package generator produces randomized values and records from a domain.Schema.

A Generator dispatches on the field's TypeTag through a strategy table.
List and Dict strategies recurse into the generator with their nested item
or field specs, so recursion depth is bounded by schema nesting depth.

	g := generator.New(generator.WithSeed(42))

	age, err := g.Generate(domain.TypeInteger, domain.Constraints{
	    Min: domain.Ptr(domain.Int(18)),
	    Max: domain.Ptr(domain.Int(65)),
	})

	cases, err := g.GenerateCases(5, schema)

Every Generator owns its randomness source. It is not safe for concurrent
use; GenerateCasesParallel forks one child Generator per worker instead of
sharing the parent's source.
*/
package generator
