/*
Package dsl provides a Go DSL for programmatically constructing fixtura schemas.

It offers a fluent builder as an alternative to YAML or JSON schema files,
with IDE autocompletion and compile-time checking of constraint values.
Fields keep the order in which they are first added.

Example usage:

	b := dsl.New()

	b.Add("id").UUID()
	b.Add("name").String().Length(25)
	b.Add("age").Integer().Range(18, 65)
	b.Add("created_at").Date().Start(domain.NewDate(2023, 1, 1))
	b.Add("tags").List().Length(3).Items(func(item *dsl.FieldBuilder) {
		item.String().Length(5)
	})
	b.Add("address").Dict(func(fields *dsl.Builder) {
		fields.Add("street").String()
		fields.Add("zip").String().Length(5).Chars("0123456789")
	})

	schema := b.Build()
	// ... pass schema to generator.GenerateCases(...)
*/
package dsl
