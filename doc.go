/*
Package fixtura generates randomized fixture data from declarative schemas.

A schema is an ordered list of named fields, each with a type tag and
optional constraints. Scalars (integer, float, string, boolean, date, uuid)
are sampled uniformly within their constraints; list and dict fields recurse
into item and field specs, so arbitrarily nested shapes are supported.

# Usage

Schemas can be built in code with pkg/dsl or parsed from YAML/JSON with
pkg/schema.

	package main

	import (
		"encoding/json"
		"log"
		"os"

		"github.com/aretw0/fixtura"
		"github.com/aretw0/fixtura/pkg/dsl"
	)

	func main() {
		b := dsl.New()
		b.Add("id").UUID()
		b.Add("age").Integer().Range(18, 65)
		b.Add("tags").Length(3).Items(func(i *dsl.FieldBuilder) { i.String().Length(5) })

		cases, err := fixtura.GenerateTestCases(10, b.Build())
		if err != nil {
			log.Fatal(err)
		}
		_ = json.NewEncoder(os.Stdout).Encode(cases)
	}

Use New with options (WithSeed, WithWorkers, WithLogger, WithMetrics) for
an injectable Engine instead of the process default.
*/
package fixtura
