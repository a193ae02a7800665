/*
Package domain contains the core data model of the fixtura generator.

It defines the declarative description of a record shape and the values
produced from it. The package is pure: no I/O, no randomness and no
external dependencies.

# Key Entities

  - TypeTag: selects the generation rule of a field (integer, string, list, ...).
  - Constraints: typed, optional parameters bounding how a value is generated.
  - FieldSpec: a TypeTag paired with its Constraints.
  - Schema: an ordered collection of named FieldSpecs.
  - Record: one generated instance of a Schema, in schema order.
  - TestCaseSet: an ordered batch of Records.
*/
package domain
