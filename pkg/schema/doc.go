// Package schema reads fixtura schemas from YAML or JSON documents and checks
// generated records against them.
//
// A schema document is a mapping of field name to field spec. Field order in
// the document is the field order of every generated record:
//
//	id:
//	  type: uuid
//	age:
//	  type: integer
//	  constraints: {min: 18, max: 65}
//	address:
//	  type: dict
//	  constraints:
//	    fields:
//	      zip: {type: string, constraints: {length: 5, chars: "0123456789"}}
//
// A bare scalar is shorthand for a spec with only a type (`id: uuid`).
// Dates are written as YYYY-MM-DD. JSON documents are accepted as well,
// since JSON is a subset of YAML.
//
// Parsing reports only documents it cannot decode. Unknown types and
// unknown constraint keys are kept or ignored, never rejected.
//
// Conforms checks a generated Record against the per-field contracts of its
// schema and reports every mismatch:
//
//	if err := schema.Conforms(s, record); err != nil {
//	    for _, e := range schema.ValidationErrors(err) {
//	        // ...
//	    }
//	}
package schema
