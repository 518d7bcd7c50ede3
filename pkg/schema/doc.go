// Package schema loads validator definitions from YAML or JSON documents.
//
// A schema lists fields in the order they are checked:
//
//	fields:
//	  - name: age
//	    label: Age
//	    type: int64
//	    rules:
//	      - required
//	      - min: 18
//	      - max: 100
//	  - name: code
//	    type: string
//	    rules:
//	      - format: '^\d+$'
//	        message: "%{label} must contain digits only"
//	      - expr: 'size(value) % 2 == 0'
//
// Parse rejects unknown keys, unknown types and duplicate field names, and
// suggests the closest known name for typos. Build turns the schema into a
// ready *formcheck.Validator.
package schema
