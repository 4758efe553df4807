// Package binder turns HTTP requests into Go values.
//
// JSON decodes a request body into a struct and plugs into handler.Wrap
// through handler.WithBinder. Data reads JSON objects, forms and query
// strings into validator.Data, the flat string map the validation engine
// works on:
//
//	data, err := binder.Data(r)
//	if err != nil {
//	    return err
//	}
//	v, ok := validator.Validate(rules, data)
//
// Values of JSON inputs are stringified: numbers keep their literal text,
// booleans become "true"/"false" and null leaves the key absent.
package binder
