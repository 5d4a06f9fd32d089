// Package manifest builds, encodes, parses and validates the package.json
// manifest written into every new Springpress project. Validation runs
// against the JSON Schema embedded from schema/package.schema.json.
package manifest
