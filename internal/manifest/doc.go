// Package manifest loads and validates the build manifest (intents.json by
// default). A manifest names the storage driver and directory, the entry-point
// script with its additional inclusions, and the command template used for the
// launcher. JSON, YAML, and TOML encodings are accepted; every encoding is
// checked against the same embedded JSON Schema before it is decoded, so a
// loaded Manifest always has all of its required fields.
package manifest
