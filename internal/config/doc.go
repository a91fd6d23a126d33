// Package config loads castvalue settings from YAML.
//
// Example:
//
//	debug_package: analyzer
//	reference_failure: invalid
//	max_paths: 4096
//	workers: 4
//	catalog:
//	  - ref: '"llvm".CastIfPresent'
//	    kind: cast_or_null
//	  - method: GetAsOrNull
//	    kind: get_as
//	  - method: Value.CastAsOrNull
//	    kind: cast_as
//
// Free functions are referenced as "pkg/path".Name. Methods are referenced
// by name, optionally qualified with the receiver type, and match a receiver
// of any package.
package config
