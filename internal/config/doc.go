// Package config loads the declarations of expected path arguments from an
// HCL rules file.
//
// A rules file holds one `path_arg` block per argument:
//
//	path_arg "--config" {
//	  extension   = [".json"]
//	  required    = true
//	  description = "service configuration"
//	}
//
// Every block becomes a Rule whose Warner carries the argument name and
// extension. `extension` may be omitted (the empty extension) and `required`
// defaults to true.
package config
