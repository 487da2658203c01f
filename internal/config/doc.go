// Package config holds the runtime settings and the record-policy keyword
// tables for labrecords.
//
// Settings are read from environment variables with sensible defaults and can
// be overridden by an optional YAML file. The keyword tables drive both the
// fallback classifier and the policy text embedded in the model prompt; they
// are configuration data and can be swapped without a code change.
//
// Category and record-type tables are explicit ordered slices, not maps.
// The fallback classifier resolves ties by first match, so table order is
// part of the policy.
package config
