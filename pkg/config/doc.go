// Package config is the configuration source for invoicehandler.
//
// A configuration file has two sections:
//
//   - settings: process-wide values read once at startup (watch directory,
//     lock probing, pattern dialect). They are layered with koanf: embedded
//     defaults, then the file, then INVOICEHANDLER_SETTINGS_* environment
//     variables.
//   - translations: the ordered pattern → replacement pairs. They are read on
//     every call to Rules so that edits to the file take effect without a
//     restart. Declaration order is significant, so this section is read with
//     order-preserving readers (go-toml's unstable parser, yaml.v3 nodes)
//     instead of koanf, whose maps are unordered and split keys on dots.
//
// TOML is the default format; files ending in .yaml or .yml are read as YAML.
package config
