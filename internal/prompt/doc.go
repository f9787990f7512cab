// Package prompt renders the console output vocabulary of the build
// entrypoint: category-styled messages, error reporting, horizontal rules,
// script banners, and file preview framing.
//
// All formatting flows through an immutable StyleConfiguration resolved once
// at process entry, so output remains deterministic for the lifetime of the
// process.
package prompt
