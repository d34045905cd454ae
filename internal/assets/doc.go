// Package assets provides the CSS styles shipped with the converter.
//
// Styles are embedded at compile time under styles/ and addressed by name,
// without the .css extension:
//
//	styles/
//	└── markdown-table.css    # rules for <table class="markdown-table">
//
// # Security
//
// Asset names are validated before lookup so a name can never address a
// file outside styles/.
package assets
