// Package pipeline implements table extraction and rendering for text cells.
//
// A text passes through three stages:
//   - row classification (IsTableRow, IsSeparatorRow)
//   - location of the first table and a before/table/after split (Split)
//   - rendering of the table source to HTML (TableRenderer, PostProcessTable)
//
// Rendered tables carry class="markdown-table" and express column alignment
// as data-style attributes instead of inline style, so a single stylesheet
// (Stylesheet) governs their appearance. Everything here is a pure function of
// its input and safe for concurrent use.
package pipeline
