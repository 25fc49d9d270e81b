// Package report renders generated puzzles.
//
// This package contains writers for different output formats:
//   - SimpleWriter: printable text for the terminal, with an optional answer key
//   - JSONWriter: structured JSON, one document per puzzle
//   - FullJSONWriter: JSON wrapped with the sopa version
//   - MarkdownWriter: GitHub Flavored Markdown with tables and a mermaid chart
//
// Writers implement the Writer interface, allowing them to be used
// interchangeably and composed with MultiWriter.
package report
