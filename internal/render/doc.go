// Package render turns a state.Snapshot into a page. Every call rebuilds the
// whole mount subtree from the snapshot; nothing is diffed or cached.
//
// Page and Document produce HTML through templ components. Text produces the
// same structure for plain terminals and pipes.
package render
