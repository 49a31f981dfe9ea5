// Package importer resolves playlist text files against the catalog.
// Each line names one song; a worker pool searches and matches them
// concurrently and the batch is summarized at the end.
package importer
