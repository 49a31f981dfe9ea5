// Command trackmatch matches song titles and artists against the
// Spotify catalog, one query at a time or in playlist batches.
package main
