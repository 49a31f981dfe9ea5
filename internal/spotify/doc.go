// Package spotify provides a minimal Spotify Web API client for track
// search. Authentication uses the client-credentials flow, which is
// sufficient for catalog search and needs no user interaction.
package spotify
