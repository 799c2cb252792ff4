// Package lobby tracks players and the rooms they sit in before and during
// a match. Everything lives in memory; a restart empties the lobby.
package lobby
