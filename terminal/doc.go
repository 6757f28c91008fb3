// Package terminal is the terminal capability the game loop draws into and
// reads keys from.
//
// Screen implements Terminal over tcell: raw mode, alternate screen buffer,
// hidden cursor, zero-timeout key polling and line-oriented frame output.
// EmergencyReset restores a terminal left in raw mode by a crash.
package terminal
