// Package fuzz provides the 0-100 string similarity ratios the matcher
// scores with: plain ratio, best-window partial ratio, and the
// token-sort and token-set variants for word-order-insensitive
// comparison.
package fuzz
