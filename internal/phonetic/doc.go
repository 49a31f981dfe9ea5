// Package phonetic transliterates Chinese text to pinyin and scores
// string pairs phonetically when orthographic comparison falls short.
// Homophone substitutions in song titles (川 vs 穿) survive this
// comparison even though they share no characters.
package phonetic
