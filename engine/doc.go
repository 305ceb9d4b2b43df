// Package engine provides helpers for working with the modernc.org/sqlite
// driver in this module: opening connections and registering the vec3_* SQL
// functions that expose vector arithmetic to queries. Vectors travel through
// SQL as 12-byte BLOBs produced by vector.Encode.
package engine
