// Package regf implements the registry hive ("regf") binary container used
// to store BCD objects: a 4096-byte base block, a flat cell region of
// signed-size self-describing cells, named-key ("nk"), value ("vk") and
// subkey-list ("lf") cell variants, and the inline-data optimization for
// value payloads of 4 bytes or fewer.
//
// This is deliberately a narrow subset of the full Windows registry
// format: no per-bin HBIN headers, no hashed lf/lh lists, no RI indirect
// lists, no big-data (db) records, no security (sk) cells, no transaction
// log. It implements exactly the layout a BCD store produces and tolerates
// on read.
package regf
