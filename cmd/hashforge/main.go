// Package main provides the entry point for the hashforge CLI.
//
// hashforge generates password samples, hashes them, builds rainbow
// tables, and cracks hash files against those tables.
//
// Usage:
//
//	hashforge gen-passwords --num 1000 --chars 6 --out-file passwords.txt
//	hashforge gen-hashes --in-file passwords.txt --out-file hashes.bin --algorithm md5
//	hashforge gen-rainbow-table --in-file passwords.txt --out-file table.rbw --algorithm md5
//	hashforge crack --in-file hashes.bin --rainbow-table table.rbw
//
// See --help for all available options.
package main

// main is the entry point for hashforge.
func main() {
	Execute()
}
