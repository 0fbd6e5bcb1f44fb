// Command textmetrics prints text statistics and compares texts from the
// command line.
//
//	textmetrics stats essay.txt
//	echo "Hello. World!" | textmetrics stats
//	textmetrics compare --a-file original.txt --b-file submitted.txt
//	textmetrics config init ./textmetrics.toml
package main
