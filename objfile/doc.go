// Package objfile loads and saves value trees as files.
//
// The file name selects the codec.  A trailing .zst, .gz or .lz4
// compresses the contents with zstd, gzip or framed lz4.  The remaining
// suffix selects the format:
//
//	.csv .tsv     delimited rows, see parse.ParseDelimited
//	.yaml .yml    YAML
//	.json         pretty JSON when saving
//	.net .tnet    net-strings when saving
//
// Any other name is read with parse.Parse and saved with the tab
// indented dump, which parse.Parse reads back.
package objfile
